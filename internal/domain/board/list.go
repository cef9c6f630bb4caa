package board

import (
	"slices"
	"strings"

	"github.com/jsamuelsen11/go-taskboard/internal/domain"
)

// List is a named, ordered collection of items. ItemIDs is the membership
// and defines render order.
type List struct {
	ID       string
	Name     string
	Position int
	ItemIDs  []string
}

// Validate checks the field-level rules for a new List.
func (l *List) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(l.ID) == "" {
		fields["tasklistID"] = domain.MsgRequired
	}
	if strings.TrimSpace(l.Name) == "" {
		fields["name"] = domain.MsgRequired
	}
	if l.Position < 0 {
		fields["position"] = "must be >= 0"
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

func (l List) clone() List {
	l.ItemIDs = slices.Clone(l.ItemIDs)
	if l.ItemIDs == nil {
		l.ItemIDs = []string{}
	}
	return l
}
