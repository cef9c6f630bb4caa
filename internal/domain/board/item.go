package board

import (
	"strings"
	"time"

	"github.com/jsamuelsen11/go-taskboard/internal/domain"
)

// Item is a unit of work with a date range and a position inside exactly one list.
type Item struct {
	ID       string
	Text     string
	Position int
	ListID   string
	Start    time.Time
	End      time.Time
}

// Validate checks the field-level rules for an Item that do not depend on
// the rest of the board. Returns a *domain.ValidationError or nil.
func (it *Item) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(it.ID) == "" {
		fields["taskID"] = domain.MsgRequired
	}
	if strings.TrimSpace(it.Text) == "" {
		fields["text"] = domain.MsgRequired
	}
	if it.Position < 0 {
		fields["position"] = "must be >= 0"
	}
	if strings.TrimSpace(it.ListID) == "" {
		fields["tasklistID"] = domain.MsgRequired
	}
	validateRange(fields, it.Start, it.End)

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

func validateRange(fields map[string]string, start, end time.Time) {
	if start.IsZero() {
		fields["startDate"] = domain.MsgRequired
	}
	if end.IsZero() {
		fields["endDate"] = domain.MsgRequired
	}
	if !start.IsZero() && !end.IsZero() && start.After(end) {
		fields["endDate"] = "must not be before startDate"
	}
}

// Overlaps reports whether the half-open ranges [aStart, aEnd) and
// [bStart, bEnd) intersect. Ranges that only touch at an endpoint do not
// overlap, so one booking may end on the day the next begins.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// ItemPatch carries the optional fields of an item edit. Nil means "leave
// unchanged".
type ItemPatch struct {
	Text     *string
	Position *int
	Start    *time.Time
	End      *time.Time
}

// IsEmpty reports whether no field is supplied.
func (p ItemPatch) IsEmpty() bool {
	return p.Text == nil && p.Position == nil && p.Start == nil && p.End == nil
}

// Validate checks the patch in isolation: at least one field, and any text
// supplied must be non-blank.
func (p ItemPatch) Validate() error {
	if p.IsEmpty() {
		return domain.NewValidationError("body", "at least one of text, position, startDate, endDate is required")
	}
	fields := make(map[string]string)
	if p.Text != nil && strings.TrimSpace(*p.Text) == "" {
		fields["text"] = "must not be empty"
	}
	if p.Position != nil && *p.Position < 0 {
		fields["position"] = "must be >= 0"
	}
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// PositionChange is a single (item, new position) pair of a reorder delta.
type PositionChange struct {
	ItemID   string
	Position int
}

// MoveRequest describes a cross-list move. DestIndex nil appends to the end
// of the destination list. SrcListID, when non-empty, must name the item's
// current owner.
type MoveRequest struct {
	ItemID     string
	SrcListID  string
	DestListID string
	DestIndex  *int
}

// Validate checks the request in isolation.
func (r MoveRequest) Validate() error {
	fields := make(map[string]string)
	if strings.TrimSpace(r.ItemID) == "" {
		fields["taskID"] = domain.MsgRequired
	}
	if strings.TrimSpace(r.DestListID) == "" {
		fields["destTasklistID"] = domain.MsgRequired
	}
	if r.SrcListID != "" && r.SrcListID == r.DestListID {
		fields["destTasklistID"] = "must differ from srcTasklistID"
	}
	if r.DestIndex != nil && *r.DestIndex < 0 {
		fields["destIndex"] = "must be >= 0"
	}
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
