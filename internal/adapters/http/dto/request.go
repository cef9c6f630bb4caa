package dto

import (
	"strings"

	"github.com/jsamuelsen11/go-taskboard/internal/domain"
	"github.com/jsamuelsen11/go-taskboard/internal/domain/board"
)

const (
	msgRequired     = domain.MsgRequired
	msgMustNotEmpty = "must not be empty"
	msgNonNegative  = "must be >= 0"
)

// CreateTasklistRequest is the body of POST /tasklists.
type CreateTasklistRequest struct {
	TasklistID string `json:"tasklistID"`
	Name       string `json:"name"`
	Position   *int   `json:"position"`
}

// Validate checks that required fields are present.
// Returns a *domain.ValidationError if any checks fail.
func (r *CreateTasklistRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.TasklistID) == "" {
		fields["tasklistID"] = msgRequired
	}
	if strings.TrimSpace(r.Name) == "" {
		fields["name"] = msgRequired
	}
	requireIndex(fields, "position", r.Position)

	return result(fields)
}

// ToList maps the request to a domain list. Call Validate first.
func (r *CreateTasklistRequest) ToList() board.List {
	return board.List{ID: r.TasklistID, Name: r.Name, Position: *r.Position}
}

// CreateTaskRequest is the body of POST /tasks.
type CreateTaskRequest struct {
	TaskID     string `json:"taskID"`
	Text       string `json:"text"`
	Position   *int   `json:"position"`
	TasklistID string `json:"tasklistID"`
	StartDate  *Date  `json:"startDate"`
	EndDate    *Date  `json:"endDate"`
}

// Validate checks that required fields are present.
// Returns a *domain.ValidationError if any checks fail.
func (r *CreateTaskRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.TaskID) == "" {
		fields["taskID"] = msgRequired
	}
	if strings.TrimSpace(r.Text) == "" {
		fields["text"] = msgRequired
	}
	if strings.TrimSpace(r.TasklistID) == "" {
		fields["tasklistID"] = msgRequired
	}
	requireIndex(fields, "position", r.Position)
	if r.StartDate == nil {
		fields["startDate"] = msgRequired
	}
	if r.EndDate == nil {
		fields["endDate"] = msgRequired
	}
	if r.StartDate != nil && r.EndDate != nil && r.StartDate.After(r.EndDate.Time) {
		fields["endDate"] = "must not be before startDate"
	}

	return result(fields)
}

// ToItem maps the request to a domain item. Call Validate first.
func (r *CreateTaskRequest) ToItem() board.Item {
	return board.Item{
		ID:       r.TaskID,
		Text:     r.Text,
		Position: *r.Position,
		ListID:   r.TasklistID,
		Start:    r.StartDate.Time,
		End:      r.EndDate.Time,
	}
}

// UpdateTaskRequest is the body of PATCH /tasks/{taskID}.
// All fields are optional; nil means "do not change this field.".
type UpdateTaskRequest struct {
	Text      *string `json:"text,omitempty"`
	Position  *int    `json:"position,omitempty"`
	StartDate *Date   `json:"startDate,omitempty"`
	EndDate   *Date   `json:"endDate,omitempty"`
}

// Validate checks that at least one field is supplied and that supplied
// fields have valid values.
func (r *UpdateTaskRequest) Validate() error {
	if r.Text == nil && r.Position == nil && r.StartDate == nil && r.EndDate == nil {
		return domain.NewValidationError("body", "at least one of text, position, startDate, endDate is required")
	}

	fields := make(map[string]string)
	if r.Text != nil && strings.TrimSpace(*r.Text) == "" {
		fields["text"] = msgMustNotEmpty
	}
	if r.Position != nil && *r.Position < 0 {
		fields["position"] = msgNonNegative
	}
	return result(fields)
}

// ToPatch maps the request to a domain patch.
func (r *UpdateTaskRequest) ToPatch() board.ItemPatch {
	p := board.ItemPatch{Text: r.Text, Position: r.Position}
	if r.StartDate != nil {
		start := r.StartDate.Time
		p.Start = &start
	}
	if r.EndDate != nil {
		end := r.EndDate.Time
		p.End = &end
	}
	return p
}

// ReorderedTask is one entry of a reorder batch.
type ReorderedTask struct {
	TaskID   string `json:"taskID"`
	Position *int   `json:"position"`
}

// ReorderTasksRequest is the body of PATCH /tasks. An empty batch is
// accepted and changes nothing.
type ReorderTasksRequest struct {
	ReorderedTasks []ReorderedTask `json:"reorderedTasks"`
}

// Validate checks every entry of the batch.
func (r *ReorderTasksRequest) Validate() error {
	if r.ReorderedTasks == nil {
		return domain.NewValidationError("reorderedTasks", msgRequired)
	}

	fields := make(map[string]string)
	for _, t := range r.ReorderedTasks {
		switch {
		case strings.TrimSpace(t.TaskID) == "":
			fields["reorderedTasks.taskID"] = msgRequired
		case t.Position == nil:
			fields["reorderedTasks.position"] = msgRequired
		case *t.Position < 0:
			fields["reorderedTasks.position"] = msgNonNegative
		}
	}
	return result(fields)
}

// ToChanges maps the batch to domain position changes. Call Validate first.
func (r *ReorderTasksRequest) ToChanges() []board.PositionChange {
	out := make([]board.PositionChange, len(r.ReorderedTasks))
	for i, t := range r.ReorderedTasks {
		out[i] = board.PositionChange{ItemID: t.TaskID, Position: *t.Position}
	}
	return out
}

// MoveTaskRequest is the body of PATCH /tasklists. A missing destIndex
// appends to the destination.
type MoveTaskRequest struct {
	TaskID         string `json:"taskID"`
	SrcTasklistID  string `json:"srcTasklistID"`
	DestTasklistID string `json:"destTasklistID"`
	DestIndex      *int   `json:"destIndex,omitempty"`
}

// Validate checks that required fields are present.
func (r *MoveTaskRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.TaskID) == "" {
		fields["taskID"] = msgRequired
	}
	if strings.TrimSpace(r.SrcTasklistID) == "" {
		fields["srcTasklistID"] = msgRequired
	}
	if strings.TrimSpace(r.DestTasklistID) == "" {
		fields["destTasklistID"] = msgRequired
	}
	if r.DestIndex != nil && *r.DestIndex < 0 {
		fields["destIndex"] = msgNonNegative
	}
	if len(fields) == 0 && r.SrcTasklistID == r.DestTasklistID {
		fields["destTasklistID"] = "must differ from srcTasklistID"
	}

	return result(fields)
}

// ToMoveRequest maps the request to a domain move request.
func (r *MoveTaskRequest) ToMoveRequest() board.MoveRequest {
	return board.MoveRequest{
		ItemID:     r.TaskID,
		SrcListID:  r.SrcTasklistID,
		DestListID: r.DestTasklistID,
		DestIndex:  r.DestIndex,
	}
}

func requireIndex(fields map[string]string, key string, v *int) {
	switch {
	case v == nil:
		fields[key] = msgRequired
	case *v < 0:
		fields[key] = msgNonNegative
	}
}

func result(fields map[string]string) error {
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
