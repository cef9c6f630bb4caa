package boardapi

import (
	"time"

	"github.com/jsamuelsen11/go-taskboard/internal/domain/board"
)

// Wire shapes of the board API. They mirror what the server's HTTP adapter
// sends and accepts; dates travel as RFC 3339 strings.

type boardDTO struct {
	Tasklists []tasklistDTO `json:"tasklists"`
}

type tasklistDTO struct {
	TasklistsID string    `json:"tasklistsID"`
	Name        string    `json:"name"`
	Position    int       `json:"position"`
	Tasks       []taskDTO `json:"tasks"`
}

type taskDTO struct {
	TaskID    string    `json:"taskID"`
	Text      string    `json:"text"`
	Position  int       `json:"position"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}

type createTasklistDTO struct {
	TasklistID string `json:"tasklistID"`
	Name       string `json:"name"`
	Position   int    `json:"position"`
}

type createTaskDTO struct {
	TaskID     string    `json:"taskID"`
	Text       string    `json:"text"`
	Position   int       `json:"position"`
	TasklistID string    `json:"tasklistID"`
	StartDate  time.Time `json:"startDate"`
	EndDate    time.Time `json:"endDate"`
}

type updateTaskDTO struct {
	Text      *string    `json:"text,omitempty"`
	Position  *int       `json:"position,omitempty"`
	StartDate *time.Time `json:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty"`
}

type reorderedTaskDTO struct {
	TaskID   string `json:"taskID"`
	Position int    `json:"position"`
}

type reorderTasksDTO struct {
	ReorderedTasks []reorderedTaskDTO `json:"reorderedTasks"`
}

type moveTaskDTO struct {
	TaskID         string `json:"taskID"`
	SrcTasklistID  string `json:"srcTasklistID"`
	DestTasklistID string `json:"destTasklistID"`
	DestIndex      *int   `json:"destIndex,omitempty"`
}

// toBoard rebuilds a board from the nested response. Task order inside each
// list is the membership order.
func (d boardDTO) toBoard() (*board.Board, error) {
	lists := make([]board.List, 0, len(d.Tasklists))
	var items []board.Item
	for _, tl := range d.Tasklists {
		l := board.List{
			ID:       tl.TasklistsID,
			Name:     tl.Name,
			Position: tl.Position,
			ItemIDs:  make([]string, 0, len(tl.Tasks)),
		}
		for _, t := range tl.Tasks {
			l.ItemIDs = append(l.ItemIDs, t.TaskID)
			items = append(items, board.Item{
				ID:       t.TaskID,
				Text:     t.Text,
				Position: t.Position,
				ListID:   tl.TasklistsID,
				Start:    t.StartDate,
				End:      t.EndDate,
			})
		}
		lists = append(lists, l)
	}
	return board.FromRows(lists, items)
}

func toCreateTask(it board.Item) createTaskDTO {
	return createTaskDTO{
		TaskID:     it.ID,
		Text:       it.Text,
		Position:   it.Position,
		TasklistID: it.ListID,
		StartDate:  it.Start.UTC(),
		EndDate:    it.End.UTC(),
	}
}

func toUpdateTask(p board.ItemPatch) updateTaskDTO {
	d := updateTaskDTO{Text: p.Text, Position: p.Position}
	if p.Start != nil {
		start := p.Start.UTC()
		d.StartDate = &start
	}
	if p.End != nil {
		end := p.End.UTC()
		d.EndDate = &end
	}
	return d
}

func toReorderTasks(changes []board.PositionChange) reorderTasksDTO {
	d := reorderTasksDTO{ReorderedTasks: make([]reorderedTaskDTO, len(changes))}
	for i, c := range changes {
		d.ReorderedTasks[i] = reorderedTaskDTO{TaskID: c.ItemID, Position: c.Position}
	}
	return d
}
