// Package dto provides HTTP request/response data transfer objects and the
// JSON error body for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/jsamuelsen11/go-taskboard/internal/domain/board"
)

// BoardResponse is the body of GET /tasklists.
type BoardResponse struct {
	Tasklists []TasklistResponse `json:"tasklists"`
}

// TasklistResponse is one list with its tasks in membership order.
type TasklistResponse struct {
	TasklistsID string         `json:"tasklistsID"`
	Name        string         `json:"name"`
	Position    int            `json:"position"`
	Tasks       []TaskResponse `json:"tasks"`
}

// TaskResponse is a single task.
type TaskResponse struct {
	TaskID    string `json:"taskID"`
	Text      string `json:"text"`
	Position  int    `json:"position"`
	StartDate Date   `json:"startDate"`
	EndDate   Date   `json:"endDate"`
}

// ToBoardResponse converts a board to its HTTP representation. Lists are
// ordered by position.
func ToBoardResponse(b *board.Board) BoardResponse {
	lists := b.Lists()
	resp := BoardResponse{Tasklists: make([]TasklistResponse, len(lists))}
	for i, l := range lists {
		items := b.Items(l.ID)
		tl := TasklistResponse{
			TasklistsID: l.ID,
			Name:        l.Name,
			Position:    l.Position,
			Tasks:       make([]TaskResponse, len(items)),
		}
		for j, it := range items {
			tl.Tasks[j] = ToTaskResponse(it)
		}
		resp.Tasklists[i] = tl
	}
	return resp
}

// ToTaskResponse converts a domain item.
func ToTaskResponse(it board.Item) TaskResponse {
	return TaskResponse{
		TaskID:    it.ID,
		Text:      it.Text,
		Position:  it.Position,
		StartDate: NewDate(it.Start),
		EndDate:   NewDate(it.End),
	}
}

// Health statuses.
const (
	HealthOK       = "ok"
	HealthReady    = "ready"
	HealthNotReady = "not_ready"
)

// HealthResponse is the body of /health/live and /health/ready. Checks maps
// a checker name (the board store, for instance "sqlite") to "ok" or its
// failure message.
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp string            `json:"timestamp"`
	Checks    map[string]string `json:"checks,omitempty"`
}

// NewLiveResponse reports a serving process.
func NewLiveResponse() HealthResponse {
	return HealthResponse{Status: HealthOK, Timestamp: now().UTC().Format(time.RFC3339)}
}

// NewReadyResponse folds registry results into one status. A single failed
// check makes the service not ready.
func NewReadyResponse(results map[string]error) HealthResponse {
	resp := HealthResponse{
		Status:    HealthReady,
		Timestamp: now().UTC().Format(time.RFC3339),
		Checks:    make(map[string]string, len(results)),
	}
	for name, err := range results {
		if err != nil {
			resp.Checks[name] = err.Error()
			resp.Status = HealthNotReady
			continue
		}
		resp.Checks[name] = HealthOK
	}
	return resp
}

// Ready reports whether every check passed.
func (r HealthResponse) Ready() bool { return r.Status != HealthNotReady }
