// Package handlers provides HTTP request handlers for the service's API endpoints.
package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/go-taskboard/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-taskboard/internal/ports"
)

// BoardHandler serves the tasklist and task endpoints. Successful mutations
// reply 200 with an empty body.
type BoardHandler struct {
	svc ports.BoardService
}

// NewBoardHandler creates a new BoardHandler with the given service port.
func NewBoardHandler(svc ports.BoardService) *BoardHandler {
	return &BoardHandler{svc: svc}
}

// GetTasklists handles GET /tasklists.
func (h *BoardHandler) GetTasklists(w http.ResponseWriter, r *http.Request) {
	b, err := h.svc.LoadBoard(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToBoardResponse(b))
}

// CreateTasklist handles POST /tasklists.
func (h *BoardHandler) CreateTasklist(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTasklistRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	h.reply(w, r, h.svc.AddList(r.Context(), req.ToList()))
}

// MoveTask handles PATCH /tasklists.
func (h *BoardHandler) MoveTask(w http.ResponseWriter, r *http.Request) {
	var req dto.MoveTaskRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	h.reply(w, r, h.svc.MoveItem(r.Context(), req.ToMoveRequest()))
}

// CreateTask handles POST /tasks.
func (h *BoardHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTaskRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	h.reply(w, r, h.svc.AddItem(r.Context(), req.ToItem()))
}

// ReorderTasks handles PATCH /tasks.
func (h *BoardHandler) ReorderTasks(w http.ResponseWriter, r *http.Request) {
	var req dto.ReorderTasksRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	h.reply(w, r, h.svc.ReorderItems(r.Context(), req.ToChanges()))
}

// UpdateTask handles PATCH /tasks/{taskID}.
func (h *BoardHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "taskID")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.UpdateTaskRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	h.reply(w, r, h.svc.UpdateItem(r.Context(), id, req.ToPatch()))
}

// DeleteTask handles DELETE /tasks/{taskID}.
func (h *BoardHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "taskID")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	h.reply(w, r, h.svc.DeleteItem(r.Context(), id))
}

func (h *BoardHandler) reply(w http.ResponseWriter, r *http.Request, err error) {
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}
