// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/go-taskboard/internal/adapters/http/handlers"
)

// NewRouter creates an HTTP handler with the board and health routes
// registered. Middleware is applied globally in the order given.
//
// The board routes keep the paths the browser client already calls:
// PATCH /tasklists is the cross-list move and PATCH /tasks is the batch
// reorder.
func NewRouter(
	boardHandler *handlers.BoardHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	r.Route("/tasklists", func(r chi.Router) {
		r.Get("/", boardHandler.GetTasklists)
		r.Post("/", boardHandler.CreateTasklist)
		r.Patch("/", boardHandler.MoveTask)
	})

	r.Route("/tasks", func(r chi.Router) {
		r.Post("/", boardHandler.CreateTask)
		r.Patch("/", boardHandler.ReorderTasks)
		r.Patch("/{taskID}", boardHandler.UpdateTask)
		r.Delete("/{taskID}", boardHandler.DeleteTask)
	})

	return r
}
