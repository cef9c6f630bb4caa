package dto

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/jsamuelsen11/go-taskboard/internal/domain"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Timestamp  string `json:"timestamp"`
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
}

// now is replaced in tests.
var now = time.Now

// NewErrorResponse creates an ErrorResponse from a domain error.
func NewErrorResponse(err error) ErrorResponse {
	return ErrorResponse{
		Timestamp:  now().UTC().Format(time.RFC3339),
		StatusCode: StatusFor(err),
		Message:    err.Error(),
	}
}

// WriteErrorResponse writes the error body for err with the mapped status
// code.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	writeError(w, r, NewErrorResponse(err))
}

// WriteStatus writes an error body with an explicit status code, for
// failures that do not originate in the domain (timeouts, panics).
func WriteStatus(w http.ResponseWriter, r *http.Request, status int, message string) {
	writeError(w, r, ErrorResponse{
		Timestamp:  now().UTC().Format(time.RFC3339),
		StatusCode: status,
		Message:    message,
	})
}

func writeError(w http.ResponseWriter, r *http.Request, resp ErrorResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.StatusCode)

	if encErr := json.NewEncoder(w).Encode(resp); encErr != nil {
		slog.ErrorContext(r.Context(), "failed to encode error response",
			slog.Any("error", encErr),
		)
	}
}

// StatusFor maps domain sentinel errors to HTTP status codes. References to
// missing lists or tasks arrive as validation errors and map to 400. Anything
// that is neither a validation failure nor a conflict is a 500.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
