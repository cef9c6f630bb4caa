package boardapi

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/go-taskboard/internal/domain"
)

// maxErrorBodySize limits how much of an error response body we read.
const maxErrorBodySize = 1 << 20

// errorBody is the JSON body the board API sends with every non-2xx status.
type errorBody struct {
	Timestamp  string `json:"timestamp"`
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
}

// translateHTTPError maps an error response of the board API back to the
// domain error the server started from. A 400 whose message lists fields
// ("validation error: a: x; b: y") becomes a *domain.ValidationError with
// those fields.
func translateHTTPError(resp *http.Response) error {
	msg := readMessage(resp)

	switch {
	case resp.StatusCode == http.StatusBadRequest:
		if verr := parseValidation(msg); verr != nil {
			return verr
		}
		return fmt.Errorf("%s: %w", msg, domain.ErrValidation)

	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%s: %w", msg, domain.ErrNotFound)

	case resp.StatusCode == http.StatusConflict:
		return fmt.Errorf("%s: %w", msg, domain.ErrConflict)

	case resp.StatusCode >= http.StatusInternalServerError:
		return &APIError{StatusCode: resp.StatusCode, Message: msg}

	default:
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, msg)
	}
}

// APIError reports that the board API could not complete a request, either
// because it failed (5xx) or because it was unreachable (StatusCode 0).
type APIError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *APIError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("board api unreachable: %s", e.Message)
	}
	return fmt.Sprintf("board api status %d: %s", e.StatusCode, e.Message)
}

func (e *APIError) Unwrap() []error {
	if e.Err == nil {
		return []error{domain.ErrUnavailable}
	}
	return []error{domain.ErrUnavailable, e.Err}
}

func unavailable(req *http.Request, err error) *APIError {
	return &APIError{
		Message: fmt.Sprintf("%s %s", req.Method, req.URL.Path),
		Err:     err,
	}
}

// readMessage returns the message of the error body, or the status text when
// the body is missing or not the expected JSON.
func readMessage(resp *http.Response) string {
	fallback := http.StatusText(resp.StatusCode)
	if resp.Body == nil {
		return fallback
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil {
		return fallback
	}

	var body errorBody
	if err := json.Unmarshal(raw, &body); err != nil || body.Message == "" {
		return fallback
	}
	return body.Message
}

func parseValidation(msg string) *domain.ValidationError {
	prefix := domain.ErrValidation.Error() + ": "
	rest, ok := strings.CutPrefix(msg, prefix)
	if !ok {
		return nil
	}

	fields := make(map[string]string)
	for part := range strings.SplitSeq(rest, "; ") {
		field, fieldMsg, ok := strings.Cut(part, ": ")
		if !ok || field == "" {
			return nil
		}
		fields[field] = fieldMsg
	}

	verr := &domain.ValidationError{Fields: fields}
	if strings.Contains(rest, "does not exist") {
		verr.Cause = domain.ErrNotFound
	}
	return verr
}
