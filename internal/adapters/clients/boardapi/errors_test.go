package boardapi

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/jsamuelsen11/go-taskboard/internal/domain"
)

func errorResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": {"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestTranslateHTTPError_StatusMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		statusCode int
		wantErr    error
	}{
		{name: "400 maps to ErrValidation", statusCode: http.StatusBadRequest, wantErr: domain.ErrValidation},
		{name: "404 maps to ErrNotFound", statusCode: http.StatusNotFound, wantErr: domain.ErrNotFound},
		{name: "409 maps to ErrConflict", statusCode: http.StatusConflict, wantErr: domain.ErrConflict},
		{name: "500 maps to ErrUnavailable", statusCode: http.StatusInternalServerError, wantErr: domain.ErrUnavailable},
		{name: "502 maps to ErrUnavailable", statusCode: http.StatusBadGateway, wantErr: domain.ErrUnavailable},
		{name: "504 maps to ErrUnavailable", statusCode: http.StatusGatewayTimeout, wantErr: domain.ErrUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := translateHTTPError(errorResponse(tt.statusCode, `{"message":"boom"}`))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("translateHTTPError() = %v, want errors.Is %v", err, tt.wantErr)
			}
		})
	}
}

func TestTranslateHTTPError_ValidationFields(t *testing.T) {
	t.Parallel()

	body := `{"timestamp":"2024-01-01T00:00:00Z","statusCode":400,` +
		`"message":"validation error: destIndex: must be >= 0; taskID: is required"}`
	err := translateHTTPError(errorResponse(http.StatusBadRequest, body))

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error = %T %v, want *domain.ValidationError", err, err)
	}
	if got := verr.Fields["taskID"]; got != "is required" {
		t.Errorf("Fields[taskID] = %q, want %q", got, "is required")
	}
	if got := verr.Fields["destIndex"]; got != "must be >= 0" {
		t.Errorf("Fields[destIndex] = %q, want %q", got, "must be >= 0")
	}
	if errors.Is(err, domain.ErrNotFound) {
		t.Error("plain validation error should not match ErrNotFound")
	}
}

func TestTranslateHTTPError_NotFoundReference(t *testing.T) {
	t.Parallel()

	body := `{"statusCode":400,"message":"validation error: taskID: \"zz\" does not exist"}`
	err := translateHTTPError(errorResponse(http.StatusBadRequest, body))

	if !errors.Is(err, domain.ErrValidation) || !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("error = %v, want both ErrValidation and ErrNotFound", err)
	}
}

func TestTranslateHTTPError_UnparseableBody(t *testing.T) {
	t.Parallel()

	err := translateHTTPError(errorResponse(http.StatusBadRequest, "<html>bad</html>"))

	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("error = %v, want ErrValidation", err)
	}
	if !strings.Contains(err.Error(), http.StatusText(http.StatusBadRequest)) {
		t.Errorf("error = %q, want status text fallback", err)
	}
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		t.Error("free-form message should not become a *domain.ValidationError")
	}
}

func TestAPIError(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")
	req, _ := http.NewRequest(http.MethodGet, "http://board.invalid/tasklists", http.NoBody)
	err := unavailable(req, cause)

	if err.StatusCode != 0 {
		t.Errorf("StatusCode = %d, want 0", err.StatusCode)
	}
	if !errors.Is(err, domain.ErrUnavailable) || !errors.Is(err, cause) {
		t.Errorf("error = %v, want ErrUnavailable and the cause", err)
	}
	if want := "board api unreachable: GET /tasklists"; err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	status := &APIError{StatusCode: 502, Message: "unavailable"}
	if want := "board api status 502: unavailable"; status.Error() != want {
		t.Errorf("Error() = %q, want %q", status.Error(), want)
	}
}
