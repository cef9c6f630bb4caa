package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/go-taskboard/internal/domain/board"
)

func day(d int) time.Time {
	return time.Date(2024, time.January, d, 0, 0, 0, 0, time.UTC)
}

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// validBoard returns L1=[a, b] and an empty L2.
func validBoard(t *testing.T) *board.Board {
	t.Helper()
	b, err := board.FromRows(
		[]board.List{
			{ID: "L1", Name: "Todo", Position: 0, ItemIDs: []string{"a", "b"}},
			{ID: "L2", Name: "Done", Position: 1},
		},
		[]board.Item{
			{ID: "a", Text: "A", Position: 0, ListID: "L1", Start: day(1), End: day(2)},
			{ID: "b", Text: "B", Position: 1, ListID: "L1", Start: day(2), End: day(3)},
		},
	)
	if err != nil {
		t.Fatalf("FromRows() error = %v", err)
	}
	return b
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}
