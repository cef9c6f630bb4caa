// Package boardapi is the outbound adapter for a remote board server. It
// implements [ports.BoardService] over the server's JSON API so that the
// CLI and the terminal UI can drive a board they do not store themselves.
//
// Error responses are translated back into domain errors: 400 becomes a
// *domain.ValidationError (keeping the field keys when the message lists
// them), 409 becomes domain.ErrConflict, and 5xx or an unreachable server
// becomes an *APIError wrapping domain.ErrUnavailable.
package boardapi

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/jsamuelsen11/go-taskboard/internal/domain/board"
	"github.com/jsamuelsen11/go-taskboard/internal/platform/httpclient"
	"github.com/jsamuelsen11/go-taskboard/internal/ports"
)

var (
	_ ports.BoardService  = (*Client)(nil)
	_ ports.HealthChecker = (*Client)(nil)
)

// Client talks to a board server through an [httpclient.Client], which
// supplies circuit breaking, rate limiting, retries and tracing.
type Client struct {
	hc  *httpclient.Client
	req *requester
}

// NewClient creates a Client. The httpclient's BaseURL must point at the
// board server root (e.g. "http://localhost:8080").
func NewClient(client *httpclient.Client, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Client{
		hc:  client,
		req: &requester{client: client, logger: logger},
	}
}

// Name identifies the board API in health reports.
func (c *Client) Name() string { return c.hc.Name() }

// HealthCheck reports the circuit breaker state of the board API.
func (c *Client) HealthCheck(ctx context.Context) error { return c.hc.HealthCheck(ctx) }

// LoadBoard fetches GET /tasklists and rebuilds the board. A response that
// breaks a board invariant is reported as board.ErrCorrupt.
func (c *Client) LoadBoard(ctx context.Context) (*board.Board, error) {
	var resp boardDTO
	if err := c.req.do(ctx, http.MethodGet, "/tasklists", nil, &resp); err != nil {
		return nil, err
	}
	return resp.toBoard()
}

// AddList sends POST /tasklists.
func (c *Client) AddList(ctx context.Context, l board.List) error {
	body := createTasklistDTO{TasklistID: l.ID, Name: l.Name, Position: l.Position}
	return c.req.do(ctx, http.MethodPost, "/tasklists", body, nil)
}

// AddItem sends POST /tasks.
func (c *Client) AddItem(ctx context.Context, it board.Item) error {
	return c.req.do(ctx, http.MethodPost, "/tasks", toCreateTask(it), nil)
}

// UpdateItem sends PATCH /tasks/{id}. The server rejects an empty patch.
func (c *Client) UpdateItem(ctx context.Context, id string, patch board.ItemPatch) error {
	return c.req.do(ctx, http.MethodPatch, "/tasks/"+url.PathEscape(id), toUpdateTask(patch), nil)
}

// DeleteItem sends DELETE /tasks/{id}.
func (c *Client) DeleteItem(ctx context.Context, id string) error {
	return c.req.do(ctx, http.MethodDelete, "/tasks/"+url.PathEscape(id), nil, nil)
}

// MoveItem sends PATCH /tasklists. The server requires req.SrcListID.
func (c *Client) MoveItem(ctx context.Context, req board.MoveRequest) error {
	body := moveTaskDTO{
		TaskID:         req.ItemID,
		SrcTasklistID:  req.SrcListID,
		DestTasklistID: req.DestListID,
		DestIndex:      req.DestIndex,
	}
	return c.req.do(ctx, http.MethodPatch, "/tasklists", body, nil)
}

// ReorderItems sends PATCH /tasks. An empty batch is sent as-is and changes
// nothing on the server.
func (c *Client) ReorderItems(ctx context.Context, changes []board.PositionChange) error {
	return c.req.do(ctx, http.MethodPatch, "/tasks", toReorderTasks(changes), nil)
}
