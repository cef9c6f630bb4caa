package boardapi

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/go-taskboard/internal/platform/httpclient"
)

// requester centralizes the HTTP request lifecycle for the board API:
// request creation, JSON marshaling, execution via httpclient.Client,
// response body cleanup, status code validation, error translation, and
// JSON decoding.
type requester struct {
	client *httpclient.Client
	logger *slog.Logger
}

// do sends method path with reqBody encoded as JSON (nil sends no body),
// checks that the response status is 200 and decodes the body into respBody
// when it is non-nil.
func (r *requester) do(ctx context.Context, method, path string, reqBody, respBody any) error {
	req, err := r.client.NewJSONRequest(ctx, method, path, reqBody)
	if err != nil {
		return err
	}
	return r.execute(req, respBody)
}

func (r *requester) closeBody(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		r.logger.WarnContext(ctx, "failed to close response body",
			slog.String("error", err.Error()),
		)
	}
}

// execute sends the request, checks the status code, and optionally decodes
// the response body. It ensures resp.Body is always closed.
func (r *requester) execute(req *http.Request, respBody any) error {
	ctx := req.Context()

	resp, err := r.client.Do(ctx, req)
	if err != nil {
		// httpclient.Do returns both resp and err when it gives up on a
		// retryable status. The body still carries the server's error.
		if resp != nil {
			defer r.closeBody(ctx, resp)
			return translateHTTPError(resp)
		}
		r.logger.ErrorContext(ctx, "board api request failed",
			slog.String("method", req.Method),
			slog.String("url", req.URL.String()),
			slog.String("error", err.Error()),
		)
		return unavailable(req, err)
	}
	defer r.closeBody(ctx, resp)

	if resp.StatusCode != http.StatusOK {
		r.logger.WarnContext(ctx, "board api rejected request",
			slog.String("method", req.Method),
			slog.String("url", req.URL.String()),
			slog.Int("status", resp.StatusCode),
		)
		return translateHTTPError(resp)
	}

	if respBody != nil {
		if err := json.NewDecoder(resp.Body).Decode(respBody); err != nil {
			return fmt.Errorf("decoding response from %s %s: %w", req.Method, req.URL.Path, err)
		}
	}
	return nil
}
