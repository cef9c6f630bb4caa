package coordinator

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/go-taskboard/internal/domain/board"
	"github.com/jsamuelsen11/go-taskboard/internal/ports"
)

// Commit is an in-flight durable call. Done is closed once the call has
// returned and the model has been reconciled.
type Commit struct {
	done chan struct{}
	err  error
}

func finished(err error) *Commit {
	c := &Commit{done: make(chan struct{}), err: err}
	close(c.done)
	return c
}

// Done returns a channel closed when the commit has been reconciled.
func (c *Commit) Done() <-chan struct{} { return c.done }

// Err returns the gateway's error. It is only meaningful after Done is
// closed.
func (c *Commit) Err() error {
	select {
	case <-c.done:
		return c.err
	default:
		return nil
	}
}

// Wait blocks until the commit is reconciled or ctx is done. Cancelling ctx
// does not abort the durable call.
func (c *Commit) Wait(ctx context.Context) error {
	select {
	case <-c.done:
		return c.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// op is one durable call plus its effect on the confirmed model.
type op struct {
	// name prefixes failure notifications.
	name    string
	success string
	call    func(ctx context.Context) error
	apply   func(b *board.Board) error
}

// start runs o in the background. The caller must already have moved the
// coordinator to Committing.
func (c *Coordinator) start(ctx context.Context, o op) *Commit {
	cm := &Commit{done: make(chan struct{})}
	ctx = context.WithoutCancel(ctx)

	go func() {
		defer close(cm.done)

		callCtx, cancel := context.WithTimeout(ctx, c.timeout)
		err := o.call(callCtx)
		cancel()

		cm.err = err
		c.reconcile(ctx, o, err)
	}()
	return cm
}

// reconcile brings the confirmed model in line with the gateway after a
// durable call and returns the coordinator to Idle.
func (c *Coordinator) reconcile(ctx context.Context, o op, callErr error) {
	var fresh *board.Board
	if callErr == nil {
		c.mu.Lock()
		next := c.confirmed.Clone()
		err := o.apply(next)
		if err == nil {
			c.confirmed = next
		}
		c.mu.Unlock()
		if err == nil {
			c.finish(ctx, o, nil)
			return
		}
		c.logger.WarnContext(ctx, "confirmed model rejected a committed change, reloading",
			slog.String("operation", o.name),
			slog.Any("error", err),
		)
	}

	// Failure, or a local model that disagrees with storage: resync.
	loadCtx, cancel := context.WithTimeout(ctx, c.timeout)
	b, err := c.svc.LoadBoard(loadCtx)
	cancel()
	if err != nil {
		c.logger.ErrorContext(ctx, "failed to resync board",
			slog.String("operation", o.name),
			slog.Any("error", err),
		)
	} else {
		fresh = b
	}

	c.mu.Lock()
	if fresh != nil {
		c.confirmed = fresh
	}
	c.mu.Unlock()
	c.finish(ctx, o, callErr)
}

func (c *Coordinator) finish(ctx context.Context, o op, callErr error) {
	c.mu.Lock()
	c.reset()
	view := c.visible()
	c.mu.Unlock()

	c.render(view)
	if callErr != nil {
		c.logger.ErrorContext(ctx, "board operation failed",
			slog.String("operation", o.name),
			slog.Any("error", callErr),
		)
		c.notify(ctx, ports.NotifyError, o.name, callErr)
		return
	}
	c.notify(ctx, ports.NotifySuccess, o.success, nil)
}
