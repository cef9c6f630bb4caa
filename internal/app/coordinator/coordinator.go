// Package coordinator drives user-facing board interactions.
//
// A Coordinator owns the confirmed board model and at most one drag session.
// While a drag is in progress renderers are given a preview computed from
// the confirmed model; the preview becomes authoritative only after the
// gateway confirms the write. Every durable call runs asynchronously and the
// model is always reconciled against the gateway's actual result.
package coordinator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/go-taskboard/internal/domain"
	"github.com/jsamuelsen11/go-taskboard/internal/domain/board"
	"github.com/jsamuelsen11/go-taskboard/internal/ports"
)

const defaultCommitTimeout = 10 * time.Second

var (
	// ErrBusy is returned when an interaction starts while a drag session,
	// a commit or a load is outstanding. Interactions are rejected, never
	// queued.
	ErrBusy = errors.New("coordinator: another operation is in progress")

	// ErrNotDragging is returned by Hover and Drop outside a drag session.
	ErrNotDragging = errors.New("coordinator: no drag in progress")

	// ErrNotLoaded is returned when the board has not been loaded yet.
	ErrNotLoaded = errors.New("coordinator: board not loaded")
)

// State is the interaction state.
type State int

const (
	Idle State = iota
	Dragging
	Hovering
	Committing
	Loading
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	case Hovering:
		return "hovering"
	case Committing:
		return "committing"
	case Loading:
		return "loading"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// DragSession is the context of the active drag.
type DragSession struct {
	ItemID    string
	SrcListID string

	// TargetListID and TargetIndex are set once the item hovers a list.
	TargetListID string
	TargetIndex  int
}

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithCommitTimeout bounds each durable call. Non-positive values are ignored.
func WithCommitTimeout(d time.Duration) Option {
	return func(c *Coordinator) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithIDGenerator replaces the generator used for new list and item ids.
func WithIDGenerator(fn func() string) Option {
	return func(c *Coordinator) { c.newID = fn }
}

// Coordinator is the interaction state machine. It is safe for concurrent use.
type Coordinator struct {
	svc      ports.BoardService
	renderer ports.BoardRenderer
	notifier ports.Notifier
	logger   *slog.Logger
	timeout  time.Duration
	newID    func() string

	mu        sync.Mutex
	state     State
	confirmed *board.Board
	preview   *board.Board
	session   *DragSession
}

// New creates a Coordinator. Call Load before any interaction.
func New(svc ports.BoardService, renderer ports.BoardRenderer, notifier ports.Notifier, logger *slog.Logger, opts ...Option) *Coordinator {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	c := &Coordinator{
		svc:      svc,
		renderer: renderer,
		notifier: notifier,
		logger:   logger,
		timeout:  defaultCommitTimeout,
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns the current interaction state.
func (c *Coordinator) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Session returns the active drag session, if any.
func (c *Coordinator) Session() (DragSession, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session == nil {
		return DragSession{}, false
	}
	return *c.session, true
}

// Board returns a copy of what should be on screen: the preview during a
// drag, the confirmed model otherwise. It is nil before Load.
func (c *Coordinator) Board() *board.Board {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.visible()
}

// Load replaces the confirmed model with the gateway's current board. The
// coordinator stays in Loading until the gateway answers, so no commit can
// land between the read and the swap.
func (c *Coordinator) Load(ctx context.Context) error {
	c.mu.Lock()
	if c.state != Idle {
		c.mu.Unlock()
		return ErrBusy
	}
	c.state = Loading
	c.mu.Unlock()

	b, err := c.svc.LoadBoard(ctx)

	c.mu.Lock()
	c.state = Idle
	if err == nil {
		c.confirmed = b
	}
	view := c.visible()
	c.mu.Unlock()

	if err != nil {
		c.notify(ctx, ports.NotifyError, "Getting tasklists and tasks failed", err)
		return err
	}

	c.render(view)
	return nil
}

// BeginDrag starts a drag session for itemID.
func (c *Coordinator) BeginDrag(itemID string) error {
	c.mu.Lock()
	if err := c.ready(); err != nil {
		c.mu.Unlock()
		return err
	}
	it, ok := c.confirmed.Item(itemID)
	if !ok {
		c.mu.Unlock()
		return domain.NotFound("taskID", itemID)
	}
	c.session = &DragSession{ItemID: it.ID, SrcListID: it.ListID}
	c.preview = c.confirmed.Clone()
	c.state = Dragging
	view := c.visible()
	c.mu.Unlock()

	c.render(view)
	return nil
}

// Hover previews dropping the dragged item into listID at index. The preview
// is recomputed from the confirmed model each time. Nothing is persisted.
func (c *Coordinator) Hover(listID string, index int) error {
	c.mu.Lock()
	switch c.state {
	case Dragging, Hovering:
	case Committing, Loading:
		c.mu.Unlock()
		return ErrBusy
	default:
		c.mu.Unlock()
		return ErrNotDragging
	}

	preview := c.confirmed.Clone()
	if err := preview.Move(c.session.ItemID, listID, index); err != nil {
		c.mu.Unlock()
		return err
	}
	c.preview = preview
	c.session.TargetListID = listID
	c.session.TargetIndex = index
	c.state = Hovering
	view := c.visible()
	c.mu.Unlock()

	c.render(view)
	return nil
}

// Cancel ends the drag session without a durable call and reverts the
// preview.
func (c *Coordinator) Cancel() error {
	c.mu.Lock()
	switch c.state {
	case Dragging, Hovering:
	case Committing, Loading:
		c.mu.Unlock()
		return ErrBusy
	default:
		c.mu.Unlock()
		return ErrNotDragging
	}
	c.reset()
	view := c.visible()
	c.mu.Unlock()

	c.render(view)
	return nil
}

// Drop commits the hovered move. A drop without a target cancels the
// session, and a drop back onto the item's own slot is a no-op; both return
// an already finished Commit and make no durable call.
//
// The durable call is detached from ctx cancellation and bounded by the
// commit timeout: once submitted it runs to completion, and the model is
// reconciled with its actual result.
func (c *Coordinator) Drop(ctx context.Context) (*Commit, error) {
	c.mu.Lock()
	switch c.state {
	case Hovering:
	case Dragging:
		c.reset()
		view := c.visible()
		c.mu.Unlock()
		c.render(view)
		return finished(nil), nil
	case Committing, Loading:
		c.mu.Unlock()
		return nil, ErrBusy
	default:
		c.mu.Unlock()
		return nil, ErrNotDragging
	}

	s := *c.session
	plan, err := board.PlanMove(c.confirmed, s.ItemID, s.SrcListID, s.TargetListID, s.TargetIndex)
	if err != nil {
		c.reset()
		view := c.visible()
		c.mu.Unlock()
		c.render(view)
		c.notify(ctx, ports.NotifyError, "Move task error", err)
		return nil, err
	}
	if plan.Noop() {
		c.reset()
		view := c.visible()
		c.mu.Unlock()
		c.render(view)
		return finished(nil), nil
	}

	c.state = Committing
	c.mu.Unlock()

	if plan.SameList() {
		return c.start(ctx, op{
			name:    "Update multiple tasks",
			success: "Tasks reordered",
			call:    func(ctx context.Context) error { return c.svc.ReorderItems(ctx, plan.Src) },
			apply:   plan.Apply,
		}), nil
	}
	return c.start(ctx, op{
		name:    "Move task",
		success: "Task moved",
		call:    func(ctx context.Context) error { return c.svc.MoveItem(ctx, plan.Request()) },
		apply:   plan.Apply,
	}), nil
}

// visible must be called with mu held.
func (c *Coordinator) visible() *board.Board {
	switch {
	case c.preview != nil:
		return c.preview.Clone()
	case c.confirmed != nil:
		return c.confirmed.Clone()
	default:
		return nil
	}
}

// ready reports whether a new interaction may start. Must be called with mu
// held.
func (c *Coordinator) ready() error {
	if c.state != Idle {
		return ErrBusy
	}
	if c.confirmed == nil {
		return ErrNotLoaded
	}
	return nil
}

// reset drops the session and preview. Must be called with mu held.
func (c *Coordinator) reset() {
	c.session = nil
	c.preview = nil
	c.state = Idle
}

func (c *Coordinator) render(b *board.Board) {
	if c.renderer != nil && b != nil {
		c.renderer.Render(b)
	}
}

func (c *Coordinator) notify(ctx context.Context, kind ports.NotificationKind, text string, err error) {
	if c.notifier == nil {
		return
	}
	if err != nil {
		text = fmt.Sprintf("%s error: %v", text, err)
	}
	c.notifier.Notify(ctx, ports.Notification{Kind: kind, Text: text, Err: err})
}
