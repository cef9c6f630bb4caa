package coordinator

import (
	"context"
	"fmt"
	"time"

	"github.com/jsamuelsen11/go-taskboard/internal/domain"
	"github.com/jsamuelsen11/go-taskboard/internal/domain/board"
	"github.com/jsamuelsen11/go-taskboard/internal/ports"
)

// AddList appends a new list named name.
func (c *Coordinator) AddList(ctx context.Context, name string) (*Commit, error) {
	c.mu.Lock()
	if err := c.ready(); err != nil {
		c.mu.Unlock()
		return nil, err
	}
	l := board.List{ID: c.newID(), Name: name, Position: c.confirmed.ListCount()}
	if err := l.Validate(); err != nil {
		c.mu.Unlock()
		c.notify(ctx, ports.NotifyError, "Add tasklists", err)
		return nil, err
	}
	c.state = Committing
	c.mu.Unlock()

	return c.start(ctx, op{
		name:    "Add tasklists",
		success: fmt.Sprintf("Tasklist %q added", name),
		call:    func(ctx context.Context) error { return c.svc.AddList(ctx, l) },
		apply:   func(b *board.Board) error { return b.AddList(l, l.Position) },
	}), nil
}

// AddItem appends a new item to listID. Overlap with a sibling is checked
// against the confirmed model before any durable call.
func (c *Coordinator) AddItem(ctx context.Context, listID, text string, start, end time.Time) (*Commit, error) {
	c.mu.Lock()
	if err := c.ready(); err != nil {
		c.mu.Unlock()
		return nil, err
	}
	n := c.confirmed.Len(listID)
	if n < 0 {
		c.mu.Unlock()
		err := domain.NotFound("tasklistID", listID)
		c.notify(ctx, ports.NotifyError, "Add task", err)
		return nil, err
	}
	it := board.Item{ID: c.newID(), Text: text, Position: n, ListID: listID, Start: start, End: end}
	err := it.Validate()
	if err == nil {
		err = overlapError(c.confirmed, listID, start, end, "")
	}
	if err != nil {
		c.mu.Unlock()
		c.notify(ctx, ports.NotifyError, "Add task", err)
		return nil, err
	}
	c.state = Committing
	c.mu.Unlock()

	return c.start(ctx, op{
		name:    "Add task",
		success: "Task added",
		call:    func(ctx context.Context) error { return c.svc.AddItem(ctx, it) },
		apply:   func(b *board.Board) error { return b.Insert(it, listID, it.Position) },
	}), nil
}

// EditItem applies patch to the item. Date changes are pre-checked for
// overlap against the confirmed model.
func (c *Coordinator) EditItem(ctx context.Context, id string, patch board.ItemPatch) (*Commit, error) {
	c.mu.Lock()
	if err := c.ready(); err != nil {
		c.mu.Unlock()
		return nil, err
	}
	err := patch.Validate()
	if err == nil {
		// Dry run on a copy catches missing ids, bad ranges and overlaps.
		err = c.confirmed.Clone().Patch(id, patch)
	}
	if err != nil {
		c.mu.Unlock()
		c.notify(ctx, ports.NotifyError, "Update task", err)
		return nil, err
	}
	c.state = Committing
	c.mu.Unlock()

	return c.start(ctx, op{
		name:    "Update task",
		success: "Task updated",
		call:    func(ctx context.Context) error { return c.svc.UpdateItem(ctx, id, patch) },
		apply:   func(b *board.Board) error { return b.Patch(id, patch) },
	}), nil
}

// DeleteItem removes the item.
func (c *Coordinator) DeleteItem(ctx context.Context, id string) (*Commit, error) {
	c.mu.Lock()
	if err := c.ready(); err != nil {
		c.mu.Unlock()
		return nil, err
	}
	if _, ok := c.confirmed.Item(id); !ok {
		c.mu.Unlock()
		err := domain.NotFound("taskID", id)
		c.notify(ctx, ports.NotifyError, "Delete task", err)
		return nil, err
	}
	c.state = Committing
	c.mu.Unlock()

	return c.start(ctx, op{
		name:    "Delete task",
		success: "Task deleted",
		call:    func(ctx context.Context) error { return c.svc.DeleteItem(ctx, id) },
		apply: func(b *board.Board) error {
			_, err := b.Remove(id)
			return err
		},
	}), nil
}

// Reorder rearranges listID into order. An order equal to the current one
// makes no durable call.
func (c *Coordinator) Reorder(ctx context.Context, listID string, order []string) (*Commit, error) {
	c.mu.Lock()
	if err := c.ready(); err != nil {
		c.mu.Unlock()
		return nil, err
	}
	delta, err := board.PlanReorder(c.confirmed, listID, order)
	if err != nil {
		c.mu.Unlock()
		c.notify(ctx, ports.NotifyError, "Update multiple tasks", err)
		return nil, err
	}
	if delta.Empty() {
		c.mu.Unlock()
		return finished(nil), nil
	}
	c.state = Committing
	c.mu.Unlock()

	return c.start(ctx, op{
		name:    "Update multiple tasks",
		success: "Tasks reordered",
		call:    func(ctx context.Context) error { return c.svc.ReorderItems(ctx, delta) },
		apply:   func(b *board.Board) error { return b.ApplyPositions(delta) },
	}), nil
}

func overlapError(b *board.Board, listID string, start, end time.Time, exceptID string) error {
	other, ok := b.Overlapping(listID, start, end, exceptID)
	if !ok {
		return nil
	}
	return domain.NewValidationError("startDate",
		fmt.Sprintf("overlaps task %q (%s to %s)", other.ID,
			other.Start.Format(time.DateOnly), other.End.Format(time.DateOnly)))
}
