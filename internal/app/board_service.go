// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/go-taskboard/internal/domain"
	"github.com/jsamuelsen11/go-taskboard/internal/domain/board"
	"github.com/jsamuelsen11/go-taskboard/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-taskboard/internal/ports"
)

// Compile-time check that BoardService implements ports.BoardService.
var _ ports.BoardService = (*BoardService)(nil)

const (
	tracerName         = "github.com/jsamuelsen11/go-taskboard/internal/app"
	defaultLockRetries = 3
)

// errLockDrift signals that the set of lists touched by an operation changed
// between planning and the transaction.
var errLockDrift = errors.New("lock set drifted")

// BoardService is the persistence gateway. Every mutation is validated
// against the board loaded inside a store transaction, applied to a copy
// with the domain model, checked, and then written as the minimal set of row
// changes. Nothing is written unless the whole operation succeeds.
type BoardService struct {
	store   ports.BoardStore
	locks   *listLocks
	retries int
	metrics *telemetry.Metrics
	tracer  trace.Tracer
	logger  *slog.Logger
}

// BoardOption configures a BoardService.
type BoardOption func(*BoardService)

// WithMetrics records board.mutation.* instruments.
func WithMetrics(m *telemetry.Metrics) BoardOption {
	return func(s *BoardService) { s.metrics = m }
}

// WithLockRetries sets how many times an operation is attempted when its
// lock set drifts. Values below 1 are ignored.
func WithLockRetries(n int) BoardOption {
	return func(s *BoardService) {
		if n >= 1 {
			s.retries = n
		}
	}
}

// NewBoardService creates a BoardService over store. A nil logger discards
// output.
func NewBoardService(store ports.BoardStore, logger *slog.Logger, opts ...BoardOption) *BoardService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &BoardService{
		store:   store,
		locks:   newListLocks(),
		retries: defaultLockRetries,
		tracer:  otel.Tracer(tracerName),
		logger:  logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// LoadBoard returns a consistent snapshot of the board.
func (s *BoardService) LoadBoard(ctx context.Context) (*board.Board, error) {
	ctx, span := s.tracer.Start(ctx, "BoardService.LoadBoard")
	defer span.End()

	b, err := s.snapshot(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to load board",
			slog.String("operation", "LoadBoard"),
			slog.Any("error", err),
		)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return b, nil
}

// AddList creates an empty list at l.Position.
func (s *BoardService) AddList(ctx context.Context, l board.List) error {
	s.logger.InfoContext(ctx, "adding tasklist",
		slog.String("tasklist_id", l.ID),
		slog.Int("position", l.Position),
	)

	if err := l.Validate(); err != nil {
		return err
	}

	// Inserting a list renumbers every list after it, so it locks them all.
	scope := func(b *board.Board) []string {
		ids := []string{l.ID}
		for _, x := range b.Lists() {
			ids = append(ids, x.ID)
		}
		return ids
	}

	return s.mutate(ctx, "AddList", scope, func(b *board.Board) error {
		return b.AddList(l, l.Position)
	}, slog.String("tasklist_id", l.ID))
}

// AddItem creates it in it.ListID at it.Position.
func (s *BoardService) AddItem(ctx context.Context, it board.Item) error {
	s.logger.InfoContext(ctx, "adding task",
		slog.String("task_id", it.ID),
		slog.String("tasklist_id", it.ListID),
		slog.Int("position", it.Position),
	)

	if err := it.Validate(); err != nil {
		return err
	}

	scope := func(*board.Board) []string { return []string{it.ListID} }

	return s.mutate(ctx, "AddItem", scope, func(b *board.Board) error {
		return b.Insert(it, it.ListID, it.Position)
	}, slog.String("task_id", it.ID))
}

// UpdateItem applies the supplied fields of patch.
func (s *BoardService) UpdateItem(ctx context.Context, id string, patch board.ItemPatch) error {
	s.logger.InfoContext(ctx, "updating task", slog.String("task_id", id))

	if err := patch.Validate(); err != nil {
		return err
	}

	return s.mutate(ctx, "UpdateItem", ownerOf(id), func(b *board.Board) error {
		return b.Patch(id, patch)
	}, slog.String("task_id", id))
}

// DeleteItem removes the item and closes the gap in its list.
func (s *BoardService) DeleteItem(ctx context.Context, id string) error {
	s.logger.InfoContext(ctx, "deleting task", slog.String("task_id", id))

	return s.mutate(ctx, "DeleteItem", ownerOf(id), func(b *board.Board) error {
		_, err := b.Remove(id)
		return err
	}, slog.String("task_id", id))
}

// MoveItem moves an item to another list. A nil DestIndex appends.
func (s *BoardService) MoveItem(ctx context.Context, req board.MoveRequest) error {
	s.logger.InfoContext(ctx, "moving task",
		slog.String("task_id", req.ItemID),
		slog.String("src_tasklist_id", req.SrcListID),
		slog.String("dest_tasklist_id", req.DestListID),
	)

	if err := req.Validate(); err != nil {
		return err
	}

	scope := func(b *board.Board) []string {
		return append(ownerOf(req.ItemID)(b), req.DestListID)
	}

	return s.mutate(ctx, "MoveItem", scope, func(b *board.Board) error {
		it, ok := b.Item(req.ItemID)
		if !ok {
			return domain.NotFound("taskID", req.ItemID)
		}
		if it.ListID == req.DestListID {
			return domain.NewValidationError("destTasklistID",
				fmt.Sprintf("task %q is already in tasklist %q", req.ItemID, req.DestListID))
		}
		n := b.Len(req.DestListID)
		if n < 0 {
			return domain.NotFound("destTasklistID", req.DestListID)
		}
		idx := n
		if req.DestIndex != nil {
			idx = *req.DestIndex
		}

		plan, err := board.PlanMove(b, req.ItemID, req.SrcListID, req.DestListID, idx)
		if err != nil {
			return err
		}
		return plan.Apply(b)
	}, slog.String("task_id", req.ItemID))
}

// ReorderItems applies a batch of position changes. An empty batch is a
// no-op and does not touch the store.
func (s *BoardService) ReorderItems(ctx context.Context, changes []board.PositionChange) error {
	s.logger.InfoContext(ctx, "reordering tasks", slog.Int("count", len(changes)))

	if len(changes) == 0 {
		return nil
	}

	scope := func(b *board.Board) []string {
		var ids []string
		for _, c := range changes {
			ids = append(ids, ownerOf(c.ItemID)(b)...)
		}
		return ids
	}

	return s.mutate(ctx, "ReorderItems", scope, func(b *board.Board) error {
		return b.ApplyPositions(changes)
	})
}

// ownerOf returns a scope function naming the list that currently owns id.
func ownerOf(id string) func(*board.Board) []string {
	return func(b *board.Board) []string {
		if it, ok := b.Item(id); ok {
			return []string{it.ListID}
		}
		return nil
	}
}

// mutate runs op as one atomic board mutation.
//
// scope names the lists op touches. It is evaluated on a snapshot to choose
// which list locks to take and again inside the transaction; when the two
// disagree the attempt is abandoned and retried, up to s.retries times.
func (s *BoardService) mutate(
	ctx context.Context,
	name string,
	scope func(*board.Board) []string,
	op func(*board.Board) error,
	attrs ...any,
) error {
	start := time.Now()
	ctx, span := s.tracer.Start(ctx, "BoardService."+name)
	defer span.End()

	err := s.attempt(ctx, scope, op)
	s.record(ctx, name, start, err)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		if !errors.Is(err, domain.ErrValidation) {
			s.logger.ErrorContext(ctx, "board mutation failed",
				append([]any{
					slog.String("operation", name),
					slog.Any("error", err),
				}, attrs...)...,
			)
		}
	}
	return err
}

func (s *BoardService) attempt(ctx context.Context, scope func(*board.Board) []string, op func(*board.Board) error) error {
	for try := 1; ; try++ {
		snap, err := s.snapshot(ctx)
		if err != nil {
			return err
		}
		keys := lockKeys(scope(snap))

		unlock, err := s.locks.lock(ctx, keys)
		if err != nil {
			return fmt.Errorf("waiting for tasklist locks: %w", err)
		}

		err = s.store.WithinTx(ctx, func(ctx context.Context, tx ports.BoardTx) error {
			before, err := readBoard(ctx, tx)
			if err != nil {
				return err
			}
			if !slices.Equal(lockKeys(scope(before)), keys) {
				return errLockDrift
			}

			after := before.Clone()
			if err := op(after); err != nil {
				return err
			}
			if err := after.Check(); err != nil {
				return fmt.Errorf("checking result: %w", err)
			}
			return writeDiff(ctx, tx, board.Diff(before, after))
		})
		unlock()

		if !errors.Is(err, errLockDrift) {
			return err
		}
		s.logger.WarnContext(ctx, "tasklist lock set drifted, retrying",
			slog.Int("attempt", try),
			slog.Any("locks", keys),
		)
		if try >= s.retries {
			return fmt.Errorf("%w: tasklists changed concurrently %d times", domain.ErrConflict, try)
		}
	}
}

func (s *BoardService) snapshot(ctx context.Context) (*board.Board, error) {
	var b *board.Board
	err := s.store.View(ctx, func(ctx context.Context, r ports.BoardReader) error {
		var err error
		b, err = readBoard(ctx, r)
		return err
	})
	return b, err
}

func readBoard(ctx context.Context, r ports.BoardReader) (*board.Board, error) {
	lists, err := r.Lists(ctx)
	if err != nil {
		return nil, err
	}
	items, err := r.Items(ctx)
	if err != nil {
		return nil, err
	}
	return board.FromRows(lists, items)
}

// writeDiff writes cs in a fixed order: new lists first so new items can
// reference them, then list updates, deletions, inserts and item updates.
func writeDiff(ctx context.Context, tx ports.BoardTx, cs board.ChangeSet) error {
	for _, l := range cs.NewLists {
		if err := tx.InsertList(ctx, l); err != nil {
			return err
		}
	}
	for _, l := range cs.UpdatedLists {
		if err := tx.UpdateList(ctx, l); err != nil {
			return err
		}
	}
	for _, id := range cs.DeletedItems {
		if err := tx.DeleteItem(ctx, id); err != nil {
			return err
		}
	}
	for _, it := range cs.NewItems {
		if err := tx.InsertItem(ctx, it); err != nil {
			return err
		}
	}
	for _, it := range cs.UpdatedItems {
		if err := tx.UpdateItem(ctx, it); err != nil {
			return err
		}
	}
	return nil
}

func (s *BoardService) record(ctx context.Context, name string, start time.Time, err error) {
	if s.metrics == nil {
		return
	}
	attrs := metric.WithAttributes(
		telemetry.AttrOperation.String(name),
		telemetry.AttrResult.String(resultOf(err)),
	)
	s.metrics.BoardMutationDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	s.metrics.BoardMutationTotal.Add(ctx, 1, attrs)
}

func resultOf(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrValidation):
		return "invalid"
	case errors.Is(err, domain.ErrConflict):
		return "conflict"
	default:
		return "error"
	}
}
