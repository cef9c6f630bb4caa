package ports

import (
	"context"

	"github.com/jsamuelsen11/go-taskboard/internal/domain/board"
)

// BoardService defines the service port for board mutations and reads.
// Implemented by the application layer (the persistence gateway) and by the
// board API client; called by HTTP handlers, the coordinator and the CLI.
//
// Every mutation is atomic: it either applies completely or not at all.
// Validation failures are returned as *domain.ValidationError before any
// write happens.
type BoardService interface {
	// LoadBoard returns a consistent snapshot of every list and item.
	LoadBoard(ctx context.Context) (*board.Board, error)

	// AddList creates an empty list at l.Position, which must be in
	// [0, number of lists]. Lists after it are renumbered.
	AddList(ctx context.Context, l board.List) error

	// AddItem creates an item in it.ListID at it.Position, which must be in
	// [0, len(list)]. Siblings after it are renumbered.
	AddItem(ctx context.Context, it board.Item) error

	// UpdateItem applies the supplied fields of patch to the item.
	UpdateItem(ctx context.Context, id string, patch board.ItemPatch) error

	// DeleteItem removes the item and closes the gap in its list.
	DeleteItem(ctx context.Context, id string) error

	// MoveItem moves an item to another list as one compound write.
	MoveItem(ctx context.Context, req board.MoveRequest) error

	// ReorderItems applies a batch of position changes. Each affected list
	// must end with positions forming exactly [0, n).
	ReorderItems(ctx context.Context, changes []board.PositionChange) error
}

// BoardReader reads the persisted rows of a board.
type BoardReader interface {
	// Lists returns every stored list, including its membership order.
	Lists(ctx context.Context) ([]board.List, error)

	// Items returns every stored item.
	Items(ctx context.Context) ([]board.Item, error)
}

// BoardTx is a board store transaction. Writes are visible to later reads in
// the same transaction and become durable only when the enclosing WithinTx
// callback returns nil.
type BoardTx interface {
	BoardReader

	InsertList(ctx context.Context, l board.List) error
	UpdateList(ctx context.Context, l board.List) error
	InsertItem(ctx context.Context, it board.Item) error
	UpdateItem(ctx context.Context, it board.Item) error
	DeleteItem(ctx context.Context, id string) error
}

// BoardStore is the storage port for the persistence gateway. Implemented by
// the sqlite and neo4j adapters.
type BoardStore interface {
	HealthChecker

	// WithinTx runs fn in a read-write transaction. If fn returns an error
	// the transaction is rolled back and the error is returned unchanged.
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx BoardTx) error) error

	// View runs fn in a read-only transaction that sees one consistent
	// snapshot.
	View(ctx context.Context, fn func(ctx context.Context, r BoardReader) error) error

	// Close releases the underlying connection.
	Close(ctx context.Context) error
}

// BoardRenderer draws a board. The coordinator calls it with the preview
// while a drag is in progress and with the confirmed model otherwise.
// Implementations must not retain b past the call.
type BoardRenderer interface {
	Render(b *board.Board)
}

// NotificationKind classifies a notification.
type NotificationKind int

const (
	NotifySuccess NotificationKind = iota
	NotifyError
)

// Notification is a short user-facing message about the outcome of an
// operation.
type Notification struct {
	Kind NotificationKind
	Text string
	Err  error
}

// Notifier surfaces operation outcomes to the user.
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}
