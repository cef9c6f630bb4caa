package tui

import (
	"context"
	"log/slog"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jsamuelsen11/go-taskboard/internal/domain/board"
	"github.com/jsamuelsen11/go-taskboard/internal/ports"
)

const bridgeBuffer = 64

// refreshMsg tells the model to re-read the coordinator's board.
type refreshMsg struct{}

// noticeMsg carries a notification. seq orders notices that race through
// the pump.
type noticeMsg struct {
	seq uint64
	n   ports.Notification
}

// Bridge adapts the coordinator's renderer and notifier ports to a running
// tea.Program. Calls never block: the coordinator may invoke them from inside
// Update, where a direct Program.Send would deadlock.
type Bridge struct {
	ch     chan tea.Msg
	seq    atomic.Uint64
	logger *slog.Logger
}

var (
	_ ports.BoardRenderer = (*Bridge)(nil)
	_ ports.Notifier      = (*Bridge)(nil)
)

// NewBridge creates a Bridge. Start Pump once the program exists.
func NewBridge(logger *slog.Logger) *Bridge {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Bridge{ch: make(chan tea.Msg, bridgeBuffer), logger: logger}
}

// Render signals that the visible board changed. The model pulls the board
// itself, so a signal dropped on a full buffer loses nothing.
func (b *Bridge) Render(_ *board.Board) {
	select {
	case b.ch <- refreshMsg{}:
	default:
	}
}

// Notify forwards n to the program.
func (b *Bridge) Notify(ctx context.Context, n ports.Notification) {
	msg := noticeMsg{seq: b.seq.Add(1), n: n}
	select {
	case b.ch <- msg:
	default:
		b.logger.WarnContext(ctx, "dropping notification, ui is not draining",
			slog.String("text", n.Text),
		)
	}
}

// Pump forwards queued messages to send, in order, until ctx is done.
// Typically send is (*tea.Program).Send.
func (b *Bridge) Pump(ctx context.Context, send func(tea.Msg)) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg := <-b.ch:
			send(msg)
		}
	}
}
