// Package tui is a terminal board built on bubbletea. It is a thin input
// adapter over the interaction coordinator: keys become coordinator calls,
// and the coordinator's renderer and notifier ports are bridged back into
// the program as messages.
package tui

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jsamuelsen11/go-taskboard/internal/app/coordinator"
	"github.com/jsamuelsen11/go-taskboard/internal/domain/board"
	"github.com/jsamuelsen11/go-taskboard/internal/ports"
)

// Coordinator is the part of *coordinator.Coordinator the board drives.
type Coordinator interface {
	Load(ctx context.Context) error
	Board() *board.Board
	State() coordinator.State

	BeginDrag(itemID string) error
	Hover(listID string, index int) error
	Drop(ctx context.Context) (*coordinator.Commit, error)
	Cancel() error

	AddList(ctx context.Context, name string) (*coordinator.Commit, error)
	AddItem(ctx context.Context, listID, text string, start, end time.Time) (*coordinator.Commit, error)
	EditItem(ctx context.Context, id string, patch board.ItemPatch) (*coordinator.Commit, error)
	DeleteItem(ctx context.Context, id string) (*coordinator.Commit, error)
	Reorder(ctx context.Context, listID string, order []string) (*coordinator.Commit, error)
}

type loadedMsg struct{ err error }

type committedMsg struct{ err error }

type mode int

const (
	modeBrowse mode = iota
	modeDrag
	modeForm
	modeConfirmDelete
	modeHelp
)

// slot is a (column, row) cursor position.
type slot struct {
	col int
	row int
}

type status struct {
	text string
	err  bool
}

// Model is the bubbletea model of the board.
type Model struct {
	ctx   context.Context
	coord Coordinator
	keys  keyMap
	help  help.Model
	now   func() time.Time

	width  int
	height int

	board  *board.Board
	cursor slot
	mode   mode

	// Drag state: where the item was picked up, the target slot, and the
	// confirmed list lengths at pickup.
	origin  slot
	target  slot
	srcList string
	lens    map[string]int

	form       *form
	status     status
	lastNotice uint64
}

// New creates the board model. ctx scopes every coordinator call.
func New(ctx context.Context, c Coordinator) Model {
	return Model{
		ctx:   ctx,
		coord: c,
		keys:  defaultKeyMap(),
		help:  help.New(),
		now:   time.Now,
	}
}

func (m Model) Init() tea.Cmd {
	return m.load()
}

func (m Model) load() tea.Cmd {
	ctx, c := m.ctx, m.coord
	return func() tea.Msg { return loadedMsg{err: c.Load(ctx)} }
}

func (m Model) wait(cm *coordinator.Commit) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg { return committedMsg{err: cm.Wait(ctx)} }
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case loadedMsg:
		if msg.err != nil {
			m.setError("Load failed", msg.err)
		}
		m.refresh()
		return m, nil

	case refreshMsg, committedMsg:
		m.refresh()
		return m, nil

	case noticeMsg:
		if msg.seq > m.lastNotice {
			m.lastNotice = msg.seq
			m.status = status{text: msg.n.Text, err: msg.n.Kind == ports.NotifyError}
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.mode == modeForm {
		return m, m.form.update(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		if m.mode == modeDrag {
			_ = m.coord.Cancel()
		}
		return m, tea.Quit
	}

	switch m.mode {
	case modeDrag:
		return m.handleDrag(msg)
	case modeForm:
		return m.handleForm(msg)
	case modeConfirmDelete:
		return m.handleConfirmDelete(msg)
	case modeHelp:
		if key.Matches(msg, m.keys.Help, m.keys.Cancel) {
			m.mode = modeBrowse
		}
		return m, nil
	default:
		return m.handleBrowse(msg)
	}
}

func (m Model) handleBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.mode = modeHelp
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(-1, 0)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(1, 0)
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(0, -1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(0, 1)
	case key.Matches(msg, m.keys.Grab):
		m.beginDrag()
	case key.Matches(msg, m.keys.AddList):
		if m.board != nil {
			m.form = newAddListForm()
			m.mode = modeForm
		}
	case key.Matches(msg, m.keys.AddItem):
		if l, ok := m.currentList(); ok {
			m.form = newAddItemForm(l.ID, l.Name, m.now())
			m.mode = modeForm
		}
	case key.Matches(msg, m.keys.Edit):
		if it, ok := m.selected(); ok {
			m.form = newEditItemForm(it)
			m.mode = modeForm
		}
	case key.Matches(msg, m.keys.Delete):
		if _, ok := m.selected(); ok {
			m.mode = modeConfirmDelete
		}
	case key.Matches(msg, m.keys.Sort):
		return m, m.sortCurrent()
	case key.Matches(msg, m.keys.Reload):
		return m, m.load()
	}
	return m, nil
}

func (m *Model) beginDrag() {
	it, ok := m.selected()
	if !ok {
		return
	}
	if err := m.coord.BeginDrag(it.ID); err != nil {
		m.setError("Cannot pick up task", err)
		return
	}
	m.lens = make(map[string]int, m.board.ListCount())
	for _, l := range m.board.Lists() {
		m.lens[l.ID] = len(l.ItemIDs)
	}
	m.srcList = it.ListID
	m.origin = m.cursor
	m.target = m.cursor
	m.mode = modeDrag
	m.status = status{text: fmt.Sprintf("Moving %q", it.Text)}
	m.refresh()
}

func (m Model) handleDrag(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		if err := m.coord.Cancel(); err != nil {
			m.setError("Cancel failed", err)
		}
		m.endDrag()
		m.cursor = m.origin
		m.status = status{}
		m.refresh()
		return m, nil
	case key.Matches(msg, m.keys.Drop):
		cm, err := m.coord.Drop(m.ctx)
		m.endDrag()
		m.refresh()
		if err != nil {
			m.setError("Move task error", err)
			return m, nil
		}
		return m, m.wait(cm)
	case key.Matches(msg, m.keys.Left):
		m.hover(-1, 0)
	case key.Matches(msg, m.keys.Right):
		m.hover(1, 0)
	case key.Matches(msg, m.keys.Up):
		m.hover(0, -1)
	case key.Matches(msg, m.keys.Down):
		m.hover(0, 1)
	}
	return m, nil
}

// hover shifts the drag target and previews it. A rejected target, such as
// a list where the item would overlap, leaves the previous preview in place.
func (m *Model) hover(dcol, drow int) {
	lists := m.board.Lists()
	t := m.target
	t.col = clamp(t.col+dcol, 0, len(lists)-1)
	listID := lists[t.col].ID
	hi := m.lens[listID]
	if listID == m.srcList {
		hi--
	}
	t.row = clamp(t.row+drow, 0, hi)
	if t == m.target {
		return
	}

	if err := m.coord.Hover(listID, t.row); err != nil {
		m.setError("Cannot drop here", err)
		return
	}
	m.target = t
	m.status = status{}
	m.refresh()
}

func (m *Model) endDrag() {
	m.mode = modeBrowse
	m.lens = nil
}

func (m Model) handleForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.form = nil
		m.mode = modeBrowse
		return m, nil
	case "tab", "down":
		return m, m.form.cycle(1)
	case "shift+tab", "up":
		return m, m.form.cycle(-1)
	case "enter":
		return m.submit()
	}
	return m, m.form.update(msg)
}

// submit starts the form's operation. Input errors keep the form open.
func (m Model) submit() (tea.Model, tea.Cmd) {
	f := m.form
	var (
		cm  *coordinator.Commit
		err error
	)
	switch f.kind {
	case formAddList:
		cm, err = m.coord.AddList(m.ctx, f.value(fieldText))
	case formAddItem:
		start, end, derr := f.dates()
		if derr != nil {
			err = derr
			break
		}
		cm, err = m.coord.AddItem(m.ctx, f.listID, f.value(fieldText), start, end)
	case formEditItem:
		patch, perr := f.patch()
		switch {
		case perr != nil:
			err = perr
		case patch.IsEmpty():
			m.form = nil
			m.mode = modeBrowse
			return m, nil
		default:
			cm, err = m.coord.EditItem(m.ctx, f.item.ID, patch)
		}
	}
	if err != nil {
		m.setError(f.title, err)
		return m, nil
	}

	m.form = nil
	m.mode = modeBrowse
	m.refresh()
	return m, m.wait(cm)
}

func (m Model) handleConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.mode = modeBrowse
	if msg.String() != "y" {
		return m, nil
	}
	it, ok := m.selected()
	if !ok {
		return m, nil
	}
	cm, err := m.coord.DeleteItem(m.ctx, it.ID)
	if err != nil {
		m.setError("Delete task", err)
		return m, nil
	}
	return m, m.wait(cm)
}

func (m *Model) sortCurrent() tea.Cmd {
	l, ok := m.currentList()
	if !ok {
		return nil
	}
	items := m.board.Items(l.ID)
	slices.SortStableFunc(items, func(a, b board.Item) int { return a.Start.Compare(b.Start) })
	order := make([]string, len(items))
	for i, it := range items {
		order[i] = it.ID
	}

	cm, err := m.coord.Reorder(m.ctx, l.ID, order)
	if err != nil {
		m.setError("Sort failed", err)
		return nil
	}
	return m.wait(cm)
}

// refresh pulls the visible board from the coordinator and keeps the cursor
// inside it. During a drag the cursor follows the dragged item.
func (m *Model) refresh() {
	m.board = m.coord.Board()
	if m.board == nil {
		m.cursor = slot{}
		return
	}
	if m.mode == modeDrag {
		m.cursor = m.target
	}
	m.cursor = m.clampSlot(m.cursor)
}

func (m *Model) moveCursor(dcol, drow int) {
	if m.board == nil {
		return
	}
	m.cursor = m.clampSlot(slot{col: m.cursor.col + dcol, row: m.cursor.row + drow})
}

func (m Model) clampSlot(s slot) slot {
	n := m.board.ListCount()
	if n == 0 {
		return slot{}
	}
	s.col = clamp(s.col, 0, n-1)
	s.row = clamp(s.row, 0, m.board.Len(m.board.Lists()[s.col].ID)-1)
	return s
}

func (m Model) currentList() (board.List, bool) {
	if m.board == nil || m.board.ListCount() == 0 {
		return board.List{}, false
	}
	return m.board.Lists()[m.cursor.col], true
}

func (m Model) selected() (board.Item, bool) {
	l, ok := m.currentList()
	if !ok || m.cursor.row >= len(l.ItemIDs) {
		return board.Item{}, false
	}
	return m.board.Item(l.ItemIDs[m.cursor.row])
}

func (m *Model) setError(prefix string, err error) {
	text := fmt.Sprintf("%s: %v", prefix, err)
	if errors.Is(err, coordinator.ErrBusy) {
		text = "Still saving, try again in a moment"
		if m.coord.State() == coordinator.Loading {
			text = "Still loading, try again in a moment"
		}
	}
	m.status = status{text: text, err: true}
}

// clamp bounds v to [lo, hi]. An empty range yields lo.
func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
