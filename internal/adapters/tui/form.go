package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jsamuelsen11/go-taskboard/internal/domain"
	"github.com/jsamuelsen11/go-taskboard/internal/domain/board"
)

type formKind int

const (
	formAddList formKind = iota
	formAddItem
	formEditItem
)

const (
	fieldText = iota
	fieldStart
	fieldEnd
)

// form is the inline dialog for adding and editing.
type form struct {
	kind   formKind
	title  string
	listID string
	item   board.Item
	inputs []textinput.Model
	focus  int
}

func newInput(placeholder, value string) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = 200
	in.SetValue(value)
	return in
}

func newAddListForm() *form {
	f := &form{kind: formAddList, title: "New list", inputs: []textinput.Model{newInput("name", "")}}
	f.inputs[0].Focus()
	return f
}

func newAddItemForm(listID, listName string, today time.Time) *form {
	day := today.Format(time.DateOnly)
	f := &form{
		kind:   formAddItem,
		title:  fmt.Sprintf("New task in %s", listName),
		listID: listID,
		inputs: []textinput.Model{
			newInput("text", ""),
			newInput("start YYYY-MM-DD", day),
			newInput("end YYYY-MM-DD", day),
		},
	}
	f.inputs[0].Focus()
	return f
}

func newEditItemForm(it board.Item) *form {
	f := &form{
		kind:  formEditItem,
		title: "Edit task",
		item:  it,
		inputs: []textinput.Model{
			newInput("text", it.Text),
			newInput("start YYYY-MM-DD", it.Start.Format(time.DateOnly)),
			newInput("end YYYY-MM-DD", it.End.Format(time.DateOnly)),
		},
	}
	f.inputs[0].Focus()
	return f
}

// cycle moves focus by delta, wrapping.
func (f *form) cycle(delta int) tea.Cmd {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + delta + len(f.inputs)) % len(f.inputs)
	return f.inputs[f.focus].Focus()
}

func (f *form) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *form) value(i int) string { return strings.TrimSpace(f.inputs[i].Value()) }

// dates parses the start and end inputs.
func (f *form) dates() (time.Time, time.Time, error) {
	fields := make(map[string]string)
	start, err := time.Parse(time.DateOnly, f.value(fieldStart))
	if err != nil {
		fields["startDate"] = "want YYYY-MM-DD"
	}
	end, err := time.Parse(time.DateOnly, f.value(fieldEnd))
	if err != nil {
		fields["endDate"] = "want YYYY-MM-DD"
	}
	if len(fields) > 0 {
		return time.Time{}, time.Time{}, &domain.ValidationError{Fields: fields}
	}
	return start, end, nil
}

// patch returns only the fields that differ from the item being edited.
func (f *form) patch() (board.ItemPatch, error) {
	start, end, err := f.dates()
	if err != nil {
		return board.ItemPatch{}, err
	}
	var p board.ItemPatch
	if text := f.value(fieldText); text != f.item.Text {
		p.Text = &text
	}
	if !start.Equal(f.item.Start) {
		p.Start = &start
	}
	if !end.Equal(f.item.End) {
		p.End = &end
	}
	return p, nil
}

func (f *form) view() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render(f.title))
	sb.WriteByte('\n')
	for _, in := range f.inputs {
		sb.WriteString(in.View())
		sb.WriteByte('\n')
	}
	sb.WriteString(mutedStyle.Render("tab next field · enter save · esc cancel"))
	return formStyle.Render(sb.String())
}
