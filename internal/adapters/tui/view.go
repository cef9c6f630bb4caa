package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/jsamuelsen11/go-taskboard/internal/app/coordinator"
	"github.com/jsamuelsen11/go-taskboard/internal/domain/board"
)

const (
	minColumnWidth = 22
	maxColumnWidth = 40
	defaultWidth   = 100
)

var (
	accent = lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"}
	muted  = lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#5C5C5C"}
	danger = lipgloss.AdaptiveColor{Light: "#D7263D", Dark: "#FF5F87"}
	good   = lipgloss.AdaptiveColor{Light: "#1E8E3E", Dark: "#5AF78E"}

	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(accent)
	mutedStyle  = lipgloss.NewStyle().Foreground(muted)
	errorStyle  = lipgloss.NewStyle().Foreground(danger)
	okStyle     = lipgloss.NewStyle().Foreground(good)
	formStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(accent).Padding(0, 1)
	columnStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(muted).Padding(0, 1)
	activeCol   = columnStyle.BorderForeground(accent)
	cardStyle   = lipgloss.NewStyle().PaddingLeft(1)
	cursorCard  = cardStyle.Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(accent).PaddingLeft(0)
	draggedCard = cursorCard.Bold(true).Foreground(accent)
)

func (m Model) View() string {
	if m.mode == modeHelp {
		return renderHelp(m.viewWidth())
	}
	if m.board == nil {
		if m.status.text != "" {
			return m.statusLine()
		}
		return mutedStyle.Render("Loading board…")
	}

	var sb strings.Builder
	sb.WriteString(m.header())
	sb.WriteString("\n\n")
	sb.WriteString(m.columns())
	sb.WriteByte('\n')

	switch m.mode {
	case modeForm:
		sb.WriteString(m.form.view())
		sb.WriteByte('\n')
	case modeConfirmDelete:
		if it, ok := m.selected(); ok {
			sb.WriteString(errorStyle.Render(fmt.Sprintf("Delete %q? y/N", it.Text)))
			sb.WriteByte('\n')
		}
	}

	sb.WriteString(m.statusLine())
	sb.WriteByte('\n')
	if m.mode == modeDrag {
		sb.WriteString(m.help.ShortHelpView(m.keys.dragHelp()))
	} else {
		sb.WriteString(m.help.ShortHelpView(m.keys.browseHelp()))
	}
	return sb.String()
}

func (m Model) header() string {
	h := titleStyle.Render("Board")
	switch m.coord.State() {
	case coordinator.Committing:
		h += mutedStyle.Render("  saving…")
	case coordinator.Loading:
		h += mutedStyle.Render("  loading…")
	case coordinator.Dragging, coordinator.Hovering:
		h += mutedStyle.Render("  dragging")
	}
	return h
}

func (m Model) columns() string {
	lists := m.board.Lists()
	if len(lists) == 0 {
		return mutedStyle.Render("No lists yet. Press A to add one.")
	}

	width := clamp((m.viewWidth()/len(lists))-4, minColumnWidth, maxColumnWidth)
	cols := make([]string, len(lists))
	for i, l := range lists {
		cols[i] = m.column(i, l, width)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

func (m Model) column(idx int, l board.List, width int) string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render(truncate(l.Name, width)))
	sb.WriteString(mutedStyle.Render(fmt.Sprintf(" (%d)", len(l.ItemIDs))))
	for row, id := range l.ItemIDs {
		it, found := m.board.Item(id)
		if !found {
			continue
		}
		sb.WriteByte('\n')
		sb.WriteString(m.card(it, idx == m.cursor.col && row == m.cursor.row, width))
	}
	if len(l.ItemIDs) == 0 {
		sb.WriteByte('\n')
		sb.WriteString(mutedStyle.Render("empty"))
	}

	style := columnStyle
	if idx == m.cursor.col {
		style = activeCol
	}
	return style.Width(width).Render(sb.String())
}

func (m Model) card(it board.Item, selected bool, width int) string {
	body := truncate(it.Text, width-2) + "\n" +
		mutedStyle.Render(it.Start.Format(time.DateOnly)+" → "+it.End.Format(time.DateOnly))
	switch {
	case selected && m.mode == modeDrag:
		return draggedCard.Render(body)
	case selected:
		return cursorCard.Render(body)
	default:
		return cardStyle.Render(body)
	}
}

func (m Model) statusLine() string {
	switch {
	case m.status.text == "":
		return ""
	case m.status.err:
		return errorStyle.Render(m.status.text)
	default:
		return okStyle.Render(m.status.text)
	}
}

func (m Model) viewWidth() int {
	if m.width <= 0 {
		return defaultWidth
	}
	return m.width
}

func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width || width < 2 {
		return s
	}
	r := []rune(s)
	for len(r) > 0 && lipgloss.Width(string(r)) > width-1 {
		r = r[:len(r)-1]
	}
	return string(r) + "…"
}
