package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/jsamuelsen11/go-taskboard/internal/domain/board"
)

type listView struct {
	ID       string     `json:"tasklistID"`
	Name     string     `json:"name"`
	Position int        `json:"position"`
	Tasks    []taskView `json:"tasks"`
}

type taskView struct {
	ID        string `json:"taskID"`
	Text      string `json:"text"`
	Position  int    `json:"position"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

func toListViews(b *board.Board) []listView {
	lists := b.Lists()
	out := make([]listView, len(lists))
	for i, l := range lists {
		items := b.Items(l.ID)
		lv := listView{ID: l.ID, Name: l.Name, Position: l.Position, Tasks: make([]taskView, len(items))}
		for j, it := range items {
			lv.Tasks[j] = taskView{
				ID:        it.ID,
				Text:      it.Text,
				Position:  it.Position,
				StartDate: it.Start.Format(time.DateOnly),
				EndDate:   it.End.Format(time.DateOnly),
			}
		}
		out[i] = lv
	}
	return out
}

func (a *App) printBoard(w io.Writer, b *board.Board) error {
	views := toListViews(b)
	if a.JSON {
		return writeJSON(w, map[string]any{"tasklists": views})
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for i, l := range views {
		if i > 0 {
			fmt.Fprintln(tw)
		}
		fmt.Fprintf(tw, "%s\t[%s]\n", l.Name, l.ID)
		if len(l.Tasks) == 0 {
			fmt.Fprintln(tw, "  (empty)")
		}
		for _, t := range l.Tasks {
			fmt.Fprintf(tw, "  %d\t%s\t%s\t%s..%s\n", t.Position, t.ID, t.Text, t.StartDate, t.EndDate)
		}
	}
	return tw.Flush()
}

func (a *App) printResult(w io.Writer, key, value string) error {
	if a.JSON {
		return writeJSON(w, map[string]string{key: value})
	}
	_, err := fmt.Fprintf(w, "ok %s=%s\n", key, value)
	return err
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
