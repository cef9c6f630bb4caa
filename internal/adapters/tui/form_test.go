package tui

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/go-taskboard/internal/domain"
	"github.com/jsamuelsen11/go-taskboard/internal/domain/board"
)

func TestForm_Patch(t *testing.T) {
	t.Parallel()
	it := board.Item{ID: "a", Text: "Alpha", Start: day(5), End: day(7)}

	tests := []struct {
		name      string
		text      string
		start     string
		end       string
		wantText  bool
		wantStart bool
		wantEnd   bool
		wantErr   bool
	}{
		{name: "unchanged", text: "Alpha", start: "2024-01-05", end: "2024-01-07"},
		{name: "text only", text: "Renamed", start: "2024-01-05", end: "2024-01-07", wantText: true},
		{name: "both dates", text: "Alpha", start: "2024-01-06", end: "2024-01-09", wantStart: true, wantEnd: true},
		{name: "surrounding space ignored", text: "  Alpha ", start: " 2024-01-05", end: "2024-01-07 "},
		{name: "bad end", text: "Alpha", start: "2024-01-05", end: "Jan 7", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := newEditItemForm(it)
			f.inputs[fieldText].SetValue(tt.text)
			f.inputs[fieldStart].SetValue(tt.start)
			f.inputs[fieldEnd].SetValue(tt.end)

			p, err := f.patch()
			if tt.wantErr {
				var ve *domain.ValidationError
				require.True(t, errors.As(err, &ve))
				require.Contains(t, ve.Fields, "endDate")
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantText, p.Text != nil)
			require.Equal(t, tt.wantStart, p.Start != nil)
			require.Equal(t, tt.wantEnd, p.End != nil)
		})
	}
}

func TestForm_CycleWraps(t *testing.T) {
	t.Parallel()
	f := newAddItemForm("L1", "Todo", day(1))

	f.cycle(-1)
	require.Equal(t, fieldEnd, f.focus)
	require.True(t, f.inputs[fieldEnd].Focused())
	require.False(t, f.inputs[fieldText].Focused())

	f.cycle(1)
	require.Equal(t, fieldText, f.focus)
}

func TestRenderHelp_Cached(t *testing.T) {
	t.Parallel()
	first := renderHelp(60)
	require.NotEmpty(t, first)
	require.Equal(t, first, renderHelp(60))
}
