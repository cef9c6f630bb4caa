package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
)

const helpMarkdown = `
# Board

Move the cursor with the arrow keys or **h j k l**.

## Dragging

| Key | Action |
| --- | --- |
| space | pick up the selected task |
| arrows | move it between positions and lists |
| enter | drop it and save |
| esc | put it back |

Nothing is saved until you drop. A drop that the server rejects restores
the last saved board.

## Editing

| Key | Action |
| --- | --- |
| a | add a task to the current list |
| A | add a list |
| e | edit the selected task |
| d | delete the selected task |
| s | sort the current list by start date |
| r | reload from the server |

Dates use the form *YYYY-MM-DD*. Tasks in one list may not overlap.

Press **?** to close this help.
`

var (
	helpMu    sync.Mutex
	helpCache = map[int]string{}
)

// renderHelp renders the help page wrapped to width. Renderers use a fixed
// style: WithAutoStyle queries the terminal and can block.
func renderHelp(width int) string {
	width = max(width, 20)

	helpMu.Lock()
	defer helpMu.Unlock()
	if out, ok := helpCache[width]; ok {
		return out
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(styles.DarkStyle),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return helpMarkdown
	}
	out, err := r.Render(helpMarkdown)
	if err != nil {
		return helpMarkdown
	}
	out = strings.TrimRight(out, "\n")
	helpCache[width] = out
	return out
}
