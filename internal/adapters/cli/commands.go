package cli

import (
	"errors"
	"fmt"
	"maps"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/go-taskboard/internal/domain"
	"github.com/jsamuelsen11/go-taskboard/internal/domain/board"
)

func newShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print every list with its tasks in order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := app.service(cmd.Context())
			if err != nil {
				return err
			}
			b, err := svc.LoadBoard(cmd.Context())
			if err != nil {
				return err
			}
			return app.printBoard(cmd.OutOrStdout(), b)
		},
	}
}

func newAddListCmd(app *App) *cobra.Command {
	var (
		id       string
		position int
	)
	cmd := &cobra.Command{
		Use:   "add-list <name>",
		Short: "Create an empty list (appended unless --position is given)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, err := app.service(ctx)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("position") {
				b, err := svc.LoadBoard(ctx)
				if err != nil {
					return err
				}
				position = b.ListCount()
			}
			l := board.List{ID: idOrNew(id), Name: args[0], Position: position}
			if err := svc.AddList(ctx, l); err != nil {
				return err
			}
			return app.printResult(cmd.OutOrStdout(), "tasklistID", l.ID)
		},
	}
	cmd.Flags().StringVar(&id, "id", "", "list id (generated when empty)")
	cmd.Flags().IntVar(&position, "position", 0, "index among the lists")
	return cmd
}

func newAddItemCmd(app *App) *cobra.Command {
	var (
		id       string
		listID   string
		start    string
		end      string
		position int
	)
	cmd := &cobra.Command{
		Use:   "add-item <text>",
		Short: "Create a task in a list (appended unless --position is given)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, e, err := parseRange(start, end)
			if err != nil {
				return err
			}
			svc, err := app.service(ctx)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("position") {
				b, err := svc.LoadBoard(ctx)
				if err != nil {
					return err
				}
				if position = b.Len(listID); position < 0 {
					return domain.NotFound("tasklistID", listID)
				}
			}
			it := board.Item{
				ID:       idOrNew(id),
				Text:     args[0],
				Position: position,
				ListID:   listID,
				Start:    s,
				End:      e,
			}
			if err := svc.AddItem(ctx, it); err != nil {
				return err
			}
			return app.printResult(cmd.OutOrStdout(), "taskID", it.ID)
		},
	}
	f := cmd.Flags()
	f.StringVar(&id, "id", "", "task id (generated when empty)")
	f.StringVar(&listID, "list", "", "owning list id")
	f.StringVar(&start, "start", "", "start date, YYYY-MM-DD")
	f.StringVar(&end, "end", "", "end date, YYYY-MM-DD")
	f.IntVar(&position, "position", 0, "index inside the list")
	_ = cmd.MarkFlagRequired("list")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")
	return cmd
}

func newEditCmd(app *App) *cobra.Command {
	var (
		text     string
		start    string
		end      string
		position int
	)
	cmd := &cobra.Command{
		Use:   "edit <task-id>",
		Short: "Change the text, dates or position of a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			var p board.ItemPatch
			flags := cmd.Flags()
			if flags.Changed("text") {
				p.Text = &text
			}
			if flags.Changed("position") {
				p.Position = &position
			}
			if flags.Changed("start") {
				t, err := parseDate("start", start)
				if err != nil {
					return err
				}
				p.Start = &t
			}
			if flags.Changed("end") {
				t, err := parseDate("end", end)
				if err != nil {
					return err
				}
				p.End = &t
			}
			if err := p.Validate(); err != nil {
				return err
			}

			svc, err := app.service(ctx)
			if err != nil {
				return err
			}
			if err := svc.UpdateItem(ctx, args[0], p); err != nil {
				return err
			}
			return app.printResult(cmd.OutOrStdout(), "taskID", args[0])
		},
	}
	f := cmd.Flags()
	f.StringVar(&text, "text", "", "new text")
	f.StringVar(&start, "start", "", "new start date, YYYY-MM-DD")
	f.StringVar(&end, "end", "", "new end date, YYYY-MM-DD")
	f.IntVar(&position, "position", 0, "new index inside the list")
	return cmd
}

func newDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <task-id>",
		Short: "Delete a task and close the gap in its list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, err := app.service(ctx)
			if err != nil {
				return err
			}
			if err := svc.DeleteItem(ctx, args[0]); err != nil {
				return err
			}
			return app.printResult(cmd.OutOrStdout(), "taskID", args[0])
		},
	}
}

func newMoveCmd(app *App) *cobra.Command {
	var (
		from  string
		to    string
		index int
	)
	cmd := &cobra.Command{
		Use:   "move <task-id>",
		Short: "Move a task to another list",
		Long: strings.TrimSpace(`
Move a task to another list as one atomic write. Without --index the task
is appended. Without --from the current owner is looked up first.`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, err := app.service(ctx)
			if err != nil {
				return err
			}
			req := board.MoveRequest{ItemID: args[0], SrcListID: from, DestListID: to}
			if cmd.Flags().Changed("index") {
				req.DestIndex = &index
			}
			if req.SrcListID == "" {
				b, err := svc.LoadBoard(ctx)
				if err != nil {
					return err
				}
				it, ok := b.Item(req.ItemID)
				if !ok {
					return domain.NotFound("taskID", req.ItemID)
				}
				req.SrcListID = it.ListID
			}
			if req.SrcListID == req.DestListID {
				return domain.NewValidationError("to", "must differ from the task's list; use reorder within a list")
			}
			if err := req.Validate(); err != nil {
				return err
			}
			if err := svc.MoveItem(ctx, req); err != nil {
				return err
			}
			return app.printResult(cmd.OutOrStdout(), "taskID", req.ItemID)
		},
	}
	f := cmd.Flags()
	f.StringVar(&from, "from", "", "current list id (looked up when empty)")
	f.StringVar(&to, "to", "", "destination list id")
	f.IntVar(&index, "index", 0, "destination index")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

func newReorderCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reorder <list-id> <task-id>...",
		Short: "Rearrange a list into the given order",
		Long: strings.TrimSpace(`
Rearrange a list. The task ids must name every task of the list exactly
once. Only tasks whose position changes are written.`),
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, err := app.service(ctx)
			if err != nil {
				return err
			}
			b, err := svc.LoadBoard(ctx)
			if err != nil {
				return err
			}
			listID, order := args[0], args[1:]
			delta, err := board.PlanReorder(b, listID, order)
			if err != nil {
				return err
			}
			if !delta.Empty() {
				if err := svc.ReorderItems(ctx, delta); err != nil {
					return err
				}
			}
			return app.printResult(cmd.OutOrStdout(), "changed", fmt.Sprint(len(delta)))
		},
	}
}

func idOrNew(id string) string {
	if id = strings.TrimSpace(id); id != "" {
		return id
	}
	return uuid.NewString()
}

func parseDate(field, s string) (time.Time, error) {
	t, err := time.Parse(time.DateOnly, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, domain.NewValidationError(field, "want YYYY-MM-DD")
	}
	return t, nil
}

// parseRange parses both dates and reports every bad one at once.
func parseRange(start, end string) (time.Time, time.Time, error) {
	s, serr := parseDate("start", start)
	e, eerr := parseDate("end", end)
	if serr != nil || eerr != nil {
		fields := make(map[string]string)
		for _, err := range []error{serr, eerr} {
			var ve *domain.ValidationError
			if errors.As(err, &ve) {
				maps.Copy(fields, ve.Fields)
			}
		}
		return time.Time{}, time.Time{}, &domain.ValidationError{Fields: fields}
	}
	return s, e, nil
}
