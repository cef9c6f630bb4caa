package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/go-taskboard/internal/adapters/tui"
	"github.com/jsamuelsen11/go-taskboard/internal/app/coordinator"
	"github.com/jsamuelsen11/go-taskboard/internal/platform/logging"
)

func newTUICmd(app *App) *cobra.Command {
	var logFile string
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive board",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// The alternate screen owns the terminal, so logs go to a file or
			// nowhere.
			var w io.Writer = io.Discard
			if logFile != "" {
				f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
				if err != nil {
					return fmt.Errorf("opening log file: %w", err)
				}
				defer f.Close()
				w = f
			}
			app.stderr = w

			ctx := cmd.Context()
			svc, err := app.service(ctx)
			if err != nil {
				return err
			}
			logger := app.logger
			if logger == nil {
				logger = logging.New("info", "text", w)
			}

			bridge := tui.NewBridge(logger)
			coord := coordinator.New(svc, bridge, bridge, logger,
				coordinator.WithCommitTimeout(app.commitTimeout()),
			)
			p := tea.NewProgram(tui.New(ctx, coord),
				tea.WithAltScreen(),
				tea.WithContext(ctx),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)

			pumpCtx, stop := context.WithCancel(ctx)
			defer stop()
			go bridge.Pump(pumpCtx, p.Send)

			logger.Info("board ui started")
			if _, err := p.Run(); err != nil {
				logger.Error("board ui failed", slog.Any("error", err))
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&logFile, "log-file", "", "append logs to this file while the UI runs")
	return cmd
}
