// Package cli implements boardctl, the command-line front end of the board.
//
// By default every command talks to a board server through the boardapi
// client. With --local the configured store is opened directly and the
// persistence gateway runs in-process, so the same commands work without a
// server.
package cli

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/go-taskboard/internal/platform/config"
	"github.com/jsamuelsen11/go-taskboard/internal/platform/httpclient"
	"github.com/jsamuelsen11/go-taskboard/internal/ports"
)

const defaultProfile = "local"

// App holds the flags shared by every command and the dependencies resolved
// from them.
type App struct {
	Profile   string
	ConfigDir string
	Local     bool
	JSON      bool

	cfg      *config.Config
	logger   *slog.Logger
	svc      ports.BoardService
	checkers []ports.HealthChecker
	closeFn  func(context.Context) error
	stderr   io.Writer
}

// Option configures the root command.
type Option func(*App)

// WithService skips configuration and wiring and runs every command against
// svc. checkers are reported by the health command.
func WithService(svc ports.BoardService, checkers ...ports.HealthChecker) Option {
	return func(a *App) {
		a.svc = svc
		a.checkers = checkers
	}
}

// NewRootCmd builds the boardctl command tree.
func NewRootCmd(opts ...Option) *cobra.Command {
	app := &App{stderr: os.Stderr}
	for _, opt := range opts {
		opt(app)
	}

	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		profile = defaultProfile
	}

	cmd := &cobra.Command{
		Use:          "boardctl",
		Short:        "Inspect and rearrange a task board",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Print every list and task
  boardctl show

  # Move a task to the top of another list
  boardctl move 3f2c --to done --index 0

  # Work on the local store without a server
  boardctl --local tui
`),
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&app.Profile, "profile", profile, "configuration profile (local, test, prod)")
	pf.StringVar(&app.ConfigDir, "config-dir", "configs", "directory holding base.yaml and the profile files")
	pf.BoolVar(&app.Local, "local", false, "open the configured store directly instead of calling the board server")
	pf.BoolVar(&app.JSON, "json", false, "print JSON instead of text")

	// One correlation id per command, so the board server can group the
	// load and the write that a single move or reorder makes.
	cmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		cmd.SetContext(httpclient.WithCorrelationID(cmd.Context(), uuid.NewString()))
	}
	cmd.PersistentPostRunE = func(cmd *cobra.Command, _ []string) error {
		return app.shutdown(cmd.Context())
	}

	cmd.AddCommand(
		newShowCmd(app),
		newAddListCmd(app),
		newAddItemCmd(app),
		newEditCmd(app),
		newDeleteCmd(app),
		newMoveCmd(app),
		newReorderCmd(app),
		newHealthCmd(app),
		newTUICmd(app),
	)
	return cmd
}
