package cli

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/go-taskboard/internal/platform/health"
)

var errUnhealthy = errors.New("one or more checks failed")

func newHealthCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Report whether the board server or store can be reached",
		Long: "Report the health of the board target. Against a server this is the " +
			"client circuit breaker state; with --local it pings the store.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := app.service(cmd.Context()); err != nil {
				return err
			}

			registry := health.New()
			for _, c := range app.checkers {
				registry.Register(c)
			}
			results := registry.CheckAll(cmd.Context())

			report := make(map[string]string, len(results))
			failed := false
			for name, err := range results {
				report[name] = "ok"
				if err != nil {
					report[name] = err.Error()
					failed = true
				}
			}

			if app.JSON {
				if err := writeJSON(cmd.OutOrStdout(), report); err != nil {
					return err
				}
			} else {
				for _, name := range slices.Sorted(maps.Keys(report)) {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", name, report[name])
				}
			}
			if failed {
				return errUnhealthy
			}
			return nil
		},
	}
}
