package main

import (
	"fmt"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"antenna/internal/tvmaze"
)

func newLookupCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <imdb-id>",
		Short: "Resolve a single IMDb id to its TVDB id via TVMaze",
		Long: `Resolve one IMDb id (for example tt1234567) to its TVDB id using the
TVMaze lookup API. Useful for checking why a show was skipped during a run.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}

			imdbID := strings.TrimSpace(args[0])
			if imdbID == "" {
				return fmt.Errorf("imdb id is required")
			}

			resolver, err := newTVMazeClient(cfg)
			if err != nil {
				return err
			}

			runCtx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			res := resolver.Lookup(runCtx, imdbID)
			switch res.Outcome {
			case tvmaze.OutcomeFound:
				fmt.Fprintf(cmd.OutOrStdout(), "%s → TVDB %d\n", imdbID, res.TVDBID)
				return nil
			case tvmaze.OutcomeTransportFailed:
				return fmt.Errorf("lookup %s: %w", imdbID, res.Err)
			default:
				return fmt.Errorf("no tvdb id found for %s", imdbID)
			}
		},
	}
}
