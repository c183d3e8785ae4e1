package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"antenna/internal/imdb"
	"antenna/internal/logging"
	"antenna/internal/pipeline"
)

func newScrapeCommand(ctx *commandContext) *cobra.Command {
	var number int
	var userAgent string

	cmd := &cobra.Command{
		Use:   "scrape",
		Short: "Fetch the listing and print scraped shows without resolving ids",
		Long: `Fetch the IMDb popular TV listing and print the scraped titles with their
IMDb ids. No TVMaze lookups happen and nothing is written, which makes this
useful for checking selector health when IMDb changes its markup.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}

			count := cfg.List.Count
			if cmd.Flags().Changed("number") {
				count = number
			}
			agent := cfg.IMDB.UserAgent
			if cmd.Flags().Changed("user-agent") {
				agent = userAgent
			}

			logger, err := ctx.newLogger(cfg)
			if err != nil {
				return fmt.Errorf("setup logging: %w", err)
			}

			client, err := newIMDBClient(cfg, agent)
			if err != nil {
				return err
			}

			runCtx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			html, err := client.FetchListing(runCtx, count)
			if err != nil {
				return fmt.Errorf("fetch listing: %w", err)
			}
			records, layout, err := imdb.Extract(html, count)
			if err != nil {
				return fmt.Errorf("extract shows: %w", err)
			}
			if len(records) == 0 {
				return pipeline.ErrNoShows
			}
			logger.Debug("listing scraped",
				logging.Int("shows", len(records)),
				logging.String("layout", string(layout)),
			)

			out := cmd.OutOrStdout()
			printRecords(out, records)
			fmt.Fprintf(out, "Scraped %d shows (%s layout)\n", len(records), layout)
			return nil
		},
	}

	cmd.Flags().IntVarP(&number, "number", "n", 0, "Number of shows to fetch (default from config)")
	cmd.Flags().StringVar(&userAgent, "user-agent", "", "User-Agent header for the listing request")

	return cmd
}
