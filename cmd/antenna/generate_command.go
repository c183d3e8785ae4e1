package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"antenna/internal/config"
	"antenna/internal/pipeline"
)

func newGenerateCommand(ctx *commandContext) *cobra.Command {
	var number int
	var output string
	var userAgent string
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Scrape popular shows, resolve TVDB ids, and write the import list",
		Long: `Scrape IMDb's popular TV listing, resolve each show to its TVDB id via
TVMaze, and write a Sonarr-compatible JSON import list. Shows without a TVDB
id are skipped; the command fails when nothing could be scraped or resolved.

Examples:
  antenna generate                    # Use configured count and output path
  antenna generate -n 50 -o top.json  # Fetch 50 shows into top.json
  antenna generate --dry-run          # Resolve and display without writing`,
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
			outputPath := cfg.List.Output
			if cmd.Flags().Changed("output") {
				expanded, err := config.ExpandPath(output)
				if err != nil {
					return fmt.Errorf("resolve output path: %w", err)
				}
				outputPath = expanded
			}
			agent := cfg.IMDB.UserAgent
			if cmd.Flags().Changed("user-agent") {
				agent = userAgent
			}

			logger, err := ctx.newLogger(cfg)
			if err != nil {
				return fmt.Errorf("setup logging: %w", err)
			}

			p, err := buildPipeline(cfg, agent, logger)
			if err != nil {
				return err
			}

			runCtx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			summary, err := p.Run(runCtx, pipeline.Options{
				Count:      count,
				OutputPath: outputPath,
				DryRun:     dryRun,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if dryRun {
				printEntries(out, summary.Entries)
				fmt.Fprintf(out, "Dry run: resolved %d of %d scraped shows; nothing written\n",
					summary.Resolved, summary.Scraped)
				return nil
			}

			fmt.Fprintf(out, "Wrote %d entries → %s\n", summary.Resolved, summary.OutputPath)
			if summary.Dropped > 0 {
				fmt.Fprintf(out, "Skipped %d shows without a TVDB id\n", summary.Dropped)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&number, "number", "n", 0, "Number of shows to fetch (default from config)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file path (default from config)")
	cmd.Flags().StringVar(&userAgent, "user-agent", "", "User-Agent header for the listing request")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Resolve and display entries without writing the file")

	return cmd
}
