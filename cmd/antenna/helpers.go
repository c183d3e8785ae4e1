package main

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"antenna/internal/config"
	"antenna/internal/imdb"
	"antenna/internal/notifications"
	"antenna/internal/pipeline"
	"antenna/internal/sonarr"
	"antenna/internal/tvmaze"
)

func httpTimeoutClient(seconds int) *http.Client {
	return &http.Client{Timeout: time.Duration(seconds) * time.Second}
}

func newIMDBClient(cfg *config.Config, userAgent string) (*imdb.Client, error) {
	client, err := imdb.New(cfg.IMDB.BaseURL, userAgent,
		imdb.WithHTTPClient(httpTimeoutClient(cfg.IMDB.TimeoutSeconds)))
	if err != nil {
		return nil, fmt.Errorf("create imdb client: %w", err)
	}
	return client, nil
}

func newTVMazeClient(cfg *config.Config) (*tvmaze.Client, error) {
	client, err := tvmaze.New(cfg.TVMaze.BaseURL,
		tvmaze.WithHTTPClient(httpTimeoutClient(cfg.TVMaze.TimeoutSeconds)))
	if err != nil {
		return nil, fmt.Errorf("create tvmaze client: %w", err)
	}
	return client, nil
}

func buildPipeline(cfg *config.Config, userAgent string, logger *slog.Logger) (*pipeline.Pipeline, error) {
	lister, err := newIMDBClient(cfg, userAgent)
	if err != nil {
		return nil, err
	}
	resolver, err := newTVMazeClient(cfg)
	if err != nil {
		return nil, err
	}
	return pipeline.New(lister, resolver, notifications.NewService(cfg), logger)
}

// printEntries renders resolved entries as a table on terminals and as
// tab-separated lines otherwise.
func printEntries(out io.Writer, entries []sonarr.Entry) {
	if len(entries) == 0 {
		return
	}
	if isTerminal(out) {
		rows := make([][]string, 0, len(entries))
		for i, entry := range entries {
			rows = append(rows, []string{
				strconv.Itoa(i + 1),
				entry.Title,
				strconv.FormatInt(entry.TVDBID, 10),
			})
		}
		fmt.Fprintln(out, renderTable(
			[]string{"#", "Title", "TVDB ID"},
			rows,
			[]columnAlignment{alignRight, alignLeft, alignRight},
		))
		return
	}
	for _, entry := range entries {
		fmt.Fprintf(out, "%s\t%d\n", entry.Title, entry.TVDBID)
	}
}

// printRecords renders scraped records before any id resolution happens.
func printRecords(out io.Writer, records []imdb.Record) {
	if len(records) == 0 {
		return
	}
	if isTerminal(out) {
		rows := make([][]string, 0, len(records))
		for i, rec := range records {
			rows = append(rows, []string{strconv.Itoa(i + 1), rec.Title, rec.IMDBID})
		}
		fmt.Fprintln(out, renderTable(
			[]string{"#", "Title", "IMDb ID"},
			rows,
			[]columnAlignment{alignRight, alignLeft, alignLeft},
		))
		return
	}
	for _, rec := range records {
		fmt.Fprintf(out, "%s\t%s\n", rec.Title, rec.IMDBID)
	}
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
