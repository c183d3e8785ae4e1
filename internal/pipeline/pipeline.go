package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"antenna/internal/imdb"
	"antenna/internal/logging"
	"antenna/internal/notifications"
	"antenna/internal/sonarr"
	"antenna/internal/tvmaze"
)

var (
	// ErrNoShows reports that the listing page yielded zero records.
	ErrNoShows = errors.New("no shows were scraped from the listing")
	// ErrNoneResolved reports that every scraped record failed TVDB resolution.
	ErrNoneResolved = errors.New("no tvdb ids could be resolved")
)

// Lister fetches the raw listing markup for up to count shows.
type Lister interface {
	FetchListing(ctx context.Context, count int) ([]byte, error)
}

// Options control a single run.
type Options struct {
	Count      int
	OutputPath string
	DryRun     bool
}

// Summary reports what a run produced.
type Summary struct {
	RunID      string
	Requested  int
	Scraped    int
	Resolved   int
	Dropped    int
	Layout     imdb.Layout
	Entries    []sonarr.Entry
	OutputPath string
	Written    bool
}

// Pipeline wires the scrape, resolve, and publish stages together.
type Pipeline struct {
	lister   Lister
	resolver tvmaze.Resolver
	notifier notifications.Service
	logger   *slog.Logger
}

// New validates the collaborators and returns a ready pipeline. The notifier
// may be nil when the caller has no notification surface.
func New(lister Lister, resolver tvmaze.Resolver, notifier notifications.Service, logger *slog.Logger) (*Pipeline, error) {
	if lister == nil {
		return nil, errors.New("pipeline requires a lister")
	}
	if resolver == nil {
		return nil, errors.New("pipeline requires a resolver")
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Pipeline{
		lister:   lister,
		resolver: resolver,
		notifier: notifier,
		logger:   logging.NewComponentLogger(logger, "pipeline"),
	}, nil
}

// Run executes one scrape, resolve, and write cycle. Records that fail
// resolution are dropped individually; the run itself fails only when nothing
// could be scraped or nothing could be resolved.
func (p *Pipeline) Run(ctx context.Context, opts Options) (*Summary, error) {
	if opts.Count < 1 {
		return nil, fmt.Errorf("count must be positive, got %d", opts.Count)
	}
	if !opts.DryRun && strings.TrimSpace(opts.OutputPath) == "" {
		return nil, errors.New("output path required")
	}

	runStart := time.Now()
	runID := uuid.NewString()
	logger := p.logger.With(logging.String(logging.FieldRunID, runID))
	logger.Info("run started",
		logging.String(logging.FieldEventType, "run_started"),
		logging.Int("count", opts.Count),
		logging.Bool("dry_run", opts.DryRun),
	)

	if !opts.DryRun {
		release, err := acquireRunLock(opts.OutputPath)
		if err != nil {
			return nil, err
		}
		defer release()
	}

	html, err := p.lister.FetchListing(ctx, opts.Count)
	if err != nil {
		err = fmt.Errorf("fetch listing: %w", err)
		p.reportFailure(ctx, logger, err, "scrape")
		return nil, err
	}

	records, layout, err := imdb.Extract(html, opts.Count)
	if err != nil {
		err = fmt.Errorf("extract shows: %w", err)
		p.reportFailure(ctx, logger, err, "scrape")
		return nil, err
	}
	if len(records) == 0 {
		p.reportFailure(ctx, logger, ErrNoShows, "scrape")
		return nil, ErrNoShows
	}
	if layout == imdb.LayoutLegacy {
		attrs := append(logging.DecisionAttrs("listing_layout", string(layout), "current layout selectors matched nothing"),
			logging.Int("shows", len(records)),
		)
		logger.Info("listing layout fallback engaged", logging.Args(attrs...)...)
	}
	logger.Info("listing scraped",
		logging.String(logging.FieldEventType, "listing_scraped"),
		logging.Int("shows", len(records)),
		logging.String("layout", string(layout)),
	)

	entries, dropped, err := p.buildEntries(ctx, logger, records)
	if err != nil {
		return nil, err
	}

	if len(entries) == 0 {
		p.reportFailure(ctx, logger, ErrNoneResolved, "resolve")
		return nil, ErrNoneResolved
	}

	summary := &Summary{
		RunID:      runID,
		Requested:  opts.Count,
		Scraped:    len(records),
		Resolved:   len(entries),
		Dropped:    dropped,
		Layout:     layout,
		Entries:    entries,
		OutputPath: opts.OutputPath,
	}

	if opts.DryRun {
		logger.Info("dry run complete",
			logging.String(logging.FieldEventType, "dry_run_complete"),
			logging.Int("resolved", summary.Resolved),
			logging.Int("dropped", summary.Dropped),
			logging.Duration("duration", time.Since(runStart)),
		)
		return summary, nil
	}

	count, err := sonarr.WriteList(opts.OutputPath, entries)
	if err != nil {
		p.reportFailure(ctx, logger, err, "write")
		return nil, err
	}
	summary.Written = true
	logger.Info("import list written",
		logging.String(logging.FieldEventType, "import_list_written"),
		logging.Int("entries", count),
		logging.Int("dropped", summary.Dropped),
		logging.Duration("duration", time.Since(runStart)),
		logging.String("output", opts.OutputPath),
	)
	p.notifySuccess(ctx, logger, count, opts.OutputPath)
	return summary, nil
}

// buildEntries resolves records in listing order, keeping an entry per Found
// outcome and dropping the rest with a warning. It stops early only when the
// context is cancelled.
func (p *Pipeline) buildEntries(ctx context.Context, logger *slog.Logger, records []imdb.Record) ([]sonarr.Entry, int, error) {
	entries := make([]sonarr.Entry, 0, len(records))
	dropped := 0
	for _, rec := range records {
		if err := ctx.Err(); err != nil {
			return nil, dropped, fmt.Errorf("resolve tvdb ids: %w", err)
		}
		res := p.resolver.Lookup(ctx, rec.IMDBID)
		switch res.Outcome {
		case tvmaze.OutcomeFound:
			entries = append(entries, sonarr.Entry{Title: rec.Title, TVDBID: res.TVDBID})
			logger.Debug("tvdb id resolved",
				logging.String("imdb_id", rec.IMDBID),
				logging.Int64("tvdb_id", res.TVDBID),
			)
		case tvmaze.OutcomeTransportFailed:
			dropped++
			logging.WarnWithContext(logger, "tvdb lookup failed", "tvdb_lookup_failed",
				logging.String("imdb_id", rec.IMDBID),
				logging.String("title", rec.Title),
				logging.Error(res.Err),
			)
		default:
			dropped++
			logging.WarnWithContext(logger, "no tvdb id for show", "tvdb_id_missing",
				logging.String("imdb_id", rec.IMDBID),
				logging.String("title", rec.Title),
			)
		}
	}
	return entries, dropped, nil
}

func (p *Pipeline) notifySuccess(ctx context.Context, logger *slog.Logger, count int, output string) {
	if p.notifier == nil {
		return
	}
	if err := p.notifier.NotifyListGenerated(ctx, count, output); err != nil {
		logger.Warn("success notification not delivered", logging.Error(err))
	}
}

func (p *Pipeline) reportFailure(ctx context.Context, logger *slog.Logger, err error, stage string) {
	logging.ErrorWithContext(logger, "run failed", "run_failed",
		logging.String("stage", stage),
		logging.Error(err),
	)
	if p.notifier == nil {
		return
	}
	if nerr := p.notifier.NotifyRunFailed(ctx, err, stage); nerr != nil {
		logger.Warn("failure notification not delivered", logging.Error(nerr))
	}
}
