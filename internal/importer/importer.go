// Package importer bulk-loads recipes from the Marmiton API into the store.
package importer

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/matt-dz/cookingpuppy/internal/log"
	"github.com/matt-dz/cookingpuppy/internal/marmiton"
	"github.com/matt-dz/cookingpuppy/internal/metrics"
	"github.com/matt-dz/cookingpuppy/internal/recipe"
	"github.com/matt-dz/cookingpuppy/internal/store"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

const (
	DefaultConcurrency    = 8
	DefaultRequestTimeout = 30 * time.Second
)

// Fetcher retrieves a single provider record.
type Fetcher interface {
	Fetch(ctx context.Context, id string) (marmiton.Record, error)
}

var _ Fetcher = (*marmiton.Client)(nil)

type Config struct {
	// Concurrency bounds the number of fetches in flight.
	Concurrency int
	// RequestTimeout bounds each fetch, retries included.
	RequestTimeout time.Duration
	// RequestsPerSecond paces fetches when positive.
	RequestsPerSecond float64
}

type Result struct {
	Imported int      `json:"imported"`
	Failed   []string `json:"failed"`
}

type Job struct {
	fetcher Fetcher
	store   store.Store
	cfg     Config
	limiter *rate.Limiter
	logger  *slog.Logger
}

func New(fetcher Fetcher, st store.Store, cfg Config, logger *slog.Logger) *Job {
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = DefaultConcurrency
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = DefaultRequestTimeout
	}
	if logger == nil {
		logger = log.NullLogger()
	}

	var limiter *rate.Limiter
	if cfg.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1)
	}

	return &Job{
		fetcher: fetcher,
		store:   st,
		cfg:     cfg,
		limiter: limiter,
		logger:  logger,
	}
}

type fetched struct {
	input recipe.Input
	err   error
}

// ImportBatch fetches every id, transforms the records and inserts them one
// at a time in input order. A failure for one id never aborts the batch; the
// id is reported in Failed instead. Prior inserts are kept.
func (j *Job) ImportBatch(ctx context.Context, ids []string) Result {
	metrics.ImportBatches.Inc()

	wanted := make([]string, 0, len(ids))
	for _, id := range ids {
		if id = strings.TrimSpace(id); id != "" {
			wanted = append(wanted, id)
		}
	}
	j.logger.InfoContext(ctx, "starting recipe import",
		slog.Int("ids", len(wanted)),
		slog.Int("concurrency", j.cfg.Concurrency))

	// Each goroutine owns its slot.
	records := make([]fetched, len(wanted))
	var g errgroup.Group
	g.SetLimit(j.cfg.Concurrency)
	for i, id := range wanted {
		g.Go(func() error {
			records[i] = j.fetch(ctx, id)
			return nil
		})
	}
	_ = g.Wait()

	result := Result{Failed: []string{}}
	for i, id := range wanted {
		if err := j.insert(ctx, id, records[i]); err != nil {
			result.Failed = append(result.Failed, id)
			metrics.RecordImportRecord(false)
			continue
		}
		result.Imported++
		metrics.RecordImportRecord(true)
	}

	j.logger.InfoContext(ctx, "recipe import finished",
		slog.Int("imported", result.Imported),
		slog.Int("failed", len(result.Failed)))
	return result
}

func (j *Job) fetch(ctx context.Context, id string) fetched {
	if j.limiter != nil {
		if err := j.limiter.Wait(ctx); err != nil {
			return fetched{err: &ExternalFetchError{ID: id, Err: err}}
		}
	}

	fetchCtx, cancel := context.WithTimeout(ctx, j.cfg.RequestTimeout)
	defer cancel()

	start := time.Now()
	record, err := j.fetcher.Fetch(fetchCtx, id)
	metrics.ImportFetchDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		return fetched{err: &ExternalFetchError{ID: id, Err: err}}
	}
	return fetched{input: Transform(record)}
}

func (j *Job) insert(ctx context.Context, id string, f fetched) error {
	if f.err != nil {
		j.logger.WarnContext(ctx, "failed to fetch external recipe",
			slog.String("id", id), slog.Any("error", f.err))
		return f.err
	}

	if err := f.input.Validate(); err != nil {
		j.logger.WarnContext(ctx, "external recipe is invalid",
			slog.String("id", id), slog.Any("error", err))
		return err
	}

	rec, err := j.store.Create(ctx, f.input)
	if err != nil {
		j.logger.ErrorContext(ctx, "failed to store external recipe",
			slog.String("id", id), slog.Any("error", err))
		return err
	}

	j.logger.DebugContext(ctx, "imported recipe",
		slog.String("id", id), slog.Int64("recipe_id", rec.ID))
	return nil
}
