package almanac

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/nao1215/sunriset/internal/model"
	"github.com/nao1215/sunriset/internal/solar"
)

// DefaultConcurrency is the number of days computed in parallel when no
// WithConcurrency option is given.
const DefaultConcurrency = 4

// ErrInvalidDays is returned when a range has no days.
var ErrInvalidDays = errors.New("invalid day count: must be positive")

// EntryFunc computes a single almanac entry.
type EntryFunc func(date solar.Date, coord solar.Coordinate) model.Entry

// BatchProcessor computes entries for a range of dates concurrently.
// It uses errgroup to bound the number of goroutines and to stop early on
// context cancellation.
type BatchProcessor struct {
	// entryFunc computes one day. Defaults to model.NewEntry.
	entryFunc EntryFunc

	// concurrency is the maximum number of days computed at once.
	concurrency int

	// markers enables solstice and equinox annotations.
	markers bool

	// logger is used for batch-level logging.
	logger *slog.Logger
}

// BatchOption configures a BatchProcessor.
type BatchOption func(*BatchProcessor)

// WithBatchLogger sets a custom logger for batch processing.
func WithBatchLogger(logger *slog.Logger) BatchOption {
	return func(b *BatchProcessor) {
		b.logger = logger
	}
}

// WithConcurrency sets the maximum number of days computed at once.
// Non-positive values are ignored.
func WithConcurrency(n int) BatchOption {
	return func(b *BatchProcessor) {
		if n > 0 {
			b.concurrency = n
		}
	}
}

// WithSeasonMarkers toggles solstice and equinox markers on entries.
// Markers are on by default.
func WithSeasonMarkers(enabled bool) BatchOption {
	return func(b *BatchProcessor) {
		b.markers = enabled
	}
}

// WithEntryFunc replaces the per-day computation.
func WithEntryFunc(fn EntryFunc) BatchOption {
	return func(b *BatchProcessor) {
		if fn != nil {
			b.entryFunc = fn
		}
	}
}

// NewBatchProcessor creates a new BatchProcessor.
func NewBatchProcessor(opts ...BatchOption) *BatchProcessor {
	bp := &BatchProcessor{
		entryFunc:   model.NewEntry,
		concurrency: DefaultConcurrency,
		markers:     true,
	}

	for _, opt := range opts {
		opt(bp)
	}

	if bp.logger == nil {
		bp.logger = slog.Default()
	}

	return bp
}

// ProcessRange computes days consecutive entries starting at from.
// Entries in the returned almanac are in date order regardless of the
// order in which they finished. On cancellation the partial almanac is
// returned together with the context error.
func (bp *BatchProcessor) ProcessRange(
	ctx context.Context,
	place string,
	coord solar.Coordinate,
	from solar.Date,
	days int,
) (*model.Almanac, error) {
	a := model.NewAlmanac(place, coord)
	if days <= 0 {
		return a, ErrInvalidDays
	}

	bp.logger.Info("starting almanac",
		"from", from.String(),
		"days", days,
		"concurrency", bp.concurrency,
		"latitude", coord.Latitude,
		"longitude", coord.Longitude,
	)
	startTime := time.Now()

	entries := make([]model.Entry, days)
	done := make([]bool, days)
	var mu sync.Mutex

	err := bp.ProcessRangeWithCallback(ctx, coord, from, days, func(e model.Entry, index int) {
		mu.Lock()
		defer mu.Unlock()
		entries[index] = e
		done[index] = true
	})

	for i, ok := range done {
		if ok {
			a.Entries = append(a.Entries, entries[i])
		}
	}

	bp.logger.Info("almanac complete",
		"days", len(a.Entries),
		"elapsed", time.Since(startTime),
	)

	return a, err
}

// ProcessRangeWithCallback computes days consecutive entries starting at
// from and calls callback for each as it completes. index is the offset of
// the entry's date from from. The callback runs on worker goroutines and
// must be safe for concurrent use.
func (bp *BatchProcessor) ProcessRangeWithCallback(
	ctx context.Context,
	coord solar.Coordinate,
	from solar.Date,
	days int,
	callback func(entry model.Entry, index int),
) error {
	if days <= 0 {
		return ErrInvalidDays
	}

	markers := bp.seasonMarkers(from, days)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(bp.concurrency)

	scheduled := 0
	for i := 0; i < days; i++ {
		// Stop scheduling once cancelled; running days still finish.
		if gctx.Err() != nil {
			break
		}
		scheduled++

		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			date := from.AddDays(i)
			entry := bp.entryFunc(date, coord)
			entry.Marker = markers[date]

			bp.logger.Debug("computed day",
				"date", date.String(),
				"state", entry.Result.State.String(),
				"latitude", coord.Latitude,
				"longitude", coord.Longitude,
			)

			callback(entry, i)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	if scheduled < days {
		return ctx.Err()
	}
	return nil
}

// seasonMarkers collects solstice and equinox dates for every year the
// range touches.
func (bp *BatchProcessor) seasonMarkers(from solar.Date, days int) map[solar.Date]string {
	markers := make(map[solar.Date]string)
	if !bp.markers {
		return markers
	}

	last := from.AddDays(days - 1)
	for year := from.Time().Year(); year <= last.Year; year++ {
		for date, name := range SeasonDates(year) {
			markers[date] = name
		}
	}
	return markers
}
