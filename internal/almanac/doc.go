// Package almanac computes sunrise and sunset for runs of consecutive dates.
//
// The BatchProcessor fans the days of a range out over a bounded number of
// goroutines and collects the entries back in date order. Each day is an
// independent call to the pure solar solver, so no coordination beyond the
// result slice is needed.
//
// Entries that fall on a solstice or equinox are annotated with a season
// marker, computed from Meeus' algorithms.
//
// # Usage
//
//	bp := almanac.NewBatchProcessor(
//	    almanac.WithConcurrency(4),
//	    almanac.WithBatchLogger(logger),
//	)
//	a, err := bp.ProcessRange(ctx, "Home", coord, from, 30)
package almanac
