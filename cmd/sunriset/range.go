package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nao1215/sunriset/internal/almanac"
	"github.com/nao1215/sunriset/internal/config"
	"github.com/nao1215/sunriset/internal/solar"
)

// NewRangeCmd creates the range command.
func NewRangeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "range",
		Short: "Sunrise and sunset for consecutive days",
		Long: `Range computes sunrise and sunset for a run of consecutive days at one
location and prints a table with day lengths, solstice and equinox markers,
and a summary.

Examples:
  # A week starting at the default date
  sunriset range

  # June at a named place as Markdown
  sunriset range --from 2025-06-01 --days 30 --place home --markdown

  # A whole year as JSON, eight days at a time
  sunriset range --from 2025-01-01 --days 365 --batch 8 --json -o 2025.json`,
		Args: cobra.NoArgs,
		RunE: runRangeCmd,
	}

	defaultFrom := solar.Date{Year: config.DefaultYear, Month: config.DefaultMonth, Day: config.DefaultDay}
	cmd.Flags().StringP("from", "f", defaultFrom.String(), "First date (YYYY-MM-DD)")
	cmd.Flags().IntP("days", "n", config.DefaultDays, "Number of days")
	cmd.Flags().IntP("batch", "b", config.DefaultBatchSize, "Number of days computed concurrently")
	cmd.Flags().Bool("no-markers", false, "Do not mark solstices and equinoxes")
	cmd.Flags().Bool("no-summary", false, "Do not print the day length summary")
	addLocationFlags(cmd)
	addOutputFlags(cmd)

	return cmd
}

// runRangeCmd executes the range command.
func runRangeCmd(cmd *cobra.Command, _ []string) (err error) {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	from, err := cmd.Flags().GetString("from")
	if err != nil {
		return err
	}
	date, err := solar.ParseDate(from)
	if err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}
	cfg.SetDate(date)

	if cfg.Days, err = cmd.Flags().GetInt("days"); err != nil {
		return err
	}
	if !cmd.Flags().Changed("days") && cfg.Places.Defaults.Days > 0 {
		cfg.Days = cfg.Places.Defaults.Days
	}
	if cfg.BatchSize, err = cmd.Flags().GetInt("batch"); err != nil {
		return err
	}
	if !cmd.Flags().Changed("batch") && cfg.Places.Defaults.BatchSize > 0 {
		cfg.BatchSize = cfg.Places.Defaults.BatchSize
	}
	noMarkers, err := cmd.Flags().GetBool("no-markers")
	if err != nil {
		return err
	}
	if cfg.NoSummary, err = cmd.Flags().GetBool("no-summary"); err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger, closer, err := setupLogger(cmd, cfg)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, closer.Close())
	}()

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	bp := almanac.NewBatchProcessor(
		almanac.WithConcurrency(cfg.BatchSize),
		almanac.WithBatchLogger(logger),
		almanac.WithSeasonMarkers(!noMarkers),
	)

	a, err := bp.ProcessRange(ctx, cfg.Place, cfg.Coordinate(), cfg.Date(), cfg.Days)
	if err != nil {
		if errors.Is(err, context.Canceled) && len(a.Entries) > 0 {
			logger.Warn("interrupted, writing partial almanac", "days", len(a.Entries))
			if werr := outputReport(cmd, cfg, a); werr != nil {
				return errors.Join(err, werr)
			}
		}
		return err
	}

	return outputReport(cmd, cfg, a)
}
