package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nao1215/sunriset/internal/almanac"
	"github.com/nao1215/sunriset/internal/config"
	"github.com/nao1215/sunriset/internal/model"
)

// NewRootCmd creates the root command for sunriset.
// Run without a subcommand it computes a single date.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sunriset",
		Short: "Civil sunrise and sunset times",
		Long: `sunriset computes sunrise and sunset for a date and a location.

Times are UTC decimal hours printed as H:MM. The horizon is the upper limb
of the Sun with standard refraction. Inside the polar circles the Sun may
stay above or below the horizon all day, which is reported instead of times.

Examples:
  # Default date and location
  sunriset

  # A given date and coordinate (longitude positive east)
  sunriset -y 2014 -m 6 -d 28 -g -0.1278 -l 51.5074

  # A place from the configuration file
  sunriset --place home --markdown

  # Print the date too, and keep a copy of the report
  sunriset --show-date -o today.txt --tee

  # Log to a rotating file as well as stderr
  sunriset -2 -v`,
		Version:       getVersion(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runRootCmd,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().BoolP("log2file", "2", false, "Also write logs to a rotating log file")
	cmd.PersistentFlags().String("log-file", "",
		"Log file path (default: sunriset.log in the XDG state directory)")
	cmd.PersistentFlags().Bool("log-json", false, "Write console logs as JSON lines")

	cmd.Flags().IntP("year", "y", config.DefaultYear, "Year (astronomical numbering)")
	cmd.Flags().IntP("month", "m", config.DefaultMonth, "Month (1-12)")
	cmd.Flags().IntP("day", "d", config.DefaultDay, "Day of month (1-31)")
	cmd.Flags().Bool("show-date", false, "Print the date before the times")
	addLocationFlags(cmd)
	addOutputFlags(cmd)

	cmd.AddCommand(NewRangeCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runRootCmd computes and prints a single date.
func runRootCmd(cmd *cobra.Command, _ []string) (err error) {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.Year, err = cmd.Flags().GetInt("year"); err != nil {
		return err
	}
	if cfg.Month, err = cmd.Flags().GetInt("month"); err != nil {
		return err
	}
	if cfg.Day, err = cmd.Flags().GetInt("day"); err != nil {
		return err
	}
	if cfg.ShowDate, err = cmd.Flags().GetBool("show-date"); err != nil {
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

	date, coord := cfg.Date(), cfg.Coordinate()
	logger.Debug("computing sunrise and sunset",
		"date", date.String(),
		"latitude", coord.Latitude,
		"longitude", coord.Longitude,
	)

	a := model.NewAlmanac(cfg.Place, coord)
	entry := model.NewEntry(date, coord)
	entry.Marker = almanac.SeasonMarker(date)
	a.Entries = append(a.Entries, entry)

	logger.Debug("computed",
		"state", entry.Result.State.String(),
		"sunrise", entry.Result.Sunrise,
		"sunset", entry.Result.Sunset,
	)

	return outputReport(cmd, cfg, a)
}
