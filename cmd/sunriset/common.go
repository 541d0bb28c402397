package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/nao1215/sunriset/internal/config"
	"github.com/nao1215/sunriset/internal/log"
	"github.com/nao1215/sunriset/internal/model"
	"github.com/nao1215/sunriset/internal/report"
)

// addLocationFlags registers the observer location flags.
func addLocationFlags(cmd *cobra.Command) {
	cmd.Flags().Float64P("longitude", "g", config.DefaultLongitude,
		"Longitude in degrees, positive east")
	cmd.Flags().Float64P("latitude", "l", config.DefaultLatitude,
		"Latitude in degrees, positive north")
	cmd.Flags().StringP("place", "p", "",
		"Named place from the configuration file (case-insensitive)")
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .sunriset in current or home directory)")
}

// addOutputFlags registers the report format flags.
func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().Bool("markdown", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")
	cmd.Flags().Bool("tee", false,
		"With --output, also print the report to stdout")
}

// getPersistentBool reads a global flag whether or not cobra has merged
// persistent flags into cmd yet.
func getPersistentBool(cmd *cobra.Command, name string) bool {
	v, err := cmd.Flags().GetBool(name)
	if err != nil {
		v, err = cmd.Root().PersistentFlags().GetBool(name)
		if err != nil {
			return false
		}
	}
	return v
}

// getPersistentString is the string counterpart of getPersistentBool.
func getPersistentString(cmd *cobra.Command, name string) string {
	v, err := cmd.Flags().GetString(name)
	if err != nil {
		v, err = cmd.Root().PersistentFlags().GetString(name)
		if err != nil {
			return ""
		}
	}
	return v
}

// getVerboseFlag returns the verbose flag value.
func getVerboseFlag(cmd *cobra.Command) bool {
	return getPersistentBool(cmd, "verbose")
}

// buildConfig creates a Config from the location, output and logging flags
// and the configuration file. Date flags are read by each command.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error

	cfg.Verbose = getVerboseFlag(cmd)
	cfg.LogToFile = getPersistentBool(cmd, "log2file")
	cfg.LogFile = getPersistentString(cmd, "log-file")
	cfg.LogJSON = getPersistentBool(cmd, "log-json")

	if cfg.Longitude, err = cmd.Flags().GetFloat64("longitude"); err != nil {
		return nil, err
	}
	if cfg.Latitude, err = cmd.Flags().GetFloat64("latitude"); err != nil {
		return nil, err
	}
	if cfg.Place, err = cmd.Flags().GetString("place"); err != nil {
		return nil, err
	}
	if cfg.ConfigFilePath, err = cmd.Flags().GetString("config"); err != nil {
		return nil, err
	}

	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		cfg.Places, err = config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	} else if explicitConfigPath {
		return nil, fmt.Errorf("%w: %s", config.ErrConfigNotFound, cfg.ConfigFilePath)
	} else {
		cfg.Places = &config.File{
			Places: make(map[string]config.Place),
		}
	}

	if err := resolvePlace(cmd, cfg); err != nil {
		return nil, err
	}

	if cfg.JSONReport, err = cmd.Flags().GetBool("json"); err != nil {
		return nil, err
	}
	if cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown"); err != nil {
		return nil, err
	}
	if cfg.ReportFile, err = cmd.Flags().GetString("output"); err != nil {
		return nil, err
	}
	if cfg.Tee, err = cmd.Flags().GetBool("tee"); err != nil {
		return nil, err
	}

	return cfg, nil
}

// resolvePlace replaces the coordinate with a named place. An explicit
// --place always wins. Otherwise the file's default place is used unless a
// coordinate flag was given.
func resolvePlace(cmd *cobra.Command, cfg *config.Config) error {
	name := cfg.Place
	if name == "" {
		if cmd.Flags().Changed("latitude") || cmd.Flags().Changed("longitude") {
			return nil
		}
		if cfg.Places.Defaults.Place == "" {
			return nil
		}
	}

	label, place, err := cfg.Places.LookupPlace(name)
	if err != nil {
		return err
	}

	cfg.Place = label
	if !cmd.Flags().Changed("latitude") {
		cfg.Latitude = place.Latitude
	}
	if !cmd.Flags().Changed("longitude") {
		cfg.Longitude = place.Longitude
	}
	return nil
}

// closerFunc adapts a function to io.Closer.
type closerFunc func() error

func (f closerFunc) Close() error { return f() }

// setupLogger creates the logger for a command. Logs go to stderr, as JSON
// with --log-json, and with --log2file also to a rotating file. The
// returned closer must be closed when the command finishes.
func setupLogger(cmd *cobra.Command, cfg *config.Config) (*slog.Logger, io.Closer, error) {
	if !cfg.LogToFile {
		nop := closerFunc(func() error { return nil })
		if cfg.LogJSON {
			return log.NewJSONLogger(cmd.ErrOrStderr(), cfg.Verbose), nop, nil
		}
		return log.NewLogger(cmd.ErrOrStderr(), cfg.Verbose), nop, nil
	}

	path := cfg.LogFilePath()
	file, err := log.OpenFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}

	logger := log.NewTeeLogger(cmd.ErrOrStderr(), file, cfg.Verbose)
	logger.Debug("logging to file enabled", "path", path)
	return logger, file, nil
}

// newReportWriter returns the writer for the configured format.
func newReportWriter(cfg *config.Config, output io.Writer) report.Writer {
	switch {
	case cfg.JSONReport:
		return report.NewJSONWriter(output, report.WithPrettyPrint(), report.WithVersion(getVersion()))
	case cfg.MarkdownReport:
		return report.NewMarkdownWriter(output)
	default:
		return report.NewSimpleWriter(output,
			report.WithDate(cfg.ShowDate),
			report.WithSummary(!cfg.NoSummary),
		)
	}
}

// outputReport writes the almanac to stdout or to the report file, or to
// both with --tee.
func outputReport(cmd *cobra.Command, cfg *config.Config, a *model.Almanac) (err error) {
	w := newReportWriter(cfg, cmd.OutOrStdout())
	if cfg.ReportFile != "" {
		dir := filepath.Dir(cfg.ReportFile)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}

		// Reports reveal a location, so keep them owner-readable only.
		f, openErr := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
		if openErr != nil {
			return fmt.Errorf("failed to create output file: %w", openErr)
		}
		defer func() {
			err = errors.Join(err, f.Close())
		}()

		if cfg.Tee {
			w = report.NewMultiWriter(newReportWriter(cfg, f), w)
		} else {
			w = newReportWriter(cfg, f)
		}
	}

	_, err = w.Write(a)
	return err
}
