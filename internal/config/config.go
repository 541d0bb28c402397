package config

import (
	"math"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/nao1215/sunriset/internal/solar"
)

// Default configuration values.
const (
	// DefaultYear, DefaultMonth and DefaultDay form the date computed when
	// none is given on the command line.
	DefaultYear  = 2025
	DefaultMonth = 4
	DefaultDay   = 2

	// DefaultLongitude and DefaultLatitude locate the default observer in
	// central Bohemia.
	DefaultLongitude = 14.265802152828646
	DefaultLatitude  = 49.86396819090531

	// DefaultDays is the length of a range when --days is not given.
	DefaultDays = 7

	// DefaultBatchSize is the number of days computed concurrently.
	DefaultBatchSize = 4

	// AppName is the application name used for XDG directory paths.
	AppName = "sunriset"

	// DefaultLogFileName is the log file written under XDGStateDir when
	// file logging is on and no --log-file is given.
	DefaultLogFileName = "sunriset.log"
)

// Config holds all configuration options for sunriset.
// It is populated from CLI flags and the configuration file, then passed
// down explicitly.
type Config struct {
	// Year is the astronomical year number. Zero and negative years follow
	// the proleptic Gregorian convention.
	Year int

	// Month is the month of year, 1..12.
	Month int

	// Day is the day of month, 1..31.
	Day int

	// Latitude in degrees, positive north.
	Latitude float64

	// Longitude in degrees, positive east. Values outside [-180, 180] are
	// folded by the solver.
	Longitude float64

	// Place is a named place from the configuration file. When set, its
	// coordinate replaces Latitude and Longitude unless those were given
	// explicitly.
	Place string

	// ConfigFilePath is the path to the configuration file.
	// If empty, the tool searches for .sunriset in the current directory,
	// the home directory and the XDG config directory.
	ConfigFilePath string

	// Places holds the named places loaded from the configuration file.
	Places *File

	// JSONReport enables JSON output. Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport enables Markdown output. Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile is the output file path for the report.
	// When set, the report is written to this file instead of stdout.
	ReportFile string

	// Tee prints the report to stdout as well as to ReportFile.
	Tee bool

	// ShowDate prefixes single-day plain text output with the date.
	ShowDate bool

	// NoSummary drops the day length summary from plain text range output.
	NoSummary bool

	// Days is the number of consecutive days in a range.
	Days int

	// BatchSize is the number of days computed concurrently in a range.
	BatchSize int

	// Verbose enables debug log output.
	Verbose bool

	// LogToFile mirrors log output into LogFile.
	LogToFile bool

	// LogFile is the log file path. Empty means DefaultLogFile().
	LogFile string

	// LogJSON writes console logs as JSON lines instead of text.
	LogJSON bool
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Year:      DefaultYear,
		Month:     DefaultMonth,
		Day:       DefaultDay,
		Latitude:  DefaultLatitude,
		Longitude: DefaultLongitude,
		Days:      DefaultDays,
		BatchSize: DefaultBatchSize,
	}
}

// Date returns the configured calendar date.
func (c *Config) Date() solar.Date {
	return solar.Date{Year: c.Year, Month: c.Month, Day: c.Day}
}

// SetDate replaces the configured calendar date.
func (c *Config) SetDate(d solar.Date) {
	c.Year, c.Month, c.Day = d.Year, d.Month, d.Day
}

// Coordinate returns the configured observer location.
func (c *Config) Coordinate() solar.Coordinate {
	return solar.Coordinate{Latitude: c.Latitude, Longitude: c.Longitude}
}

// LogFilePath returns LogFile, or the default path when it is empty.
func (c *Config) LogFilePath() string {
	if c.LogFile != "" {
		return c.LogFile
	}
	return DefaultLogFile()
}

// XDGConfigDir returns the XDG config directory for sunriset.
// On Linux: ~/.config/sunriset
// On macOS: ~/Library/Application Support/sunriset
// On Windows: %APPDATA%\sunriset
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// XDGStateDir returns the XDG state directory for sunriset.
// On Linux: ~/.local/state/sunriset
// On macOS: ~/Library/Application Support/sunriset
// On Windows: %LOCALAPPDATA%\sunriset
func XDGStateDir() string {
	return filepath.Join(xdg.StateHome, AppName)
}

// DefaultLogFile returns the log file path used when --log-file is not given.
func DefaultLogFile() string {
	return filepath.Join(XDGStateDir(), DefaultLogFileName)
}

// Validate checks if the configuration is valid.
// It returns the first problem found.
func (c *Config) Validate() error {
	if c.Month < 1 || c.Month > 12 {
		return ErrInvalidMonth
	}
	if c.Day < 1 || c.Day > 31 {
		return ErrInvalidDay
	}

	// NaN fails both comparisons, so test the accepted range instead.
	if !(c.Latitude >= -90 && c.Latitude <= 90) {
		return ErrInvalidLatitude
	}
	if math.IsNaN(c.Longitude) || math.IsInf(c.Longitude, 0) {
		return ErrInvalidLongitude
	}

	if c.Days <= 0 {
		return ErrInvalidDays
	}
	if c.BatchSize <= 0 {
		return ErrInvalidBatchSize
	}

	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}
	if c.Tee && c.ReportFile == "" {
		return ErrTeeWithoutOutput
	}

	return nil
}
