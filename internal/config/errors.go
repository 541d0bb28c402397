package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and let callers use
// errors.Is() while still carrying a readable message.
var (
	// ErrInvalidMonth is returned when the month is outside 1..12.
	ErrInvalidMonth = errors.New("invalid month: must be between 1 and 12")

	// ErrInvalidDay is returned when the day is outside 1..31.
	// Day-of-month is not checked against the month length; the solver
	// rolls such dates over into the next month.
	ErrInvalidDay = errors.New("invalid day: must be between 1 and 31")

	// ErrInvalidLatitude is returned when the latitude is outside [-90, 90] or NaN.
	ErrInvalidLatitude = errors.New("invalid latitude: must be between -90 and 90 degrees")

	// ErrInvalidLongitude is returned when the longitude is NaN or infinite.
	ErrInvalidLongitude = errors.New("invalid longitude: must be a finite number of degrees")

	// ErrInvalidDays is returned when a range has no days.
	ErrInvalidDays = errors.New("invalid day count: must be positive")

	// ErrInvalidBatchSize is returned when the batch size is not positive.
	ErrInvalidBatchSize = errors.New("invalid batch size: must be positive")

	// ErrConflictingReportFormats is returned when both --json and --markdown
	// are specified. Only one output format can be used at a time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")

	// ErrTeeWithoutOutput is returned when --tee is given without --output.
	ErrTeeWithoutOutput = errors.New("--tee requires --output")

	// ErrUnknownPlace is returned when a named place is not in the configuration file.
	ErrUnknownPlace = errors.New("unknown place")
)
