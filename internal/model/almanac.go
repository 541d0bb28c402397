package model

import (
	"time"

	"github.com/nao1215/sunriset/internal/solar"
)

// Entry is the rise/set result for a single date.
type Entry struct {
	// Date is the calendar date the result was computed for.
	Date solar.Date `json:"date"`

	// Result holds the solver output for Date.
	Result solar.Result `json:"result"`

	// Marker names a solstice or equinox that falls on Date, if any.
	Marker string `json:"marker,omitempty"`
}

// NewEntry computes the entry for date at coord.
func NewEntry(date solar.Date, coord solar.Coordinate) Entry {
	return Entry{
		Date:   date,
		Result: solar.RiseSet(date, coord),
	}
}

// SunriseClock returns the sunrise as H:MM, or the empty string when the
// Sun does not rise.
func (e Entry) SunriseClock() string {
	if e.Result.State != solar.Normal {
		return ""
	}
	return FormatClock(e.Result.Sunrise)
}

// SunsetClock returns the sunset as H:MM, or the empty string when the
// Sun does not set.
func (e Entry) SunsetClock() string {
	if e.Result.State != solar.Normal {
		return ""
	}
	return FormatClock(e.Result.Sunset)
}

// Almanac is a sequence of entries for one place.
type Almanac struct {
	// Place is a human readable name for the location.
	// It is empty when the coordinate was given directly.
	Place string `json:"place,omitempty"`

	// Coordinate is the location all entries were computed for.
	Coordinate solar.Coordinate `json:"coordinate"`

	// GeneratedAt is when the almanac was produced.
	GeneratedAt time.Time `json:"generated_at"`

	// Entries are ordered by date.
	Entries []Entry `json:"entries"`
}

// NewAlmanac creates an empty almanac for the given place.
func NewAlmanac(place string, coord solar.Coordinate) *Almanac {
	return &Almanac{
		Place:       place,
		Coordinate:  coord,
		GeneratedAt: time.Now().UTC(),
		Entries:     make([]Entry, 0),
	}
}

// Title returns the place name, or the coordinate when no name was given.
func (a *Almanac) Title() string {
	if a.Place != "" {
		return a.Place
	}
	return a.Coordinate.String()
}

// IsSingleDay reports whether the almanac holds exactly one entry.
func (a *Almanac) IsSingleDay() bool {
	return len(a.Entries) == 1
}
