package solar

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
)

// jdEpoch is the Julian day of 2000 Jan 0.0 UT, the origin of day numbers
// used by the ephemeris.
const jdEpoch = 2451543.5

// Date is a proleptic Gregorian calendar date. Year uses astronomical
// numbering, so year 0 is 1 BC. The solver does not check that Day fits the
// month; invalid combinations are carried through the arithmetic as-is.
type Date struct {
	Year  int
	Month int
	Day   int
}

// ErrInvalidDate is returned by ParseDate for malformed or nonexistent dates.
var ErrInvalidDate = errors.New("invalid date")

// String returns the date as YYYY-MM-DD. Years before 1 BC carry a leading
// minus sign and at least four digits, e.g. -4712-01-01. Years past 9999
// use as many digits as needed.
func (d Date) String() string {
	if d.Year < 0 {
		return fmt.Sprintf("-%04d-%02d-%02d", -d.Year, d.Month, d.Day)
	}
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// MarshalText implements encoding.TextMarshaler.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts every form
// String produces for real calendar dates.
func (d *Date) UnmarshalText(text []byte) error {
	parsed, err := ParseDate(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// ParseDate parses a YYYY-MM-DD string. The year has at least four digits
// and may be signed; month and day have exactly two. Unlike RiseSet, it
// rejects days that do not exist in the month.
func ParseDate(s string) (Date, error) {
	rest, sign := s, 1
	switch {
	case strings.HasPrefix(rest, "-"):
		rest, sign = rest[1:], -1
	case strings.HasPrefix(rest, "+"):
		rest = rest[1:]
	}

	parts := strings.Split(rest, "-")
	if len(parts) != 3 || len(parts[0]) < 4 || len(parts[1]) != 2 || len(parts[2]) != 2 {
		return Date{}, fmt.Errorf("%w %q: expected YYYY-MM-DD", ErrInvalidDate, s)
	}

	var fields [3]int
	for i, p := range parts {
		if !isDigits(p) {
			return Date{}, fmt.Errorf("%w %q: expected YYYY-MM-DD", ErrInvalidDate, s)
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return Date{}, fmt.Errorf("%w %q: %w", ErrInvalidDate, s, err)
		}
		fields[i] = n
	}

	d := Date{Year: sign * fields[0], Month: fields[1], Day: fields[2]}
	if DateOf(d.Time()) != d {
		return Date{}, fmt.Errorf("%w %q: no such day", ErrInvalidDate, s)
	}
	return d, nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

// DateOf returns the calendar date of t in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: int(m), Day: d}
}

// Time returns 0h UTC of d. Out of range months and days are normalised
// the way time.Date does.
func (d Date) Time() time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
}

// AddDays returns the date n days after d.
func (d Date) AddDays(n int) Date {
	return DateOf(d.Time().AddDate(0, 0, n))
}

// dayNumber returns the number of days from 2000 Jan 0.0 UT to 0h UT of d.
// 2000-01-01 is day 1.
func (d Date) dayNumber() float64 {
	return julian.CalendarGregorianToJD(d.Year, d.Month, float64(d.Day)) - jdEpoch
}

// Coordinate is a position on the Earth in degrees.
// Longitude is positive east of Greenwich and may lie outside [-180, 180].
// Latitude is positive north.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// String returns the coordinate as "lat,lon" with six decimals.
func (c Coordinate) String() string {
	return fmt.Sprintf("%.6f,%.6f", c.Latitude, c.Longitude)
}
