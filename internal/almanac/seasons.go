package almanac

import (
	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/solstice"

	"github.com/nao1215/sunriset/internal/solar"
)

// Season marker names.
const (
	MarchEquinox     = "March equinox"
	JuneSolstice     = "June solstice"
	SeptemberEquinox = "September equinox"
	DecemberSolstice = "December solstice"
)

// SeasonDates returns the calendar dates (UT) of the equinoxes and
// solstices of year, keyed by date.
func SeasonDates(year int) map[solar.Date]string {
	return map[solar.Date]string{
		jdeToDate(solstice.March(year)):     MarchEquinox,
		jdeToDate(solstice.June(year)):      JuneSolstice,
		jdeToDate(solstice.September(year)): SeptemberEquinox,
		jdeToDate(solstice.December(year)):  DecemberSolstice,
	}
}

// SeasonMarker returns the name of the solstice or equinox on date, or the
// empty string.
func SeasonMarker(date solar.Date) string {
	return SeasonDates(date.Year)[date]
}

// jdeToDate truncates a Julian ephemeris day to its calendar date.
// TT runs about a minute ahead of UT, which only matters for events within
// a minute of midnight.
func jdeToDate(jde float64) solar.Date {
	y, m, d := julian.JDToCalendar(jde)
	return solar.Date{Year: y, Month: m, Day: int(d)}
}
