package solar

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/soniakeys/unit"
)

// State tells whether the Sun crosses the horizon on a given day.
type State int

const (
	// Normal means the Sun rises and sets; Result.Sunrise and
	// Result.Sunset hold the times.
	Normal State = iota

	// SunAlwaysAbove means the upper limb never drops below the horizon
	// (polar day).
	SunAlwaysAbove

	// SunAlwaysBelow means the upper limb never reaches the horizon
	// (polar night).
	SunAlwaysBelow
)

// String returns a lowercase name for the state.
func (s State) String() string {
	switch s {
	case Normal:
		return "normal"
	case SunAlwaysAbove:
		return "always_above"
	case SunAlwaysBelow:
		return "always_below"
	default:
		return "unknown"
	}
}

// MarshalJSON encodes the state as its name.
func (s State) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON decodes a state name produced by MarshalJSON.
func (s *State) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	switch name {
	case "normal":
		*s = Normal
	case "always_above":
		*s = SunAlwaysAbove
	case "always_below":
		*s = SunAlwaysBelow
	default:
		return fmt.Errorf("unknown sun state %q", name)
	}
	return nil
}

// Result is the outcome of RiseSet.
// Sunrise and Sunset are UTC decimal hours in [0, 24) and are only
// meaningful when State is Normal; otherwise both are zero.
// Sunset may be smaller than Sunrise when daylight spans 0h UTC.
type Result struct {
	State   State   `json:"state"`
	Sunrise float64 `json:"sunrise"`
	Sunset  float64 `json:"sunset"`
}

// DayLength returns the hours between sunrise and sunset.
// Polar day counts as 24 hours and polar night as 0.
func (r Result) DayLength() float64 {
	switch r.State {
	case SunAlwaysAbove:
		return 24
	case SunAlwaysBelow:
		return 0
	}
	return wrapHours(r.Sunset - r.Sunrise)
}

// Noon returns the UTC hour halfway between sunrise and sunset.
// The second return value is false when there is no sunrise or sunset.
func (r Result) Noon() (float64, bool) {
	if r.State != Normal {
		return 0, false
	}
	return wrapHours(r.Sunrise + r.DayLength()/2), true
}

// horizonAltitude is the altitude in degrees of the Sun's upper limb at
// rise and set: 35 arc minutes of refraction below the geometric horizon.
// The semidiameter is subtracted per position, giving about -0.833°.
const horizonAltitude = -35.0 / 60.0

// RiseSet computes sunrise and sunset for date at coord.
//
// The first pass evaluates the Sun at local mean noon. Each event is then
// solved once more with the Sun's position taken at the first estimate of
// that event. For finite inputs the result is never NaN.
func RiseSet(date Date, coord Coordinate) Result {
	d0 := date.dayNumber()
	lon := rev180Deg(coord.Longitude)
	lat := unit.AngleFromDeg(coord.Latitude)

	first := crossing(d0, 12-lon/15, lat, lon)
	switch {
	case first.cosH > 1:
		return Result{State: SunAlwaysBelow}
	case first.cosH < -1:
		return Result{State: SunAlwaysAbove}
	}

	rise := crossing(d0, first.rise(), lat, lon)
	set := crossing(d0, first.set(), lat, lon)

	return Result{
		State:   Normal,
		Sunrise: wrapHours(rise.rise()),
		Sunset:  wrapHours(set.set()),
	}
}

// horizonCrossing is one solution of the rise/set equation.
type horizonCrossing struct {
	// transit is the UT hour of the Sun on the meridian, in (0, 24]
	// relative to 0h UT of the date, so both events belong to the solar day
	// whose transit falls on that UTC date.
	transit float64
	// cosH is the cosine of the hour angle at the horizon. It lies
	// outside [-1, 1] when the Sun does not cross.
	cosH float64
}

// crossing solves the rise/set equation with the Sun's position at UT
// hour t of the day starting at day number d0. lon is in degrees.
func crossing(d0, t float64, lat unit.Angle, lon float64) horizonCrossing {
	pos := sunPosition(d0 + t/24)

	h0 := unit.AngleFromDeg(horizonAltitude) - pos.Semidiameter()
	sinDec, cosDec := pos.Declination.Sincos()
	sinLat, cosLat := lat.Sincos()

	return horizonCrossing{
		transit: 12 - rev180Deg(pos.EquationOfTime.Deg()+lon)/15,
		cosH:    (h0.Sin() - sinLat*sinDec) / (cosLat * cosDec),
	}
}

// halfArc returns the hour angle at the horizon in hours. cosH is clamped,
// so a refinement pass that lands just past the polar limit yields a
// zero-length or full-length arc instead of NaN.
func (c horizonCrossing) halfArc() float64 {
	cosH := math.Max(-1, math.Min(1, c.cosH))
	return unit.HourAngle(math.Acos(cosH)).Hour()
}

func (c horizonCrossing) rise() float64 { return c.transit - c.halfArc() }
func (c horizonCrossing) set() float64  { return c.transit + c.halfArc() }

// wrapHours reduces h to [0, 24).
func wrapHours(h float64) float64 {
	h = unit.PMod(h, 24)
	if h >= 24 {
		// PMod can round a tiny negative up to exactly 24.
		h = 0
	}
	return h
}
