// Package solar computes sunrise and sunset times for a calendar date and a
// geographic coordinate.
//
// The computation follows the classical low-precision solar ephemeris: the
// date is turned into a day number relative to 2000 Jan 0.0 UT, the Sun's
// ecliptic position is derived from its mean orbital elements, rotated into
// equatorial coordinates, and the hour angle at which the upper limb touches
// the refracted horizon is solved. One refinement pass re-evaluates the Sun's
// position at the first estimate of each event. Accuracy is about one minute,
// which is what rise/set timing needs.
//
// Everything in this package is pure. There is no shared state and no
// logging, so RiseSet may be called from any number of goroutines.
//
// # Usage
//
//	res := solar.RiseSet(
//	    solar.Date{Year: 2025, Month: 4, Day: 2},
//	    solar.Coordinate{Latitude: 49.864, Longitude: 14.266},
//	)
//	switch res.State {
//	case solar.Normal:
//	    fmt.Println(res.Sunrise, res.Sunset) // UTC decimal hours
//	case solar.SunAlwaysAbove, solar.SunAlwaysBelow:
//	    fmt.Println(res.State)
//	}
//
// Angles are carried as unit.Angle (radians internally) and built with
// unit.AngleFromDeg, so a degree value never reaches math.Sin or math.Cos
// unconverted.
package solar
