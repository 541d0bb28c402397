package solar

import (
	"math"

	"github.com/soniakeys/unit"
)

// SunPosition is the Sun's apparent place at one instant, as seen by the
// low-precision ephemeris.
type SunPosition struct {
	// Day is the instant in days since 2000 Jan 0.0 UT.
	Day float64
	// MeanAnomaly is the Sun's mean anomaly in [0, 2π).
	MeanAnomaly unit.Angle
	// MeanLongitude is the Sun's mean longitude in [0, 2π).
	MeanLongitude unit.Angle
	// EclipticLongitude is the true ecliptic longitude in [0, 2π).
	EclipticLongitude unit.Angle
	// Distance is the Earth–Sun distance in astronomical units.
	Distance float64
	// RightAscension is in (-π, π].
	RightAscension unit.Angle
	Declination    unit.Angle
	// EquationOfTime is mean longitude minus right ascension, folded
	// into [-π, π). Divide degrees by 15 for hours.
	EquationOfTime unit.Angle
}

// Semidiameter returns the apparent angular radius of the solar disk.
func (p SunPosition) Semidiameter() unit.Angle {
	return unit.AngleFromDeg(sunRadiusAU / p.Distance)
}

// maxEccentricity bounds the orbit eccentricity for extreme day numbers.
const maxEccentricity = 0.9

// sunRadiusAU is the Sun's angular radius in degrees at 1 AU.
const sunRadiusAU = 0.2666

// Position returns the Sun's position on date at hourUTC decimal hours.
// hourUTC may fall outside [0, 24); it is added to the date as-is.
func Position(date Date, hourUTC float64) SunPosition {
	return sunPosition(date.dayNumber() + hourUTC/24)
}

// sunPosition evaluates the ephemeris at day number d.
func sunPosition(d float64) SunPosition {
	// Mean orbital elements of the Sun (i.e. of the Earth, reversed).
	m := revolution(356.0470 + 0.9856002585*d)
	w := 282.9404 + 4.70935e-5*d
	// The linear drift terms only hold within a few millennia of J2000.
	// Clamp so epochs far outside that still give a bound ellipse.
	e := math.Min(math.Max(0.016709-1.151e-9*d, 0), maxEccentricity)

	meanAnomaly := unit.AngleFromDeg(m)

	// First-order eccentric anomaly is enough at e ≈ 0.0167.
	ecc := meanAnomaly + unit.Angle(e*meanAnomaly.Sin()*(1+e*meanAnomaly.Cos()))
	x := ecc.Cos() - e
	y := math.Sqrt(1-e*e) * ecc.Sin()

	r := math.Hypot(x, y)
	trueAnomaly := unit.Angle(math.Atan2(y, x))
	lon := (trueAnomaly + unit.AngleFromDeg(w)).Mod1()

	ra, dec := toEquatorial(lon, r, obliquity(d))
	meanLon := unit.AngleFromDeg(revolution(m + w))

	return SunPosition{
		Day:               d,
		MeanAnomaly:       meanAnomaly,
		MeanLongitude:     meanLon,
		EclipticLongitude: lon,
		Distance:          r,
		RightAscension:    ra,
		Declination:       dec,
		EquationOfTime:    rev180(meanLon - ra),
	}
}

// obliquity of the ecliptic at day number d.
func obliquity(d float64) unit.Angle {
	return unit.AngleFromDeg(23.4393 - 3.563e-7*d)
}

// toEquatorial rotates an ecliptic longitude (latitude zero) at distance r
// into right ascension and declination.
func toEquatorial(lon unit.Angle, r float64, obl unit.Angle) (ra, dec unit.Angle) {
	x := r * lon.Cos()
	y := r * lon.Sin()

	sinObl, cosObl := obl.Sincos()
	z := y * sinObl
	y *= cosObl

	ra = unit.Angle(math.Atan2(y, x))
	dec = unit.Angle(math.Atan2(z, math.Hypot(x, y)))
	return ra, dec
}

// revolution reduces degrees to [0, 360).
func revolution(deg float64) float64 {
	return unit.PMod(deg, 360)
}

// rev180Deg folds degrees into [-180, 180). math.Mod is exact, so large
// longitudes keep their fractional part.
func rev180Deg(deg float64) float64 {
	deg = math.Mod(deg, 360)
	switch {
	case deg >= 180:
		deg -= 360
	case deg < -180:
		deg += 360
	}
	return deg
}

// rev180 folds an angle into [-π, π).
func rev180(a unit.Angle) unit.Angle {
	const turn = 2 * math.Pi
	return unit.Angle(a.Rad() - turn*math.Floor(a.Rad()/turn+0.5))
}
