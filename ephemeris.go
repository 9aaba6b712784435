// Package ephemeris computes nautical-almanac ephemeris tables: for
// each civil day, hourly Greenwich hour angles and declinations for
// the Sun, Moon, four planets and one fixed star, plus meridian
// transit times and the interpolation corrections printed alongside.
package ephemeris

import (
	"fmt"
	"math"

	"github.com/subtlepseudonym/ephemeris/catalog"
	"github.com/subtlepseudonym/ephemeris/timebase"
)

// Body identifies one of the tracked solar-system bodies. The vernal
// equinox ("Aries") is not a Body; it is tabulated separately through
// sidereal time alone.
type Body int

const (
	Sun Body = iota
	Moon
	Venus
	Mars
	Jupiter
	Saturn
)

// Bodies lists the tracked bodies in tabulation order.
var Bodies = []Body{Sun, Moon, Venus, Mars, Jupiter, Saturn}

func (b Body) String() string {
	switch b {
	case Sun:
		return "Sun"
	case Moon:
		return "Moon"
	case Venus:
		return "Venus"
	case Mars:
		return "Mars"
	case Jupiter:
		return "Jupiter"
	case Saturn:
		return "Saturn"
	default:
		return fmt.Sprintf("Body(%d)", int(b))
	}
}

const (
	// KilometersPerAU is the IAU 2012 astronomical unit.
	KilometersPerAU = 149597870.7

	// EarthEquatorialRadiusAU subtends the horizontal parallax.
	EarthEquatorialRadiusAU = 6378.1366 / KilometersPerAU

	// SunRadiusAU subtends the Sun's angular radius.
	SunRadiusAU = 696000.0 / KilometersPerAU

	// MeanLunarMotion is the Moon's mean GHA rate in degrees per
	// hour; the hourly correction columns tabulate the deviation
	// from it.
	MeanLunarMotion = 14.31666667

	degreesPerHour = 15 // 360 degrees per 24 hours
)

// Provider supplies apparent places and Greenwich apparent sidereal
// time. Implementations must be pure queries: identical arguments
// return identical results.
type Provider interface {
	// Position returns the apparent geocentric place of a body:
	// right ascension in hours, declination in degrees, and
	// distance in astronomical units.
	Position(jdTT float64, body Body) (raHours, decDeg, distanceAU float64, err error)

	// StarPosition returns the apparent place of a catalog star,
	// right ascension in hours and declination in degrees.
	StarPosition(jdTT float64, star catalog.Star) (raHours, decDeg float64, err error)

	// SiderealTime returns Greenwich apparent sidereal time in
	// hours for a UT1 Julian date.
	SiderealTime(jdUT1 float64) (hours float64, err error)
}

// ConfigurationError reports an engine configuration rejected before
// any per-day computation begins.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "configuration: " + e.Reason
}

// Instant ties a UT1 hour of one civil day to its Julian dates on
// both time scales.
type Instant struct {
	Date  timebase.Date
	Hour  float64 // UT1 hours since midnight
	JDTT  float64
	JDUT1 float64
}

// At derives the Instant for a UT1 hour of a civil day. Hours outside
// [0, 24) roll into neighboring days.
func At(date timebase.Date, hourUT1 float64) Instant {
	return Instant{
		Date:  date,
		Hour:  hourUT1,
		JDTT:  timebase.JulianDateTT(date, hourUT1),
		JDUT1: timebase.JulianDateUT1(date, hourUT1),
	}
}

// wrap360 normalizes an angle in degrees into [0, 360).
func wrap360(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// wrapDelta normalizes an angular difference in degrees into
// (-180, 180], removing full-circle wraparound.
func wrapDelta(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg <= -180 {
		deg += 360
	} else if deg > 180 {
		deg -= 360
	}
	return deg
}
