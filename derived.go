package ephemeris

import (
	"fmt"
	"math"

	"github.com/subtlepseudonym/ephemeris/timebase"
)

// HorizontalParallax returns the angle, in degrees, subtended by
// Earth's equatorial radius at the given distance.
func HorizontalParallax(distanceAU float64) float64 {
	return radToDeg(math.Atan(EarthEquatorialRadiusAU / distanceAU))
}

// SolarRadius returns the Sun's angular radius, in degrees, at the
// given distance.
func SolarRadius(distanceAU float64) float64 {
	return radToDeg(math.Atan(SunRadiusAU / distanceAU))
}

// DailyDifference holds a body's average hourly change in GHA and
// declination across one civil day, in degrees per hour. The linear
// interpolation correction tables are built from these.
type DailyDifference struct {
	GHA float64
	Dec float64
}

// AverageDifference evaluates a body at hour 0 and hour 24 of the
// same UT1 day and averages the change over the day, removing the
// full-circle GHA wraparound first.
func AverageDifference(p Provider, date timebase.Date, body Body) (DailyDifference, error) {
	first, err := Place(p, At(date, 0), body)
	if err != nil {
		return DailyDifference{}, fmt.Errorf("hour 0: %w", err)
	}
	last, err := Place(p, At(date, 24), body)
	if err != nil {
		return DailyDifference{}, fmt.Errorf("hour 24: %w", err)
	}

	return DailyDifference{
		GHA: wrapDelta(last.GHADeg-first.GHADeg) / 24,
		Dec: (last.DecDeg - first.DecDeg) / 24,
	}, nil
}

// MoonHourlyDifference returns the Moon's change in GHA and
// declination from one tabulated hour to the next, in degrees. The
// GHA change is reported as the deviation from mean lunar motion,
// which is what the interpolation tables print.
func MoonHourlyDifference(p Provider, date timebase.Date, hour int) (dGHA, dDec float64, err error) {
	now, err := Place(p, At(date, float64(hour)), Moon)
	if err != nil {
		return 0, 0, fmt.Errorf("hour %d: %w", hour, err)
	}
	next, err := Place(p, At(date, float64(hour+1)), Moon)
	if err != nil {
		return 0, 0, fmt.Errorf("hour %d: %w", hour+1, err)
	}

	dGHA = next.GHADeg - now.GHADeg
	if dGHA < 0 {
		dGHA += 360
	}

	return dGHA - MeanLunarMotion, next.DecDeg - now.DecDeg, nil
}

func radToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}
