package ephemeris

import (
	"github.com/subtlepseudonym/ephemeris/timebase"
)

const (
	// transitTolerance is the bisection bracket width at which the
	// search stops, 10 seconds expressed in days.
	transitTolerance = 10.0 / 86400

	// maxBisectSteps bounds the search even if the hour-angle
	// monotonicity assumption is violated. 14 steps reach the
	// tolerance from a one-day bracket.
	maxBisectSteps = 20
)

// FindTransit locates the UT1 hour at which a body crosses the
// Greenwich meridian: the instant its hour angle wraps through zero.
// The search window is the full civil day.
//
// GHA increases monotonically through the day and wraps 360->0 once;
// the half-interval keeping the wrap is the one where GHA did not
// increase. A day with no wrap, or a wrap exactly at the window edge,
// converges to a plausible but wrong hour rather than failing.
func FindTransit(p Provider, date timebase.Date, body Body) (float64, error) {
	offsetDays := timebase.DailyOffset(date) / timebase.HoursPerDay
	return findTransit(date, func(jdUT1 float64) (float64, error) {
		ra, _, _, err := p.Position(jdUT1+offsetDays, body)
		if err != nil {
			return 0, err
		}
		theta, err := p.SiderealTime(jdUT1)
		if err != nil {
			return 0, err
		}
		gha := theta*degreesPerHour - ra*degreesPerHour
		if gha < 0 {
			gha += 360
		}
		return wrap360(gha), nil
	})
}

// FindAriesTransit locates the transit of the vernal equinox, from
// sidereal time alone.
func FindAriesTransit(p Provider, date timebase.Date) (float64, error) {
	return findTransit(date, func(jdUT1 float64) (float64, error) {
		theta, err := p.SiderealTime(jdUT1)
		if err != nil {
			return 0, err
		}
		return wrap360(theta * degreesPerHour), nil
	})
}

func findTransit(date timebase.Date, ghaAt func(jdUT1 float64) (float64, error)) (float64, error) {
	midnight := timebase.JulianDateUT1(date, 0)
	left, right := midnight, midnight+1

	for i := 0; i < maxBisectSteps && right-left > transitTolerance; i++ {
		middle := (left + right) / 2

		ghaLeft, err := ghaAt(left)
		if err != nil {
			return 0, err
		}
		ghaMiddle, err := ghaAt(middle)
		if err != nil {
			return 0, err
		}

		if ghaMiddle > ghaLeft {
			// no wrap in the left half
			left = middle
		} else {
			right = middle
		}
	}

	hours := (right - midnight) * timebase.HoursPerDay
	if hours >= timebase.HoursPerDay {
		hours -= timebase.HoursPerDay
	}
	return hours, nil
}
