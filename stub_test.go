package ephemeris

import (
	"errors"
	"math"
	"time"

	"github.com/subtlepseudonym/ephemeris/catalog"
	"github.com/subtlepseudonym/ephemeris/timebase"
)

// The stub provider models each body as a linear drift in RA and
// declination from a reference epoch, which makes every tabulated
// quantity analytically checkable.
const (
	stubEpoch        = 2453447.5    // 2005-03-18 00:00 UT1
	stubSiderealBase = 11.0         // hours at stubEpoch
	stubSiderealRate = 24.065709824 // hours per day
)

var stubDate = timebase.Date{Year: 2005, Month: time.March, Day: 18}

type stubBody struct {
	raBase   float64 // hours at stubEpoch
	raRate   float64 // hours per day
	decBase  float64 // degrees at stubEpoch
	decRate  float64 // degrees per day
	distance float64 // AU
}

var stubBodies = map[Body]stubBody{
	Sun:     {23.90, 0.0600, -1.2, 0.39, 0.9958},
	Moon:    {5.30, 0.9000, 12.5, 3.10, 0.002574},
	Venus:   {22.10, 0.0630, -9.8, 0.25, 1.21},
	Mars:    {20.30, 0.0520, -18.9, 0.21, 1.53},
	Jupiter: {13.50, -0.0030, -8.1, 0.02, 4.45},
	Saturn:  {7.60, 0.0022, 22.3, -0.01, 9.02},
}

// ghaRate returns a stub body's GHA rate in degrees per hour.
func (b stubBody) ghaRate() float64 {
	return (stubSiderealRate - b.raRate) * degreesPerHour / 24
}

type stubProvider struct{}

func (stubProvider) Position(jdTT float64, body Body) (float64, float64, float64, error) {
	b, ok := stubBodies[body]
	if !ok {
		return 0, 0, 0, errors.New("unknown body")
	}

	days := jdTT - stubEpoch
	ra := math.Mod(b.raBase+b.raRate*days, 24)
	if ra < 0 {
		ra += 24
	}
	return ra, b.decBase + b.decRate*days, b.distance, nil
}

func (stubProvider) StarPosition(jdTT float64, star catalog.Star) (float64, float64, error) {
	return star.RAHours, star.DecDeg, nil
}

func (stubProvider) SiderealTime(jdUT1 float64) (float64, error) {
	theta := math.Mod(stubSiderealBase+stubSiderealRate*(jdUT1-stubEpoch), 24)
	if theta < 0 {
		theta += 24
	}
	return theta, nil
}

// failingProvider returns a fixed error from every query.
type failingProvider struct {
	err error
}

func (p failingProvider) Position(float64, Body) (float64, float64, float64, error) {
	return 0, 0, 0, p.err
}

func (p failingProvider) StarPosition(float64, catalog.Star) (float64, float64, error) {
	return 0, 0, p.err
}

func (p failingProvider) SiderealTime(float64) (float64, error) {
	return 0, p.err
}
