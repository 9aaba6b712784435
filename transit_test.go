package ephemeris

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subtlepseudonym/ephemeris/catalog"
	"github.com/subtlepseudonym/ephemeris/timebase"
)

// toleranceHours is the solver's 10 second stop condition.
const toleranceHours = 10.0 / 3600

// linearProvider makes GHA a perfectly linear function of time:
// gha(t) = t/24 * 360 with t in hours since midnight of stubDate, so
// the wrap through zero sits exactly at the window edge.
type linearProvider struct{}

func (linearProvider) Position(jdTT float64, body Body) (float64, float64, float64, error) {
	return 0, 0, 1, nil // RA fixed at zero; GHA follows sidereal time
}

func (linearProvider) StarPosition(jdTT float64, star catalog.Star) (float64, float64, error) {
	return 0, 0, nil
}

func (linearProvider) SiderealTime(jdUT1 float64) (float64, error) {
	return (jdUT1 - timebase.JulianDateUT1(stubDate, 0)) * 24, nil
}

func TestFindTransitLinear(t *testing.T) {
	hour, err := FindAriesTransit(linearProvider{}, stubDate)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, hour, toleranceHours)
}

func TestFindAriesTransit(t *testing.T) {
	hour, err := FindAriesTransit(stubProvider{}, stubDate)
	require.NoError(t, err)

	// theta crosses 24h when it has advanced 360-165 degrees
	expected := (360 - stubSiderealBase*degreesPerHour) / (stubSiderealRate * degreesPerHour / 24)
	assert.InDelta(t, expected, hour, toleranceHours)
}

func TestFindTransit(t *testing.T) {
	for _, body := range Bodies {
		body := body
		t.Run(body.String(), func(t *testing.T) {
			hour, err := FindTransit(stubProvider{}, stubDate, body)
			require.NoError(t, err)
			assert.True(t, hour >= 0 && hour < 24, "transit hour %g", hour)

			// the transit is where GHA, linear in the stub, reaches 360
			place, err := Place(stubProvider{}, At(stubDate, 0), body)
			require.NoError(t, err)
			expected := (360 - place.GHADeg) / stubBodies[body].ghaRate()

			// the TT offset shifts the stub's RA sampling slightly,
			// so allow a little slack beyond the solver tolerance
			assert.InDelta(t, expected, hour, toleranceHours+0.002)
		})
	}
}

func TestFindTransitErrorPropagates(t *testing.T) {
	boom := errors.New("date outside ephemeris range")
	_, err := FindTransit(failingProvider{err: boom}, stubDate, Mars)
	assert.ErrorIs(t, err, boom)
}
