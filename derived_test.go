package ephemeris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHorizontalParallax(t *testing.T) {
	// the Moon at a typical distance subtends just under a degree
	hp := HorizontalParallax(0.002574)
	assert.InDelta(t, 0.949, hp, 0.001)

	// planets are thousands of times farther out
	assert.Less(t, HorizontalParallax(1.21), 0.01)
}

func TestSolarRadius(t *testing.T) {
	// about 16 arcminutes at one astronomical unit
	radius := SolarRadius(1.0)
	assert.InDelta(t, 0.2666, radius, 0.0005)
}

func TestAverageDifference(t *testing.T) {
	diff, err := AverageDifference(stubProvider{}, stubDate, Sun)
	require.NoError(t, err)

	// the stub sun's GHA gains its rate every hour; the daily delta
	// wraps one full circle
	sun := stubBodies[Sun]
	assert.InDelta(t, sun.ghaRate()-15, diff.GHA, 1e-9)
	assert.InDelta(t, sun.decRate/24, diff.Dec, 1e-9)
}

func TestMoonHourlyDifference(t *testing.T) {
	dGHA, dDec, err := MoonHourlyDifference(stubProvider{}, stubDate, 7)
	require.NoError(t, err)

	moon := stubBodies[Moon]
	assert.InDelta(t, moon.ghaRate()-MeanLunarMotion, dGHA, 1e-9)
	assert.InDelta(t, moon.decRate/24, dDec, 1e-9)
}
