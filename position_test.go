package ephemeris

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subtlepseudonym/ephemeris/catalog"
	"github.com/subtlepseudonym/ephemeris/timebase"
)

func TestPlace(t *testing.T) {
	in := At(stubDate, 0)

	t.Run("gha is sidereal time minus right ascension", func(t *testing.T) {
		place, err := Place(stubProvider{}, in, Sun)
		require.NoError(t, err)

		// theta 11h = 165 deg, sun RA at the TT instant is a hair
		// past 23.90h = 358.5 deg; negative difference wraps +360
		sun := stubBodies[Sun]
		raDeg := (sun.raBase + sun.raRate*(in.JDTT-stubEpoch)) * degreesPerHour
		thetaDeg := (stubSiderealBase + stubSiderealRate*(in.JDUT1-stubEpoch)) * degreesPerHour

		assert.InDelta(t, thetaDeg-raDeg+360, place.GHADeg, 1e-9)
		assert.InDelta(t, sun.decBase, place.DecDeg, 1e-6)
		assert.Equal(t, sun.distance, place.DistanceAU)
	})

	t.Run("gha stays normalized", func(t *testing.T) {
		for hour := 0; hour < 48; hour += 3 {
			for _, body := range Bodies {
				place, err := Place(stubProvider{}, At(stubDate, float64(hour)), body)
				require.NoError(t, err)
				assert.True(t, place.GHADeg >= 0 && place.GHADeg < 360,
					"%s at hour %d: gha %g", body, hour, place.GHADeg)
			}
		}
	})

	t.Run("provider errors propagate", func(t *testing.T) {
		boom := errors.New("date outside ephemeris range")
		_, err := Place(failingProvider{err: boom}, in, Sun)
		assert.ErrorIs(t, err, boom)
	})
}

func TestAriesGHA(t *testing.T) {
	gha, err := AriesGHA(stubProvider{}, At(stubDate, 0))
	require.NoError(t, err)

	// the spring point is sidereal time as an angle, no RA term
	assert.InDelta(t, stubSiderealBase*degreesPerHour, gha, 1e-9)
}

func TestStarPlace(t *testing.T) {
	star := catalog.Star{Number: 18, Name: "Sirius", RAHours: 6.75248, DecDeg: -16.7161}

	sha, dec, err := StarPlace(stubProvider{}, timebase.JulianDateTT(stubDate, 0), star)
	require.NoError(t, err)

	assert.InDelta(t, 360-star.RAHours*degreesPerHour, sha, 1e-9)
	assert.Equal(t, star.DecDeg, dec)
}
