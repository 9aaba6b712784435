package ephemeris

import (
	"fmt"

	"github.com/subtlepseudonym/ephemeris/catalog"
)

// BodyPlace is the geocentric place of a body at one instant,
// referred to the Greenwich meridian.
type BodyPlace struct {
	GHADeg     float64 // Greenwich hour angle, [0, 360)
	DecDeg     float64 // declination, [-90, 90]
	DistanceAU float64
}

// Place computes the Greenwich hour angle and declination of a body:
// the apparent place comes from the provider at the TT Julian date,
// the hour angle from apparent sidereal time at the UT1 Julian date.
func Place(p Provider, in Instant, body Body) (BodyPlace, error) {
	ra, dec, dist, err := p.Position(in.JDTT, body)
	if err != nil {
		return BodyPlace{}, fmt.Errorf("%s position: %w", body, err)
	}

	theta, err := p.SiderealTime(in.JDUT1)
	if err != nil {
		return BodyPlace{}, fmt.Errorf("sidereal time: %w", err)
	}

	gha := theta*degreesPerHour - ra*degreesPerHour
	if gha < 0 {
		gha += 360
	}

	return BodyPlace{
		GHADeg:     wrap360(gha),
		DecDeg:     dec,
		DistanceAU: dist,
	}, nil
}

// AriesGHA computes the Greenwich hour angle of the vernal equinox,
// which is apparent sidereal time expressed as an angle. The spring
// point has no physical distance.
func AriesGHA(p Provider, in Instant) (float64, error) {
	theta, err := p.SiderealTime(in.JDUT1)
	if err != nil {
		return 0, fmt.Errorf("sidereal time: %w", err)
	}
	return wrap360(theta * degreesPerHour), nil
}

// StarPlace computes a catalog star's sidereal hour angle and
// declination. SHA is measured westward from the equinox, the
// complement of right ascension.
func StarPlace(p Provider, jdTT float64, star catalog.Star) (shaDeg, decDeg float64, err error) {
	ra, dec, err := p.StarPosition(jdTT, star)
	if err != nil {
		return 0, 0, fmt.Errorf("star %s position: %w", star.Name, err)
	}
	return wrap360(360 - ra*degreesPerHour), dec, nil
}
