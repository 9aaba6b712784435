// Package ephem implements the engine's Provider interface on top of
// the Meeus algorithm library, with planetary positions from the
// VSOP87 theory.
package ephem

import (
	"fmt"
	"math"

	"github.com/soniakeys/meeus/v3/base"
	"github.com/soniakeys/meeus/v3/coord"
	"github.com/soniakeys/meeus/v3/elliptic"
	"github.com/soniakeys/meeus/v3/moonposition"
	"github.com/soniakeys/meeus/v3/nutation"
	pp "github.com/soniakeys/meeus/v3/planetposition"
	"github.com/soniakeys/meeus/v3/precess"
	"github.com/soniakeys/meeus/v3/sidereal"
	"github.com/soniakeys/meeus/v3/solar"
	"github.com/soniakeys/unit"

	"github.com/subtlepseudonym/ephemeris"
	"github.com/subtlepseudonym/ephemeris/catalog"
)

const j2000Epoch = 2000.0

// Source computes apparent places from VSOP87 planetary theory files.
// Loading the theory files is the only I/O; afterwards every method
// is a pure computation.
type Source struct {
	earth   *pp.V87Planet
	venus   *pp.V87Planet
	mars    *pp.V87Planet
	jupiter *pp.V87Planet
	saturn  *pp.V87Planet
}

// Open loads the VSOP87 data files from a directory.
func Open(dataDir string) (*Source, error) {
	source := &Source{}
	planets := []struct {
		index  int
		target **pp.V87Planet
	}{
		{pp.Earth, &source.earth},
		{pp.Venus, &source.venus},
		{pp.Mars, &source.mars},
		{pp.Jupiter, &source.jupiter},
		{pp.Saturn, &source.saturn},
	}

	for _, planet := range planets {
		loaded, err := pp.LoadPlanetPath(planet.index, dataDir)
		if err != nil {
			return nil, fmt.Errorf("load vsop87 planet %d: %w", planet.index, err)
		}
		*planet.target = loaded
	}

	return source, nil
}

// Position returns the apparent geocentric place of a body.
func (s *Source) Position(jdTT float64, body ephemeris.Body) (raHours, decDeg, distanceAU float64, err error) {
	switch body {
	case ephemeris.Sun:
		ra, dec, rangeAU := solar.ApparentEquatorialVSOP87(s.earth, jdTT)
		return ra.Hour(), dec.Deg(), rangeAU, nil
	case ephemeris.Moon:
		return s.moon(jdTT)
	case ephemeris.Venus, ephemeris.Mars, ephemeris.Jupiter, ephemeris.Saturn:
		return s.planet(jdTT, body)
	default:
		return 0, 0, 0, fmt.Errorf("no ephemeris for body %s", body)
	}
}

func (s *Source) moon(jdTT float64) (raHours, decDeg, distanceAU float64, err error) {
	lon, lat, distanceKm := moonposition.Position(jdTT)

	deltaPsi, deltaEpsilon := nutation.Nutation(jdTT)
	obliquity := nutation.MeanObliquity(jdTT) + deltaEpsilon

	ra, dec := eclipticToEquatorial(lon+deltaPsi, lat, obliquity)
	return ra / 15, dec, distanceKm / ephemeris.KilometersPerAU, nil
}

func (s *Source) planet(jdTT float64, body ephemeris.Body) (raHours, decDeg, distanceAU float64, err error) {
	var planet *pp.V87Planet
	switch body {
	case ephemeris.Venus:
		planet = s.venus
	case ephemeris.Mars:
		planet = s.mars
	case ephemeris.Jupiter:
		planet = s.jupiter
	case ephemeris.Saturn:
		planet = s.saturn
	}

	ra, dec := elliptic.Position(planet, s.earth, jdTT)

	// elliptic.Position discards the geocentric distance, so rebuild
	// it from the heliocentric places
	pL, pB, pR := planet.Position(jdTT)
	eL, eB, eR := s.earth.Position(jdTT)
	x := pR*pB.Cos()*pL.Cos() - eR*eB.Cos()*eL.Cos()
	y := pR*pB.Cos()*pL.Sin() - eR*eB.Cos()*eL.Sin()
	z := pR*pB.Sin() - eR*eB.Sin()

	return ra.Hour(), dec.Deg(), math.Sqrt(x*x + y*y + z*z), nil
}

// StarPosition returns a star's place at jdTT, applying proper motion
// and precession from the catalog's J2000 mean place.
func (s *Source) StarPosition(jdTT float64, star catalog.Star) (raHours, decDeg float64, err error) {
	from := &coord.Equatorial{
		RA:  unit.RAFromDeg(star.RAHours * 15),
		Dec: unit.AngleFromDeg(star.DecDeg),
	}

	to := precess.Position(from, &coord.Equatorial{},
		j2000Epoch, base.JDEToJulianYear(jdTT),
		unit.HourAngleFromSec(star.PMRASec),
		unit.AngleFromSec(star.PMDecArcsec))

	return to.RA.Hour(), to.Dec.Deg(), nil
}

// SiderealTime returns Greenwich apparent sidereal time in hours.
func (s *Source) SiderealTime(jdUT1 float64) (float64, error) {
	return sidereal.Apparent(jdUT1).Hour(), nil
}

// eclipticToEquatorial converts apparent ecliptic coordinates to
// right ascension and declination, both returned in degrees.
func eclipticToEquatorial(lon, lat, obliquity unit.Angle) (raDeg, decDeg float64) {
	sinLon, cosLon := math.Sincos(lon.Rad())
	sinLat, cosLat := math.Sincos(lat.Rad())
	sinObl, cosObl := math.Sincos(obliquity.Rad())

	ra := math.Atan2(sinLon*cosObl-math.Tan(lat.Rad())*sinObl, cosLon)
	dec := math.Asin(sinLat*cosObl + cosLat*sinObl*sinLon)

	raDeg = ra * 180 / math.Pi
	if raDeg < 0 {
		raDeg += 360
	}
	return raDeg, dec * 180 / math.Pi
}
