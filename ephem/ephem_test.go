package ephem

import (
	"testing"

	"github.com/soniakeys/unit"
	"github.com/stretchr/testify/assert"
)

func TestEclipticToEquatorial(t *testing.T) {
	obliquity := unit.AngleFromDeg(23.4393)

	t.Run("equinox is the zero point", func(t *testing.T) {
		ra, dec := eclipticToEquatorial(unit.AngleFromDeg(0), 0, obliquity)
		assert.InDelta(t, 0.0, ra, 1e-9)
		assert.InDelta(t, 0.0, dec, 1e-9)
	})

	t.Run("solstice reaches the obliquity", func(t *testing.T) {
		ra, dec := eclipticToEquatorial(unit.AngleFromDeg(90), 0, obliquity)
		assert.InDelta(t, 90.0, ra, 1e-9)
		assert.InDelta(t, 23.4393, dec, 1e-9)
	})

	t.Run("third quadrant wraps positive", func(t *testing.T) {
		ra, _ := eclipticToEquatorial(unit.AngleFromDeg(270), 0, obliquity)
		assert.InDelta(t, 270.0, ra, 1e-9)
	})
}
