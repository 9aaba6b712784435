package ephemeris

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subtlepseudonym/ephemeris/catalog"
	"github.com/subtlepseudonym/ephemeris/sexagesimal"
)

func TestSamplerDay(t *testing.T) {
	stars := catalog.Default()
	sampler := NewSampler(stubProvider{}, stars, sexagesimal.LocalePoint)

	day, err := sampler.Day(stubDate)
	require.NoError(t, err)

	t.Run("day metadata", func(t *testing.T) {
		assert.Equal(t, "Friday", day.Weekday)
		assert.Equal(t, 77, day.DayOfYear)
	})

	t.Run("24 hour rows", func(t *testing.T) {
		for hour, row := range day.Rows {
			assert.Equal(t, hour, row.Hour)
			assert.NotEmpty(t, row.Aries.Deg, "aries at hour %d", hour)
			assert.NotEmpty(t, row.Sun.GHA.Deg, "sun at hour %d", hour)
			assert.NotEmpty(t, row.Saturn.Dec.Min, "saturn at hour %d", hour)
		}
	})

	t.Run("moon parallax only at sampled hours", func(t *testing.T) {
		for hour, row := range day.Rows {
			if hour == 4 || hour == 12 || hour == 20 {
				assert.NotEmpty(t, row.Moon.HP, "hour %d", hour)
			} else {
				assert.Empty(t, row.Moon.HP, "hour %d", hour)
			}
		}
	})

	t.Run("moon corrections on every row", func(t *testing.T) {
		for hour, row := range day.Rows {
			assert.NotEmpty(t, row.Moon.DeltaGHA, "hour %d", hour)
			assert.NotEmpty(t, row.Moon.DeltaDec, "hour %d", hour)
		}
	})

	t.Run("star slots cycle through the catalog", func(t *testing.T) {
		for hour, row := range day.Rows {
			if hour < len(stars) {
				require.NotNil(t, row.Star, "hour %d", hour)
				assert.Equal(t, stars[hour].Number, row.Star.Number)
				assert.Equal(t, stars[hour].Name, row.Star.Name)
			} else {
				assert.Nil(t, row.Star, "hour %d", hour)
			}
		}
	})

	t.Run("transit block", func(t *testing.T) {
		assert.NotEmpty(t, day.Transits.Aries.Hour)

		for _, entry := range []BodyTransit{
			day.Transits.Sun, day.Transits.Venus, day.Transits.Mars,
			day.Transits.Jupiter, day.Transits.Saturn,
		} {
			assert.NotEmpty(t, entry.Transit.Hour)
			assert.NotEmpty(t, entry.DeltaGHA)
			assert.NotEmpty(t, entry.DeltaDec)
			assert.NotEmpty(t, entry.HP)
		}

		// the Moon gets only a transit time; its corrections live in
		// the hour rows
		assert.NotEmpty(t, day.Transits.Moon.Transit.Hour)
		assert.Empty(t, day.Transits.Moon.DeltaGHA)
		assert.Empty(t, day.Transits.Moon.HP)

		assert.NotEmpty(t, day.Transits.SunRadius)
		assert.Equal(t, PlaceholderMoonAge, day.Transits.MoonAge)
	})
}

func TestSamplerDayIdempotent(t *testing.T) {
	sampler := NewSampler(stubProvider{}, catalog.Default(), sexagesimal.LocalePoint)

	first, err := sampler.Day(stubDate)
	require.NoError(t, err)
	second, err := sampler.Day(stubDate)
	require.NoError(t, err)

	assert.Empty(t, cmp.Diff(first, second))
}

func TestSamplerDayProviderError(t *testing.T) {
	boom := errors.New("date outside ephemeris range")
	sampler := NewSampler(failingProvider{err: boom}, catalog.Default(), sexagesimal.LocalePoint)

	_, err := sampler.Day(stubDate)
	assert.ErrorIs(t, err, boom)
}
