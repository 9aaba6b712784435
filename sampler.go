package ephemeris

import (
	"fmt"
	"time"

	"github.com/subtlepseudonym/ephemeris/catalog"
	"github.com/subtlepseudonym/ephemeris/sexagesimal"
	"github.com/subtlepseudonym/ephemeris/timebase"
)

const (
	// midDayHour is where single-sample daily quantities (planet
	// parallax, solar radius) are evaluated.
	midDayHour = 12

	// starValidityOffsetDays centers star places in the two-day
	// window an almanac page pair covers.
	starValidityOffsetDays = 1.0

	// PlaceholderMoonAge marks the age-since-new-moon column, which
	// is not computed.
	PlaceholderMoonAge = "--"
)

// moonParallaxHours are the rows carrying a horizontal parallax
// sample for the Moon.
var moonParallaxHours = map[int]bool{4: true, 12: true, 20: true}

// BodyColumn is one body's entry in an hour row.
type BodyColumn struct {
	GHA sexagesimal.AngleDM
	Dec sexagesimal.AngleDM
}

// MoonColumn is the Moon's entry in an hour row. The delta columns
// tabulate the change to the next hour, GHA as deviation from mean
// lunar motion; HP is set only at the sampled hours.
type MoonColumn struct {
	BodyColumn
	DeltaGHA string
	DeltaDec string
	HP       string
}

// StarSlot is the star column of an hour row: catalog ordinal, name,
// sidereal hour angle and declination.
type StarSlot struct {
	Number int
	Name   string
	SHA    sexagesimal.AngleDM
	Dec    sexagesimal.AngleDM
}

// HourRow is one tabulated hour of Universal Time. Star is nil for
// rows past the end of the catalog.
type HourRow struct {
	Hour  int
	Aries sexagesimal.AngleDM

	Sun     BodyColumn
	Moon    MoonColumn
	Venus   BodyColumn
	Mars    BodyColumn
	Jupiter BodyColumn
	Saturn  BodyColumn

	Star *StarSlot
}

// BodyTransit is one body's entry in the daily transit block. The
// correction fields are empty for the Moon, whose interpolation
// corrections are tabulated per hour row instead.
type BodyTransit struct {
	Transit  sexagesimal.TimeHM
	DeltaGHA string // average hourly GHA change, signed minutes
	DeltaDec string
	HP       string // horizontal parallax at mid-day
}

// DayTransits is the per-day block below the hourly table.
type DayTransits struct {
	Aries sexagesimal.TimeHM

	Sun     BodyTransit
	Moon    BodyTransit
	Venus   BodyTransit
	Mars    BodyTransit
	Jupiter BodyTransit
	Saturn  BodyTransit

	SunRadius string // solar angular radius at mid-day, minutes
	MoonAge   string // always PlaceholderMoonAge
}

// RiseSet holds the day's sun rise and set times at the configured
// observer position, UTC.
type RiseSet struct {
	Sunrise time.Time
	Sunset  time.Time
}

// DayResult is one civil day's fully formatted table. OddPage and
// RiseSet are filled by the orchestrator.
type DayResult struct {
	Date      timebase.Date
	Weekday   string
	DayOfYear int
	OddPage   bool

	Rows     [24]HourRow
	Transits DayTransits
	RiseSet  RiseSet
}

// Sampler builds one civil day's table from a Provider and a star
// catalog. It holds no mutable state and is safe for concurrent use.
type Sampler struct {
	provider Provider
	stars    []catalog.Star
	format   sexagesimal.Formatter
}

func NewSampler(provider Provider, stars []catalog.Star, locale sexagesimal.Locale) *Sampler {
	return &Sampler{
		provider: provider,
		stars:    stars,
		format:   sexagesimal.Formatter{Locale: locale},
	}
}

// Day computes the full table for one civil day: 24 hour rows and the
// transit block. Provider errors propagate unchanged in meaning;
// formatting errors abort the day.
func (s *Sampler) Day(date timebase.Date) (*DayResult, error) {
	midnight := date.Time()
	result := &DayResult{
		Date:      date,
		Weekday:   midnight.Weekday().String(),
		DayOfYear: midnight.YearDay(),
	}

	for hour := 0; hour < 24; hour++ {
		row, err := s.hourRow(date, hour)
		if err != nil {
			return nil, fmt.Errorf("%s hour %d: %w", date, hour, err)
		}
		result.Rows[hour] = *row
	}

	transits, err := s.dayTransits(date)
	if err != nil {
		return nil, fmt.Errorf("%s transits: %w", date, err)
	}
	result.Transits = *transits

	return result, nil
}

func (s *Sampler) hourRow(date timebase.Date, hour int) (*HourRow, error) {
	in := At(date, float64(hour))
	row := &HourRow{Hour: hour}

	aries, err := AriesGHA(s.provider, in)
	if err != nil {
		return nil, err
	}
	row.Aries, err = s.format.DegMin360(aries)
	if err != nil {
		return nil, fmt.Errorf("format aries: %w", err)
	}

	for _, body := range Bodies {
		place, err := Place(s.provider, in, body)
		if err != nil {
			return nil, err
		}

		column, err := s.bodyColumn(place)
		if err != nil {
			return nil, fmt.Errorf("format %s: %w", body, err)
		}

		if body == Moon {
			row.Moon, err = s.moonColumn(date, hour, place, column)
			if err != nil {
				return nil, fmt.Errorf("moon corrections: %w", err)
			}
			continue
		}

		switch body {
		case Sun:
			row.Sun = column
		case Venus:
			row.Venus = column
		case Mars:
			row.Mars = column
		case Jupiter:
			row.Jupiter = column
		case Saturn:
			row.Saturn = column
		}
	}

	if hour < len(s.stars) {
		star, err := s.starSlot(date, s.stars[hour])
		if err != nil {
			return nil, err
		}
		row.Star = star
	}

	return row, nil
}

func (s *Sampler) bodyColumn(place BodyPlace) (BodyColumn, error) {
	gha, err := s.format.DegMin360(place.GHADeg)
	if err != nil {
		return BodyColumn{}, err
	}
	dec, err := s.format.DegMinSigned(place.DecDeg)
	if err != nil {
		return BodyColumn{}, err
	}
	return BodyColumn{GHA: gha, Dec: dec}, nil
}

func (s *Sampler) moonColumn(date timebase.Date, hour int, place BodyPlace, column BodyColumn) (MoonColumn, error) {
	dGHA, dDec, err := MoonHourlyDifference(s.provider, date, hour)
	if err != nil {
		return MoonColumn{}, err
	}

	moon := MoonColumn{BodyColumn: column}
	moon.DeltaGHA, err = s.format.MinutesSigned(dGHA)
	if err != nil {
		return MoonColumn{}, err
	}
	moon.DeltaDec, err = s.format.MinutesSigned(dDec)
	if err != nil {
		return MoonColumn{}, err
	}

	if moonParallaxHours[hour] {
		moon.HP, err = s.format.MinutesSigned(HorizontalParallax(place.DistanceAU))
		if err != nil {
			return MoonColumn{}, err
		}
	}

	return moon, nil
}

func (s *Sampler) starSlot(date timebase.Date, star catalog.Star) (*StarSlot, error) {
	jdTT := timebase.JulianDateTT(date, 0) + starValidityOffsetDays
	sha, dec, err := StarPlace(s.provider, jdTT, star)
	if err != nil {
		return nil, err
	}

	slot := &StarSlot{Number: star.Number, Name: star.Name}
	slot.SHA, err = s.format.DegMin360(sha)
	if err != nil {
		return nil, fmt.Errorf("format star %s: %w", star.Name, err)
	}
	slot.Dec, err = s.format.DegMinSigned(dec)
	if err != nil {
		return nil, fmt.Errorf("format star %s: %w", star.Name, err)
	}
	return slot, nil
}

func (s *Sampler) dayTransits(date timebase.Date) (*DayTransits, error) {
	transits := &DayTransits{MoonAge: PlaceholderMoonAge}

	aries, err := FindAriesTransit(s.provider, date)
	if err != nil {
		return nil, fmt.Errorf("aries transit: %w", err)
	}
	transits.Aries, err = s.format.HourMin(aries)
	if err != nil {
		return nil, fmt.Errorf("format aries transit: %w", err)
	}

	for _, body := range Bodies {
		entry, err := s.bodyTransit(date, body)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", body, err)
		}

		switch body {
		case Sun:
			transits.Sun = *entry
		case Moon:
			transits.Moon = *entry
		case Venus:
			transits.Venus = *entry
		case Mars:
			transits.Mars = *entry
		case Jupiter:
			transits.Jupiter = *entry
		case Saturn:
			transits.Saturn = *entry
		}
	}

	midDay, err := Place(s.provider, At(date, midDayHour), Sun)
	if err != nil {
		return nil, fmt.Errorf("sun at mid-day: %w", err)
	}
	transits.SunRadius, err = s.format.MinutesSigned(SolarRadius(midDay.DistanceAU))
	if err != nil {
		return nil, fmt.Errorf("format sun radius: %w", err)
	}

	return transits, nil
}

func (s *Sampler) bodyTransit(date timebase.Date, body Body) (*BodyTransit, error) {
	hour, err := FindTransit(s.provider, date, body)
	if err != nil {
		return nil, fmt.Errorf("transit: %w", err)
	}

	entry := &BodyTransit{}
	entry.Transit, err = s.format.HourMin(hour)
	if err != nil {
		return nil, fmt.Errorf("format transit: %w", err)
	}

	// the Moon's corrections are tabulated per hour row instead
	if body == Moon {
		return entry, nil
	}

	diff, err := AverageDifference(s.provider, date, body)
	if err != nil {
		return nil, fmt.Errorf("average difference: %w", err)
	}
	entry.DeltaGHA, err = s.format.MinutesSigned(diff.GHA)
	if err != nil {
		return nil, fmt.Errorf("format gha difference: %w", err)
	}
	entry.DeltaDec, err = s.format.MinutesSigned(diff.Dec)
	if err != nil {
		return nil, fmt.Errorf("format dec difference: %w", err)
	}

	midDay, err := Place(s.provider, At(date, midDayHour), body)
	if err != nil {
		return nil, fmt.Errorf("mid-day place: %w", err)
	}
	entry.HP, err = s.format.MinutesSigned(HorizontalParallax(midDay.DistanceAU))
	if err != nil {
		return nil, fmt.Errorf("format parallax: %w", err)
	}

	return entry, nil
}
