// Package sexagesimal renders decimal angles and times as the
// fixed-width degree/minute and hour/minute pairs printed in nautical
// almanac tables.
package sexagesimal

import (
	"fmt"
	"math"
	"strings"
)

// Locale selects the decimal separator printed inside minute strings.
// It never changes a numeric value, only its rendering.
type Locale int

const (
	LocalePoint Locale = iota // 34.5
	LocaleComma               // 34,5
)

// DomainError reports a value outside the numeric domain of a
// formatting operation.
type DomainError struct {
	Value  float64
	Domain string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("value %g outside domain %s", e.Value, e.Domain)
}

// AngleDM is a formatted angle: a zero-padded integer degree part and
// a minute string. Depending on the producing conversion the minute
// string may carry a trailing hemisphere letter.
type AngleDM struct {
	Deg string
	Min string
}

func (a AngleDM) String() string {
	return a.Deg + " " + a.Min
}

// TimeHM is a formatted time of day in whole hours and minutes.
type TimeHM struct {
	Hour string
	Min  string
}

func (t TimeHM) String() string {
	return t.Hour + ":" + t.Min
}

// Formatter converts decimal degrees and hours to table strings using
// a fixed locale.
type Formatter struct {
	Locale Locale
}

// DegMin360 formats a non-negative angle as 3-digit degrees and one
// decimal of minutes. Angles of 360 or more wrap into [0, 360).
func (f Formatter) DegMin360(x float64) (AngleDM, error) {
	if x < 0 {
		return AngleDM{}, &DomainError{Value: x, Domain: "[0, +inf)"}
	}

	deg, min := splitMinutes(x)
	deg %= 360
	return AngleDM{
		Deg: fmt.Sprintf("%03d", deg),
		Min: f.minutes(min),
	}, nil
}

// DegMinSigned formats a declination-style angle as 2-digit degrees,
// one decimal of minutes, and a hemisphere letter. Zero maps to N.
func (f Formatter) DegMinSigned(x float64) (AngleDM, error) {
	if math.Abs(x) > 90 {
		return AngleDM{}, &DomainError{Value: x, Domain: "[-90, 90]"}
	}

	hemisphere := "N"
	if x < 0 {
		hemisphere = "S"
	}

	deg, min := splitMinutes(math.Abs(x))
	return AngleDM{
		Deg: fmt.Sprintf("%02d", deg),
		Min: f.minutes(min) + hemisphere,
	}, nil
}

// HourMin formats a non-negative decimal hour as whole hours and
// whole minutes, rounding to the nearest minute.
func (f Formatter) HourMin(x float64) (TimeHM, error) {
	if x < 0 {
		return TimeHM{}, &DomainError{Value: x, Domain: "[0, +inf)"}
	}

	hour := int(x)
	min := int(math.Round((x - float64(hour)) * 60))
	if min == 60 {
		hour++
		min = 0
	}

	return TimeHM{
		Hour: fmt.Sprintf("%02d", hour),
		Min:  fmt.Sprintf("%02d", min),
	}, nil
}

// MinutesSigned formats a fractional degree as explicitly signed
// minutes with one decimal, for the interpolation correction columns.
func (f Formatter) MinutesSigned(x float64) (string, error) {
	if math.Abs(x) >= 1.0 {
		return "", &DomainError{Value: x, Domain: "(-1, 1)"}
	}

	return f.localize(fmt.Sprintf("%+05.1f", x*60)), nil
}

// splitMinutes separates a non-negative angle or time into its integer
// part and fractional minutes rounded to one decimal, carrying a
// rounded 60.0 into the integer part.
func splitMinutes(x float64) (int, float64) {
	whole := int(x)
	min := math.Round((x-float64(whole))*600) / 10
	if min >= 60 {
		whole++
		min = 0
	}
	return whole, min
}

func (f Formatter) minutes(min float64) string {
	return f.localize(fmt.Sprintf("%04.1f", min))
}

func (f Formatter) localize(s string) string {
	if f.Locale == LocaleComma {
		return strings.Replace(s, ".", ",", 1)
	}
	return s
}
