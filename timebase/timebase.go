// Package timebase converts civil dates to the Julian dates used by
// ephemeris calculations.
//
// Ephemeris positions are computed on the uniform Terrestrial Time
// scale, while almanac tables are indexed by Universal Time. TT leads
// UT1 by the accumulated leap seconds plus a fixed 32.184s constant.
// http://www.stjarnhimlen.se/comp/time.html
package timebase

import (
	"math"
	"time"
)

const (
	// TerrestrialTimeOffset is the fixed TT-TAI offset in seconds.
	TerrestrialTimeOffset = 32.184

	SecondsPerHour = 3600
	HoursPerDay    = 24
)

// Date identifies one civil calendar day in the proleptic Gregorian
// calendar, UTC.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// Time returns midnight UTC at the start of the date.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// AddDays returns the date n civil days later.
func (d Date) AddDays(n int) Date {
	t := d.Time().AddDate(0, 0, n)
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// DaysUntil returns the number of civil days from d to e, negative
// when e precedes d.
func (d Date) DaysUntil(e Date) int {
	return int(math.Round(e.Time().Sub(d.Time()).Hours() / HoursPerDay))
}

func (d Date) String() string {
	return d.Time().Format("2006-01-02")
}

// DailyOffset returns TT-UT1 in hours for the given civil day,
// approximating UT1 by UTC. The offset is constant across the day.
func DailyOffset(d Date) float64 {
	return (TerrestrialTimeOffset + float64(LeapSeconds(d.Time()))) / SecondsPerHour
}

// JulianDate converts a civil date plus a decimal hour of day to a
// Julian date on the same time scale as the hour argument. Hours
// outside [0, 24) roll the date forward or backward.
//
// The integer day number conversion follows Fliegel & Van Flandern:
// http://aa.usno.navy.mil/faq/docs/JD_Formula.php
func JulianDate(d Date, hour float64) float64 {
	i, j, k := d.Year, int(d.Month), d.Day
	jdn := k - 32075 +
		1461*(i+4800+(j-14)/12)/4 +
		367*(j-2-(j-14)/12*12)/12 -
		3*((i+4900+(j-14)/12)/100)/4

	// jdn is the Julian day number for noon; midnight is half a day earlier
	return float64(jdn) - 0.5 + hour/HoursPerDay
}

// JulianDateUT1 returns the UT1 Julian date for an hour of the civil day.
func JulianDateUT1(d Date, hourUT1 float64) float64 {
	return JulianDate(d, hourUT1)
}

// JulianDateTT returns the TT Julian date for a UT1 hour of the civil
// day, applying the day's TT-UT1 offset.
func JulianDateTT(d Date, hourUT1 float64) float64 {
	return JulianDate(d, hourUT1+DailyOffset(d))
}
