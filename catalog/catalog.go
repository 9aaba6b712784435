// Package catalog holds the fixed-star reference data tabulated in
// the almanac's star column.
package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Star is one catalog entry at the J2000 reference epoch. Number is
// the ordinal printed in the almanac; positions are mean places.
type Star struct {
	Number         int     `yaml:"number"`
	Name           string  `yaml:"name"`
	RAHours        float64 `yaml:"ra"`              // mean right ascension, hours
	DecDeg         float64 `yaml:"dec"`             // mean declination, degrees
	PMRASec        float64 `yaml:"pm_ra"`           // proper motion, seconds of RA per year
	PMDecArcsec    float64 `yaml:"pm_dec"`          // proper motion, arcseconds per year
	ParallaxArcsec float64 `yaml:"parallax"`        // arcseconds
	RadialVelocity float64 `yaml:"radial_velocity"` // km/s, positive receding
}

// defaultStars is the leading portion of the standard list of
// navigational stars, in almanac order. J2000 places from the
// Hipparcos catalogue.
var defaultStars = []Star{
	{1, "Alpheratz", 0.13976, 29.0904, 0.0092, -0.163, 0.034, -12.0},
	{2, "Ankaa", 0.43801, -42.3061, 0.0155, -0.395, 0.042, 75.0},
	{3, "Schedar", 0.67512, 56.5373, 0.0036, -0.032, 0.014, -4.0},
	{4, "Diphda", 0.72649, -17.9866, 0.0155, 0.033, 0.034, 13.0},
	{5, "Achernar", 1.62857, -57.2367, 0.0059, -0.038, 0.023, 16.0},
	{6, "Hamal", 2.11956, 23.4624, 0.0127, -0.145, 0.049, -14.0},
	{7, "Acamar", 2.97104, -40.3047, -0.0036, 0.019, 0.020, 12.0},
	{8, "Menkar", 3.03799, 4.0897, -0.0008, -0.078, 0.015, -26.0},
	{9, "Mirfak", 3.40538, 49.8612, 0.0016, -0.026, 0.006, -2.0},
	{10, "Aldebaran", 4.59868, 16.5093, 0.0045, -0.190, 0.050, 54.0},
	{11, "Rigel", 5.24230, -8.2016, 0.0001, -0.001, 0.004, 21.0},
	{12, "Capella", 5.27816, 45.9980, 0.0053, -0.427, 0.077, 30.0},
	{13, "Bellatrix", 5.41885, 6.3497, -0.0006, -0.013, 0.013, 18.0},
	{14, "Elnath", 5.43820, 28.6075, 0.0017, -0.174, 0.025, 9.0},
	{15, "Alnilam", 5.60356, -1.2019, 0.0001, -0.001, 0.002, 26.0},
	{16, "Betelgeuse", 5.91953, 7.4071, 0.0018, 0.010, 0.008, 21.0},
	{17, "Canopus", 6.39920, -52.6957, 0.0013, 0.023, 0.010, 21.0},
	{18, "Sirius", 6.75248, -16.7161, -0.0379, -1.223, 0.379, -8.0},
	{19, "Adhara", 6.97710, -28.9721, 0.0002, 0.002, 0.008, 27.0},
	{20, "Procyon", 7.65503, 5.2250, -0.0474, -1.029, 0.286, -3.0},
	{21, "Pollux", 7.75526, 28.0262, -0.0474, -0.046, 0.097, 3.0},
}

// Default returns the compiled-in navigational star catalog.
func Default() []Star {
	stars := make([]Star, len(defaultStars))
	copy(stars, defaultStars)
	return stars
}

// Load reads a star catalog from a YAML file. Entries must appear in
// almanac order with unique, positive ordinals.
func Load(filename string) ([]Star, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var stars []Star
	err = yaml.Unmarshal(b, &stars)
	if err != nil {
		return nil, fmt.Errorf("decode catalog file: %w", err)
	}

	seen := make(map[int]bool, len(stars))
	for _, star := range stars {
		if star.Number <= 0 {
			return nil, fmt.Errorf("star %q: ordinal must be positive", star.Name)
		}
		if seen[star.Number] {
			return nil, fmt.Errorf("star %q: duplicate ordinal %d", star.Name, star.Number)
		}
		seen[star.Number] = true
	}

	return stars, nil
}
