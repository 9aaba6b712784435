// Package config loads the run configuration for the almanac
// generator.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/subtlepseudonym/ephemeris/timebase"
)

const dateFormat = "2006-01-02"

// Config is the YAML run configuration. Start and End bound the civil
// days to tabulate, inclusive.
type Config struct {
	Start string `yaml:"start"`
	End   string `yaml:"end"`

	Catalog string `yaml:"catalog,omitempty"` // star catalog file; empty uses the compiled-in list
	Locale  string `yaml:"locale,omitempty"`  // "point" (default) or "comma"
	Workers int    `yaml:"workers,omitempty"`

	// Ephemeris is the directory holding VSOP87 planetary theory
	// files for the meeus-backed provider.
	Ephemeris string `yaml:"ephemeris"`

	OutputDir string `yaml:"output_dir,omitempty"`
	Listen    string `yaml:"listen,omitempty"`

	// Observer position for the daily rise/set block. Defaults to
	// the Greenwich meridian at the equator.
	Latitude  float64 `yaml:"latitude,omitempty"`
	Longitude float64 `yaml:"longitude,omitempty"`
}

func Open(filename string) (*Config, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	defer f.Close()

	var config Config
	err = yaml.NewDecoder(f).Decode(&config)
	if err != nil {
		return nil, fmt.Errorf("decode config file: %w", err)
	}

	return &config, nil
}

func (c *Config) Validate() error {
	start, err := c.StartDate()
	if err != nil {
		return err
	}
	end, err := c.EndDate()
	if err != nil {
		return err
	}

	if start.DaysUntil(end) < 0 {
		return fmt.Errorf("end date %s before start date %s", end, start)
	}

	switch c.Locale {
	case "", "point", "comma":
	default:
		return fmt.Errorf("unknown locale %q", c.Locale)
	}

	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative: %d", c.Workers)
	}

	return nil
}

func (c *Config) StartDate() (timebase.Date, error) {
	return parseDate("start", c.Start)
}

func (c *Config) EndDate() (timebase.Date, error) {
	return parseDate("end", c.End)
}

func parseDate(field, value string) (timebase.Date, error) {
	t, err := time.Parse(dateFormat, value)
	if err != nil {
		return timebase.Date{}, fmt.Errorf("parse %s date: %w", field, err)
	}
	return timebase.Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}, nil
}
