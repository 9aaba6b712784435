// Command ephemeris generates nautical-almanac ephemeris tables:
// hourly Greenwich hour angles and declinations for the Sun, Moon,
// planets and stars, with daily transit times and interpolation
// corrections.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/subtlepseudonym/ephemeris"
	"github.com/subtlepseudonym/ephemeris/catalog"
	"github.com/subtlepseudonym/ephemeris/config"
	"github.com/subtlepseudonym/ephemeris/ephem"
	"github.com/subtlepseudonym/ephemeris/sexagesimal"
)

var (
	configPath string
	debug      bool
)

func main() {
	root := &cobra.Command{
		Use:           "ephemeris",
		Short:         "generate nautical almanac ephemeris tables",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "ephemeris.yaml", "path to run configuration")
	root.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	root.AddCommand(newGenerateCmd(), newServeCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "ERR: %s\n", err)
		os.Exit(1)
	}
}

func newLogger() (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg.Build()
}

// setup builds the orchestrator from the run configuration: star
// catalog, VSOP87-backed provider, sampler and logger.
func setup() (*config.Config, *ephemeris.Orchestrator, *zap.Logger, error) {
	cfg, err := config.Open(configPath)
	if err != nil {
		return nil, nil, nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, nil, fmt.Errorf("validate config: %w", err)
	}

	logger, err := newLogger()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("build logger: %w", err)
	}

	stars := catalog.Default()
	if cfg.Catalog != "" {
		stars, err = catalog.Load(cfg.Catalog)
		if err != nil {
			return nil, nil, nil, err
		}
	}

	source, err := ephem.Open(cfg.Ephemeris)
	if err != nil {
		return nil, nil, nil, err
	}

	locale := sexagesimal.LocalePoint
	if cfg.Locale == "comma" {
		locale = sexagesimal.LocaleComma
	}

	sampler := ephemeris.NewSampler(source, stars, locale)
	orchestrator, err := ephemeris.NewOrchestrator(sampler, logger, cfg.Workers, cfg.Latitude, cfg.Longitude)
	if err != nil {
		return nil, nil, nil, err
	}

	return cfg, orchestrator, logger, nil
}
