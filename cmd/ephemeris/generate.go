package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/subtlepseudonym/ephemeris/render"
)

const defaultOutputDir = "pages"

func newGenerateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "compute and write one page per civil day in the configured range",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, orchestrator, logger, err := setup()
			if err != nil {
				return err
			}
			defer logger.Sync()

			start, err := cfg.StartDate()
			if err != nil {
				return err
			}
			end, err := cfg.EndDate()
			if err != nil {
				return err
			}

			days, err := orchestrator.Run(cmd.Context(), start, end)
			if err != nil {
				return fmt.Errorf("compute tables: %w", err)
			}

			outputDir := cfg.OutputDir
			if outputDir == "" {
				outputDir = defaultOutputDir
			}
			err = render.WriteAll(outputDir, days)
			if err != nil {
				return err
			}

			logger.Info("wrote almanac pages",
				zap.Int("days", len(days)),
				zap.String("dir", outputDir))
			return nil
		},
	}
}
