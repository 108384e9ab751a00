package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"streamlens/internal/config"
	"streamlens/internal/logging"
	"streamlens/internal/pipeline"
)

func newRunCommand(ctx *commandContext) *cobra.Command {
	var datasetFlag string
	var outputFlag string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the catalog analysis pipeline",
		Long: "Load the catalog CSV, clean it, print descriptive statistics for " +
			"every aggregate, and write the three chart artifacts.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if err := applyOverrides(cfg, datasetFlag, outputFlag); err != nil {
				return err
			}

			logger, err := logging.New(logging.Options{
				Level:  cfg.Logging.Level,
				Format: cfg.Logging.Format,
				Output: cmd.ErrOrStderr(),
			})
			if err != nil {
				return fmt.Errorf("build logger: %w", err)
			}

			runner, err := pipeline.NewConsoleRunner(cfg, logger, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return runner.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVarP(&datasetFlag, "dataset", "d", "", "Path to the catalog CSV (overrides config)")
	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Artifact output directory (overrides config)")
	return cmd
}

func applyOverrides(cfg *config.Config, dataset, output string) error {
	if dataset != "" {
		expanded, err := config.ExpandPath(dataset)
		if err != nil {
			return fmt.Errorf("resolve dataset path: %w", err)
		}
		cfg.Dataset.Path = expanded
	}
	if output != "" {
		expanded, err := config.ExpandPath(output)
		if err != nil {
			return fmt.Errorf("resolve output directory: %w", err)
		}
		cfg.Output.Dir = expanded
	}
	return nil
}
