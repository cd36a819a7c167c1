package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"biomarkerprep/internal/prep"
	"biomarkerprep/internal/stats"
	"biomarkerprep/internal/table"
)

type runOptions struct {
	describe bool
}

func addRunFlags(flags *pflag.FlagSet, opts *runOptions) {
	flags.StringP("input", "i", defaultInput, "Raw dataset CSV")
	flags.StringP("output", "o", defaultOutput, "Where to write the preprocessed CSV")
	flags.StringP("config", "c", "", "Pipeline config YAML (default: built-in biomarker columns)")
	flags.BoolVar(&opts.describe, "describe", false, "Print a summary of the preprocessed table")
}

func newRunCmd() *cobra.Command {
	var opts runOptions
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Preprocess a raw dataset and write the result",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPreprocess(cmd, &opts)
		},
	}
	addRunFlags(cmd.Flags(), &opts)
	return cmd
}

func runPreprocess(cmd *cobra.Command, opts *runOptions) error {
	logger, err := commandLogger(cmd)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	input := setting(flags, "input")
	output := setting(flags, "output")

	cfg, err := pipelineConfig(setting(flags, "config"))
	if err != nil {
		return err
	}

	raw, err := table.Load(input)
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}
	logger.Info("dataset loaded", "path", input, "rows", raw.Len(), "columns", raw.Width())

	out, err := prep.NewPipeline(cfg, logger).Run(raw)
	if err != nil {
		return err
	}
	logger.Info("preprocessing finished", "rows", out.Len(), "columns", out.Width())

	if opts.describe {
		if err := stats.Describe(out).Print(cmd.OutOrStdout()); err != nil {
			return fmt.Errorf("describe: %w", err)
		}
	}

	if err := table.Save(out, output); err != nil {
		logger.Error("save failed", "path", output, "rows", out.Len(), "error", err)
		return fmt.Errorf("save: %w", err)
	}
	logger.Info("dataset saved", "path", output)
	return nil
}

// pipelineConfig loads path, or returns the built-in config when path is empty.
func pipelineConfig(path string) (prep.Config, error) {
	if path == "" {
		return prep.DefaultConfig(), nil
	}
	return prep.LoadConfig(path)
}
