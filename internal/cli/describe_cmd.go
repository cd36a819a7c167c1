package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"biomarkerprep/internal/stats"
	"biomarkerprep/internal/table"
)

func newDescribeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "describe",
		Short: "Summarize a CSV dataset without transforming it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := commandLogger(cmd)
			if err != nil {
				return err
			}
			input := setting(cmd.Flags(), "input")
			t, err := table.Load(input)
			if err != nil {
				return fmt.Errorf("load: %w", err)
			}
			logger.Debug("dataset loaded", "path", input, "rows", t.Len(), "columns", t.Width())
			return stats.Describe(t).Print(cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringP("input", "i", defaultInput, "CSV dataset to summarize")
	return cmd
}
