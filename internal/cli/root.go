// Package cli wires the preprocessing pipeline to the biomarkerprep command line.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const envPrefix = "BIOPREP_"

const (
	defaultInput  = "dataset_raw/debernardi_2020.csv"
	defaultOutput = "preprocessing/dataset_preprocessing/debernardi_2020_preprocessed.csv"
)

// Execute runs the CLI with the process arguments and returns the exit code.
func Execute() int {
	return execute(os.Args[1:], os.Stdout, os.Stderr)
}

func execute(args []string, stdout, stderr io.Writer) int {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	var opts runOptions

	rootCmd := &cobra.Command{
		Use:   "biomarkerprep",
		Short: "Clean the urine biomarker dataset for modelling",
		Long: "Drops identifier columns, one-hot encodes sex, removes IQR outliers column by column\n" +
			"and binarizes the diagnosis label. Without a subcommand it behaves like `run`.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPreprocess(cmd, &opts)
		},
	}

	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "auto", "Log format (auto, text, json)")
	addRunFlags(rootCmd.Flags(), &opts)

	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newDescribeCmd())
	return rootCmd
}

// setting resolves a string flag with precedence flag > env > flag default.
func setting(flags *pflag.FlagSet, name string) string {
	v, _ := flags.GetString(name)
	if flags.Changed(name) {
		return v
	}
	if env := os.Getenv(envName(name)); env != "" {
		return env
	}
	return v
}

// envName maps a flag name such as "log-level" to BIOPREP_LOG_LEVEL.
func envName(flag string) string {
	b := []byte(envPrefix + flag)
	for i, c := range b {
		switch {
		case c == '-':
			b[i] = '_'
		case c >= 'a' && c <= 'z':
			b[i] = c - 'a' + 'A'
		}
	}
	return string(b)
}
