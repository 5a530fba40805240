package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gls254util",
		Short: "Vector checks and benchmarks for the gls254 scalar multiplication library",
	}

	var logLevel string
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (trace|debug|info|warn|error)")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		logger.SetLevel(hclogLevel(logLevel))
	}

	rootCmd.AddCommand(newVectorsCommand())
	rootCmd.AddCommand(newBenchCommand())

	return rootCmd
}
