package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "attest",
	Short: "Render and inspect attest test results",
	Long: `attest is the companion CLI for the attest unit-testing library.
It re-renders previously captured result files (XML or JSON) through any of
the library's exporters, for terminals, CI logs, or archival.`,
}

func Execute(v, bt string) {
	version = v
	buildTime = bt
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitUsageError)
	}
}

func init() {
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(versionCmd)
}
