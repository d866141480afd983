// Package cmd provides the CLI commands for the log analyzer.
package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "log-analyzer",
	Short: "nginx access log report generator",
	Long: `Log Analyzer is a batch tool for nginx UI access logs:
  - Finds the most recent log in the configured directory
    (nginx-access-ui.log-YYYYMMDD.log or .gz)
  - Aggregates per-URL timing statistics in a single pass
  - Renders the top URLs by total time into a report

Configuration is an INI file with a [main] section; every key is optional
and falls back to built-in defaults when the --config flag is omitted.`,
	Version:      "1.0.0",
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to INI config file (defaults are used when omitted)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	// Add subcommands
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(scanCmd)
}
