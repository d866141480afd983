package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"nginx-log-analyzer/internal/config"
	"nginx-log-analyzer/internal/scanner"
)

// scanCmd represents the scan command
var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Show which log file the report command would analyze",
	Long: `Scan the configured log directory and print the most recent access
log without analyzing it. Useful for checking the configuration before a run.

Examples:
  log-analyzer scan
  log-analyzer scan --config /etc/log-analyzer.ini`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}

		logFile, err := scanner.FindMostRecent(cfg.LogDir)
		if err != nil {
			return err
		}
		if logFile == nil {
			fmt.Fprintf(cmd.OutOrStdout(), "no valid logs in %s\n", cfg.LogDir)
			return nil
		}

		fmt.Fprintf(cmd.OutOrStdout(), "path:      %s\n", logFile.Path)
		fmt.Fprintf(cmd.OutOrStdout(), "date:      %s\n", logFile.Date.Format("2006.01.02"))
		fmt.Fprintf(cmd.OutOrStdout(), "extension: %s\n", logFile.Extension)
		return nil
	},
}
