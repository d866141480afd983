// Package main provides the entry point for the log-analyzer CLI.
// The tool scans a log directory for the most recent nginx UI access log,
// aggregates per-URL timing statistics, and renders a report.
package main

import (
	"os"

	"nginx-log-analyzer/cmd/analyzer/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
