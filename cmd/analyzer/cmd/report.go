package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"nginx-log-analyzer/internal/analyzer"
	"nginx-log-analyzer/internal/config"
	analyzererrors "nginx-log-analyzer/internal/errors"
	"nginx-log-analyzer/internal/ingestion"
	"nginx-log-analyzer/internal/logging"
	"nginx-log-analyzer/internal/models"
	"nginx-log-analyzer/internal/report"
	"nginx-log-analyzer/internal/scanner"
)

// reportCmd represents the report command
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Analyze the most recent access log and write a report",
	Long: `Analyze the most recent access log in the configured log directory
and write a per-URL timing report to the report directory.

The run is a no-op (and exits successfully) when the log directory holds no
valid logs, when the report for the latest log already exists, or when the
log contains no valid records.

Examples:
  log-analyzer report
  log-analyzer report --config /etc/log-analyzer.ini
  log-analyzer report --format markdown --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		formatName, _ := cmd.Flags().GetString("format")
		force, _ := cmd.Flags().GetBool("force")

		format, err := report.ParseFormat(formatName)
		if err != nil {
			return err
		}

		runner, err := NewReportRunner(&ReportOptions{
			ConfigPath: cfgFile,
			Format:     format,
			Force:      force,
		})
		if err != nil {
			return err
		}
		return runner.Run(cmd.Context())
	},
}

func init() {
	reportCmd.Flags().String("format", "html", "report format (html, json, markdown)")
	reportCmd.Flags().Bool("force", false, "overwrite the report if it already exists")
}

// ReportOptions holds options for the report command.
type ReportOptions struct {
	ConfigPath string
	Format     report.Format
	Force      bool
}

// ReportRunner handles the report generation workflow.
type ReportRunner struct {
	options *ReportOptions
	config  *config.Config
	runID   string
	logger  *zap.Logger
}

// NewReportRunner creates a report runner with the given options.
func NewReportRunner(opts *ReportOptions) (*ReportRunner, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	// Set up logging
	logCfg := logging.DefaultConfig()
	logCfg.Level = cfg.Logging
	if verbose {
		logCfg.Level = "debug"
	}
	if err := logging.Setup(logCfg); err != nil {
		return nil, fmt.Errorf("failed to setup logging: %w", err)
	}

	runID := uuid.NewString()
	logger := logging.WithRun(runID, "report")

	return &ReportRunner{
		options: opts,
		config:  cfg,
		runID:   runID,
		logger:  logger,
	}, nil
}

// Run executes the report workflow.
func (r *ReportRunner) Run(ctx context.Context) error {
	start := time.Now()
	defer func() { _ = logging.Sync() }()

	r.logger.Info("report_starting",
		logging.Path(r.config.LogDir),
		logging.Format(string(r.options.Format)),
		zap.Int("report_size", r.config.ReportSize),
		zap.Float64("allowed_invalid_part", r.config.AllowedInvalidRecordsPart),
	)

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Handle signals for graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case sig := <-sigCh:
			r.logger.Info("received_signal", zap.String("signal", sig.String()))
			cancel()
		case <-ctx.Done():
		}
	}()

	if err := os.MkdirAll(r.config.ReportDir, 0755); err != nil {
		return analyzererrors.NewReportDirError(r.config.ReportDir, err)
	}

	// Locate the most recent log
	logFile, err := scanner.FindMostRecent(r.config.LogDir)
	if err != nil {
		return err
	}
	if logFile == nil {
		r.logger.Info("no_valid_logs", logging.Path(r.config.LogDir))
		return nil
	}
	r.logger.Debug("log_found", logging.Path(logFile.Path), logging.LogDate(logFile.Date))

	reportPath := filepath.Join(r.config.ReportDir,
		report.Filename(logFile.Date, r.options.Format))
	if !r.options.Force {
		if _, err := os.Stat(reportPath); err == nil {
			r.logger.Info("report_exists", logging.Path(reportPath))
			return nil
		}
	}

	// Single aggregation pass over the log
	agg, err := analyzer.New(analyzer.Config{
		AllowedInvalidPart: r.config.AllowedInvalidRecordsPart,
		Logger:             r.logger,
	}).Analyze(ctx, ingestion.NewFileSource(logFile))
	if err != nil {
		return err
	}

	stats := agg.Stats(r.config.ReportSize)
	if len(stats) == 0 {
		r.logger.Info("no_valid_records", logging.Path(logFile.Path))
		return nil
	}

	rep := &models.Report{
		RunID:         r.runID,
		GeneratedAt:   time.Now().UTC(),
		LogPath:       logFile.Path,
		LogDate:       logFile.Date,
		TotalRequests: agg.ValidCount,
		TotalTime:     agg.TotalTime,
		Stats:         stats,
	}

	bytesWritten, err := r.writeReport(rep, reportPath)
	if err != nil {
		return err
	}

	r.logger.Info("report_written",
		logging.Path(reportPath),
		logging.Count(len(stats)),
		zap.Int("bytes", bytesWritten),
		logging.Duration(time.Since(start)),
	)
	return nil
}

// writeReport renders the report to a temporary file and atomically renames
// it into place, so an interrupted run never leaves a half-written report
// that a later run would mistake for a finished one.
func (r *ReportRunner) writeReport(rep *models.Report, path string) (int, error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".report-*")
	if err != nil {
		return 0, analyzererrors.NewReportWriteError(path, err)
	}
	defer func() {
		tmp.Close()
		os.Remove(tmp.Name())
	}()

	writer, err := report.NewWriter(r.options.Format, tmp)
	if err != nil {
		return 0, err
	}

	n, err := writer.Write(rep)
	if err != nil {
		return n, analyzererrors.NewReportWriteError(path, err)
	}
	if err := tmp.Close(); err != nil {
		return n, analyzererrors.NewReportWriteError(path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return n, analyzererrors.NewReportWriteError(path, err)
	}
	return n, nil
}
