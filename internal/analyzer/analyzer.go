// Package analyzer aggregates per-URL timing statistics from an access log.
//
// The analyzer makes a single pass over the log: every line is handed to the
// parser, valid records accumulate into per-URL time series, and malformed
// lines are counted. After the pass the malformed fraction is checked against
// the configured threshold; a log that is mostly garbage usually means the
// log format changed, and producing a report from it would be misleading.
package analyzer

import (
	"context"
	"sort"

	"go.uber.org/zap"

	analyzererrors "nginx-log-analyzer/internal/errors"
	"nginx-log-analyzer/internal/ingestion"
	"nginx-log-analyzer/internal/logging"
	"nginx-log-analyzer/internal/models"
	"nginx-log-analyzer/internal/parser"
)

// lineBuffer is the channel capacity between the source reader and the
// aggregation loop.
const lineBuffer = 256

// Config holds analyzer configuration.
type Config struct {
	// AllowedInvalidPart is the maximum tolerated fraction of malformed
	// lines, in [0, 1].
	AllowedInvalidPart float64

	// Logger is the logger instance.
	Logger *zap.Logger
}

// Analyzer performs the aggregation pass over a log source.
type Analyzer struct {
	config Config
	parser *parser.AccessLogParser
	logger *zap.Logger
}

// New creates an analyzer with the given configuration.
func New(cfg Config) *Analyzer {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.L()
	}
	return &Analyzer{
		config: cfg,
		parser: parser.NewAccessLogParser(),
		logger: logger,
	}
}

// Aggregate holds the result of a single analysis pass.
type Aggregate struct {
	// ValidCount is the number of successfully parsed lines.
	ValidCount int

	// InvalidCount is the number of malformed lines.
	InvalidCount int

	// TotalTime is the summed request time across valid lines.
	TotalTime float64

	// times holds every observed request time per URL.
	times map[string][]float64
}

// InvalidPart returns the fraction of malformed lines. An empty log counts
// as one line so the fraction is well-defined.
func (a *Aggregate) InvalidPart() float64 {
	total := a.ValidCount + a.InvalidCount
	if total == 0 {
		total = 1
	}
	return float64(a.InvalidCount) / float64(total)
}

// URLCount returns the number of distinct URLs observed.
func (a *Aggregate) URLCount() int {
	return len(a.times)
}

// Analyze reads every line from src and aggregates request statistics.
// Returns ErrTooManyInvalidRecords when the malformed fraction exceeds the
// configured threshold.
func (a *Analyzer) Analyze(ctx context.Context, src ingestion.Source) (*Aggregate, error) {
	agg := &Aggregate{times: make(map[string][]float64)}

	lines := make(chan ingestion.Line, lineBuffer)
	readErr := make(chan error, 1)
	go func() {
		readErr <- src.Read(ctx, lines)
		close(lines)
	}()

	for line := range lines {
		request, ok := a.parser.Parse(line.Text)
		if !ok {
			agg.InvalidCount++
			a.logger.Debug("line_skipped", zap.Int("line_num", line.Num))
			continue
		}

		agg.ValidCount++
		agg.TotalTime += request.Time
		agg.times[request.URL] = append(agg.times[request.URL], request.Time)
	}

	if err := <-readErr; err != nil {
		return nil, err
	}

	invalidPart := agg.InvalidPart()
	if invalidPart > a.config.AllowedInvalidPart {
		return nil, analyzererrors.NewTooManyInvalidRecordsError(
			invalidPart, a.config.AllowedInvalidPart)
	}

	a.logger.Debug("analysis_pass_complete",
		zap.Int("valid", agg.ValidCount),
		zap.Int("invalid", agg.InvalidCount),
		zap.Int("urls", agg.URLCount()),
		logging.InvalidPart(invalidPart),
	)

	return agg, nil
}

// Stats computes per-URL statistics from the aggregate, sorted by total time
// descending and truncated to reportSize entries. A reportSize of zero
// returns an empty slice.
func (a *Aggregate) Stats(reportSize int) []models.URLStat {
	stats := make([]models.URLStat, 0, len(a.times))

	for url, times := range a.times {
		sorted := append([]float64(nil), times...)
		sort.Float64s(sorted)

		var sum float64
		for _, t := range sorted {
			sum += t
		}
		count := len(sorted)

		stats = append(stats, models.URLStat{
			URL:       url,
			Count:     count,
			CountPerc: 100 * float64(count) / float64(a.ValidCount),
			TimeSum:   sum,
			TimePerc:  100 * sum / a.TotalTime,
			TimeAvg:   sum / float64(count),
			TimeMax:   sorted[count-1],
			TimeMed:   median(sorted),
		})
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].TimeSum != stats[j].TimeSum {
			return stats[i].TimeSum > stats[j].TimeSum
		}
		return stats[i].URL < stats[j].URL
	})

	if reportSize < len(stats) {
		stats = stats[:reportSize]
	}
	return stats
}

// median returns the median of a sorted, non-empty slice. For even lengths
// it averages the two middle values.
func median(sorted []float64) float64 {
	n := len(sorted)
	return 0.5 * (sorted[(n-1)/2] + sorted[n/2])
}
