package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/nao1215/markdown"

	"nginx-log-analyzer/internal/models"
)

// MarkdownWriter outputs reports in Markdown format.
// This format is designed for documentation and sharing.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the report in Markdown format.
func (w *MarkdownWriter) Write(report *models.Report) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, report)
	w.writeStats(md, report)

	return len(md.String()), md.Build()
}

// writeHeader writes the report header with run information.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, report *models.Report) {
	md.H1("Access Log Report")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Log file", "`" + report.LogPath + "`"},
			{"Log date", report.LogDate.Format("2006.01.02")},
			{"Generated", report.GeneratedAt.Format("2006-01-02 15:04:05 MST")},
			{"Run ID", report.RunID},
			{"Valid requests", strconv.Itoa(report.TotalRequests)},
			{"Total time", formatSeconds(report.TotalTime)},
		},
	})
	md.PlainText("")
}

// writeStats writes the per-URL statistics table.
func (w *MarkdownWriter) writeStats(md *markdown.Markdown, report *models.Report) {
	md.H2(fmt.Sprintf("Top %d URLs by total time", len(report.Stats)))
	md.PlainText("")

	rows := make([][]string, 0, len(report.Stats))
	for _, stat := range report.Stats {
		rows = append(rows, []string{
			"`" + stat.URL + "`",
			strconv.Itoa(stat.Count),
			formatPercent(stat.CountPerc),
			formatSeconds(stat.TimeSum),
			formatPercent(stat.TimePerc),
			formatSeconds(stat.TimeAvg),
			formatSeconds(stat.TimeMax),
			formatSeconds(stat.TimeMed),
		})
	}

	md.Table(markdown.TableSet{
		Header: []string{
			"URL", "Count", "Count %", "Time Sum",
			"Time %", "Time Avg", "Time Max", "Time Med",
		},
		Rows: rows,
	})
}

// formatSeconds renders a request time with millisecond precision.
func formatSeconds(seconds float64) string {
	return strconv.FormatFloat(seconds, 'f', 3, 64)
}

// formatPercent renders a percentage with three decimals.
func formatPercent(percent float64) string {
	return strconv.FormatFloat(percent, 'f', 3, 64) + "%"
}
