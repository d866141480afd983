// Package report renders analysis results into report files.
//
// Three formats are supported: HTML (the default, a self-contained page with
// a sortable statistics table), JSON (for tool integration), and Markdown
// (for documentation and sharing). All writers implement the same Writer
// interface so the CLI can treat formats uniformly.
package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"nginx-log-analyzer/internal/models"
)

// Format identifies a report output format.
type Format string

// Supported report formats.
const (
	FormatHTML     Format = "html"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
)

// ParseFormat converts a user-supplied format name into a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "html":
		return FormatHTML, nil
	case "json":
		return FormatJSON, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("unknown report format %q (expected html, json or markdown)", s)
	}
}

// Extension returns the file extension for the format, without the dot.
func (f Format) Extension() string {
	switch f {
	case FormatMarkdown:
		return "md"
	default:
		return string(f)
	}
}

// Filename returns the report filename for a log dated date, e.g.
// "report-2017.06.30.html".
func Filename(date time.Time, format Format) string {
	return fmt.Sprintf("report-%s.%s", date.Format("2006.01.02"), format.Extension())
}

// Writer defines the interface for report output.
// Implementations render a report in a specific format to their destination.
type Writer interface {
	// Write renders the report to the configured destination.
	// Returns the number of bytes written and any error encountered.
	Write(report *models.Report) (int, error)
}

// NewWriter creates a writer for the given format that renders to output.
func NewWriter(format Format, output io.Writer) (Writer, error) {
	switch format {
	case FormatHTML:
		return NewHTMLWriter(output), nil
	case FormatJSON:
		return NewJSONWriter(output, WithPrettyPrint()), nil
	case FormatMarkdown:
		return NewMarkdownWriter(output), nil
	default:
		return nil, fmt.Errorf("unknown report format %q", format)
	}
}

// MultiWriter writes the same report through multiple Writers.
// Useful for emitting a file report and a stdout summary in one run.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a Writer that writes through all provided Writers.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// Write renders the report through all configured Writers.
// Returns the total bytes written; stops on the first error.
func (m *MultiWriter) Write(report *models.Report) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.Write(report)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}
