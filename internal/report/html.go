package report

import (
	"bytes"
	"embed"
	"encoding/json"
	"html/template"
	"io"

	analyzererrors "nginx-log-analyzer/internal/errors"
	"nginx-log-analyzer/internal/models"
)

//go:embed templates/report.html
var templateFS embed.FS

// reportTemplate is parsed once at startup; the template is embedded so the
// binary has no runtime file dependencies.
var reportTemplate = template.Must(
	template.ParseFS(templateFS, "templates/report.html"))

// HTMLWriter outputs reports as a self-contained HTML page with a sortable
// statistics table. The per-URL stats are injected into the page as a JSON
// array under the table_json template variable.
type HTMLWriter struct {
	baseWriter
}

// NewHTMLWriter creates an HTMLWriter that outputs to the given writer.
func NewHTMLWriter(output io.Writer) *HTMLWriter {
	return &HTMLWriter{
		baseWriter: newBaseWriter(output),
	}
}

// templateData is the payload handed to the HTML template.
type templateData struct {
	LogDate   string
	Generated string
	RunID     string
	TableJSON template.JS
}

// Write renders the report page.
func (w *HTMLWriter) Write(report *models.Report) (int, error) {
	tableJSON, err := json.Marshal(report.Stats)
	if err != nil {
		return 0, analyzererrors.NewReportRenderError("html", err)
	}

	data := templateData{
		LogDate:   report.LogDate.Format("2006.01.02"),
		Generated: report.GeneratedAt.Format("2006-01-02 15:04:05 MST"),
		RunID:     report.RunID,
		TableJSON: template.JS(tableJSON),
	}

	var buf bytes.Buffer
	if err := reportTemplate.Execute(&buf, data); err != nil {
		return 0, analyzererrors.NewReportRenderError("html", err)
	}

	return w.output.Write(buf.Bytes())
}
