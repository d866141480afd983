// Package models defines the core data structures used across the analyzer.
package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// Extension identifies the on-disk encoding of a log file.
type Extension string

// Supported log file extensions.
const (
	ExtensionPlain Extension = "log"
	ExtensionGzip  Extension = "gz"
)

// Valid reports whether the extension is one the analyzer can read.
func (e Extension) Valid() bool {
	return e == ExtensionPlain || e == ExtensionGzip
}

// LogFile describes a single access log discovered in the log directory.
type LogFile struct {
	// Path is the absolute path to the log file.
	Path string `json:"path"`

	// Date is the date encoded in the filename (nginx-access-ui.log-YYYYMMDD).
	Date time.Time `json:"date"`

	// Extension is the file extension, either "log" or "gz".
	Extension Extension `json:"extension"`
}

// String returns a human-readable representation of the log file.
func (l LogFile) String() string {
	return fmt.Sprintf("%s (dated %s)", l.Path, l.Date.Format("2006.01.02"))
}

// Request represents one successfully parsed access log record.
type Request struct {
	// URL is the request path extracted from the $request field.
	URL string `json:"url"`

	// Time is the request duration in seconds ($request_time).
	Time float64 `json:"time"`
}

// URLStat holds aggregated timing statistics for a single URL.
// JSON field names match the report table contract.
type URLStat struct {
	// URL is the request path these statistics describe.
	URL string `json:"url"`

	// Count is the number of requests to this URL.
	Count int `json:"count"`

	// CountPerc is Count as a percentage of all valid requests.
	CountPerc float64 `json:"count_perc"`

	// TimeSum is the total time spent serving this URL, in seconds.
	TimeSum float64 `json:"time_sum"`

	// TimePerc is TimeSum as a percentage of the total request time.
	TimePerc float64 `json:"time_perc"`

	// TimeAvg is the mean request time for this URL.
	TimeAvg float64 `json:"time_avg"`

	// TimeMax is the slowest request time for this URL.
	TimeMax float64 `json:"time_max"`

	// TimeMed is the median request time for this URL.
	TimeMed float64 `json:"time_med"`
}

// Report is the envelope handed to report writers.
type Report struct {
	// RunID uniquely identifies the analyzer run that produced the report.
	RunID string `json:"run_id"`

	// GeneratedAt is when the report was produced.
	GeneratedAt time.Time `json:"generated_at"`

	// LogPath is the path of the analyzed log file.
	LogPath string `json:"log_path"`

	// LogDate is the date encoded in the analyzed log filename.
	LogDate time.Time `json:"log_date"`

	// TotalRequests is the number of valid records in the log file.
	TotalRequests int `json:"total_requests"`

	// TotalTime is the summed request time across all valid records.
	TotalTime float64 `json:"total_time"`

	// Stats are the per-URL statistics, sorted by TimeSum descending.
	Stats []URLStat `json:"stats"`
}

// ToJSON serializes the report to JSON bytes.
func (r *Report) ToJSON() ([]byte, error) {
	return json.Marshal(r)
}
