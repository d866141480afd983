// Package parser extracts request records from nginx access log lines.
//
// The expected line format is the predefined UI log format:
//
//	$remote_addr $remote_user $http_x_real_ip [$time_local] "$request"
//	$status $body_bytes_sent "$http_referer" "$http_user_agent"
//	"$http_x_forwarded_for" "$http_X_REQUEST_ID" "$http_X_RB_USER"
//	$request_time
//
// Only the $request URL and the trailing $request_time are extracted; the
// rest of the line is matched structurally but not captured.
package parser

import (
	"regexp"
	"strconv"
	"strings"

	"nginx-log-analyzer/internal/models"
)

// requestPattern captures the quoted $request field and the trailing
// $request_time. Lines not ending in a fractional request time do not match.
var requestPattern = regexp.MustCompile(`^.+\[.+\] "(.+)" \d{3}.+ (\d+\.\d+)$`)

// AccessLogParser parses lines in the predefined nginx UI access log format.
type AccessLogParser struct{}

// NewAccessLogParser creates a new access log parser.
func NewAccessLogParser() *AccessLogParser {
	return &AccessLogParser{}
}

// Name returns the parser name.
func (p *AccessLogParser) Name() string {
	return "nginx-access-ui"
}

// Parse parses a log line into a Request.
// Returns the request and true on success, or nil and false for malformed
// lines: a non-matching structure, a $request that is not exactly
// "METHOD URL PROTOCOL", or an unparsable request time.
func (p *AccessLogParser) Parse(line string) (*models.Request, bool) {
	matches := requestPattern.FindStringSubmatch(line)
	if matches == nil {
		return nil, false
	}

	// $request must be "METHOD URL PROTOCOL", e.g. "GET /api/v2/banner HTTP/1.1".
	requestParts := strings.Fields(matches[1])
	if len(requestParts) != 3 {
		return nil, false
	}

	requestTime, err := strconv.ParseFloat(matches[2], 64)
	if err != nil {
		return nil, false
	}

	return &models.Request{
		URL:  requestParts[1],
		Time: requestTime,
	}, true
}
