package parser

import (
	"testing"
)

// validLine is a line in the predefined UI access log format.
const validLine = `1.196.116.32 -  - [29/Jun/2017:03:50:22 +0300] "GET /api/v2/banner/25019354 HTTP/1.1" 200 927 "-" "Lynx/2.8.8dev.9 libwww-FM/2.14 SSL-MM/1.4.1 GNUTLS/2.10.5" "-" "1498697422-2190034393-4708-9752759" "dc7161be3" 0.390`

func TestAccessLogParser_Parse(t *testing.T) {
	p := NewAccessLogParser()

	tests := []struct {
		name     string
		line     string
		wantOK   bool
		wantURL  string
		wantTime float64
	}{
		{
			name:     "valid line",
			line:     validLine,
			wantOK:   true,
			wantURL:  "/api/v2/banner/25019354",
			wantTime: 0.390,
		},
		{
			name:     "valid POST request",
			line:     `1.138.198.128 -  - [29/Jun/2017:03:50:23 +0300] "POST /api/1/banners/?campaign=7789705 HTTP/1.1" 200 53 "-" "-" "-" "1498697423-32900793-4708-9752770" "-" 0.841`,
			wantOK:   true,
			wantURL:  "/api/1/banners/?campaign=7789705",
			wantTime: 0.841,
		},
		{
			name:   "empty line",
			line:   "",
			wantOK: false,
		},
		{
			name:   "garbage",
			line:   "not an access log line at all",
			wantOK: false,
		},
		{
			name:   "missing request time",
			line:   `1.196.116.32 -  - [29/Jun/2017:03:50:22 +0300] "GET /api/v2/banner HTTP/1.1" 200 927 "-" "-" "-" "-" "-"`,
			wantOK: false,
		},
		{
			name:   "integer request time",
			line:   `1.196.116.32 -  - [29/Jun/2017:03:50:22 +0300] "GET /api/v2/banner HTTP/1.1" 200 927 "-" "-" "-" "-" "-" 1`,
			wantOK: false,
		},
		{
			// A truncated $request like "0" has no method/url/protocol split.
			name:   "malformed request field",
			line:   `1.99.174.176 3b81f63526fa8  - [29/Jun/2017:03:50:22 +0300] "0" 400 166 "-" "-" "-" "1498697422-32900793-4708-9752770" "-" 0.133`,
			wantOK: false,
		},
		{
			name:   "request field with extra spaces",
			line:   `1.196.116.32 -  - [29/Jun/2017:03:50:22 +0300] "GET /api /v2 HTTP/1.1" 200 927 "-" "-" "-" "-" "-" 0.100`,
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request, ok := p.Parse(tt.line)
			if ok != tt.wantOK {
				t.Fatalf("Parse() ok = %v, want %v", ok, tt.wantOK)
			}
			if !tt.wantOK {
				return
			}
			if request.URL != tt.wantURL {
				t.Errorf("Parse() url = %q, want %q", request.URL, tt.wantURL)
			}
			if request.Time != tt.wantTime {
				t.Errorf("Parse() time = %v, want %v", request.Time, tt.wantTime)
			}
		})
	}
}

func TestAccessLogParser_Name(t *testing.T) {
	if got := NewAccessLogParser().Name(); got != "nginx-access-ui" {
		t.Errorf("Name() = %q", got)
	}
}
