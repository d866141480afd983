package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nginx-log-analyzer/internal/config"
	analyzererrors "nginx-log-analyzer/internal/errors"
)

// writeConfig writes an INI file into a temp dir and returns its path.
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.ini")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := config.Default()

	assert.Equal(t, 1000, cfg.ReportSize)
	assert.Equal(t, "./reports", cfg.ReportDir)
	assert.Equal(t, "./log", cfg.LogDir)
	assert.InDelta(t, 0.2, cfg.AllowedInvalidRecordsPart, 1e-9)
	assert.Equal(t, "INFO", cfg.Logging)
}

func TestLoadEmptyPathUsesDefaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.ini"))
	assert.ErrorIs(t, err, analyzererrors.ErrConfigMissing)
}

func TestLoadFullConfig(t *testing.T) {
	path := writeConfig(t, `[main]
REPORT_SIZE = 50
REPORT_DIR = /tmp/reports
LOG_DIR = /tmp/log
ALLOWED_INVALID_RECORDS_PART = 0.35
LOGGING = DEBUG
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 50, cfg.ReportSize)
	assert.Equal(t, "/tmp/reports", cfg.ReportDir)
	assert.Equal(t, "/tmp/log", cfg.LogDir)
	assert.InDelta(t, 0.35, cfg.AllowedInvalidRecordsPart, 1e-9)
	assert.Equal(t, "DEBUG", cfg.Logging)
}

func TestLoadPartialConfigKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `[main]
REPORT_SIZE = 10
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.ReportSize)
	assert.Equal(t, config.DefaultReportDir, cfg.ReportDir)
	assert.Equal(t, config.DefaultLogDir, cfg.LogDir)
	assert.InDelta(t, config.DefaultAllowedInvalidPart, cfg.AllowedInvalidRecordsPart, 1e-9)
}

func TestLoadCaseInsensitiveKeys(t *testing.T) {
	path := writeConfig(t, `[main]
report_dir = ./out
log_dir = ./in
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "./out", cfg.ReportDir)
	assert.Equal(t, "./in", cfg.LogDir)
}

func TestLoadInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "non-integer report size",
			content: `[main]
REPORT_SIZE = many
`,
		},
		{
			name: "non-numeric invalid part",
			content: `[main]
ALLOWED_INVALID_RECORDS_PART = lots
`,
		},
		{
			name: "negative report size",
			content: `[main]
REPORT_SIZE = -5
`,
		},
		{
			name: "invalid part above one",
			content: `[main]
ALLOWED_INVALID_RECORDS_PART = 1.5
`,
		},
		{
			name: "unknown log level",
			content: `[main]
LOGGING = LOUD
`,
		},
		{
			// Set-but-empty must not silently revert to the default.
			name: "empty report dir",
			content: `[main]
REPORT_DIR =
`,
		},
		{
			name: "empty log dir",
			content: `[main]
LOG_DIR =
`,
		},
		{
			name: "empty report size",
			content: `[main]
REPORT_SIZE =
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.ErrorIs(t, err, analyzererrors.ErrConfigValidation)
		})
	}
}

func TestValidate(t *testing.T) {
	cfg := config.Default()
	cfg.ReportDir = ""
	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, analyzererrors.ErrConfigValidation)
	assert.Equal(t, analyzererrors.ErrCodeConfigValidation, analyzererrors.GetErrorCode(err))
}
