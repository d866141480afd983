// Package config loads and validates the analyzer configuration.
//
// Configuration is an INI file with a single [main] section:
//
//	[main]
//	REPORT_SIZE = 1000
//	REPORT_DIR = ./reports
//	LOG_DIR = ./log
//	ALLOWED_INVALID_RECORDS_PART = 0.2
//	LOGGING = INFO
//
// Every key is optional; missing keys fall back to the defaults. The
// --config flag itself is optional too, in which case the defaults are
// used as-is.
package config

import (
	"os"

	"gopkg.in/ini.v1"

	analyzererrors "nginx-log-analyzer/internal/errors"
	"nginx-log-analyzer/internal/logging"
)

// Section is the INI section holding analyzer settings.
const Section = "main"

// Configuration keys within the [main] section.
const (
	KeyReportSize         = "REPORT_SIZE"
	KeyReportDir          = "REPORT_DIR"
	KeyLogDir             = "LOG_DIR"
	KeyAllowedInvalidPart = "ALLOWED_INVALID_RECORDS_PART"
	KeyLogging            = "LOGGING"
)

// Default values used when a key (or the whole file) is absent.
const (
	DefaultReportSize         = 1000
	DefaultReportDir          = "./reports"
	DefaultLogDir             = "./log"
	DefaultAllowedInvalidPart = 0.2
	DefaultLogging            = "INFO"
)

// Config holds the analyzer settings.
type Config struct {
	// ReportSize is the number of URLs included in the report (top-N by
	// total time).
	ReportSize int

	// ReportDir is the directory reports are written to. Created if missing.
	ReportDir string

	// LogDir is the directory scanned for access logs.
	LogDir string

	// AllowedInvalidRecordsPart is the maximum tolerated fraction of
	// malformed log lines, in [0, 1].
	AllowedInvalidRecordsPart float64

	// Logging is the minimum log level (DEBUG, INFO, WARN, ERROR).
	Logging string
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		ReportSize:                DefaultReportSize,
		ReportDir:                 DefaultReportDir,
		LogDir:                    DefaultLogDir,
		AllowedInvalidRecordsPart: DefaultAllowedInvalidPart,
		Logging:                   DefaultLogging,
	}
}

// Load reads configuration from the INI file at path, overlaying it on the
// defaults. An empty path returns the defaults unchanged. A non-empty path
// that does not exist is an error: an explicitly requested config file must
// be readable.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, cfg.Validate()
	}

	if _, err := os.Stat(path); err != nil {
		return nil, analyzererrors.NewConfigMissingError(path)
	}

	// Key names are matched case-insensitively, mirroring the INI
	// convention of treating REPORT_DIR and report_dir as the same key.
	file, err := ini.InsensitiveLoad(path)
	if err != nil {
		return nil, analyzererrors.NewConfigInvalidError("failed to parse config file", err)
	}

	section := file.Section(Section)

	// HasKey distinguishes a key that is set to an empty value from an
	// absent key: only absent keys fall back to defaults, so
	// "REPORT_DIR =" trips validation instead of silently reverting.
	if section.HasKey(KeyReportSize) {
		key := section.Key(KeyReportSize)
		size, err := key.Int()
		if err != nil {
			return nil, analyzererrors.NewConfigValidationError(
				KeyReportSize, key.String(), "must be an integer")
		}
		cfg.ReportSize = size
	}

	if section.HasKey(KeyAllowedInvalidPart) {
		key := section.Key(KeyAllowedInvalidPart)
		part, err := key.Float64()
		if err != nil {
			return nil, analyzererrors.NewConfigValidationError(
				KeyAllowedInvalidPart, key.String(), "must be a number")
		}
		cfg.AllowedInvalidRecordsPart = part
	}

	if section.HasKey(KeyReportDir) {
		cfg.ReportDir = section.Key(KeyReportDir).String()
	}

	if section.HasKey(KeyLogDir) {
		cfg.LogDir = section.Key(KeyLogDir).String()
	}

	if section.HasKey(KeyLogging) {
		cfg.Logging = section.Key(KeyLogging).String()
	}

	return cfg, cfg.Validate()
}

// Validate checks that the configuration values are usable.
func (c *Config) Validate() error {
	if c.ReportSize < 0 {
		return analyzererrors.NewConfigValidationError(
			KeyReportSize, c.ReportSize, "must not be negative")
	}
	if c.AllowedInvalidRecordsPart < 0 || c.AllowedInvalidRecordsPart > 1 {
		return analyzererrors.NewConfigValidationError(
			KeyAllowedInvalidPart, c.AllowedInvalidRecordsPart, "must be within [0, 1]")
	}
	if c.ReportDir == "" {
		return analyzererrors.NewConfigValidationError(
			KeyReportDir, c.ReportDir, "must not be empty")
	}
	if c.LogDir == "" {
		return analyzererrors.NewConfigValidationError(
			KeyLogDir, c.LogDir, "must not be empty")
	}
	if !logging.ValidLevel(c.Logging) {
		return analyzererrors.NewConfigValidationError(
			KeyLogging, c.Logging, "must be a known log level")
	}
	return nil
}
