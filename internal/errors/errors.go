// Package errors provides structured error types for the log analyzer.
//
// This package follows Go best practices for error handling:
// - Sentinel errors for type checking with errors.Is()
// - Error wrapping with context using fmt.Errorf("%w", err)
// - Structured error types for detailed information
// - Error codes for machine-readable categorization
//
// Error code ranges:
// - 1xxx: Configuration errors
// - 2xxx: Log discovery and ingestion errors
// - 3xxx: Parsing and analysis errors
// - 4xxx: Report errors
// - 9xxx: General errors
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a machine-readable error identifier.
type ErrorCode string

// Configuration error codes (1xxx)
const (
	ErrCodeConfigInvalid    ErrorCode = "ANALYZER_1001"
	ErrCodeConfigMissing    ErrorCode = "ANALYZER_1002"
	ErrCodeConfigValidation ErrorCode = "ANALYZER_1003"
)

// Log discovery and ingestion error codes (2xxx)
const (
	ErrCodeLogDirInvalid        ErrorCode = "ANALYZER_2001"
	ErrCodeLogFileNotFound      ErrorCode = "ANALYZER_2002"
	ErrCodeUnsupportedExtension ErrorCode = "ANALYZER_2003"
	ErrCodeLogReadFailed        ErrorCode = "ANALYZER_2004"
)

// Parsing and analysis error codes (3xxx)
const (
	ErrCodeTooManyInvalidRecords ErrorCode = "ANALYZER_3001"
)

// Report error codes (4xxx)
const (
	ErrCodeReportWriteFailed  ErrorCode = "ANALYZER_4001"
	ErrCodeReportRenderFailed ErrorCode = "ANALYZER_4002"
	ErrCodeReportDirInvalid   ErrorCode = "ANALYZER_4003"
)

// General error codes (9xxx)
const (
	ErrCodeUnknown ErrorCode = "ANALYZER_9999"
)

// Sentinel errors for type checking with errors.Is()
var (
	// Configuration errors
	ErrConfigInvalid    = errors.New("invalid configuration")
	ErrConfigMissing    = errors.New("configuration not found")
	ErrConfigValidation = errors.New("configuration validation failed")

	// Log discovery and ingestion errors
	ErrLogDirInvalid        = errors.New("log directory invalid")
	ErrLogFileNotFound      = errors.New("log file not found")
	ErrUnsupportedExtension = errors.New("unsupported log file extension")
	ErrLogReadFailed        = errors.New("log read failed")

	// Parsing and analysis errors
	ErrTooManyInvalidRecords = errors.New("too many invalid records")

	// Report errors
	ErrReportWriteFailed  = errors.New("report write failed")
	ErrReportRenderFailed = errors.New("report render failed")
	ErrReportDirInvalid   = errors.New("report directory invalid")
)

// AnalyzerError is the base error type with structured information.
type AnalyzerError struct {
	Code    ErrorCode
	Message string
	Context map[string]interface{}
	Cause   error
}

// Error implements the error interface.
func (e *AnalyzerError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *AnalyzerError) Unwrap() error {
	return e.Cause
}

// Is checks if the target error matches this error's cause.
func (e *AnalyzerError) Is(target error) bool {
	if e.Cause != nil {
		return errors.Is(e.Cause, target)
	}
	return false
}

// WithContext adds context information to the error.
func (e *AnalyzerError) WithContext(key string, value interface{}) *AnalyzerError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// ToMap converts the error to a map for structured logging.
func (e *AnalyzerError) ToMap() map[string]interface{} {
	m := map[string]interface{}{
		"error_code": string(e.Code),
		"message":    e.Message,
	}
	if e.Context != nil {
		m["context"] = e.Context
	}
	if e.Cause != nil {
		m["cause"] = e.Cause.Error()
	}
	return m
}

// New creates a new AnalyzerError.
func New(code ErrorCode, message string, cause error) *AnalyzerError {
	return &AnalyzerError{
		Code:    code,
		Message: message,
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// Configuration Error constructors

// NewConfigInvalidError creates a configuration invalid error.
func NewConfigInvalidError(message string, cause error) *AnalyzerError {
	return &AnalyzerError{
		Code:    ErrCodeConfigInvalid,
		Message: message,
		Cause:   errors.Join(ErrConfigInvalid, cause),
		Context: make(map[string]interface{}),
	}
}

// NewConfigMissingError creates a configuration missing error.
func NewConfigMissingError(path string) *AnalyzerError {
	return &AnalyzerError{
		Code:    ErrCodeConfigMissing,
		Message: fmt.Sprintf("configuration file not found: %s", path),
		Cause:   ErrConfigMissing,
		Context: map[string]interface{}{
			"path": path,
		},
	}
}

// NewConfigValidationError creates a configuration validation error.
func NewConfigValidationError(field string, value interface{}, reason string) *AnalyzerError {
	return &AnalyzerError{
		Code:    ErrCodeConfigValidation,
		Message: fmt.Sprintf("validation failed for '%s': %s", field, reason),
		Cause:   ErrConfigValidation,
		Context: map[string]interface{}{
			"field":  field,
			"value":  fmt.Sprintf("%v", value),
			"reason": reason,
		},
	}
}

// Log discovery and ingestion Error constructors

// NewLogDirInvalidError creates a log directory error.
func NewLogDirInvalidError(path string) *AnalyzerError {
	return &AnalyzerError{
		Code:    ErrCodeLogDirInvalid,
		Message: fmt.Sprintf("can't find %s directory with logs", path),
		Cause:   ErrLogDirInvalid,
		Context: map[string]interface{}{
			"path": path,
		},
	}
}

// NewLogFileNotFoundError creates a log file not found error.
func NewLogFileNotFoundError(path string) *AnalyzerError {
	return &AnalyzerError{
		Code:    ErrCodeLogFileNotFound,
		Message: fmt.Sprintf("log file not found: %s", path),
		Cause:   ErrLogFileNotFound,
		Context: map[string]interface{}{
			"path": path,
		},
	}
}

// NewUnsupportedExtensionError creates an unsupported extension error.
func NewUnsupportedExtensionError(extension string) *AnalyzerError {
	return &AnalyzerError{
		Code:    ErrCodeUnsupportedExtension,
		Message: fmt.Sprintf("unsupported log file extension: %q", extension),
		Cause:   ErrUnsupportedExtension,
		Context: map[string]interface{}{
			"extension": extension,
		},
	}
}

// NewLogReadError creates a log read error.
func NewLogReadError(path string, cause error) *AnalyzerError {
	return &AnalyzerError{
		Code:    ErrCodeLogReadFailed,
		Message: fmt.Sprintf("failed to read log file: %s", path),
		Cause:   errors.Join(ErrLogReadFailed, cause),
		Context: map[string]interface{}{
			"path": path,
		},
	}
}

// Parsing and analysis Error constructors

// NewTooManyInvalidRecordsError creates an invalid-record threshold error.
func NewTooManyInvalidRecordsError(invalidPart, allowedPart float64) *AnalyzerError {
	return &AnalyzerError{
		Code: ErrCodeTooManyInvalidRecords,
		Message: fmt.Sprintf("invalid records part %.3f exceeds allowed %.3f",
			invalidPart, allowedPart),
		Cause: ErrTooManyInvalidRecords,
		Context: map[string]interface{}{
			"invalid_part": invalidPart,
			"allowed_part": allowedPart,
		},
	}
}

// Report Error constructors

// NewReportWriteError creates a report write error.
func NewReportWriteError(path string, cause error) *AnalyzerError {
	return &AnalyzerError{
		Code:    ErrCodeReportWriteFailed,
		Message: fmt.Sprintf("failed to write report: %s", path),
		Cause:   errors.Join(ErrReportWriteFailed, cause),
		Context: map[string]interface{}{
			"path": path,
		},
	}
}

// NewReportRenderError creates a report render error.
func NewReportRenderError(format string, cause error) *AnalyzerError {
	return &AnalyzerError{
		Code:    ErrCodeReportRenderFailed,
		Message: fmt.Sprintf("failed to render %s report", format),
		Cause:   errors.Join(ErrReportRenderFailed, cause),
		Context: map[string]interface{}{
			"format": format,
		},
	}
}

// NewReportDirError creates a report directory error.
func NewReportDirError(path string, cause error) *AnalyzerError {
	return &AnalyzerError{
		Code:    ErrCodeReportDirInvalid,
		Message: fmt.Sprintf("report directory unusable: %s", path),
		Cause:   errors.Join(ErrReportDirInvalid, cause),
		Context: map[string]interface{}{
			"path": path,
		},
	}
}

// GetErrorCode extracts the error code from an error.
func GetErrorCode(err error) ErrorCode {
	var analyzerErr *AnalyzerError
	if errors.As(err, &analyzerErr) {
		return analyzerErr.Code
	}
	return ErrCodeUnknown
}
