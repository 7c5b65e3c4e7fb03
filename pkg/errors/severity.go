// Package errors provides severity-aware error types.
package errors

import "fmt"

// Severity indicates error impact level.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
	SeverityFatal
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// EstimateError is a structured error with context.
type EstimateError struct {
	Code        string   `json:"code"`
	Message     string   `json:"message"`
	Severity    Severity `json:"severity"`
	Statement   string   `json:"statement,omitempty"`
	Recoverable bool     `json:"recoverable"`
}

func (e *EstimateError) Error() string {
	if e.Statement != "" {
		return fmt.Sprintf("[%s] %s: %s (statement: %s)", e.Severity, e.Code, e.Message, e.Statement)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Severity, e.Code, e.Message)
}

// Error codes
const (
	ErrCodeNoMatch       = "NO_MATCH"
	ErrCodeRateNotFound  = "RATE_NOT_FOUND"
	ErrCodeUnknownSource = "UNKNOWN_SOURCE"
	ErrCodeParseFailed   = "PARSE_FAILED"
)

// NewNoMatchError reports a report with no recognized interventions.
// Informational: an empty report is a valid outcome, not a failure.
func NewNoMatchError() *EstimateError {
	return &EstimateError{
		Code:        ErrCodeNoMatch,
		Message:     "no intervention keywords recognized in input text",
		Severity:    SeverityInfo,
		Recoverable: true,
	}
}

// NewRateNotFoundError reports a bill-of-materials code absent from the
// active rate catalog.
func NewRateNotFoundError(code, statement string) *EstimateError {
	return &EstimateError{
		Code:        ErrCodeRateNotFound,
		Message:     fmt.Sprintf("no rate for material code: %s", code),
		Severity:    SeverityWarning,
		Statement:   statement,
		Recoverable: true,
	}
}

// NewUnknownSourceError reports an unrecognized rate-source selector.
func NewUnknownSourceError(source string) *EstimateError {
	return &EstimateError{
		Code:        ErrCodeUnknownSource,
		Message:     fmt.Sprintf("unknown rate source: %s", source),
		Severity:    SeverityError,
		Recoverable: false,
	}
}
