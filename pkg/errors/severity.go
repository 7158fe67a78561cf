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
	Field       string   `json:"field,omitempty"`
	Recoverable bool     `json:"recoverable"`
}

func (e *EstimateError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("[%s] %s: %s (field: %s)", e.Severity, e.Code, e.Message, e.Field)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Severity, e.Code, e.Message)
}

// Error codes
const (
	ErrCodeInvalidInput      = "INVALID_INPUT"
	ErrCodeRatesLoadFailed   = "RATES_LOAD_FAILED"
	ErrCodeDuplicateMaterial = "DUPLICATE_MATERIAL"
	ErrCodeNegativeRate      = "NEGATIVE_RATE"
	ErrCodeEmptyRateTable    = "EMPTY_RATE_TABLE"
)

// NewInvalidInputError creates an error for rejected estimator inputs.
func NewInvalidInputError(field, message string) *EstimateError {
	return &EstimateError{
		Code:        ErrCodeInvalidInput,
		Message:     message,
		Severity:    SeverityError,
		Field:       field,
		Recoverable: false,
	}
}

// NewRatesLoadError creates an error for a rate table that failed to load.
func NewRatesLoadError(message string) *EstimateError {
	return &EstimateError{
		Code:        ErrCodeRatesLoadFailed,
		Message:     message,
		Severity:    SeverityFatal,
		Recoverable: false,
	}
}

// NewDuplicateMaterialError creates an error for a repeated material id.
func NewDuplicateMaterialError(id string) *EstimateError {
	return &EstimateError{
		Code:        ErrCodeDuplicateMaterial,
		Message:     fmt.Sprintf("material declared more than once: %s", id),
		Severity:    SeverityFatal,
		Field:       id,
		Recoverable: false,
	}
}

// IsInvalidInput reports whether err is an input validation failure.
func IsInvalidInput(err error) bool {
	if ee, ok := err.(*EstimateError); ok {
		return ee.Code == ErrCodeInvalidInput
	}
	return false
}
