// Package error defines domain-specific errors for the Sponsorship Tracker application.
package error

import "errors"

// Fiscal year settings domain errors.
var (
	// ErrFiscalYearSettingNotFound is returned when no setting row exists for a fiscal year.
	ErrFiscalYearSettingNotFound = errors.New("fiscal year setting not found")

	// ErrInvalidGoalAmount is returned when a goal amount is negative.
	ErrInvalidGoalAmount = errors.New("goal amount must not be negative")
)

// FiscalYearErrorCode defines error codes for fiscal year settings errors.
// Format: FYS-XXYYYY where XX is category and YYYY is specific error.
type FiscalYearErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidGoalAmount FiscalYearErrorCode = "FYS-010001"
	ErrCodeFiscalYearInvalid FiscalYearErrorCode = "FYS-010002"

	// Lookup errors (02XXXX)
	ErrCodeFiscalYearSettingNotFound FiscalYearErrorCode = "FYS-020001"
)

// FiscalYearError represents a fiscal year settings error with code and message.
type FiscalYearError struct {
	Code    FiscalYearErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *FiscalYearError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *FiscalYearError) Unwrap() error {
	return e.Err
}

// NewFiscalYearError creates a new FiscalYearError with the given code and message.
func NewFiscalYearError(code FiscalYearErrorCode, message string, err error) *FiscalYearError {
	return &FiscalYearError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
