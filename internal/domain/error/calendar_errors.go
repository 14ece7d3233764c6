// Package error defines domain-specific errors for the Sponsorship Tracker application.
package error

import (
	"errors"
	"fmt"
)

// Calendar domain errors.
var (
	// ErrInvalidDate is returned when a date is malformed or not a real calendar date.
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidFiscalYear is returned when a fiscal year identifier cannot be parsed
	// or its years are not consecutive.
	ErrInvalidFiscalYear = errors.New("invalid fiscal year")
)

// CalendarErrorCode defines error codes for calendar errors.
// Format: CAL-XXYYYY where XX is category and YYYY is specific error.
type CalendarErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidDate        CalendarErrorCode = "CAL-010001"
	ErrCodeInvalidFiscalYear  CalendarErrorCode = "CAL-010002"
	ErrCodeMissingPaymentDate CalendarErrorCode = "CAL-010003"
)

// InvalidDateError is returned by every date function that receives a malformed or
// out-of-range date. It always unwraps to ErrInvalidDate or ErrInvalidFiscalYear.
type InvalidDateError struct {
	Code    CalendarErrorCode
	Input   string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *InvalidDateError) Error() string {
	msg := e.Message
	if e.Input != "" {
		msg = fmt.Sprintf("%s: %q", e.Message, e.Input)
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *InvalidDateError) Unwrap() error {
	return e.Err
}

// NewInvalidDateError creates an InvalidDateError for the given raw input.
func NewInvalidDateError(input, message string) *InvalidDateError {
	return &InvalidDateError{
		Code:    ErrCodeInvalidDate,
		Input:   input,
		Message: message,
		Err:     ErrInvalidDate,
	}
}

// NewInvalidFiscalYearError creates an InvalidDateError for a bad fiscal year identifier.
func NewInvalidFiscalYearError(input, message string) *InvalidDateError {
	return &InvalidDateError{
		Code:    ErrCodeInvalidFiscalYear,
		Input:   input,
		Message: message,
		Err:     ErrInvalidFiscalYear,
	}
}
