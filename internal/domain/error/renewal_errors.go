// Package error defines domain-specific errors for the Sponsorship Tracker application.
package error

import "errors"

// Renewal domain errors.
var (
	// ErrTooManyRecords is returned when a classify request exceeds the record limit.
	ErrTooManyRecords = errors.New("too many records")

	// ErrReminderDispatchFailed is returned when queuing reminder emails fails.
	ErrReminderDispatchFailed = errors.New("failed to dispatch renewal reminders")
)

// RenewalErrorCode defines error codes for renewal errors.
// Format: RNW-XXYYYY where XX is category and YYYY is specific error.
type RenewalErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeTooManyRecords       RenewalErrorCode = "RNW-010001"
	ErrCodeInvalidRenewalParams RenewalErrorCode = "RNW-010002"

	// Dispatch errors (02XXXX)
	ErrCodeReminderDispatchFailed RenewalErrorCode = "RNW-020001"
	ErrCodeRateLimited            RenewalErrorCode = "RNW-020002"
)

// RenewalError represents a renewal error with code and message.
type RenewalError struct {
	Code    RenewalErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *RenewalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *RenewalError) Unwrap() error {
	return e.Err
}

// NewRenewalError creates a new RenewalError with the given code and message.
func NewRenewalError(code RenewalErrorCode, message string, err error) *RenewalError {
	return &RenewalError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
