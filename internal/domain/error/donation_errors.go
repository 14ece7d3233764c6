// Package error defines domain-specific errors for the Sponsorship Tracker application.
package error

import "errors"

// Donation domain errors.
var (
	// ErrDonorNameRequired is returned when a donation has no donor name.
	ErrDonorNameRequired = errors.New("donor name is required")

	// ErrInvalidDonationAmount is returned when the donation amount is zero or negative.
	ErrInvalidDonationAmount = errors.New("donation amount must be greater than zero")

	// ErrInvalidRecurringFrequency is returned when the frequency does not match the recurring flag.
	ErrInvalidRecurringFrequency = errors.New("invalid recurring frequency")
)

// DonationErrorCode defines error codes for donation errors.
// Format: DON-XXYYYY where XX is category and YYYY is specific error.
type DonationErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeDonorNameRequired         DonationErrorCode = "DON-010001"
	ErrCodeInvalidDonationAmount     DonationErrorCode = "DON-010002"
	ErrCodeInvalidRecurringFrequency DonationErrorCode = "DON-010003"
	ErrCodeInvalidDonationDate       DonationErrorCode = "DON-010004"
	ErrCodeMissingDonationFields     DonationErrorCode = "DON-010005"
)

// DonationError represents a donation error with code and message.
type DonationError struct {
	Code    DonationErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *DonationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *DonationError) Unwrap() error {
	return e.Err
}

// NewDonationError creates a new DonationError with the given code and message.
func NewDonationError(code DonationErrorCode, message string, err error) *DonationError {
	return &DonationError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
