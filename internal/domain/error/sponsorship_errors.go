// Package error defines domain-specific errors for the Sponsorship Tracker application.
package error

import "errors"

// Sponsor and sponsorship domain errors.
var (
	// ErrSponsorNotFound is returned when a sponsor is not found in the system.
	ErrSponsorNotFound = errors.New("sponsor not found")

	// ErrSponsorNameRequired is returned when a sponsor is created without an organization name.
	ErrSponsorNameRequired = errors.New("organization name is required")

	// ErrSponsorInactive is returned when a sponsorship is recorded for an archived sponsor.
	ErrSponsorInactive = errors.New("sponsor is archived")

	// ErrInvalidContactEmail is returned when a sponsor contact email cannot be parsed.
	ErrInvalidContactEmail = errors.New("invalid contact email")

	// ErrContactNameRequired is returned when a contact is created without a name.
	ErrContactNameRequired = errors.New("contact name is required")

	// ErrSponsorshipNotFound is returned when a sponsorship is not found in the system.
	ErrSponsorshipNotFound = errors.New("sponsorship not found")

	// ErrTierNotFound is returned when a sponsorship tier is not found.
	ErrTierNotFound = errors.New("sponsorship tier not found")

	// ErrTierNameRequired is returned when a tier is created without a name.
	ErrTierNameRequired = errors.New("tier name is required")

	// ErrNegativeAmount is returned when a monetary or in-kind amount is negative.
	ErrNegativeAmount = errors.New("amount must not be negative")

	// ErrInvalidSponsorshipStatus is returned when the status is not one of the known values.
	ErrInvalidSponsorshipStatus = errors.New("invalid sponsorship status")

	// ErrInvalidSponsorshipType is returned when the type is not Monetary, In-Kind or Both.
	ErrInvalidSponsorshipType = errors.New("invalid sponsorship type")

	// ErrScotMendeWithoutFund is returned when a Scot Mende amount is given but the fund flag is off.
	ErrScotMendeWithoutFund = errors.New("scot mende amount requires the scot mende fund flag")
)

// SponsorshipErrorCode defines error codes for sponsor and sponsorship errors.
// Format: SPN-XXYYYY where XX is category and YYYY is specific error.
type SponsorshipErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeSponsorNameRequired      SponsorshipErrorCode = "SPN-010001"
	ErrCodeNegativeAmount           SponsorshipErrorCode = "SPN-010002"
	ErrCodeInvalidSponsorshipStatus SponsorshipErrorCode = "SPN-010003"
	ErrCodeInvalidSponsorshipType   SponsorshipErrorCode = "SPN-010004"
	ErrCodeScotMendeWithoutFund     SponsorshipErrorCode = "SPN-010005"
	ErrCodeTierNameRequired         SponsorshipErrorCode = "SPN-010006"
	ErrCodeInvalidSponsorshipDate   SponsorshipErrorCode = "SPN-010007"
	ErrCodeMissingSponsorshipFields SponsorshipErrorCode = "SPN-010008"
	ErrCodeInvalidContactEmail      SponsorshipErrorCode = "SPN-010009"
	ErrCodeContactNameRequired      SponsorshipErrorCode = "SPN-010010"

	// Lookup errors (02XXXX)
	ErrCodeSponsorNotFound     SponsorshipErrorCode = "SPN-020001"
	ErrCodeSponsorshipNotFound SponsorshipErrorCode = "SPN-020002"
	ErrCodeTierNotFound        SponsorshipErrorCode = "SPN-020003"

	// State errors (03XXXX)
	ErrCodeSponsorInactive SponsorshipErrorCode = "SPN-030001"
)

// SponsorshipError represents a sponsor or sponsorship error with code and message.
type SponsorshipError struct {
	Code    SponsorshipErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SponsorshipError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SponsorshipError) Unwrap() error {
	return e.Err
}

// NewSponsorshipError creates a new SponsorshipError with the given code and message.
func NewSponsorshipError(code SponsorshipErrorCode, message string, err error) *SponsorshipError {
	return &SponsorshipError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
