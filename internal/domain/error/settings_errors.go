// Package error defines domain-specific errors for the Sponsorship Tracker application.
package error

import "errors"

// Tag and email template domain errors.
var (
	// ErrTagNameRequired is returned when a tag is created without a name.
	ErrTagNameRequired = errors.New("tag name is required")

	// ErrInvalidTagColor is returned when a tag color is not a #RRGGBB hex value.
	ErrInvalidTagColor = errors.New("tag color must look like #1A2B3C")

	// ErrTagAlreadyExists is returned when a tag name is taken.
	ErrTagAlreadyExists = errors.New("tag already exists")

	// ErrTagNotFound is returned when a tag lookup by name finds nothing.
	ErrTagNotFound = errors.New("tag not found")

	// ErrInvalidTemplateCategory is returned when an email template category is unknown.
	ErrInvalidTemplateCategory = errors.New("category must be: Welcome, Payment Confirmation, Renewal Reminder, Lapsed Follow-up or Thank You")

	// ErrTemplateFieldsRequired is returned when a template lacks a name, subject or body.
	ErrTemplateFieldsRequired = errors.New("template name, subject line and body are required")
)

// SettingsErrorCode defines error codes for tag and email template errors.
// Format: SET-XXYYYY where XX is category and YYYY is specific error.
type SettingsErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeTagNameRequired         SettingsErrorCode = "SET-010001"
	ErrCodeInvalidTagColor         SettingsErrorCode = "SET-010002"
	ErrCodeInvalidTemplateCategory SettingsErrorCode = "SET-010003"
	ErrCodeTemplateFieldsRequired  SettingsErrorCode = "SET-010004"

	// Conflict errors (03XXXX)
	ErrCodeTagAlreadyExists SettingsErrorCode = "SET-030001"
)

// SettingsError represents a tag or email template error with code and message.
type SettingsError struct {
	Code    SettingsErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SettingsError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SettingsError) Unwrap() error {
	return e.Err
}

// NewSettingsError creates a new SettingsError with the given code and message.
func NewSettingsError(code SettingsErrorCode, message string, err error) *SettingsError {
	return &SettingsError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
