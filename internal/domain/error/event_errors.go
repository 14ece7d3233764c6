// Package error defines domain-specific errors for the Sponsorship Tracker application.
package error

import "errors"

// Event domain errors.
var (
	// ErrEventNameRequired is returned when an event is created without a name.
	ErrEventNameRequired = errors.New("event name is required")

	// ErrInvalidEventType is returned when the event type is unknown.
	ErrInvalidEventType = errors.New("event type must be: Awards Ceremony, Speaker Series, Training, Networking, Conference or Other")

	// ErrInvalidEventTime is returned when the event time is not HH:MM.
	ErrInvalidEventTime = errors.New("event time must look like 18:30")

	// ErrInvalidMaxAttendees is returned when the attendee cap is not positive.
	ErrInvalidMaxAttendees = errors.New("max attendees must be positive")
)

// EventErrorCode defines error codes for event errors.
// Format: EVT-XXYYYY where XX is category and YYYY is specific error.
type EventErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeEventNameRequired   EventErrorCode = "EVT-010001"
	ErrCodeInvalidEventType    EventErrorCode = "EVT-010002"
	ErrCodeInvalidEventTime    EventErrorCode = "EVT-010003"
	ErrCodeInvalidMaxAttendees EventErrorCode = "EVT-010004"
)

// EventError represents an event error with code and message.
type EventError struct {
	Code    EventErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *EventError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *EventError) Unwrap() error {
	return e.Err
}

// NewEventError creates a new EventError with the given code and message.
func NewEventError(code EventErrorCode, message string, err error) *EventError {
	return &EventError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
