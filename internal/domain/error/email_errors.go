package error

import "errors"

// Sponsor email errors.
var (
	ErrEmailQueueFailed     = errors.New("failed to queue sponsor email")
	ErrEmailSendFailed      = errors.New("failed to send sponsor email")
	ErrUnknownTemplate      = errors.New("unknown email template")
	ErrTemplateRenderFailed = errors.New("failed to render email template")
	ErrEmailJobNotFound     = errors.New("email job not found")
	ErrMissingRecipient     = errors.New("sponsor has no contact email")

	// ErrPermanentEmailFailure marks a provider rejection that retrying cannot fix.
	ErrPermanentEmailFailure = errors.New("permanent email failure")
	// ErrTemporaryEmailFailure marks a provider failure worth retrying.
	ErrTemporaryEmailFailure = errors.New("temporary email failure")
)

// EmailErrorCode defines error codes for email errors.
// Format: EMAIL-XXYYYY where XX is category and YYYY is specific error.
type EmailErrorCode string

const (
	// Queue errors (01XXXX)
	ErrCodeEmailQueueFailed EmailErrorCode = "EMAIL-010001"
	ErrCodeEmailJobNotFound EmailErrorCode = "EMAIL-010002"
	ErrCodeMissingRecipient EmailErrorCode = "EMAIL-010003"

	// Delivery errors (02XXXX)
	ErrCodeEmailSendFailed       EmailErrorCode = "EMAIL-020001"
	ErrCodePermanentEmailFailure EmailErrorCode = "EMAIL-020002"
	ErrCodeTemporaryEmailFailure EmailErrorCode = "EMAIL-020003"

	// Template errors (03XXXX)
	ErrCodeUnknownTemplate      EmailErrorCode = "EMAIL-030001"
	ErrCodeTemplateRenderFailed EmailErrorCode = "EMAIL-030002"
)

// EmailError carries an email failure with its code.
type EmailError struct {
	Code    EmailErrorCode
	Message string
	Err     error
}

func (e *EmailError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *EmailError) Unwrap() error {
	return e.Err
}

// NewEmailError creates a new EmailError.
func NewEmailError(code EmailErrorCode, message string, err error) *EmailError {
	return &EmailError{Code: code, Message: message, Err: err}
}

// IsPermanentEmailFailure reports whether err should stop further delivery attempts.
func IsPermanentEmailFailure(err error) bool {
	return errors.Is(err, ErrPermanentEmailFailure) || errors.Is(err, ErrUnknownTemplate) || errors.Is(err, ErrMissingRecipient)
}
