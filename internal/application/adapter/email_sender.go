// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
)

// SendEmailInput represents the input for sending an email.
type SendEmailInput struct {
	To      string
	Name    string
	Subject string
	HTML    string
	Text    string
}

// SendEmailResult represents the result of sending an email.
type SendEmailResult struct {
	ResendID string
}

// EmailSender defines the interface for sending emails via an external provider.
type EmailSender interface {
	// Send sends an email via the email provider.
	Send(ctx context.Context, input SendEmailInput) (*SendEmailResult, error)
}

// EmailService defines the interface for queueing sponsor emails.
type EmailService interface {
	// QueueRenewalReminder queues a reminder that a sponsorship is about to expire.
	QueueRenewalReminder(ctx context.Context, input QueueSponsorEmailInput) error

	// QueueLapsedFollowUp queues a follow-up for a sponsorship that has expired.
	QueueLapsedFollowUp(ctx context.Context, input QueueSponsorEmailInput) error
}

// QueueSponsorEmailInput represents the input for queueing a sponsorship email.
type QueueSponsorEmailInput struct {
	SponsorshipID    uuid.UUID
	OrganizationName string
	ContactName      string
	ContactEmail     string
	TierName         string
	FiscalYear       string
	ExpirationDate   string
	DaysRemaining    int
	TotalValue       string
}
