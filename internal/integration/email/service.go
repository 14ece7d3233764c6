// Package email queues and delivers sponsor emails.
package email

import (
	"context"
	"fmt"
	"strings"

	"github.com/sponsor-tracker/backend/internal/application/adapter"
	"github.com/sponsor-tracker/backend/internal/domain/entity"
	domainerror "github.com/sponsor-tracker/backend/internal/domain/error"
)

// Service turns sponsorship events into queued email jobs.
type Service struct {
	queue        adapter.EmailQueueRepository
	clock        adapter.Clock
	organization string
	appBaseURL   string
}

// NewService creates a new email service. organization signs every email.
func NewService(queue adapter.EmailQueueRepository, clock adapter.Clock, organization, appBaseURL string) *Service {
	return &Service{
		queue:        queue,
		clock:        clock,
		organization: organization,
		appBaseURL:   strings.TrimRight(appBaseURL, "/"),
	}
}

// QueueRenewalReminder queues a reminder that a sponsorship is about to expire.
func (s *Service) QueueRenewalReminder(ctx context.Context, input adapter.QueueSponsorEmailInput) error {
	subject := fmt.Sprintf("Your %s sponsorship renews on %s", s.organization, input.ExpirationDate)
	return s.enqueue(ctx, entity.TemplateRenewalReminder, subject, input)
}

// QueueLapsedFollowUp queues a follow-up for a sponsorship that has expired.
func (s *Service) QueueLapsedFollowUp(ctx context.Context, input adapter.QueueSponsorEmailInput) error {
	subject := fmt.Sprintf("We miss you at %s", s.organization)
	return s.enqueue(ctx, entity.TemplateLapsedFollowUp, subject, input)
}

func (s *Service) enqueue(ctx context.Context, template entity.EmailTemplateType, subject string, input adapter.QueueSponsorEmailInput) error {
	if strings.TrimSpace(input.ContactEmail) == "" {
		return domainerror.NewEmailError(
			domainerror.ErrCodeMissingRecipient,
			"cannot queue "+string(template)+" for "+input.OrganizationName,
			domainerror.ErrMissingRecipient,
		)
	}

	job := entity.NewEmailJob(
		template,
		input.ContactEmail,
		input.ContactName,
		subject,
		templateData(input, s.organization, s.appBaseURL),
		s.clock.Now(),
	)
	sponsorshipID := input.SponsorshipID
	job.SponsorshipID = &sponsorshipID

	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to queue "+string(template)+" email",
			err,
		)
	}

	return nil
}

func templateData(input adapter.QueueSponsorEmailInput, organization, appBaseURL string) map[string]interface{} {
	return map[string]interface{}{
		"organization":    organization,
		"sponsor_name":    input.OrganizationName,
		"contact_name":    input.ContactName,
		"tier_name":       input.TierName,
		"fiscal_year":     input.FiscalYear,
		"expiration_date": input.ExpirationDate,
		"days_remaining":  input.DaysRemaining,
		"total_value":     input.TotalValue,
		"renewal_url":     appBaseURL + "/sponsorships/" + input.SponsorshipID.String(),
	}
}

var _ adapter.EmailService = (*Service)(nil)
