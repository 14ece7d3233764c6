package renewal

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/sponsor-tracker/backend/internal/application/adapter"
	"github.com/sponsor-tracker/backend/internal/domain/entity"
	domainerror "github.com/sponsor-tracker/backend/internal/domain/error"
	"github.com/sponsor-tracker/backend/internal/domain/valueobject"
)

// QueueRemindersInput represents the input for queueing renewal emails.
type QueueRemindersInput struct {
	IncludeLapsed bool // Also queue follow-ups for lapsed sponsorships
	DryRun        bool // Report what would be queued without queueing
}

// QueuedReminder describes one email queued (or planned on a dry run).
type QueuedReminder struct {
	SponsorshipID    uuid.UUID
	OrganizationName string
	ContactEmail     string
	Template         entity.EmailTemplateType
	DaysRemaining    int
}

// QueueRemindersOutput represents the result of a reminder run.
type QueueRemindersOutput struct {
	Today    time.Time
	Queued   []QueuedReminder
	Skipped  []valueobject.DataQualityWarning
	Warnings []valueobject.DataQualityWarning
}

// QueueRemindersUseCase queues renewal reminders for urgent sponsorships and,
// optionally, follow-ups for lapsed ones.
type QueueRemindersUseCase struct {
	sponsorshipRepo adapter.SponsorshipRepository
	emailQueueRepo  adapter.EmailQueueRepository
	emailService    adapter.EmailService
	clock           adapter.Clock
	reminderDays    int
}

// NewQueueRemindersUseCase creates a new QueueRemindersUseCase instance.
// reminderDays caps how far ahead of expiration a reminder may be sent; values
// outside 0..UrgentMaxDays fall back to UrgentMaxDays.
func NewQueueRemindersUseCase(
	sponsorshipRepo adapter.SponsorshipRepository,
	emailQueueRepo adapter.EmailQueueRepository,
	emailService adapter.EmailService,
	clock adapter.Clock,
	reminderDays int,
) *QueueRemindersUseCase {
	if reminderDays < 0 || reminderDays > UrgentMaxDays {
		reminderDays = UrgentMaxDays
	}
	return &QueueRemindersUseCase{
		sponsorshipRepo: sponsorshipRepo,
		emailQueueRepo:  emailQueueRepo,
		emailService:    emailService,
		clock:           clock,
		reminderDays:    reminderDays,
	}
}

// Execute classifies the latest sponsorship of every sponsor and queues the emails.
func (uc *QueueRemindersUseCase) Execute(ctx context.Context, input QueueRemindersInput) (*QueueRemindersOutput, error) {
	now := uc.clock.Now()
	today := valueobject.StartOfDay(now)

	records, err := uc.sponsorshipRepo.ListReceived(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list received sponsorships: %w", err)
	}

	pipeline := ClassifyRenewals(LatestPerSponsor(ActiveSponsorsOnly(records)), today)
	output := &QueueRemindersOutput{
		Today:    today,
		Queued:   []QueuedReminder{},
		Skipped:  []valueobject.DataQualityWarning{},
		Warnings: pipeline.Warnings,
	}

	for _, s := range pipeline.Urgent {
		days := DaysUntilExpiration(s, today)
		if s.RenewalReminderSent || days > uc.reminderDays {
			continue
		}
		if err := uc.dispatch(ctx, s, entity.TemplateRenewalReminder, days, now, input.DryRun, output); err != nil {
			return nil, err
		}
	}

	if input.IncludeLapsed {
		for _, s := range pipeline.Lapsed {
			followedUp, err := uc.hasFollowUp(ctx, s.ID)
			if err != nil {
				return nil, fmt.Errorf("failed to check follow-ups: %w", err)
			}
			if followedUp {
				continue
			}
			days := DaysUntilExpiration(s, today)
			if err := uc.dispatch(ctx, s, entity.TemplateLapsedFollowUp, days, now, input.DryRun, output); err != nil {
				return nil, err
			}
		}
	}

	slog.Info("Renewal reminders processed",
		"queued", len(output.Queued),
		"skipped", len(output.Skipped),
		"dry_run", input.DryRun,
		"include_lapsed", input.IncludeLapsed,
	)

	return output, nil
}

func (uc *QueueRemindersUseCase) dispatch(
	ctx context.Context,
	s *entity.Sponsorship,
	template entity.EmailTemplateType,
	days int,
	now time.Time,
	dryRun bool,
	output *QueueRemindersOutput,
) error {
	if !s.Sponsor.HasContactEmail() {
		output.Skipped = append(output.Skipped, valueobject.DataQualityWarning{
			RecordID: s.ID.String(),
			Field:    "contact_email",
			Reason:   valueobject.ReasonMissingContactEmail,
			Detail:   s.SponsorName(),
		})
		return nil
	}
	contactEmail, contactName := s.Sponsor.ReminderRecipient()

	reminder := QueuedReminder{
		SponsorshipID:    s.ID,
		OrganizationName: s.Sponsor.OrganizationName,
		ContactEmail:     contactEmail,
		Template:         template,
		DaysRemaining:    days,
	}
	if dryRun {
		output.Queued = append(output.Queued, reminder)
		return nil
	}

	emailInput := adapter.QueueSponsorEmailInput{
		SponsorshipID:    s.ID,
		OrganizationName: s.Sponsor.OrganizationName,
		ContactName:      contactName,
		ContactEmail:     contactEmail,
		TierName:         s.EffectiveTierName(),
		FiscalYear:       s.FiscalYear.String(),
		ExpirationDate:   valueobject.FormatDate(*s.ExpirationDate),
		DaysRemaining:    days,
		TotalValue:       s.TotalValue().StringFixed(2),
	}

	var err error
	if template == entity.TemplateLapsedFollowUp {
		err = uc.emailService.QueueLapsedFollowUp(ctx, emailInput)
	} else {
		err = uc.emailService.QueueRenewalReminder(ctx, emailInput)
	}
	if err != nil {
		return domainerror.NewRenewalError(
			domainerror.ErrCodeReminderDispatchFailed,
			"failed to queue email for "+s.ID.String(),
			fmt.Errorf("%w: %v", domainerror.ErrReminderDispatchFailed, err),
		)
	}

	if template == entity.TemplateRenewalReminder {
		s.MarkReminderSent(now)
		if err := uc.sponsorshipRepo.Update(ctx, s); err != nil {
			return fmt.Errorf("failed to mark reminder as sent: %w", err)
		}
	}

	output.Queued = append(output.Queued, reminder)
	return nil
}

func (uc *QueueRemindersUseCase) hasFollowUp(ctx context.Context, sponsorshipID uuid.UUID) (bool, error) {
	jobs, err := uc.emailQueueRepo.GetBySponsorship(ctx, sponsorshipID)
	if err != nil {
		return false, err
	}
	for _, job := range jobs {
		if job.TemplateType == entity.TemplateLapsedFollowUp && job.Status != entity.EmailStatusFailed {
			return true, nil
		}
	}
	return false, nil
}
