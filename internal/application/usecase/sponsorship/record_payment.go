package sponsorship

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sponsor-tracker/backend/internal/application/adapter"
	"github.com/sponsor-tracker/backend/internal/application/usecase/dashboard"
	"github.com/sponsor-tracker/backend/internal/domain/entity"
)

// RecordPaymentInput represents the input for recording a payment.
type RecordPaymentInput struct {
	SponsorshipID uuid.UUID
	PaymentDate   time.Time
}

// RecordPaymentOutput represents the paid sponsorship.
type RecordPaymentOutput struct {
	Sponsorship *entity.Sponsorship
}

// RecordPaymentUseCase marks a sponsorship as received and sets its renewal date.
type RecordPaymentUseCase struct {
	sponsorshipRepo adapter.SponsorshipRepository
	cache           adapter.SummaryCache
	clock           adapter.Clock
}

// NewRecordPaymentUseCase creates a new RecordPaymentUseCase instance.
func NewRecordPaymentUseCase(sponsorshipRepo adapter.SponsorshipRepository, cache adapter.SummaryCache, clock adapter.Clock) *RecordPaymentUseCase {
	return &RecordPaymentUseCase{
		sponsorshipRepo: sponsorshipRepo,
		cache:           cache,
		clock:           clock,
	}
}

// Execute records the payment.
func (uc *RecordPaymentUseCase) Execute(ctx context.Context, input RecordPaymentInput) (*RecordPaymentOutput, error) {
	s, err := uc.sponsorshipRepo.FindByID(ctx, input.SponsorshipID)
	if err != nil {
		return nil, notFoundError(err)
	}

	if err := s.RecordPayment(input.PaymentDate, uc.clock.Now().UTC()); err != nil {
		return nil, err
	}

	if err := uc.sponsorshipRepo.Update(ctx, s); err != nil {
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}

	dashboard.InvalidateSummaries(ctx, uc.cache, s.FiscalYear)

	return &RecordPaymentOutput{Sponsorship: s}, nil
}
