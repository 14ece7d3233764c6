package sponsorship

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/sponsor-tracker/backend/internal/application/adapter"
	"github.com/sponsor-tracker/backend/internal/application/usecase/dashboard"
	"github.com/sponsor-tracker/backend/internal/domain/entity"
)

// UpdateStatusInput represents the input for changing a sponsorship status.
type UpdateStatusInput struct {
	SponsorshipID uuid.UUID
	Status        entity.SponsorshipStatus
}

// UpdateStatusOutput represents the updated sponsorship.
type UpdateStatusOutput struct {
	Sponsorship *entity.Sponsorship
}

// UpdateStatusUseCase changes the status of a sponsorship.
type UpdateStatusUseCase struct {
	sponsorshipRepo adapter.SponsorshipRepository
	cache           adapter.SummaryCache
	clock           adapter.Clock
}

// NewUpdateStatusUseCase creates a new UpdateStatusUseCase instance.
func NewUpdateStatusUseCase(sponsorshipRepo adapter.SponsorshipRepository, cache adapter.SummaryCache, clock adapter.Clock) *UpdateStatusUseCase {
	return &UpdateStatusUseCase{
		sponsorshipRepo: sponsorshipRepo,
		cache:           cache,
		clock:           clock,
	}
}

// Execute updates the status. Payment and expiration dates are left untouched.
func (uc *UpdateStatusUseCase) Execute(ctx context.Context, input UpdateStatusInput) (*UpdateStatusOutput, error) {
	if !input.Status.IsValid() {
		return nil, invalidStatusError()
	}

	s, err := uc.sponsorshipRepo.FindByID(ctx, input.SponsorshipID)
	if err != nil {
		return nil, notFoundError(err)
	}

	if s.Status == input.Status {
		return &UpdateStatusOutput{Sponsorship: s}, nil
	}

	s.SetStatus(input.Status, uc.clock.Now().UTC())
	if err := uc.sponsorshipRepo.Update(ctx, s); err != nil {
		return nil, fmt.Errorf("failed to update sponsorship status: %w", err)
	}

	dashboard.InvalidateSummaries(ctx, uc.cache, s.FiscalYear)

	return &UpdateStatusOutput{Sponsorship: s}, nil
}
