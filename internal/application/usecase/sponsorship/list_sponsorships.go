package sponsorship

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/sponsor-tracker/backend/internal/application/adapter"
	"github.com/sponsor-tracker/backend/internal/domain/entity"
	"github.com/sponsor-tracker/backend/internal/domain/valueobject"
)

// ListSponsorshipsInput represents the input for listing sponsorships.
type ListSponsorshipsInput struct {
	FiscalYear *valueobject.FiscalYear
	Status     *entity.SponsorshipStatus
	SponsorID  *uuid.UUID
}

// ListSponsorshipsOutput represents the output of listing sponsorships.
type ListSponsorshipsOutput struct {
	Sponsorships []*entity.Sponsorship
}

// ListSponsorshipsUseCase handles sponsorship listing.
type ListSponsorshipsUseCase struct {
	sponsorshipRepo adapter.SponsorshipRepository
}

// NewListSponsorshipsUseCase creates a new ListSponsorshipsUseCase instance.
func NewListSponsorshipsUseCase(sponsorshipRepo adapter.SponsorshipRepository) *ListSponsorshipsUseCase {
	return &ListSponsorshipsUseCase{sponsorshipRepo: sponsorshipRepo}
}

// Execute lists sponsorships matching the filter.
func (uc *ListSponsorshipsUseCase) Execute(ctx context.Context, input ListSponsorshipsInput) (*ListSponsorshipsOutput, error) {
	if input.Status != nil && !input.Status.IsValid() {
		return nil, invalidStatusError()
	}

	sponsorships, err := uc.sponsorshipRepo.List(ctx, adapter.SponsorshipFilter{
		FiscalYear: input.FiscalYear,
		Status:     input.Status,
		SponsorID:  input.SponsorID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list sponsorships: %w", err)
	}

	return &ListSponsorshipsOutput{Sponsorships: sponsorships}, nil
}
