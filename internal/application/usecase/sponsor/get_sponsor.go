package sponsor

import (
	"context"

	"github.com/google/uuid"

	"github.com/sponsor-tracker/backend/internal/application/adapter"
	"github.com/sponsor-tracker/backend/internal/domain/entity"
)

// GetSponsorInput represents the input for fetching a sponsor.
type GetSponsorInput struct {
	SponsorID uuid.UUID
}

// GetSponsorOutput represents a sponsor and its sponsorship history.
type GetSponsorOutput struct {
	Sponsor      *entity.Sponsor
	Sponsorships []*entity.Sponsorship
}

// GetSponsorUseCase loads one sponsor with its sponsorships.
type GetSponsorUseCase struct {
	sponsorRepo     adapter.SponsorRepository
	sponsorshipRepo adapter.SponsorshipRepository
}

// NewGetSponsorUseCase creates a new GetSponsorUseCase instance.
func NewGetSponsorUseCase(sponsorRepo adapter.SponsorRepository, sponsorshipRepo adapter.SponsorshipRepository) *GetSponsorUseCase {
	return &GetSponsorUseCase{
		sponsorRepo:     sponsorRepo,
		sponsorshipRepo: sponsorshipRepo,
	}
}

// Execute loads the sponsor.
func (uc *GetSponsorUseCase) Execute(ctx context.Context, input GetSponsorInput) (*GetSponsorOutput, error) {
	sponsor, err := uc.sponsorRepo.FindByID(ctx, input.SponsorID)
	if err != nil {
		return nil, lookupError(err)
	}

	sponsorships, err := uc.sponsorshipRepo.List(ctx, adapter.SponsorshipFilter{SponsorID: &sponsor.ID})
	if err != nil {
		return nil, err
	}

	return &GetSponsorOutput{
		Sponsor:      sponsor,
		Sponsorships: sponsorships,
	}, nil
}
