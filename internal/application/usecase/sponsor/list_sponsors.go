package sponsor

import (
	"context"
	"fmt"

	"github.com/sponsor-tracker/backend/internal/application/adapter"
	"github.com/sponsor-tracker/backend/internal/domain/entity"
)

// ListSponsorsInput represents the input for listing sponsors.
type ListSponsorsInput struct {
	ActiveOnly bool
	Tag        string
}

// ListSponsorsOutput represents the output of listing sponsors.
type ListSponsorsOutput struct {
	Sponsors []*entity.Sponsor
}

// ListSponsorsUseCase handles sponsor listing.
type ListSponsorsUseCase struct {
	sponsorRepo adapter.SponsorRepository
}

// NewListSponsorsUseCase creates a new ListSponsorsUseCase instance.
func NewListSponsorsUseCase(sponsorRepo adapter.SponsorRepository) *ListSponsorsUseCase {
	return &ListSponsorsUseCase{sponsorRepo: sponsorRepo}
}

// Execute lists the sponsors matching the filter.
func (uc *ListSponsorsUseCase) Execute(ctx context.Context, input ListSponsorsInput) (*ListSponsorsOutput, error) {
	sponsors, err := uc.sponsorRepo.List(ctx, adapter.SponsorFilter{
		ActiveOnly: input.ActiveOnly,
		Tag:        input.Tag,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list sponsors: %w", err)
	}

	return &ListSponsorsOutput{Sponsors: sponsors}, nil
}
