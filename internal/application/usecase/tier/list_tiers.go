package tier

import (
	"context"
	"fmt"

	"github.com/sponsor-tracker/backend/internal/application/adapter"
	"github.com/sponsor-tracker/backend/internal/domain/entity"
)

// ListTiersInput represents the input for listing tiers.
type ListTiersInput struct {
	ActiveOnly bool
}

// ListTiersOutput represents the tiers ordered by level.
type ListTiersOutput struct {
	Tiers []*entity.SponsorshipTier
}

// ListTiersUseCase handles tier listing.
type ListTiersUseCase struct {
	tierRepo adapter.TierRepository
}

// NewListTiersUseCase creates a new ListTiersUseCase instance.
func NewListTiersUseCase(tierRepo adapter.TierRepository) *ListTiersUseCase {
	return &ListTiersUseCase{tierRepo: tierRepo}
}

// Execute lists the tiers.
func (uc *ListTiersUseCase) Execute(ctx context.Context, input ListTiersInput) (*ListTiersOutput, error) {
	tiers, err := uc.tierRepo.List(ctx, input.ActiveOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list tiers: %w", err)
	}
	return &ListTiersOutput{Tiers: tiers}, nil
}
