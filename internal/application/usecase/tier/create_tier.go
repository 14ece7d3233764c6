// Package tier contains sponsorship tier use cases.
package tier

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/sponsor-tracker/backend/internal/application/adapter"
	"github.com/sponsor-tracker/backend/internal/domain/entity"
	domainerror "github.com/sponsor-tracker/backend/internal/domain/error"
)

// CreateTierInput represents the input for tier creation.
type CreateTierInput struct {
	TierName        string
	TierLevel       int
	SuggestedAmount decimal.Decimal
}

// CreateTierOutput represents the output of tier creation.
type CreateTierOutput struct {
	Tier *entity.SponsorshipTier
}

// CreateTierUseCase handles tier creation logic.
type CreateTierUseCase struct {
	tierRepo adapter.TierRepository
	clock    adapter.Clock
}

// NewCreateTierUseCase creates a new CreateTierUseCase instance.
func NewCreateTierUseCase(tierRepo adapter.TierRepository, clock adapter.Clock) *CreateTierUseCase {
	return &CreateTierUseCase{
		tierRepo: tierRepo,
		clock:    clock,
	}
}

// Execute performs the tier creation.
func (uc *CreateTierUseCase) Execute(ctx context.Context, input CreateTierInput) (*CreateTierOutput, error) {
	name := strings.TrimSpace(input.TierName)
	if name == "" {
		return nil, domainerror.NewSponsorshipError(
			domainerror.ErrCodeTierNameRequired,
			"tier name is required",
			domainerror.ErrTierNameRequired,
		)
	}
	if input.SuggestedAmount.IsNegative() {
		return nil, domainerror.NewSponsorshipError(
			domainerror.ErrCodeNegativeAmount,
			"suggested amount must not be negative",
			domainerror.ErrNegativeAmount,
		)
	}

	tier := entity.NewSponsorshipTier(name, input.TierLevel, input.SuggestedAmount, uc.clock.Now().UTC())
	if err := uc.tierRepo.Create(ctx, tier); err != nil {
		return nil, fmt.Errorf("failed to create tier: %w", err)
	}

	return &CreateTierOutput{Tier: tier}, nil
}
