package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/sponsor-tracker/backend/internal/domain/entity"
)

// TierRepository defines the interface for sponsorship tier persistence operations.
type TierRepository interface {
	Create(ctx context.Context, tier *entity.SponsorshipTier) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.SponsorshipTier, error)

	// List retrieves tiers ordered by level.
	List(ctx context.Context, activeOnly bool) ([]*entity.SponsorshipTier, error)
}
