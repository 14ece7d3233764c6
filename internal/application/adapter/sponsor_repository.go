package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/sponsor-tracker/backend/internal/domain/entity"
)

// SponsorFilter narrows a sponsor listing.
type SponsorFilter struct {
	ActiveOnly bool
	Tag        string // Empty means any tag
}

// SponsorRepository defines the interface for sponsor persistence operations.
type SponsorRepository interface {
	// Create creates a new sponsor in the database.
	Create(ctx context.Context, sponsor *entity.Sponsor) error

	// FindByID retrieves a sponsor by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Sponsor, error)

	// FindByIDs retrieves the sponsors with the given IDs, keyed by ID.
	FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*entity.Sponsor, error)

	// List retrieves sponsors ordered by organization name.
	List(ctx context.Context, filter SponsorFilter) ([]*entity.Sponsor, error)

	// Update saves changes to an existing sponsor.
	Update(ctx context.Context, sponsor *entity.Sponsor) error
}
