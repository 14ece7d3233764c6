package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/sponsor-tracker/backend/internal/domain/entity"
	"github.com/sponsor-tracker/backend/internal/domain/valueobject"
)

// SponsorshipFilter narrows a sponsorship listing. Zero values match everything.
type SponsorshipFilter struct {
	FiscalYear *valueobject.FiscalYear
	Status     *entity.SponsorshipStatus
	SponsorID  *uuid.UUID
}

// SponsorshipRepository defines the interface for sponsorship persistence operations.
type SponsorshipRepository interface {
	// Create creates a new sponsorship in the database.
	Create(ctx context.Context, sponsorship *entity.Sponsorship) error

	// FindByID retrieves a sponsorship with its sponsor loaded.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Sponsorship, error)

	// List retrieves sponsorships with their sponsors loaded, oldest first.
	List(ctx context.Context, filter SponsorshipFilter) ([]*entity.Sponsorship, error)

	// ListReceived retrieves every Received sponsorship with its sponsor loaded,
	// including those missing an expiration date.
	ListReceived(ctx context.Context) ([]*entity.Sponsorship, error)

	// Update saves changes to an existing sponsorship.
	Update(ctx context.Context, sponsorship *entity.Sponsorship) error
}
