package sponsor

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/sponsor-tracker/backend/internal/application/adapter"
	"github.com/sponsor-tracker/backend/internal/domain/entity"
)

// ArchiveSponsorInput represents the input for archiving a sponsor.
type ArchiveSponsorInput struct {
	SponsorID uuid.UUID
}

// ArchiveSponsorOutput represents the archived sponsor.
type ArchiveSponsorOutput struct {
	Sponsor *entity.Sponsor
}

// ArchiveSponsorUseCase marks a sponsor as inactive. Archiving is idempotent.
type ArchiveSponsorUseCase struct {
	sponsorRepo adapter.SponsorRepository
	clock       adapter.Clock
}

// NewArchiveSponsorUseCase creates a new ArchiveSponsorUseCase instance.
func NewArchiveSponsorUseCase(sponsorRepo adapter.SponsorRepository, clock adapter.Clock) *ArchiveSponsorUseCase {
	return &ArchiveSponsorUseCase{
		sponsorRepo: sponsorRepo,
		clock:       clock,
	}
}

// Execute archives the sponsor.
func (uc *ArchiveSponsorUseCase) Execute(ctx context.Context, input ArchiveSponsorInput) (*ArchiveSponsorOutput, error) {
	sponsor, err := uc.sponsorRepo.FindByID(ctx, input.SponsorID)
	if err != nil {
		return nil, lookupError(err)
	}

	if !sponsor.IsActive {
		return &ArchiveSponsorOutput{Sponsor: sponsor}, nil
	}

	sponsor.Archive(uc.clock.Now().UTC())
	if err := uc.sponsorRepo.Update(ctx, sponsor); err != nil {
		return nil, fmt.Errorf("failed to archive sponsor: %w", err)
	}

	return &ArchiveSponsorOutput{Sponsor: sponsor}, nil
}
