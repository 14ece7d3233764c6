package renewal

import (
	"context"
	"fmt"
	"time"

	"github.com/sponsor-tracker/backend/internal/application/adapter"
	"github.com/sponsor-tracker/backend/internal/domain/entity"
	"github.com/sponsor-tracker/backend/internal/domain/valueobject"
)

// GetPipelineInput represents the input for building the renewal pipeline.
type GetPipelineInput struct {
	LatestOnly bool       // Keep only the latest sponsorship per sponsor
	Today      *time.Time // Optional, defaults to the clock
}

// GetPipelineOutput represents the renewal pipeline as of Today.
type GetPipelineOutput struct {
	Today    time.Time
	Pipeline *Pipeline
}

// GetPipelineUseCase loads Received sponsorships and classifies them.
type GetPipelineUseCase struct {
	sponsorshipRepo adapter.SponsorshipRepository
	clock           adapter.Clock
}

// NewGetPipelineUseCase creates a new GetPipelineUseCase instance.
func NewGetPipelineUseCase(sponsorshipRepo adapter.SponsorshipRepository, clock adapter.Clock) *GetPipelineUseCase {
	return &GetPipelineUseCase{
		sponsorshipRepo: sponsorshipRepo,
		clock:           clock,
	}
}

// Execute builds the pipeline.
func (uc *GetPipelineUseCase) Execute(ctx context.Context, input GetPipelineInput) (*GetPipelineOutput, error) {
	today := uc.clock.Now()
	if input.Today != nil {
		today = *input.Today
	}
	today = valueobject.StartOfDay(today)

	records, err := uc.sponsorshipRepo.ListReceived(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list received sponsorships: %w", err)
	}
	records = ActiveSponsorsOnly(records)

	if input.LatestOnly {
		records = LatestPerSponsor(records)
	}

	return &GetPipelineOutput{
		Today:    today,
		Pipeline: ClassifyRenewals(records, today),
	}, nil
}

// DaysUntilExpiration returns the whole days from today to the record's expiration,
// or 0 when it has none.
func DaysUntilExpiration(r *entity.Sponsorship, today time.Time) int {
	if r.ExpirationDate == nil {
		return 0
	}
	return valueobject.DaysBetween(today, *r.ExpirationDate)
}
