package donation

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sponsor-tracker/backend/internal/application/adapter"
	"github.com/sponsor-tracker/backend/internal/domain/entity"
	"github.com/sponsor-tracker/backend/internal/domain/valueobject"
)

// ListDonationsInput represents the input for listing donations.
type ListDonationsInput struct {
	FiscalYear *valueobject.FiscalYear // Optional, defaults to the current fiscal year
}

// ListDonationsOutput represents the donations of a fiscal year.
type ListDonationsOutput struct {
	FiscalYear valueobject.FiscalYear
	Donations  []*entity.Donation
	Total      decimal.Decimal
}

// ListDonationsUseCase lists the donations dated inside a fiscal year.
type ListDonationsUseCase struct {
	donationRepo adapter.DonationRepository
	clock        adapter.Clock
}

// NewListDonationsUseCase creates a new ListDonationsUseCase instance.
func NewListDonationsUseCase(donationRepo adapter.DonationRepository, clock adapter.Clock) *ListDonationsUseCase {
	return &ListDonationsUseCase{
		donationRepo: donationRepo,
		clock:        clock,
	}
}

// Execute lists the donations.
func (uc *ListDonationsUseCase) Execute(ctx context.Context, input ListDonationsInput) (*ListDonationsOutput, error) {
	fy := valueobject.CurrentFiscalYear(uc.clock.Now())
	if input.FiscalYear != nil {
		fy = *input.FiscalYear
	}

	start, end := fy.DateRange(time.UTC)
	donations, err := uc.donationRepo.ListBetween(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list donations: %w", err)
	}

	total := decimal.Zero
	for _, d := range donations {
		total = total.Add(d.Amount)
	}

	return &ListDonationsOutput{
		FiscalYear: fy,
		Donations:  donations,
		Total:      total,
	}, nil
}
