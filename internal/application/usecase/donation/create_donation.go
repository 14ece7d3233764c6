// Package donation contains donation-related use cases.
package donation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sponsor-tracker/backend/internal/application/adapter"
	"github.com/sponsor-tracker/backend/internal/application/usecase/dashboard"
	"github.com/sponsor-tracker/backend/internal/domain/entity"
	domainerror "github.com/sponsor-tracker/backend/internal/domain/error"
	"github.com/sponsor-tracker/backend/internal/domain/valueobject"
)

// CreateDonationInput represents the input for recording a donation.
type CreateDonationInput struct {
	DonorName          string
	DonorEmail         string
	Amount             decimal.Decimal
	DonationDate       time.Time
	IsAnonymous        bool
	IsRecurring        bool
	RecurringFrequency *entity.RecurringFrequency
	Purpose            string
	Notes              string
}

// CreateDonationOutput represents the recorded donation.
type CreateDonationOutput struct {
	Donation *entity.Donation
}

// CreateDonationUseCase handles donation recording.
type CreateDonationUseCase struct {
	donationRepo adapter.DonationRepository
	cache        adapter.SummaryCache
	clock        adapter.Clock
}

// NewCreateDonationUseCase creates a new CreateDonationUseCase instance.
func NewCreateDonationUseCase(donationRepo adapter.DonationRepository, cache adapter.SummaryCache, clock adapter.Clock) *CreateDonationUseCase {
	return &CreateDonationUseCase{
		donationRepo: donationRepo,
		cache:        cache,
		clock:        clock,
	}
}

// Execute validates and records the donation.
func (uc *CreateDonationUseCase) Execute(ctx context.Context, input CreateDonationInput) (*CreateDonationOutput, error) {
	if err := validateDonation(input); err != nil {
		return nil, err
	}

	d := entity.NewDonation(strings.TrimSpace(input.DonorName), input.Amount, valueobject.StartOfDay(input.DonationDate), uc.clock.Now().UTC())
	d.DonorEmail = strings.ToLower(strings.TrimSpace(input.DonorEmail))
	d.IsAnonymous = input.IsAnonymous
	d.IsRecurring = input.IsRecurring
	d.RecurringFrequency = input.RecurringFrequency
	d.Purpose = input.Purpose
	d.Notes = input.Notes

	if err := uc.donationRepo.Create(ctx, d); err != nil {
		return nil, fmt.Errorf("failed to create donation: %w", err)
	}

	dashboard.InvalidateSummaries(ctx, uc.cache, valueobject.CurrentFiscalYear(d.DonationDate))

	return &CreateDonationOutput{Donation: d}, nil
}

func validateDonation(input CreateDonationInput) error {
	if strings.TrimSpace(input.DonorName) == "" && !input.IsAnonymous {
		return domainerror.NewDonationError(
			domainerror.ErrCodeDonorNameRequired,
			"donor name is required unless the donation is anonymous",
			domainerror.ErrDonorNameRequired,
		)
	}
	if !input.Amount.IsPositive() {
		return domainerror.NewDonationError(
			domainerror.ErrCodeInvalidDonationAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidDonationAmount,
		)
	}
	if input.DonationDate.IsZero() {
		return domainerror.NewDonationError(
			domainerror.ErrCodeInvalidDonationDate,
			"donation date is required",
			domainerror.ErrInvalidDate,
		)
	}

	hasFrequency := input.RecurringFrequency != nil
	if input.IsRecurring != hasFrequency || (hasFrequency && !input.RecurringFrequency.IsValid()) {
		return domainerror.NewDonationError(
			domainerror.ErrCodeInvalidRecurringFrequency,
			"recurring donations need a frequency of Monthly, Quarterly or Annually; one-off donations must not set one",
			domainerror.ErrInvalidRecurringFrequency,
		)
	}
	return nil
}
