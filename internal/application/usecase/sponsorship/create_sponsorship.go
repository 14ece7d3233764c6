// Package sponsorship contains sponsorship-related use cases.
package sponsorship

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sponsor-tracker/backend/internal/application/adapter"
	"github.com/sponsor-tracker/backend/internal/application/usecase/dashboard"
	"github.com/sponsor-tracker/backend/internal/domain/entity"
	domainerror "github.com/sponsor-tracker/backend/internal/domain/error"
	"github.com/sponsor-tracker/backend/internal/domain/valueobject"
)

// CreateSponsorshipInput represents the input for sponsorship creation.
type CreateSponsorshipInput struct {
	SponsorID         uuid.UUID
	TierID            *uuid.UUID
	FiscalYear        *valueobject.FiscalYear   // Optional, defaults to the current fiscal year
	Type              *entity.SponsorshipType   // Optional, derived from the amounts
	Status            *entity.SponsorshipStatus // Optional, Pending unless a payment date is given
	MonetaryAmount    decimal.Decimal
	InKindValue       decimal.Decimal
	InKindDescription string
	PaymentDate       *time.Time
	ScotMendeFund     bool
	ScotMendeAmount   decimal.Decimal
	Notes             string
}

// CreateSponsorshipOutput represents the output of sponsorship creation.
type CreateSponsorshipOutput struct {
	Sponsorship *entity.Sponsorship
}

// CreateSponsorshipUseCase handles sponsorship creation logic.
type CreateSponsorshipUseCase struct {
	sponsorshipRepo adapter.SponsorshipRepository
	sponsorRepo     adapter.SponsorRepository
	tierRepo        adapter.TierRepository
	cache           adapter.SummaryCache
	clock           adapter.Clock
}

// NewCreateSponsorshipUseCase creates a new CreateSponsorshipUseCase instance.
func NewCreateSponsorshipUseCase(
	sponsorshipRepo adapter.SponsorshipRepository,
	sponsorRepo adapter.SponsorRepository,
	tierRepo adapter.TierRepository,
	cache adapter.SummaryCache,
	clock adapter.Clock,
) *CreateSponsorshipUseCase {
	return &CreateSponsorshipUseCase{
		sponsorshipRepo: sponsorshipRepo,
		sponsorRepo:     sponsorRepo,
		tierRepo:        tierRepo,
		cache:           cache,
		clock:           clock,
	}
}

// Execute performs the sponsorship creation. When a payment date is given the
// sponsorship is recorded as Received and its expiration date is computed from it.
func (uc *CreateSponsorshipUseCase) Execute(ctx context.Context, input CreateSponsorshipInput) (*CreateSponsorshipOutput, error) {
	now := uc.clock.Now().UTC()

	if err := validateAmounts(input); err != nil {
		return nil, err
	}

	sponsor, err := uc.sponsorRepo.FindByID(ctx, input.SponsorID)
	if err != nil {
		if errors.Is(err, domainerror.ErrSponsorNotFound) {
			return nil, domainerror.NewSponsorshipError(domainerror.ErrCodeSponsorNotFound, "sponsor not found", domainerror.ErrSponsorNotFound)
		}
		return nil, fmt.Errorf("failed to load sponsor: %w", err)
	}
	if !sponsor.IsActive {
		return nil, domainerror.NewSponsorshipError(
			domainerror.ErrCodeSponsorInactive,
			"cannot add a sponsorship to an archived sponsor",
			domainerror.ErrSponsorInactive,
		)
	}

	fy := valueobject.CurrentFiscalYear(uc.clock.Now())
	if input.FiscalYear != nil {
		if !input.FiscalYear.Valid() {
			return nil, domainerror.NewInvalidFiscalYearError(input.FiscalYear.String(), "fiscal year must span two consecutive years")
		}
		fy = *input.FiscalYear
	}

	sponsorshipType := deriveType(input.MonetaryAmount, input.InKindValue)
	if input.Type != nil {
		if !input.Type.IsValid() {
			return nil, domainerror.NewSponsorshipError(
				domainerror.ErrCodeInvalidSponsorshipType,
				"type must be Monetary, In-Kind or Both",
				domainerror.ErrInvalidSponsorshipType,
			)
		}
		sponsorshipType = *input.Type
	}

	s := entity.NewSponsorship(sponsor.ID, fy, sponsorshipType, input.MonetaryAmount, input.InKindValue, now)
	s.InKindDescription = input.InKindDescription
	s.ScotMendeFund = input.ScotMendeFund
	s.ScotMendeAmount = input.ScotMendeAmount
	s.Notes = input.Notes
	s.Sponsor = sponsor

	if input.TierID != nil {
		tier, err := uc.tierRepo.FindByID(ctx, *input.TierID)
		if err != nil {
			return nil, domainerror.NewSponsorshipError(domainerror.ErrCodeTierNotFound, "sponsorship tier not found", domainerror.ErrTierNotFound)
		}
		s.TierID = &tier.ID
		s.TierName = tier.TierName
	}

	if input.Status != nil {
		if !input.Status.IsValid() {
			return nil, invalidStatusError()
		}
		s.SetStatus(*input.Status, now)
	}

	if input.PaymentDate != nil {
		if err := s.RecordPayment(*input.PaymentDate, now); err != nil {
			return nil, err
		}
	}

	if err := uc.sponsorshipRepo.Create(ctx, s); err != nil {
		return nil, fmt.Errorf("failed to create sponsorship: %w", err)
	}

	dashboard.InvalidateSummaries(ctx, uc.cache, fy)

	return &CreateSponsorshipOutput{Sponsorship: s}, nil
}

func validateAmounts(input CreateSponsorshipInput) error {
	if input.MonetaryAmount.IsNegative() || input.InKindValue.IsNegative() || input.ScotMendeAmount.IsNegative() {
		return domainerror.NewSponsorshipError(
			domainerror.ErrCodeNegativeAmount,
			"amounts must not be negative",
			domainerror.ErrNegativeAmount,
		)
	}
	if input.ScotMendeAmount.IsPositive() && !input.ScotMendeFund {
		return domainerror.NewSponsorshipError(
			domainerror.ErrCodeScotMendeWithoutFund,
			"scot_mende_amount requires scot_mende_fund",
			domainerror.ErrScotMendeWithoutFund,
		)
	}
	return nil
}

// deriveType picks the sponsorship type from which amounts are present.
func deriveType(monetary, inKind decimal.Decimal) entity.SponsorshipType {
	switch {
	case monetary.IsPositive() && inKind.IsPositive():
		return entity.SponsorshipTypeBoth
	case inKind.IsPositive():
		return entity.SponsorshipTypeInKind
	default:
		return entity.SponsorshipTypeMonetary
	}
}

func invalidStatusError() error {
	return domainerror.NewSponsorshipError(
		domainerror.ErrCodeInvalidSponsorshipStatus,
		"status must be Pending, Received, Overdue or Cancelled",
		domainerror.ErrInvalidSponsorshipStatus,
	)
}

func notFoundError(err error) error {
	if errors.Is(err, domainerror.ErrSponsorshipNotFound) {
		return domainerror.NewSponsorshipError(
			domainerror.ErrCodeSponsorshipNotFound,
			"sponsorship not found",
			domainerror.ErrSponsorshipNotFound,
		)
	}
	return fmt.Errorf("failed to load sponsorship: %w", err)
}
