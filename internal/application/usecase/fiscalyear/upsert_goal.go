package fiscalyear

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/sponsor-tracker/backend/internal/application/adapter"
	"github.com/sponsor-tracker/backend/internal/application/usecase/dashboard"
	"github.com/sponsor-tracker/backend/internal/domain/entity"
	domainerror "github.com/sponsor-tracker/backend/internal/domain/error"
	"github.com/sponsor-tracker/backend/internal/domain/valueobject"
)

// UpsertGoalInput represents the input for setting a fiscal year goal.
type UpsertGoalInput struct {
	FiscalYear valueobject.FiscalYear
	GoalAmount decimal.Decimal
}

// UpsertGoalOutput represents the stored setting.
type UpsertGoalOutput struct {
	Setting *entity.FiscalYearSetting
}

// UpsertGoalUseCase creates or updates the goal of a fiscal year.
type UpsertGoalUseCase struct {
	fiscalYearRepo adapter.FiscalYearRepository
	cache          adapter.SummaryCache
	clock          adapter.Clock
}

// NewUpsertGoalUseCase creates a new UpsertGoalUseCase instance.
func NewUpsertGoalUseCase(fiscalYearRepo adapter.FiscalYearRepository, cache adapter.SummaryCache, clock adapter.Clock) *UpsertGoalUseCase {
	return &UpsertGoalUseCase{
		fiscalYearRepo: fiscalYearRepo,
		cache:          cache,
		clock:          clock,
	}
}

// Execute stores the goal.
func (uc *UpsertGoalUseCase) Execute(ctx context.Context, input UpsertGoalInput) (*UpsertGoalOutput, error) {
	if !input.FiscalYear.Valid() {
		return nil, domainerror.NewFiscalYearError(
			domainerror.ErrCodeFiscalYearInvalid,
			"fiscal year must span two consecutive years",
			domainerror.ErrInvalidFiscalYear,
		)
	}
	if input.GoalAmount.IsNegative() {
		return nil, domainerror.NewFiscalYearError(
			domainerror.ErrCodeInvalidGoalAmount,
			"goal amount must not be negative",
			domainerror.ErrInvalidGoalAmount,
		)
	}

	now := uc.clock.Now().UTC()
	setting, err := uc.fiscalYearRepo.FindByFiscalYear(ctx, input.FiscalYear)
	switch {
	case errors.Is(err, domainerror.ErrFiscalYearSettingNotFound):
		setting = entity.NewFiscalYearSetting(input.FiscalYear, input.GoalAmount, now)
	case err != nil:
		return nil, fmt.Errorf("failed to load fiscal year setting: %w", err)
	default:
		setting.GoalAmount = input.GoalAmount
		setting.UpdatedAt = now
	}

	if err := uc.fiscalYearRepo.Upsert(ctx, setting); err != nil {
		return nil, fmt.Errorf("failed to save fiscal year goal: %w", err)
	}

	dashboard.InvalidateSummaries(ctx, uc.cache, input.FiscalYear)

	return &UpsertGoalOutput{Setting: setting}, nil
}
