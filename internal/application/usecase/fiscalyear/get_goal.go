// Package fiscalyear contains fiscal year settings use cases.
package fiscalyear

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/sponsor-tracker/backend/internal/application/adapter"
	domainerror "github.com/sponsor-tracker/backend/internal/domain/error"
	"github.com/sponsor-tracker/backend/internal/domain/valueobject"
)

// GetGoalInput represents the input for looking up a fiscal year goal.
type GetGoalInput struct {
	FiscalYear valueobject.FiscalYear
}

// GetGoalOutput represents a fiscal year goal.
type GetGoalOutput struct {
	FiscalYear valueobject.FiscalYear
	Goal       decimal.Decimal
	IsDefault  bool // No setting exists; Goal is the configured default
}

// GetGoalUseCase returns the goal of a fiscal year, falling back to the default.
type GetGoalUseCase struct {
	fiscalYearRepo adapter.FiscalYearRepository
	defaultGoal    decimal.Decimal
}

// NewGetGoalUseCase creates a new GetGoalUseCase instance.
func NewGetGoalUseCase(fiscalYearRepo adapter.FiscalYearRepository, defaultGoal decimal.Decimal) *GetGoalUseCase {
	return &GetGoalUseCase{
		fiscalYearRepo: fiscalYearRepo,
		defaultGoal:    defaultGoal,
	}
}

// Execute looks up the goal.
func (uc *GetGoalUseCase) Execute(ctx context.Context, input GetGoalInput) (*GetGoalOutput, error) {
	setting, err := uc.fiscalYearRepo.FindByFiscalYear(ctx, input.FiscalYear)
	if errors.Is(err, domainerror.ErrFiscalYearSettingNotFound) {
		return &GetGoalOutput{FiscalYear: input.FiscalYear, Goal: uc.defaultGoal, IsDefault: true}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load fiscal year setting: %w", err)
	}

	return &GetGoalOutput{FiscalYear: input.FiscalYear, Goal: setting.GoalAmount}, nil
}
