package fiscalyear

import (
	"context"
	"fmt"

	"github.com/sponsor-tracker/backend/internal/application/adapter"
	domainerror "github.com/sponsor-tracker/backend/internal/domain/error"
	"github.com/sponsor-tracker/backend/internal/domain/valueobject"
)

// SetCurrentInput represents the input for flagging the current fiscal year.
type SetCurrentInput struct {
	FiscalYear valueobject.FiscalYear
}

// SetCurrentUseCase flags one fiscal year as current. A setting with the default
// goal is created first when the year has none.
type SetCurrentUseCase struct {
	fiscalYearRepo adapter.FiscalYearRepository
	upsertGoal     *UpsertGoalUseCase
	getGoal        *GetGoalUseCase
}

// NewSetCurrentUseCase creates a new SetCurrentUseCase instance.
func NewSetCurrentUseCase(fiscalYearRepo adapter.FiscalYearRepository, upsertGoal *UpsertGoalUseCase, getGoal *GetGoalUseCase) *SetCurrentUseCase {
	return &SetCurrentUseCase{
		fiscalYearRepo: fiscalYearRepo,
		upsertGoal:     upsertGoal,
		getGoal:        getGoal,
	}
}

// Execute flags the fiscal year as current.
func (uc *SetCurrentUseCase) Execute(ctx context.Context, input SetCurrentInput) error {
	if !input.FiscalYear.Valid() {
		return domainerror.NewFiscalYearError(
			domainerror.ErrCodeFiscalYearInvalid,
			"fiscal year must span two consecutive years",
			domainerror.ErrInvalidFiscalYear,
		)
	}

	goal, err := uc.getGoal.Execute(ctx, GetGoalInput{FiscalYear: input.FiscalYear})
	if err != nil {
		return err
	}
	if goal.IsDefault {
		if _, err := uc.upsertGoal.Execute(ctx, UpsertGoalInput{FiscalYear: input.FiscalYear, GoalAmount: goal.Goal}); err != nil {
			return err
		}
	}

	if err := uc.fiscalYearRepo.SetCurrent(ctx, input.FiscalYear); err != nil {
		return fmt.Errorf("failed to set current fiscal year: %w", err)
	}
	return nil
}
