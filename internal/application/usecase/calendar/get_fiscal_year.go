// Package calendar contains fiscal calendar use cases.
package calendar

import (
	"context"
	"time"

	"github.com/sponsor-tracker/backend/internal/application/adapter"
	"github.com/sponsor-tracker/backend/internal/domain/valueobject"
)

// GetFiscalYearInput represents the input for resolving a fiscal year.
type GetFiscalYearInput struct {
	Date         *time.Time // Optional, defaults to the clock
	YearsBack    *int       // Optional, defaults to the configured value
	YearsForward *int       // Optional, defaults to the configured value
}

// GetFiscalYearOutput describes the fiscal year containing Date.
type GetFiscalYearOutput struct {
	Date       time.Time
	FiscalYear valueobject.FiscalYear
	StartDate  time.Time
	EndDate    time.Time
	Options    []valueobject.FiscalYear
}

// GetFiscalYearUseCase resolves the fiscal year of a date and the selectable years.
type GetFiscalYearUseCase struct {
	clock        adapter.Clock
	yearsBack    int
	yearsForward int
}

// NewGetFiscalYearUseCase creates a new GetFiscalYearUseCase instance.
func NewGetFiscalYearUseCase(clock adapter.Clock, yearsBack, yearsForward int) *GetFiscalYearUseCase {
	return &GetFiscalYearUseCase{
		clock:        clock,
		yearsBack:    yearsBack,
		yearsForward: yearsForward,
	}
}

// Execute resolves the fiscal year.
func (uc *GetFiscalYearUseCase) Execute(_ context.Context, input GetFiscalYearInput) (*GetFiscalYearOutput, error) {
	date := uc.clock.Now()
	if input.Date != nil {
		date = *input.Date
	}

	back, forward := uc.yearsBack, uc.yearsForward
	if input.YearsBack != nil {
		back = *input.YearsBack
	}
	if input.YearsForward != nil {
		forward = *input.YearsForward
	}

	fy := valueobject.CurrentFiscalYear(date)
	start, end := fy.DateRange(date.Location())

	return &GetFiscalYearOutput{
		Date:       valueobject.StartOfDay(date),
		FiscalYear: fy,
		StartDate:  start,
		EndDate:    end,
		Options:    valueobject.FiscalYearOptions(back, forward, date),
	}, nil
}
