package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sponsor-tracker/backend/internal/domain/valueobject"
)

// DefaultFiscalYearGoal is the fundraising goal used when a fiscal year has no setting.
var DefaultFiscalYearGoal = decimal.NewFromInt(11500)

// FiscalYearSetting stores the fundraising goal of a fiscal year.
type FiscalYearSetting struct {
	ID         uuid.UUID
	FiscalYear valueobject.FiscalYear
	GoalAmount decimal.Decimal
	IsCurrent  bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewFiscalYearSetting creates a new setting for fy.
func NewFiscalYearSetting(fy valueobject.FiscalYear, goal decimal.Decimal, now time.Time) *FiscalYearSetting {
	return &FiscalYearSetting{
		ID:         uuid.New(),
		FiscalYear: fy,
		GoalAmount: goal,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}
