package fiscalyear

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/sponsor-tracker/backend/internal/application/adapter"
	"github.com/sponsor-tracker/backend/internal/domain/entity"
	"github.com/sponsor-tracker/backend/internal/domain/valueobject"
)

// ListSettingsInput represents the input for listing fiscal year settings.
type ListSettingsInput struct{}

// ListSettingsOutput lists the selectable fiscal years with their goals. Years
// without a stored setting carry the default goal.
type ListSettingsOutput struct {
	Current  valueobject.FiscalYear
	Settings []*entity.FiscalYearSetting
}

// ListSettingsUseCase merges the stored settings with the selectable fiscal years.
type ListSettingsUseCase struct {
	fiscalYearRepo adapter.FiscalYearRepository
	clock          adapter.Clock
	defaultGoal    decimal.Decimal
	yearsBack      int
	yearsForward   int
}

// NewListSettingsUseCase creates a new ListSettingsUseCase instance.
func NewListSettingsUseCase(fiscalYearRepo adapter.FiscalYearRepository, clock adapter.Clock, defaultGoal decimal.Decimal, yearsBack, yearsForward int) *ListSettingsUseCase {
	return &ListSettingsUseCase{
		fiscalYearRepo: fiscalYearRepo,
		clock:          clock,
		defaultGoal:    defaultGoal,
		yearsBack:      yearsBack,
		yearsForward:   yearsForward,
	}
}

// Execute lists the settings ordered by fiscal year.
func (uc *ListSettingsUseCase) Execute(ctx context.Context, _ ListSettingsInput) (*ListSettingsOutput, error) {
	stored, err := uc.fiscalYearRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list fiscal year settings: %w", err)
	}

	now := uc.clock.Now()
	byYear := make(map[valueobject.FiscalYear]*entity.FiscalYearSetting, len(stored))
	current := valueobject.CurrentFiscalYear(now)
	for _, s := range stored {
		byYear[s.FiscalYear] = s
		if s.IsCurrent {
			current = s.FiscalYear
		}
	}

	for _, fy := range valueobject.FiscalYearOptions(uc.yearsBack, uc.yearsForward, now) {
		if _, ok := byYear[fy]; !ok {
			byYear[fy] = entity.NewFiscalYearSetting(fy, uc.defaultGoal, now.UTC())
		}
	}

	settings := make([]*entity.FiscalYearSetting, 0, len(byYear))
	for _, s := range byYear {
		settings = append(settings, s)
	}
	sort.Slice(settings, func(i, j int) bool {
		return settings[i].FiscalYear.StartYear < settings[j].FiscalYear.StartYear
	})

	return &ListSettingsOutput{Current: current, Settings: settings}, nil
}
