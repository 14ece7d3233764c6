package dto

import (
	"github.com/shopspring/decimal"

	"github.com/sponsor-tracker/backend/internal/application/usecase/fiscalyear"
	"github.com/sponsor-tracker/backend/internal/domain/entity"
)

// UpsertGoalRequest represents the request body for setting a fiscal year goal.
type UpsertGoalRequest struct {
	GoalAmount decimal.Decimal `json:"goal_amount"`
}

// FiscalYearSettingResponse represents a fiscal year with its goal.
type FiscalYearSettingResponse struct {
	FiscalYear string `json:"fiscal_year"`
	GoalAmount string `json:"goal_amount"`
	IsCurrent  bool   `json:"is_current"`
}

// FiscalYearSettingListResponse lists the selectable fiscal years.
type FiscalYearSettingListResponse struct {
	Current     string                      `json:"current"`
	FiscalYears []FiscalYearSettingResponse `json:"fiscal_years"`
}

// ToFiscalYearSettingResponse converts a domain FiscalYearSetting to its response DTO.
func ToFiscalYearSettingResponse(s *entity.FiscalYearSetting) FiscalYearSettingResponse {
	return FiscalYearSettingResponse{
		FiscalYear: s.FiscalYear.String(),
		GoalAmount: Money(s.GoalAmount),
		IsCurrent:  s.IsCurrent,
	}
}

// ToFiscalYearSettingListResponse converts the use case output to its response DTO.
func ToFiscalYearSettingListResponse(output *fiscalyear.ListSettingsOutput) FiscalYearSettingListResponse {
	out := make([]FiscalYearSettingResponse, len(output.Settings))
	for i, s := range output.Settings {
		out[i] = ToFiscalYearSettingResponse(s)
	}
	return FiscalYearSettingListResponse{
		Current:     output.Current.String(),
		FiscalYears: out,
	}
}
