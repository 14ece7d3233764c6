package dto

import (
	"github.com/sponsor-tracker/backend/internal/application/usecase/calendar"
	"github.com/sponsor-tracker/backend/internal/domain/valueobject"
)

// FiscalYearResponse describes the fiscal year containing a date.
type FiscalYearResponse struct {
	Date       string   `json:"date"`
	FiscalYear string   `json:"fiscal_year"`
	StartDate  string   `json:"start_date"`
	EndDate    string   `json:"end_date"`
	Options    []string `json:"options"`
}

// RenewalDateResponse is the computed renewal date of a payment.
type RenewalDateResponse struct {
	PaymentDate string `json:"payment_date"`
	RenewalDate string `json:"renewal_date"`
	FiscalYear  string `json:"fiscal_year"`
}

// ToFiscalYearResponse converts the use case output to a FiscalYearResponse.
func ToFiscalYearResponse(output *calendar.GetFiscalYearOutput) FiscalYearResponse {
	return FiscalYearResponse{
		Date:       valueobject.FormatDate(output.Date),
		FiscalYear: output.FiscalYear.String(),
		StartDate:  valueobject.FormatDate(output.StartDate),
		EndDate:    valueobject.FormatDate(output.EndDate),
		Options:    FiscalYearStrings(output.Options),
	}
}

// ToRenewalDateResponse converts the use case output to a RenewalDateResponse.
func ToRenewalDateResponse(output *calendar.CalculateRenewalDateOutput) RenewalDateResponse {
	return RenewalDateResponse{
		PaymentDate: valueobject.FormatDate(output.PaymentDate),
		RenewalDate: valueobject.FormatDate(output.RenewalDate),
		FiscalYear:  output.FiscalYear.String(),
	}
}

// FiscalYearStrings renders fiscal years in canonical form.
func FiscalYearStrings(years []valueobject.FiscalYear) []string {
	out := make([]string, len(years))
	for i, fy := range years {
		out[i] = fy.String()
	}
	return out
}
