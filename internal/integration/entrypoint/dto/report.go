package dto

import (
	"github.com/sponsor-tracker/backend/internal/application/usecase/dashboard"
)

// TierReportRowResponse is one tier's line in the by-tier report.
type TierReportRowResponse struct {
	TierName         string `json:"tier_name"`
	TierLevel        *int   `json:"tier_level"`
	SponsorshipCount int    `json:"sponsorship_count"`
	ReceivedCount    int    `json:"received_count"`
	Monetary         string `json:"monetary"`
	InKind           string `json:"in_kind"`
	Total            string `json:"total"`
	Received         string `json:"received"`
}

// TierReportResponse represents the by-tier revenue report.
type TierReportResponse struct {
	FiscalYear string                  `json:"fiscal_year"`
	Tiers      []TierReportRowResponse `json:"tiers"`
	GrandTotal string                  `json:"grand_total"`
}

// ToTierReportResponse converts a tier report to its response DTO.
func ToTierReportResponse(r *dashboard.TierReport) TierReportResponse {
	rows := make([]TierReportRowResponse, len(r.Rows))
	for i, row := range r.Rows {
		rows[i] = TierReportRowResponse{
			TierName:         row.TierName,
			TierLevel:        row.TierLevel,
			SponsorshipCount: row.SponsorshipCount,
			ReceivedCount:    row.ReceivedCount,
			Monetary:         Money(row.Monetary),
			InKind:           Money(row.InKind),
			Total:            Money(row.Total),
			Received:         Money(row.Received),
		}
	}
	return TierReportResponse{
		FiscalYear: r.FiscalYear.String(),
		Tiers:      rows,
		GrandTotal: Money(r.GrandTotal),
	}
}

// ScotMendeContributionResponse is one earmarked sponsorship.
type ScotMendeContributionResponse struct {
	SponsorshipID string  `json:"sponsorship_id"`
	SponsorName   string  `json:"sponsor_name"`
	TierName      string  `json:"tier_name"`
	Status        string  `json:"status"`
	Amount        string  `json:"amount"`
	PaymentDate   *string `json:"payment_date"`
}

// ScotMendeReportResponse represents the Scot Mende fund report.
type ScotMendeReportResponse struct {
	FiscalYear       string                          `json:"fiscal_year"`
	ContributorCount int                             `json:"contributor_count"`
	TotalPledged     string                          `json:"total_pledged"`
	TotalReceived    string                          `json:"total_received"`
	Contributions    []ScotMendeContributionResponse `json:"contributions"`
}

// ToScotMendeReportResponse converts a Scot Mende report to its response DTO.
func ToScotMendeReportResponse(r *dashboard.ScotMendeReport) ScotMendeReportResponse {
	contributions := make([]ScotMendeContributionResponse, len(r.Contributions))
	for i, c := range r.Contributions {
		contributions[i] = ScotMendeContributionResponse{
			SponsorshipID: c.SponsorshipID.String(),
			SponsorName:   c.SponsorName,
			TierName:      c.TierName,
			Status:        string(c.Status),
			Amount:        Money(c.Amount),
			PaymentDate:   datePtr(c.PaymentDate),
		}
	}
	return ScotMendeReportResponse{
		FiscalYear:       r.FiscalYear.String(),
		ContributorCount: r.ContributorCount,
		TotalPledged:     Money(r.TotalPledged),
		TotalReceived:    Money(r.TotalReceived),
		Contributions:    contributions,
	}
}

// PaymentMonthResponse is one month of the payment timeline.
type PaymentMonthResponse struct {
	Month      string `json:"month"`
	Count      int    `json:"count"`
	Amount     string `json:"amount"`
	Cumulative string `json:"cumulative"`
}

// PaymentTimelineResponse represents the monthly payment timeline.
type PaymentTimelineResponse struct {
	FiscalYear        string                 `json:"fiscal_year"`
	Months            []PaymentMonthResponse `json:"months"`
	Total             string                 `json:"total"`
	OutsideFiscalYear int                    `json:"outside_fiscal_year"`
}

// ToPaymentTimelineResponse converts a payment timeline to its response DTO.
func ToPaymentTimelineResponse(t *dashboard.PaymentTimeline) PaymentTimelineResponse {
	months := make([]PaymentMonthResponse, len(t.Months))
	for i, m := range t.Months {
		months[i] = PaymentMonthResponse{
			Month:      m.Month,
			Count:      m.Count,
			Amount:     Money(m.Amount),
			Cumulative: Money(m.Cumulative),
		}
	}
	return PaymentTimelineResponse{
		FiscalYear:        t.FiscalYear.String(),
		Months:            months,
		Total:             Money(t.Total),
		OutsideFiscalYear: t.OutsideFiscalYear,
	}
}
