package dto

import (
	"github.com/sponsor-tracker/backend/internal/application/usecase/dashboard"
	"github.com/sponsor-tracker/backend/internal/domain/valueobject"
)

// RecentTransactionResponse is a received payment on the dashboard.
type RecentTransactionResponse struct {
	SponsorshipID string `json:"sponsorship_id"`
	SponsorName   string `json:"sponsor_name"`
	TierName      string `json:"tier_name"`
	Amount        string `json:"amount"`
	PaymentDate   string `json:"payment_date"`
}

// DashboardSummaryResponse represents the fiscal year summary.
type DashboardSummaryResponse struct {
	FiscalYear         string                      `json:"fiscal_year"`
	Goal               string                      `json:"goal"`
	TotalMonetary      string                      `json:"total_monetary"`
	TotalInKind        string                      `json:"total_in_kind"`
	TotalDonations     string                      `json:"total_donations"`
	ScotMendeFund      string                      `json:"scot_mende_fund"`
	GrandTotal         string                      `json:"grand_total"`
	Remaining          string                      `json:"remaining"`
	ProgressPercent    string                      `json:"progress_percent"`
	UniqueSponsorCount int                         `json:"unique_sponsor_count"`
	SponsorshipCount   int                         `json:"sponsorship_count"`
	DonationCount      int                         `json:"donation_count"`
	PendingCount       int                         `json:"pending_count"`
	OverdueCount       int                         `json:"overdue_count"`
	TierCounts         map[string]int              `json:"tier_counts"`
	RecentTransactions []RecentTransactionResponse `json:"recent_transactions"`
	Cached             bool                        `json:"cached"`
}

// ToDashboardSummaryResponse converts the summary use case output to its response DTO.
func ToDashboardSummaryResponse(output *dashboard.GetFiscalYearSummaryOutput) DashboardSummaryResponse {
	s := output.Summary
	recent := make([]RecentTransactionResponse, len(s.RecentTransactions))
	for i, t := range s.RecentTransactions {
		recent[i] = RecentTransactionResponse{
			SponsorshipID: t.SponsorshipID.String(),
			SponsorName:   t.SponsorName,
			TierName:      t.TierName,
			Amount:        Money(t.Amount),
			PaymentDate:   valueobject.FormatDate(t.PaymentDate),
		}
	}
	tierCounts := s.TierCounts
	if tierCounts == nil {
		tierCounts = map[string]int{}
	}

	return DashboardSummaryResponse{
		FiscalYear:         s.FiscalYear.String(),
		Goal:               Money(s.Goal),
		TotalMonetary:      Money(s.TotalMonetary),
		TotalInKind:        Money(s.TotalInKind),
		TotalDonations:     Money(s.TotalDonations),
		ScotMendeFund:      Money(s.ScotMendeFund),
		GrandTotal:         Money(s.GrandTotal),
		Remaining:          Money(s.Remaining),
		ProgressPercent:    s.ProgressPercent.StringFixed(2),
		UniqueSponsorCount: s.UniqueSponsorCount,
		SponsorshipCount:   s.SponsorshipCount,
		DonationCount:      s.DonationCount,
		PendingCount:       s.PendingCount,
		OverdueCount:       s.OverdueCount,
		TierCounts:         tierCounts,
		RecentTransactions: recent,
		Cached:             output.Cached,
	}
}
