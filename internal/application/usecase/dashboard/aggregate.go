// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sponsor-tracker/backend/internal/domain/entity"
	"github.com/sponsor-tracker/backend/internal/domain/valueobject"
)

// RecentTransactionsLimit is the number of payments listed on the dashboard.
const RecentTransactionsLimit = 10

var hundred = decimal.NewFromInt(100)

// AggregateOptions tunes which sponsorships feed the money totals.
type AggregateOptions struct {
	// Statuses limits TotalMonetary, TotalInKind and ScotMendeFund to sponsorships in
	// these statuses. Empty means every status.
	Statuses []entity.SponsorshipStatus
}

// RecentTransaction is a received sponsorship payment.
type RecentTransaction struct {
	SponsorshipID uuid.UUID              `json:"sponsorship_id"`
	SponsorID     uuid.UUID              `json:"sponsor_id"`
	SponsorName   string                 `json:"sponsor_name"`
	TierName      string                 `json:"tier_name"`
	FiscalYear    valueobject.FiscalYear `json:"fiscal_year"`
	Amount        decimal.Decimal        `json:"amount"`
	PaymentDate   time.Time              `json:"payment_date"`
}

// FiscalYearSummary holds the dashboard rollups of one fiscal year.
type FiscalYearSummary struct {
	FiscalYear         valueobject.FiscalYear `json:"fiscal_year"`
	Goal               decimal.Decimal        `json:"goal"`
	TotalMonetary      decimal.Decimal        `json:"total_monetary"`
	TotalInKind        decimal.Decimal        `json:"total_in_kind"`
	TotalDonations     decimal.Decimal        `json:"total_donations"`
	ScotMendeFund      decimal.Decimal        `json:"scot_mende_fund"`
	GrandTotal         decimal.Decimal        `json:"grand_total"`
	Remaining          decimal.Decimal        `json:"remaining"`
	ProgressPercent    decimal.Decimal        `json:"progress_percent"`
	UniqueSponsorCount int                    `json:"unique_sponsor_count"`
	SponsorshipCount   int                    `json:"sponsorship_count"`
	DonationCount      int                    `json:"donation_count"`
	TierCounts         map[string]int         `json:"tier_counts"`
	RecentTransactions []RecentTransaction    `json:"recent_transactions"`
	PendingCount       int                    `json:"pending_count"`
	OverdueCount       int                    `json:"overdue_count"`
}

// AggregateFiscalYear computes the rollups of fy from its sponsorships and from the
// donations dated inside fy. Donations outside the fiscal year are ignored.
// A zero goal yields a progress of 0. ProgressPercent is rounded to two decimals.
func AggregateFiscalYear(
	sponsorships []*entity.Sponsorship,
	donations []*entity.Donation,
	fy valueobject.FiscalYear,
	goal decimal.Decimal,
	opts AggregateOptions,
) *FiscalYearSummary {
	summary := &FiscalYearSummary{
		FiscalYear:         fy,
		Goal:               goal,
		TotalMonetary:      decimal.Zero,
		TotalInKind:        decimal.Zero,
		TotalDonations:     decimal.Zero,
		ScotMendeFund:      decimal.Zero,
		SponsorshipCount:   len(sponsorships),
		TierCounts:         map[string]int{},
		RecentTransactions: []RecentTransaction{},
	}

	included := statusSet(opts.Statuses)
	sponsors := make(map[uuid.UUID]struct{})
	var paid []*entity.Sponsorship

	for _, s := range sponsorships {
		if s == nil {
			continue
		}

		if included(s.Status) {
			summary.TotalMonetary = summary.TotalMonetary.Add(s.MonetaryAmount)
			summary.TotalInKind = summary.TotalInKind.Add(s.InKindValue)
			summary.ScotMendeFund = summary.ScotMendeFund.Add(s.ScotMendeAmount)
		}

		sponsors[s.SponsorID] = struct{}{}
		summary.TierCounts[s.EffectiveTierName()]++

		switch s.Status {
		case entity.SponsorshipStatusPending:
			summary.PendingCount++
		case entity.SponsorshipStatusOverdue:
			summary.OverdueCount++
		case entity.SponsorshipStatusReceived:
			if s.PaymentDate != nil {
				paid = append(paid, s)
			}
		}
	}

	for _, d := range donations {
		if d == nil || !fy.Contains(d.DonationDate) {
			continue
		}
		summary.TotalDonations = summary.TotalDonations.Add(d.Amount)
		summary.DonationCount++
	}

	summary.UniqueSponsorCount = len(sponsors)
	summary.GrandTotal = summary.TotalMonetary.Add(summary.TotalInKind).Add(summary.TotalDonations)
	summary.Remaining = goal.Sub(summary.GrandTotal)
	summary.ProgressPercent = progressPercent(summary.GrandTotal, goal)
	summary.RecentTransactions = recentTransactions(paid)

	return summary
}

func progressPercent(total, goal decimal.Decimal) decimal.Decimal {
	if goal.IsZero() {
		return decimal.Zero
	}
	return total.Div(goal).Mul(hundred).Round(2)
}

func recentTransactions(paid []*entity.Sponsorship) []RecentTransaction {
	sort.SliceStable(paid, func(i, j int) bool {
		return paid[i].PaymentDate.After(*paid[j].PaymentDate)
	})
	if len(paid) > RecentTransactionsLimit {
		paid = paid[:RecentTransactionsLimit]
	}

	out := make([]RecentTransaction, 0, len(paid))
	for _, s := range paid {
		out = append(out, RecentTransaction{
			SponsorshipID: s.ID,
			SponsorID:     s.SponsorID,
			SponsorName:   s.SponsorName(),
			TierName:      s.EffectiveTierName(),
			FiscalYear:    s.FiscalYear,
			Amount:        s.TotalValue(),
			PaymentDate:   *s.PaymentDate,
		})
	}
	return out
}

func statusSet(statuses []entity.SponsorshipStatus) func(entity.SponsorshipStatus) bool {
	if len(statuses) == 0 {
		return func(entity.SponsorshipStatus) bool { return true }
	}
	set := make(map[entity.SponsorshipStatus]struct{}, len(statuses))
	for _, s := range statuses {
		set[s] = struct{}{}
	}
	return func(s entity.SponsorshipStatus) bool {
		_, ok := set[s]
		return ok
	}
}
