package dashboard

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sponsor-tracker/backend/internal/domain/entity"
	"github.com/sponsor-tracker/backend/internal/domain/valueobject"
)

// TierReportRow is the revenue of one tier in a fiscal year.
type TierReportRow struct {
	TierName         string
	TierLevel        *int // Nil for tiers no longer configured
	SponsorshipCount int
	ReceivedCount    int
	Monetary         decimal.Decimal
	InKind           decimal.Decimal
	Total            decimal.Decimal
	Received         decimal.Decimal
}

// TierReport breaks a fiscal year's sponsorship revenue down by tier.
type TierReport struct {
	FiscalYear valueobject.FiscalYear
	Rows       []TierReportRow
	GrandTotal decimal.Decimal
}

// AggregateByTier groups the non-cancelled sponsorships of fy by tier name. Rows
// follow the configured tier levels; unconfigured tiers come last by name.
func AggregateByTier(sponsorships []*entity.Sponsorship, tiers []*entity.SponsorshipTier, fy valueobject.FiscalYear) *TierReport {
	levels := make(map[string]int, len(tiers))
	for _, t := range tiers {
		levels[t.TierName] = t.TierLevel
	}

	rows := map[string]*TierReportRow{}
	report := &TierReport{FiscalYear: fy, Rows: []TierReportRow{}, GrandTotal: decimal.Zero}

	for _, s := range sponsorships {
		if s == nil || s.Status == entity.SponsorshipStatusCancelled {
			continue
		}
		name := s.EffectiveTierName()
		row, ok := rows[name]
		if !ok {
			row = &TierReportRow{
				TierName: name,
				Monetary: decimal.Zero,
				InKind:   decimal.Zero,
				Total:    decimal.Zero,
				Received: decimal.Zero,
			}
			if level, configured := levels[name]; configured {
				row.TierLevel = &level
			}
			rows[name] = row
		}

		row.SponsorshipCount++
		row.Monetary = row.Monetary.Add(s.MonetaryAmount)
		row.InKind = row.InKind.Add(s.InKindValue)
		row.Total = row.Total.Add(s.TotalValue())
		if s.Status == entity.SponsorshipStatusReceived {
			row.ReceivedCount++
			row.Received = row.Received.Add(s.TotalValue())
		}
		report.GrandTotal = report.GrandTotal.Add(s.TotalValue())
	}

	for _, row := range rows {
		report.Rows = append(report.Rows, *row)
	}
	sort.Slice(report.Rows, func(i, j int) bool {
		a, b := report.Rows[i], report.Rows[j]
		switch {
		case a.TierLevel != nil && b.TierLevel != nil && *a.TierLevel != *b.TierLevel:
			return *a.TierLevel < *b.TierLevel
		case (a.TierLevel == nil) != (b.TierLevel == nil):
			return a.TierLevel != nil
		default:
			return a.TierName < b.TierName
		}
	})
	return report
}

// ScotMendeContribution is one sponsorship earmarked for the Scot Mende fund.
type ScotMendeContribution struct {
	SponsorshipID uuid.UUID
	SponsorName   string
	TierName      string
	Status        entity.SponsorshipStatus
	Amount        decimal.Decimal
	PaymentDate   *time.Time
}

// ScotMendeReport lists a fiscal year's Scot Mende fund contributions.
type ScotMendeReport struct {
	FiscalYear       valueobject.FiscalYear
	ContributorCount int
	TotalPledged     decimal.Decimal
	TotalReceived    decimal.Decimal
	Contributions    []ScotMendeContribution
}

// AggregateScotMende collects the non-cancelled fund sponsorships of fy, largest first.
// Pledged counts every status; received counts Received sponsorships only.
func AggregateScotMende(sponsorships []*entity.Sponsorship, fy valueobject.FiscalYear) *ScotMendeReport {
	report := &ScotMendeReport{
		FiscalYear:    fy,
		TotalPledged:  decimal.Zero,
		TotalReceived: decimal.Zero,
		Contributions: []ScotMendeContribution{},
	}
	contributors := map[uuid.UUID]struct{}{}

	for _, s := range sponsorships {
		if s == nil || !s.ScotMendeFund || s.Status == entity.SponsorshipStatusCancelled {
			continue
		}
		contributors[s.SponsorID] = struct{}{}
		report.TotalPledged = report.TotalPledged.Add(s.ScotMendeAmount)
		if s.Status == entity.SponsorshipStatusReceived {
			report.TotalReceived = report.TotalReceived.Add(s.ScotMendeAmount)
		}
		report.Contributions = append(report.Contributions, ScotMendeContribution{
			SponsorshipID: s.ID,
			SponsorName:   s.SponsorName(),
			TierName:      s.EffectiveTierName(),
			Status:        s.Status,
			Amount:        s.ScotMendeAmount,
			PaymentDate:   s.PaymentDate,
		})
	}

	sort.SliceStable(report.Contributions, func(i, j int) bool {
		return report.Contributions[i].Amount.GreaterThan(report.Contributions[j].Amount)
	})
	report.ContributorCount = len(contributors)
	return report
}

// PaymentMonth is the received sponsorship revenue of one calendar month.
type PaymentMonth struct {
	Month      string // YYYY-MM
	Count      int
	Amount     decimal.Decimal
	Cumulative decimal.Decimal
}

// PaymentTimeline spreads a fiscal year's received payments over its twelve months.
type PaymentTimeline struct {
	FiscalYear valueobject.FiscalYear
	Months     []PaymentMonth
	Total      decimal.Decimal
	// OutsideFiscalYear counts payments of fy's sponsorships dated outside fy.
	OutsideFiscalYear int
}

// AggregatePaymentTimeline buckets Received sponsorships of fy by payment month,
// July through June. Every month is present even when empty.
func AggregatePaymentTimeline(sponsorships []*entity.Sponsorship, fy valueobject.FiscalYear) *PaymentTimeline {
	timeline := &PaymentTimeline{FiscalYear: fy, Months: make([]PaymentMonth, 12), Total: decimal.Zero}

	start := fy.StartDate(time.UTC)
	index := make(map[string]int, 12)
	for i := range timeline.Months {
		month := start.AddDate(0, i, 0).Format("2006-01")
		timeline.Months[i] = PaymentMonth{Month: month, Amount: decimal.Zero, Cumulative: decimal.Zero}
		index[month] = i
	}

	for _, s := range sponsorships {
		if s == nil || s.Status != entity.SponsorshipStatusReceived || s.PaymentDate == nil {
			continue
		}
		i, ok := index[s.PaymentDate.Format("2006-01")]
		if !ok {
			timeline.OutsideFiscalYear++
			continue
		}
		timeline.Months[i].Count++
		timeline.Months[i].Amount = timeline.Months[i].Amount.Add(s.TotalValue())
	}

	running := decimal.Zero
	for i := range timeline.Months {
		running = running.Add(timeline.Months[i].Amount)
		timeline.Months[i].Cumulative = running
	}
	timeline.Total = running
	return timeline
}
