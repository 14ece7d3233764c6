// Package renewal contains renewal pipeline use cases.
package renewal

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sponsor-tracker/backend/internal/domain/entity"
	"github.com/sponsor-tracker/backend/internal/domain/valueobject"
)

// Bucket is a renewal risk bucket derived from the days left until expiration.
type Bucket string

const (
	BucketUrgent   Bucket = "urgent"
	BucketSoon     Bucket = "soon"
	BucketUpcoming Bucket = "upcoming"
	BucketLapsed   Bucket = "lapsed"
	BucketNone     Bucket = "" // Expires more than 90 days out
)

// Bucket upper bounds in days, inclusive.
const (
	UrgentMaxDays   = 30
	SoonMaxDays     = 60
	UpcomingMaxDays = 90
)

// BucketFor maps the days left until expiration to a bucket.
func BucketFor(daysUntilExpiration int) Bucket {
	switch {
	case daysUntilExpiration < 0:
		return BucketLapsed
	case daysUntilExpiration <= UrgentMaxDays:
		return BucketUrgent
	case daysUntilExpiration <= SoonMaxDays:
		return BucketSoon
	case daysUntilExpiration <= UpcomingMaxDays:
		return BucketUpcoming
	default:
		return BucketNone
	}
}

// PipelineStats summarizes a classified pipeline.
type PipelineStats struct {
	TotalAtRisk int
	TotalValue  decimal.Decimal
	LapsedCount int
	LapsedValue decimal.Decimal
}

// Pipeline is the result of classifying sponsorships against a reference date.
type Pipeline struct {
	Urgent   []*entity.Sponsorship
	Soon     []*entity.Sponsorship
	Upcoming []*entity.Sponsorship
	Lapsed   []*entity.Sponsorship
	Stats    PipelineStats
	Warnings []valueobject.DataQualityWarning
}

// ClassifyRenewals buckets Received sponsorships by days until expiration relative to
// today. Records that are not Received are ignored. Received records without a usable
// expiration date are excluded and reported in Warnings.
//
// Urgent, Soon and Upcoming are ordered soonest first; Lapsed is ordered most recently
// lapsed first. Records with equal expiration dates keep their input order.
func ClassifyRenewals(records []*entity.Sponsorship, today time.Time) *Pipeline {
	p := &Pipeline{
		Urgent:   []*entity.Sponsorship{},
		Soon:     []*entity.Sponsorship{},
		Upcoming: []*entity.Sponsorship{},
		Lapsed:   []*entity.Sponsorship{},
		Warnings: []valueobject.DataQualityWarning{},
	}

	for _, r := range records {
		if r == nil || r.Status != entity.SponsorshipStatusReceived {
			continue
		}
		if r.ExpirationDate == nil {
			p.Warnings = append(p.Warnings, valueobject.DataQualityWarning{
				RecordID: r.ID.String(),
				Field:    "expiration_date",
				Reason:   valueobject.ReasonMissingExpirationDate,
			})
			continue
		}
		if r.ExpirationDate.IsZero() {
			p.Warnings = append(p.Warnings, valueobject.DataQualityWarning{
				RecordID: r.ID.String(),
				Field:    "expiration_date",
				Reason:   valueobject.ReasonInvalidExpirationDate,
				Detail:   "zero date",
			})
			continue
		}

		switch BucketFor(valueobject.DaysBetween(today, *r.ExpirationDate)) {
		case BucketUrgent:
			p.Urgent = append(p.Urgent, r)
		case BucketSoon:
			p.Soon = append(p.Soon, r)
		case BucketUpcoming:
			p.Upcoming = append(p.Upcoming, r)
		case BucketLapsed:
			p.Lapsed = append(p.Lapsed, r)
		}
	}

	sortByExpiration(p.Urgent, false)
	sortByExpiration(p.Soon, false)
	sortByExpiration(p.Upcoming, false)
	sortByExpiration(p.Lapsed, true)

	p.Stats = computeStats(p)
	return p
}

// ActiveSponsorsOnly drops sponsorships whose loaded sponsor has been archived.
// Records without a loaded sponsor are kept.
func ActiveSponsorsOnly(records []*entity.Sponsorship) []*entity.Sponsorship {
	out := make([]*entity.Sponsorship, 0, len(records))
	for _, r := range records {
		if r == nil || (r.Sponsor != nil && !r.Sponsor.IsActive) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// LatestPerSponsor keeps, for each sponsor, only the sponsorship with the latest
// expiration date. Sponsorships without an expiration date are kept only when the
// sponsor has nothing better. The first record wins on ties and the result preserves
// the position of each sponsor's first appearance.
func LatestPerSponsor(records []*entity.Sponsorship) []*entity.Sponsorship {
	index := make(map[uuid.UUID]int, len(records))
	out := make([]*entity.Sponsorship, 0, len(records))

	for _, r := range records {
		if r == nil {
			continue
		}
		i, seen := index[r.SponsorID]
		if !seen {
			index[r.SponsorID] = len(out)
			out = append(out, r)
			continue
		}
		if laterExpiration(r, out[i]) {
			out[i] = r
		}
	}
	return out
}

func laterExpiration(candidate, current *entity.Sponsorship) bool {
	if candidate.ExpirationDate == nil {
		return false
	}
	if current.ExpirationDate == nil {
		return true
	}
	return candidate.ExpirationDate.After(*current.ExpirationDate)
}

func sortByExpiration(records []*entity.Sponsorship, descending bool) {
	sort.SliceStable(records, func(i, j int) bool {
		a, b := *records[i].ExpirationDate, *records[j].ExpirationDate
		if descending {
			return a.After(b)
		}
		return a.Before(b)
	})
}

func computeStats(p *Pipeline) PipelineStats {
	stats := PipelineStats{
		TotalAtRisk: len(p.Urgent) + len(p.Soon) + len(p.Upcoming),
		TotalValue:  decimal.Zero,
		LapsedCount: len(p.Lapsed),
		LapsedValue: decimal.Zero,
	}

	for _, bucket := range [][]*entity.Sponsorship{p.Urgent, p.Soon, p.Upcoming} {
		for _, r := range bucket {
			stats.TotalValue = stats.TotalValue.Add(r.TotalValue())
		}
	}
	for _, r := range p.Lapsed {
		stats.LapsedValue = stats.LapsedValue.Add(r.TotalValue())
	}
	return stats
}
