package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UnknownTierName is reported for sponsorships that carry no tier.
const UnknownTierName = "Unknown"

// SponsorshipTier represents a named sponsorship level such as Gold or Silver.
type SponsorshipTier struct {
	ID              uuid.UUID
	TierName        string
	TierLevel       int
	SuggestedAmount decimal.Decimal
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewSponsorshipTier creates a new active tier.
func NewSponsorshipTier(name string, level int, suggested decimal.Decimal, now time.Time) *SponsorshipTier {
	return &SponsorshipTier{
		ID:              uuid.New(),
		TierName:        name,
		TierLevel:       level,
		SuggestedAmount: suggested,
		IsActive:        true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}
