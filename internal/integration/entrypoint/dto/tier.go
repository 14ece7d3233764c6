package dto

import (
	"github.com/shopspring/decimal"

	"github.com/sponsor-tracker/backend/internal/domain/entity"
)

// CreateTierRequest represents the request body for tier creation.
type CreateTierRequest struct {
	TierName        string          `json:"tier_name" binding:"required,max=100"`
	TierLevel       int             `json:"tier_level" binding:"gte=0"`
	SuggestedAmount decimal.Decimal `json:"suggested_amount"`
}

// TierResponse represents a single sponsorship tier in API responses.
type TierResponse struct {
	ID              string `json:"id"`
	TierName        string `json:"tier_name"`
	TierLevel       int    `json:"tier_level"`
	SuggestedAmount string `json:"suggested_amount"`
	IsActive        bool   `json:"is_active"`
}

// TierListResponse represents the response for listing tiers.
type TierListResponse struct {
	Tiers []TierResponse `json:"tiers"`
}

// ToTierResponse converts a domain SponsorshipTier entity to a TierResponse DTO.
func ToTierResponse(t *entity.SponsorshipTier) TierResponse {
	return TierResponse{
		ID:              t.ID.String(),
		TierName:        t.TierName,
		TierLevel:       t.TierLevel,
		SuggestedAmount: Money(t.SuggestedAmount),
		IsActive:        t.IsActive,
	}
}

// ToTierListResponse converts tiers to a TierListResponse DTO.
func ToTierListResponse(tiers []*entity.SponsorshipTier) TierListResponse {
	out := make([]TierResponse, len(tiers))
	for i, t := range tiers {
		out[i] = ToTierResponse(t)
	}
	return TierListResponse{Tiers: out}
}
