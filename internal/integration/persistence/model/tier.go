package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sponsor-tracker/backend/internal/domain/entity"
)

// SponsorshipTierModel represents the sponsorship_tiers table in the database.
type SponsorshipTierModel struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	TierName        string          `gorm:"type:varchar(100);not null;uniqueIndex"`
	TierLevel       int             `gorm:"not null;default:0"`
	SuggestedAmount decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	IsActive        bool            `gorm:"not null"`
	CreatedAt       time.Time       `gorm:"not null"`
	UpdatedAt       time.Time       `gorm:"not null"`
}

// TableName returns the table name for the SponsorshipTierModel.
func (SponsorshipTierModel) TableName() string {
	return "sponsorship_tiers"
}

// ToEntity converts a SponsorshipTierModel to a domain SponsorshipTier entity.
func (m *SponsorshipTierModel) ToEntity() *entity.SponsorshipTier {
	return &entity.SponsorshipTier{
		ID:              m.ID,
		TierName:        m.TierName,
		TierLevel:       m.TierLevel,
		SuggestedAmount: m.SuggestedAmount,
		IsActive:        m.IsActive,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// SponsorshipTierFromEntity creates a SponsorshipTierModel from a domain entity.
func SponsorshipTierFromEntity(t *entity.SponsorshipTier) *SponsorshipTierModel {
	return &SponsorshipTierModel{
		ID:              t.ID,
		TierName:        t.TierName,
		TierLevel:       t.TierLevel,
		SuggestedAmount: t.SuggestedAmount,
		IsActive:        t.IsActive,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}
