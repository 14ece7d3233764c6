package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sponsor-tracker/backend/internal/domain/entity"
	"github.com/sponsor-tracker/backend/internal/domain/valueobject"
)

// SponsorshipModel represents the sponsorships table in the database.
type SponsorshipModel struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primaryKey"`
	SponsorID           uuid.UUID       `gorm:"type:uuid;not null;index"`
	TierID              *uuid.UUID      `gorm:"type:uuid"`
	TierName            string          `gorm:"type:varchar(100)"`
	FiscalYear          string          `gorm:"type:varchar(9);not null;index"` // Canonical "2025/2026"
	SponsorshipType     string          `gorm:"type:varchar(20);not null"`
	MonetaryAmount      decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	InKindValue         decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	InKindDescription   string          `gorm:"type:text"`
	PaymentDate         *time.Time      `gorm:"type:date"`
	ExpirationDate      *time.Time      `gorm:"type:date;index"`
	Status              string          `gorm:"type:varchar(20);not null;index"`
	ScotMendeFund       bool            `gorm:"not null;default:false"`
	ScotMendeAmount     decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	RenewalReminderSent bool            `gorm:"not null;default:false"`
	Notes               string          `gorm:"type:text"`
	CreatedAt           time.Time       `gorm:"not null"`
	UpdatedAt           time.Time       `gorm:"not null"`

	// Relationships (not loaded by default, use Preload)
	Sponsor *SponsorModel `gorm:"foreignKey:SponsorID;references:ID"`
}

// TableName returns the table name for the SponsorshipModel.
func (SponsorshipModel) TableName() string {
	return "sponsorships"
}

// ToEntity converts a SponsorshipModel to a domain Sponsorship entity.
// A malformed fiscal year column is an error; the row is never loaded with a zero year.
func (m *SponsorshipModel) ToEntity() (*entity.Sponsorship, error) {
	fy, err := valueobject.ParseFiscalYear(m.FiscalYear)
	if err != nil {
		return nil, fmt.Errorf("sponsorship %s: %w", m.ID, err)
	}

	s := &entity.Sponsorship{
		ID:                  m.ID,
		SponsorID:           m.SponsorID,
		TierID:              m.TierID,
		TierName:            m.TierName,
		FiscalYear:          fy,
		Type:                entity.SponsorshipType(m.SponsorshipType),
		MonetaryAmount:      m.MonetaryAmount,
		InKindValue:         m.InKindValue,
		InKindDescription:   m.InKindDescription,
		PaymentDate:         civilDate(m.PaymentDate),
		ExpirationDate:      civilDate(m.ExpirationDate),
		Status:              entity.SponsorshipStatus(m.Status),
		ScotMendeFund:       m.ScotMendeFund,
		ScotMendeAmount:     m.ScotMendeAmount,
		RenewalReminderSent: m.RenewalReminderSent,
		Notes:               m.Notes,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
	if m.Sponsor != nil {
		s.Sponsor = m.Sponsor.ToEntity()
	}
	return s, nil
}

// SponsorshipFromEntity creates a SponsorshipModel from a domain Sponsorship entity.
func SponsorshipFromEntity(s *entity.Sponsorship) *SponsorshipModel {
	return &SponsorshipModel{
		ID:                  s.ID,
		SponsorID:           s.SponsorID,
		TierID:              s.TierID,
		TierName:            s.TierName,
		FiscalYear:          s.FiscalYear.String(),
		SponsorshipType:     string(s.Type),
		MonetaryAmount:      s.MonetaryAmount,
		InKindValue:         s.InKindValue,
		InKindDescription:   s.InKindDescription,
		PaymentDate:         civilDate(s.PaymentDate),
		ExpirationDate:      civilDate(s.ExpirationDate),
		Status:              string(s.Status),
		ScotMendeFund:       s.ScotMendeFund,
		ScotMendeAmount:     s.ScotMendeAmount,
		RenewalReminderSent: s.RenewalReminderSent,
		Notes:               s.Notes,
		CreatedAt:           s.CreatedAt,
		UpdatedAt:           s.UpdatedAt,
	}
}

// civilDate pins a date column to midnight UTC of its calendar day.
func civilDate(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return &d
}
