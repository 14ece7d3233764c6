package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sponsor-tracker/backend/internal/domain/entity"
)

// DonationModel represents the donations table in the database.
type DonationModel struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey"`
	DonorName          string          `gorm:"type:varchar(255)"`
	DonorEmail         string          `gorm:"type:varchar(255)"`
	Amount             decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	DonationDate       time.Time       `gorm:"type:date;not null;index"`
	IsAnonymous        bool            `gorm:"not null;default:false"`
	IsRecurring        bool            `gorm:"not null;default:false"`
	RecurringFrequency *string         `gorm:"type:varchar(20)"`
	Purpose            string          `gorm:"type:varchar(255)"`
	Notes              string          `gorm:"type:text"`
	CreatedAt          time.Time       `gorm:"not null"`
	UpdatedAt          time.Time       `gorm:"not null"`
}

// TableName returns the table name for the DonationModel.
func (DonationModel) TableName() string {
	return "donations"
}

// ToEntity converts a DonationModel to a domain Donation entity.
func (m *DonationModel) ToEntity() *entity.Donation {
	var frequency *entity.RecurringFrequency
	if m.RecurringFrequency != nil {
		f := entity.RecurringFrequency(*m.RecurringFrequency)
		frequency = &f
	}

	return &entity.Donation{
		ID:                 m.ID,
		DonorName:          m.DonorName,
		DonorEmail:         m.DonorEmail,
		Amount:             m.Amount,
		DonationDate:       *civilDate(&m.DonationDate),
		IsAnonymous:        m.IsAnonymous,
		IsRecurring:        m.IsRecurring,
		RecurringFrequency: frequency,
		Purpose:            m.Purpose,
		Notes:              m.Notes,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

// DonationFromEntity creates a DonationModel from a domain Donation entity.
func DonationFromEntity(d *entity.Donation) *DonationModel {
	var frequency *string
	if d.RecurringFrequency != nil {
		f := string(*d.RecurringFrequency)
		frequency = &f
	}

	return &DonationModel{
		ID:                 d.ID,
		DonorName:          d.DonorName,
		DonorEmail:         d.DonorEmail,
		Amount:             d.Amount,
		DonationDate:       *civilDate(&d.DonationDate),
		IsAnonymous:        d.IsAnonymous,
		IsRecurring:        d.IsRecurring,
		RecurringFrequency: frequency,
		Purpose:            d.Purpose,
		Notes:              d.Notes,
		CreatedAt:          d.CreatedAt,
		UpdatedAt:          d.UpdatedAt,
	}
}
