// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/sponsor-tracker/backend/internal/domain/entity"
)

// SponsorModel represents the sponsors table in the database.
type SponsorModel struct {
	ID               uuid.UUID      `gorm:"type:uuid;primaryKey"`
	OrganizationName string         `gorm:"type:varchar(255);not null;index"`
	ContactName      string         `gorm:"type:varchar(255)"`
	ContactEmail     string         `gorm:"type:varchar(255)"`
	ContactPhone     string         `gorm:"type:varchar(50)"`
	Website          string         `gorm:"type:varchar(255)"`
	IsActive         bool           `gorm:"not null;index"`
	Tags             pq.StringArray `gorm:"type:text[]"`
	Notes            string         `gorm:"type:text"`
	CreatedAt        time.Time      `gorm:"not null"`
	UpdatedAt        time.Time      `gorm:"not null"`

	// Relationships (not loaded by default, use Preload)
	Contacts []ContactModel `gorm:"foreignKey:SponsorID;references:ID"`
}

// TableName returns the table name for the SponsorModel.
func (SponsorModel) TableName() string {
	return "sponsors"
}

// ToEntity converts a SponsorModel to a domain Sponsor entity. The primary contact is
// set when Contacts was preloaded.
func (m *SponsorModel) ToEntity() *entity.Sponsor {
	tags := make([]string, len(m.Tags))
	copy(tags, m.Tags)

	var primary *entity.Contact
	for i := range m.Contacts {
		if m.Contacts[i].IsPrimary {
			primary = m.Contacts[i].ToEntity()
			break
		}
	}

	return &entity.Sponsor{
		ID:               m.ID,
		OrganizationName: m.OrganizationName,
		ContactName:      m.ContactName,
		ContactEmail:     m.ContactEmail,
		ContactPhone:     m.ContactPhone,
		Website:          m.Website,
		IsActive:         m.IsActive,
		Tags:             tags,
		Notes:            m.Notes,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
		PrimaryContact:   primary,
	}
}

// SponsorFromEntity creates a SponsorModel from a domain Sponsor entity.
func SponsorFromEntity(s *entity.Sponsor) *SponsorModel {
	return &SponsorModel{
		ID:               s.ID,
		OrganizationName: s.OrganizationName,
		ContactName:      s.ContactName,
		ContactEmail:     s.ContactEmail,
		ContactPhone:     s.ContactPhone,
		Website:          s.Website,
		IsActive:         s.IsActive,
		Tags:             pq.StringArray(s.Tags),
		Notes:            s.Notes,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
}
