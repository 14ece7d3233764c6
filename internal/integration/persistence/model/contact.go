package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/sponsor-tracker/backend/internal/domain/entity"
)

// ContactModel represents the contacts table in the database.
type ContactModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	SponsorID   uuid.UUID `gorm:"type:uuid;not null;index"`
	ContactName string    `gorm:"type:varchar(255);not null;index"`
	Title       string    `gorm:"type:varchar(255)"`
	Email       string    `gorm:"type:varchar(255)"`
	Phone       string    `gorm:"type:varchar(50)"`
	IsPrimary   bool      `gorm:"not null;index"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

// TableName returns the table name for the ContactModel.
func (ContactModel) TableName() string {
	return "contacts"
}

// ToEntity converts a ContactModel to a domain Contact entity.
func (m *ContactModel) ToEntity() *entity.Contact {
	return &entity.Contact{
		ID:          m.ID,
		SponsorID:   m.SponsorID,
		ContactName: m.ContactName,
		Title:       m.Title,
		Email:       m.Email,
		Phone:       m.Phone,
		IsPrimary:   m.IsPrimary,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// ContactFromEntity creates a ContactModel from a domain Contact entity.
func ContactFromEntity(c *entity.Contact) *ContactModel {
	return &ContactModel{
		ID:          c.ID,
		SponsorID:   c.SponsorID,
		ContactName: c.ContactName,
		Title:       c.Title,
		Email:       c.Email,
		Phone:       c.Phone,
		IsPrimary:   c.IsPrimary,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
