package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Contact is a person reachable at a sponsor. A sponsor has at most one primary contact.
type Contact struct {
	ID          uuid.UUID
	SponsorID   uuid.UUID
	ContactName string
	Title       string
	Email       string
	Phone       string
	IsPrimary   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewContact creates a non-primary contact for sponsorID.
func NewContact(sponsorID uuid.UUID, name, title, email, phone string, now time.Time) *Contact {
	return &Contact{
		ID:          uuid.New(),
		SponsorID:   sponsorID,
		ContactName: strings.TrimSpace(name),
		Title:       strings.TrimSpace(title),
		Email:       strings.ToLower(strings.TrimSpace(email)),
		Phone:       strings.TrimSpace(phone),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// HasEmail reports whether the contact can receive email.
func (c *Contact) HasEmail() bool {
	return c != nil && c.Email != ""
}
