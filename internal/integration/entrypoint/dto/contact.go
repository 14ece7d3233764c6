package dto

import (
	"time"

	"github.com/sponsor-tracker/backend/internal/application/usecase/sponsor"
	"github.com/sponsor-tracker/backend/internal/domain/entity"
)

// CreateContactRequest represents the request body for adding a sponsor contact.
type CreateContactRequest struct {
	ContactName string `json:"contact_name" binding:"required,max=255"`
	Title       string `json:"title,omitempty" binding:"max=100"`
	Email       string `json:"email,omitempty" binding:"omitempty,email"`
	Phone       string `json:"phone,omitempty" binding:"max=50"`
	IsPrimary   bool   `json:"is_primary"`
}

// ContactResponse represents a single contact in API responses.
type ContactResponse struct {
	ID               string    `json:"id"`
	SponsorID        string    `json:"sponsor_id"`
	OrganizationName string    `json:"organization_name,omitempty"`
	ContactName      string    `json:"contact_name"`
	Title            string    `json:"title"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone"`
	IsPrimary        bool      `json:"is_primary"`
	CreatedAt        time.Time `json:"created_at"`
}

// ContactStatsResponse summarizes a contact listing.
type ContactStatsResponse struct {
	Total     int `json:"total"`
	Primary   int `json:"primary"`
	WithEmail int `json:"with_email"`
	WithPhone int `json:"with_phone"`
}

// ContactListResponse represents the response for listing contacts.
type ContactListResponse struct {
	Contacts []ContactResponse    `json:"contacts"`
	Stats    ContactStatsResponse `json:"stats"`
}

// ToContactResponse converts a domain Contact entity to a ContactResponse DTO.
func ToContactResponse(c *entity.Contact, s *entity.Sponsor) ContactResponse {
	resp := ContactResponse{
		ID:          c.ID.String(),
		SponsorID:   c.SponsorID.String(),
		ContactName: c.ContactName,
		Title:       c.Title,
		Email:       c.Email,
		Phone:       c.Phone,
		IsPrimary:   c.IsPrimary,
		CreatedAt:   c.CreatedAt,
	}
	if s != nil {
		resp.OrganizationName = s.OrganizationName
	}
	return resp
}

// ToContactListResponse converts the list contacts use case output to its response DTO.
func ToContactListResponse(output *sponsor.ListContactsOutput) ContactListResponse {
	contacts := make([]ContactResponse, len(output.Contacts))
	for i, c := range output.Contacts {
		contacts[i] = ToContactResponse(c.Contact, c.Sponsor)
	}
	return ContactListResponse{
		Contacts: contacts,
		Stats: ContactStatsResponse{
			Total:     output.Stats.Total,
			Primary:   output.Stats.Primary,
			WithEmail: output.Stats.WithEmail,
			WithPhone: output.Stats.WithPhone,
		},
	}
}
