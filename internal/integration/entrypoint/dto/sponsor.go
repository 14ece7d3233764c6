package dto

import (
	"time"

	"github.com/sponsor-tracker/backend/internal/domain/entity"
)

// CreateSponsorRequest represents the request body for sponsor creation.
type CreateSponsorRequest struct {
	OrganizationName string   `json:"organization_name" binding:"required,max=255"`
	ContactName      string   `json:"contact_name,omitempty" binding:"max=255"`
	ContactEmail     string   `json:"contact_email,omitempty" binding:"omitempty,email"`
	ContactPhone     string   `json:"contact_phone,omitempty" binding:"max=50"`
	Website          string   `json:"website,omitempty" binding:"max=255"`
	Tags             []string `json:"tags,omitempty"`
	Notes            string   `json:"notes,omitempty"`
}

// SponsorResponse represents a single sponsor in API responses.
type SponsorResponse struct {
	ID               string    `json:"id"`
	OrganizationName string    `json:"organization_name"`
	ContactName      string    `json:"contact_name"`
	ContactEmail     string    `json:"contact_email"`
	ContactPhone     string    `json:"contact_phone"`
	Website          string    `json:"website"`
	IsActive         bool      `json:"is_active"`
	Tags             []string  `json:"tags"`
	Notes            string    `json:"notes"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// SponsorListResponse represents the response for listing sponsors.
type SponsorListResponse struct {
	Sponsors []SponsorResponse `json:"sponsors"`
}

// SponsorDetailResponse is a sponsor with its sponsorship history.
type SponsorDetailResponse struct {
	SponsorResponse
	Sponsorships []SponsorshipResponse `json:"sponsorships"`
}

// ToSponsorResponse converts a domain Sponsor entity to a SponsorResponse DTO.
func ToSponsorResponse(s *entity.Sponsor) SponsorResponse {
	tags := s.Tags
	if tags == nil {
		tags = []string{}
	}
	return SponsorResponse{
		ID:               s.ID.String(),
		OrganizationName: s.OrganizationName,
		ContactName:      s.ContactName,
		ContactEmail:     s.ContactEmail,
		ContactPhone:     s.ContactPhone,
		Website:          s.Website,
		IsActive:         s.IsActive,
		Tags:             tags,
		Notes:            s.Notes,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
}

// ToSponsorListResponse converts sponsors to a SponsorListResponse DTO.
func ToSponsorListResponse(sponsors []*entity.Sponsor) SponsorListResponse {
	out := make([]SponsorResponse, len(sponsors))
	for i, s := range sponsors {
		out[i] = ToSponsorResponse(s)
	}
	return SponsorListResponse{Sponsors: out}
}

// ToSponsorDetailResponse converts a sponsor and its sponsorships to a SponsorDetailResponse DTO.
func ToSponsorDetailResponse(s *entity.Sponsor, sponsorships []*entity.Sponsorship) SponsorDetailResponse {
	return SponsorDetailResponse{
		SponsorResponse: ToSponsorResponse(s),
		Sponsorships:    ToSponsorshipListResponse(sponsorships).Sponsorships,
	}
}
