package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/sponsor-tracker/backend/internal/application/usecase/donation"
	"github.com/sponsor-tracker/backend/internal/domain/entity"
	"github.com/sponsor-tracker/backend/internal/domain/valueobject"
)

// CreateDonationRequest represents the request body for donation creation.
type CreateDonationRequest struct {
	DonorName          string          `json:"donor_name,omitempty" binding:"max=255"`
	DonorEmail         string          `json:"donor_email,omitempty" binding:"omitempty,email"`
	Amount             decimal.Decimal `json:"amount"`
	DonationDate       string          `json:"donation_date" binding:"required"`
	IsAnonymous        bool            `json:"is_anonymous"`
	IsRecurring        bool            `json:"is_recurring"`
	RecurringFrequency *string         `json:"recurring_frequency,omitempty"`
	Purpose            string          `json:"purpose,omitempty"`
	Notes              string          `json:"notes,omitempty"`
}

// DonationResponse represents a single donation in API responses.
type DonationResponse struct {
	ID                 string    `json:"id"`
	DonorName          string    `json:"donor_name"`
	DonorEmail         string    `json:"donor_email,omitempty"`
	Amount             string    `json:"amount"`
	DonationDate       string    `json:"donation_date"`
	IsAnonymous        bool      `json:"is_anonymous"`
	IsRecurring        bool      `json:"is_recurring"`
	RecurringFrequency *string   `json:"recurring_frequency"`
	Purpose            string    `json:"purpose"`
	Notes              string    `json:"notes"`
	CreatedAt          time.Time `json:"created_at"`
}

// DonationListResponse lists the donations of a fiscal year.
type DonationListResponse struct {
	FiscalYear string             `json:"fiscal_year"`
	Total      string             `json:"total"`
	Donations  []DonationResponse `json:"donations"`
}

// ToDonationResponse converts a domain Donation entity to a DonationResponse DTO.
// Anonymous donors are never exposed.
func ToDonationResponse(d *entity.Donation) DonationResponse {
	response := DonationResponse{
		ID:           d.ID.String(),
		DonorName:    d.DonorName,
		DonorEmail:   d.DonorEmail,
		Amount:       Money(d.Amount),
		DonationDate: valueobject.FormatDate(d.DonationDate),
		IsAnonymous:  d.IsAnonymous,
		IsRecurring:  d.IsRecurring,
		Purpose:      d.Purpose,
		Notes:        d.Notes,
		CreatedAt:    d.CreatedAt,
	}
	if d.IsAnonymous {
		response.DonorName = "Anonymous"
		response.DonorEmail = ""
	}
	if d.RecurringFrequency != nil {
		f := string(*d.RecurringFrequency)
		response.RecurringFrequency = &f
	}
	return response
}

// ToDonationListResponse converts the use case output to a DonationListResponse DTO.
func ToDonationListResponse(output *donation.ListDonationsOutput) DonationListResponse {
	out := make([]DonationResponse, len(output.Donations))
	for i, d := range output.Donations {
		out[i] = ToDonationResponse(d)
	}
	return DonationListResponse{
		FiscalYear: output.FiscalYear.String(),
		Total:      Money(output.Total),
		Donations:  out,
	}
}
