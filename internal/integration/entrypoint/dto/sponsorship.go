package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/sponsor-tracker/backend/internal/domain/entity"
)

// CreateSponsorshipRequest represents the request body for sponsorship creation.
type CreateSponsorshipRequest struct {
	SponsorID         string          `json:"sponsor_id" binding:"required,uuid"`
	TierID            *string         `json:"tier_id,omitempty" binding:"omitempty,uuid"`
	FiscalYear        *string         `json:"fiscal_year,omitempty"`
	SponsorshipType   *string         `json:"sponsorship_type,omitempty" binding:"omitempty,oneof=Monetary In-Kind Both"`
	Status            *string         `json:"status,omitempty" binding:"omitempty,oneof=Pending Received Overdue Cancelled"`
	MonetaryAmount    decimal.Decimal `json:"monetary_amount"`
	InKindValue       decimal.Decimal `json:"in_kind_value"`
	InKindDescription string          `json:"in_kind_description,omitempty"`
	PaymentDate       *string         `json:"payment_date,omitempty"`
	ScotMendeFund     bool            `json:"scot_mende_fund"`
	ScotMendeAmount   decimal.Decimal `json:"scot_mende_amount"`
	Notes             string          `json:"notes,omitempty"`
}

// RecordPaymentRequest represents the request body for recording a payment.
type RecordPaymentRequest struct {
	PaymentDate string `json:"payment_date" binding:"required"`
}

// UpdateStatusRequest represents the request body for a status change.
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// SponsorshipResponse represents a single sponsorship in API responses.
type SponsorshipResponse struct {
	ID                  string    `json:"id"`
	SponsorID           string    `json:"sponsor_id"`
	SponsorName         string    `json:"sponsor_name"`
	TierID              *string   `json:"tier_id,omitempty"`
	TierName            string    `json:"tier_name"`
	FiscalYear          string    `json:"fiscal_year"`
	SponsorshipType     string    `json:"sponsorship_type"`
	MonetaryAmount      string    `json:"monetary_amount"`
	InKindValue         string    `json:"in_kind_value"`
	InKindDescription   string    `json:"in_kind_description"`
	TotalValue          string    `json:"total_value"`
	PaymentDate         *string   `json:"payment_date"`
	ExpirationDate      *string   `json:"expiration_date"`
	Status              string    `json:"status"`
	ScotMendeFund       bool      `json:"scot_mende_fund"`
	ScotMendeAmount     string    `json:"scot_mende_amount"`
	RenewalReminderSent bool      `json:"renewal_reminder_sent"`
	Notes               string    `json:"notes"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// SponsorshipListResponse represents the response for listing sponsorships.
type SponsorshipListResponse struct {
	Sponsorships []SponsorshipResponse `json:"sponsorships"`
}

// ToSponsorshipResponse converts a domain Sponsorship entity to a SponsorshipResponse DTO.
func ToSponsorshipResponse(s *entity.Sponsorship) SponsorshipResponse {
	response := SponsorshipResponse{
		ID:                  s.ID.String(),
		SponsorID:           s.SponsorID.String(),
		SponsorName:         s.SponsorName(),
		TierName:            s.EffectiveTierName(),
		FiscalYear:          s.FiscalYear.String(),
		SponsorshipType:     string(s.Type),
		MonetaryAmount:      Money(s.MonetaryAmount),
		InKindValue:         Money(s.InKindValue),
		InKindDescription:   s.InKindDescription,
		TotalValue:          Money(s.TotalValue()),
		PaymentDate:         datePtr(s.PaymentDate),
		ExpirationDate:      datePtr(s.ExpirationDate),
		Status:              string(s.Status),
		ScotMendeFund:       s.ScotMendeFund,
		ScotMendeAmount:     Money(s.ScotMendeAmount),
		RenewalReminderSent: s.RenewalReminderSent,
		Notes:               s.Notes,
		CreatedAt:           s.CreatedAt,
		UpdatedAt:           s.UpdatedAt,
	}
	if s.TierID != nil {
		id := s.TierID.String()
		response.TierID = &id
	}
	return response
}

// ToSponsorshipListResponse converts sponsorships to a SponsorshipListResponse DTO.
func ToSponsorshipListResponse(sponsorships []*entity.Sponsorship) SponsorshipListResponse {
	out := make([]SponsorshipResponse, len(sponsorships))
	for i, s := range sponsorships {
		out[i] = ToSponsorshipResponse(s)
	}
	return SponsorshipListResponse{Sponsorships: out}
}
