package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sponsor-tracker/backend/internal/domain/valueobject"
)

// SponsorshipStatus represents the payment state of a sponsorship.
type SponsorshipStatus string

const (
	SponsorshipStatusPending   SponsorshipStatus = "Pending"
	SponsorshipStatusReceived  SponsorshipStatus = "Received"
	SponsorshipStatusOverdue   SponsorshipStatus = "Overdue"
	SponsorshipStatusCancelled SponsorshipStatus = "Cancelled"
)

// IsValid reports whether s is a known status.
func (s SponsorshipStatus) IsValid() bool {
	switch s {
	case SponsorshipStatusPending, SponsorshipStatusReceived, SponsorshipStatusOverdue, SponsorshipStatusCancelled:
		return true
	}
	return false
}

// SponsorshipType represents what a sponsor contributes.
type SponsorshipType string

const (
	SponsorshipTypeMonetary SponsorshipType = "Monetary"
	SponsorshipTypeInKind   SponsorshipType = "In-Kind"
	SponsorshipTypeBoth     SponsorshipType = "Both"
)

// IsValid reports whether t is a known sponsorship type.
func (t SponsorshipType) IsValid() bool {
	switch t {
	case SponsorshipTypeMonetary, SponsorshipTypeInKind, SponsorshipTypeBoth:
		return true
	}
	return false
}

// Sponsorship represents one sponsor's commitment for a fiscal year.
type Sponsorship struct {
	ID                  uuid.UUID
	SponsorID           uuid.UUID
	TierID              *uuid.UUID
	TierName            string // Empty when no tier is assigned
	FiscalYear          valueobject.FiscalYear
	Type                SponsorshipType
	MonetaryAmount      decimal.Decimal
	InKindValue         decimal.Decimal
	InKindDescription   string
	PaymentDate         *time.Time
	ExpirationDate      *time.Time
	Status              SponsorshipStatus
	ScotMendeFund       bool
	ScotMendeAmount     decimal.Decimal
	RenewalReminderSent bool
	Notes               string
	CreatedAt           time.Time
	UpdatedAt           time.Time

	Sponsor *Sponsor // Optional, loaded with the record
}

// NewSponsorship creates a new pending Sponsorship entity.
func NewSponsorship(
	sponsorID uuid.UUID,
	fiscalYear valueobject.FiscalYear,
	sponsorshipType SponsorshipType,
	monetaryAmount decimal.Decimal,
	inKindValue decimal.Decimal,
	now time.Time,
) *Sponsorship {
	return &Sponsorship{
		ID:             uuid.New(),
		SponsorID:      sponsorID,
		FiscalYear:     fiscalYear,
		Type:           sponsorshipType,
		MonetaryAmount: monetaryAmount,
		InKindValue:    inKindValue,
		Status:         SponsorshipStatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// TotalValue is the monetary amount plus the in-kind value.
func (s *Sponsorship) TotalValue() decimal.Decimal {
	return s.MonetaryAmount.Add(s.InKindValue)
}

// EffectiveTierName returns the tier name, or UnknownTierName when none is set.
func (s *Sponsorship) EffectiveTierName() string {
	if s.TierName == "" {
		return UnknownTierName
	}
	return s.TierName
}

// SponsorName returns the organization name of the loaded sponsor, if any.
func (s *Sponsorship) SponsorName() string {
	if s.Sponsor == nil {
		return ""
	}
	return s.Sponsor.OrganizationName
}

// RecordPayment marks the sponsorship as received on paymentDate and computes the
// renewal date from it. A fresh payment resets the reminder flag.
func (s *Sponsorship) RecordPayment(paymentDate time.Time, now time.Time) error {
	expiration, err := valueobject.CalculateRenewalDate(paymentDate)
	if err != nil {
		return err
	}

	paid := valueobject.StartOfDay(paymentDate)
	s.PaymentDate = &paid
	s.ExpirationDate = &expiration
	s.Status = SponsorshipStatusReceived
	s.RenewalReminderSent = false
	s.UpdatedAt = now
	return nil
}

// SetStatus changes the status of the sponsorship.
func (s *Sponsorship) SetStatus(status SponsorshipStatus, now time.Time) {
	s.Status = status
	s.UpdatedAt = now
}

// MarkReminderSent records that a renewal reminder was queued for the sponsorship.
func (s *Sponsorship) MarkReminderSent(now time.Time) {
	s.RenewalReminderSent = true
	s.UpdatedAt = now
}
