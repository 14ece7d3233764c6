package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RecurringFrequency represents how often a recurring donation repeats.
type RecurringFrequency string

const (
	RecurringMonthly   RecurringFrequency = "Monthly"
	RecurringQuarterly RecurringFrequency = "Quarterly"
	RecurringAnnually  RecurringFrequency = "Annually"
)

// IsValid reports whether f is a known frequency.
func (f RecurringFrequency) IsValid() bool {
	switch f {
	case RecurringMonthly, RecurringQuarterly, RecurringAnnually:
		return true
	}
	return false
}

// Donation represents a gift received outside of a sponsorship.
type Donation struct {
	ID                 uuid.UUID
	DonorName          string
	DonorEmail         string
	Amount             decimal.Decimal
	DonationDate       time.Time
	IsAnonymous        bool
	IsRecurring        bool
	RecurringFrequency *RecurringFrequency // Set only when IsRecurring
	Purpose            string
	Notes              string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// NewDonation creates a new Donation entity.
func NewDonation(donorName string, amount decimal.Decimal, donationDate time.Time, now time.Time) *Donation {
	return &Donation{
		ID:           uuid.New(),
		DonorName:    donorName,
		Amount:       amount,
		DonationDate: donationDate,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
