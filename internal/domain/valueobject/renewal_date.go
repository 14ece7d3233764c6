package valueobject

import (
	"time"

	domainerror "github.com/sponsor-tracker/backend/internal/domain/error"
)

// AddOneYear moves t to the same month and day of the following year.
// February 29 becomes February 28 when the following year is not a leap year.
func AddOneYear(t time.Time) time.Time {
	year, month, day := t.Date()
	year++

	if last := DaysInMonth(year, month); day > last {
		day = last
	}

	return time.Date(year, month, day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// CalculateRenewalDate returns the date a sponsorship paid on paymentDate expires:
// one year later, rolled forward to the last day of that month.
//
// Example: paid 2025-04-06, renews 2026-04-30.
func CalculateRenewalDate(paymentDate time.Time) (time.Time, error) {
	if paymentDate.IsZero() {
		return time.Time{}, domainerror.NewInvalidDateError("", "payment date is required")
	}

	return EndOfMonth(AddOneYear(paymentDate)), nil
}

// CalculateRenewalDateString parses a YYYY-MM-DD payment date and computes its renewal date.
func CalculateRenewalDateString(paymentDate string) (time.Time, error) {
	parsed, err := ParseDate(paymentDate)
	if err != nil {
		return time.Time{}, err
	}
	return CalculateRenewalDate(parsed)
}
