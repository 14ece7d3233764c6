// Package valueobject contains domain value objects for the Sponsorship Tracker system.
package valueobject

import (
	"strings"
	"time"

	domainerror "github.com/sponsor-tracker/backend/internal/domain/error"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// ParseDate parses a calendar date in YYYY-MM-DD form. Full RFC3339 timestamps are
// accepted too; their calendar date in the given offset is kept.
// Non-calendar input such as "2025-02-30" fails with an InvalidDateError.
func ParseDate(s string) (time.Time, error) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return time.Time{}, domainerror.NewInvalidDateError(s, "date is empty")
	}

	if t, err := time.Parse(DateLayout, raw); err == nil {
		return t, nil
	}

	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return StartOfDay(t), nil
	}

	return time.Time{}, domainerror.NewInvalidDateError(s, "expected a calendar date in YYYY-MM-DD format")
}

// StartOfDay returns midnight of t's calendar date in t's location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfMonth returns midnight of the last calendar day of t's month.
func EndOfMonth(t time.Time) time.Time {
	// Day 0 of the next month normalizes to the last day of this one.
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location())
}

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// IsLeapYear reports whether year has a February 29.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysBetween returns the number of whole calendar days from "from" to "to".
// Only the calendar date of each instant is considered, so the result does not drift
// with time of day, location or daylight saving changes.
func DaysBetween(from, to time.Time) int {
	a := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}

// FormatDate renders t as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatDatePtr renders t as YYYY-MM-DD, or nil when t is nil.
func FormatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(DateLayout)
	return &s
}

// compareCivil orders two instants by calendar date only.
func compareCivil(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	switch {
	case ay != by:
		return cmpInt(ay, by)
	case am != bm:
		return cmpInt(int(am), int(bm))
	default:
		return cmpInt(ad, bd)
	}
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
