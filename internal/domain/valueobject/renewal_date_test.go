package valueobject

import (
	"errors"
	"testing"
	"time"

	domainerror "github.com/sponsor-tracker/backend/internal/domain/error"
)

func TestCalculateRenewalDate(t *testing.T) {
	tests := []struct {
		name     string
		payment  string
		expected string
	}{
		{name: "mid month rolls to month end", payment: "2025-04-06", expected: "2026-04-30"},
		{name: "leap day normalizes to feb 28", payment: "2024-02-29", expected: "2025-02-28"},
		{name: "already month end", payment: "2025-01-31", expected: "2026-01-31"},
		{name: "into a leap february", payment: "2023-02-10", expected: "2024-02-29"},
		{name: "first of december", payment: "2025-12-01", expected: "2026-12-31"},
		{name: "thirty day month", payment: "2025-09-30", expected: "2026-09-30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CalculateRenewalDateString(tt.payment)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if FormatDate(got) != tt.expected {
				t.Errorf("CalculateRenewalDate(%s) = %s, want %s", tt.payment, FormatDate(got), tt.expected)
			}
		})
	}
}

func TestCalculateRenewalDateKeepsLocation(t *testing.T) {
	loc := time.FixedZone("NZST", 12*3600)
	payment := time.Date(2025, time.April, 6, 22, 15, 0, 0, loc)

	got, err := CalculateRenewalDate(payment)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Location() != loc {
		t.Errorf("location = %s, want %s", got.Location(), loc)
	}
	if got.Year() != 2026 || got.Month() != time.April || got.Day() != 30 {
		t.Errorf("got %s, want 2026-04-30", got)
	}
}

func TestCalculateRenewalDateInvalid(t *testing.T) {
	if _, err := CalculateRenewalDate(time.Time{}); !errors.Is(err, domainerror.ErrInvalidDate) {
		t.Errorf("zero payment date: expected ErrInvalidDate, got %v", err)
	}

	for _, input := range []string{"2025-02-30", "2025-13-01", "not-a-date", "", "2025/04/06"} {
		_, err := CalculateRenewalDateString(input)
		var dateErr *domainerror.InvalidDateError
		if !errors.As(err, &dateErr) {
			t.Errorf("%q: expected *InvalidDateError, got %v", input, err)
			continue
		}
		if dateErr.Code != domainerror.ErrCodeInvalidDate {
			t.Errorf("%q: code = %s", input, dateErr.Code)
		}
	}
}

func TestAddOneYear(t *testing.T) {
	got := AddOneYear(date(2024, time.February, 29))
	if FormatDate(got) != "2025-02-28" {
		t.Errorf("AddOneYear(2024-02-29) = %s", FormatDate(got))
	}

	got = AddOneYear(date(2027, time.February, 28))
	if FormatDate(got) != "2028-02-28" {
		t.Errorf("AddOneYear(2027-02-28) = %s", FormatDate(got))
	}
}

func TestDaysBetween(t *testing.T) {
	today := time.Date(2025, time.March, 8, 23, 0, 0, 0, time.UTC)

	tests := []struct {
		to       time.Time
		expected int
	}{
		{to: date(2025, time.March, 8), expected: 0},
		{to: date(2025, time.March, 9), expected: 1},
		{to: date(2025, time.March, 7), expected: -1},
		{to: date(2025, time.April, 7), expected: 30},
		{to: date(2026, time.March, 8), expected: 365},
	}

	for _, tt := range tests {
		if got := DaysBetween(today, tt.to); got != tt.expected {
			t.Errorf("DaysBetween(%s, %s) = %d, want %d", FormatDate(today), FormatDate(tt.to), got, tt.expected)
		}
	}
}
