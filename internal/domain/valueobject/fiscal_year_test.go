package valueobject

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	domainerror "github.com/sponsor-tracker/backend/internal/domain/error"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCurrentFiscalYear(t *testing.T) {
	tests := []struct {
		name     string
		today    time.Time
		expected FiscalYear
	}{
		{name: "last day of fiscal year", today: date(2025, time.June, 30), expected: FiscalYear{2024, 2025}},
		{name: "first day of fiscal year", today: date(2025, time.July, 1), expected: FiscalYear{2025, 2026}},
		{name: "january", today: date(2026, time.January, 15), expected: FiscalYear{2025, 2026}},
		{name: "december", today: date(2025, time.December, 31), expected: FiscalYear{2025, 2026}},
		{
			name:     "late evening june 30 in a western zone",
			today:    time.Date(2025, time.June, 30, 23, 30, 0, 0, time.FixedZone("PDT", -7*3600)),
			expected: FiscalYear{2024, 2025},
		},
		{
			name:     "midnight july 1 in an eastern zone",
			today:    time.Date(2025, time.July, 1, 0, 0, 0, 0, time.FixedZone("AEST", 10*3600)),
			expected: FiscalYear{2025, 2026},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CurrentFiscalYear(tt.today)
			if got != tt.expected {
				t.Errorf("CurrentFiscalYear(%s) = %s, want %s", tt.today, got, tt.expected)
			}
		})
	}
}

func TestCurrentFiscalYearEveryMonth(t *testing.T) {
	for year := 2019; year <= 2030; year++ {
		for month := time.January; month <= time.December; month++ {
			got := CurrentFiscalYear(date(year, month, 10))
			want := FiscalYear{year - 1, year}
			if month >= time.July {
				want = FiscalYear{year, year + 1}
			}
			if got != want {
				t.Fatalf("CurrentFiscalYear(%d-%02d) = %s, want %s", year, month, got, want)
			}
			if !got.Valid() {
				t.Fatalf("fiscal year %s violates end == start+1", got)
			}
		}
	}
}

func TestParseFiscalYear(t *testing.T) {
	tests := []struct {
		input    string
		expected FiscalYear
		wantErr  bool
	}{
		{input: "2025/2026", expected: FiscalYear{2025, 2026}},
		{input: "2025/26", expected: FiscalYear{2025, 2026}},
		{input: " 1999/00 ", expected: FiscalYear{1999, 2000}},
		{input: "2025/2027", wantErr: true},
		{input: "2025-2026", wantErr: true},
		{input: "25/26", wantErr: true},
		{input: "2025/", wantErr: true},
		{input: "", wantErr: true},
		{input: "-001/0000", wantErr: true},
		{input: "0000/0001", wantErr: true},
		{input: "+025/2026", wantErr: true},
		{input: "2025/+6", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFiscalYear(tt.input)
			if tt.wantErr {
				if !errors.Is(err, domainerror.ErrInvalidFiscalYear) {
					t.Fatalf("expected ErrInvalidFiscalYear, got %v", err)
				}
				var dateErr *domainerror.InvalidDateError
				if !errors.As(err, &dateErr) {
					t.Fatalf("expected *InvalidDateError, got %T", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("ParseFiscalYear(%q) = %s, want %s", tt.input, got, tt.expected)
			}
		})
	}
}

func TestFiscalYearValid(t *testing.T) {
	if !NewFiscalYear(2025).Valid() {
		t.Error("2025/2026 should be valid")
	}
	for _, fy := range []FiscalYear{{}, {StartYear: -1, EndYear: 0}, {StartYear: 2025, EndYear: 2027}} {
		if fy.Valid() {
			t.Errorf("%s should not be valid", fy)
		}
	}
}

func TestFiscalYearDateRange(t *testing.T) {
	fy := NewFiscalYear(2025)
	start, end := fy.DateRange(time.UTC)

	if !start.Equal(date(2025, time.July, 1)) {
		t.Errorf("start = %s, want 2025-07-01", start)
	}
	if end.Year() != 2026 || end.Month() != time.June || end.Day() != 30 || end.Hour() != 23 || end.Minute() != 59 {
		t.Errorf("end = %s, want 2026-06-30 end of day", end)
	}
}

func TestFiscalYearRangeRoundTrip(t *testing.T) {
	for startYear := 1999; startYear <= 2040; startYear++ {
		fy := NewFiscalYear(startYear)
		start, end := fy.DateRange(time.UTC)

		if !IsDateInFiscalYear(start, fy) {
			t.Fatalf("%s: start %s not contained", fy, start)
		}
		if !IsDateInFiscalYear(end, fy) {
			t.Fatalf("%s: end %s not contained", fy, end)
		}
		if IsDateInFiscalYear(start.AddDate(0, 0, -1), fy) {
			t.Fatalf("%s: day before start contained", fy)
		}
		if IsDateInFiscalYear(StartOfDay(end).AddDate(0, 0, 1), fy) {
			t.Fatalf("%s: day after end contained", fy)
		}
	}
}

func TestFiscalYearContainsIgnoresZone(t *testing.T) {
	fy := NewFiscalYear(2025)
	eastern := time.FixedZone("EST", -5*3600)

	// 2025-07-01 00:00 local is still 2025-07-01 in its own calendar.
	if !fy.Contains(time.Date(2025, time.July, 1, 0, 0, 0, 0, eastern)) {
		t.Error("midnight july 1 local should belong to the fiscal year starting that day")
	}
	if fy.Contains(time.Date(2025, time.June, 30, 23, 59, 59, 0, eastern)) {
		t.Error("june 30 local should belong to the previous fiscal year")
	}
}

func TestFiscalYearOptions(t *testing.T) {
	today := date(2025, time.October, 16)

	got := FiscalYearOptions(3, 1, today)
	want := []FiscalYear{
		{2022, 2023},
		{2023, 2024},
		{2024, 2025},
		{2025, 2026},
		{2026, 2027},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("FiscalYearOptions mismatch (-want +got):\n%s", diff)
	}

	if got := FiscalYearOptions(-1, -4, today); len(got) != 1 || got[0] != (FiscalYear{2025, 2026}) {
		t.Errorf("negative counts should yield only the current year, got %v", got)
	}
}

func TestFiscalYearText(t *testing.T) {
	fy := NewFiscalYear(2024)
	text, err := fy.MarshalText()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(text) != "2024/2025" {
		t.Errorf("MarshalText = %s", text)
	}

	var parsed FiscalYear
	if err := parsed.UnmarshalText([]byte("2024/25")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if parsed != fy {
		t.Errorf("UnmarshalText = %s, want %s", parsed, fy)
	}
}
