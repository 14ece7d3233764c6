package valueobject

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	domainerror "github.com/sponsor-tracker/backend/internal/domain/error"
)

// FiscalYearStartMonth is the first month of every fiscal year.
const FiscalYearStartMonth = time.July

// FiscalYear identifies a July 1 - June 30 accounting period by its two calendar years.
type FiscalYear struct {
	StartYear int
	EndYear   int
}

// NewFiscalYear returns the fiscal year that starts on July 1 of startYear.
func NewFiscalYear(startYear int) FiscalYear {
	return FiscalYear{StartYear: startYear, EndYear: startYear + 1}
}

// ParseFiscalYear parses "2025/2026" or the short form "2025/26".
func ParseFiscalYear(s string) (FiscalYear, error) {
	raw := strings.TrimSpace(s)
	parts := strings.Split(raw, "/")
	if len(parts) != 2 {
		return FiscalYear{}, domainerror.NewInvalidFiscalYearError(s, "fiscal year must look like 2025/2026")
	}

	start, err := strconv.Atoi(parts[0])
	if err != nil || len(parts[0]) != 4 || !allDigits(parts[0]) || start < 1 {
		return FiscalYear{}, domainerror.NewInvalidFiscalYearError(s, "fiscal year start must be a four digit year")
	}

	var end int
	if !allDigits(parts[1]) {
		return FiscalYear{}, domainerror.NewInvalidFiscalYearError(s, "fiscal year end must be a two or four digit year")
	}

	switch len(parts[1]) {
	case 4:
		end, err = strconv.Atoi(parts[1])
	case 2:
		var suffix int
		suffix, err = strconv.Atoi(parts[1])
		end = (start+1)/100*100 + suffix
	default:
		err = fmt.Errorf("unexpected end year length %d", len(parts[1]))
	}
	if err != nil {
		return FiscalYear{}, domainerror.NewInvalidFiscalYearError(s, "fiscal year end must be a two or four digit year")
	}

	if end != start+1 {
		return FiscalYear{}, domainerror.NewInvalidFiscalYearError(s, "fiscal year must span two consecutive years")
	}

	return FiscalYear{StartYear: start, EndYear: end}, nil
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

// MustParseFiscalYear is ParseFiscalYear for constants; it panics on bad input.
func MustParseFiscalYear(s string) FiscalYear {
	fy, err := ParseFiscalYear(s)
	if err != nil {
		panic(err)
	}
	return fy
}

// CurrentFiscalYear returns the fiscal year containing today, read from today's own
// calendar month and year.
func CurrentFiscalYear(today time.Time) FiscalYear {
	if today.Month() >= FiscalYearStartMonth {
		return NewFiscalYear(today.Year())
	}
	return NewFiscalYear(today.Year() - 1)
}

// FiscalYearOptions lists yearsBack past fiscal years, the current one and
// yearsForward future ones in ascending order.
func FiscalYearOptions(yearsBack, yearsForward int, today time.Time) []FiscalYear {
	if yearsBack < 0 {
		yearsBack = 0
	}
	if yearsForward < 0 {
		yearsForward = 0
	}

	current := CurrentFiscalYear(today)
	options := make([]FiscalYear, 0, yearsBack+yearsForward+1)
	for i := yearsBack; i > 0; i-- {
		options = append(options, NewFiscalYear(current.StartYear-i))
	}
	options = append(options, current)
	for i := 1; i <= yearsForward; i++ {
		options = append(options, NewFiscalYear(current.StartYear+i))
	}
	return options
}

// IsZero reports whether fy is the zero value.
func (fy FiscalYear) IsZero() bool {
	return fy.StartYear == 0 && fy.EndYear == 0
}

// Valid reports whether fy starts in year 1 or later and its end year directly
// follows the start year.
func (fy FiscalYear) Valid() bool {
	return fy.StartYear >= 1 && fy.EndYear == fy.StartYear+1
}

// String returns the canonical "2025/2026" form.
func (fy FiscalYear) String() string {
	return fmt.Sprintf("%d/%d", fy.StartYear, fy.EndYear)
}

// Next returns the following fiscal year.
func (fy FiscalYear) Next() FiscalYear {
	return NewFiscalYear(fy.StartYear + 1)
}

// Previous returns the preceding fiscal year.
func (fy FiscalYear) Previous() FiscalYear {
	return NewFiscalYear(fy.StartYear - 1)
}

// StartDate returns July 1 of the start year at midnight in loc.
func (fy FiscalYear) StartDate(loc *time.Location) time.Time {
	return time.Date(fy.StartYear, FiscalYearStartMonth, 1, 0, 0, 0, 0, loc)
}

// EndDate returns the last instant of June 30 of the end year in loc.
func (fy FiscalYear) EndDate(loc *time.Location) time.Time {
	return time.Date(fy.EndYear, time.June, 30, 23, 59, 59, int(time.Second-time.Nanosecond), loc)
}

// DateRange returns the inclusive [start, end] bounds of the fiscal year in loc.
func (fy FiscalYear) DateRange(loc *time.Location) (start, end time.Time) {
	if loc == nil {
		loc = time.UTC
	}
	return fy.StartDate(loc), fy.EndDate(loc)
}

// Contains reports whether date's calendar day falls inside the fiscal year.
func (fy FiscalYear) Contains(date time.Time) bool {
	loc := date.Location()
	return compareCivil(date, fy.StartDate(loc)) >= 0 && compareCivil(date, fy.EndDate(loc)) <= 0
}

// MarshalText implements encoding.TextMarshaler.
func (fy FiscalYear) MarshalText() ([]byte, error) {
	return []byte(fy.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (fy *FiscalYear) UnmarshalText(text []byte) error {
	parsed, err := ParseFiscalYear(string(text))
	if err != nil {
		return err
	}
	*fy = parsed
	return nil
}

// IsDateInFiscalYear is the free-function form of FiscalYear.Contains.
func IsDateInFiscalYear(date time.Time, fy FiscalYear) bool {
	return fy.Contains(date)
}
