package calendar

import (
	"context"
	"errors"
	"testing"
	"time"

	domainerror "github.com/sponsor-tracker/backend/internal/domain/error"
	"github.com/sponsor-tracker/backend/internal/domain/valueobject"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

func TestGetFiscalYear(t *testing.T) {
	uc := NewGetFiscalYearUseCase(fixedClock{now: time.Date(2025, time.June, 30, 18, 0, 0, 0, time.UTC)}, 3, 1)

	out, err := uc.Execute(context.Background(), GetFiscalYearInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.FiscalYear != valueobject.NewFiscalYear(2024) {
		t.Errorf("FiscalYear = %s, want 2024/2025", out.FiscalYear)
	}
	if valueobject.FormatDate(out.StartDate) != "2024-07-01" || valueobject.FormatDate(out.EndDate) != "2025-06-30" {
		t.Errorf("range = %s..%s", out.StartDate, out.EndDate)
	}
	if len(out.Options) != 5 || out.Options[0] != valueobject.NewFiscalYear(2021) || out.Options[4] != valueobject.NewFiscalYear(2025) {
		t.Errorf("Options = %v", out.Options)
	}

	date := time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)
	zero := 0
	out, err = uc.Execute(context.Background(), GetFiscalYearInput{Date: &date, YearsBack: &zero, YearsForward: &zero})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.FiscalYear != valueobject.NewFiscalYear(2025) || len(out.Options) != 1 {
		t.Errorf("July 1 should open 2025/2026, got %s with %d options", out.FiscalYear, len(out.Options))
	}
}

func TestCalculateRenewalDate(t *testing.T) {
	uc := NewCalculateRenewalDateUseCase()

	out, err := uc.Execute(context.Background(), CalculateRenewalDateInput{PaymentDate: "2025-04-06"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if valueobject.FormatDate(out.RenewalDate) != "2026-04-30" {
		t.Errorf("RenewalDate = %s", valueobject.FormatDate(out.RenewalDate))
	}
	if out.FiscalYear != valueobject.NewFiscalYear(2024) {
		t.Errorf("FiscalYear = %s", out.FiscalYear)
	}

	_, err = uc.Execute(context.Background(), CalculateRenewalDateInput{PaymentDate: "2025-02-30"})
	if !errors.Is(err, domainerror.ErrInvalidDate) {
		t.Errorf("expected ErrInvalidDate, got %v", err)
	}
}

func TestCalculateRenewalDateMissingInput(t *testing.T) {
	_, err := NewCalculateRenewalDateUseCase().Execute(context.Background(), CalculateRenewalDateInput{PaymentDate: "  "})

	var dateErr *domainerror.InvalidDateError
	if !errors.As(err, &dateErr) || dateErr.Code != domainerror.ErrCodeMissingPaymentDate {
		t.Fatalf("expected missing payment date error, got %v", err)
	}
}
