package donation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sponsor-tracker/backend/internal/application/adapter"
	"github.com/sponsor-tracker/backend/internal/domain/entity"
	domainerror "github.com/sponsor-tracker/backend/internal/domain/error"
	"github.com/sponsor-tracker/backend/internal/domain/valueobject"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type memoryDonations struct {
	donations []*entity.Donation
}

func (m *memoryDonations) Create(_ context.Context, d *entity.Donation) error {
	m.donations = append(m.donations, d)
	return nil
}

func (m *memoryDonations) ListBetween(_ context.Context, start, end time.Time) ([]*entity.Donation, error) {
	var out []*entity.Donation
	for _, d := range m.donations {
		if !d.DonationDate.Before(start) && !d.DonationDate.After(end) {
			out = append(out, d)
		}
	}
	return out, nil
}

type recordingCache struct {
	adapter.SummaryCache
	invalidated []string
}

func (c *recordingCache) InvalidateFiscalYear(_ context.Context, fiscalYear string) error {
	c.invalidated = append(c.invalidated, fiscalYear)
	return nil
}

func TestCreateDonationValidation(t *testing.T) {
	monthly := entity.RecurringMonthly
	weekly := entity.RecurringFrequency("Weekly")
	date := time.Date(2025, time.August, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input CreateDonationInput
		err   error
	}{
		{name: "zero amount", input: CreateDonationInput{DonorName: "Pat", Amount: decimal.Zero, DonationDate: date}, err: domainerror.ErrInvalidDonationAmount},
		{name: "negative amount", input: CreateDonationInput{DonorName: "Pat", Amount: decimal.NewFromInt(-5), DonationDate: date}, err: domainerror.ErrInvalidDonationAmount},
		{name: "missing donor", input: CreateDonationInput{Amount: decimal.NewFromInt(5), DonationDate: date}, err: domainerror.ErrDonorNameRequired},
		{name: "missing date", input: CreateDonationInput{DonorName: "Pat", Amount: decimal.NewFromInt(5)}, err: domainerror.ErrInvalidDate},
		{name: "recurring without frequency", input: CreateDonationInput{DonorName: "Pat", Amount: decimal.NewFromInt(5), DonationDate: date, IsRecurring: true}, err: domainerror.ErrInvalidRecurringFrequency},
		{name: "frequency without recurring", input: CreateDonationInput{DonorName: "Pat", Amount: decimal.NewFromInt(5), DonationDate: date, RecurringFrequency: &monthly}, err: domainerror.ErrInvalidRecurringFrequency},
		{name: "unknown frequency", input: CreateDonationInput{DonorName: "Pat", Amount: decimal.NewFromInt(5), DonationDate: date, IsRecurring: true, RecurringFrequency: &weekly}, err: domainerror.ErrInvalidRecurringFrequency},
		{name: "anonymous without name", input: CreateDonationInput{IsAnonymous: true, Amount: decimal.NewFromInt(5), DonationDate: date}},
		{name: "monthly recurring", input: CreateDonationInput{DonorName: "Pat", Amount: decimal.NewFromInt(5), DonationDate: date, IsRecurring: true, RecurringFrequency: &monthly}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewCreateDonationUseCase(&memoryDonations{}, &recordingCache{}, fixedClock{now: date})
			_, err := uc.Execute(context.Background(), tt.input)
			if tt.err == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.err) {
				t.Fatalf("expected %v, got %v", tt.err, err)
			}
		})
	}
}

func TestCreateAndListDonations(t *testing.T) {
	repo := &memoryDonations{}
	cache := &recordingCache{}
	clock := fixedClock{now: time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC)}
	create := NewCreateDonationUseCase(repo, cache, clock)
	list := NewListDonationsUseCase(repo, clock)

	for _, d := range []struct {
		amount int64
		date   time.Time
	}{
		{100, time.Date(2025, time.July, 1, 9, 30, 0, 0, time.UTC)},
		{250, time.Date(2026, time.June, 30, 0, 0, 0, 0, time.UTC)},
		{999, time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC)},
	} {
		if _, err := create.Execute(context.Background(), CreateDonationInput{DonorName: "Pat", Amount: decimal.NewFromInt(d.amount), DonationDate: d.date}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if len(cache.invalidated) != 3 || cache.invalidated[0] != "2025/2026" || cache.invalidated[2] != "2024/2025" {
		t.Errorf("invalidated = %v", cache.invalidated)
	}

	out, err := list.Execute(context.Background(), ListDonationsInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.FiscalYear != valueobject.NewFiscalYear(2025) || len(out.Donations) != 2 || !out.Total.Equal(decimal.NewFromInt(350)) {
		t.Errorf("fiscal year %s: %d donations totalling %s", out.FiscalYear, len(out.Donations), out.Total)
	}
}
