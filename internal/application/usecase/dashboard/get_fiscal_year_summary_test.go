package dashboard

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sponsor-tracker/backend/internal/application/adapter"
	"github.com/sponsor-tracker/backend/internal/domain/entity"
	domainerror "github.com/sponsor-tracker/backend/internal/domain/error"
	"github.com/sponsor-tracker/backend/internal/domain/valueobject"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type fakeSponsorshipRepo struct {
	adapter.SponsorshipRepository
	records []*entity.Sponsorship
	calls   int
	mu      sync.Mutex
}

func (r *fakeSponsorshipRepo) List(_ context.Context, filter adapter.SponsorshipFilter) ([]*entity.Sponsorship, error) {
	r.mu.Lock()
	r.calls++
	r.mu.Unlock()

	var out []*entity.Sponsorship
	for _, s := range r.records {
		if filter.FiscalYear == nil || s.FiscalYear == *filter.FiscalYear {
			out = append(out, s)
		}
	}
	return out, nil
}

type fakeDonationRepo struct {
	adapter.DonationRepository
	donations []*entity.Donation
	err       error
}

func (r *fakeDonationRepo) ListBetween(_ context.Context, start, end time.Time) ([]*entity.Donation, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []*entity.Donation
	for _, d := range r.donations {
		if !d.DonationDate.Before(start) && !d.DonationDate.After(end) {
			out = append(out, d)
		}
	}
	return out, nil
}

type fakeFiscalYearRepo struct {
	adapter.FiscalYearRepository
	settings map[valueobject.FiscalYear]*entity.FiscalYearSetting
}

func (r *fakeFiscalYearRepo) FindByFiscalYear(_ context.Context, fy valueobject.FiscalYear) (*entity.FiscalYearSetting, error) {
	if s, ok := r.settings[fy]; ok {
		return s, nil
	}
	return nil, domainerror.ErrFiscalYearSettingNotFound
}

type memoryCache struct {
	entries     map[string][]byte
	invalidated []string
	failReads   bool
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: map[string][]byte{}}
}

func (c *memoryCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	if c.failReads {
		return nil, false, errors.New("connection refused")
	}
	v, ok := c.entries[key]
	return v, ok, nil
}

func (c *memoryCache) Set(_ context.Context, key string, payload []byte, _ time.Duration) error {
	c.entries[key] = payload
	return nil
}

func (c *memoryCache) InvalidateFiscalYear(_ context.Context, fiscalYear string) error {
	c.invalidated = append(c.invalidated, fiscalYear)
	return nil
}

func (c *memoryCache) Ping(_ context.Context) error { return nil }

func newSummaryUseCase(sponsorships *fakeSponsorshipRepo, donations *fakeDonationRepo, settings *fakeFiscalYearRepo, cache adapter.SummaryCache) *GetFiscalYearSummaryUseCase {
	return NewGetFiscalYearSummaryUseCase(
		sponsorships, donations, settings, cache,
		fixedClock{now: day(2025, time.October, 16)},
		entity.DefaultFiscalYearGoal,
		time.Minute,
	)
}

func TestGetFiscalYearSummaryDefaultsAndCache(t *testing.T) {
	sponsorships := &fakeSponsorshipRepo{records: []*entity.Sponsorship{
		paidOn(sponsorship(uuid.New(), entity.SponsorshipStatusReceived, "Gold", 1150, 0, 0), day(2025, time.September, 1)),
		sponsorship(uuid.New(), entity.SponsorshipStatusReceived, "Gold", 9999, 0, 0),
	}}
	sponsorships.records[1].FiscalYear = valueobject.NewFiscalYear(2024)
	donations := &fakeDonationRepo{donations: []*entity.Donation{donation(1150, day(2026, time.March, 3))}}
	cache := newMemoryCache()
	uc := newSummaryUseCase(sponsorships, donations, &fakeFiscalYearRepo{}, cache)

	out, err := uc.Execute(context.Background(), GetFiscalYearSummaryInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Cached {
		t.Error("first call should not be served from cache")
	}
	if out.Summary.FiscalYear != fy2025 {
		t.Errorf("FiscalYear = %s, want current %s", out.Summary.FiscalYear, fy2025)
	}
	if !out.Summary.Goal.Equal(decimal.NewFromInt(11500)) {
		t.Errorf("Goal = %s, want default 11500", out.Summary.Goal)
	}
	if !out.Summary.ProgressPercent.Equal(decimal.NewFromInt(20)) {
		t.Errorf("ProgressPercent = %s, want 20", out.Summary.ProgressPercent)
	}

	again, err := uc.Execute(context.Background(), GetFiscalYearSummaryInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !again.Cached || sponsorships.calls != 1 {
		t.Errorf("second call should hit the cache (cached=%v, loads=%d)", again.Cached, sponsorships.calls)
	}
	if !again.Summary.GrandTotal.Equal(out.Summary.GrandTotal) || len(again.Summary.RecentTransactions) != 1 {
		t.Errorf("cached summary differs: %+v", again.Summary)
	}
}

func TestGetFiscalYearSummaryStoredGoal(t *testing.T) {
	fy := valueobject.NewFiscalYear(2023)
	settings := &fakeFiscalYearRepo{settings: map[valueobject.FiscalYear]*entity.FiscalYearSetting{
		fy: {FiscalYear: fy, GoalAmount: decimal.NewFromInt(20000)},
	}}
	uc := newSummaryUseCase(&fakeSponsorshipRepo{}, &fakeDonationRepo{}, settings, newMemoryCache())

	out, err := uc.Execute(context.Background(), GetFiscalYearSummaryInput{FiscalYear: &fy})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Summary.Goal.Equal(decimal.NewFromInt(20000)) {
		t.Errorf("Goal = %s, want 20000", out.Summary.Goal)
	}
}

func TestGetFiscalYearSummaryCacheFailureIsNotFatal(t *testing.T) {
	cache := newMemoryCache()
	cache.failReads = true
	uc := newSummaryUseCase(&fakeSponsorshipRepo{}, &fakeDonationRepo{}, &fakeFiscalYearRepo{}, cache)

	if _, err := uc.Execute(context.Background(), GetFiscalYearSummaryInput{}); err != nil {
		t.Fatalf("cache failures must not fail the request: %v", err)
	}
}

func TestGetFiscalYearSummaryErrors(t *testing.T) {
	uc := newSummaryUseCase(&fakeSponsorshipRepo{}, &fakeDonationRepo{err: errors.New("timeout")}, &fakeFiscalYearRepo{}, newMemoryCache())

	_, err := uc.Execute(context.Background(), GetFiscalYearSummaryInput{})
	if !errors.Is(err, domainerror.ErrSummaryUnavailable) {
		t.Errorf("expected ErrSummaryUnavailable, got %v", err)
	}

	_, err = uc.Execute(context.Background(), GetFiscalYearSummaryInput{Statuses: []entity.SponsorshipStatus{"Paid"}})
	var dashErr *domainerror.DashboardError
	if !errors.As(err, &dashErr) || dashErr.Code != domainerror.ErrCodeInvalidStatusFilter {
		t.Errorf("expected invalid status filter error, got %v", err)
	}

	bad := valueobject.FiscalYear{StartYear: 2025, EndYear: 2027}
	_, err = uc.Execute(context.Background(), GetFiscalYearSummaryInput{FiscalYear: &bad})
	if !errors.Is(err, domainerror.ErrInvalidFiscalYear) {
		t.Errorf("expected ErrInvalidFiscalYear, got %v", err)
	}
}

func TestSummaryCacheKey(t *testing.T) {
	a := SummaryCacheKey(fy2025, []entity.SponsorshipStatus{entity.SponsorshipStatusReceived, entity.SponsorshipStatusPending})
	b := SummaryCacheKey(fy2025, []entity.SponsorshipStatus{entity.SponsorshipStatusPending, entity.SponsorshipStatusReceived})
	if a != b || a != "2025/2026:Pending,Received" {
		t.Errorf("keys = %q, %q", a, b)
	}
	if got := SummaryCacheKey(fy2025, nil); got != "2025/2026:all" {
		t.Errorf("unfiltered key = %q", got)
	}
}
