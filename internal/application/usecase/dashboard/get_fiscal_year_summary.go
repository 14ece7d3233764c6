package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/sponsor-tracker/backend/internal/application/adapter"
	"github.com/sponsor-tracker/backend/internal/domain/entity"
	domainerror "github.com/sponsor-tracker/backend/internal/domain/error"
	"github.com/sponsor-tracker/backend/internal/domain/valueobject"
)

// GetFiscalYearSummaryInput represents the input for the dashboard summary.
type GetFiscalYearSummaryInput struct {
	FiscalYear *valueobject.FiscalYear // Optional, defaults to the current fiscal year
	Statuses   []entity.SponsorshipStatus
}

// GetFiscalYearSummaryOutput represents the dashboard summary.
type GetFiscalYearSummaryOutput struct {
	Summary *FiscalYearSummary
	Cached  bool
}

// GetFiscalYearSummaryUseCase loads a fiscal year's records and aggregates them.
type GetFiscalYearSummaryUseCase struct {
	sponsorshipRepo adapter.SponsorshipRepository
	donationRepo    adapter.DonationRepository
	fiscalYearRepo  adapter.FiscalYearRepository
	cache           adapter.SummaryCache
	clock           adapter.Clock
	defaultGoal     decimal.Decimal
	cacheTTL        time.Duration
}

// NewGetFiscalYearSummaryUseCase creates a new GetFiscalYearSummaryUseCase instance.
func NewGetFiscalYearSummaryUseCase(
	sponsorshipRepo adapter.SponsorshipRepository,
	donationRepo adapter.DonationRepository,
	fiscalYearRepo adapter.FiscalYearRepository,
	cache adapter.SummaryCache,
	clock adapter.Clock,
	defaultGoal decimal.Decimal,
	cacheTTL time.Duration,
) *GetFiscalYearSummaryUseCase {
	return &GetFiscalYearSummaryUseCase{
		sponsorshipRepo: sponsorshipRepo,
		donationRepo:    donationRepo,
		fiscalYearRepo:  fiscalYearRepo,
		cache:           cache,
		clock:           clock,
		defaultGoal:     defaultGoal,
		cacheTTL:        cacheTTL,
	}
}

// Execute returns the summary, serving it from the cache when possible.
func (uc *GetFiscalYearSummaryUseCase) Execute(ctx context.Context, input GetFiscalYearSummaryInput) (*GetFiscalYearSummaryOutput, error) {
	fy := valueobject.CurrentFiscalYear(uc.clock.Now())
	if input.FiscalYear != nil {
		fy = *input.FiscalYear
	}
	if !fy.Valid() {
		return nil, domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidDashboardFiscalYear,
			"fiscal year must span two consecutive years",
			domainerror.ErrInvalidFiscalYear,
		)
	}

	for _, status := range input.Statuses {
		if !status.IsValid() {
			return nil, domainerror.NewDashboardError(
				domainerror.ErrCodeInvalidStatusFilter,
				fmt.Sprintf("unknown status %q", status),
				domainerror.ErrInvalidStatusFilter,
			)
		}
	}

	key := SummaryCacheKey(fy, input.Statuses)
	if summary, ok := uc.fromCache(ctx, key); ok {
		return &GetFiscalYearSummaryOutput{Summary: summary, Cached: true}, nil
	}

	var (
		sponsorships []*entity.Sponsorship
		donations    []*entity.Donation
		goal         decimal.Decimal
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		sponsorships, err = uc.sponsorshipRepo.List(gctx, adapter.SponsorshipFilter{FiscalYear: &fy})
		if err != nil {
			return fmt.Errorf("failed to list sponsorships: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		start, end := fy.DateRange(time.UTC)
		var err error
		donations, err = uc.donationRepo.ListBetween(gctx, start, end)
		if err != nil {
			return fmt.Errorf("failed to list donations: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		goal, err = uc.goalFor(gctx, fy)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, domainerror.NewDashboardError(
			domainerror.ErrCodeDashboardInternalError,
			"failed to load fiscal year data",
			fmt.Errorf("%w: %v", domainerror.ErrSummaryUnavailable, err),
		)
	}

	summary := AggregateFiscalYear(sponsorships, donations, fy, goal, AggregateOptions{Statuses: input.Statuses})
	uc.toCache(ctx, key, summary)

	return &GetFiscalYearSummaryOutput{Summary: summary}, nil
}

func (uc *GetFiscalYearSummaryUseCase) goalFor(ctx context.Context, fy valueobject.FiscalYear) (decimal.Decimal, error) {
	setting, err := uc.fiscalYearRepo.FindByFiscalYear(ctx, fy)
	if errors.Is(err, domainerror.ErrFiscalYearSettingNotFound) {
		return uc.defaultGoal, nil
	}
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to load fiscal year goal: %w", err)
	}
	return setting.GoalAmount, nil
}

func (uc *GetFiscalYearSummaryUseCase) fromCache(ctx context.Context, key string) (*FiscalYearSummary, bool) {
	payload, found, err := uc.cache.Get(ctx, key)
	if err != nil {
		slog.Warn("Summary cache read failed", "key", key, "error", err)
		return nil, false
	}
	if !found {
		return nil, false
	}

	var summary FiscalYearSummary
	if err := json.Unmarshal(payload, &summary); err != nil {
		slog.Warn("Discarding unreadable cached summary", "key", key, "error", err)
		return nil, false
	}
	return &summary, true
}

func (uc *GetFiscalYearSummaryUseCase) toCache(ctx context.Context, key string, summary *FiscalYearSummary) {
	payload, err := json.Marshal(summary)
	if err != nil {
		slog.Warn("Failed to encode summary for cache", "key", key, "error", err)
		return
	}
	if err := uc.cache.Set(ctx, key, payload, uc.cacheTTL); err != nil {
		slog.Warn("Summary cache write failed", "key", key, "error", err)
	}
}

// SummaryCacheKey builds the cache key of a summary. The fiscal year comes first so
// every filter variant of a year shares the same prefix.
func SummaryCacheKey(fy valueobject.FiscalYear, statuses []entity.SponsorshipStatus) string {
	names := make([]string, 0, len(statuses))
	for _, s := range statuses {
		names = append(names, string(s))
	}
	sort.Strings(names)

	filter := "all"
	if len(names) > 0 {
		filter = strings.Join(names, ",")
	}
	return fy.String() + ":" + filter
}

// InvalidateSummaries drops the cached summaries of fy. Failures are only logged.
func InvalidateSummaries(ctx context.Context, cache adapter.SummaryCache, fy valueobject.FiscalYear) {
	if cache == nil {
		return
	}
	if err := cache.InvalidateFiscalYear(ctx, fy.String()); err != nil {
		slog.Warn("Summary cache invalidation failed", "fiscal_year", fy.String(), "error", err)
	}
}
