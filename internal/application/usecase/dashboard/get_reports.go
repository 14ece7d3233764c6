package dashboard

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/sponsor-tracker/backend/internal/application/adapter"
	"github.com/sponsor-tracker/backend/internal/domain/entity"
	domainerror "github.com/sponsor-tracker/backend/internal/domain/error"
	"github.com/sponsor-tracker/backend/internal/domain/valueobject"
)

// GetReportInput selects the fiscal year of a report.
type GetReportInput struct {
	FiscalYear *valueobject.FiscalYear // Optional, defaults to the current fiscal year
}

// GetTierReportUseCase builds the by-tier revenue report.
type GetTierReportUseCase struct {
	sponsorshipRepo adapter.SponsorshipRepository
	tierRepo        adapter.TierRepository
	clock           adapter.Clock
}

// NewGetTierReportUseCase creates a new GetTierReportUseCase instance.
func NewGetTierReportUseCase(sponsorshipRepo adapter.SponsorshipRepository, tierRepo adapter.TierRepository, clock adapter.Clock) *GetTierReportUseCase {
	return &GetTierReportUseCase{
		sponsorshipRepo: sponsorshipRepo,
		tierRepo:        tierRepo,
		clock:           clock,
	}
}

// Execute builds the report.
func (uc *GetTierReportUseCase) Execute(ctx context.Context, input GetReportInput) (*TierReport, error) {
	fy, err := reportFiscalYear(uc.clock, input.FiscalYear)
	if err != nil {
		return nil, err
	}

	var (
		sponsorships []*entity.Sponsorship
		tiers        []*entity.SponsorshipTier
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		sponsorships, err = uc.sponsorshipRepo.List(gctx, adapter.SponsorshipFilter{FiscalYear: &fy})
		return err
	})
	g.Go(func() error {
		var err error
		tiers, err = uc.tierRepo.List(gctx, false)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, reportUnavailable(err)
	}

	return AggregateByTier(sponsorships, tiers, fy), nil
}

// GetScotMendeReportUseCase builds the Scot Mende fund report.
type GetScotMendeReportUseCase struct {
	sponsorshipRepo adapter.SponsorshipRepository
	clock           adapter.Clock
}

// NewGetScotMendeReportUseCase creates a new GetScotMendeReportUseCase instance.
func NewGetScotMendeReportUseCase(sponsorshipRepo adapter.SponsorshipRepository, clock adapter.Clock) *GetScotMendeReportUseCase {
	return &GetScotMendeReportUseCase{
		sponsorshipRepo: sponsorshipRepo,
		clock:           clock,
	}
}

// Execute builds the report.
func (uc *GetScotMendeReportUseCase) Execute(ctx context.Context, input GetReportInput) (*ScotMendeReport, error) {
	fy, err := reportFiscalYear(uc.clock, input.FiscalYear)
	if err != nil {
		return nil, err
	}

	sponsorships, err := uc.sponsorshipRepo.List(ctx, adapter.SponsorshipFilter{FiscalYear: &fy})
	if err != nil {
		return nil, reportUnavailable(err)
	}
	return AggregateScotMende(sponsorships, fy), nil
}

// GetPaymentTimelineUseCase builds the monthly payment timeline.
type GetPaymentTimelineUseCase struct {
	sponsorshipRepo adapter.SponsorshipRepository
	clock           adapter.Clock
}

// NewGetPaymentTimelineUseCase creates a new GetPaymentTimelineUseCase instance.
func NewGetPaymentTimelineUseCase(sponsorshipRepo adapter.SponsorshipRepository, clock adapter.Clock) *GetPaymentTimelineUseCase {
	return &GetPaymentTimelineUseCase{
		sponsorshipRepo: sponsorshipRepo,
		clock:           clock,
	}
}

// Execute builds the timeline.
func (uc *GetPaymentTimelineUseCase) Execute(ctx context.Context, input GetReportInput) (*PaymentTimeline, error) {
	fy, err := reportFiscalYear(uc.clock, input.FiscalYear)
	if err != nil {
		return nil, err
	}

	status := entity.SponsorshipStatusReceived
	sponsorships, err := uc.sponsorshipRepo.List(ctx, adapter.SponsorshipFilter{FiscalYear: &fy, Status: &status})
	if err != nil {
		return nil, reportUnavailable(err)
	}
	return AggregatePaymentTimeline(sponsorships, fy), nil
}

func reportFiscalYear(clock adapter.Clock, requested *valueobject.FiscalYear) (valueobject.FiscalYear, error) {
	fy := valueobject.CurrentFiscalYear(clock.Now())
	if requested != nil {
		fy = *requested
	}
	if !fy.Valid() {
		return valueobject.FiscalYear{}, domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidDashboardFiscalYear,
			"fiscal year must span two consecutive years",
			domainerror.ErrInvalidFiscalYear,
		)
	}
	return fy, nil
}

func reportUnavailable(err error) error {
	return domainerror.NewDashboardError(
		domainerror.ErrCodeDashboardInternalError,
		"failed to load report data",
		fmt.Errorf("%w: %v", domainerror.ErrSummaryUnavailable, err),
	)
}
