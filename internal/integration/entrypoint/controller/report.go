package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sponsor-tracker/backend/internal/application/usecase/dashboard"
	domainerror "github.com/sponsor-tracker/backend/internal/domain/error"
	"github.com/sponsor-tracker/backend/internal/domain/valueobject"
	"github.com/sponsor-tracker/backend/internal/integration/entrypoint/dto"
)

// ReportController handles report endpoints.
type ReportController struct {
	tierUseCase      *dashboard.GetTierReportUseCase
	scotMendeUseCase *dashboard.GetScotMendeReportUseCase
	timelineUseCase  *dashboard.GetPaymentTimelineUseCase
}

// NewReportController creates a new report controller instance.
func NewReportController(
	tierUseCase *dashboard.GetTierReportUseCase,
	scotMendeUseCase *dashboard.GetScotMendeReportUseCase,
	timelineUseCase *dashboard.GetPaymentTimelineUseCase,
) *ReportController {
	return &ReportController{
		tierUseCase:      tierUseCase,
		scotMendeUseCase: scotMendeUseCase,
		timelineUseCase:  timelineUseCase,
	}
}

// ByTier handles GET /reports/by-tier requests.
func (c *ReportController) ByTier(ctx *gin.Context) {
	input, ok := reportInput(ctx)
	if !ok {
		return
	}

	report, err := c.tierUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTierReportResponse(report))
}

// ScotMende handles GET /reports/scot-mende requests.
func (c *ReportController) ScotMende(ctx *gin.Context) {
	input, ok := reportInput(ctx)
	if !ok {
		return
	}

	report, err := c.scotMendeUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToScotMendeReportResponse(report))
}

// PaymentTimeline handles GET /reports/payment-timeline requests.
func (c *ReportController) PaymentTimeline(ctx *gin.Context) {
	input, ok := reportInput(ctx)
	if !ok {
		return
	}

	timeline, err := c.timelineUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPaymentTimelineResponse(timeline))
}

func reportInput(ctx *gin.Context) (dashboard.GetReportInput, bool) {
	var input dashboard.GetReportInput
	if raw := ctx.Query("fiscal_year"); raw != "" {
		fy, err := valueobject.ParseFiscalYear(raw)
		if err != nil {
			badRequest(ctx, err.Error(), string(domainerror.ErrCodeInvalidDashboardFiscalYear))
			return input, false
		}
		input.FiscalYear = &fy
	}
	return input, true
}
