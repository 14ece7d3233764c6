package controller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sponsor-tracker/backend/internal/application/usecase/dashboard"
	"github.com/sponsor-tracker/backend/internal/domain/entity"
	domainerror "github.com/sponsor-tracker/backend/internal/domain/error"
	"github.com/sponsor-tracker/backend/internal/domain/valueobject"
	"github.com/sponsor-tracker/backend/internal/integration/entrypoint/dto"
)

// DashboardController handles dashboard endpoints.
type DashboardController struct {
	summaryUseCase *dashboard.GetFiscalYearSummaryUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(summaryUseCase *dashboard.GetFiscalYearSummaryUseCase) *DashboardController {
	return &DashboardController{summaryUseCase: summaryUseCase}
}

// Summary handles GET /dashboard/summary requests.
// Query: fiscal_year (default current), statuses (comma separated or repeated).
func (c *DashboardController) Summary(ctx *gin.Context) {
	var input dashboard.GetFiscalYearSummaryInput

	if raw := ctx.Query("fiscal_year"); raw != "" {
		fy, err := valueobject.ParseFiscalYear(raw)
		if err != nil {
			badRequest(ctx, err.Error(), string(domainerror.ErrCodeInvalidDashboardFiscalYear))
			return
		}
		input.FiscalYear = &fy
	}

	for _, raw := range ctx.QueryArray("statuses") {
		for _, status := range strings.Split(raw, ",") {
			if status = strings.TrimSpace(status); status != "" {
				input.Statuses = append(input.Statuses, entity.SponsorshipStatus(status))
			}
		}
	}

	output, err := c.summaryUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDashboardSummaryResponse(output))
}
