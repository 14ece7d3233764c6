package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sponsor-tracker/backend/internal/application/usecase/fiscalyear"
	domainerror "github.com/sponsor-tracker/backend/internal/domain/error"
	"github.com/sponsor-tracker/backend/internal/domain/valueobject"
	"github.com/sponsor-tracker/backend/internal/integration/entrypoint/dto"
)

// FiscalYearController handles fiscal year settings endpoints.
type FiscalYearController struct {
	listUseCase       *fiscalyear.ListSettingsUseCase
	getGoalUseCase    *fiscalyear.GetGoalUseCase
	upsertGoalUseCase *fiscalyear.UpsertGoalUseCase
	setCurrentUseCase *fiscalyear.SetCurrentUseCase
}

// NewFiscalYearController creates a new fiscal year controller instance.
func NewFiscalYearController(
	listUseCase *fiscalyear.ListSettingsUseCase,
	getGoalUseCase *fiscalyear.GetGoalUseCase,
	upsertGoalUseCase *fiscalyear.UpsertGoalUseCase,
	setCurrentUseCase *fiscalyear.SetCurrentUseCase,
) *FiscalYearController {
	return &FiscalYearController{
		listUseCase:       listUseCase,
		getGoalUseCase:    getGoalUseCase,
		upsertGoalUseCase: upsertGoalUseCase,
		setCurrentUseCase: setCurrentUseCase,
	}
}

// List handles GET /fiscal-years requests.
func (c *FiscalYearController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context(), fiscalyear.ListSettingsInput{})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToFiscalYearSettingListResponse(output))
}

// GetGoal handles GET /fiscal-years/:start/goal requests.
func (c *FiscalYearController) GetGoal(ctx *gin.Context) {
	fy, ok := pathFiscalYear(ctx)
	if !ok {
		return
	}

	output, err := c.getGoalUseCase.Execute(ctx.Request.Context(), fiscalyear.GetGoalInput{FiscalYear: fy})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"fiscal_year": output.FiscalYear.String(),
		"goal_amount": dto.Money(output.Goal),
		"is_default":  output.IsDefault,
	})
}

// UpsertGoal handles PUT /fiscal-years/:start/goal requests.
func (c *FiscalYearController) UpsertGoal(ctx *gin.Context) {
	fy, ok := pathFiscalYear(ctx)
	if !ok {
		return
	}

	var req dto.UpsertGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body: "+err.Error(), string(domainerror.ErrCodeInvalidGoalAmount))
		return
	}

	output, err := c.upsertGoalUseCase.Execute(ctx.Request.Context(), fiscalyear.UpsertGoalInput{
		FiscalYear: fy,
		GoalAmount: req.GoalAmount,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToFiscalYearSettingResponse(output.Setting))
}

// SetCurrent handles POST /fiscal-years/:start/current requests.
func (c *FiscalYearController) SetCurrent(ctx *gin.Context) {
	fy, ok := pathFiscalYear(ctx)
	if !ok {
		return
	}

	if err := c.setCurrentUseCase.Execute(ctx.Request.Context(), fiscalyear.SetCurrentInput{FiscalYear: fy}); err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// pathFiscalYear reads the :start path parameter, the fiscal year's start year.
func pathFiscalYear(ctx *gin.Context) (valueobject.FiscalYear, bool) {
	start, err := strconv.Atoi(ctx.Param("start"))
	if err != nil || start < 1900 || start > 9998 {
		badRequest(ctx, "Invalid fiscal year start: "+ctx.Param("start"), string(domainerror.ErrCodeFiscalYearInvalid))
		return valueobject.FiscalYear{}, false
	}
	return valueobject.NewFiscalYear(start), true
}
