package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sponsor-tracker/backend/internal/application/usecase/calendar"
	domainerror "github.com/sponsor-tracker/backend/internal/domain/error"
	"github.com/sponsor-tracker/backend/internal/domain/valueobject"
	"github.com/sponsor-tracker/backend/internal/integration/entrypoint/dto"
)

// CalendarController handles fiscal calendar endpoints.
type CalendarController struct {
	fiscalYearUseCase  *calendar.GetFiscalYearUseCase
	renewalDateUseCase *calendar.CalculateRenewalDateUseCase
}

// NewCalendarController creates a new calendar controller instance.
func NewCalendarController(
	fiscalYearUseCase *calendar.GetFiscalYearUseCase,
	renewalDateUseCase *calendar.CalculateRenewalDateUseCase,
) *CalendarController {
	return &CalendarController{
		fiscalYearUseCase:  fiscalYearUseCase,
		renewalDateUseCase: renewalDateUseCase,
	}
}

// FiscalYear handles GET /calendar/fiscal-year requests.
// Query: date (YYYY-MM-DD, optional), years_back, years_forward.
func (c *CalendarController) FiscalYear(ctx *gin.Context) {
	var input calendar.GetFiscalYearInput

	if raw := ctx.Query("date"); raw != "" {
		date, err := valueobject.ParseDate(raw)
		if err != nil {
			handleError(ctx, err)
			return
		}
		input.Date = &date
	}

	var ok bool
	if input.YearsBack, ok = optionalInt(ctx, "years_back"); !ok {
		return
	}
	if input.YearsForward, ok = optionalInt(ctx, "years_forward"); !ok {
		return
	}

	output, err := c.fiscalYearUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToFiscalYearResponse(output))
}

// RenewalDate handles GET /calendar/renewal-date requests.
func (c *CalendarController) RenewalDate(ctx *gin.Context) {
	output, err := c.renewalDateUseCase.Execute(ctx.Request.Context(), calendar.CalculateRenewalDateInput{
		PaymentDate: ctx.Query("payment_date"),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRenewalDateResponse(output))
}

// optionalInt reads a non-negative integer query parameter. It writes a 400 and
// returns ok=false when the value is malformed.
func optionalInt(ctx *gin.Context, name string) (*int, bool) {
	raw := ctx.Query(name)
	if raw == "" {
		return nil, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		badRequest(ctx, name+" must be a non-negative integer", string(domainerror.ErrCodeInvalidDate))
		return nil, false
	}
	return &n, true
}
