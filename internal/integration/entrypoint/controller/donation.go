package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sponsor-tracker/backend/internal/application/usecase/donation"
	"github.com/sponsor-tracker/backend/internal/domain/entity"
	domainerror "github.com/sponsor-tracker/backend/internal/domain/error"
	"github.com/sponsor-tracker/backend/internal/domain/valueobject"
	"github.com/sponsor-tracker/backend/internal/integration/entrypoint/dto"
)

// DonationController handles donation endpoints.
type DonationController struct {
	listUseCase   *donation.ListDonationsUseCase
	createUseCase *donation.CreateDonationUseCase
}

// NewDonationController creates a new donation controller instance.
func NewDonationController(listUseCase *donation.ListDonationsUseCase, createUseCase *donation.CreateDonationUseCase) *DonationController {
	return &DonationController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
	}
}

// List handles GET /donations requests for one fiscal year (default current).
func (c *DonationController) List(ctx *gin.Context) {
	var input donation.ListDonationsInput
	if raw := ctx.Query("fiscal_year"); raw != "" {
		fy, err := valueobject.ParseFiscalYear(raw)
		if err != nil {
			handleError(ctx, err)
			return
		}
		input.FiscalYear = &fy
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDonationListResponse(output))
}

// Create handles POST /donations requests.
func (c *DonationController) Create(ctx *gin.Context) {
	var req dto.CreateDonationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body: "+err.Error(), string(domainerror.ErrCodeMissingDonationFields))
		return
	}

	donatedOn, err := valueobject.ParseDate(req.DonationDate)
	if err != nil {
		handleError(ctx, err)
		return
	}

	input := donation.CreateDonationInput{
		DonorName:    req.DonorName,
		DonorEmail:   req.DonorEmail,
		Amount:       req.Amount,
		DonationDate: donatedOn,
		IsAnonymous:  req.IsAnonymous,
		IsRecurring:  req.IsRecurring,
		Purpose:      req.Purpose,
		Notes:        req.Notes,
	}
	if req.RecurringFrequency != nil {
		f := entity.RecurringFrequency(*req.RecurringFrequency)
		input.RecurringFrequency = &f
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToDonationResponse(output.Donation))
}
