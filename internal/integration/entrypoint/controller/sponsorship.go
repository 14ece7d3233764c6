package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sponsor-tracker/backend/internal/application/usecase/sponsorship"
	"github.com/sponsor-tracker/backend/internal/domain/entity"
	domainerror "github.com/sponsor-tracker/backend/internal/domain/error"
	"github.com/sponsor-tracker/backend/internal/domain/valueobject"
	"github.com/sponsor-tracker/backend/internal/integration/entrypoint/dto"
)

// SponsorshipController handles sponsorship endpoints.
type SponsorshipController struct {
	listUseCase    *sponsorship.ListSponsorshipsUseCase
	createUseCase  *sponsorship.CreateSponsorshipUseCase
	paymentUseCase *sponsorship.RecordPaymentUseCase
	statusUseCase  *sponsorship.UpdateStatusUseCase
}

// NewSponsorshipController creates a new sponsorship controller instance.
func NewSponsorshipController(
	listUseCase *sponsorship.ListSponsorshipsUseCase,
	createUseCase *sponsorship.CreateSponsorshipUseCase,
	paymentUseCase *sponsorship.RecordPaymentUseCase,
	statusUseCase *sponsorship.UpdateStatusUseCase,
) *SponsorshipController {
	return &SponsorshipController{
		listUseCase:    listUseCase,
		createUseCase:  createUseCase,
		paymentUseCase: paymentUseCase,
		statusUseCase:  statusUseCase,
	}
}

// List handles GET /sponsorships requests.
// Query: fiscal_year (2025/2026), status, sponsor_id.
func (c *SponsorshipController) List(ctx *gin.Context) {
	var input sponsorship.ListSponsorshipsInput

	if raw := ctx.Query("fiscal_year"); raw != "" {
		fy, err := valueobject.ParseFiscalYear(raw)
		if err != nil {
			handleError(ctx, err)
			return
		}
		input.FiscalYear = &fy
	}

	if raw := ctx.Query("status"); raw != "" {
		status := entity.SponsorshipStatus(raw)
		if !status.IsValid() {
			badRequest(ctx, "Invalid status: "+raw, string(domainerror.ErrCodeInvalidSponsorshipStatus))
			return
		}
		input.Status = &status
	}

	if raw := ctx.Query("sponsor_id"); raw != "" {
		sponsorID, err := uuid.Parse(raw)
		if err != nil {
			badRequest(ctx, "Invalid sponsor_id format", string(domainerror.ErrCodeMissingSponsorshipFields))
			return
		}
		input.SponsorID = &sponsorID
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSponsorshipListResponse(output.Sponsorships))
}

// Create handles POST /sponsorships requests.
func (c *SponsorshipController) Create(ctx *gin.Context) {
	var req dto.CreateSponsorshipRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body: "+err.Error(), string(domainerror.ErrCodeMissingSponsorshipFields))
		return
	}

	input := sponsorship.CreateSponsorshipInput{
		SponsorID:         uuid.MustParse(req.SponsorID),
		MonetaryAmount:    req.MonetaryAmount,
		InKindValue:       req.InKindValue,
		InKindDescription: req.InKindDescription,
		ScotMendeFund:     req.ScotMendeFund,
		ScotMendeAmount:   req.ScotMendeAmount,
		Notes:             req.Notes,
	}

	if req.TierID != nil {
		tierID := uuid.MustParse(*req.TierID)
		input.TierID = &tierID
	}
	if req.FiscalYear != nil {
		fy, err := valueobject.ParseFiscalYear(*req.FiscalYear)
		if err != nil {
			handleError(ctx, err)
			return
		}
		input.FiscalYear = &fy
	}
	if req.SponsorshipType != nil {
		t := entity.SponsorshipType(*req.SponsorshipType)
		input.Type = &t
	}
	if req.Status != nil {
		s := entity.SponsorshipStatus(*req.Status)
		input.Status = &s
	}
	if req.PaymentDate != nil && *req.PaymentDate != "" {
		paid, err := valueobject.ParseDate(*req.PaymentDate)
		if err != nil {
			handleError(ctx, err)
			return
		}
		input.PaymentDate = &paid
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToSponsorshipResponse(output.Sponsorship))
}

// RecordPayment handles POST /sponsorships/:id/payment requests.
func (c *SponsorshipController) RecordPayment(ctx *gin.Context) {
	sponsorshipID, ok := pathUUID(ctx, "id")
	if !ok {
		return
	}

	var req dto.RecordPaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body: "+err.Error(), string(domainerror.ErrCodeMissingPaymentDate))
		return
	}

	paid, err := valueobject.ParseDate(req.PaymentDate)
	if err != nil {
		handleError(ctx, err)
		return
	}

	output, err := c.paymentUseCase.Execute(ctx.Request.Context(), sponsorship.RecordPaymentInput{
		SponsorshipID: sponsorshipID,
		PaymentDate:   paid,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSponsorshipResponse(output.Sponsorship))
}

// UpdateStatus handles PATCH /sponsorships/:id/status requests.
func (c *SponsorshipController) UpdateStatus(ctx *gin.Context) {
	sponsorshipID, ok := pathUUID(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body: "+err.Error(), string(domainerror.ErrCodeInvalidSponsorshipStatus))
		return
	}

	output, err := c.statusUseCase.Execute(ctx.Request.Context(), sponsorship.UpdateStatusInput{
		SponsorshipID: sponsorshipID,
		Status:        entity.SponsorshipStatus(req.Status),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSponsorshipResponse(output.Sponsorship))
}
