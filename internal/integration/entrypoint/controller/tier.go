package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sponsor-tracker/backend/internal/application/usecase/tier"
	domainerror "github.com/sponsor-tracker/backend/internal/domain/error"
	"github.com/sponsor-tracker/backend/internal/integration/entrypoint/dto"
)

// TierController handles sponsorship tier endpoints.
type TierController struct {
	listUseCase   *tier.ListTiersUseCase
	createUseCase *tier.CreateTierUseCase
}

// NewTierController creates a new tier controller instance.
func NewTierController(listUseCase *tier.ListTiersUseCase, createUseCase *tier.CreateTierUseCase) *TierController {
	return &TierController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
	}
}

// List handles GET /tiers requests. Only active tiers are listed unless active_only=false.
func (c *TierController) List(ctx *gin.Context) {
	activeOnly, err := strconv.ParseBool(ctx.DefaultQuery("active_only", "true"))
	if err != nil {
		activeOnly = true
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), tier.ListTiersInput{ActiveOnly: activeOnly})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTierListResponse(output.Tiers))
}

// Create handles POST /tiers requests.
func (c *TierController) Create(ctx *gin.Context) {
	var req dto.CreateTierRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body: "+err.Error(), string(domainerror.ErrCodeTierNameRequired))
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), tier.CreateTierInput{
		TierName:        req.TierName,
		TierLevel:       req.TierLevel,
		SuggestedAmount: req.SuggestedAmount,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTierResponse(output.Tier))
}
