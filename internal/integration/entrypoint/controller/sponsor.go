package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sponsor-tracker/backend/internal/application/usecase/sponsor"
	domainerror "github.com/sponsor-tracker/backend/internal/domain/error"
	"github.com/sponsor-tracker/backend/internal/integration/entrypoint/dto"
)

// SponsorController handles sponsor endpoints.
type SponsorController struct {
	listUseCase    *sponsor.ListSponsorsUseCase
	createUseCase  *sponsor.CreateSponsorUseCase
	getUseCase     *sponsor.GetSponsorUseCase
	archiveUseCase *sponsor.ArchiveSponsorUseCase
}

// NewSponsorController creates a new sponsor controller instance.
func NewSponsorController(
	listUseCase *sponsor.ListSponsorsUseCase,
	createUseCase *sponsor.CreateSponsorUseCase,
	getUseCase *sponsor.GetSponsorUseCase,
	archiveUseCase *sponsor.ArchiveSponsorUseCase,
) *SponsorController {
	return &SponsorController{
		listUseCase:    listUseCase,
		createUseCase:  createUseCase,
		getUseCase:     getUseCase,
		archiveUseCase: archiveUseCase,
	}
}

// List handles GET /sponsors requests.
func (c *SponsorController) List(ctx *gin.Context) {
	activeOnly, _ := strconv.ParseBool(ctx.DefaultQuery("active_only", "false"))

	output, err := c.listUseCase.Execute(ctx.Request.Context(), sponsor.ListSponsorsInput{
		ActiveOnly: activeOnly,
		Tag:        ctx.Query("tag"),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSponsorListResponse(output.Sponsors))
}

// Create handles POST /sponsors requests.
func (c *SponsorController) Create(ctx *gin.Context) {
	var req dto.CreateSponsorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body: "+err.Error(), string(domainerror.ErrCodeMissingSponsorshipFields))
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), sponsor.CreateSponsorInput{
		OrganizationName: req.OrganizationName,
		ContactName:      req.ContactName,
		ContactEmail:     req.ContactEmail,
		ContactPhone:     req.ContactPhone,
		Website:          req.Website,
		Tags:             req.Tags,
		Notes:            req.Notes,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToSponsorResponse(output.Sponsor))
}

// Get handles GET /sponsors/:id requests.
func (c *SponsorController) Get(ctx *gin.Context) {
	sponsorID, ok := pathUUID(ctx, "id")
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), sponsor.GetSponsorInput{SponsorID: sponsorID})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSponsorDetailResponse(output.Sponsor, output.Sponsorships))
}

// Archive handles POST /sponsors/:id/archive requests.
func (c *SponsorController) Archive(ctx *gin.Context) {
	sponsorID, ok := pathUUID(ctx, "id")
	if !ok {
		return
	}

	output, err := c.archiveUseCase.Execute(ctx.Request.Context(), sponsor.ArchiveSponsorInput{SponsorID: sponsorID})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSponsorResponse(output.Sponsor))
}

// pathUUID parses a UUID path parameter, answering 400 when it is malformed.
func pathUUID(ctx *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param(name))
	if err != nil {
		badRequest(ctx, "Invalid "+name+" format", string(domainerror.ErrCodeMissingSponsorshipFields))
		return uuid.Nil, false
	}
	return id, true
}
