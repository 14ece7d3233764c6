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

// ContactController handles sponsor contact endpoints.
type ContactController struct {
	addUseCase  *sponsor.AddContactUseCase
	listUseCase *sponsor.ListContactsUseCase
}

// NewContactController creates a new contact controller instance.
func NewContactController(addUseCase *sponsor.AddContactUseCase, listUseCase *sponsor.ListContactsUseCase) *ContactController {
	return &ContactController{
		addUseCase:  addUseCase,
		listUseCase: listUseCase,
	}
}

// Add handles POST /sponsors/:id/contacts requests.
func (c *ContactController) Add(ctx *gin.Context) {
	sponsorID, ok := pathUUID(ctx, "id")
	if !ok {
		return
	}

	var req dto.CreateContactRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body: "+err.Error(), string(domainerror.ErrCodeContactNameRequired))
		return
	}

	output, err := c.addUseCase.Execute(ctx.Request.Context(), sponsor.AddContactInput{
		SponsorID:   sponsorID,
		ContactName: req.ContactName,
		Title:       req.Title,
		Email:       req.Email,
		Phone:       req.Phone,
		IsPrimary:   req.IsPrimary,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToContactResponse(output.Contact, nil))
}

// List handles GET /contacts requests.
// Query: sponsor_id, primary_only, search.
func (c *ContactController) List(ctx *gin.Context) {
	var input sponsor.ListContactsInput
	if raw := ctx.Query("sponsor_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			badRequest(ctx, "Invalid sponsor_id format", string(domainerror.ErrCodeMissingSponsorshipFields))
			return
		}
		input.SponsorID = &id
	}
	input.PrimaryOnly, _ = strconv.ParseBool(ctx.DefaultQuery("primary_only", "false"))
	input.Search = ctx.Query("search")

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToContactListResponse(output))
}
