package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sponsor-tracker/backend/internal/application/usecase/emailtemplate"
	"github.com/sponsor-tracker/backend/internal/application/usecase/tag"
	"github.com/sponsor-tracker/backend/internal/domain/entity"
	domainerror "github.com/sponsor-tracker/backend/internal/domain/error"
	"github.com/sponsor-tracker/backend/internal/integration/entrypoint/dto"
)

// SettingsController handles tag and email template endpoints.
type SettingsController struct {
	createTagUseCase      *tag.CreateTagUseCase
	listTagsUseCase       *tag.ListTagsUseCase
	createTemplateUseCase *emailtemplate.CreateTemplateUseCase
	listTemplatesUseCase  *emailtemplate.ListTemplatesUseCase
}

// NewSettingsController creates a new settings controller instance.
func NewSettingsController(
	createTagUseCase *tag.CreateTagUseCase,
	listTagsUseCase *tag.ListTagsUseCase,
	createTemplateUseCase *emailtemplate.CreateTemplateUseCase,
	listTemplatesUseCase *emailtemplate.ListTemplatesUseCase,
) *SettingsController {
	return &SettingsController{
		createTagUseCase:      createTagUseCase,
		listTagsUseCase:       listTagsUseCase,
		createTemplateUseCase: createTemplateUseCase,
		listTemplatesUseCase:  listTemplatesUseCase,
	}
}

// ListTags handles GET /tags requests.
func (c *SettingsController) ListTags(ctx *gin.Context) {
	output, err := c.listTagsUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTagListResponse(output))
}

// CreateTag handles POST /tags requests.
func (c *SettingsController) CreateTag(ctx *gin.Context) {
	var req dto.CreateTagRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body: "+err.Error(), string(domainerror.ErrCodeTagNameRequired))
		return
	}

	output, err := c.createTagUseCase.Execute(ctx.Request.Context(), tag.CreateTagInput{
		Name:        req.Name,
		Category:    req.Category,
		Color:       req.Color,
		Description: req.Description,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTagResponse(output.Tag, 0))
}

// ListTemplates handles GET /email-templates requests.
// Query: category, active_only.
func (c *SettingsController) ListTemplates(ctx *gin.Context) {
	var input emailtemplate.ListTemplatesInput
	if raw := ctx.Query("category"); raw != "" {
		category := entity.EmailTemplateCategory(raw)
		input.Category = &category
	}
	input.ActiveOnly, _ = strconv.ParseBool(ctx.DefaultQuery("active_only", "false"))

	output, err := c.listTemplatesUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToEmailTemplateListResponse(output.Templates))
}

// CreateTemplate handles POST /email-templates requests.
func (c *SettingsController) CreateTemplate(ctx *gin.Context) {
	var req dto.CreateEmailTemplateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body: "+err.Error(), string(domainerror.ErrCodeTemplateFieldsRequired))
		return
	}

	output, err := c.createTemplateUseCase.Execute(ctx.Request.Context(), emailtemplate.CreateTemplateInput{
		Name:        req.Name,
		Category:    entity.EmailTemplateCategory(req.Category),
		SubjectLine: req.SubjectLine,
		BodyHTML:    req.BodyHTML,
		SendTiming:  req.SendTiming,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToEmailTemplateResponse(output.Template))
}
