package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sponsor-tracker/backend/internal/application/usecase/renewal"
	domainerror "github.com/sponsor-tracker/backend/internal/domain/error"
	"github.com/sponsor-tracker/backend/internal/domain/valueobject"
	"github.com/sponsor-tracker/backend/internal/integration/entrypoint/dto"
)

// RenewalController handles renewal pipeline endpoints.
type RenewalController struct {
	pipelineUseCase  *renewal.GetPipelineUseCase
	classifyUseCase  *renewal.ClassifyRecordsUseCase
	remindersUseCase *renewal.QueueRemindersUseCase
}

// NewRenewalController creates a new renewal controller instance.
func NewRenewalController(
	pipelineUseCase *renewal.GetPipelineUseCase,
	classifyUseCase *renewal.ClassifyRecordsUseCase,
	remindersUseCase *renewal.QueueRemindersUseCase,
) *RenewalController {
	return &RenewalController{
		pipelineUseCase:  pipelineUseCase,
		classifyUseCase:  classifyUseCase,
		remindersUseCase: remindersUseCase,
	}
}

// Pipeline handles GET /renewals/pipeline requests.
// Query: latest_only (default true), today (YYYY-MM-DD, optional).
func (c *RenewalController) Pipeline(ctx *gin.Context) {
	latestOnly, err := strconv.ParseBool(ctx.DefaultQuery("latest_only", "true"))
	if err != nil {
		badRequest(ctx, "latest_only must be a boolean", string(domainerror.ErrCodeInvalidRenewalParams))
		return
	}

	input := renewal.GetPipelineInput{LatestOnly: latestOnly}
	if raw := ctx.Query("today"); raw != "" {
		today, err := valueobject.ParseDate(raw)
		if err != nil {
			handleError(ctx, err)
			return
		}
		input.Today = &today
	}

	output, err := c.pipelineUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPipelineResponse(output.Today, output.Pipeline))
}

// Classify handles POST /renewals/classify requests.
func (c *RenewalController) Classify(ctx *gin.Context) {
	var req dto.ClassifyRecordsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body: "+err.Error(), string(domainerror.ErrCodeInvalidRenewalParams))
		return
	}

	input := renewal.ClassifyRecordsInput{Records: dto.ToRawRecords(req.Records)}
	if req.Today != nil && *req.Today != "" {
		today, err := valueobject.ParseDate(*req.Today)
		if err != nil {
			handleError(ctx, err)
			return
		}
		input.Today = &today
	}

	output, err := c.classifyUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPipelineResponse(output.Today, output.Pipeline))
}

// QueueReminders handles POST /renewals/reminders requests.
// An empty body queues renewal reminders only.
func (c *RenewalController) QueueReminders(ctx *gin.Context) {
	var req dto.QueueRemindersRequest
	if ctx.Request.ContentLength != 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			badRequest(ctx, "Invalid request body: "+err.Error(), string(domainerror.ErrCodeInvalidRenewalParams))
			return
		}
	}
	if raw := ctx.Query("include_lapsed"); raw != "" {
		req.IncludeLapsed, _ = strconv.ParseBool(raw)
	}

	output, err := c.remindersUseCase.Execute(ctx.Request.Context(), renewal.QueueRemindersInput{
		IncludeLapsed: req.IncludeLapsed,
		DryRun:        req.DryRun,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	status := http.StatusAccepted
	if req.DryRun {
		status = http.StatusOK
	}
	ctx.JSON(status, dto.ToQueueRemindersResponse(output, req.DryRun))
}
