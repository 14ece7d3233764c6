package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sponsor-tracker/backend/internal/application/usecase/event"
	"github.com/sponsor-tracker/backend/internal/domain/entity"
	domainerror "github.com/sponsor-tracker/backend/internal/domain/error"
	"github.com/sponsor-tracker/backend/internal/integration/entrypoint/dto"
)

// EventController handles event endpoints.
type EventController struct {
	createUseCase *event.CreateEventUseCase
	listUseCase   *event.ListEventsUseCase
}

// NewEventController creates a new event controller instance.
func NewEventController(createUseCase *event.CreateEventUseCase, listUseCase *event.ListEventsUseCase) *EventController {
	return &EventController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
	}
}

// List handles GET /events requests.
func (c *EventController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToEventListResponse(output))
}

// Create handles POST /events requests.
func (c *EventController) Create(ctx *gin.Context) {
	var req dto.CreateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body: "+err.Error(), string(domainerror.ErrCodeEventNameRequired))
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), event.CreateEventInput{
		Name:         req.Name,
		Type:         entity.EventType(req.Type),
		EventDate:    req.EventDate,
		EventTime:    req.EventTime,
		Location:     req.Location,
		IsVirtual:    req.IsVirtual,
		VirtualLink:  req.VirtualLink,
		MaxAttendees: req.MaxAttendees,
		Description:  req.Description,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToEventResponse(output.Event))
}
