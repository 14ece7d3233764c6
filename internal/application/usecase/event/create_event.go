// Package event contains event calendar use cases.
package event

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sponsor-tracker/backend/internal/application/adapter"
	"github.com/sponsor-tracker/backend/internal/domain/entity"
	domainerror "github.com/sponsor-tracker/backend/internal/domain/error"
	"github.com/sponsor-tracker/backend/internal/domain/valueobject"
)

// CreateEventInput represents the input for event creation.
type CreateEventInput struct {
	Name         string
	Type         entity.EventType
	EventDate    string // YYYY-MM-DD
	EventTime    string // Optional HH:MM
	Location     string
	IsVirtual    bool
	VirtualLink  string
	MaxAttendees *int
	Description  string
}

// CreateEventOutput represents the output of event creation.
type CreateEventOutput struct {
	Event *entity.Event
}

// CreateEventUseCase handles event creation logic.
type CreateEventUseCase struct {
	eventRepo adapter.EventRepository
	clock     adapter.Clock
}

// NewCreateEventUseCase creates a new CreateEventUseCase instance.
func NewCreateEventUseCase(eventRepo adapter.EventRepository, clock adapter.Clock) *CreateEventUseCase {
	return &CreateEventUseCase{
		eventRepo: eventRepo,
		clock:     clock,
	}
}

// Execute validates and stores the event.
func (uc *CreateEventUseCase) Execute(ctx context.Context, input CreateEventInput) (*CreateEventOutput, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, domainerror.NewEventError(
			domainerror.ErrCodeEventNameRequired,
			"event name is required",
			domainerror.ErrEventNameRequired,
		)
	}
	eventType := input.Type
	if eventType == "" {
		eventType = entity.EventTypeOther
	}
	if !eventType.IsValid() {
		return nil, domainerror.NewEventError(
			domainerror.ErrCodeInvalidEventType,
			fmt.Sprintf("unknown event type %q", input.Type),
			domainerror.ErrInvalidEventType,
		)
	}

	date, err := valueobject.ParseDate(input.EventDate)
	if err != nil {
		return nil, err
	}

	eventTime := strings.TrimSpace(input.EventTime)
	if eventTime != "" {
		if _, err := time.Parse("15:04", eventTime); err != nil {
			return nil, domainerror.NewEventError(
				domainerror.ErrCodeInvalidEventTime,
				fmt.Sprintf("event time %q is not HH:MM", eventTime),
				domainerror.ErrInvalidEventTime,
			)
		}
	}
	if input.MaxAttendees != nil && *input.MaxAttendees <= 0 {
		return nil, domainerror.NewEventError(
			domainerror.ErrCodeInvalidMaxAttendees,
			"max attendees must be positive",
			domainerror.ErrInvalidMaxAttendees,
		)
	}

	event := entity.NewEvent(input.Name, eventType, date, uc.clock.Now().UTC())
	event.EventTime = eventTime
	event.Location = strings.TrimSpace(input.Location)
	event.IsVirtual = input.IsVirtual
	event.VirtualLink = strings.TrimSpace(input.VirtualLink)
	event.MaxAttendees = input.MaxAttendees
	event.Description = input.Description

	if err := uc.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	return &CreateEventOutput{Event: event}, nil
}
