package dto

import (
	"github.com/sponsor-tracker/backend/internal/application/usecase/event"
	"github.com/sponsor-tracker/backend/internal/domain/entity"
	"github.com/sponsor-tracker/backend/internal/domain/valueobject"
)

// CreateEventRequest represents the request body for event creation.
type CreateEventRequest struct {
	Name         string `json:"event_name" binding:"required,max=255"`
	Type         string `json:"event_type,omitempty"`
	EventDate    string `json:"event_date" binding:"required"`
	EventTime    string `json:"event_time,omitempty"`
	Location     string `json:"location,omitempty" binding:"max=255"`
	IsVirtual    bool   `json:"is_virtual"`
	VirtualLink  string `json:"virtual_link,omitempty" binding:"omitempty,url"`
	MaxAttendees *int   `json:"max_attendees,omitempty"`
	Description  string `json:"description,omitempty"`
}

// EventResponse represents a single event in API responses.
type EventResponse struct {
	ID           string `json:"id"`
	Name         string `json:"event_name"`
	Type         string `json:"event_type"`
	EventDate    string `json:"event_date"`
	EventTime    string `json:"event_time"`
	Location     string `json:"location"`
	IsVirtual    bool   `json:"is_virtual"`
	VirtualLink  string `json:"virtual_link"`
	MaxAttendees *int   `json:"max_attendees"`
	Description  string `json:"description"`
}

// EventListResponse splits events around today.
type EventListResponse struct {
	Today    string          `json:"today"`
	Upcoming []EventResponse `json:"upcoming"`
	Past     []EventResponse `json:"past"`
}

// ToEventResponse converts a domain Event entity to an EventResponse DTO.
func ToEventResponse(e *entity.Event) EventResponse {
	return EventResponse{
		ID:           e.ID.String(),
		Name:         e.Name,
		Type:         string(e.Type),
		EventDate:    valueobject.FormatDate(e.EventDate),
		EventTime:    e.EventTime,
		Location:     e.Location,
		IsVirtual:    e.IsVirtual,
		VirtualLink:  e.VirtualLink,
		MaxAttendees: e.MaxAttendees,
		Description:  e.Description,
	}
}

// ToEventListResponse converts the list events use case output to its response DTO.
func ToEventListResponse(output *event.ListEventsOutput) EventListResponse {
	return EventListResponse{
		Today:    valueobject.FormatDate(output.Today),
		Upcoming: toEventResponses(output.Upcoming),
		Past:     toEventResponses(output.Past),
	}
}

func toEventResponses(events []*entity.Event) []EventResponse {
	out := make([]EventResponse, len(events))
	for i, e := range events {
		out[i] = ToEventResponse(e)
	}
	return out
}
