package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sponsor-tracker/backend/internal/domain/valueobject"
)

// EventType classifies events where sponsor benefits are delivered.
type EventType string

const (
	EventTypeAwardsCeremony EventType = "Awards Ceremony"
	EventTypeSpeakerSeries  EventType = "Speaker Series"
	EventTypeTraining       EventType = "Training"
	EventTypeNetworking     EventType = "Networking"
	EventTypeConference     EventType = "Conference"
	EventTypeOther          EventType = "Other"
)

// IsValid reports whether t is a known event type.
func (t EventType) IsValid() bool {
	switch t {
	case EventTypeAwardsCeremony, EventTypeSpeakerSeries, EventTypeTraining,
		EventTypeNetworking, EventTypeConference, EventTypeOther:
		return true
	}
	return false
}

// Event is a nonprofit event on the calendar.
type Event struct {
	ID           uuid.UUID
	Name         string
	Type         EventType
	EventDate    time.Time // Civil date, midnight UTC
	EventTime    string    // Optional "18:30"
	Location     string
	IsVirtual    bool
	VirtualLink  string
	MaxAttendees *int
	Description  string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewEvent creates an event on date.
func NewEvent(name string, eventType EventType, date time.Time, now time.Time) *Event {
	return &Event{
		ID:        uuid.New(),
		Name:      strings.TrimSpace(name),
		Type:      eventType,
		EventDate: time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsUpcoming reports whether the event happens on or after today's calendar date.
func (e *Event) IsUpcoming(today time.Time) bool {
	return valueobject.DaysBetween(today, e.EventDate) >= 0
}
