package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/sponsor-tracker/backend/internal/domain/entity"
)

// EventModel represents the events table in the database.
type EventModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	EventName    string    `gorm:"type:varchar(255);not null"`
	EventType    string    `gorm:"type:varchar(50);not null"`
	EventDate    time.Time `gorm:"type:date;not null;index"`
	EventTime    string    `gorm:"type:varchar(5)"`
	Location     string    `gorm:"type:varchar(255)"`
	IsVirtual    bool      `gorm:"not null"`
	VirtualLink  string    `gorm:"type:varchar(500)"`
	MaxAttendees *int
	Description  string    `gorm:"type:text"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

// TableName returns the table name for the EventModel.
func (EventModel) TableName() string {
	return "events"
}

// ToEntity converts an EventModel to a domain Event entity.
func (m *EventModel) ToEntity() *entity.Event {
	return &entity.Event{
		ID:           m.ID,
		Name:         m.EventName,
		Type:         entity.EventType(m.EventType),
		EventDate:    *civilDate(&m.EventDate),
		EventTime:    m.EventTime,
		Location:     m.Location,
		IsVirtual:    m.IsVirtual,
		VirtualLink:  m.VirtualLink,
		MaxAttendees: m.MaxAttendees,
		Description:  m.Description,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// EventFromEntity creates an EventModel from a domain Event entity.
func EventFromEntity(e *entity.Event) *EventModel {
	return &EventModel{
		ID:           e.ID,
		EventName:    e.Name,
		EventType:    string(e.Type),
		EventDate:    *civilDate(&e.EventDate),
		EventTime:    e.EventTime,
		Location:     e.Location,
		IsVirtual:    e.IsVirtual,
		VirtualLink:  e.VirtualLink,
		MaxAttendees: e.MaxAttendees,
		Description:  e.Description,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}
