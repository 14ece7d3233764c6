package adapter

import (
	"context"

	"github.com/sponsor-tracker/backend/internal/domain/entity"
)

// EventRepository defines the interface for event persistence operations.
type EventRepository interface {
	// Create stores a new event.
	Create(ctx context.Context, event *entity.Event) error

	// List retrieves every event, latest date first.
	List(ctx context.Context) ([]*entity.Event, error)
}
