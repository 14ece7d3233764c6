package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/sponsor-tracker/backend/internal/application/adapter"
	"github.com/sponsor-tracker/backend/internal/domain/entity"
	"github.com/sponsor-tracker/backend/internal/integration/persistence/model"
)

type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository creates a new event repository instance.
func NewEventRepository(db *gorm.DB) adapter.EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Create(ctx context.Context, event *entity.Event) error {
	return r.db.WithContext(ctx).Create(model.EventFromEntity(event)).Error
}

// List retrieves every event, latest date first.
func (r *eventRepository) List(ctx context.Context) ([]*entity.Event, error) {
	var models []model.EventModel
	if err := r.db.WithContext(ctx).Order("event_date DESC").Order("event_name ASC").Find(&models).Error; err != nil {
		return nil, err
	}

	events := make([]*entity.Event, len(models))
	for i := range models {
		events[i] = models[i].ToEntity()
	}
	return events, nil
}
