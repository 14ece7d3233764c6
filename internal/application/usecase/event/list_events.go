package event

import (
	"context"
	"fmt"
	"time"

	"github.com/sponsor-tracker/backend/internal/application/adapter"
	"github.com/sponsor-tracker/backend/internal/domain/entity"
	"github.com/sponsor-tracker/backend/internal/domain/valueobject"
)

// ListEventsOutput splits events around today. Upcoming is soonest first, Past is
// most recent first.
type ListEventsOutput struct {
	Today    time.Time
	Upcoming []*entity.Event
	Past     []*entity.Event
}

// ListEventsUseCase handles event listing.
type ListEventsUseCase struct {
	eventRepo adapter.EventRepository
	clock     adapter.Clock
}

// NewListEventsUseCase creates a new ListEventsUseCase instance.
func NewListEventsUseCase(eventRepo adapter.EventRepository, clock adapter.Clock) *ListEventsUseCase {
	return &ListEventsUseCase{
		eventRepo: eventRepo,
		clock:     clock,
	}
}

// Execute lists every event. Events dated today count as upcoming.
func (uc *ListEventsUseCase) Execute(ctx context.Context) (*ListEventsOutput, error) {
	today := valueobject.StartOfDay(uc.clock.Now())

	events, err := uc.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	output := &ListEventsOutput{
		Today:    today,
		Upcoming: []*entity.Event{},
		Past:     []*entity.Event{},
	}
	// The repository returns latest first; walking backwards yields upcoming soonest first.
	for i := len(events) - 1; i >= 0; i-- {
		if events[i].IsUpcoming(today) {
			output.Upcoming = append(output.Upcoming, events[i])
		}
	}
	for _, e := range events {
		if !e.IsUpcoming(today) {
			output.Past = append(output.Past, e)
		}
	}
	return output, nil
}
