package adapter

import (
	"context"
	"time"

	"github.com/sponsor-tracker/backend/internal/domain/entity"
)

// DonationRepository defines the interface for donation persistence operations.
type DonationRepository interface {
	// Create creates a new donation in the database.
	Create(ctx context.Context, donation *entity.Donation) error

	// ListBetween retrieves donations dated within [start, end], newest first.
	ListBetween(ctx context.Context, start, end time.Time) ([]*entity.Donation, error)
}
