package persistence

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/sponsor-tracker/backend/internal/application/adapter"
	"github.com/sponsor-tracker/backend/internal/domain/entity"
	"github.com/sponsor-tracker/backend/internal/integration/persistence/model"
)

// donationRepository implements the adapter.DonationRepository interface.
type donationRepository struct {
	db *gorm.DB
}

// NewDonationRepository creates a new donation repository instance.
func NewDonationRepository(db *gorm.DB) adapter.DonationRepository {
	return &donationRepository{db: db}
}

// Create creates a new donation in the database.
func (r *donationRepository) Create(ctx context.Context, donation *entity.Donation) error {
	return r.db.WithContext(ctx).Create(model.DonationFromEntity(donation)).Error
}

// ListBetween retrieves donations dated within [start, end], newest first.
func (r *donationRepository) ListBetween(ctx context.Context, start, end time.Time) ([]*entity.Donation, error) {
	var models []model.DonationModel
	result := r.db.WithContext(ctx).
		Where("donation_date >= ? AND donation_date <= ?", start.UTC(), end.UTC()).
		Order("donation_date DESC").
		Order("created_at DESC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	donations := make([]*entity.Donation, len(models))
	for i := range models {
		donations[i] = models[i].ToEntity()
	}
	return donations, nil
}
