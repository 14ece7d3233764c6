package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sponsor-tracker/backend/internal/application/adapter"
	"github.com/sponsor-tracker/backend/internal/domain/entity"
	domainerror "github.com/sponsor-tracker/backend/internal/domain/error"
	"github.com/sponsor-tracker/backend/internal/integration/persistence/model"
)

type tierRepository struct {
	db *gorm.DB
}

// NewTierRepository creates a new sponsorship tier repository instance.
func NewTierRepository(db *gorm.DB) adapter.TierRepository {
	return &tierRepository{db: db}
}

func (r *tierRepository) Create(ctx context.Context, tier *entity.SponsorshipTier) error {
	return r.db.WithContext(ctx).Create(model.SponsorshipTierFromEntity(tier)).Error
}

func (r *tierRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.SponsorshipTier, error) {
	var tierModel model.SponsorshipTierModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&tierModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTierNotFound
		}
		return nil, result.Error
	}
	return tierModel.ToEntity(), nil
}

// List retrieves tiers ordered by level, then name.
func (r *tierRepository) List(ctx context.Context, activeOnly bool) ([]*entity.SponsorshipTier, error) {
	query := r.db.WithContext(ctx).Model(&model.SponsorshipTierModel{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var models []model.SponsorshipTierModel
	if err := query.Order("tier_level ASC").Order("tier_name ASC").Find(&models).Error; err != nil {
		return nil, err
	}

	tiers := make([]*entity.SponsorshipTier, len(models))
	for i := range models {
		tiers[i] = models[i].ToEntity()
	}
	return tiers, nil
}
