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

// sponsorRepository implements the adapter.SponsorRepository interface.
type sponsorRepository struct {
	db *gorm.DB
}

// NewSponsorRepository creates a new sponsor repository instance.
func NewSponsorRepository(db *gorm.DB) adapter.SponsorRepository {
	return &sponsorRepository{db: db}
}

// Create creates a new sponsor in the database.
func (r *sponsorRepository) Create(ctx context.Context, sponsor *entity.Sponsor) error {
	return r.db.WithContext(ctx).Create(model.SponsorFromEntity(sponsor)).Error
}

// FindByID retrieves a sponsor by its ID.
func (r *sponsorRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Sponsor, error) {
	var sponsorModel model.SponsorModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&sponsorModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrSponsorNotFound
		}
		return nil, result.Error
	}
	return sponsorModel.ToEntity(), nil
}

// FindByIDs retrieves the sponsors with the given IDs. Unknown IDs are absent from the map.
func (r *sponsorRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*entity.Sponsor, error) {
	sponsors := make(map[uuid.UUID]*entity.Sponsor, len(ids))
	if len(ids) == 0 {
		return sponsors, nil
	}

	var models []model.SponsorModel
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&models).Error; err != nil {
		return nil, err
	}

	for i := range models {
		sponsors[models[i].ID] = models[i].ToEntity()
	}
	return sponsors, nil
}

// List retrieves sponsors ordered by organization name.
// Tags are matched in memory so the query stays portable across drivers.
func (r *sponsorRepository) List(ctx context.Context, filter adapter.SponsorFilter) ([]*entity.Sponsor, error) {
	query := r.db.WithContext(ctx).Model(&model.SponsorModel{})
	if filter.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}

	var models []model.SponsorModel
	if err := query.Order("organization_name ASC").Find(&models).Error; err != nil {
		return nil, err
	}

	sponsors := make([]*entity.Sponsor, 0, len(models))
	for i := range models {
		sponsor := models[i].ToEntity()
		if filter.Tag != "" && !sponsor.HasTag(filter.Tag) {
			continue
		}
		sponsors = append(sponsors, sponsor)
	}
	return sponsors, nil
}

// Update saves changes to an existing sponsor.
func (r *sponsorRepository) Update(ctx context.Context, sponsor *entity.Sponsor) error {
	result := r.db.WithContext(ctx).Save(model.SponsorFromEntity(sponsor))
	if result.Error != nil {
		return result.Error
	}
	return nil
}
