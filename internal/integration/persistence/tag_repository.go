package persistence

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/sponsor-tracker/backend/internal/application/adapter"
	"github.com/sponsor-tracker/backend/internal/domain/entity"
	domainerror "github.com/sponsor-tracker/backend/internal/domain/error"
	"github.com/sponsor-tracker/backend/internal/integration/persistence/model"
)

type tagRepository struct {
	db *gorm.DB
}

// NewTagRepository creates a new tag repository instance.
func NewTagRepository(db *gorm.DB) adapter.TagRepository {
	return &tagRepository{db: db}
}

func (r *tagRepository) Create(ctx context.Context, tag *entity.Tag) error {
	return r.db.WithContext(ctx).Create(model.TagFromEntity(tag)).Error
}

func (r *tagRepository) FindByName(ctx context.Context, name string) (*entity.Tag, error) {
	var tagModel model.TagModel
	result := r.db.WithContext(ctx).
		Where("tag_name = ?", strings.ToLower(strings.TrimSpace(name))).
		First(&tagModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTagNotFound
		}
		return nil, result.Error
	}
	return tagModel.ToEntity(), nil
}

// List retrieves tags ordered by category, then name.
func (r *tagRepository) List(ctx context.Context) ([]*entity.Tag, error) {
	var models []model.TagModel
	if err := r.db.WithContext(ctx).Order("tag_category ASC").Order("tag_name ASC").Find(&models).Error; err != nil {
		return nil, err
	}

	tags := make([]*entity.Tag, len(models))
	for i := range models {
		tags[i] = models[i].ToEntity()
	}
	return tags, nil
}
