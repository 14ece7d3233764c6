package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/sponsor-tracker/backend/internal/application/adapter"
	"github.com/sponsor-tracker/backend/internal/domain/entity"
	"github.com/sponsor-tracker/backend/internal/integration/persistence/model"
)

// emailTemplateRepository implements the adapter.EmailTemplateRepository interface.
type emailTemplateRepository struct {
	db *gorm.DB
}

// NewEmailTemplateRepository creates a new email template repository instance.
func NewEmailTemplateRepository(db *gorm.DB) adapter.EmailTemplateRepository {
	return &emailTemplateRepository{db: db}
}

// Create stores a new template.
func (r *emailTemplateRepository) Create(ctx context.Context, template *entity.EmailTemplate) error {
	return r.db.WithContext(ctx).Create(model.EmailTemplateFromEntity(template)).Error
}

// List retrieves templates ordered by category, then name.
func (r *emailTemplateRepository) List(ctx context.Context, filter adapter.EmailTemplateFilter) ([]*entity.EmailTemplate, error) {
	query := r.db.WithContext(ctx).Model(&model.EmailTemplateModel{})
	if filter.Category != nil {
		query = query.Where("template_category = ?", string(*filter.Category))
	}
	if filter.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}

	var models []model.EmailTemplateModel
	if err := query.Order("template_category ASC").Order("template_name ASC").Find(&models).Error; err != nil {
		return nil, err
	}

	templates := make([]*entity.EmailTemplate, len(models))
	for i := range models {
		templates[i] = models[i].ToEntity()
	}
	return templates, nil
}
