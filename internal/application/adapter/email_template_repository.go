package adapter

import (
	"context"

	"github.com/sponsor-tracker/backend/internal/domain/entity"
)

// EmailTemplateFilter narrows a template listing.
type EmailTemplateFilter struct {
	Category   *entity.EmailTemplateCategory
	ActiveOnly bool
}

// EmailTemplateRepository defines the interface for stored email templates.
type EmailTemplateRepository interface {
	// Create stores a new template.
	Create(ctx context.Context, template *entity.EmailTemplate) error

	// List retrieves templates ordered by category, then name.
	List(ctx context.Context, filter EmailTemplateFilter) ([]*entity.EmailTemplate, error)
}
