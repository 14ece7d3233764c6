package emailtemplate

import (
	"context"
	"fmt"

	"github.com/sponsor-tracker/backend/internal/application/adapter"
	"github.com/sponsor-tracker/backend/internal/domain/entity"
	domainerror "github.com/sponsor-tracker/backend/internal/domain/error"
)

// ListTemplatesInput represents the input for listing templates.
type ListTemplatesInput struct {
	Category   *entity.EmailTemplateCategory
	ActiveOnly bool
}

// ListTemplatesOutput represents the output of listing templates.
type ListTemplatesOutput struct {
	Templates []*entity.EmailTemplate
}

// ListTemplatesUseCase handles template listing.
type ListTemplatesUseCase struct {
	templateRepo adapter.EmailTemplateRepository
}

// NewListTemplatesUseCase creates a new ListTemplatesUseCase instance.
func NewListTemplatesUseCase(templateRepo adapter.EmailTemplateRepository) *ListTemplatesUseCase {
	return &ListTemplatesUseCase{templateRepo: templateRepo}
}

// Execute lists the templates matching the filter.
func (uc *ListTemplatesUseCase) Execute(ctx context.Context, input ListTemplatesInput) (*ListTemplatesOutput, error) {
	if input.Category != nil && !input.Category.IsValid() {
		return nil, domainerror.NewSettingsError(
			domainerror.ErrCodeInvalidTemplateCategory,
			fmt.Sprintf("unknown category %q", *input.Category),
			domainerror.ErrInvalidTemplateCategory,
		)
	}

	templates, err := uc.templateRepo.List(ctx, adapter.EmailTemplateFilter{
		Category:   input.Category,
		ActiveOnly: input.ActiveOnly,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list email templates: %w", err)
	}

	return &ListTemplatesOutput{Templates: templates}, nil
}
