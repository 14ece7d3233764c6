// Package emailtemplate contains use cases for coordinator-managed email templates.
package emailtemplate

import (
	"context"
	"fmt"
	"strings"

	"github.com/sponsor-tracker/backend/internal/application/adapter"
	"github.com/sponsor-tracker/backend/internal/domain/entity"
	domainerror "github.com/sponsor-tracker/backend/internal/domain/error"
)

// CreateTemplateInput represents the input for template creation.
type CreateTemplateInput struct {
	Name        string
	Category    entity.EmailTemplateCategory
	SubjectLine string
	BodyHTML    string
	SendTiming  string
}

// CreateTemplateOutput represents the output of template creation.
type CreateTemplateOutput struct {
	Template *entity.EmailTemplate
}

// CreateTemplateUseCase handles template creation logic.
type CreateTemplateUseCase struct {
	templateRepo adapter.EmailTemplateRepository
	clock        adapter.Clock
}

// NewCreateTemplateUseCase creates a new CreateTemplateUseCase instance.
func NewCreateTemplateUseCase(templateRepo adapter.EmailTemplateRepository, clock adapter.Clock) *CreateTemplateUseCase {
	return &CreateTemplateUseCase{
		templateRepo: templateRepo,
		clock:        clock,
	}
}

// Execute validates and stores the template. Merge fields are read from the subject
// line and body.
func (uc *CreateTemplateUseCase) Execute(ctx context.Context, input CreateTemplateInput) (*CreateTemplateOutput, error) {
	if !input.Category.IsValid() {
		return nil, domainerror.NewSettingsError(
			domainerror.ErrCodeInvalidTemplateCategory,
			fmt.Sprintf("unknown category %q", input.Category),
			domainerror.ErrInvalidTemplateCategory,
		)
	}
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.SubjectLine) == "" || strings.TrimSpace(input.BodyHTML) == "" {
		return nil, domainerror.NewSettingsError(
			domainerror.ErrCodeTemplateFieldsRequired,
			"template name, subject line and body are required",
			domainerror.ErrTemplateFieldsRequired,
		)
	}

	template := entity.NewEmailTemplate(input.Name, input.Category, input.SubjectLine, input.BodyHTML, input.SendTiming, uc.clock.Now().UTC())
	if err := uc.templateRepo.Create(ctx, template); err != nil {
		return nil, fmt.Errorf("failed to create email template: %w", err)
	}

	return &CreateTemplateOutput{Template: template}, nil
}
