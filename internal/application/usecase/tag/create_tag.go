// Package tag contains sponsor tag management use cases.
package tag

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/sponsor-tracker/backend/internal/application/adapter"
	"github.com/sponsor-tracker/backend/internal/domain/entity"
	domainerror "github.com/sponsor-tracker/backend/internal/domain/error"
)

var hexColor = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// CreateTagInput represents the input for tag creation.
type CreateTagInput struct {
	Name        string
	Category    string
	Color       string // Optional, defaults to entity.DefaultTagColor
	Description string
}

// CreateTagOutput represents the output of tag creation.
type CreateTagOutput struct {
	Tag *entity.Tag
}

// CreateTagUseCase handles tag creation logic.
type CreateTagUseCase struct {
	tagRepo adapter.TagRepository
	clock   adapter.Clock
}

// NewCreateTagUseCase creates a new CreateTagUseCase instance.
func NewCreateTagUseCase(tagRepo adapter.TagRepository, clock adapter.Clock) *CreateTagUseCase {
	return &CreateTagUseCase{
		tagRepo: tagRepo,
		clock:   clock,
	}
}

// Execute performs the tag creation. Names are unique ignoring case.
func (uc *CreateTagUseCase) Execute(ctx context.Context, input CreateTagInput) (*CreateTagOutput, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, domainerror.NewSettingsError(
			domainerror.ErrCodeTagNameRequired,
			"tag name is required",
			domainerror.ErrTagNameRequired,
		)
	}
	if color := strings.TrimSpace(input.Color); color != "" && !hexColor.MatchString(color) {
		return nil, domainerror.NewSettingsError(
			domainerror.ErrCodeInvalidTagColor,
			fmt.Sprintf("color %q is not a #RRGGBB value", color),
			domainerror.ErrInvalidTagColor,
		)
	}

	tag := entity.NewTag(input.Name, input.Category, input.Color, input.Description, uc.clock.Now().UTC())

	_, err := uc.tagRepo.FindByName(ctx, tag.Name)
	switch {
	case err == nil:
		return nil, domainerror.NewSettingsError(
			domainerror.ErrCodeTagAlreadyExists,
			fmt.Sprintf("tag %q already exists", tag.Name),
			domainerror.ErrTagAlreadyExists,
		)
	case !errors.Is(err, domainerror.ErrTagNotFound):
		return nil, fmt.Errorf("failed to look up tag: %w", err)
	}

	if err := uc.tagRepo.Create(ctx, tag); err != nil {
		return nil, fmt.Errorf("failed to create tag: %w", err)
	}

	return &CreateTagOutput{Tag: tag}, nil
}
