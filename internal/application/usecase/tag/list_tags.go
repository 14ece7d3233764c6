package tag

import (
	"context"
	"fmt"

	"github.com/sponsor-tracker/backend/internal/application/adapter"
	"github.com/sponsor-tracker/backend/internal/domain/entity"
)

// TagUsage is a tag with the number of sponsors carrying it.
type TagUsage struct {
	Tag          *entity.Tag
	SponsorCount int
}

// ListTagsOutput represents the output of listing tags.
type ListTagsOutput struct {
	Tags []TagUsage
}

// ListTagsUseCase lists managed tags with their usage.
type ListTagsUseCase struct {
	tagRepo     adapter.TagRepository
	sponsorRepo adapter.SponsorRepository
}

// NewListTagsUseCase creates a new ListTagsUseCase instance.
func NewListTagsUseCase(tagRepo adapter.TagRepository, sponsorRepo adapter.SponsorRepository) *ListTagsUseCase {
	return &ListTagsUseCase{
		tagRepo:     tagRepo,
		sponsorRepo: sponsorRepo,
	}
}

// Execute lists the tags ordered by category, then name. Archived sponsors count too.
func (uc *ListTagsUseCase) Execute(ctx context.Context) (*ListTagsOutput, error) {
	tags, err := uc.tagRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}

	sponsors, err := uc.sponsorRepo.List(ctx, adapter.SponsorFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to list sponsors: %w", err)
	}

	output := &ListTagsOutput{Tags: make([]TagUsage, 0, len(tags))}
	for _, t := range tags {
		usage := TagUsage{Tag: t}
		for _, s := range sponsors {
			if s.HasTag(t.Name) {
				usage.SponsorCount++
			}
		}
		output.Tags = append(output.Tags, usage)
	}
	return output, nil
}
