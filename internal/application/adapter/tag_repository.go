package adapter

import (
	"context"

	"github.com/sponsor-tracker/backend/internal/domain/entity"
)

// TagRepository defines the interface for tag persistence operations.
type TagRepository interface {
	// Create stores a new tag.
	Create(ctx context.Context, tag *entity.Tag) error

	// FindByName retrieves a tag by its lower-case name or returns ErrTagNotFound.
	FindByName(ctx context.Context, name string) (*entity.Tag, error)

	// List retrieves tags ordered by category, then name.
	List(ctx context.Context) ([]*entity.Tag, error)
}
