package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/sponsor-tracker/backend/internal/domain/entity"
)

// ContactFilter narrows a contact listing. Zero values match everything.
type ContactFilter struct {
	SponsorID   *uuid.UUID
	PrimaryOnly bool
	Search      string // Case-insensitive match on name, email, phone or title
}

// ContactRepository defines the interface for sponsor contact persistence.
type ContactRepository interface {
	// Create stores a contact. A primary contact replaces the sponsor's previous one.
	Create(ctx context.Context, contact *entity.Contact) error

	// List retrieves contacts ordered by name.
	List(ctx context.Context, filter ContactFilter) ([]*entity.Contact, error)
}
