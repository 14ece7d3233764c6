package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultTagColor is used when a tag is created without a color.
const DefaultTagColor = "#6B7280"

// Tag is a managed label that sponsors can carry. Sponsors reference tags by name.
type Tag struct {
	ID          uuid.UUID
	Name        string
	Category    string
	Color       string // #RRGGBB
	Description string
	CreatedAt   time.Time
}

// NewTag creates a tag. Names are stored lower-case, the same way sponsors carry them.
func NewTag(name, category, color, description string, now time.Time) *Tag {
	color = strings.ToUpper(strings.TrimSpace(color))
	if color == "" {
		color = DefaultTagColor
	}
	return &Tag{
		ID:          uuid.New(),
		Name:        strings.ToLower(strings.TrimSpace(name)),
		Category:    strings.TrimSpace(category),
		Color:       color,
		Description: strings.TrimSpace(description),
		CreatedAt:   now,
	}
}
