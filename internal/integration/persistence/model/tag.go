package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/sponsor-tracker/backend/internal/domain/entity"
)

// TagModel represents the tags table in the database.
type TagModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	TagName     string    `gorm:"type:varchar(100);not null;uniqueIndex"`
	TagCategory string    `gorm:"type:varchar(100)"`
	Color       string    `gorm:"type:varchar(7);not null"`
	Description string    `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"not null"`
}

// TableName returns the table name for the TagModel.
func (TagModel) TableName() string {
	return "tags"
}

// ToEntity converts a TagModel to a domain Tag entity.
func (m *TagModel) ToEntity() *entity.Tag {
	return &entity.Tag{
		ID:          m.ID,
		Name:        m.TagName,
		Category:    m.TagCategory,
		Color:       m.Color,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
	}
}

// TagFromEntity creates a TagModel from a domain Tag entity.
func TagFromEntity(t *entity.Tag) *TagModel {
	return &TagModel{
		ID:          t.ID,
		TagName:     t.Name,
		TagCategory: t.Category,
		Color:       t.Color,
		Description: t.Description,
		CreatedAt:   t.CreatedAt,
	}
}
