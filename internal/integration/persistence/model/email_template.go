package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/sponsor-tracker/backend/internal/domain/entity"
)

// EmailTemplateModel represents the email_templates table in the database.
type EmailTemplateModel struct {
	ID               uuid.UUID      `gorm:"type:uuid;primaryKey"`
	TemplateName     string         `gorm:"type:varchar(255);not null"`
	TemplateCategory string         `gorm:"type:varchar(50);not null;index"`
	SubjectLine      string         `gorm:"type:varchar(255);not null"`
	BodyHTML         string         `gorm:"type:text;not null"`
	SendTiming       string         `gorm:"type:varchar(255)"`
	MergeFields      pq.StringArray `gorm:"type:text[]"`
	IsActive         bool           `gorm:"not null"`
	CreatedAt        time.Time      `gorm:"not null"`
	UpdatedAt        time.Time      `gorm:"not null"`
}

// TableName returns the table name for the EmailTemplateModel.
func (EmailTemplateModel) TableName() string {
	return "email_templates"
}

// ToEntity converts an EmailTemplateModel to a domain EmailTemplate entity.
func (m *EmailTemplateModel) ToEntity() *entity.EmailTemplate {
	fields := make([]string, len(m.MergeFields))
	copy(fields, m.MergeFields)

	return &entity.EmailTemplate{
		ID:          m.ID,
		Name:        m.TemplateName,
		Category:    entity.EmailTemplateCategory(m.TemplateCategory),
		SubjectLine: m.SubjectLine,
		BodyHTML:    m.BodyHTML,
		SendTiming:  m.SendTiming,
		MergeFields: fields,
		IsActive:    m.IsActive,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// EmailTemplateFromEntity creates an EmailTemplateModel from a domain entity.
func EmailTemplateFromEntity(t *entity.EmailTemplate) *EmailTemplateModel {
	return &EmailTemplateModel{
		ID:               t.ID,
		TemplateName:     t.Name,
		TemplateCategory: string(t.Category),
		SubjectLine:      t.SubjectLine,
		BodyHTML:         t.BodyHTML,
		SendTiming:       t.SendTiming,
		MergeFields:      pq.StringArray(t.MergeFields),
		IsActive:         t.IsActive,
		CreatedAt:        t.CreatedAt,
		UpdatedAt:        t.UpdatedAt,
	}
}
