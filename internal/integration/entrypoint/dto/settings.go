package dto

import (
	"time"

	"github.com/sponsor-tracker/backend/internal/application/usecase/tag"
	"github.com/sponsor-tracker/backend/internal/domain/entity"
)

// CreateTagRequest represents the request body for tag creation.
type CreateTagRequest struct {
	Name        string `json:"tag_name" binding:"required,max=50"`
	Category    string `json:"tag_category,omitempty" binding:"max=50"`
	Color       string `json:"color,omitempty"`
	Description string `json:"description,omitempty"`
}

// TagResponse represents a single tag in API responses.
type TagResponse struct {
	ID           string `json:"id"`
	Name         string `json:"tag_name"`
	Category     string `json:"tag_category"`
	Color        string `json:"color"`
	Description  string `json:"description"`
	SponsorCount int    `json:"sponsor_count"`
}

// TagListResponse represents the response for listing tags.
type TagListResponse struct {
	Tags []TagResponse `json:"tags"`
}

// ToTagResponse converts a domain Tag entity to a TagResponse DTO.
func ToTagResponse(t *entity.Tag, sponsorCount int) TagResponse {
	return TagResponse{
		ID:           t.ID.String(),
		Name:         t.Name,
		Category:     t.Category,
		Color:        t.Color,
		Description:  t.Description,
		SponsorCount: sponsorCount,
	}
}

// ToTagListResponse converts tag usages to a TagListResponse DTO.
func ToTagListResponse(output *tag.ListTagsOutput) TagListResponse {
	out := make([]TagResponse, len(output.Tags))
	for i, u := range output.Tags {
		out[i] = ToTagResponse(u.Tag, u.SponsorCount)
	}
	return TagListResponse{Tags: out}
}

// CreateEmailTemplateRequest represents the request body for email template creation.
type CreateEmailTemplateRequest struct {
	Name        string `json:"template_name" binding:"required,max=255"`
	Category    string `json:"category" binding:"required"`
	SubjectLine string `json:"subject_line" binding:"required,max=500"`
	BodyHTML    string `json:"body_html" binding:"required"`
	SendTiming  string `json:"send_timing,omitempty" binding:"max=100"`
}

// EmailTemplateResponse represents a single email template in API responses.
type EmailTemplateResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"template_name"`
	Category    string    `json:"category"`
	SubjectLine string    `json:"subject_line"`
	BodyHTML    string    `json:"body_html"`
	SendTiming  string    `json:"send_timing"`
	MergeFields []string  `json:"merge_fields"`
	IsActive    bool      `json:"is_active"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// EmailTemplateListResponse represents the response for listing email templates.
type EmailTemplateListResponse struct {
	Templates []EmailTemplateResponse `json:"templates"`
}

// ToEmailTemplateResponse converts a domain EmailTemplate entity to its response DTO.
func ToEmailTemplateResponse(t *entity.EmailTemplate) EmailTemplateResponse {
	fields := t.MergeFields
	if fields == nil {
		fields = []string{}
	}
	return EmailTemplateResponse{
		ID:          t.ID.String(),
		Name:        t.Name,
		Category:    string(t.Category),
		SubjectLine: t.SubjectLine,
		BodyHTML:    t.BodyHTML,
		SendTiming:  t.SendTiming,
		MergeFields: fields,
		IsActive:    t.IsActive,
		UpdatedAt:   t.UpdatedAt,
	}
}

// ToEmailTemplateListResponse converts templates to an EmailTemplateListResponse DTO.
func ToEmailTemplateListResponse(templates []*entity.EmailTemplate) EmailTemplateListResponse {
	out := make([]EmailTemplateResponse, len(templates))
	for i, t := range templates {
		out[i] = ToEmailTemplateResponse(t)
	}
	return EmailTemplateListResponse{Templates: out}
}
