package entity

import (
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// EmailTemplateCategory groups stored email templates by purpose.
type EmailTemplateCategory string

const (
	CategoryWelcome             EmailTemplateCategory = "Welcome"
	CategoryPaymentConfirmation EmailTemplateCategory = "Payment Confirmation"
	CategoryRenewalReminder     EmailTemplateCategory = "Renewal Reminder"
	CategoryLapsedFollowUp      EmailTemplateCategory = "Lapsed Follow-up"
	CategoryThankYou            EmailTemplateCategory = "Thank You"
)

// IsValid reports whether c is a known category.
func (c EmailTemplateCategory) IsValid() bool {
	switch c {
	case CategoryWelcome, CategoryPaymentConfirmation, CategoryRenewalReminder, CategoryLapsedFollowUp, CategoryThankYou:
		return true
	}
	return false
}

var mergeFieldPattern = regexp.MustCompile(`\{\{\s*([a-zA-Z_][a-zA-Z0-9_]*)\s*\}\}`)

// EmailTemplate is a coordinator-managed email with {{merge_field}} placeholders.
type EmailTemplate struct {
	ID          uuid.UUID
	Name        string
	Category    EmailTemplateCategory
	SubjectLine string
	BodyHTML    string
	SendTiming  string // Free text, e.g. "30 days before expiration"
	MergeFields []string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewEmailTemplate creates an active template and derives its merge fields.
func NewEmailTemplate(name string, category EmailTemplateCategory, subject, body, sendTiming string, now time.Time) *EmailTemplate {
	return &EmailTemplate{
		ID:          uuid.New(),
		Name:        strings.TrimSpace(name),
		Category:    category,
		SubjectLine: strings.TrimSpace(subject),
		BodyHTML:    body,
		SendTiming:  strings.TrimSpace(sendTiming),
		MergeFields: ExtractMergeFields(subject, body),
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// ExtractMergeFields returns the distinct {{field}} names used in texts, sorted.
func ExtractMergeFields(texts ...string) []string {
	seen := map[string]struct{}{}
	fields := []string{}
	for _, text := range texts {
		for _, match := range mergeFieldPattern.FindAllStringSubmatch(text, -1) {
			name := strings.ToLower(match[1])
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			fields = append(fields, name)
		}
	}
	sort.Strings(fields)
	return fields
}
