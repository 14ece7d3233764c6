// Package entity defines the core business entities for the domain layer.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Sponsor represents an organization that funds the nonprofit through sponsorships.
type Sponsor struct {
	ID               uuid.UUID
	OrganizationName string
	ContactName      string
	ContactEmail     string
	ContactPhone     string
	Website          string
	IsActive         bool
	Tags             []string
	Notes            string
	CreatedAt        time.Time
	UpdatedAt        time.Time

	PrimaryContact *Contact // Loaded on demand
}

// NewSponsor creates a new active Sponsor entity.
func NewSponsor(organizationName, contactName, contactEmail string, tags []string, now time.Time) *Sponsor {
	return &Sponsor{
		ID:               uuid.New(),
		OrganizationName: strings.TrimSpace(organizationName),
		ContactName:      strings.TrimSpace(contactName),
		ContactEmail:     strings.ToLower(strings.TrimSpace(contactEmail)),
		IsActive:         true,
		Tags:             normalizeTags(tags),
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

// Archive marks the sponsor as inactive.
func (s *Sponsor) Archive(now time.Time) {
	s.IsActive = false
	s.UpdatedAt = now
}

// HasTag reports whether the sponsor carries tag, ignoring case.
func (s *Sponsor) HasTag(tag string) bool {
	tag = strings.ToLower(strings.TrimSpace(tag))
	for _, t := range s.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// HasContactEmail reports whether the sponsor can receive email.
func (s *Sponsor) HasContactEmail() bool {
	email, _ := s.ReminderRecipient()
	return email != ""
}

// ReminderRecipient returns where sponsor email goes: the primary contact when it
// has an address, otherwise the contact details kept on the sponsor itself.
func (s *Sponsor) ReminderRecipient() (email, name string) {
	if s == nil {
		return "", ""
	}
	if s.PrimaryContact.HasEmail() {
		return s.PrimaryContact.Email, s.PrimaryContact.ContactName
	}
	return s.ContactEmail, s.ContactName
}

func normalizeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
