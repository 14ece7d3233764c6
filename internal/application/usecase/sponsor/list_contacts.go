package sponsor

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/sponsor-tracker/backend/internal/application/adapter"
	"github.com/sponsor-tracker/backend/internal/domain/entity"
)

// ListContactsInput represents the input for listing contacts.
type ListContactsInput struct {
	SponsorID   *uuid.UUID
	PrimaryOnly bool
	Search      string
}

// ContactWithSponsor pairs a contact with the organization it works for.
type ContactWithSponsor struct {
	Contact *entity.Contact
	Sponsor *entity.Sponsor // Nil when the sponsor row is gone
}

// ContactStats summarizes a contact listing.
type ContactStats struct {
	Total     int
	Primary   int
	WithEmail int
	WithPhone int
}

// ListContactsOutput represents the output of listing contacts.
type ListContactsOutput struct {
	Contacts []ContactWithSponsor
	Stats    ContactStats
}

// ListContactsUseCase lists contacts across sponsors.
type ListContactsUseCase struct {
	sponsorRepo adapter.SponsorRepository
	contactRepo adapter.ContactRepository
}

// NewListContactsUseCase creates a new ListContactsUseCase instance.
func NewListContactsUseCase(sponsorRepo adapter.SponsorRepository, contactRepo adapter.ContactRepository) *ListContactsUseCase {
	return &ListContactsUseCase{
		sponsorRepo: sponsorRepo,
		contactRepo: contactRepo,
	}
}

// Execute lists the contacts matching the filter with their sponsors.
func (uc *ListContactsUseCase) Execute(ctx context.Context, input ListContactsInput) (*ListContactsOutput, error) {
	contacts, err := uc.contactRepo.List(ctx, adapter.ContactFilter{
		SponsorID:   input.SponsorID,
		PrimaryOnly: input.PrimaryOnly,
		Search:      input.Search,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}

	ids := make([]uuid.UUID, 0, len(contacts))
	for _, c := range contacts {
		ids = append(ids, c.SponsorID)
	}
	sponsors, err := uc.sponsorRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load sponsors: %w", err)
	}

	output := &ListContactsOutput{Contacts: make([]ContactWithSponsor, 0, len(contacts))}
	for _, c := range contacts {
		output.Contacts = append(output.Contacts, ContactWithSponsor{Contact: c, Sponsor: sponsors[c.SponsorID]})
		output.Stats.Total++
		if c.IsPrimary {
			output.Stats.Primary++
		}
		if c.HasEmail() {
			output.Stats.WithEmail++
		}
		if c.Phone != "" {
			output.Stats.WithPhone++
		}
	}
	return output, nil
}
