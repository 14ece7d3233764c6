package sponsor

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"github.com/google/uuid"

	"github.com/sponsor-tracker/backend/internal/application/adapter"
	"github.com/sponsor-tracker/backend/internal/domain/entity"
	domainerror "github.com/sponsor-tracker/backend/internal/domain/error"
)

// AddContactInput represents the input for adding a contact to a sponsor.
type AddContactInput struct {
	SponsorID   uuid.UUID
	ContactName string
	Title       string
	Email       string
	Phone       string
	IsPrimary   bool
}

// AddContactOutput represents the stored contact.
type AddContactOutput struct {
	Contact *entity.Contact
}

// AddContactUseCase adds a contact to a sponsor. The first contact of a sponsor is
// always primary; a later primary contact takes the flag from the previous one.
type AddContactUseCase struct {
	sponsorRepo adapter.SponsorRepository
	contactRepo adapter.ContactRepository
	clock       adapter.Clock
}

// NewAddContactUseCase creates a new AddContactUseCase instance.
func NewAddContactUseCase(sponsorRepo adapter.SponsorRepository, contactRepo adapter.ContactRepository, clock adapter.Clock) *AddContactUseCase {
	return &AddContactUseCase{
		sponsorRepo: sponsorRepo,
		contactRepo: contactRepo,
		clock:       clock,
	}
}

// Execute validates and stores the contact.
func (uc *AddContactUseCase) Execute(ctx context.Context, input AddContactInput) (*AddContactOutput, error) {
	if strings.TrimSpace(input.ContactName) == "" {
		return nil, domainerror.NewSponsorshipError(
			domainerror.ErrCodeContactNameRequired,
			"contact name is required",
			domainerror.ErrContactNameRequired,
		)
	}
	if email := strings.TrimSpace(input.Email); email != "" {
		if _, err := mail.ParseAddress(email); err != nil {
			return nil, domainerror.NewSponsorshipError(
				domainerror.ErrCodeInvalidContactEmail,
				"contact email is not a valid address",
				domainerror.ErrInvalidContactEmail,
			)
		}
	}

	sponsor, err := uc.sponsorRepo.FindByID(ctx, input.SponsorID)
	if err != nil {
		return nil, lookupError(err)
	}

	existing, err := uc.contactRepo.List(ctx, adapter.ContactFilter{SponsorID: &sponsor.ID})
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}

	contact := entity.NewContact(sponsor.ID, input.ContactName, input.Title, input.Email, input.Phone, uc.clock.Now().UTC())
	contact.IsPrimary = input.IsPrimary || len(existing) == 0

	if err := uc.contactRepo.Create(ctx, contact); err != nil {
		return nil, fmt.Errorf("failed to create contact: %w", err)
	}

	return &AddContactOutput{Contact: contact}, nil
}
