// Package sponsor contains sponsor-related use cases.
package sponsor

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"github.com/sponsor-tracker/backend/internal/application/adapter"
	"github.com/sponsor-tracker/backend/internal/domain/entity"
	domainerror "github.com/sponsor-tracker/backend/internal/domain/error"
)

// CreateSponsorInput represents the input for sponsor creation.
type CreateSponsorInput struct {
	OrganizationName string
	ContactName      string
	ContactEmail     string
	ContactPhone     string
	Website          string
	Tags             []string
	Notes            string
}

// CreateSponsorOutput represents the output of sponsor creation.
type CreateSponsorOutput struct {
	Sponsor *entity.Sponsor
}

// CreateSponsorUseCase handles sponsor creation logic.
type CreateSponsorUseCase struct {
	sponsorRepo adapter.SponsorRepository
	clock       adapter.Clock
}

// NewCreateSponsorUseCase creates a new CreateSponsorUseCase instance.
func NewCreateSponsorUseCase(sponsorRepo adapter.SponsorRepository, clock adapter.Clock) *CreateSponsorUseCase {
	return &CreateSponsorUseCase{
		sponsorRepo: sponsorRepo,
		clock:       clock,
	}
}

// Execute performs the sponsor creation.
func (uc *CreateSponsorUseCase) Execute(ctx context.Context, input CreateSponsorInput) (*CreateSponsorOutput, error) {
	if strings.TrimSpace(input.OrganizationName) == "" {
		return nil, domainerror.NewSponsorshipError(
			domainerror.ErrCodeSponsorNameRequired,
			"organization name is required",
			domainerror.ErrSponsorNameRequired,
		)
	}

	if email := strings.TrimSpace(input.ContactEmail); email != "" {
		if _, err := mail.ParseAddress(email); err != nil {
			return nil, domainerror.NewSponsorshipError(
				domainerror.ErrCodeInvalidContactEmail,
				"contact email is not a valid address",
				domainerror.ErrInvalidContactEmail,
			)
		}
	}

	sponsor := entity.NewSponsor(input.OrganizationName, input.ContactName, input.ContactEmail, input.Tags, uc.clock.Now().UTC())
	sponsor.ContactPhone = strings.TrimSpace(input.ContactPhone)
	sponsor.Website = strings.TrimSpace(input.Website)
	sponsor.Notes = input.Notes

	if err := uc.sponsorRepo.Create(ctx, sponsor); err != nil {
		return nil, fmt.Errorf("failed to create sponsor: %w", err)
	}

	return &CreateSponsorOutput{Sponsor: sponsor}, nil
}
