package sponsor

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/sponsor-tracker/backend/internal/application/adapter"
	"github.com/sponsor-tracker/backend/internal/domain/entity"
	domainerror "github.com/sponsor-tracker/backend/internal/domain/error"
)

type memoryContacts struct {
	contacts []*entity.Contact
}

func (m *memoryContacts) Create(_ context.Context, c *entity.Contact) error {
	if c.IsPrimary {
		for _, other := range m.contacts {
			if other.SponsorID == c.SponsorID {
				other.IsPrimary = false
			}
		}
	}
	m.contacts = append(m.contacts, c)
	return nil
}

func (m *memoryContacts) List(_ context.Context, filter adapter.ContactFilter) ([]*entity.Contact, error) {
	var out []*entity.Contact
	for _, c := range m.contacts {
		if filter.SponsorID != nil && c.SponsorID != *filter.SponsorID {
			continue
		}
		if filter.PrimaryOnly && !c.IsPrimary {
			continue
		}
		if filter.Search != "" && !strings.Contains(strings.ToLower(c.ContactName), strings.ToLower(filter.Search)) {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func sponsorsWith(names ...string) (*memorySponsors, []*entity.Sponsor) {
	repo := &memorySponsors{byID: map[uuid.UUID]*entity.Sponsor{}}
	var out []*entity.Sponsor
	for _, name := range names {
		s := entity.NewSponsor(name, "", "", nil, clock.now)
		repo.byID[s.ID] = s
		out = append(out, s)
	}
	return repo, out
}

func TestAddContactPrimarySelection(t *testing.T) {
	sponsors, seeded := sponsorsWith("Acme")
	acme := seeded[0]
	contacts := &memoryContacts{}
	uc := NewAddContactUseCase(sponsors, contacts, clock)

	first, err := uc.Execute(context.Background(), AddContactInput{SponsorID: acme.ID, ContactName: "Dana", Email: "Dana@Acme.org"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !first.Contact.IsPrimary {
		t.Error("first contact of a sponsor should become primary")
	}
	if first.Contact.Email != "dana@acme.org" {
		t.Errorf("email = %q, want lower-cased", first.Contact.Email)
	}

	second, err := uc.Execute(context.Background(), AddContactInput{SponsorID: acme.ID, ContactName: "Lee"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.Contact.IsPrimary {
		t.Error("later contacts stay secondary unless asked")
	}

	third, err := uc.Execute(context.Background(), AddContactInput{SponsorID: acme.ID, ContactName: "Kim", IsPrimary: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !third.Contact.IsPrimary || first.Contact.IsPrimary {
		t.Errorf("primary should move to Kim, got first=%v third=%v", first.Contact.IsPrimary, third.Contact.IsPrimary)
	}
}

func TestAddContactValidation(t *testing.T) {
	sponsors, seeded := sponsorsWith("Acme")
	uc := NewAddContactUseCase(sponsors, &memoryContacts{}, clock)

	tests := []struct {
		name  string
		input AddContactInput
		code  domainerror.SponsorshipErrorCode
	}{
		{"blank name", AddContactInput{SponsorID: seeded[0].ID, ContactName: "  "}, domainerror.ErrCodeContactNameRequired},
		{"bad email", AddContactInput{SponsorID: seeded[0].ID, ContactName: "Dana", Email: "not-an-email"}, domainerror.ErrCodeInvalidContactEmail},
		{"unknown sponsor", AddContactInput{SponsorID: uuid.New(), ContactName: "Dana"}, domainerror.ErrCodeSponsorNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.input)
			var sErr *domainerror.SponsorshipError
			if !errors.As(err, &sErr) || sErr.Code != tt.code {
				t.Fatalf("err = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestListContactsJoinsSponsorsAndCounts(t *testing.T) {
	sponsors, seeded := sponsorsWith("Acme", "Bolt")
	orphan := entity.NewContact(uuid.New(), "Gone", "", "", "555-0199", clock.now)
	contacts := &memoryContacts{contacts: []*entity.Contact{
		{ID: uuid.New(), SponsorID: seeded[0].ID, ContactName: "Dana", Email: "dana@acme.org", IsPrimary: true},
		{ID: uuid.New(), SponsorID: seeded[1].ID, ContactName: "Sam", Phone: "555-0100"},
		orphan,
	}}

	out, err := NewListContactsUseCase(sponsors, contacts).Execute(context.Background(), ListContactsInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := ContactStats{Total: 3, Primary: 1, WithEmail: 1, WithPhone: 2}
	if out.Stats != want {
		t.Errorf("stats = %+v, want %+v", out.Stats, want)
	}
	if out.Contacts[0].Sponsor == nil || out.Contacts[0].Sponsor.OrganizationName != "Acme" {
		t.Errorf("first contact should carry its sponsor, got %+v", out.Contacts[0].Sponsor)
	}
	if out.Contacts[2].Sponsor != nil {
		t.Errorf("contact of a missing sponsor should have no sponsor")
	}
}
