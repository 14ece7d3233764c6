package sponsor

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/sponsor-tracker/backend/internal/application/adapter"
	"github.com/sponsor-tracker/backend/internal/domain/entity"
	domainerror "github.com/sponsor-tracker/backend/internal/domain/error"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type memorySponsors struct {
	byID    map[uuid.UUID]*entity.Sponsor
	updates int
}

func (m *memorySponsors) Create(_ context.Context, s *entity.Sponsor) error {
	m.byID[s.ID] = s
	return nil
}

func (m *memorySponsors) FindByID(_ context.Context, id uuid.UUID) (*entity.Sponsor, error) {
	if s, ok := m.byID[id]; ok {
		return s, nil
	}
	return nil, domainerror.ErrSponsorNotFound
}

func (m *memorySponsors) FindByIDs(_ context.Context, ids []uuid.UUID) (map[uuid.UUID]*entity.Sponsor, error) {
	out := make(map[uuid.UUID]*entity.Sponsor)
	for _, id := range ids {
		if s, ok := m.byID[id]; ok {
			out[id] = s
		}
	}
	return out, nil
}

func (m *memorySponsors) List(_ context.Context, filter adapter.SponsorFilter) ([]*entity.Sponsor, error) {
	var out []*entity.Sponsor
	for _, s := range m.byID {
		if filter.ActiveOnly && !s.IsActive {
			continue
		}
		if filter.Tag != "" && !s.HasTag(filter.Tag) {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (m *memorySponsors) Update(_ context.Context, s *entity.Sponsor) error {
	m.updates++
	m.byID[s.ID] = s
	return nil
}

var clock = fixedClock{now: time.Date(2025, time.October, 16, 0, 0, 0, 0, time.UTC)}

func TestCreateSponsor(t *testing.T) {
	repo := &memorySponsors{byID: map[uuid.UUID]*entity.Sponsor{}}
	uc := NewCreateSponsorUseCase(repo, clock)

	out, err := uc.Execute(context.Background(), CreateSponsorInput{
		OrganizationName: "Acme",
		ContactEmail:     "Events@Acme.org",
		Tags:             []string{"Local"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Sponsor.ContactEmail != "events@acme.org" || !out.Sponsor.IsActive {
		t.Errorf("sponsor = %+v", out.Sponsor)
	}

	_, err = uc.Execute(context.Background(), CreateSponsorInput{OrganizationName: "  "})
	if !errors.Is(err, domainerror.ErrSponsorNameRequired) {
		t.Errorf("expected ErrSponsorNameRequired, got %v", err)
	}

	_, err = uc.Execute(context.Background(), CreateSponsorInput{OrganizationName: "Globex", ContactEmail: "not an email"})
	if !errors.Is(err, domainerror.ErrInvalidContactEmail) {
		t.Errorf("expected ErrInvalidContactEmail, got %v", err)
	}
}

func TestArchiveAndListSponsors(t *testing.T) {
	repo := &memorySponsors{byID: map[uuid.UUID]*entity.Sponsor{}}
	create := NewCreateSponsorUseCase(repo, clock)
	archive := NewArchiveSponsorUseCase(repo, clock)
	list := NewListSponsorsUseCase(repo)

	acme, _ := create.Execute(context.Background(), CreateSponsorInput{OrganizationName: "Acme", Tags: []string{"local"}})
	if _, err := create.Execute(context.Background(), CreateSponsorInput{OrganizationName: "Globex", Tags: []string{"local"}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := 0; i < 2; i++ {
		if _, err := archive.Execute(context.Background(), ArchiveSponsorInput{SponsorID: acme.Sponsor.ID}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if repo.updates != 1 {
		t.Errorf("archiving twice should write once, got %d updates", repo.updates)
	}

	out, err := list.Execute(context.Background(), ListSponsorsInput{ActiveOnly: true, Tag: "LOCAL"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Sponsors) != 1 || out.Sponsors[0].OrganizationName != "Globex" {
		t.Errorf("active local sponsors = %v", out.Sponsors)
	}

	if _, err := archive.Execute(context.Background(), ArchiveSponsorInput{SponsorID: uuid.New()}); !errors.Is(err, domainerror.ErrSponsorNotFound) {
		t.Errorf("expected ErrSponsorNotFound, got %v", err)
	}
}
