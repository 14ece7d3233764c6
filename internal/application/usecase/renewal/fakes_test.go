package renewal

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/sponsor-tracker/backend/internal/application/adapter"
	"github.com/sponsor-tracker/backend/internal/domain/entity"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type fakeSponsorshipRepo struct {
	records []*entity.Sponsorship
	updated []uuid.UUID
	listErr error
}

func (r *fakeSponsorshipRepo) Create(_ context.Context, s *entity.Sponsorship) error {
	r.records = append(r.records, s)
	return nil
}

func (r *fakeSponsorshipRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Sponsorship, error) {
	for _, s := range r.records {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, errors.New("not found")
}

func (r *fakeSponsorshipRepo) List(_ context.Context, _ adapter.SponsorshipFilter) ([]*entity.Sponsorship, error) {
	return r.records, nil
}

func (r *fakeSponsorshipRepo) ListReceived(_ context.Context) ([]*entity.Sponsorship, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	var out []*entity.Sponsorship
	for _, s := range r.records {
		if s.Status == entity.SponsorshipStatusReceived {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeSponsorshipRepo) Update(_ context.Context, s *entity.Sponsorship) error {
	r.updated = append(r.updated, s.ID)
	return nil
}

type fakeEmailService struct {
	reminders []adapter.QueueSponsorEmailInput
	followUps []adapter.QueueSponsorEmailInput
	err       error
}

func (f *fakeEmailService) QueueRenewalReminder(_ context.Context, input adapter.QueueSponsorEmailInput) error {
	if f.err != nil {
		return f.err
	}
	f.reminders = append(f.reminders, input)
	return nil
}

func (f *fakeEmailService) QueueLapsedFollowUp(_ context.Context, input adapter.QueueSponsorEmailInput) error {
	if f.err != nil {
		return f.err
	}
	f.followUps = append(f.followUps, input)
	return nil
}

type fakeEmailQueueRepo struct {
	jobs []*entity.EmailJob
}

func (f *fakeEmailQueueRepo) Create(_ context.Context, job *entity.EmailJob) error {
	f.jobs = append(f.jobs, job)
	return nil
}

func (f *fakeEmailQueueRepo) GetPendingJobs(_ context.Context, _ time.Time, _ int) ([]*entity.EmailJob, error) {
	return nil, nil
}

func (f *fakeEmailQueueRepo) Update(_ context.Context, _ *entity.EmailJob) error { return nil }

func (f *fakeEmailQueueRepo) GetByID(_ context.Context, _ uuid.UUID) (*entity.EmailJob, error) {
	return nil, errors.New("not found")
}

func (f *fakeEmailQueueRepo) GetBySponsorship(_ context.Context, id uuid.UUID) ([]*entity.EmailJob, error) {
	var out []*entity.EmailJob
	for _, j := range f.jobs {
		if j.SponsorshipID != nil && *j.SponsorshipID == id {
			out = append(out, j)
		}
	}
	return out, nil
}

func (f *fakeEmailQueueRepo) DeleteSentBefore(_ context.Context, _ time.Time) (int64, error) {
	return 0, nil
}
