package email

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/sponsor-tracker/backend/internal/application/adapter"
	"github.com/sponsor-tracker/backend/internal/domain/entity"
	domainerror "github.com/sponsor-tracker/backend/internal/domain/error"
	"github.com/sponsor-tracker/backend/internal/integration/email/templates"
)

type fixedClock struct{ now time.Time }

func (c *fixedClock) Now() time.Time { return c.now }

type memoryQueue struct {
	mu   sync.Mutex
	jobs map[uuid.UUID]*entity.EmailJob
}

func newMemoryQueue() *memoryQueue {
	return &memoryQueue{jobs: map[uuid.UUID]*entity.EmailJob{}}
}

func (q *memoryQueue) Create(_ context.Context, job *entity.EmailJob) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.jobs[job.ID] = job
	return nil
}

func (q *memoryQueue) GetPendingJobs(_ context.Context, now time.Time, limit int) ([]*entity.EmailJob, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	var due []*entity.EmailJob
	for _, job := range q.jobs {
		if job.Status == entity.EmailStatusPending && !job.ScheduledAt.After(now) {
			due = append(due, job)
		}
	}
	sort.Slice(due, func(i, j int) bool { return due[i].ScheduledAt.Before(due[j].ScheduledAt) })
	if len(due) > limit {
		due = due[:limit]
	}
	return due, nil
}

func (q *memoryQueue) Update(_ context.Context, job *entity.EmailJob) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.jobs[job.ID] = job
	return nil
}

func (q *memoryQueue) GetByID(_ context.Context, id uuid.UUID) (*entity.EmailJob, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	job, ok := q.jobs[id]
	if !ok {
		return nil, domainerror.ErrEmailJobNotFound
	}
	return job, nil
}

func (q *memoryQueue) GetBySponsorship(_ context.Context, id uuid.UUID) ([]*entity.EmailJob, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	var jobs []*entity.EmailJob
	for _, job := range q.jobs {
		if job.SponsorshipID != nil && *job.SponsorshipID == id {
			jobs = append(jobs, job)
		}
	}
	return jobs, nil
}

func (q *memoryQueue) DeleteSentBefore(_ context.Context, cutoff time.Time) (int64, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	var deleted int64
	for id, job := range q.jobs {
		if job.Status == entity.EmailStatusSent && job.ProcessedAt != nil && job.ProcessedAt.Before(cutoff) {
			delete(q.jobs, id)
			deleted++
		}
	}
	return deleted, nil
}

func (q *memoryQueue) only(t *testing.T) *entity.EmailJob {
	t.Helper()
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.jobs) != 1 {
		t.Fatalf("expected exactly one job, got %d", len(q.jobs))
	}
	for _, job := range q.jobs {
		return job
	}
	return nil
}

func setup(t *testing.T) (*memoryQueue, *MockEmailSender, *fixedClock, *Service, *Worker) {
	t.Helper()
	renderer, err := templates.NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	queue := newMemoryQueue()
	sender := NewMockEmailSender()
	clock := &fixedClock{now: time.Date(2026, time.April, 18, 9, 0, 0, 0, time.UTC)}
	service := NewService(queue, clock, "Lakeside Youth Rugby", "https://sponsors.example.org/")
	worker := NewWorker(queue, sender, renderer, clock, WorkerConfig{PollInterval: time.Second, BatchSize: 5, Retention: 24 * time.Hour})
	return queue, sender, clock, service, worker
}

func reminderInput() adapter.QueueSponsorEmailInput {
	return adapter.QueueSponsorEmailInput{
		SponsorshipID:    uuid.New(),
		OrganizationName: "Acme Hardware",
		ContactName:      "Dana",
		ContactEmail:     "dana@acme.test",
		TierName:         "Gold",
		FiscalYear:       "2025/2026",
		ExpirationDate:   "2026-04-30",
		DaysRemaining:    12,
		TotalValue:       "2500.00",
	}
}

func TestServiceQueuesRenewalReminder(t *testing.T) {
	queue, _, _, service, _ := setup(t)
	input := reminderInput()

	if err := service.QueueRenewalReminder(context.Background(), input); err != nil {
		t.Fatalf("QueueRenewalReminder: %v", err)
	}

	job := queue.only(t)
	if job.TemplateType != entity.TemplateRenewalReminder {
		t.Errorf("template = %s", job.TemplateType)
	}
	if job.SponsorshipID == nil || *job.SponsorshipID != input.SponsorshipID {
		t.Errorf("sponsorship id = %v, want %s", job.SponsorshipID, input.SponsorshipID)
	}
	if got := job.TemplateData["renewal_url"]; got != "https://sponsors.example.org/sponsorships/"+input.SponsorshipID.String() {
		t.Errorf("renewal_url = %v", got)
	}
}

func TestServiceRejectsMissingRecipient(t *testing.T) {
	_, _, _, service, _ := setup(t)
	input := reminderInput()
	input.ContactEmail = "  "

	err := service.QueueLapsedFollowUp(context.Background(), input)
	if !errors.Is(err, domainerror.ErrMissingRecipient) {
		t.Fatalf("expected ErrMissingRecipient, got %v", err)
	}
}

func TestWorkerSendsQueuedEmail(t *testing.T) {
	queue, sender, _, service, worker := setup(t)
	if err := service.QueueRenewalReminder(context.Background(), reminderInput()); err != nil {
		t.Fatalf("QueueRenewalReminder: %v", err)
	}

	worker.ProcessNow(context.Background())

	sent := sender.Sent()
	if len(sent) != 1 {
		t.Fatalf("sent %d emails, want 1", len(sent))
	}
	if sent[0].To != "dana@acme.test" || sent[0].Text == "" || sent[0].HTML == "" {
		t.Errorf("unexpected email: %+v", sent[0])
	}

	job := queue.only(t)
	if job.Status != entity.EmailStatusSent || job.ResendID != "mock-1" {
		t.Errorf("job status = %s, resend id = %q", job.Status, job.ResendID)
	}
}

func TestWorkerRetriesTemporaryFailure(t *testing.T) {
	queue, sender, clock, service, worker := setup(t)
	if err := service.QueueRenewalReminder(context.Background(), reminderInput()); err != nil {
		t.Fatalf("QueueRenewalReminder: %v", err)
	}
	sender.SetFailure(errors.New("503 service unavailable"), false)

	worker.ProcessNow(context.Background())

	job := queue.only(t)
	if job.Status != entity.EmailStatusPending || job.Attempts != 1 {
		t.Fatalf("status = %s attempts = %d, want pending after 1 attempt", job.Status, job.Attempts)
	}
	if !job.ScheduledAt.After(clock.now) {
		t.Errorf("retry should be scheduled after now, got %s", job.ScheduledAt)
	}

	// Not due yet.
	sender.Reset()
	worker.ProcessNow(context.Background())
	if len(sender.Sent()) != 0 {
		t.Fatal("job retried before its scheduled time")
	}

	clock.now = job.ScheduledAt
	worker.ProcessNow(context.Background())
	if len(sender.Sent()) != 1 {
		t.Fatal("job not retried once due")
	}
}

func TestWorkerStopsOnPermanentFailure(t *testing.T) {
	queue, sender, _, service, worker := setup(t)
	if err := service.QueueRenewalReminder(context.Background(), reminderInput()); err != nil {
		t.Fatalf("QueueRenewalReminder: %v", err)
	}
	sender.SetFailure(errors.New("422 validation error"), true)

	worker.ProcessNow(context.Background())

	if job := queue.only(t); job.Status != entity.EmailStatusFailed {
		t.Errorf("status = %s, want failed", job.Status)
	}
}

func TestWorkerFailsUnknownTemplate(t *testing.T) {
	queue, sender, clock, _, worker := setup(t)
	job := entity.NewEmailJob("password_reset", "x@y.test", "", "hi", nil, clock.now)
	_ = queue.Create(context.Background(), job)

	worker.ProcessNow(context.Background())

	if len(sender.Sent()) != 0 {
		t.Error("unknown template should not be sent")
	}
	if got := queue.only(t); got.Status != entity.EmailStatusFailed {
		t.Errorf("status = %s, want failed", got.Status)
	}
}

func TestWorkerPurgesOldSentJobs(t *testing.T) {
	queue, _, clock, service, worker := setup(t)
	if err := service.QueueRenewalReminder(context.Background(), reminderInput()); err != nil {
		t.Fatalf("QueueRenewalReminder: %v", err)
	}
	worker.ProcessNow(context.Background())

	clock.now = clock.now.Add(48 * time.Hour)
	worker.purgeSent(context.Background())

	queue.mu.Lock()
	remaining := len(queue.jobs)
	queue.mu.Unlock()
	if remaining != 0 {
		t.Errorf("expected sent job to be purged, %d remain", remaining)
	}
}

func TestIsPermanentError(t *testing.T) {
	tests := map[string]bool{
		"401 unauthorized":         true,
		"422 validation_error":     true,
		"429 too many requests":    false,
		"500 internal error":       false,
		"connection reset by peer": false,
	}
	for msg, want := range tests {
		if got := isPermanentError(errors.New(msg)); got != want {
			t.Errorf("isPermanentError(%q) = %v, want %v", msg, got, want)
		}
	}
}
