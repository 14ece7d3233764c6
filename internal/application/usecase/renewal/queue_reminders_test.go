package renewal

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"

	"github.com/sponsor-tracker/backend/internal/domain/entity"
	domainerror "github.com/sponsor-tracker/backend/internal/domain/error"
	"github.com/sponsor-tracker/backend/internal/domain/valueobject"
)

func withSponsor(s *entity.Sponsorship, email string) *entity.Sponsorship {
	s.Sponsor = &entity.Sponsor{ID: s.SponsorID, OrganizationName: "Org " + s.ID.String()[:4], ContactEmail: email, IsActive: true}
	s.FiscalYear = valueobject.NewFiscalYear(2024)
	return s
}

func TestQueueReminders(t *testing.T) {
	urgent := withSponsor(received(10, 1000), "a@example.org")
	alreadySent := withSponsor(received(5, 1000), "b@example.org")
	alreadySent.RenewalReminderSent = true
	noEmail := withSponsor(received(20, 1000), "")
	soon := withSponsor(received(45, 1000), "c@example.org")
	lapsed := withSponsor(received(-10, 1000), "d@example.org")

	repo := &fakeSponsorshipRepo{records: []*entity.Sponsorship{urgent, alreadySent, noEmail, soon, lapsed}}
	emails := &fakeEmailService{}
	uc := NewQueueRemindersUseCase(repo, &fakeEmailQueueRepo{}, emails, fixedClock{now: today}, 30)

	out, err := uc.Execute(context.Background(), QueueRemindersInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(emails.reminders) != 1 || emails.reminders[0].SponsorshipID != urgent.ID {
		t.Fatalf("expected one reminder for the urgent sponsorship, got %+v", emails.reminders)
	}
	if got := emails.reminders[0]; got.ExpirationDate != valueobject.FormatDate(*urgent.ExpirationDate) || got.DaysRemaining != 10 || got.TotalValue != "1000.00" || got.TierName != entity.UnknownTierName {
		t.Errorf("reminder payload = %+v", got)
	}
	if len(emails.followUps) != 0 {
		t.Error("lapsed follow-ups must not be queued unless requested")
	}
	if !urgent.RenewalReminderSent || len(repo.updated) != 1 {
		t.Error("urgent sponsorship should be marked as reminded")
	}
	if len(out.Skipped) != 1 || out.Skipped[0].Reason != valueobject.ReasonMissingContactEmail {
		t.Errorf("Skipped = %+v", out.Skipped)
	}
}

func TestQueueRemindersLapsedFollowUp(t *testing.T) {
	lapsed := withSponsor(received(-10, 1000), "d@example.org")
	followedUp := withSponsor(received(-3, 1000), "e@example.org")

	queue := &fakeEmailQueueRepo{}
	job := entity.NewEmailJob(entity.TemplateLapsedFollowUp, "e@example.org", "", "", nil, today)
	job.SponsorshipID = &followedUp.ID
	queue.jobs = append(queue.jobs, job)

	repo := &fakeSponsorshipRepo{records: []*entity.Sponsorship{lapsed, followedUp}}
	emails := &fakeEmailService{}
	uc := NewQueueRemindersUseCase(repo, queue, emails, fixedClock{now: today}, 30)

	out, err := uc.Execute(context.Background(), QueueRemindersInput{IncludeLapsed: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(emails.followUps) != 1 || emails.followUps[0].SponsorshipID != lapsed.ID {
		t.Fatalf("expected one follow-up, got %+v", emails.followUps)
	}
	if len(out.Queued) != 1 || out.Queued[0].Template != entity.TemplateLapsedFollowUp || out.Queued[0].DaysRemaining != -10 {
		t.Errorf("Queued = %+v", out.Queued)
	}
}

func TestQueueRemindersDryRun(t *testing.T) {
	urgent := withSponsor(received(1, 1000), "a@example.org")
	repo := &fakeSponsorshipRepo{records: []*entity.Sponsorship{urgent}}
	emails := &fakeEmailService{}
	uc := NewQueueRemindersUseCase(repo, &fakeEmailQueueRepo{}, emails, fixedClock{now: today}, 30)

	out, err := uc.Execute(context.Background(), QueueRemindersInput{DryRun: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Queued) != 1 || len(emails.reminders) != 0 || urgent.RenewalReminderSent {
		t.Errorf("dry run must not queue or mark anything: queued=%d sent=%d", len(out.Queued), len(emails.reminders))
	}
}

func TestQueueRemindersWindow(t *testing.T) {
	near := withSponsor(received(7, 1000), "a@example.org")
	far := withSponsor(received(25, 1000), "b@example.org")
	repo := &fakeSponsorshipRepo{records: []*entity.Sponsorship{near, far}}
	emails := &fakeEmailService{}
	uc := NewQueueRemindersUseCase(repo, &fakeEmailQueueRepo{}, emails, fixedClock{now: today}, 14)

	if _, err := uc.Execute(context.Background(), QueueRemindersInput{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(emails.reminders) != 1 || emails.reminders[0].SponsorshipID != near.ID {
		t.Errorf("only sponsorships within 14 days should be reminded, got %+v", emails.reminders)
	}
}

func TestQueueRemindersDispatchFailure(t *testing.T) {
	urgent := withSponsor(received(3, 1000), "a@example.org")
	repo := &fakeSponsorshipRepo{records: []*entity.Sponsorship{urgent}}
	uc := NewQueueRemindersUseCase(repo, &fakeEmailQueueRepo{}, &fakeEmailService{err: errors.New("db down")}, fixedClock{now: today}, 30)

	_, err := uc.Execute(context.Background(), QueueRemindersInput{})
	if !errors.Is(err, domainerror.ErrReminderDispatchFailed) {
		t.Fatalf("expected ErrReminderDispatchFailed, got %v", err)
	}
	if urgent.RenewalReminderSent {
		t.Error("failed dispatch must not mark the reminder as sent")
	}
}

func TestGetPipelineLatestOnly(t *testing.T) {
	sponsor := uuid.New()
	old := received(-300, 100)
	current := received(15, 200)
	old.SponsorID, current.SponsorID = sponsor, sponsor

	repo := &fakeSponsorshipRepo{records: []*entity.Sponsorship{old, current}}
	uc := NewGetPipelineUseCase(repo, fixedClock{now: today})

	out, err := uc.Execute(context.Background(), GetPipelineInput{LatestOnly: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Pipeline.Stats.LapsedCount != 0 || out.Pipeline.Stats.TotalAtRisk != 1 {
		t.Errorf("latest only: stats = %+v", out.Pipeline.Stats)
	}

	out, err = uc.Execute(context.Background(), GetPipelineInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Pipeline.Stats.LapsedCount != 1 || out.Pipeline.Stats.TotalAtRisk != 1 {
		t.Errorf("all records: stats = %+v", out.Pipeline.Stats)
	}
}

func TestRenewalsIgnoreArchivedSponsors(t *testing.T) {
	active := withSponsor(received(10, 1000), "a@example.org")
	archived := withSponsor(received(12, 800), "gone@example.org")
	archived.Sponsor.IsActive = false
	archivedLapsed := withSponsor(received(-20, 500), "gone2@example.org")
	archivedLapsed.Sponsor.IsActive = false

	repo := &fakeSponsorshipRepo{records: []*entity.Sponsorship{active, archived, archivedLapsed}}
	emails := &fakeEmailService{}
	reminders := NewQueueRemindersUseCase(repo, &fakeEmailQueueRepo{}, emails, fixedClock{now: today}, 30)

	if _, err := reminders.Execute(context.Background(), QueueRemindersInput{IncludeLapsed: true}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(emails.reminders) != 1 || emails.reminders[0].SponsorshipID != active.ID {
		t.Errorf("reminders = %+v, want only the active sponsor", emails.reminders)
	}
	if len(emails.followUps) != 0 {
		t.Errorf("follow-ups = %+v, want none for archived sponsors", emails.followUps)
	}
	if archived.RenewalReminderSent {
		t.Error("archived sponsor's sponsorship must not be marked as reminded")
	}

	out, err := NewGetPipelineUseCase(repo, fixedClock{now: today}).Execute(context.Background(), GetPipelineInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Pipeline.Urgent) != 1 || out.Pipeline.Urgent[0].ID != active.ID {
		t.Errorf("urgent = %v", out.Pipeline.Urgent)
	}
	if len(out.Pipeline.Lapsed) != 0 {
		t.Errorf("lapsed = %v, want none", out.Pipeline.Lapsed)
	}
}

func TestQueueRemindersAddressesPrimaryContact(t *testing.T) {
	withPrimary := withSponsor(received(10, 1000), "office@example.org")
	withPrimary.Sponsor.ContactName = "Front Desk"
	withPrimary.Sponsor.PrimaryContact = &entity.Contact{ContactName: "Dana Reyes", Email: "dana@example.org", IsPrimary: true}
	noSponsorEmail := withSponsor(received(12, 800), "")
	noSponsorEmail.Sponsor.PrimaryContact = &entity.Contact{ContactName: "Lee Park", Email: "lee@example.org", IsPrimary: true}
	primaryWithoutEmail := withSponsor(received(14, 600), "billing@example.org")
	primaryWithoutEmail.Sponsor.ContactName = "Billing"
	primaryWithoutEmail.Sponsor.PrimaryContact = &entity.Contact{ContactName: "No Mail", IsPrimary: true}

	repo := &fakeSponsorshipRepo{records: []*entity.Sponsorship{withPrimary, noSponsorEmail, primaryWithoutEmail}}
	emails := &fakeEmailService{}
	uc := NewQueueRemindersUseCase(repo, &fakeEmailQueueRepo{}, emails, fixedClock{now: today}, 30)

	out, err := uc.Execute(context.Background(), QueueRemindersInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Skipped) != 0 {
		t.Errorf("skipped = %+v, want none", out.Skipped)
	}

	got := map[string]string{}
	for _, r := range emails.reminders {
		got[r.ContactEmail] = r.ContactName
	}
	want := map[string]string{
		"dana@example.org":    "Dana Reyes",
		"lee@example.org":     "Lee Park",
		"billing@example.org": "Billing",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("recipients mismatch (-want +got):\n%s", diff)
	}
}
