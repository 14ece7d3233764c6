package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/sponsor-tracker/backend/internal/application/adapter"
	"github.com/sponsor-tracker/backend/internal/domain/entity"
	domainerror "github.com/sponsor-tracker/backend/internal/domain/error"
	"github.com/sponsor-tracker/backend/internal/domain/valueobject"
	"github.com/sponsor-tracker/backend/internal/integration/persistence/model"
)

var testNow = time.Date(2025, time.October, 16, 10, 0, 0, 0, time.UTC)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&model.SponsorModel{},
		&model.SponsorshipTierModel{},
		&model.SponsorshipModel{},
		&model.DonationModel{},
		&model.FiscalYearSettingModel{},
		&model.EmailQueueModel{},
		&model.ContactModel{},
		&model.TagModel{},
		&model.EmailTemplateModel{},
		&model.EventModel{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestSponsorRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewSponsorRepository(newTestDB(t))

	acme := entity.NewSponsor("Acme Hardware", "Dana", "Dana@Acme.test", []string{"Local", "hardware"}, testNow)
	bolt := entity.NewSponsor("Bolt Cafe", "", "", []string{"food"}, testNow)
	for _, s := range []*entity.Sponsor{acme, bolt} {
		if err := repo.Create(ctx, s); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	got, err := repo.FindByID(ctx, acme.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if got.ContactEmail != "dana@acme.test" {
		t.Errorf("email = %q", got.ContactEmail)
	}
	if diff := cmp.Diff([]string{"local", "hardware"}, got.Tags); diff != "" {
		t.Errorf("tags mismatch (-want +got):\n%s", diff)
	}

	if _, err := repo.FindByID(ctx, uuid.New()); !errors.Is(err, domainerror.ErrSponsorNotFound) {
		t.Errorf("expected ErrSponsorNotFound, got %v", err)
	}

	bolt.Archive(testNow)
	if err := repo.Update(ctx, bolt); err != nil {
		t.Fatalf("Update: %v", err)
	}

	active, err := repo.List(ctx, adapter.SponsorFilter{ActiveOnly: true})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(active) != 1 || active[0].ID != acme.ID {
		t.Errorf("active sponsors = %v", active)
	}

	tagged, err := repo.List(ctx, adapter.SponsorFilter{Tag: "FOOD"})
	if err != nil {
		t.Fatalf("List by tag: %v", err)
	}
	if len(tagged) != 1 || tagged[0].ID != bolt.ID {
		t.Errorf("tagged sponsors = %v", tagged)
	}

	byID, err := repo.FindByIDs(ctx, []uuid.UUID{acme.ID, uuid.New()})
	if err != nil {
		t.Fatalf("FindByIDs: %v", err)
	}
	if len(byID) != 1 || byID[acme.ID] == nil {
		t.Errorf("FindByIDs = %v", byID)
	}
}

func TestTierRepositoryOrdersByLevel(t *testing.T) {
	ctx := context.Background()
	repo := NewTierRepository(newTestDB(t))

	gold := entity.NewSponsorshipTier("Gold", 3, decimal.NewFromInt(2500), testNow)
	bronze := entity.NewSponsorshipTier("Bronze", 1, decimal.NewFromInt(500), testNow)
	retired := entity.NewSponsorshipTier("Platinum", 4, decimal.NewFromInt(5000), testNow)
	retired.IsActive = false
	for _, tier := range []*entity.SponsorshipTier{gold, bronze, retired} {
		if err := repo.Create(ctx, tier); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	tiers, err := repo.List(ctx, true)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	var names []string
	for _, tier := range tiers {
		names = append(names, tier.TierName)
	}
	if diff := cmp.Diff([]string{"Bronze", "Gold"}, names); diff != "" {
		t.Errorf("tiers mismatch (-want +got):\n%s", diff)
	}

	got, err := repo.FindByID(ctx, gold.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if !got.SuggestedAmount.Equal(decimal.NewFromInt(2500)) {
		t.Errorf("suggested amount = %s", got.SuggestedAmount)
	}

	if _, err := repo.FindByID(ctx, uuid.New()); !errors.Is(err, domainerror.ErrTierNotFound) {
		t.Errorf("expected ErrTierNotFound, got %v", err)
	}
}

func TestSponsorshipRepository(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	sponsors := NewSponsorRepository(db)
	repo := NewSponsorshipRepository(db)

	acme := entity.NewSponsor("Acme Hardware", "Dana", "dana@acme.test", nil, testNow)
	if err := sponsors.Create(ctx, acme); err != nil {
		t.Fatalf("Create sponsor: %v", err)
	}

	fy := valueobject.NewFiscalYear(2025)
	paid := entity.NewSponsorship(acme.ID, fy, entity.SponsorshipTypeBoth, decimal.NewFromInt(1000), decimal.RequireFromString("250.50"), testNow)
	paid.TierName = "Gold"
	if err := paid.RecordPayment(day(2025, time.August, 14), testNow); err != nil {
		t.Fatalf("RecordPayment: %v", err)
	}
	pending := entity.NewSponsorship(acme.ID, fy, entity.SponsorshipTypeMonetary, decimal.NewFromInt(500), decimal.Zero, testNow.Add(time.Minute))
	older := entity.NewSponsorship(acme.ID, fy.Previous(), entity.SponsorshipTypeMonetary, decimal.NewFromInt(800), decimal.Zero, testNow)
	older.SetStatus(entity.SponsorshipStatusReceived, testNow)

	for _, s := range []*entity.Sponsorship{paid, pending, older} {
		if err := repo.Create(ctx, s); err != nil {
			t.Fatalf("Create sponsorship: %v", err)
		}
	}

	got, err := repo.FindByID(ctx, paid.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if got.Sponsor == nil || got.Sponsor.OrganizationName != "Acme Hardware" {
		t.Fatalf("sponsor not preloaded: %+v", got.Sponsor)
	}
	if got.FiscalYear != fy {
		t.Errorf("fiscal year = %s", got.FiscalYear)
	}
	if got.ExpirationDate == nil || valueobject.FormatDate(*got.ExpirationDate) != "2026-08-31" {
		t.Errorf("expiration = %v", got.ExpirationDate)
	}
	if !got.TotalValue().Equal(decimal.RequireFromString("1250.50")) {
		t.Errorf("total = %s", got.TotalValue())
	}

	status := entity.SponsorshipStatusPending
	list, err := repo.List(ctx, adapter.SponsorshipFilter{FiscalYear: &fy, Status: &status})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 1 || list[0].ID != pending.ID {
		t.Errorf("filtered list = %v", list)
	}

	inYear, err := repo.List(ctx, adapter.SponsorshipFilter{FiscalYear: &fy})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(inYear) != 2 {
		t.Errorf("expected 2 sponsorships in %s, got %d", fy, len(inYear))
	}

	received, err := repo.ListReceived(ctx)
	if err != nil {
		t.Fatalf("ListReceived: %v", err)
	}
	if len(received) != 2 {
		t.Fatalf("expected 2 received, got %d", len(received))
	}
	for _, s := range received {
		if s.ID == older.ID && s.ExpirationDate != nil {
			t.Error("received record without expiration should keep a nil expiration")
		}
	}

	got.MarkReminderSent(testNow)
	if err := repo.Update(ctx, got); err != nil {
		t.Fatalf("Update: %v", err)
	}
	reloaded, _ := repo.FindByID(ctx, paid.ID)
	if !reloaded.RenewalReminderSent {
		t.Error("reminder flag not persisted")
	}

	if _, err := repo.FindByID(ctx, uuid.New()); !errors.Is(err, domainerror.ErrSponsorshipNotFound) {
		t.Errorf("expected ErrSponsorshipNotFound, got %v", err)
	}
}

func TestDonationRepositoryListBetween(t *testing.T) {
	ctx := context.Background()
	repo := NewDonationRepository(newTestDB(t))

	inside := entity.NewDonation("Sam", decimal.NewFromInt(50), day(2025, time.July, 1), testNow)
	lastDay := entity.NewDonation("Ari", decimal.NewFromInt(75), day(2026, time.June, 30), testNow)
	outside := entity.NewDonation("Lee", decimal.NewFromInt(20), day(2025, time.June, 30), testNow)
	monthly := entity.RecurringMonthly
	lastDay.IsRecurring = true
	lastDay.RecurringFrequency = &monthly

	for _, d := range []*entity.Donation{inside, lastDay, outside} {
		if err := repo.Create(ctx, d); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	start, end := valueobject.NewFiscalYear(2025).DateRange(time.UTC)
	donations, err := repo.ListBetween(ctx, start, end)
	if err != nil {
		t.Fatalf("ListBetween: %v", err)
	}
	if len(donations) != 2 {
		t.Fatalf("expected 2 donations, got %d", len(donations))
	}
	if donations[0].ID != lastDay.ID {
		t.Errorf("expected newest first, got %s", donations[0].DonorName)
	}
	if donations[0].RecurringFrequency == nil || *donations[0].RecurringFrequency != entity.RecurringMonthly {
		t.Errorf("frequency = %v", donations[0].RecurringFrequency)
	}
}

func TestFiscalYearRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewFiscalYearRepository(newTestDB(t))
	fy := valueobject.NewFiscalYear(2025)

	if _, err := repo.FindByFiscalYear(ctx, fy); !errors.Is(err, domainerror.ErrFiscalYearSettingNotFound) {
		t.Fatalf("expected ErrFiscalYearSettingNotFound, got %v", err)
	}

	if err := repo.Upsert(ctx, entity.NewFiscalYearSetting(fy, decimal.NewFromInt(11500), testNow)); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if err := repo.Upsert(ctx, entity.NewFiscalYearSetting(fy, decimal.NewFromInt(15000), testNow)); err != nil {
		t.Fatalf("Upsert again: %v", err)
	}
	if err := repo.Upsert(ctx, entity.NewFiscalYearSetting(fy.Previous(), decimal.NewFromInt(9000), testNow)); err != nil {
		t.Fatalf("Upsert previous: %v", err)
	}

	got, err := repo.FindByFiscalYear(ctx, fy)
	if err != nil {
		t.Fatalf("FindByFiscalYear: %v", err)
	}
	if !got.GoalAmount.Equal(decimal.NewFromInt(15000)) {
		t.Errorf("goal = %s, want 15000", got.GoalAmount)
	}

	if err := repo.SetCurrent(ctx, fy.Previous()); err != nil {
		t.Fatalf("SetCurrent: %v", err)
	}
	if err := repo.SetCurrent(ctx, fy); err != nil {
		t.Fatalf("SetCurrent: %v", err)
	}

	settings, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(settings) != 2 || settings[0].FiscalYear != fy.Previous() {
		t.Fatalf("settings = %v", settings)
	}
	current := 0
	for _, s := range settings {
		if s.IsCurrent {
			current++
			if s.FiscalYear != fy {
				t.Errorf("current = %s, want %s", s.FiscalYear, fy)
			}
		}
	}
	if current != 1 {
		t.Errorf("expected exactly one current fiscal year, got %d", current)
	}

	if err := repo.SetCurrent(ctx, valueobject.NewFiscalYear(2030)); !errors.Is(err, domainerror.ErrFiscalYearSettingNotFound) {
		t.Errorf("expected ErrFiscalYearSettingNotFound, got %v", err)
	}
}

func TestEmailQueueRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewEmailQueueRepository(newTestDB(t))
	sponsorshipID := uuid.New()

	due := entity.NewEmailJob(entity.TemplateRenewalReminder, "dana@acme.test", "Dana", "Renewal", map[string]interface{}{"days_remaining": 12}, testNow)
	due.SponsorshipID = &sponsorshipID
	later := entity.NewEmailJob(entity.TemplateLapsedFollowUp, "lee@bolt.test", "", "We miss you", nil, testNow.Add(time.Hour))
	for _, job := range []*entity.EmailJob{due, later} {
		if err := repo.Create(ctx, job); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	pending, err := repo.GetPendingJobs(ctx, testNow, 10)
	if err != nil {
		t.Fatalf("GetPendingJobs: %v", err)
	}
	if len(pending) != 1 || pending[0].ID != due.ID {
		t.Fatalf("pending = %v", pending)
	}
	if pending[0].TemplateData["days_remaining"] != float64(12) {
		t.Errorf("template data = %v", pending[0].TemplateData)
	}

	bySponsorship, err := repo.GetBySponsorship(ctx, sponsorshipID)
	if err != nil {
		t.Fatalf("GetBySponsorship: %v", err)
	}
	if len(bySponsorship) != 1 || bySponsorship[0].ID != due.ID {
		t.Errorf("by sponsorship = %v", bySponsorship)
	}

	due.MarkSent("re_1", testNow)
	if err := repo.Update(ctx, due); err != nil {
		t.Fatalf("Update: %v", err)
	}

	deleted, err := repo.DeleteSentBefore(ctx, testNow.Add(24*time.Hour))
	if err != nil {
		t.Fatalf("DeleteSentBefore: %v", err)
	}
	if deleted != 1 {
		t.Errorf("deleted = %d, want 1", deleted)
	}
	if _, err := repo.GetByID(ctx, due.ID); !errors.Is(err, domainerror.ErrEmailJobNotFound) {
		t.Errorf("expected ErrEmailJobNotFound, got %v", err)
	}
	if _, err := repo.GetByID(ctx, later.ID); err != nil {
		t.Errorf("GetByID: %v", err)
	}
}

func TestSponsorRepositoryKeepsInactiveFlagOnCreate(t *testing.T) {
	ctx := context.Background()
	repo := NewSponsorRepository(newTestDB(t))

	dormant := entity.NewSponsor("Dormant Dairy", "", "", nil, testNow)
	dormant.IsActive = false
	if err := repo.Create(ctx, dormant); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.FindByID(ctx, dormant.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if got.IsActive {
		t.Error("sponsor created inactive came back active")
	}
}

func TestListReceivedSkipsArchivedSponsors(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	sponsors := NewSponsorRepository(db)
	repo := NewSponsorshipRepository(db)

	live := entity.NewSponsor("Live Oak Bank", "", "ops@liveoak.test", nil, testNow)
	gone := entity.NewSponsor("Gone Fishing", "", "hi@gone.test", nil, testNow)
	gone.Archive(testNow)
	for _, s := range []*entity.Sponsor{live, gone} {
		if err := sponsors.Create(ctx, s); err != nil {
			t.Fatalf("Create sponsor: %v", err)
		}
	}

	fy := valueobject.NewFiscalYear(2025)
	var ids []uuid.UUID
	for _, sponsorID := range []uuid.UUID{live.ID, gone.ID} {
		s := entity.NewSponsorship(sponsorID, fy, entity.SponsorshipTypeMonetary, decimal.NewFromInt(500), decimal.Zero, testNow)
		if err := s.RecordPayment(day(2024, time.November, 5), testNow); err != nil {
			t.Fatalf("RecordPayment: %v", err)
		}
		if err := repo.Create(ctx, s); err != nil {
			t.Fatalf("Create sponsorship: %v", err)
		}
		ids = append(ids, s.ID)
	}

	received, err := repo.ListReceived(ctx)
	if err != nil {
		t.Fatalf("ListReceived: %v", err)
	}
	if len(received) != 1 || received[0].ID != ids[0] {
		t.Fatalf("received = %v, want only the active sponsor's record", received)
	}
	if received[0].Sponsor == nil || !received[0].Sponsor.IsActive {
		t.Errorf("sponsor = %+v", received[0].Sponsor)
	}
}

func TestSponsorshipRepositorySkipsMalformedFiscalYear(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	sponsors := NewSponsorRepository(db)
	repo := NewSponsorshipRepository(db)

	acme := entity.NewSponsor("Acme Hardware", "", "dana@acme.test", nil, testNow)
	if err := sponsors.Create(ctx, acme); err != nil {
		t.Fatalf("Create sponsor: %v", err)
	}

	good := entity.NewSponsorship(acme.ID, valueobject.NewFiscalYear(2025), entity.SponsorshipTypeMonetary, decimal.NewFromInt(100), decimal.Zero, testNow)
	good.SetStatus(entity.SponsorshipStatusReceived, testNow)
	if err := repo.Create(ctx, good); err != nil {
		t.Fatalf("Create: %v", err)
	}

	broken := model.SponsorshipFromEntity(good)
	broken.ID = uuid.New()
	broken.FiscalYear = "bogus"
	if err := db.Create(broken).Error; err != nil {
		t.Fatalf("insert raw row: %v", err)
	}

	received, err := repo.ListReceived(ctx)
	if err != nil {
		t.Fatalf("ListReceived: %v", err)
	}
	if len(received) != 1 || received[0].ID != good.ID {
		t.Errorf("received = %v, want only the well-formed row", received)
	}

	if _, err := repo.FindByID(ctx, broken.ID); !errors.Is(err, domainerror.ErrInvalidFiscalYear) {
		t.Errorf("expected ErrInvalidFiscalYear, got %v", err)
	}

	good.FiscalYear = valueobject.FiscalYear{}
	if err := repo.Update(ctx, good); !errors.Is(err, domainerror.ErrInvalidFiscalYear) {
		t.Errorf("Update with zero fiscal year: expected ErrInvalidFiscalYear, got %v", err)
	}
	reloaded, err := repo.FindByID(ctx, good.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if reloaded.FiscalYear != valueobject.NewFiscalYear(2025) {
		t.Errorf("stored fiscal year = %s", reloaded.FiscalYear)
	}
}

func TestEmailQueueRepositoryRoundTripsProcessedAt(t *testing.T) {
	ctx := context.Background()
	repo := NewEmailQueueRepository(newTestDB(t))

	sent := entity.NewEmailJob(entity.TemplateRenewalReminder, "dana@acme.test", "Dana", "Renewal", nil, testNow)
	failed := entity.NewEmailJob(entity.TemplateLapsedFollowUp, "lee@bolt.test", "", "We miss you", nil, testNow)
	for _, job := range []*entity.EmailJob{sent, failed} {
		if err := repo.Create(ctx, job); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	sent.MarkSent("re_42", testNow.Add(time.Minute))
	failed.MarkFailed(errors.New("invalid recipient"), true, testNow.Add(2*time.Minute))
	for _, job := range []*entity.EmailJob{sent, failed} {
		if err := repo.Update(ctx, job); err != nil {
			t.Fatalf("Update: %v", err)
		}
	}

	for _, want := range []*entity.EmailJob{sent, failed} {
		got, err := repo.GetByID(ctx, want.ID)
		if err != nil {
			t.Fatalf("GetByID: %v", err)
		}
		if got.Status != want.Status {
			t.Errorf("status = %s, want %s", got.Status, want.Status)
		}
		if got.ProcessedAt == nil || !got.ProcessedAt.Equal(*want.ProcessedAt) {
			t.Errorf("processed at = %v, want %v", got.ProcessedAt, want.ProcessedAt)
		}
	}
}
