// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"log/slog"
	"time"

	"gorm.io/gorm"

	"github.com/sponsor-tracker/backend/config"
	"github.com/sponsor-tracker/backend/internal/application/adapter"
	"github.com/sponsor-tracker/backend/internal/application/usecase/calendar"
	"github.com/sponsor-tracker/backend/internal/application/usecase/dashboard"
	"github.com/sponsor-tracker/backend/internal/application/usecase/donation"
	"github.com/sponsor-tracker/backend/internal/application/usecase/emailtemplate"
	"github.com/sponsor-tracker/backend/internal/application/usecase/event"
	"github.com/sponsor-tracker/backend/internal/application/usecase/fiscalyear"
	"github.com/sponsor-tracker/backend/internal/application/usecase/renewal"
	"github.com/sponsor-tracker/backend/internal/application/usecase/sponsor"
	"github.com/sponsor-tracker/backend/internal/application/usecase/sponsorship"
	"github.com/sponsor-tracker/backend/internal/application/usecase/tag"
	"github.com/sponsor-tracker/backend/internal/application/usecase/tier"
	"github.com/sponsor-tracker/backend/internal/infra/server/router"
	"github.com/sponsor-tracker/backend/internal/integration/adapters"
	"github.com/sponsor-tracker/backend/internal/integration/cache"
	"github.com/sponsor-tracker/backend/internal/integration/email"
	"github.com/sponsor-tracker/backend/internal/integration/email/templates"
	"github.com/sponsor-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/sponsor-tracker/backend/internal/integration/entrypoint/middleware"
	"github.com/sponsor-tracker/backend/internal/integration/persistence"
)

// Options overrides infrastructure pieces, mainly for tests and the CLI.
// Zero values fall back to production defaults.
type Options struct {
	Clock       adapter.Clock
	Cache       adapter.SummaryCache // nil disables summary caching
	EmailSender adapter.EmailSender  // nil selects Resend, or a mock when no API key is set
}

// Injector holds all application dependencies.
type Injector struct {
	Config      *config.Config
	DB          *gorm.DB
	Router      *router.Router
	Clock       adapter.Clock
	EmailWorker *email.Worker

	QueueReminders *renewal.QueueRemindersUseCase
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, opts Options) (*Injector, error) {
	clock := opts.Clock
	if clock == nil {
		clock = adapters.NewSystemClock(cfg.Server.Location())
	}

	summaryCache := opts.Cache
	var healthCache adapter.SummaryCache
	if summaryCache == nil {
		summaryCache = cache.NoopSummaryCache{}
	} else {
		healthCache = summaryCache
	}

	sender, err := emailSender(cfg, opts.EmailSender)
	if err != nil {
		return nil, err
	}

	renderer, err := templates.NewRenderer()
	if err != nil {
		return nil, err
	}

	// Create repositories
	sponsorRepo := persistence.NewSponsorRepository(db)
	tierRepo := persistence.NewTierRepository(db)
	sponsorshipRepo := persistence.NewSponsorshipRepository(db)
	donationRepo := persistence.NewDonationRepository(db)
	fiscalYearRepo := persistence.NewFiscalYearRepository(db)
	emailQueueRepo := persistence.NewEmailQueueRepository(db)
	contactRepo := persistence.NewContactRepository(db)
	tagRepo := persistence.NewTagRepository(db)
	templateRepo := persistence.NewEmailTemplateRepository(db)
	eventRepo := persistence.NewEventRepository(db)

	// Create email services
	emailService := email.NewService(emailQueueRepo, clock, cfg.Email.OrganizationName, cfg.Email.AppBaseURL)
	emailWorker := email.NewWorker(emailQueueRepo, sender, renderer, clock, email.WorkerConfig{
		PollInterval: cfg.Email.PollInterval,
		BatchSize:    cfg.Email.BatchSize,
		Retention:    cfg.Email.Retention,
	})

	// Create calendar use cases
	getFiscalYearUseCase := calendar.NewGetFiscalYearUseCase(clock, cfg.Fiscal.YearsBack, cfg.Fiscal.YearsForward)
	calculateRenewalDateUseCase := calendar.NewCalculateRenewalDateUseCase()

	// Create sponsor and tier use cases
	listSponsorsUseCase := sponsor.NewListSponsorsUseCase(sponsorRepo)
	createSponsorUseCase := sponsor.NewCreateSponsorUseCase(sponsorRepo, clock)
	getSponsorUseCase := sponsor.NewGetSponsorUseCase(sponsorRepo, sponsorshipRepo)
	archiveSponsorUseCase := sponsor.NewArchiveSponsorUseCase(sponsorRepo, clock)
	listTiersUseCase := tier.NewListTiersUseCase(tierRepo)
	createTierUseCase := tier.NewCreateTierUseCase(tierRepo, clock)
	addContactUseCase := sponsor.NewAddContactUseCase(sponsorRepo, contactRepo, clock)
	listContactsUseCase := sponsor.NewListContactsUseCase(sponsorRepo, contactRepo)

	// Create settings and event use cases
	createTagUseCase := tag.NewCreateTagUseCase(tagRepo, clock)
	listTagsUseCase := tag.NewListTagsUseCase(tagRepo, sponsorRepo)
	createTemplateUseCase := emailtemplate.NewCreateTemplateUseCase(templateRepo, clock)
	listTemplatesUseCase := emailtemplate.NewListTemplatesUseCase(templateRepo)
	createEventUseCase := event.NewCreateEventUseCase(eventRepo, clock)
	listEventsUseCase := event.NewListEventsUseCase(eventRepo, clock)

	// Create sponsorship use cases
	listSponsorshipsUseCase := sponsorship.NewListSponsorshipsUseCase(sponsorshipRepo)
	createSponsorshipUseCase := sponsorship.NewCreateSponsorshipUseCase(sponsorshipRepo, sponsorRepo, tierRepo, summaryCache, clock)
	recordPaymentUseCase := sponsorship.NewRecordPaymentUseCase(sponsorshipRepo, summaryCache, clock)
	updateStatusUseCase := sponsorship.NewUpdateStatusUseCase(sponsorshipRepo, summaryCache, clock)

	// Create donation use cases
	listDonationsUseCase := donation.NewListDonationsUseCase(donationRepo, clock)
	createDonationUseCase := donation.NewCreateDonationUseCase(donationRepo, summaryCache, clock)

	// Create fiscal year use cases
	listSettingsUseCase := fiscalyear.NewListSettingsUseCase(fiscalYearRepo, clock, cfg.Fiscal.DefaultGoal, cfg.Fiscal.YearsBack, cfg.Fiscal.YearsForward)
	getGoalUseCase := fiscalyear.NewGetGoalUseCase(fiscalYearRepo, cfg.Fiscal.DefaultGoal)
	upsertGoalUseCase := fiscalyear.NewUpsertGoalUseCase(fiscalYearRepo, summaryCache, clock)
	setCurrentUseCase := fiscalyear.NewSetCurrentUseCase(fiscalYearRepo, upsertGoalUseCase, getGoalUseCase)

	// Create renewal and dashboard use cases
	getPipelineUseCase := renewal.NewGetPipelineUseCase(sponsorshipRepo, clock)
	classifyRecordsUseCase := renewal.NewClassifyRecordsUseCase(clock)
	queueRemindersUseCase := renewal.NewQueueRemindersUseCase(sponsorshipRepo, emailQueueRepo, emailService, clock, cfg.Renewal.ReminderDays)
	summaryUseCase := dashboard.NewGetFiscalYearSummaryUseCase(
		sponsorshipRepo,
		donationRepo,
		fiscalYearRepo,
		summaryCache,
		clock,
		cfg.Fiscal.DefaultGoal,
		cfg.Cache.SummaryTTL,
	)
	tierReportUseCase := dashboard.NewGetTierReportUseCase(sponsorshipRepo, tierRepo, clock)
	scotMendeReportUseCase := dashboard.NewGetScotMendeReportUseCase(sponsorshipRepo, clock)
	paymentTimelineUseCase := dashboard.NewGetPaymentTimelineUseCase(sponsorshipRepo, clock)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return sqlDB.PingContext(ctx) == nil
	}, healthCache, clock)

	controllers := router.Controllers{
		Health:   healthController,
		Calendar: controller.NewCalendarController(getFiscalYearUseCase, calculateRenewalDateUseCase),
		Sponsor: controller.NewSponsorController(
			listSponsorsUseCase,
			createSponsorUseCase,
			getSponsorUseCase,
			archiveSponsorUseCase,
		),
		Tier: controller.NewTierController(listTiersUseCase, createTierUseCase),
		Sponsorship: controller.NewSponsorshipController(
			listSponsorshipsUseCase,
			createSponsorshipUseCase,
			recordPaymentUseCase,
			updateStatusUseCase,
		),
		Donation: controller.NewDonationController(listDonationsUseCase, createDonationUseCase),
		FiscalYear: controller.NewFiscalYearController(
			listSettingsUseCase,
			getGoalUseCase,
			upsertGoalUseCase,
			setCurrentUseCase,
		),
		Renewal:   controller.NewRenewalController(getPipelineUseCase, classifyRecordsUseCase, queueRemindersUseCase),
		Dashboard: controller.NewDashboardController(summaryUseCase),
		Contact:   controller.NewContactController(addContactUseCase, listContactsUseCase),
		Settings: controller.NewSettingsController(
			createTagUseCase,
			listTagsUseCase,
			createTemplateUseCase,
			listTemplatesUseCase,
		),
		Event:  controller.NewEventController(createEventUseCase, listEventsUseCase),
		Report: controller.NewReportController(tierReportUseCase, scotMendeReportUseCase, paymentTimelineUseCase),
	}

	// Reminder dispatch is throttled per client
	reminderRateLimiter := middleware.NewRateLimiter(cfg.Renewal.DispatchMaxPerMinute, time.Minute, clock)

	return &Injector{
		Config:         cfg,
		DB:             db,
		Router:         router.NewRouter(controllers, reminderRateLimiter),
		Clock:          clock,
		EmailWorker:    emailWorker,
		QueueReminders: queueRemindersUseCase,
	}, nil
}

// NewCalendarOnlyRouter builds a router that serves health and calendar routes
// when no database is reachable.
func NewCalendarOnlyRouter(cfg *config.Config, clock adapter.Clock) *router.Router {
	if clock == nil {
		clock = adapters.NewSystemClock(cfg.Server.Location())
	}
	healthController := controller.NewHealthController(func() bool { return false }, nil, clock)
	calendarController := controller.NewCalendarController(
		calendar.NewGetFiscalYearUseCase(clock, cfg.Fiscal.YearsBack, cfg.Fiscal.YearsForward),
		calendar.NewCalculateRenewalDateUseCase(),
	)
	return router.NewRouter(router.Controllers{Health: healthController, Calendar: calendarController}, nil)
}

func emailSender(cfg *config.Config, override adapter.EmailSender) (adapter.EmailSender, error) {
	if override != nil {
		return override, nil
	}
	if cfg.Email.ResendAPIKey == "" {
		slog.Warn("RESEND_API_KEY not set, emails are kept in memory and not delivered")
		return email.NewMockEmailSender(), nil
	}

	client := email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail, cfg.Email.ReplyTo)
	if cfg.Email.ResendBaseURL == "" {
		return client, nil
	}
	return client.WithBaseURL(cfg.Email.ResendBaseURL)
}
