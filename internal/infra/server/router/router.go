// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/sponsor-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/sponsor-tracker/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	calendarController    *controller.CalendarController
	sponsorController     *controller.SponsorController
	tierController        *controller.TierController
	sponsorshipController *controller.SponsorshipController
	donationController    *controller.DonationController
	fiscalYearController  *controller.FiscalYearController
	renewalController     *controller.RenewalController
	dashboardController   *controller.DashboardController
	contactController     *controller.ContactController
	settingsController    *controller.SettingsController
	eventController       *controller.EventController
	reportController      *controller.ReportController
	reminderRateLimiter   *middleware.RateLimiter
}

// Controllers groups the controllers mounted under /api/v1.
// Nil controllers are skipped so the API can start without a database.
type Controllers struct {
	Health      *controller.HealthController
	Calendar    *controller.CalendarController
	Sponsor     *controller.SponsorController
	Tier        *controller.TierController
	Sponsorship *controller.SponsorshipController
	Donation    *controller.DonationController
	FiscalYear  *controller.FiscalYearController
	Renewal     *controller.RenewalController
	Dashboard   *controller.DashboardController
	Contact     *controller.ContactController
	Settings    *controller.SettingsController
	Event       *controller.EventController
	Report      *controller.ReportController
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(controllers Controllers, reminderRateLimiter *middleware.RateLimiter) *Router {
	return &Router{
		healthController:      controllers.Health,
		calendarController:    controllers.Calendar,
		sponsorController:     controllers.Sponsor,
		tierController:        controllers.Tier,
		sponsorshipController: controllers.Sponsorship,
		donationController:    controllers.Donation,
		fiscalYearController:  controllers.FiscalYear,
		renewalController:     controllers.Renewal,
		dashboardController:   controllers.Dashboard,
		contactController:     controllers.Contact,
		settingsController:    controllers.Settings,
		eventController:       controllers.Event,
		reportController:      controllers.Report,
		reminderRateLimiter:   reminderRateLimiter,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		// Calendar routes need no storage and are always mounted
		if r.calendarController != nil {
			calendar := v1.Group("/calendar")
			{
				calendar.GET("/fiscal-year", r.calendarController.FiscalYear)
				calendar.GET("/renewal-date", r.calendarController.RenewalDate)
			}
		}

		if r.sponsorController != nil {
			sponsors := v1.Group("/sponsors")
			{
				sponsors.GET("", r.sponsorController.List)
				sponsors.POST("", r.sponsorController.Create)
				sponsors.GET("/:id", r.sponsorController.Get)
				sponsors.POST("/:id/archive", r.sponsorController.Archive)
			}
		}

		if r.tierController != nil {
			tiers := v1.Group("/tiers")
			{
				tiers.GET("", r.tierController.List)
				tiers.POST("", r.tierController.Create)
			}
		}

		if r.sponsorshipController != nil {
			sponsorships := v1.Group("/sponsorships")
			{
				sponsorships.GET("", r.sponsorshipController.List)
				sponsorships.POST("", r.sponsorshipController.Create)
				sponsorships.POST("/:id/payment", r.sponsorshipController.RecordPayment)
				sponsorships.PATCH("/:id/status", r.sponsorshipController.UpdateStatus)
			}
		}

		if r.donationController != nil {
			donations := v1.Group("/donations")
			{
				donations.GET("", r.donationController.List)
				donations.POST("", r.donationController.Create)
			}
		}

		if r.fiscalYearController != nil {
			fiscalYears := v1.Group("/fiscal-years")
			{
				fiscalYears.GET("", r.fiscalYearController.List)
				fiscalYears.GET("/:start/goal", r.fiscalYearController.GetGoal)
				fiscalYears.PUT("/:start/goal", r.fiscalYearController.UpsertGoal)
				fiscalYears.POST("/:start/current", r.fiscalYearController.SetCurrent)
			}
		}

		if r.renewalController != nil {
			renewals := v1.Group("/renewals")
			{
				renewals.GET("/pipeline", r.renewalController.Pipeline)
				renewals.POST("/classify", r.renewalController.Classify)
				if r.reminderRateLimiter != nil {
					renewals.POST("/reminders", r.reminderRateLimiter.Middleware(), r.renewalController.QueueReminders)
				} else {
					renewals.POST("/reminders", r.renewalController.QueueReminders)
				}
			}
		}

		if r.dashboardController != nil {
			dashboard := v1.Group("/dashboard")
			{
				dashboard.GET("/summary", r.dashboardController.Summary)
			}
		}

		if r.reportController != nil {
			reports := v1.Group("/reports")
			{
				reports.GET("/by-tier", r.reportController.ByTier)
				reports.GET("/scot-mende", r.reportController.ScotMende)
				reports.GET("/payment-timeline", r.reportController.PaymentTimeline)
			}
		}

		if r.contactController != nil {
			v1.POST("/sponsors/:id/contacts", r.contactController.Add)
			v1.GET("/contacts", r.contactController.List)
		}

		if r.settingsController != nil {
			v1.GET("/tags", r.settingsController.ListTags)
			v1.POST("/tags", r.settingsController.CreateTag)
			v1.GET("/email-templates", r.settingsController.ListTemplates)
			v1.POST("/email-templates", r.settingsController.CreateTemplate)
		}

		if r.eventController != nil {
			events := v1.Group("/events")
			{
				events.GET("", r.eventController.List)
				events.POST("", r.eventController.Create)
			}
		}
	}
}
