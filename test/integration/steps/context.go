//go:build integration

// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sponsor-tracker/backend/config"
	"github.com/sponsor-tracker/backend/internal/infra/dependency"
	"github.com/sponsor-tracker/backend/internal/integration/cache"
	"github.com/sponsor-tracker/backend/internal/integration/persistence/model"
	"github.com/sponsor-tracker/backend/test/integration/mock"
)

// testContext holds the state of one scenario.
type testContext struct {
	server   *httptest.Server
	client   *http.Client
	headers  map[string]string
	response *response

	cfg      *config.Config
	injector *dependency.Injector
	db       *mock.Db
	timeMock *mock.Time
	resend   *mock.ApiMock

	sponsorIDs        map[string]uuid.UUID
	tierIDs           map[string]uuid.UUID
	lastSponsorshipID uuid.UUID
}

type response struct {
	status int
	body   any
}

var resendMock *mock.ApiMock

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)

		resendMock = mock.NewApiServer()
		resendMock.Start()
	})

	ctx.AfterSuite(func() {
		resendMock.Close()
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	test := &testContext{
		client:   &http.Client{Timeout: 10 * time.Second},
		timeMock: mock.NewTime(),
		db: mock.NewDb("sponsor_tracker", map[string]any{
			"sponsors":             &model.SponsorModel{},
			"sponsorship_tiers":    &model.SponsorshipTierModel{},
			"sponsorships":         &model.SponsorshipModel{},
			"donations":            &model.DonationModel{},
			"fiscal_year_settings": &model.FiscalYearSettingModel{},
			"email_queue":          &model.EmailQueueModel{},
			"contacts":             &model.ContactModel{},
			"tags":                 &model.TagModel{},
			"email_templates":      &model.EmailTemplateModel{},
			"events":               &model.EventModel{},
		}),
	}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, test.before()
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		if test.server != nil {
			test.server.Close()
			test.server = nil
		}
		return ctx, nil
	})

	registerSetupSteps(ctx, test)
	registerRequestSteps(ctx, test)
	registerResponseSteps(ctx, test)
	registerStorageSteps(ctx, test)
}

func (t *testContext) before() error {
	t.headers = make(map[string]string)
	t.response = nil
	t.sponsorIDs = make(map[string]uuid.UUID)
	t.tierIDs = make(map[string]uuid.UUID)
	t.lastSponsorshipID = uuid.Nil
	t.timeMock.SetCurrentTime(time.Date(2025, time.October, 16, 9, 0, 0, 0, time.UTC))

	if err := t.db.ClearDB(); err != nil {
		return err
	}
	if err := mock.ClearRedis(mock.NewRedis()); err != nil {
		return err
	}

	t.resend = resendMock
	t.resend.ClearResponses("POST", "/emails")
	t.resend.SetResponse(-1, "POST", "/emails", http.StatusOK, map[string]any{"id": "re_test"})

	t.cfg = config.Load()
	t.cfg.Server.Environment = "test"
	t.cfg.Email.ResendAPIKey = "re_test_key"
	t.cfg.Email.ResendBaseURL = t.resend.GetUrl()
	t.cfg.Email.OrganizationName = "Scot Mende Foundation"
	t.cfg.Email.AppBaseURL = "https://sponsors.example.org"
	t.cfg.Renewal.DispatchMaxPerMinute = 2

	return nil
}

// startServer wires the application against the scenario's mocks.
func (t *testContext) startServer() error {
	if t.server != nil {
		return nil
	}

	injector, err := dependency.NewInjector(t.cfg, t.db.DbConn, dependency.Options{
		Clock: t.timeMock,
		Cache: cache.NewRedisSummaryCache(mock.NewRedis()),
	})
	if err != nil {
		return fmt.Errorf("failed to wire application: %w", err)
	}

	t.injector = injector
	t.server = httptest.NewServer(injector.Router.Setup(t.cfg.Server.Environment))
	return nil
}
