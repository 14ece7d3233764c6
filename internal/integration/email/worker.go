package email

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/sponsor-tracker/backend/internal/application/adapter"
	"github.com/sponsor-tracker/backend/internal/domain/entity"
	domainerror "github.com/sponsor-tracker/backend/internal/domain/error"
	"github.com/sponsor-tracker/backend/internal/integration/email/templates"
)

// Worker drains the email queue through the configured sender.
type Worker struct {
	queue        adapter.EmailQueueRepository
	sender       adapter.EmailSender
	renderer     *templates.Renderer
	clock        adapter.Clock
	pollInterval time.Duration
	batchSize    int
	retention    time.Duration
}

// WorkerConfig holds configuration for the email worker.
type WorkerConfig struct {
	PollInterval time.Duration
	BatchSize    int
	Retention    time.Duration // Sent jobs older than this are purged; zero keeps them
}

// DefaultWorkerConfig returns the default worker configuration.
func DefaultWorkerConfig() WorkerConfig {
	return WorkerConfig{
		PollInterval: 5 * time.Second,
		BatchSize:    10,
		Retention:    30 * 24 * time.Hour,
	}
}

// NewWorker creates a new email worker.
func NewWorker(
	queue adapter.EmailQueueRepository,
	sender adapter.EmailSender,
	renderer *templates.Renderer,
	clock adapter.Clock,
	config WorkerConfig,
) *Worker {
	if config.PollInterval <= 0 {
		config.PollInterval = DefaultWorkerConfig().PollInterval
	}
	if config.BatchSize <= 0 {
		config.BatchSize = DefaultWorkerConfig().BatchSize
	}
	return &Worker{
		queue:        queue,
		sender:       sender,
		renderer:     renderer,
		clock:        clock,
		pollInterval: config.PollInterval,
		batchSize:    config.BatchSize,
		retention:    config.Retention,
	}
}

// Start runs the worker loop until ctx is cancelled.
func (w *Worker) Start(ctx context.Context) {
	slog.Info("Email worker started",
		"poll_interval", w.pollInterval,
		"batch_size", w.batchSize,
	)

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	w.processBatch(ctx)

	for {
		select {
		case <-ctx.Done():
			slog.Info("Email worker shutting down")
			return
		case <-ticker.C:
			w.processBatch(ctx)
			w.purgeSent(ctx)
		}
	}
}

// ProcessNow processes one batch of due emails immediately.
func (w *Worker) ProcessNow(ctx context.Context) {
	w.processBatch(ctx)
}

func (w *Worker) processBatch(ctx context.Context) {
	jobs, err := w.queue.GetPendingJobs(ctx, w.clock.Now(), w.batchSize)
	if err != nil {
		slog.Error("Failed to get pending email jobs", "error", err)
		return
	}
	if len(jobs) == 0 {
		return
	}

	slog.Debug("Processing email batch", "count", len(jobs))

	for _, job := range jobs {
		if ctx.Err() != nil {
			return
		}
		w.processJob(ctx, job)
	}
}

func (w *Worker) processJob(ctx context.Context, job *entity.EmailJob) {
	logger := slog.With(
		"job_id", job.ID,
		"template", job.TemplateType,
		"recipient", job.RecipientEmail,
	)

	job.MarkProcessing()
	if err := w.queue.Update(ctx, job); err != nil {
		logger.Error("Failed to mark job as processing", "error", err)
		return
	}

	html, text, err := w.renderTemplate(job)
	if err != nil {
		logger.Error("Failed to render email template", "error", err)
		w.handleFailure(ctx, job, err, true)
		return
	}

	result, err := w.sender.Send(ctx, adapter.SendEmailInput{
		To:      job.RecipientEmail,
		Name:    job.RecipientName,
		Subject: job.Subject,
		HTML:    html,
		Text:    text,
	})
	if err != nil {
		logger.Error("Failed to send email", "error", err)

		var emailErr *domainerror.EmailError
		permanent := domainerror.IsPermanentEmailFailure(err) ||
			(errors.As(err, &emailErr) && emailErr.Code == domainerror.ErrCodePermanentEmailFailure)

		w.handleFailure(ctx, job, err, permanent)
		return
	}

	job.MarkSent(result.ResendID, w.clock.Now())
	if err := w.queue.Update(ctx, job); err != nil {
		logger.Error("Failed to mark job as sent", "error", err)
		return
	}

	logger.Info("Email sent", "resend_id", result.ResendID)
}

func (w *Worker) renderTemplate(job *entity.EmailJob) (html string, text string, err error) {
	switch job.TemplateType {
	case entity.TemplateRenewalReminder, entity.TemplateLapsedFollowUp:
	default:
		return "", "", domainerror.NewEmailError(
			domainerror.ErrCodeUnknownTemplate,
			"unknown template type "+string(job.TemplateType),
			domainerror.ErrUnknownTemplate,
		)
	}

	data := templates.SponsorEmailData{
		Organization:   getString(job.TemplateData, "organization"),
		SponsorName:    getString(job.TemplateData, "sponsor_name"),
		ContactName:    getString(job.TemplateData, "contact_name"),
		TierName:       getString(job.TemplateData, "tier_name"),
		FiscalYear:     getString(job.TemplateData, "fiscal_year"),
		ExpirationDate: getString(job.TemplateData, "expiration_date"),
		DaysRemaining:  getInt(job.TemplateData, "days_remaining"),
		TotalValue:     getString(job.TemplateData, "total_value"),
		RenewalURL:     getString(job.TemplateData, "renewal_url"),
	}

	html, text, err = w.renderer.Render(string(job.TemplateType), data)
	if err != nil {
		return "", "", domainerror.NewEmailError(
			domainerror.ErrCodeTemplateRenderFailed,
			"failed to render "+string(job.TemplateType),
			errors.Join(domainerror.ErrTemplateRenderFailed, err),
		)
	}
	return html, text, nil
}

func (w *Worker) handleFailure(ctx context.Context, job *entity.EmailJob, err error, permanent bool) {
	job.MarkFailed(err, permanent, w.clock.Now())

	if updateErr := w.queue.Update(ctx, job); updateErr != nil {
		slog.Error("Failed to update job after failure",
			"job_id", job.ID,
			"error", updateErr,
		)
	}

	if job.Status == entity.EmailStatusFailed {
		slog.Warn("Email job permanently failed",
			"job_id", job.ID,
			"attempts", job.Attempts,
			"last_error", job.LastError,
		)
		return
	}
	slog.Info("Email job scheduled for retry",
		"job_id", job.ID,
		"attempts", job.Attempts,
		"scheduled_at", job.ScheduledAt,
	)
}

func (w *Worker) purgeSent(ctx context.Context) {
	if w.retention <= 0 {
		return
	}
	deleted, err := w.queue.DeleteSentBefore(ctx, w.clock.Now().Add(-w.retention))
	if err != nil {
		slog.Error("Failed to purge sent email jobs", "error", err)
		return
	}
	if deleted > 0 {
		slog.Info("Purged sent email jobs", "count", deleted)
	}
}

func getString(data map[string]interface{}, key string) string {
	if v, ok := data[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// getInt reads a number that may have round-tripped through JSON as float64.
func getInt(data map[string]interface{}, key string) int {
	switch v := data[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		n, _ := strconv.Atoi(v)
		return n
	}
	return 0
}
