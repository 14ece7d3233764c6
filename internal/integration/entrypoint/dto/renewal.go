package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/sponsor-tracker/backend/internal/application/usecase/renewal"
	"github.com/sponsor-tracker/backend/internal/domain/entity"
	"github.com/sponsor-tracker/backend/internal/domain/valueobject"
)

// ClassifyRecordRequest is one raw sponsorship record to classify.
type ClassifyRecordRequest struct {
	ID             string          `json:"id"`
	SponsorID      string          `json:"sponsor_id"`
	SponsorName    string          `json:"sponsor_name"`
	TierName       string          `json:"tier_name"`
	Status         string          `json:"status"`
	ExpirationDate string          `json:"expiration_date"`
	TotalValue     decimal.Decimal `json:"total_value"`
}

// ClassifyRecordsRequest represents the request body for classifying raw records.
type ClassifyRecordsRequest struct {
	Today   *string                 `json:"today,omitempty"`
	Records []ClassifyRecordRequest `json:"records"`
}

// QueueRemindersRequest represents the request body for queueing renewal emails.
type QueueRemindersRequest struct {
	IncludeLapsed bool `json:"include_lapsed"`
	DryRun        bool `json:"dry_run"`
}

// PipelineItemResponse is one sponsorship in a renewal bucket.
type PipelineItemResponse struct {
	SponsorshipID       string `json:"sponsorship_id"`
	SponsorID           string `json:"sponsor_id"`
	SponsorName         string `json:"sponsor_name"`
	TierName            string `json:"tier_name"`
	FiscalYear          string `json:"fiscal_year,omitempty"`
	ExpirationDate      string `json:"expiration_date"`
	DaysUntilExpiration int    `json:"days_until_expiration"`
	TotalValue          string `json:"total_value"`
	ReminderSent        bool   `json:"reminder_sent"`
}

// PipelineStatsResponse summarizes the pipeline.
type PipelineStatsResponse struct {
	TotalAtRisk int    `json:"total_at_risk"`
	TotalValue  string `json:"total_value"`
	LapsedCount int    `json:"lapsed_count"`
	LapsedValue string `json:"lapsed_value"`
}

// PipelineResponse represents the renewal pipeline.
type PipelineResponse struct {
	Today    string                       `json:"today"`
	Urgent   []PipelineItemResponse       `json:"urgent"`
	Soon     []PipelineItemResponse       `json:"soon"`
	Upcoming []PipelineItemResponse       `json:"upcoming"`
	Lapsed   []PipelineItemResponse       `json:"lapsed"`
	Stats    PipelineStatsResponse        `json:"stats"`
	Warnings []DataQualityWarningResponse `json:"warnings"`
}

// QueuedReminderResponse is one email queued by a reminder run.
type QueuedReminderResponse struct {
	SponsorshipID    string `json:"sponsorship_id"`
	OrganizationName string `json:"organization_name"`
	ContactEmail     string `json:"contact_email"`
	Template         string `json:"template"`
	DaysRemaining    int    `json:"days_remaining"`
}

// QueueRemindersResponse reports a reminder run.
type QueueRemindersResponse struct {
	Today    string                       `json:"today"`
	DryRun   bool                         `json:"dry_run"`
	Queued   []QueuedReminderResponse     `json:"queued"`
	Skipped  []DataQualityWarningResponse `json:"skipped"`
	Warnings []DataQualityWarningResponse `json:"warnings"`
}

// ToRawRecords converts classify request records to use case input.
func ToRawRecords(records []ClassifyRecordRequest) []renewal.RawRecord {
	out := make([]renewal.RawRecord, len(records))
	for i, r := range records {
		out[i] = renewal.RawRecord{
			ID:             r.ID,
			SponsorID:      r.SponsorID,
			SponsorName:    r.SponsorName,
			TierName:       r.TierName,
			Status:         r.Status,
			ExpirationDate: r.ExpirationDate,
			TotalValue:     r.TotalValue,
		}
	}
	return out
}

// ToPipelineResponse converts a classified pipeline to its response DTO.
func ToPipelineResponse(today time.Time, p *renewal.Pipeline) PipelineResponse {
	return PipelineResponse{
		Today:    valueobject.FormatDate(today),
		Urgent:   toPipelineItems(p.Urgent, today),
		Soon:     toPipelineItems(p.Soon, today),
		Upcoming: toPipelineItems(p.Upcoming, today),
		Lapsed:   toPipelineItems(p.Lapsed, today),
		Stats: PipelineStatsResponse{
			TotalAtRisk: p.Stats.TotalAtRisk,
			TotalValue:  Money(p.Stats.TotalValue),
			LapsedCount: p.Stats.LapsedCount,
			LapsedValue: Money(p.Stats.LapsedValue),
		},
		Warnings: ToDataQualityWarnings(p.Warnings),
	}
}

func toPipelineItems(records []*entity.Sponsorship, today time.Time) []PipelineItemResponse {
	out := make([]PipelineItemResponse, len(records))
	for i, s := range records {
		item := PipelineItemResponse{
			SponsorshipID:       s.ID.String(),
			SponsorID:           s.SponsorID.String(),
			SponsorName:         s.SponsorName(),
			TierName:            s.EffectiveTierName(),
			DaysUntilExpiration: renewal.DaysUntilExpiration(s, today),
			TotalValue:          Money(s.TotalValue()),
			ReminderSent:        s.RenewalReminderSent,
		}
		if !s.FiscalYear.IsZero() {
			item.FiscalYear = s.FiscalYear.String()
		}
		if s.ExpirationDate != nil {
			item.ExpirationDate = valueobject.FormatDate(*s.ExpirationDate)
		}
		out[i] = item
	}
	return out
}

// ToQueueRemindersResponse converts a reminder run to its response DTO.
func ToQueueRemindersResponse(output *renewal.QueueRemindersOutput, dryRun bool) QueueRemindersResponse {
	queued := make([]QueuedReminderResponse, len(output.Queued))
	for i, q := range output.Queued {
		queued[i] = QueuedReminderResponse{
			SponsorshipID:    q.SponsorshipID.String(),
			OrganizationName: q.OrganizationName,
			ContactEmail:     q.ContactEmail,
			Template:         string(q.Template),
			DaysRemaining:    q.DaysRemaining,
		}
	}
	return QueueRemindersResponse{
		Today:    valueobject.FormatDate(output.Today),
		DryRun:   dryRun,
		Queued:   queued,
		Skipped:  ToDataQualityWarnings(output.Skipped),
		Warnings: ToDataQualityWarnings(output.Warnings),
	}
}
