package renewal

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sponsor-tracker/backend/internal/application/adapter"
	"github.com/sponsor-tracker/backend/internal/domain/entity"
	domainerror "github.com/sponsor-tracker/backend/internal/domain/error"
	"github.com/sponsor-tracker/backend/internal/domain/valueobject"
)

// MaxClassifyRecords bounds the number of records accepted in one classify call.
const MaxClassifyRecords = 5000

// RawRecord is a sponsorship snapshot submitted from outside the store.
type RawRecord struct {
	ID             string
	SponsorID      string
	SponsorName    string
	TierName       string
	Status         string
	ExpirationDate string // YYYY-MM-DD, may be empty
	TotalValue     decimal.Decimal
}

// ClassifyRecordsInput represents the input for classifying raw records.
type ClassifyRecordsInput struct {
	Records []RawRecord
	Today   *time.Time // Optional, defaults to the clock
}

// ClassifyRecordsOutput represents the classified raw records.
type ClassifyRecordsOutput struct {
	Today    time.Time
	Pipeline *Pipeline
}

// ClassifyRecordsUseCase classifies records that were not loaded from the store.
type ClassifyRecordsUseCase struct {
	clock adapter.Clock
}

// NewClassifyRecordsUseCase creates a new ClassifyRecordsUseCase instance.
func NewClassifyRecordsUseCase(clock adapter.Clock) *ClassifyRecordsUseCase {
	return &ClassifyRecordsUseCase{clock: clock}
}

// Execute converts the raw records and classifies them. Received records whose
// expiration date cannot be parsed are excluded with a warning.
func (uc *ClassifyRecordsUseCase) Execute(_ context.Context, input ClassifyRecordsInput) (*ClassifyRecordsOutput, error) {
	if len(input.Records) > MaxClassifyRecords {
		return nil, domainerror.NewRenewalError(
			domainerror.ErrCodeTooManyRecords,
			fmt.Sprintf("at most %d records can be classified at once", MaxClassifyRecords),
			domainerror.ErrTooManyRecords,
		)
	}

	today := uc.clock.Now()
	if input.Today != nil {
		today = *input.Today
	}
	today = valueobject.StartOfDay(today)

	records := make([]*entity.Sponsorship, 0, len(input.Records))
	var warnings []valueobject.DataQualityWarning

	for i, raw := range input.Records {
		record, err := toSponsorship(raw)
		if err != nil {
			return nil, domainerror.NewRenewalError(
				domainerror.ErrCodeInvalidRenewalParams,
				fmt.Sprintf("record %d: %v", i, err),
				err,
			)
		}

		if record.Status == entity.SponsorshipStatusReceived && strings.TrimSpace(raw.ExpirationDate) != "" {
			expiration, err := valueobject.ParseDate(raw.ExpirationDate)
			if err != nil {
				warnings = append(warnings, valueobject.DataQualityWarning{
					RecordID: record.ID.String(),
					Field:    "expiration_date",
					Reason:   valueobject.ReasonInvalidExpirationDate,
					Detail:   raw.ExpirationDate,
				})
				continue
			}
			// Keep the calendar date but place it in today's location so day counts do not drift.
			expiration = time.Date(expiration.Year(), expiration.Month(), expiration.Day(), 0, 0, 0, 0, today.Location())
			record.ExpirationDate = &expiration
		}

		records = append(records, record)
	}

	pipeline := ClassifyRenewals(records, today)
	pipeline.Warnings = append(warnings, pipeline.Warnings...)

	return &ClassifyRecordsOutput{
		Today:    today,
		Pipeline: pipeline,
	}, nil
}

// toSponsorship converts the identity and value fields of a raw record.
// Records without an id get a generated one; a sponsor id defaults to the record id.
// Status must be one of the known sponsorship statuses, matched exactly.
func toSponsorship(raw RawRecord) (*entity.Sponsorship, error) {
	id := uuid.New()
	if raw.ID != "" {
		parsed, err := uuid.Parse(raw.ID)
		if err != nil {
			return nil, fmt.Errorf("invalid id %q: %w", raw.ID, err)
		}
		id = parsed
	}

	sponsorID := id
	if raw.SponsorID != "" {
		parsed, err := uuid.Parse(raw.SponsorID)
		if err != nil {
			return nil, fmt.Errorf("invalid sponsor_id %q: %w", raw.SponsorID, err)
		}
		sponsorID = parsed
	}

	status := entity.SponsorshipStatus(raw.Status)
	if !status.IsValid() {
		return nil, fmt.Errorf("unknown status %q", raw.Status)
	}

	return &entity.Sponsorship{
		ID:             id,
		SponsorID:      sponsorID,
		TierName:       raw.TierName,
		Status:         status,
		MonetaryAmount: raw.TotalValue,
		InKindValue:    decimal.Zero,
		Sponsor:        &entity.Sponsor{ID: sponsorID, OrganizationName: raw.SponsorName},
	}, nil
}
