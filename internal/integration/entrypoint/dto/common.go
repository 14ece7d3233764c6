// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/sponsor-tracker/backend/internal/domain/valueobject"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// DataQualityWarningResponse reports a record left out of a computation.
type DataQualityWarningResponse struct {
	RecordID string `json:"record_id"`
	Field    string `json:"field"`
	Reason   string `json:"reason"`
	Detail   string `json:"detail,omitempty"`
}

// ToDataQualityWarnings converts warnings to their response form. Never returns nil.
func ToDataQualityWarnings(warnings []valueobject.DataQualityWarning) []DataQualityWarningResponse {
	out := make([]DataQualityWarningResponse, len(warnings))
	for i, w := range warnings {
		out[i] = DataQualityWarningResponse{
			RecordID: w.RecordID,
			Field:    w.Field,
			Reason:   string(w.Reason),
			Detail:   w.Detail,
		}
	}
	return out
}

// Money renders an amount with two decimals.
func Money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func datePtr(t *time.Time) *string {
	return valueobject.FormatDatePtr(t)
}
