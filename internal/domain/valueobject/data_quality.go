package valueobject

import "fmt"

// DataQualityReason names why a record was left out of a computation.
type DataQualityReason string

const (
	ReasonMissingExpirationDate DataQualityReason = "missing_expiration_date"
	ReasonInvalidExpirationDate DataQualityReason = "invalid_expiration_date"
	ReasonMissingContactEmail   DataQualityReason = "missing_contact_email"
	ReasonInvalidFiscalYear     DataQualityReason = "invalid_fiscal_year"
)

// DataQualityWarning is a non-fatal diagnostic returned next to normal results when a
// record had to be excluded because a required field was missing or unusable.
type DataQualityWarning struct {
	RecordID string
	Field    string
	Reason   DataQualityReason
	Detail   string
}

// String renders the warning for logs.
func (w DataQualityWarning) String() string {
	if w.Detail == "" {
		return fmt.Sprintf("record %s excluded: %s (%s)", w.RecordID, w.Reason, w.Field)
	}
	return fmt.Sprintf("record %s excluded: %s (%s): %s", w.RecordID, w.Reason, w.Field, w.Detail)
}
