package calendar

import (
	"context"
	"strings"
	"time"

	domainerror "github.com/sponsor-tracker/backend/internal/domain/error"
	"github.com/sponsor-tracker/backend/internal/domain/valueobject"
)

// CalculateRenewalDateInput represents the input for computing a renewal date.
type CalculateRenewalDateInput struct {
	PaymentDate string // YYYY-MM-DD
}

// CalculateRenewalDateOutput holds the computed renewal date.
type CalculateRenewalDateOutput struct {
	PaymentDate time.Time
	RenewalDate time.Time
	FiscalYear  valueobject.FiscalYear // Fiscal year of the payment
}

// CalculateRenewalDateUseCase computes the renewal date of a payment.
type CalculateRenewalDateUseCase struct{}

// NewCalculateRenewalDateUseCase creates a new CalculateRenewalDateUseCase instance.
func NewCalculateRenewalDateUseCase() *CalculateRenewalDateUseCase {
	return &CalculateRenewalDateUseCase{}
}

// Execute parses the payment date and computes its renewal date.
func (uc *CalculateRenewalDateUseCase) Execute(_ context.Context, input CalculateRenewalDateInput) (*CalculateRenewalDateOutput, error) {
	if strings.TrimSpace(input.PaymentDate) == "" {
		err := domainerror.NewInvalidDateError("", "payment_date is required")
		err.Code = domainerror.ErrCodeMissingPaymentDate
		return nil, err
	}

	payment, err := valueobject.ParseDate(input.PaymentDate)
	if err != nil {
		return nil, err
	}

	renewal, err := valueobject.CalculateRenewalDate(payment)
	if err != nil {
		return nil, err
	}

	return &CalculateRenewalDateOutput{
		PaymentDate: payment,
		RenewalDate: renewal,
		FiscalYear:  valueobject.CurrentFiscalYear(payment),
	}, nil
}
