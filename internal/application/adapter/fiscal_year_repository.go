package adapter

import (
	"context"

	"github.com/sponsor-tracker/backend/internal/domain/entity"
	"github.com/sponsor-tracker/backend/internal/domain/valueobject"
)

// FiscalYearRepository defines the interface for fiscal year settings persistence.
type FiscalYearRepository interface {
	// FindByFiscalYear returns the setting of fy or ErrFiscalYearSettingNotFound.
	FindByFiscalYear(ctx context.Context, fy valueobject.FiscalYear) (*entity.FiscalYearSetting, error)

	// List retrieves all settings ordered by fiscal year.
	List(ctx context.Context) ([]*entity.FiscalYearSetting, error)

	// Upsert creates or replaces the setting of its fiscal year.
	Upsert(ctx context.Context, setting *entity.FiscalYearSetting) error

	// SetCurrent flags fy as the current fiscal year and clears the flag elsewhere.
	SetCurrent(ctx context.Context, fy valueobject.FiscalYear) error
}
