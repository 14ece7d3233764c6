package model

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sponsor-tracker/backend/internal/domain/entity"
	"github.com/sponsor-tracker/backend/internal/domain/valueobject"
)

// FiscalYearSettingModel represents the fiscal_year_settings table in the database.
type FiscalYearSettingModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	FiscalYear string          `gorm:"type:varchar(9);not null;uniqueIndex"`
	GoalAmount decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	IsCurrent  bool            `gorm:"not null;default:false"`
	CreatedAt  time.Time       `gorm:"not null"`
	UpdatedAt  time.Time       `gorm:"not null"`
}

// TableName returns the table name for the FiscalYearSettingModel.
func (FiscalYearSettingModel) TableName() string {
	return "fiscal_year_settings"
}

// ToEntity converts a FiscalYearSettingModel to a domain FiscalYearSetting entity.
func (m *FiscalYearSettingModel) ToEntity() *entity.FiscalYearSetting {
	fy, err := valueobject.ParseFiscalYear(m.FiscalYear)
	if err != nil {
		slog.Warn("Invalid fiscal year setting", "id", m.ID, "fiscal_year", m.FiscalYear, "error", err)
	}

	return &entity.FiscalYearSetting{
		ID:         m.ID,
		FiscalYear: fy,
		GoalAmount: m.GoalAmount,
		IsCurrent:  m.IsCurrent,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// FiscalYearSettingFromEntity creates a FiscalYearSettingModel from a domain entity.
func FiscalYearSettingFromEntity(s *entity.FiscalYearSetting) *FiscalYearSettingModel {
	return &FiscalYearSettingModel{
		ID:         s.ID,
		FiscalYear: s.FiscalYear.String(),
		GoalAmount: s.GoalAmount,
		IsCurrent:  s.IsCurrent,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}
