package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/sponsor-tracker/backend/internal/application/adapter"
	"github.com/sponsor-tracker/backend/internal/domain/entity"
	domainerror "github.com/sponsor-tracker/backend/internal/domain/error"
	"github.com/sponsor-tracker/backend/internal/domain/valueobject"
	"github.com/sponsor-tracker/backend/internal/integration/persistence/model"
)

// fiscalYearRepository implements the adapter.FiscalYearRepository interface.
type fiscalYearRepository struct {
	db *gorm.DB
}

// NewFiscalYearRepository creates a new fiscal year settings repository instance.
func NewFiscalYearRepository(db *gorm.DB) adapter.FiscalYearRepository {
	return &fiscalYearRepository{db: db}
}

// FindByFiscalYear returns the setting of fy or ErrFiscalYearSettingNotFound.
func (r *fiscalYearRepository) FindByFiscalYear(ctx context.Context, fy valueobject.FiscalYear) (*entity.FiscalYearSetting, error) {
	var settingModel model.FiscalYearSettingModel
	result := r.db.WithContext(ctx).Where("fiscal_year = ?", fy.String()).First(&settingModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrFiscalYearSettingNotFound
		}
		return nil, result.Error
	}
	return settingModel.ToEntity(), nil
}

// List retrieves all settings ordered by fiscal year.
func (r *fiscalYearRepository) List(ctx context.Context) ([]*entity.FiscalYearSetting, error) {
	var models []model.FiscalYearSettingModel
	if err := r.db.WithContext(ctx).Order("fiscal_year ASC").Find(&models).Error; err != nil {
		return nil, err
	}

	settings := make([]*entity.FiscalYearSetting, len(models))
	for i := range models {
		settings[i] = models[i].ToEntity()
	}
	return settings, nil
}

// Upsert creates the setting or overwrites the goal of its fiscal year.
func (r *fiscalYearRepository) Upsert(ctx context.Context, setting *entity.FiscalYearSetting) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "fiscal_year"}},
			DoUpdates: clause.AssignmentColumns([]string{"goal_amount", "is_current", "updated_at"}),
		}).
		Create(model.FiscalYearSettingFromEntity(setting)).Error
}

// SetCurrent flags fy as the current fiscal year and clears the flag on every other row.
func (r *fiscalYearRepository) SetCurrent(ctx context.Context, fy valueobject.FiscalYear) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.FiscalYearSettingModel{}).
			Where("is_current = ?", true).
			Update("is_current", false).Error; err != nil {
			return err
		}

		result := tx.Model(&model.FiscalYearSettingModel{}).
			Where("fiscal_year = ?", fy.String()).
			Update("is_current", true)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrFiscalYearSettingNotFound
		}
		return nil
	})
}
