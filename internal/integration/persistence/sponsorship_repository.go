package persistence

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sponsor-tracker/backend/internal/application/adapter"
	"github.com/sponsor-tracker/backend/internal/domain/entity"
	domainerror "github.com/sponsor-tracker/backend/internal/domain/error"
	"github.com/sponsor-tracker/backend/internal/domain/valueobject"
	"github.com/sponsor-tracker/backend/internal/integration/persistence/model"
)

// sponsorshipRepository implements the adapter.SponsorshipRepository interface.
type sponsorshipRepository struct {
	db *gorm.DB
}

// NewSponsorshipRepository creates a new sponsorship repository instance.
func NewSponsorshipRepository(db *gorm.DB) adapter.SponsorshipRepository {
	return &sponsorshipRepository{db: db}
}

// Create creates a new sponsorship in the database.
func (r *sponsorshipRepository) Create(ctx context.Context, sponsorship *entity.Sponsorship) error {
	return r.db.WithContext(ctx).Omit("Sponsor").Create(model.SponsorshipFromEntity(sponsorship)).Error
}

// FindByID retrieves a sponsorship with its sponsor loaded.
func (r *sponsorshipRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Sponsorship, error) {
	var sponsorshipModel model.SponsorshipModel
	result := r.db.WithContext(ctx).
		Preload("Sponsor").
		Where("id = ?", id).
		First(&sponsorshipModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrSponsorshipNotFound
		}
		return nil, result.Error
	}
	return sponsorshipModel.ToEntity()
}

// List retrieves sponsorships matching filter, oldest first.
func (r *sponsorshipRepository) List(ctx context.Context, filter adapter.SponsorshipFilter) ([]*entity.Sponsorship, error) {
	query := r.db.WithContext(ctx).Preload("Sponsor")

	if filter.FiscalYear != nil {
		query = query.Where("fiscal_year = ?", filter.FiscalYear.String())
	}
	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}
	if filter.SponsorID != nil {
		query = query.Where("sponsor_id = ?", *filter.SponsorID)
	}

	var models []model.SponsorshipModel
	if err := query.Order("created_at ASC").Order("id ASC").Find(&models).Error; err != nil {
		return nil, err
	}

	return toSponsorships(models), nil
}

// ListReceived retrieves every Received sponsorship of an active sponsor, including
// rows without an expiration date. Sponsorships of archived sponsors are left out.
// Each sponsor comes with its primary contact, the recipient of renewal email.
func (r *sponsorshipRepository) ListReceived(ctx context.Context) ([]*entity.Sponsorship, error) {
	var models []model.SponsorshipModel
	result := r.db.WithContext(ctx).
		Preload("Sponsor").
		Preload("Sponsor.Contacts", "is_primary = ?", true).
		Joins("JOIN sponsors ON sponsors.id = sponsorships.sponsor_id AND sponsors.is_active = ?", true).
		Where("sponsorships.status = ?", string(entity.SponsorshipStatusReceived)).
		Order("sponsorships.created_at ASC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	return toSponsorships(models), nil
}

// Update saves changes to an existing sponsorship.
func (r *sponsorshipRepository) Update(ctx context.Context, sponsorship *entity.Sponsorship) error {
	if !sponsorship.FiscalYear.Valid() {
		return domainerror.NewInvalidFiscalYearError(sponsorship.FiscalYear.String(), "refusing to store a sponsorship without a valid fiscal year")
	}
	result := r.db.WithContext(ctx).Omit("Sponsor").Save(model.SponsorshipFromEntity(sponsorship))
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// toSponsorships converts rows to entities. Rows that cannot be converted are skipped
// and reported as data-quality warnings in the log.
func toSponsorships(models []model.SponsorshipModel) []*entity.Sponsorship {
	sponsorships := make([]*entity.Sponsorship, 0, len(models))
	for i := range models {
		s, err := models[i].ToEntity()
		if err != nil {
			warning := valueobject.DataQualityWarning{
				RecordID: models[i].ID.String(),
				Field:    "fiscal_year",
				Reason:   valueobject.ReasonInvalidFiscalYear,
				Detail:   models[i].FiscalYear,
			}
			slog.Warn("Skipping malformed sponsorship row", "warning", warning.String(), "error", err)
			continue
		}
		sponsorships = append(sponsorships, s)
	}
	return sponsorships
}
