package persistence

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/sponsor-tracker/backend/internal/application/adapter"
	"github.com/sponsor-tracker/backend/internal/domain/entity"
	"github.com/sponsor-tracker/backend/internal/integration/persistence/model"
)

// contactRepository implements the adapter.ContactRepository interface.
type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository creates a new contact repository instance.
func NewContactRepository(db *gorm.DB) adapter.ContactRepository {
	return &contactRepository{db: db}
}

// Create stores a contact. When the contact is primary, the sponsor's other contacts
// lose the flag in the same transaction.
func (r *contactRepository) Create(ctx context.Context, contact *entity.Contact) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if contact.IsPrimary {
			if err := tx.Model(&model.ContactModel{}).
				Where("sponsor_id = ? AND is_primary = ?", contact.SponsorID, true).
				Update("is_primary", false).Error; err != nil {
				return err
			}
		}
		return tx.Create(model.ContactFromEntity(contact)).Error
	})
}

// List retrieves contacts ordered by name.
func (r *contactRepository) List(ctx context.Context, filter adapter.ContactFilter) ([]*entity.Contact, error) {
	query := r.db.WithContext(ctx).Model(&model.ContactModel{})
	if filter.SponsorID != nil {
		query = query.Where("sponsor_id = ?", *filter.SponsorID)
	}
	if filter.PrimaryOnly {
		query = query.Where("is_primary = ?", true)
	}
	if search := strings.ToLower(strings.TrimSpace(filter.Search)); search != "" {
		like := "%" + search + "%"
		query = query.Where(
			"LOWER(contact_name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(phone) LIKE ? OR LOWER(title) LIKE ?",
			like, like, like, like,
		)
	}

	var models []model.ContactModel
	if err := query.Order("contact_name ASC").Order("id ASC").Find(&models).Error; err != nil {
		return nil, err
	}

	contacts := make([]*entity.Contact, len(models))
	for i := range models {
		contacts[i] = models[i].ToEntity()
	}
	return contacts, nil
}
