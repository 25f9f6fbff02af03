package catalog

import (
	"context"

	"gorm.io/gorm"

	"github.com/communica-av/quoter-backend/pkg/db/models"
)

// Repository reads catalog rows from the items table.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a catalog repository bound to the provided DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListActive returns active items ordered by their explicit sort key.
func (r *Repository) ListActive(ctx context.Context) ([]models.CatalogEntry, error) {
	var rows []models.CatalogEntry
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("sort_order ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
