package quotes

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/communica-av/quoter-backend/pkg/db/models"
)

// Repository persists quote headers and their line items. The two inserts are
// deliberately separate calls: the submission contract is a two-step write
// with no compensation, so a header can outlive a failed items insert.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a quotes repository bound to the provided DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// InsertHeader writes the quote header row.
func (r *Repository) InsertHeader(ctx context.Context, quote *models.Quote) error {
	return r.db.WithContext(ctx).Omit("Items").Create(quote).Error
}

// InsertItems writes the line-item snapshot rows for an already-inserted header.
func (r *Repository) InsertItems(ctx context.Context, items []models.QuoteItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&items).Error
}

// FindByID loads a persisted quote with its items.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Quote, error) {
	var quote models.Quote
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("id = ?", id).
		First(&quote).Error
	if err != nil {
		return nil, err
	}
	return &quote, nil
}
