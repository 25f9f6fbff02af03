package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/communica-av/quoter-backend/pkg/enums"
)

// CatalogEntry is one purchasable item offered by the quote builder.
type CatalogEntry struct {
	ID           uuid.UUID          `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	ItemKey      string             `gorm:"column:item_key;not null;uniqueIndex"`
	Category     string             `gorm:"column:category;not null"`
	Label        string             `gorm:"column:label;not null"`
	Emoji        string             `gorm:"column:emoji;not null;default:''"`
	Unit         string             `gorm:"column:unit;not null"`
	QuantityMode enums.QuantityMode `gorm:"column:quantity_mode;type:quantity_mode;not null;default:'unit'"`
	BasePrice    decimal.Decimal    `gorm:"column:base_price;type:numeric(12,2);not null;default:0"`
	IsActive     bool               `gorm:"column:is_active;not null;default:true"`
	SortOrder    int                `gorm:"column:sort_order;not null;default:0"`
	CreatedAt    time.Time          `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time          `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName maps the model onto the items table.
func (CatalogEntry) TableName() string {
	return "items"
}
