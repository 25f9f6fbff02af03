package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// QuoteItem captures the snapshot of a single cart line within a quote.
type QuoteItem struct {
	ID        uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	QuoteID   uuid.UUID       `gorm:"column:quote_id;type:uuid;not null"`
	Category  string          `gorm:"column:category;not null"`
	ItemKey   string          `gorm:"column:item_key;not null"`
	Label     string          `gorm:"column:label;not null"`
	Emoji     string          `gorm:"column:emoji;not null;default:''"`
	Unit      string          `gorm:"column:unit;not null"`
	Qty       int             `gorm:"column:qty;not null"`
	UnitPrice decimal.Decimal `gorm:"column:unit_price;type:numeric(12,2);not null"`
	LineTotal decimal.Decimal `gorm:"column:line_total;type:numeric(14,2);not null"`
	CreatedAt time.Time       `gorm:"column:created_at;autoCreateTime"`
}
