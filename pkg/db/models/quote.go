package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/communica-av/quoter-backend/pkg/enums"
)

// Quote is the persisted header of a completed estimation session. Rows are
// written once at submission time and never updated.
type Quote struct {
	ID            uuid.UUID         `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	EventType     string            `gorm:"column:event_type;not null"`
	PaxRange      string            `gorm:"column:pax_range;not null"`
	City          string            `gorm:"column:city;not null"`
	VenueDefined  bool              `gorm:"column:venue_defined;not null"`
	IsOutdoor     bool              `gorm:"column:is_outdoor;not null"`
	AreaQty       int               `gorm:"column:area_qty;not null;default:0"`
	Montage       enums.MontageMode `gorm:"column:montage;type:montage_mode;not null"`
	DurationHours int               `gorm:"column:duration_hours;not null"`
	CustomerName  string            `gorm:"column:customer_name;not null"`
	Company       string            `gorm:"column:company;not null;default:''"`
	Email         string            `gorm:"column:email;not null"`
	Whatsapp      string            `gorm:"column:whatsapp;not null;default:''"`
	Subtotal      decimal.Decimal   `gorm:"column:subtotal;type:numeric(14,2);not null"`
	Variance      decimal.Decimal   `gorm:"column:variance;type:numeric(4,2);not null"`
	TotalMin      decimal.Decimal   `gorm:"column:total_min;type:numeric(14,2);not null"`
	TotalMax      decimal.Decimal   `gorm:"column:total_max;type:numeric(14,2);not null"`
	Items         []QuoteItem       `gorm:"foreignKey:QuoteID;constraint:OnDelete:CASCADE"`
	CreatedAt     time.Time         `gorm:"column:created_at;autoCreateTime"`
}
