package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/communica-av/quoter-backend/pkg/db/models"
	"github.com/communica-av/quoter-backend/pkg/enums"
)

// Item is the catalog view handed to the quote builder. Prices on it are
// offer prices; the cart snapshots them at add time and never re-reads.
type Item struct {
	ItemKey      string             `json:"item_key"`
	Category     string             `json:"category"`
	Label        string             `json:"label"`
	Emoji        string             `json:"emoji"`
	Unit         string             `json:"unit"`
	QuantityMode enums.QuantityMode `json:"quantity_mode"`
	BasePrice    decimal.Decimal    `json:"base_price"`
}

// IsAreaDriven reports whether the item's quantity tracks the area input.
func (i Item) IsAreaDriven() bool {
	return i.QuantityMode == enums.QuantityModeArea
}

func fromEntry(entry models.CatalogEntry) Item {
	return Item{
		ItemKey:      entry.ItemKey,
		Category:     entry.Category,
		Label:        entry.Label,
		Emoji:        entry.Emoji,
		Unit:         entry.Unit,
		QuantityMode: entry.QuantityMode,
		BasePrice:    entry.BasePrice,
	}
}
