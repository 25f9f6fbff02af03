package builder

import (
	"github.com/communica-av/quoter-backend/internal/catalog"
	"github.com/communica-av/quoter-backend/pkg/enums"
)

// AddItem puts a catalog item into the cart. An existing line gains one unit;
// a new line starts at qty 1, except the area-driven item which starts at the
// current area input. The unit price is snapshotted here and never re-read.
func (s *State) AddItem(item catalog.Item) {
	if line := s.findLine(item.ItemKey); line != nil {
		line.Qty++
		return
	}

	qty := 1
	if item.IsAreaDriven() {
		qty = s.Setup.AreaQty
	}
	s.Lines = append(s.Lines, CartLine{
		ItemKey:      item.ItemKey,
		Category:     item.Category,
		Label:        item.Label,
		Emoji:        item.Emoji,
		Unit:         item.Unit,
		QuantityMode: item.QuantityMode,
		Qty:          qty,
		UnitPrice:    item.BasePrice,
	})
}

// Increment adds one unit to the named line. No-op for missing lines and for
// the area-driven line, whose quantity only the area input controls.
func (s *State) Increment(itemKey string) {
	line := s.findLine(itemKey)
	if line == nil || line.QuantityMode == enums.QuantityModeArea {
		return
	}
	line.Qty++
}

// Decrement removes one unit, floored at zero, and drops the line entirely
// once it empties. No-op for missing lines and for the area-driven line.
func (s *State) Decrement(itemKey string) {
	line := s.findLine(itemKey)
	if line == nil || line.QuantityMode == enums.QuantityModeArea {
		return
	}
	if line.Qty > 0 {
		line.Qty--
	}
	if line.Qty == 0 {
		s.removeLine(itemKey)
	}
}

// SyncAreaQuantity sets the area input (floored at zero) and reconciles the
// area-driven line to it. The line persists even at qty 0.
func (s *State) SyncAreaQuantity(qty int) {
	if qty < 0 {
		qty = 0
	}
	s.Setup.AreaQty = qty
	for i := range s.Lines {
		if s.Lines[i].QuantityMode == enums.QuantityModeArea {
			s.Lines[i].Qty = qty
		}
	}
}

// EnsureAreaLinePresent creates the area-driven line once the catalog is
// available. Idempotent: an existing line is never duplicated or overwritten.
func (s *State) EnsureAreaLinePresent(items []catalog.Item) {
	for _, item := range items {
		if !item.IsAreaDriven() {
			continue
		}
		if s.findLine(item.ItemKey) != nil {
			return
		}
		s.Lines = append(s.Lines, CartLine{
			ItemKey:      item.ItemKey,
			Category:     item.Category,
			Label:        item.Label,
			Emoji:        item.Emoji,
			Unit:         item.Unit,
			QuantityMode: item.QuantityMode,
			Qty:          s.Setup.AreaQty,
			UnitPrice:    item.BasePrice,
		})
		return
	}
}

// HasBillableLine reports whether any line carries a positive quantity. The
// area line only counts when its quantity is above zero.
func (s *State) HasBillableLine() bool {
	for _, line := range s.Lines {
		if line.Qty > 0 {
			return true
		}
	}
	return false
}

func (s *State) removeLine(itemKey string) {
	for i := range s.Lines {
		if s.Lines[i].ItemKey == itemKey {
			s.Lines = append(s.Lines[:i], s.Lines[i+1:]...)
			return
		}
	}
}
