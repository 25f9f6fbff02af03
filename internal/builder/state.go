package builder

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/communica-av/quoter-backend/pkg/enums"
)

const (
	minDurationHours = 1
	maxDurationHours = 24

	defaultCity     = "CDMX"
	defaultDuration = 8
	defaultAreaQty  = 10
)

// EventSetup holds the user-supplied event parameters that drive the variance
// band and the area line quantity.
type EventSetup struct {
	City          string            `json:"city"`
	VenueDefined  bool              `json:"venue_defined"`
	IsOutdoor     bool              `json:"is_outdoor"`
	Montage       enums.MontageMode `json:"montage"`
	DurationHours int               `json:"duration_hours"`
	AreaQty       int               `json:"area_qty"`
}

// CartLine is one selected item with its quantity and the price snapshotted
// when it entered the cart. Catalog fields are copied at add time and never
// re-synced.
type CartLine struct {
	ItemKey      string             `json:"item_key"`
	Category     string             `json:"category"`
	Label        string             `json:"label"`
	Emoji        string             `json:"emoji"`
	Unit         string             `json:"unit"`
	QuantityMode enums.QuantityMode `json:"quantity_mode"`
	Qty          int                `json:"qty"`
	UnitPrice    decimal.Decimal    `json:"unit_price"`
}

// LineTotal returns qty times the snapshotted unit price.
func (l CartLine) LineTotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Qty)))
}

// State is the owned, serializable quote-builder session state. All
// transitions are methods on it; nothing mutates it from outside.
type State struct {
	Step             enums.BuilderStep `json:"step"`
	Setup            EventSetup        `json:"setup"`
	Lines            []CartLine        `json:"lines"`
	SubmittedQuoteID *uuid.UUID        `json:"submitted_quote_id,omitempty"`
}

// NewState returns a fresh session at the first step with the stock defaults.
func NewState() *State {
	return &State{
		Step: enums.BuilderStepCollectingEventData,
		Setup: EventSetup{
			City:          defaultCity,
			VenueDefined:  true,
			IsOutdoor:     false,
			Montage:       enums.MontageModeRigging,
			DurationHours: defaultDuration,
			AreaQty:       defaultAreaQty,
		},
	}
}

// EventSetupInput carries a full event-setup update.
type EventSetupInput struct {
	City          string
	VenueDefined  bool
	IsOutdoor     bool
	Montage       enums.MontageMode
	DurationHours int
	AreaQty       int
}

// ApplyEventSetup replaces the event setup, clamping numeric inputs to their
// valid ranges instead of rejecting them. An area change reconciles the area
// line in the same transition.
func (s *State) ApplyEventSetup(input EventSetupInput) {
	montage := input.Montage
	if !montage.IsValid() {
		montage = enums.MontageModeUndefined
	}
	s.Setup.City = input.City
	s.Setup.VenueDefined = input.VenueDefined
	s.Setup.IsOutdoor = input.IsOutdoor
	s.Setup.Montage = montage
	s.Setup.DurationHours = clampInt(input.DurationHours, minDurationHours, maxDurationHours)
	s.SyncAreaQuantity(input.AreaQty)
}

// MarkSubmitted records the terminal outcome of a successful submission.
func (s *State) MarkSubmitted(quoteID uuid.UUID) {
	s.Step = enums.BuilderStepSubmitted
	s.SubmittedQuoteID = &quoteID
}

func (s *State) findLine(itemKey string) *CartLine {
	for i := range s.Lines {
		if s.Lines[i].ItemKey == itemKey {
			return &s.Lines[i]
		}
	}
	return nil
}

func clampInt(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
