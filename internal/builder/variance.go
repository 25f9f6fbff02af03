package builder

import (
	"github.com/shopspring/decimal"

	"github.com/communica-av/quoter-backend/pkg/enums"
)

// wideAreaThreshold is the LED surface (m²) at and above which the estimate
// band widens.
const wideAreaThreshold = 16

var (
	varianceNarrow = decimal.New(15, -2) // 0.15
	varianceWide   = decimal.New(20, -2) // 0.20
)

// ComputeVariance maps event-risk inputs to the symmetric uncertainty
// fraction around the subtotal. Any single risk signal forces the wide band;
// multiple signals do not widen it further.
func ComputeVariance(setup EventSetup) decimal.Decimal {
	widen := !setup.VenueDefined ||
		setup.IsOutdoor ||
		setup.Montage == enums.MontageModeUndefined ||
		setup.AreaQty >= wideAreaThreshold

	if widen {
		return varianceWide
	}
	return varianceNarrow
}
