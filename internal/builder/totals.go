package builder

import "github.com/shopspring/decimal"

// CategoryTotal is one per-category bucket; order follows the first
// appearance of the category in the cart.
type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// Totals is the derived view of the cart: subtotal, per-category buckets and
// the [min,max] estimate range built from the variance band.
type Totals struct {
	Subtotal   decimal.Decimal `json:"subtotal"`
	ByCategory []CategoryTotal `json:"by_category"`
	Variance   decimal.Decimal `json:"variance"`
	TotalMin   decimal.Decimal `json:"total_min"`
	TotalMax   decimal.Decimal `json:"total_max"`
}

// ComputeTotals derives totals from the cart and setup. Pure and linear in
// the number of lines; callers re-invoke it after every accepted mutation.
// No rounding happens here — display formatting is a boundary concern.
func ComputeTotals(lines []CartLine, setup EventSetup) Totals {
	subtotal := decimal.Zero
	byCategory := []CategoryTotal{}
	bucketIdx := map[string]int{}

	for _, line := range lines {
		lineTotal := line.LineTotal()
		subtotal = subtotal.Add(lineTotal)

		if idx, ok := bucketIdx[line.Category]; ok {
			byCategory[idx].Total = byCategory[idx].Total.Add(lineTotal)
		} else {
			bucketIdx[line.Category] = len(byCategory)
			byCategory = append(byCategory, CategoryTotal{Category: line.Category, Total: lineTotal})
		}
	}

	variance := ComputeVariance(setup)
	one := decimal.New(1, 0)

	return Totals{
		Subtotal:   subtotal,
		ByCategory: byCategory,
		Variance:   variance,
		TotalMin:   subtotal.Mul(one.Sub(variance)),
		TotalMax:   subtotal.Mul(one.Add(variance)),
	}
}
