package builder

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/communica-av/quoter-backend/pkg/enums"
)

func TestComputeTotalsEmptyCart(t *testing.T) {
	t.Parallel()

	totals := ComputeTotals(nil, narrowSetup())

	assert.True(t, totals.Subtotal.IsZero(), "subtotal")
	assert.Empty(t, totals.ByCategory)
	assert.True(t, totals.TotalMin.IsZero(), "total_min")
	assert.True(t, totals.TotalMax.IsZero(), "total_max")
}

func TestComputeTotalsNarrowBandScenario(t *testing.T) {
	t.Parallel()

	lines := []CartLine{
		{ItemKey: "A", Category: "Audio", Qty: 2, UnitPrice: decimal.NewFromInt(100)},
		{ItemKey: "B", Category: "Cámaras", Qty: 1, UnitPrice: decimal.NewFromInt(50)},
	}

	totals := ComputeTotals(lines, narrowSetup())

	require.True(t, totals.Subtotal.Equal(decimal.NewFromInt(250)), "subtotal %s", totals.Subtotal)
	require.True(t, totals.Variance.Equal(decimal.RequireFromString("0.15")), "variance %s", totals.Variance)
	assert.True(t, totals.TotalMin.Equal(decimal.RequireFromString("212.5")), "total_min %s", totals.TotalMin)
	assert.True(t, totals.TotalMax.Equal(decimal.RequireFromString("287.5")), "total_max %s", totals.TotalMax)
}

func TestComputeTotalsAreaForcesWideBand(t *testing.T) {
	t.Parallel()

	setup := narrowSetup()
	setup.AreaQty = 20

	lines := []CartLine{
		{ItemKey: "LED_M2", Category: "Pantallas", QuantityMode: enums.QuantityModeArea, Qty: 20, UnitPrice: decimal.NewFromInt(10)},
	}

	totals := ComputeTotals(lines, setup)

	assert.True(t, totals.Variance.Equal(decimal.RequireFromString("0.2")), "variance %s", totals.Variance)
	assert.True(t, totals.Subtotal.Equal(decimal.NewFromInt(200)), "subtotal %s", totals.Subtotal)
	assert.True(t, totals.TotalMin.Equal(decimal.NewFromInt(160)), "total_min %s", totals.TotalMin)
	assert.True(t, totals.TotalMax.Equal(decimal.NewFromInt(240)), "total_max %s", totals.TotalMax)
}

func TestComputeTotalsCategoryOrderIsFirstSeen(t *testing.T) {
	t.Parallel()

	lines := []CartLine{
		{ItemKey: "A", Category: "Audio", Qty: 1, UnitPrice: decimal.NewFromInt(10)},
		{ItemKey: "B", Category: "Cámaras", Qty: 1, UnitPrice: decimal.NewFromInt(20)},
		{ItemKey: "C", Category: "Audio", Qty: 1, UnitPrice: decimal.NewFromInt(30)},
	}

	totals := ComputeTotals(lines, narrowSetup())

	require.Len(t, totals.ByCategory, 2)
	assert.Equal(t, "Audio", totals.ByCategory[0].Category)
	assert.True(t, totals.ByCategory[0].Total.Equal(decimal.NewFromInt(40)), "audio bucket %s", totals.ByCategory[0].Total)
	assert.Equal(t, "Cámaras", totals.ByCategory[1].Category)
	assert.True(t, totals.ByCategory[1].Total.Equal(decimal.NewFromInt(20)), "camera bucket %s", totals.ByCategory[1].Total)
}

func TestComputeTotalsRangeBracketsSubtotal(t *testing.T) {
	t.Parallel()

	lines := []CartLine{
		{ItemKey: "A", Category: "Audio", Qty: 3, UnitPrice: decimal.RequireFromString("19.99")},
		{ItemKey: "B", Category: "Staff", Qty: 2, UnitPrice: decimal.RequireFromString("120.50")},
	}

	for _, setup := range []EventSetup{narrowSetup(), {VenueDefined: false}} {
		totals := ComputeTotals(lines, setup)
		if totals.TotalMin.GreaterThan(totals.Subtotal) || totals.Subtotal.GreaterThan(totals.TotalMax) {
			t.Fatalf("range [%s, %s] does not bracket subtotal %s", totals.TotalMin, totals.TotalMax, totals.Subtotal)
		}
	}
}

func TestComputeTotalsDeterministic(t *testing.T) {
	t.Parallel()

	lines := []CartLine{
		{ItemKey: "A", Category: "Audio", Qty: 2, UnitPrice: decimal.NewFromInt(100)},
	}
	setup := narrowSetup()

	first := ComputeTotals(lines, setup)
	second := ComputeTotals(lines, setup)

	assert.True(t, first.Subtotal.Equal(second.Subtotal))
	assert.True(t, first.TotalMin.Equal(second.TotalMin))
	assert.True(t, first.TotalMax.Equal(second.TotalMax))
}
