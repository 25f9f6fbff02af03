package money

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatCarriesSymbolAndDecimals(t *testing.T) {
	t.Parallel()

	got := Format(decimal.NewFromInt(250))
	if !strings.Contains(got, "$") {
		t.Fatalf("expected a peso symbol in %q", got)
	}
	if !strings.Contains(got, "250") {
		t.Fatalf("expected the amount in %q", got)
	}
}

func TestFormatRoundsToTwoPlaces(t *testing.T) {
	t.Parallel()

	got := Format(decimal.RequireFromString("212.5"))
	if !strings.Contains(got, "212.50") {
		t.Fatalf("expected two decimal places in %q", got)
	}
}
