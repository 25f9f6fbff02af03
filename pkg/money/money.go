package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.MustParse("es-MX"))

// Format renders an amount as Mexican-peso display text (locale es-MX, two
// decimal places). The result is presentational only and must never be parsed
// back into a numeric value.
func Format(amount decimal.Decimal) string {
	value, _ := amount.Round(2).Float64()
	return printer.Sprint(currency.Symbol(currency.MXN.Amount(value)))
}
