package format

import (
	"github.com/leekchan/accounting"
	"github.com/shopspring/decimal"
)

var som = accounting.Accounting{Symbol: "so'm", Precision: 0, Thousand: " ", Format: "%v %s"}

// FormatSom renders a price for templates, e.g. "1 250 000 so'm".
func FormatSom(amount decimal.Decimal) string {
	return som.FormatMoneyDecimal(amount)
}
