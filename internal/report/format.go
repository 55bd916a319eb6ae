package report

import "github.com/shopspring/decimal"

// CurrencySymbol is fixed; there is no locale or currency configuration.
const CurrencySymbol = "₹"

// FormatAmount renders an amount with the currency symbol and two decimals.
func FormatAmount(amount decimal.Decimal) string {
	return CurrencySymbol + amount.StringFixed(2)
}
