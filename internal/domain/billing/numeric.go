// Package billing implements the pure calculation core for invoices and
// timesheets: line totals, invoice totals, time-entry aggregation and derived
// invoice state. Every function is stateless, never mutates its inputs and
// rounds only at output boundaries so intermediate sums stay exact.
package billing

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Round2 rounds a currency amount to two decimal places, half-up.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Round1 rounds an hour figure to one decimal place, half-up.
func Round1(d decimal.Decimal) decimal.Decimal {
	return d.Round(1)
}

// ParseLenientNumber parses a user-supplied numeric string, falling back to
// zero for blank or malformed input. Form fields arrive half-typed ("", "-",
// "1.") and the calculators must keep producing best-effort results instead of
// erroring on every keystroke, so the coercion policy lives here, apart from
// the arithmetic.
func ParseLenientNumber(input string) decimal.Decimal {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Zero
	}
	return d
}
