package billing

import (
	"github.com/shopspring/decimal"

	"github.com/trackbill/backend/internal/domain/entity"
)

// InvoiceTotals holds the derived totals of an invoice.
type InvoiceTotals struct {
	Subtotal    decimal.Decimal
	TotalAmount decimal.Decimal
}

// ComputeLineTotal derives a line item's total from quantity and unit price,
// rounded to cents. It is deliberately forgiving: zero or negative quantities
// produce a best-effort result rather than an error, because draft forms call
// it on every edit. Submission-time validation is a caller concern.
func ComputeLineTotal(quantity, unitPrice decimal.Decimal) decimal.Decimal {
	return Round2(quantity.Mul(unitPrice))
}

// ComputeInvoiceTotals aggregates line items into subtotal and total.
// The tax amount is entered independently and is never derived from items.
// An empty item list is not an error: the subtotal is zero and the total
// equals the tax amount, which matches an invoice mid-edit.
func ComputeInvoiceTotals(items []*entity.LineItem, taxAmount decimal.Decimal) InvoiceTotals {
	subtotal := decimal.Zero
	for _, item := range items {
		if item == nil {
			continue
		}
		subtotal = subtotal.Add(item.TotalPrice)
	}

	return InvoiceTotals{
		Subtotal:    subtotal,
		TotalAmount: Round2(subtotal.Add(taxAmount)),
	}
}
