// Package invoice contains invoice-related use cases.
package invoice

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/trackbill/backend/internal/domain/billing"
	"github.com/trackbill/backend/internal/domain/entity"
	domainerror "github.com/trackbill/backend/internal/domain/error"
)

// LineItemInput represents one line item as submitted by the caller.
type LineItemInput struct {
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	ProjectID   *uuid.UUID
}

// validateLineItems enforces the submission-time constraints on line items:
// non-empty description, positive quantity, non-negative unit price. The
// billing engine itself stays forgiving; this gate runs before persisting.
// An empty list is allowed here: a draft may hold zero items mid-edit, and
// the at-least-one-item rule is enforced when the invoice is sent.
func validateLineItems(items []LineItemInput) error {
	for _, item := range items {
		if item.Description == "" {
			return domainerror.NewInvoiceError(
				domainerror.ErrCodeEmptyLineItemDescription,
				"every line item needs a description",
				domainerror.ErrEmptyLineItemDescription,
			)
		}
		if !item.Quantity.IsPositive() {
			return domainerror.NewInvoiceError(
				domainerror.ErrCodeInvalidQuantity,
				"line item quantity must be positive",
				domainerror.ErrInvalidQuantity,
			)
		}
		if item.UnitPrice.IsNegative() {
			return domainerror.NewInvoiceError(
				domainerror.ErrCodeInvalidUnitPrice,
				"line item unit price must not be negative",
				domainerror.ErrInvalidUnitPrice,
			)
		}
	}
	return nil
}

// buildLineItems converts inputs to entities with engine-derived totals and
// display positions in submission order.
func buildLineItems(invoiceID uuid.UUID, items []LineItemInput) []*entity.LineItem {
	now := time.Now().UTC()
	built := make([]*entity.LineItem, 0, len(items))
	for i, item := range items {
		built = append(built, &entity.LineItem{
			ID:          uuid.New(),
			InvoiceID:   invoiceID,
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			TotalPrice:  billing.ComputeLineTotal(item.Quantity, item.UnitPrice),
			ProjectID:   item.ProjectID,
			Position:    i,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}
	return built
}

// applyTotals recomputes the invoice's derived totals from its current items
// and tax amount.
func applyTotals(inv *entity.Invoice) {
	totals := billing.ComputeInvoiceTotals(inv.Items, inv.TaxAmount)
	inv.Subtotal = totals.Subtotal
	inv.TotalAmount = totals.TotalAmount
}
