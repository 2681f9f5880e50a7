// Package invoice contains invoice-related use cases.
package invoice

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/trackbill/backend/internal/application/adapter"
	"github.com/trackbill/backend/internal/domain/entity"
	domainerror "github.com/trackbill/backend/internal/domain/error"
)

// UpdateInvoiceInput represents the input for draft invoice update. Nil
// fields are left unchanged; a non-nil Items replaces the whole item list.
type UpdateInvoiceInput struct {
	InvoiceID uuid.UUID
	Number    *string
	DueDate   *time.Time
	Notes     *string
	TaxAmount *decimal.Decimal
	Items     []LineItemInput
	SetItems  bool
}

// UpdateInvoiceOutput represents the output of invoice update.
type UpdateInvoiceOutput struct {
	Invoice *entity.Invoice
}

// UpdateInvoiceUseCase handles draft invoice edits.
type UpdateInvoiceUseCase struct {
	invoiceRepo adapter.InvoiceRepository
}

// NewUpdateInvoiceUseCase creates a new UpdateInvoiceUseCase instance.
func NewUpdateInvoiceUseCase(invoiceRepo adapter.InvoiceRepository) *UpdateInvoiceUseCase {
	return &UpdateInvoiceUseCase{
		invoiceRepo: invoiceRepo,
	}
}

// Execute applies the edit and recomputes totals. Items and tax can only
// change while the invoice is DRAFT.
func (uc *UpdateInvoiceUseCase) Execute(ctx context.Context, input UpdateInvoiceInput) (*UpdateInvoiceOutput, error) {
	inv, err := uc.invoiceRepo.FindByID(ctx, input.InvoiceID)
	if err != nil {
		return nil, domainerror.NewInvoiceError(
			domainerror.ErrCodeInvoiceNotFound,
			"invoice not found",
			domainerror.ErrInvoiceNotFound,
		)
	}

	changesItems := input.SetItems || input.TaxAmount != nil
	if changesItems && !inv.CanEditItems() {
		return nil, domainerror.NewInvoiceError(
			domainerror.ErrCodeInvoiceNotEditable,
			"items and tax can only be edited while the invoice is draft",
			domainerror.ErrInvoiceNotEditable,
		)
	}

	if input.TaxAmount != nil {
		if input.TaxAmount.IsNegative() {
			return nil, domainerror.NewInvoiceError(
				domainerror.ErrCodeInvalidTaxAmount,
				"tax amount must not be negative",
				domainerror.ErrInvalidTaxAmount,
			)
		}
		inv.TaxAmount = *input.TaxAmount
	}
	if input.SetItems {
		if err := validateLineItems(input.Items); err != nil {
			return nil, err
		}
		inv.Items = buildLineItems(inv.ID, input.Items)
	}
	if input.Number != nil {
		inv.Number = *input.Number
	}
	if input.DueDate != nil {
		inv.DueDate = *input.DueDate
	}
	if input.Notes != nil {
		inv.Notes = *input.Notes
	}
	inv.UpdatedAt = time.Now().UTC()

	// Totals follow every item or tax edit
	applyTotals(inv)

	if changesItems {
		if err := uc.invoiceRepo.ReplaceItems(ctx, inv); err != nil {
			return nil, fmt.Errorf("failed to update invoice items: %w", err)
		}
	} else {
		if err := uc.invoiceRepo.Update(ctx, inv); err != nil {
			return nil, fmt.Errorf("failed to update invoice: %w", err)
		}
	}

	return &UpdateInvoiceOutput{Invoice: inv}, nil
}
