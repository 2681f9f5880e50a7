// Package invoice contains invoice-related use cases.
package invoice

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/trackbill/backend/internal/application/adapter"
	"github.com/trackbill/backend/internal/domain/entity"
	domainerror "github.com/trackbill/backend/internal/domain/error"
)

// CancelInvoiceInput represents the input for invoice cancellation.
type CancelInvoiceInput struct {
	InvoiceID uuid.UUID
}

// CancelInvoiceOutput represents the output of invoice cancellation.
type CancelInvoiceOutput struct {
	Invoice *entity.Invoice
}

// CancelInvoiceUseCase handles invoice cancellation logic.
type CancelInvoiceUseCase struct {
	invoiceRepo adapter.InvoiceRepository
}

// NewCancelInvoiceUseCase creates a new CancelInvoiceUseCase instance.
func NewCancelInvoiceUseCase(invoiceRepo adapter.InvoiceRepository) *CancelInvoiceUseCase {
	return &CancelInvoiceUseCase{
		invoiceRepo: invoiceRepo,
	}
}

// Execute cancels an invoice. DRAFT, SENT and OVERDUE invoices can be
// cancelled; PAID invoices cannot.
func (uc *CancelInvoiceUseCase) Execute(ctx context.Context, input CancelInvoiceInput) (*CancelInvoiceOutput, error) {
	inv, err := uc.invoiceRepo.FindByID(ctx, input.InvoiceID)
	if err != nil {
		return nil, domainerror.NewInvoiceError(
			domainerror.ErrCodeInvoiceNotFound,
			"invoice not found",
			domainerror.ErrInvoiceNotFound,
		)
	}

	if inv.Status == entity.InvoiceStatusPaid || inv.Status == entity.InvoiceStatusCancelled {
		return nil, domainerror.NewInvoiceError(
			domainerror.ErrCodeInvalidStatusTransition,
			fmt.Sprintf("cannot cancel an invoice in status %s", inv.Status),
			domainerror.ErrInvalidStatusTransition,
		)
	}

	inv.MarkCancelled()
	if err := uc.invoiceRepo.Update(ctx, inv); err != nil {
		return nil, fmt.Errorf("failed to cancel invoice: %w", err)
	}

	return &CancelInvoiceOutput{Invoice: inv}, nil
}
