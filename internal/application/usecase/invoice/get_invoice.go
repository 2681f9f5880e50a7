// Package invoice contains invoice-related use cases.
package invoice

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/trackbill/backend/internal/application/adapter"
	"github.com/trackbill/backend/internal/domain/entity"
	domainerror "github.com/trackbill/backend/internal/domain/error"
)

// GetInvoiceInput represents the input for fetching a single invoice.
type GetInvoiceInput struct {
	Caller    *entity.User
	InvoiceID uuid.UUID
}

// GetInvoiceOutput represents the output of fetching a single invoice.
type GetInvoiceOutput struct {
	Invoice *InvoiceView
}

// GetInvoiceUseCase handles fetching a single invoice.
type GetInvoiceUseCase struct {
	invoiceRepo adapter.InvoiceRepository
}

// NewGetInvoiceUseCase creates a new GetInvoiceUseCase instance.
func NewGetInvoiceUseCase(invoiceRepo adapter.InvoiceRepository) *GetInvoiceUseCase {
	return &GetInvoiceUseCase{
		invoiceRepo: invoiceRepo,
	}
}

// Execute retrieves one invoice with derived display state. Client users can
// only see invoices of their own brand; other brands' invoices read as not
// found rather than forbidden.
func (uc *GetInvoiceUseCase) Execute(ctx context.Context, input GetInvoiceInput) (*GetInvoiceOutput, error) {
	inv, err := uc.invoiceRepo.FindByID(ctx, input.InvoiceID)
	if err != nil {
		return nil, domainerror.NewInvoiceError(
			domainerror.ErrCodeInvoiceNotFound,
			"invoice not found",
			domainerror.ErrInvoiceNotFound,
		)
	}

	if input.Caller.Role == entity.UserRoleClient {
		if input.Caller.BrandID == nil || *input.Caller.BrandID != inv.BrandID {
			return nil, domainerror.NewInvoiceError(
				domainerror.ErrCodeInvoiceNotFound,
				"invoice not found",
				domainerror.ErrInvoiceNotFound,
			)
		}
	}

	return &GetInvoiceOutput{Invoice: newInvoiceView(inv, time.Now().UTC())}, nil
}
