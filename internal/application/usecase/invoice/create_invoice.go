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

// CreateInvoiceInput represents the input for invoice creation.
type CreateInvoiceInput struct {
	BrandID   uuid.UUID
	Number    string
	DueDate   time.Time
	Notes     string
	TaxAmount decimal.Decimal
	Items     []LineItemInput
}

// CreateInvoiceOutput represents the output of invoice creation.
type CreateInvoiceOutput struct {
	Invoice *entity.Invoice
}

// CreateInvoiceUseCase handles invoice creation logic.
type CreateInvoiceUseCase struct {
	invoiceRepo adapter.InvoiceRepository
	brandRepo   adapter.BrandRepository
}

// NewCreateInvoiceUseCase creates a new CreateInvoiceUseCase instance.
func NewCreateInvoiceUseCase(invoiceRepo adapter.InvoiceRepository, brandRepo adapter.BrandRepository) *CreateInvoiceUseCase {
	return &CreateInvoiceUseCase{
		invoiceRepo: invoiceRepo,
		brandRepo:   brandRepo,
	}
}

// Execute creates a draft invoice. Totals are derived by the billing engine,
// never accepted from the caller.
func (uc *CreateInvoiceUseCase) Execute(ctx context.Context, input CreateInvoiceInput) (*CreateInvoiceOutput, error) {
	if _, err := uc.brandRepo.FindByID(ctx, input.BrandID); err != nil {
		return nil, domainerror.NewWorkspaceError(
			domainerror.ErrCodeBrandNotFound,
			"brand not found",
			domainerror.ErrBrandNotFound,
		)
	}

	if input.TaxAmount.IsNegative() {
		return nil, domainerror.NewInvoiceError(
			domainerror.ErrCodeInvalidTaxAmount,
			"tax amount must not be negative",
			domainerror.ErrInvalidTaxAmount,
		)
	}
	if err := validateLineItems(input.Items); err != nil {
		return nil, err
	}

	exists, err := uc.invoiceRepo.ExistsByNumber(ctx, input.Number)
	if err != nil {
		return nil, fmt.Errorf("failed to check invoice number: %w", err)
	}
	if exists {
		return nil, domainerror.NewInvoiceError(
			domainerror.ErrCodeDuplicateInvoiceNumber,
			"an invoice with this number already exists",
			domainerror.ErrDuplicateInvoiceNumber,
		)
	}

	inv := entity.NewInvoice(input.BrandID, input.Number, input.DueDate, input.Notes)
	inv.TaxAmount = input.TaxAmount
	inv.Items = buildLineItems(inv.ID, input.Items)
	applyTotals(inv)

	if err := uc.invoiceRepo.Create(ctx, inv); err != nil {
		return nil, fmt.Errorf("failed to create invoice: %w", err)
	}

	return &CreateInvoiceOutput{Invoice: inv}, nil
}
