// Package invoice contains invoice-related use cases.
package invoice

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/trackbill/backend/internal/application/adapter"
	"github.com/trackbill/backend/internal/domain/entity"
	domainerror "github.com/trackbill/backend/internal/domain/error"
)

// SendInvoiceInput represents the input for sending an invoice.
type SendInvoiceInput struct {
	InvoiceID uuid.UUID
}

// SendInvoiceOutput represents the output of sending an invoice.
type SendInvoiceOutput struct {
	Invoice *entity.Invoice
}

// SendInvoiceUseCase transitions a draft invoice to SENT and queues the
// notification email to the brand contact.
type SendInvoiceUseCase struct {
	invoiceRepo adapter.InvoiceRepository
	brandRepo   adapter.BrandRepository
	emailQueue  adapter.EmailQueueRepository
}

// NewSendInvoiceUseCase creates a new SendInvoiceUseCase instance.
func NewSendInvoiceUseCase(
	invoiceRepo adapter.InvoiceRepository,
	brandRepo adapter.BrandRepository,
	emailQueue adapter.EmailQueueRepository,
) *SendInvoiceUseCase {
	return &SendInvoiceUseCase{
		invoiceRepo: invoiceRepo,
		brandRepo:   brandRepo,
		emailQueue:  emailQueue,
	}
}

// Execute sends the invoice. Only DRAFT invoices with at least one line item
// can be sent.
func (uc *SendInvoiceUseCase) Execute(ctx context.Context, input SendInvoiceInput) (*SendInvoiceOutput, error) {
	inv, err := uc.invoiceRepo.FindByID(ctx, input.InvoiceID)
	if err != nil {
		return nil, domainerror.NewInvoiceError(
			domainerror.ErrCodeInvoiceNotFound,
			"invoice not found",
			domainerror.ErrInvoiceNotFound,
		)
	}

	if inv.Status != entity.InvoiceStatusDraft {
		return nil, domainerror.NewInvoiceError(
			domainerror.ErrCodeInvalidStatusTransition,
			fmt.Sprintf("cannot send an invoice in status %s", inv.Status),
			domainerror.ErrInvalidStatusTransition,
		)
	}
	if len(inv.Items) == 0 {
		return nil, domainerror.NewInvoiceError(
			domainerror.ErrCodeEmptyInvoice,
			"invoice must contain at least one line item",
			domainerror.ErrEmptyInvoice,
		)
	}

	brand, err := uc.brandRepo.FindByID(ctx, inv.BrandID)
	if err != nil {
		return nil, fmt.Errorf("failed to load brand: %w", err)
	}

	inv.MarkSent()
	if err := uc.invoiceRepo.Update(ctx, inv); err != nil {
		return nil, fmt.Errorf("failed to mark invoice as sent: %w", err)
	}

	// Email delivery is best-effort; the status transition stands even if
	// enqueueing fails.
	job := entity.NewEmailJob(
		entity.TemplateInvoiceSent,
		brand.ContactEmail,
		brand.ContactName,
		fmt.Sprintf("Invoice %s from Trackbill", inv.Number),
		map[string]interface{}{
			"invoice_number": inv.Number,
			"brand_name":     brand.Name,
			"total_amount":   inv.TotalAmount.StringFixed(2),
			"currency":       brand.CurrencyCode,
			"due_date":       inv.DueDate.Format("2006-01-02"),
		},
	)
	if err := uc.emailQueue.Enqueue(ctx, job); err != nil {
		slog.Error("Failed to enqueue invoice email",
			"invoice_id", inv.ID,
			"error", err,
		)
	}

	return &SendInvoiceOutput{Invoice: inv}, nil
}
