// Package invoice contains invoice-related use cases.
package invoice

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/trackbill/backend/internal/application/adapter"
	"github.com/trackbill/backend/internal/domain/billing"
	"github.com/trackbill/backend/internal/domain/entity"
	domainerror "github.com/trackbill/backend/internal/domain/error"
)

// RecordPaymentInput represents the input for recording a payment.
type RecordPaymentInput struct {
	InvoiceID uuid.UUID
	Amount    decimal.Decimal
}

// RecordPaymentOutput represents the output of recording a payment.
type RecordPaymentOutput struct {
	Invoice          *entity.Invoice
	RemainingBalance decimal.Decimal
}

// RecordPaymentUseCase handles payment recording logic.
type RecordPaymentUseCase struct {
	invoiceRepo adapter.InvoiceRepository
	brandRepo   adapter.BrandRepository
	emailQueue  adapter.EmailQueueRepository
}

// NewRecordPaymentUseCase creates a new RecordPaymentUseCase instance.
func NewRecordPaymentUseCase(
	invoiceRepo adapter.InvoiceRepository,
	brandRepo adapter.BrandRepository,
	emailQueue adapter.EmailQueueRepository,
) *RecordPaymentUseCase {
	return &RecordPaymentUseCase{
		invoiceRepo: invoiceRepo,
		brandRepo:   brandRepo,
		emailQueue:  emailQueue,
	}
}

// Execute records a payment against a SENT or OVERDUE invoice. When the
// remaining balance reaches zero or below, the invoice moves to PAID.
// Overpayments are accepted; the remainder is reported as a negative value
// and presentation decides how to show it.
func (uc *RecordPaymentUseCase) Execute(ctx context.Context, input RecordPaymentInput) (*RecordPaymentOutput, error) {
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewInvoiceError(
			domainerror.ErrCodeInvalidPaymentAmount,
			"payment amount must be positive",
			domainerror.ErrInvalidPaymentAmount,
		)
	}

	inv, err := uc.invoiceRepo.FindByID(ctx, input.InvoiceID)
	if err != nil {
		return nil, domainerror.NewInvoiceError(
			domainerror.ErrCodeInvoiceNotFound,
			"invoice not found",
			domainerror.ErrInvoiceNotFound,
		)
	}

	if inv.Status != entity.InvoiceStatusSent && inv.Status != entity.InvoiceStatusOverdue {
		return nil, domainerror.NewInvoiceError(
			domainerror.ErrCodeInvalidStatusTransition,
			fmt.Sprintf("cannot record a payment on an invoice in status %s", inv.Status),
			domainerror.ErrInvalidStatusTransition,
		)
	}

	inv.PaidAmount = inv.PaidAmount.Add(input.Amount)
	remaining := billing.RemainingBalance(inv.TotalAmount, inv.PaidAmount)
	if !remaining.IsPositive() {
		inv.MarkPaid()
	} else {
		inv.UpdatedAt = time.Now().UTC()
	}

	if err := uc.invoiceRepo.Update(ctx, inv); err != nil {
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}

	if inv.Status == entity.InvoiceStatusPaid {
		uc.enqueueReceipt(ctx, inv)
	}

	return &RecordPaymentOutput{
		Invoice:          inv,
		RemainingBalance: remaining,
	}, nil
}

func (uc *RecordPaymentUseCase) enqueueReceipt(ctx context.Context, inv *entity.Invoice) {
	brand, err := uc.brandRepo.FindByID(ctx, inv.BrandID)
	if err != nil {
		slog.Error("Failed to load brand for payment receipt", "invoice_id", inv.ID, "error", err)
		return
	}

	job := entity.NewEmailJob(
		entity.TemplatePaymentReceived,
		brand.ContactEmail,
		brand.ContactName,
		fmt.Sprintf("Payment received for invoice %s", inv.Number),
		map[string]interface{}{
			"invoice_number": inv.Number,
			"brand_name":     brand.Name,
			"paid_amount":    inv.PaidAmount.StringFixed(2),
			"currency":       brand.CurrencyCode,
		},
	)
	if err := uc.emailQueue.Enqueue(ctx, job); err != nil {
		slog.Error("Failed to enqueue payment receipt email", "invoice_id", inv.ID, "error", err)
	}
}
