// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/trackbill/backend/internal/domain/entity"
)

// InvoiceFilter defines filter options for listing invoices.
type InvoiceFilter struct {
	BrandID *uuid.UUID
	Status  *entity.InvoiceStatus
}

// InvoicePagination defines pagination options.
type InvoicePagination struct {
	Page  int
	Limit int
}

// InvoiceRepository defines the interface for invoice persistence operations.
// Line items are persisted together with their invoice; loading an invoice
// always returns its items in display position order.
type InvoiceRepository interface {
	// Create creates a new invoice with its line items.
	Create(ctx context.Context, invoice *entity.Invoice) error

	// FindByID retrieves an invoice with its line items by ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error)

	// FindByFilter retrieves invoices matching the filter with pagination,
	// ordered by creation time descending, items included.
	FindByFilter(ctx context.Context, filter InvoiceFilter, pagination InvoicePagination) (*entity.InvoiceListResult, error)

	// ExistsByNumber checks whether an invoice with the given number exists.
	ExistsByNumber(ctx context.Context, number string) (bool, error)

	// Update updates the invoice header fields only.
	Update(ctx context.Context, invoice *entity.Invoice) error

	// ReplaceItems replaces the invoice's line items and updates its totals
	// in a single transaction.
	ReplaceItems(ctx context.Context, invoice *entity.Invoice) error

	// Delete soft-deletes an invoice from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
