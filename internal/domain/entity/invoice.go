// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceStatus represents the persisted lifecycle state of an invoice.
//
// Transitions: DRAFT -> SENT -> {PAID, CANCELLED}. SENT -> OVERDUE is written
// by a time-based job, not by request handlers; handlers only derive a display
// overdue flag for SENT invoices past their due date.
type InvoiceStatus string

const (
	InvoiceStatusDraft     InvoiceStatus = "DRAFT"
	InvoiceStatusSent      InvoiceStatus = "SENT"
	InvoiceStatusPaid      InvoiceStatus = "PAID"
	InvoiceStatusOverdue   InvoiceStatus = "OVERDUE"
	InvoiceStatusCancelled InvoiceStatus = "CANCELLED"
)

// LineItem represents one billable row on an invoice.
type LineItem struct {
	ID          uuid.UUID
	InvoiceID   uuid.UUID
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	// TotalPrice is always round2(Quantity * UnitPrice).
	TotalPrice decimal.Decimal
	// ProjectID optionally links the row to the project it bills for.
	ProjectID *uuid.UUID
	// Position preserves insertion order for display. Totals do not depend on it.
	Position  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Invoice represents an invoice issued to a brand.
type Invoice struct {
	ID      uuid.UUID
	BrandID uuid.UUID
	Number  string
	Items   []*LineItem
	// TaxAmount is entered independently, never derived from items.
	TaxAmount decimal.Decimal
	// Subtotal is the sum of item totals, recomputed on every edit.
	Subtotal decimal.Decimal
	// TotalAmount is round2(Subtotal + TaxAmount), recomputed on every edit.
	TotalAmount decimal.Decimal
	PaidAmount  decimal.Decimal
	Status      InvoiceStatus
	DueDate     time.Time
	Notes       string
	IssuedAt    *time.Time
	PaidAt      *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time
}

// NewInvoice creates a new draft Invoice entity without items.
func NewInvoice(brandID uuid.UUID, number string, dueDate time.Time, notes string) *Invoice {
	now := time.Now().UTC()
	return &Invoice{
		ID:          uuid.New(),
		BrandID:     brandID,
		Number:      number,
		Items:       make([]*LineItem, 0),
		TaxAmount:   decimal.Zero,
		Subtotal:    decimal.Zero,
		TotalAmount: decimal.Zero,
		PaidAmount:  decimal.Zero,
		Status:      InvoiceStatusDraft,
		DueDate:     dueDate,
		Notes:       notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// CanEditItems reports whether line items and tax may still be modified.
func (i *Invoice) CanEditItems() bool {
	return i.Status == InvoiceStatusDraft
}

// MarkSent transitions the invoice from DRAFT to SENT.
func (i *Invoice) MarkSent() {
	now := time.Now().UTC()
	i.Status = InvoiceStatusSent
	i.IssuedAt = &now
	i.UpdatedAt = now
}

// MarkPaid transitions the invoice to PAID.
func (i *Invoice) MarkPaid() {
	now := time.Now().UTC()
	i.Status = InvoiceStatusPaid
	i.PaidAt = &now
	i.UpdatedAt = now
}

// MarkCancelled transitions the invoice to CANCELLED.
func (i *Invoice) MarkCancelled() {
	i.Status = InvoiceStatusCancelled
	i.UpdatedAt = time.Now().UTC()
}

// InvoiceListResult represents the result of listing invoices.
type InvoiceListResult struct {
	Invoices   []*Invoice
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}
