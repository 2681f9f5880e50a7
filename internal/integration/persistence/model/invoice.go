// Package model defines database models for persistence layer.
package model

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/trackbill/backend/internal/domain/entity"
)

// InvoiceModel represents the invoices table in the database.
type InvoiceModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	BrandID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Number      string          `gorm:"type:varchar(50);uniqueIndex;not null"`
	TaxAmount   decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Subtotal    decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	PaidAmount  decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Status      string          `gorm:"type:varchar(10);not null;index"`
	DueDate     time.Time       `gorm:"type:date;not null;index"`
	Notes       string          `gorm:"type:text"`
	IssuedAt    *time.Time      `gorm:"type:timestamptz"`
	PaidAt      *time.Time      `gorm:"type:timestamptz"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
	DeletedAt   gorm.DeletedAt  `gorm:"index"`

	// Relationships (not loaded by default, use Preload)
	Brand *BrandModel      `gorm:"foreignKey:BrandID;references:ID"`
	Items []LineItemModel  `gorm:"foreignKey:InvoiceID;references:ID"`
}

// TableName returns the table name for the InvoiceModel.
func (InvoiceModel) TableName() string {
	return "invoices"
}

// LineItemModel represents the invoice_line_items table in the database.
type LineItemModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	InvoiceID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Description string          `gorm:"type:varchar(500);not null"`
	Quantity    decimal.Decimal `gorm:"type:decimal(15,4);not null"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	TotalPrice  decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	ProjectID   *uuid.UUID      `gorm:"type:uuid;index"`
	Position    int             `gorm:"not null;default:0"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for the LineItemModel.
func (LineItemModel) TableName() string {
	return "invoice_line_items"
}

// ToEntity converts a LineItemModel to a domain LineItem entity.
func (m *LineItemModel) ToEntity() *entity.LineItem {
	return &entity.LineItem{
		ID:          m.ID,
		InvoiceID:   m.InvoiceID,
		Description: m.Description,
		Quantity:    m.Quantity,
		UnitPrice:   m.UnitPrice,
		TotalPrice:  m.TotalPrice,
		ProjectID:   m.ProjectID,
		Position:    m.Position,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// LineItemFromEntity creates a LineItemModel from a domain LineItem entity.
func LineItemFromEntity(item *entity.LineItem) *LineItemModel {
	return &LineItemModel{
		ID:          item.ID,
		InvoiceID:   item.InvoiceID,
		Description: item.Description,
		Quantity:    item.Quantity,
		UnitPrice:   item.UnitPrice,
		TotalPrice:  item.TotalPrice,
		ProjectID:   item.ProjectID,
		Position:    item.Position,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}

// ToEntity converts an InvoiceModel to a domain Invoice entity. Items are
// returned in display position order regardless of load order.
func (m *InvoiceModel) ToEntity() *entity.Invoice {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	items := make([]*entity.LineItem, len(m.Items))
	for i := range m.Items {
		items[i] = m.Items[i].ToEntity()
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Position < items[j].Position
	})

	return &entity.Invoice{
		ID:          m.ID,
		BrandID:     m.BrandID,
		Number:      m.Number,
		Items:       items,
		TaxAmount:   m.TaxAmount,
		Subtotal:    m.Subtotal,
		TotalAmount: m.TotalAmount,
		PaidAmount:  m.PaidAmount,
		Status:      entity.InvoiceStatus(m.Status),
		DueDate:     m.DueDate,
		Notes:       m.Notes,
		IssuedAt:    m.IssuedAt,
		PaidAt:      m.PaidAt,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		DeletedAt:   deletedAt,
	}
}

// InvoiceFromEntity creates an InvoiceModel from a domain Invoice entity.
// Items are not mapped here; they are written separately so header updates
// do not rewrite item rows.
func InvoiceFromEntity(invoice *entity.Invoice) *InvoiceModel {
	var deletedAt gorm.DeletedAt
	if invoice.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *invoice.DeletedAt, Valid: true}
	}

	return &InvoiceModel{
		ID:          invoice.ID,
		BrandID:     invoice.BrandID,
		Number:      invoice.Number,
		TaxAmount:   invoice.TaxAmount,
		Subtotal:    invoice.Subtotal,
		TotalAmount: invoice.TotalAmount,
		PaidAmount:  invoice.PaidAmount,
		Status:      string(invoice.Status),
		DueDate:     invoice.DueDate,
		Notes:       invoice.Notes,
		IssuedAt:    invoice.IssuedAt,
		PaidAt:      invoice.PaidAt,
		CreatedAt:   invoice.CreatedAt,
		UpdatedAt:   invoice.UpdatedAt,
		DeletedAt:   deletedAt,
	}
}
