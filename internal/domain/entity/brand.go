// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Brand represents a client tenant that owns projects and receives invoices.
type Brand struct {
	ID           uuid.UUID
	Name         string
	ContactEmail string
	ContactName  string
	// CurrencyCode is the ISO 4217 code used on this brand's invoices.
	CurrencyCode string
	// DefaultHourlyRate applies to time entries whose worker has no rate of their own.
	DefaultHourlyRate *decimal.Decimal
	CreatedAt         time.Time
	UpdatedAt         time.Time
	DeletedAt         *time.Time
}

// NewBrand creates a new Brand entity.
func NewBrand(name, contactEmail, contactName, currencyCode string, defaultHourlyRate *decimal.Decimal) *Brand {
	now := time.Now().UTC()
	return &Brand{
		ID:                uuid.New(),
		Name:              name,
		ContactEmail:      contactEmail,
		ContactName:       contactName,
		CurrencyCode:      currencyCode,
		DefaultHourlyRate: defaultHourlyRate,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}
