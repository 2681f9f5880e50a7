// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/trackbill/backend/internal/domain/entity"
)

// BrandModel represents the brands table in the database.
type BrandModel struct {
	ID                uuid.UUID        `gorm:"type:uuid;primaryKey"`
	Name              string           `gorm:"type:varchar(100);uniqueIndex;not null"`
	ContactEmail      string           `gorm:"type:varchar(255);not null"`
	ContactName       string           `gorm:"type:varchar(100)"`
	CurrencyCode      string           `gorm:"type:varchar(3);not null;default:'USD'"`
	DefaultHourlyRate *decimal.Decimal `gorm:"type:decimal(12,2)"`
	CreatedAt         time.Time        `gorm:"not null"`
	UpdatedAt         time.Time        `gorm:"not null"`
	DeletedAt         gorm.DeletedAt   `gorm:"index"`
}

// TableName returns the table name for the BrandModel.
func (BrandModel) TableName() string {
	return "brands"
}

// ToEntity converts a BrandModel to a domain Brand entity.
func (m *BrandModel) ToEntity() *entity.Brand {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.Brand{
		ID:                m.ID,
		Name:              m.Name,
		ContactEmail:      m.ContactEmail,
		ContactName:       m.ContactName,
		CurrencyCode:      m.CurrencyCode,
		DefaultHourlyRate: m.DefaultHourlyRate,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
		DeletedAt:         deletedAt,
	}
}

// BrandFromEntity creates a BrandModel from a domain Brand entity.
func BrandFromEntity(brand *entity.Brand) *BrandModel {
	var deletedAt gorm.DeletedAt
	if brand.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *brand.DeletedAt, Valid: true}
	}

	return &BrandModel{
		ID:                brand.ID,
		Name:              brand.Name,
		ContactEmail:      brand.ContactEmail,
		ContactName:       brand.ContactName,
		CurrencyCode:      brand.CurrencyCode,
		DefaultHourlyRate: brand.DefaultHourlyRate,
		CreatedAt:         brand.CreatedAt,
		UpdatedAt:         brand.UpdatedAt,
		DeletedAt:         deletedAt,
	}
}
