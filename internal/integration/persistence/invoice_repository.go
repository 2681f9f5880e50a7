// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/trackbill/backend/internal/application/adapter"
	"github.com/trackbill/backend/internal/domain/entity"
	domainerror "github.com/trackbill/backend/internal/domain/error"
	"github.com/trackbill/backend/internal/integration/persistence/model"
)

// invoiceRepository implements the adapter.InvoiceRepository interface.
type invoiceRepository struct {
	db *gorm.DB
}

// NewInvoiceRepository creates a new invoice repository instance.
func NewInvoiceRepository(db *gorm.DB) adapter.InvoiceRepository {
	return &invoiceRepository{
		db: db,
	}
}

// Create creates a new invoice with its line items.
func (r *invoiceRepository) Create(ctx context.Context, invoice *entity.Invoice) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		invoiceModel := model.InvoiceFromEntity(invoice)
		if err := tx.Create(invoiceModel).Error; err != nil {
			return err
		}
		for _, item := range invoice.Items {
			if err := tx.Create(model.LineItemFromEntity(item)).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// FindByID retrieves an invoice with its line items by ID.
func (r *invoiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	var invoiceModel model.InvoiceModel
	result := r.db.WithContext(ctx).
		Preload("Items").
		Where("id = ?", id).
		First(&invoiceModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrInvoiceNotFound
		}
		return nil, result.Error
	}
	return invoiceModel.ToEntity(), nil
}

// FindByFilter retrieves invoices based on filter criteria with pagination.
func (r *invoiceRepository) FindByFilter(ctx context.Context, filter adapter.InvoiceFilter, pagination adapter.InvoicePagination) (*entity.InvoiceListResult, error) {
	query := r.db.WithContext(ctx).Model(&model.InvoiceModel{})

	if filter.BrandID != nil {
		query = query.Where("brand_id = ?", *filter.BrandID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}

	var total int64
	countQuery := query.Session(&gorm.Session{})
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, err
	}

	offset := (pagination.Page - 1) * pagination.Limit
	totalPages := int((total + int64(pagination.Limit) - 1) / int64(pagination.Limit))
	if totalPages == 0 {
		totalPages = 1
	}

	var invoiceModels []model.InvoiceModel
	result := query.
		Preload("Items").
		Order("created_at DESC").
		Offset(offset).
		Limit(pagination.Limit).
		Find(&invoiceModels)
	if result.Error != nil {
		return nil, result.Error
	}

	invoices := make([]*entity.Invoice, len(invoiceModels))
	for i := range invoiceModels {
		invoices[i] = invoiceModels[i].ToEntity()
	}

	return &entity.InvoiceListResult{
		Invoices:   invoices,
		Total:      total,
		Page:       pagination.Page,
		Limit:      pagination.Limit,
		TotalPages: totalPages,
	}, nil
}

// ExistsByNumber checks whether an invoice with the given number exists.
func (r *invoiceRepository) ExistsByNumber(ctx context.Context, number string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.InvoiceModel{}).
		Where("number = ?", number).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// Update updates the invoice header fields only.
func (r *invoiceRepository) Update(ctx context.Context, invoice *entity.Invoice) error {
	invoiceModel := model.InvoiceFromEntity(invoice)
	result := r.db.WithContext(ctx).Save(invoiceModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// ReplaceItems replaces the invoice's line items and updates its totals
// in a single transaction.
func (r *invoiceRepository) ReplaceItems(ctx context.Context, invoice *entity.Invoice) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().
			Where("invoice_id = ?", invoice.ID).
			Delete(&model.LineItemModel{}).Error; err != nil {
			return err
		}
		for _, item := range invoice.Items {
			if err := tx.Create(model.LineItemFromEntity(item)).Error; err != nil {
				return err
			}
		}
		return tx.Save(model.InvoiceFromEntity(invoice)).Error
	})
}

// Delete soft-deletes an invoice from the database.
func (r *invoiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.InvoiceModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
