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

// brandRepository implements the adapter.BrandRepository interface.
type brandRepository struct {
	db *gorm.DB
}

// NewBrandRepository creates a new brand repository instance.
func NewBrandRepository(db *gorm.DB) adapter.BrandRepository {
	return &brandRepository{
		db: db,
	}
}

// Create creates a new brand in the database.
func (r *brandRepository) Create(ctx context.Context, brand *entity.Brand) error {
	brandModel := model.BrandFromEntity(brand)
	result := r.db.WithContext(ctx).Create(brandModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a brand by its ID.
func (r *brandRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Brand, error) {
	var brandModel model.BrandModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&brandModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrBrandNotFound
		}
		return nil, result.Error
	}
	return brandModel.ToEntity(), nil
}

// FindAll retrieves all brands ordered by name.
func (r *brandRepository) FindAll(ctx context.Context) ([]*entity.Brand, error) {
	var brandModels []model.BrandModel
	result := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&brandModels)
	if result.Error != nil {
		return nil, result.Error
	}

	brands := make([]*entity.Brand, len(brandModels))
	for i, bm := range brandModels {
		brands[i] = bm.ToEntity()
	}
	return brands, nil
}

// ExistsByName checks whether a brand with the given name exists.
func (r *brandRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.BrandModel{}).
		Where("name = ?", name).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// Update updates an existing brand in the database.
func (r *brandRepository) Update(ctx context.Context, brand *entity.Brand) error {
	brandModel := model.BrandFromEntity(brand)
	result := r.db.WithContext(ctx).Save(brandModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete soft-deletes a brand from the database.
func (r *brandRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.BrandModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// CountProjects counts the projects still attached to a brand.
func (r *brandRepository) CountProjects(ctx context.Context, brandID uuid.UUID) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.ProjectModel{}).
		Where("brand_id = ?", brandID).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}
