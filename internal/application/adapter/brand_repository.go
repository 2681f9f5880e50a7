// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/trackbill/backend/internal/domain/entity"
)

// BrandRepository defines the interface for brand persistence operations.
type BrandRepository interface {
	// Create creates a new brand in the database.
	Create(ctx context.Context, brand *entity.Brand) error

	// FindByID retrieves a brand by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Brand, error)

	// FindAll retrieves all brands ordered by name.
	FindAll(ctx context.Context) ([]*entity.Brand, error)

	// ExistsByName checks whether a brand with the given name exists.
	ExistsByName(ctx context.Context, name string) (bool, error)

	// Update updates an existing brand in the database.
	Update(ctx context.Context, brand *entity.Brand) error

	// Delete soft-deletes a brand from the database.
	Delete(ctx context.Context, id uuid.UUID) error

	// CountProjects counts the projects still attached to a brand.
	CountProjects(ctx context.Context, brandID uuid.UUID) (int64, error)
}
