// Package brand contains brand-related use cases.
package brand

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/trackbill/backend/internal/application/adapter"
	domainerror "github.com/trackbill/backend/internal/domain/error"
)

// DeleteBrandInput represents the input for brand deletion.
type DeleteBrandInput struct {
	BrandID uuid.UUID
}

// DeleteBrandUseCase handles brand deletion logic.
type DeleteBrandUseCase struct {
	brandRepo adapter.BrandRepository
}

// NewDeleteBrandUseCase creates a new DeleteBrandUseCase instance.
func NewDeleteBrandUseCase(brandRepo adapter.BrandRepository) *DeleteBrandUseCase {
	return &DeleteBrandUseCase{
		brandRepo: brandRepo,
	}
}

// Execute performs the brand deletion. A brand that still owns projects
// cannot be deleted.
func (uc *DeleteBrandUseCase) Execute(ctx context.Context, input DeleteBrandInput) error {
	if _, err := uc.brandRepo.FindByID(ctx, input.BrandID); err != nil {
		return domainerror.NewWorkspaceError(
			domainerror.ErrCodeBrandNotFound,
			"brand not found",
			domainerror.ErrBrandNotFound,
		)
	}

	count, err := uc.brandRepo.CountProjects(ctx, input.BrandID)
	if err != nil {
		return fmt.Errorf("failed to count brand projects: %w", err)
	}
	if count > 0 {
		return domainerror.NewWorkspaceError(
			domainerror.ErrCodeBrandHasProjects,
			fmt.Sprintf("brand still has %d projects", count),
			domainerror.ErrBrandHasProjects,
		)
	}

	if err := uc.brandRepo.Delete(ctx, input.BrandID); err != nil {
		return fmt.Errorf("failed to delete brand: %w", err)
	}
	return nil
}
