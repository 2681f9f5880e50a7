// Package brand contains brand-related use cases.
package brand

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/trackbill/backend/internal/application/adapter"
	"github.com/trackbill/backend/internal/domain/entity"
	domainerror "github.com/trackbill/backend/internal/domain/error"
)

// UpdateBrandInput represents the input for brand update. Nil fields are left
// unchanged.
type UpdateBrandInput struct {
	BrandID           uuid.UUID
	Name              *string
	ContactEmail      *string
	ContactName       *string
	CurrencyCode      *string
	DefaultHourlyRate *decimal.Decimal
	ClearHourlyRate   bool
}

// UpdateBrandOutput represents the output of brand update.
type UpdateBrandOutput struct {
	Brand *entity.Brand
}

// UpdateBrandUseCase handles brand update logic.
type UpdateBrandUseCase struct {
	brandRepo adapter.BrandRepository
}

// NewUpdateBrandUseCase creates a new UpdateBrandUseCase instance.
func NewUpdateBrandUseCase(brandRepo adapter.BrandRepository) *UpdateBrandUseCase {
	return &UpdateBrandUseCase{
		brandRepo: brandRepo,
	}
}

// Execute performs the brand update.
func (uc *UpdateBrandUseCase) Execute(ctx context.Context, input UpdateBrandInput) (*UpdateBrandOutput, error) {
	brand, err := uc.brandRepo.FindByID(ctx, input.BrandID)
	if err != nil {
		return nil, domainerror.NewWorkspaceError(
			domainerror.ErrCodeBrandNotFound,
			"brand not found",
			domainerror.ErrBrandNotFound,
		)
	}

	if input.Name != nil && *input.Name != brand.Name {
		exists, err := uc.brandRepo.ExistsByName(ctx, *input.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to check brand name: %w", err)
		}
		if exists {
			return nil, domainerror.NewWorkspaceError(
				domainerror.ErrCodeBrandNameTaken,
				"a brand with this name already exists",
				domainerror.ErrBrandNameTaken,
			)
		}
		brand.Name = *input.Name
	}
	if input.ContactEmail != nil {
		brand.ContactEmail = *input.ContactEmail
	}
	if input.ContactName != nil {
		brand.ContactName = *input.ContactName
	}
	if input.CurrencyCode != nil {
		brand.CurrencyCode = *input.CurrencyCode
	}
	if input.ClearHourlyRate {
		brand.DefaultHourlyRate = nil
	} else if input.DefaultHourlyRate != nil {
		brand.DefaultHourlyRate = input.DefaultHourlyRate
	}
	brand.UpdatedAt = time.Now().UTC()

	if err := uc.brandRepo.Update(ctx, brand); err != nil {
		return nil, fmt.Errorf("failed to update brand: %w", err)
	}

	return &UpdateBrandOutput{Brand: brand}, nil
}
