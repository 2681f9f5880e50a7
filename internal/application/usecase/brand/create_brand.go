// Package brand contains brand-related use cases.
package brand

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/trackbill/backend/internal/application/adapter"
	"github.com/trackbill/backend/internal/domain/entity"
	domainerror "github.com/trackbill/backend/internal/domain/error"
)

// CreateBrandInput represents the input for brand creation.
type CreateBrandInput struct {
	Name              string
	ContactEmail      string
	ContactName       string
	CurrencyCode      string
	DefaultHourlyRate *decimal.Decimal
}

// CreateBrandOutput represents the output of brand creation.
type CreateBrandOutput struct {
	Brand *entity.Brand
}

// CreateBrandUseCase handles brand creation logic.
type CreateBrandUseCase struct {
	brandRepo adapter.BrandRepository
}

// NewCreateBrandUseCase creates a new CreateBrandUseCase instance.
func NewCreateBrandUseCase(brandRepo adapter.BrandRepository) *CreateBrandUseCase {
	return &CreateBrandUseCase{
		brandRepo: brandRepo,
	}
}

// Execute performs the brand creation.
func (uc *CreateBrandUseCase) Execute(ctx context.Context, input CreateBrandInput) (*CreateBrandOutput, error) {
	exists, err := uc.brandRepo.ExistsByName(ctx, input.Name)
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

	currency := input.CurrencyCode
	if currency == "" {
		currency = "USD"
	}

	brand := entity.NewBrand(input.Name, input.ContactEmail, input.ContactName, currency, input.DefaultHourlyRate)
	if err := uc.brandRepo.Create(ctx, brand); err != nil {
		return nil, fmt.Errorf("failed to create brand: %w", err)
	}

	return &CreateBrandOutput{Brand: brand}, nil
}
