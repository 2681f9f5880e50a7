// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/trackbill/backend/internal/application/adapter"
	"github.com/trackbill/backend/internal/domain/entity"
	domainerror "github.com/trackbill/backend/internal/domain/error"
)

// RegisterUserInput represents the input for user registration.
type RegisterUserInput struct {
	Email    string
	Name     string
	Password string
	Role     entity.UserRole
	// BrandID is required for client users, ignored otherwise.
	BrandID *uuid.UUID
	// HourlyRate is the default billing rate for worker users.
	HourlyRate *decimal.Decimal
}

// RegisterUserOutput represents the output of user registration.
type RegisterUserOutput struct {
	User         *entity.User
	AccessToken  string
	RefreshToken string
}

// RegisterUserUseCase handles user registration logic.
type RegisterUserUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
	tokenService    adapter.TokenService
}

// NewRegisterUserUseCase creates a new RegisterUserUseCase instance.
func NewRegisterUserUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
	tokenService adapter.TokenService,
) *RegisterUserUseCase {
	return &RegisterUserUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
	}
}

// Execute performs the user registration.
func (uc *RegisterUserUseCase) Execute(ctx context.Context, input RegisterUserInput) (*RegisterUserOutput, error) {
	if !entity.IsValidUserRole(input.Role) {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidRole,
			"role must be admin, worker or client",
			domainerror.ErrInvalidRole,
		)
	}

	if input.Role == entity.UserRoleClient && input.BrandID == nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeMissingBrand,
			"client users must belong to a brand",
			domainerror.ErrMissingBrand,
		)
	}

	if err := uc.passwordService.ValidatePasswordStrength(input.Password); err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeWeakPassword,
			err.Error(),
			domainerror.ErrWeakPassword,
		)
	}

	exists, err := uc.userRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if exists {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeEmailAlreadyExists,
			"a user with this email already exists",
			domainerror.ErrEmailAlreadyExists,
		)
	}

	// Open registration only bootstraps the first admin. Once one exists,
	// further admins come from that admin, not from the public endpoint.
	if input.Role == entity.UserRoleAdmin {
		adminExists, err := uc.userRepo.ExistsByRole(ctx, entity.UserRoleAdmin)
		if err != nil {
			return nil, fmt.Errorf("failed to check for existing admins: %w", err)
		}
		if adminExists {
			return nil, domainerror.NewAuthError(
				domainerror.ErrCodeAdminRegistrationClosed,
				"admin self-registration is closed",
				domainerror.ErrAdminRegistrationClosed,
			)
		}
	}

	passwordHash, err := uc.passwordService.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := entity.NewUser(input.Email, input.Name, passwordHash, input.Role)
	if input.Role == entity.UserRoleClient {
		user.BrandID = input.BrandID
	}
	if input.Role == entity.UserRoleWorker {
		user.HourlyRate = input.HourlyRate
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	tokenPair, err := uc.tokenService.GenerateTokenPair(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	return &RegisterUserOutput{
		User:         user,
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
	}, nil
}
