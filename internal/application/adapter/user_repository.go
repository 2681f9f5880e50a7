// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/trackbill/backend/internal/domain/entity"
)

// UserRepository defines the interface for user persistence operations.
type UserRepository interface {
	// Create creates a new user in the database.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a user by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a user by email.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// ExistsByEmail checks whether a user with the given email exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// FindByRole retrieves all users with the given role.
	FindByRole(ctx context.Context, role entity.UserRole) ([]*entity.User, error)

	// ExistsByRole checks whether any user with the given role exists.
	ExistsByRole(ctx context.Context, role entity.UserRole) (bool, error)

	// Update updates an existing user in the database.
	Update(ctx context.Context, user *entity.User) error
}
