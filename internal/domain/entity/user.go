// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UserRole represents the permission level of a user.
type UserRole string

const (
	// UserRoleAdmin can manage users, brands, projects, tasks and invoices.
	UserRoleAdmin UserRole = "admin"
	// UserRoleWorker can log time against assigned projects.
	UserRoleWorker UserRole = "worker"
	// UserRoleClient can view its brand's projects, timesheets and invoices.
	UserRoleClient UserRole = "client"
)

// User represents a user in the Trackbill system.
type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	Role         UserRole
	// BrandID links client users to their brand. Nil for admins and workers.
	BrandID *uuid.UUID
	// HourlyRate is the default billing rate for workers. Nil when not billable.
	HourlyRate *decimal.Decimal
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewUser creates a new User with default values.
func NewUser(email, name, passwordHash string, role UserRole) *User {
	now := time.Now().UTC()
	return &User{
		ID:           uuid.New(),
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
		Role:         role,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// IsValidUserRole reports whether the given role is one of the known roles.
func IsValidUserRole(role UserRole) bool {
	return role == UserRoleAdmin || role == UserRoleWorker || role == UserRoleClient
}
