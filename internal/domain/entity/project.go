// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProjectStatus represents the lifecycle state of a project.
type ProjectStatus string

const (
	ProjectStatusActive   ProjectStatus = "active"
	ProjectStatusArchived ProjectStatus = "archived"
)

// Project represents a unit of billable work under a brand.
type Project struct {
	ID          uuid.UUID
	BrandID     uuid.UUID
	Name        string
	Description string
	Status      ProjectStatus
	// WorkerIDs lists the workers assigned to this project.
	WorkerIDs []uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

// NewProject creates a new active Project entity.
func NewProject(brandID uuid.UUID, name, description string, workerIDs []uuid.UUID) *Project {
	now := time.Now().UTC()
	return &Project{
		ID:          uuid.New(),
		BrandID:     brandID,
		Name:        name,
		Description: description,
		Status:      ProjectStatusActive,
		WorkerIDs:   workerIDs,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// HasWorker reports whether the given user is assigned to the project.
func (p *Project) HasWorker(userID uuid.UUID) bool {
	for _, id := range p.WorkerIDs {
		if id == userID {
			return true
		}
	}
	return false
}
