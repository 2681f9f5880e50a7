// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/trackbill/backend/internal/domain/entity"
)

// ProjectFilter defines filter options for listing projects.
type ProjectFilter struct {
	BrandID *uuid.UUID
	// WorkerID narrows the list to projects the worker is assigned to.
	WorkerID *uuid.UUID
	Status   *entity.ProjectStatus
}

// ProjectRepository defines the interface for project persistence operations.
type ProjectRepository interface {
	// Create creates a new project in the database.
	Create(ctx context.Context, project *entity.Project) error

	// FindByID retrieves a project by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Project, error)

	// FindByFilter retrieves projects matching the filter, ordered by name.
	FindByFilter(ctx context.Context, filter ProjectFilter) ([]*entity.Project, error)

	// Update updates an existing project in the database.
	Update(ctx context.Context, project *entity.Project) error

	// Delete soft-deletes a project from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}

// TaskRepository defines the interface for task persistence operations.
type TaskRepository interface {
	// Create creates a new task in the database.
	Create(ctx context.Context, task *entity.Task) error

	// FindByID retrieves a task by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Task, error)

	// FindByProject retrieves all tasks of a project ordered by creation time.
	FindByProject(ctx context.Context, projectID uuid.UUID) ([]*entity.Task, error)

	// Update updates an existing task in the database.
	Update(ctx context.Context, task *entity.Task) error

	// Delete soft-deletes a task from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
