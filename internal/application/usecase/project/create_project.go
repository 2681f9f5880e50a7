// Package project contains project-related use cases.
package project

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/trackbill/backend/internal/application/adapter"
	"github.com/trackbill/backend/internal/domain/entity"
	domainerror "github.com/trackbill/backend/internal/domain/error"
)

// CreateProjectInput represents the input for project creation.
type CreateProjectInput struct {
	BrandID     uuid.UUID
	Name        string
	Description string
	WorkerIDs   []uuid.UUID
}

// CreateProjectOutput represents the output of project creation.
type CreateProjectOutput struct {
	Project *entity.Project
}

// CreateProjectUseCase handles project creation logic.
type CreateProjectUseCase struct {
	projectRepo adapter.ProjectRepository
	brandRepo   adapter.BrandRepository
}

// NewCreateProjectUseCase creates a new CreateProjectUseCase instance.
func NewCreateProjectUseCase(projectRepo adapter.ProjectRepository, brandRepo adapter.BrandRepository) *CreateProjectUseCase {
	return &CreateProjectUseCase{
		projectRepo: projectRepo,
		brandRepo:   brandRepo,
	}
}

// Execute performs the project creation.
func (uc *CreateProjectUseCase) Execute(ctx context.Context, input CreateProjectInput) (*CreateProjectOutput, error) {
	if _, err := uc.brandRepo.FindByID(ctx, input.BrandID); err != nil {
		return nil, domainerror.NewWorkspaceError(
			domainerror.ErrCodeBrandNotFound,
			"brand not found",
			domainerror.ErrBrandNotFound,
		)
	}

	project := entity.NewProject(input.BrandID, input.Name, input.Description, input.WorkerIDs)
	if err := uc.projectRepo.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return &CreateProjectOutput{Project: project}, nil
}
