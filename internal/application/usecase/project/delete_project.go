// Package project contains project-related use cases.
package project

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/trackbill/backend/internal/application/adapter"
	domainerror "github.com/trackbill/backend/internal/domain/error"
)

// DeleteProjectInput represents the input for project deletion.
type DeleteProjectInput struct {
	ProjectID uuid.UUID
}

// DeleteProjectUseCase handles project deletion logic.
type DeleteProjectUseCase struct {
	projectRepo adapter.ProjectRepository
}

// NewDeleteProjectUseCase creates a new DeleteProjectUseCase instance.
func NewDeleteProjectUseCase(projectRepo adapter.ProjectRepository) *DeleteProjectUseCase {
	return &DeleteProjectUseCase{
		projectRepo: projectRepo,
	}
}

// Execute performs the project deletion.
func (uc *DeleteProjectUseCase) Execute(ctx context.Context, input DeleteProjectInput) error {
	if _, err := uc.projectRepo.FindByID(ctx, input.ProjectID); err != nil {
		return domainerror.NewWorkspaceError(
			domainerror.ErrCodeProjectNotFound,
			"project not found",
			domainerror.ErrProjectNotFound,
		)
	}

	if err := uc.projectRepo.Delete(ctx, input.ProjectID); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}
