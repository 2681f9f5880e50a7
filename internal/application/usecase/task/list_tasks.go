// Package task contains task-related use cases.
package task

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/trackbill/backend/internal/application/adapter"
	"github.com/trackbill/backend/internal/domain/entity"
	domainerror "github.com/trackbill/backend/internal/domain/error"
)

// ListTasksInput represents the input for listing a project's tasks.
type ListTasksInput struct {
	ProjectID uuid.UUID
}

// ListTasksOutput represents the output of listing tasks.
type ListTasksOutput struct {
	Tasks []*entity.Task
}

// ListTasksUseCase handles listing tasks by project.
type ListTasksUseCase struct {
	taskRepo    adapter.TaskRepository
	projectRepo adapter.ProjectRepository
}

// NewListTasksUseCase creates a new ListTasksUseCase instance.
func NewListTasksUseCase(taskRepo adapter.TaskRepository, projectRepo adapter.ProjectRepository) *ListTasksUseCase {
	return &ListTasksUseCase{
		taskRepo:    taskRepo,
		projectRepo: projectRepo,
	}
}

// Execute retrieves all tasks of a project.
func (uc *ListTasksUseCase) Execute(ctx context.Context, input ListTasksInput) (*ListTasksOutput, error) {
	if _, err := uc.projectRepo.FindByID(ctx, input.ProjectID); err != nil {
		return nil, domainerror.NewWorkspaceError(
			domainerror.ErrCodeProjectNotFound,
			"project not found",
			domainerror.ErrProjectNotFound,
		)
	}

	tasks, err := uc.taskRepo.FindByProject(ctx, input.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	return &ListTasksOutput{Tasks: tasks}, nil
}
