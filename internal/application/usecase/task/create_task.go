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

// CreateTaskInput represents the input for task creation.
type CreateTaskInput struct {
	ProjectID   uuid.UUID
	Name        string
	Description string
	AssigneeID  *uuid.UUID
}

// CreateTaskOutput represents the output of task creation.
type CreateTaskOutput struct {
	Task *entity.Task
}

// CreateTaskUseCase handles task creation logic.
type CreateTaskUseCase struct {
	taskRepo    adapter.TaskRepository
	projectRepo adapter.ProjectRepository
}

// NewCreateTaskUseCase creates a new CreateTaskUseCase instance.
func NewCreateTaskUseCase(taskRepo adapter.TaskRepository, projectRepo adapter.ProjectRepository) *CreateTaskUseCase {
	return &CreateTaskUseCase{
		taskRepo:    taskRepo,
		projectRepo: projectRepo,
	}
}

// Execute performs the task creation.
func (uc *CreateTaskUseCase) Execute(ctx context.Context, input CreateTaskInput) (*CreateTaskOutput, error) {
	project, err := uc.projectRepo.FindByID(ctx, input.ProjectID)
	if err != nil {
		return nil, domainerror.NewWorkspaceError(
			domainerror.ErrCodeProjectNotFound,
			"project not found",
			domainerror.ErrProjectNotFound,
		)
	}
	if project.Status == entity.ProjectStatusArchived {
		return nil, domainerror.NewWorkspaceError(
			domainerror.ErrCodeProjectArchived,
			"cannot add tasks to an archived project",
			domainerror.ErrProjectArchived,
		)
	}

	task := entity.NewTask(input.ProjectID, input.Name, input.Description, input.AssigneeID)
	if err := uc.taskRepo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return &CreateTaskOutput{Task: task}, nil
}
