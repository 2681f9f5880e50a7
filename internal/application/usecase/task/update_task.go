// Package task contains task-related use cases.
package task

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/trackbill/backend/internal/application/adapter"
	"github.com/trackbill/backend/internal/domain/entity"
	domainerror "github.com/trackbill/backend/internal/domain/error"
)

// UpdateTaskInput represents the input for task update. Nil fields are left
// unchanged.
type UpdateTaskInput struct {
	TaskID        uuid.UUID
	Name          *string
	Description   *string
	Status        *entity.TaskStatus
	AssigneeID    *uuid.UUID
	ClearAssignee bool
}

// UpdateTaskOutput represents the output of task update.
type UpdateTaskOutput struct {
	Task *entity.Task
}

// UpdateTaskUseCase handles task update logic.
type UpdateTaskUseCase struct {
	taskRepo adapter.TaskRepository
}

// NewUpdateTaskUseCase creates a new UpdateTaskUseCase instance.
func NewUpdateTaskUseCase(taskRepo adapter.TaskRepository) *UpdateTaskUseCase {
	return &UpdateTaskUseCase{
		taskRepo: taskRepo,
	}
}

// Execute performs the task update.
func (uc *UpdateTaskUseCase) Execute(ctx context.Context, input UpdateTaskInput) (*UpdateTaskOutput, error) {
	task, err := uc.taskRepo.FindByID(ctx, input.TaskID)
	if err != nil {
		return nil, domainerror.NewWorkspaceError(
			domainerror.ErrCodeTaskNotFound,
			"task not found",
			domainerror.ErrTaskNotFound,
		)
	}

	if input.Status != nil {
		if !entity.IsValidTaskStatus(*input.Status) {
			return nil, domainerror.NewWorkspaceError(
				domainerror.ErrCodeInvalidTaskStatus,
				"task status must be open, in_progress or done",
				domainerror.ErrInvalidTaskStatus,
			)
		}
		task.Status = *input.Status
	}
	if input.Name != nil {
		task.Name = *input.Name
	}
	if input.Description != nil {
		task.Description = *input.Description
	}
	if input.ClearAssignee {
		task.AssigneeID = nil
	} else if input.AssigneeID != nil {
		task.AssigneeID = input.AssigneeID
	}
	task.UpdatedAt = time.Now().UTC()

	if err := uc.taskRepo.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return &UpdateTaskOutput{Task: task}, nil
}
