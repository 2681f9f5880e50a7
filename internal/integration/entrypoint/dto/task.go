// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/trackbill/backend/internal/domain/entity"
)

// CreateTaskRequest represents the request body for task creation.
type CreateTaskRequest struct {
	ProjectID   string  `json:"project_id" binding:"required"`
	Name        string  `json:"name" binding:"required,min=1,max=100"`
	Description string  `json:"description,omitempty" binding:"omitempty,max=1000"`
	AssigneeID  *string `json:"assignee_id,omitempty"`
}

// UpdateTaskRequest represents the request body for task update.
type UpdateTaskRequest struct {
	Name          *string `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	Description   *string `json:"description,omitempty" binding:"omitempty,max=1000"`
	Status        *string `json:"status,omitempty" binding:"omitempty,oneof=open in_progress done"`
	AssigneeID    *string `json:"assignee_id,omitempty"`
	ClearAssignee bool    `json:"clear_assignee,omitempty"`
}

// TaskResponse represents a single task in API responses.
type TaskResponse struct {
	ID          string    `json:"id"`
	ProjectID   string    `json:"project_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	AssigneeID  *string   `json:"assignee_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TaskListResponse represents the response for listing tasks.
type TaskListResponse struct {
	Tasks []TaskResponse `json:"tasks"`
}

// ToTaskResponse converts a domain Task entity to a TaskResponse DTO.
func ToTaskResponse(task *entity.Task) TaskResponse {
	response := TaskResponse{
		ID:          task.ID.String(),
		ProjectID:   task.ProjectID.String(),
		Name:        task.Name,
		Description: task.Description,
		Status:      string(task.Status),
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}

	if task.AssigneeID != nil {
		assigneeID := task.AssigneeID.String()
		response.AssigneeID = &assigneeID
	}

	return response
}

// ToTaskListResponse converts task entities to a TaskListResponse.
func ToTaskListResponse(tasks []*entity.Task) TaskListResponse {
	responses := make([]TaskResponse, len(tasks))
	for i, task := range tasks {
		responses[i] = ToTaskResponse(task)
	}
	return TaskListResponse{Tasks: responses}
}
