// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// TaskStatus represents the workflow state of a task.
type TaskStatus string

const (
	TaskStatusOpen       TaskStatus = "open"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusDone       TaskStatus = "done"
)

// Task represents a unit of work within a project that time is logged against.
type Task struct {
	ID          uuid.UUID
	ProjectID   uuid.UUID
	Name        string
	Description string
	Status      TaskStatus
	// AssigneeID is the worker responsible for the task. Nil when unassigned.
	AssigneeID *uuid.UUID
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  *time.Time
}

// NewTask creates a new open Task entity.
func NewTask(projectID uuid.UUID, name, description string, assigneeID *uuid.UUID) *Task {
	now := time.Now().UTC()
	return &Task{
		ID:          uuid.New(),
		ProjectID:   projectID,
		Name:        name,
		Description: description,
		Status:      TaskStatusOpen,
		AssigneeID:  assigneeID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// IsValidTaskStatus reports whether the given status is one of the known states.
func IsValidTaskStatus(status TaskStatus) bool {
	return status == TaskStatusOpen || status == TaskStatusInProgress || status == TaskStatusDone
}
