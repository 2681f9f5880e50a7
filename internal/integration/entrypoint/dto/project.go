// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/trackbill/backend/internal/domain/entity"
)

// CreateProjectRequest represents the request body for project creation.
type CreateProjectRequest struct {
	BrandID     string   `json:"brand_id" binding:"required"`
	Name        string   `json:"name" binding:"required,min=1,max=100"`
	Description string   `json:"description,omitempty" binding:"omitempty,max=1000"`
	WorkerIDs   []string `json:"worker_ids,omitempty"`
}

// UpdateProjectRequest represents the request body for project update.
type UpdateProjectRequest struct {
	Name        *string  `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	Description *string  `json:"description,omitempty" binding:"omitempty,max=1000"`
	Status      *string  `json:"status,omitempty" binding:"omitempty,oneof=active archived"`
	WorkerIDs   []string `json:"worker_ids,omitempty"`
	// SetWorkers replaces the worker assignment with WorkerIDs when true.
	SetWorkers bool `json:"set_workers,omitempty"`
}

// ProjectResponse represents a single project in API responses.
type ProjectResponse struct {
	ID          string    `json:"id"`
	BrandID     string    `json:"brand_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	WorkerIDs   []string  `json:"worker_ids"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProjectListResponse represents the response for listing projects.
type ProjectListResponse struct {
	Projects []ProjectResponse `json:"projects"`
}

// ToProjectResponse converts a domain Project entity to a ProjectResponse DTO.
func ToProjectResponse(project *entity.Project) ProjectResponse {
	workerIDs := make([]string, len(project.WorkerIDs))
	for i, id := range project.WorkerIDs {
		workerIDs[i] = id.String()
	}

	return ProjectResponse{
		ID:          project.ID.String(),
		BrandID:     project.BrandID.String(),
		Name:        project.Name,
		Description: project.Description,
		Status:      string(project.Status),
		WorkerIDs:   workerIDs,
		CreatedAt:   project.CreatedAt,
		UpdatedAt:   project.UpdatedAt,
	}
}

// ToProjectListResponse converts project entities to a ProjectListResponse.
func ToProjectListResponse(projects []*entity.Project) ProjectListResponse {
	responses := make([]ProjectResponse, len(projects))
	for i, project := range projects {
		responses[i] = ToProjectResponse(project)
	}
	return ProjectListResponse{Projects: responses}
}
