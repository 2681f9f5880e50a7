// Package project contains project-related use cases.
package project

import (
	"context"
	"fmt"

	"github.com/trackbill/backend/internal/application/adapter"
	"github.com/trackbill/backend/internal/domain/entity"
	domainerror "github.com/trackbill/backend/internal/domain/error"
)

// ListProjectsInput represents the input for listing projects. The caller's
// role decides the scope: admins see everything, workers their assignments,
// clients their brand.
type ListProjectsInput struct {
	Caller *entity.User
	Filter adapter.ProjectFilter
}

// ListProjectsOutput represents the output of listing projects.
type ListProjectsOutput struct {
	Projects []*entity.Project
}

// ListProjectsUseCase handles listing projects.
type ListProjectsUseCase struct {
	projectRepo adapter.ProjectRepository
}

// NewListProjectsUseCase creates a new ListProjectsUseCase instance.
func NewListProjectsUseCase(projectRepo adapter.ProjectRepository) *ListProjectsUseCase {
	return &ListProjectsUseCase{
		projectRepo: projectRepo,
	}
}

// Execute retrieves projects scoped to the caller's role.
func (uc *ListProjectsUseCase) Execute(ctx context.Context, input ListProjectsInput) (*ListProjectsOutput, error) {
	filter := input.Filter

	switch input.Caller.Role {
	case entity.UserRoleWorker:
		workerID := input.Caller.ID
		filter.WorkerID = &workerID
	case entity.UserRoleClient:
		if input.Caller.BrandID == nil {
			return nil, domainerror.NewAuthError(
				domainerror.ErrCodeForbidden,
				"client user is not linked to a brand",
				domainerror.ErrForbidden,
			)
		}
		filter.BrandID = input.Caller.BrandID
	}

	projects, err := uc.projectRepo.FindByFilter(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	return &ListProjectsOutput{Projects: projects}, nil
}
