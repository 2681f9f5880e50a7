// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/trackbill/backend/internal/application/adapter"
	"github.com/trackbill/backend/internal/application/usecase/project"
	"github.com/trackbill/backend/internal/domain/entity"
	domainerror "github.com/trackbill/backend/internal/domain/error"
	"github.com/trackbill/backend/internal/integration/entrypoint/dto"
)

// ProjectController handles project endpoints.
type ProjectController struct {
	createUseCase *project.CreateProjectUseCase
	updateUseCase *project.UpdateProjectUseCase
	deleteUseCase *project.DeleteProjectUseCase
	listUseCase   *project.ListProjectsUseCase
	userRepo      adapter.UserRepository
}

// NewProjectController creates a new project controller instance.
func NewProjectController(
	createUseCase *project.CreateProjectUseCase,
	updateUseCase *project.UpdateProjectUseCase,
	deleteUseCase *project.DeleteProjectUseCase,
	listUseCase *project.ListProjectsUseCase,
	userRepo adapter.UserRepository,
) *ProjectController {
	return &ProjectController{
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
		listUseCase:   listUseCase,
		userRepo:      userRepo,
	}
}

// List handles GET /projects requests. Results are scoped by the caller's
// role: workers see assigned projects, clients see their brand's projects.
func (c *ProjectController) List(ctx *gin.Context) {
	caller, ok := resolveCaller(ctx, c.userRepo)
	if !ok {
		return
	}

	input := project.ListProjectsInput{
		Caller: caller,
	}

	if brandIDStr := ctx.Query("brandId"); brandIDStr != "" {
		if brandID, err := uuid.Parse(brandIDStr); err == nil {
			input.Filter.BrandID = &brandID
		}
	}
	if statusStr := ctx.Query("status"); statusStr != "" {
		status := entity.ProjectStatus(statusStr)
		input.Filter.Status = &status
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve projects",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProjectListResponse(output.Projects))
}

// Create handles POST /projects requests.
func (c *ProjectController) Create(ctx *gin.Context) {
	var req dto.CreateProjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingProjectFields),
		})
		return
	}

	brandID, err := uuid.Parse(req.BrandID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid brand ID format",
		})
		return
	}

	workerIDs, err := parseWorkerIDs(req.WorkerIDs)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: err.Error(),
		})
		return
	}

	input := project.CreateProjectInput{
		BrandID:     brandID,
		Name:        req.Name,
		Description: req.Description,
		WorkerIDs:   workerIDs,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleProjectError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToProjectResponse(output.Project))
}

// Update handles PATCH /projects/:id requests.
func (c *ProjectController) Update(ctx *gin.Context) {
	projectID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid project ID format",
		})
		return
	}

	var req dto.UpdateProjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := project.UpdateProjectInput{
		ProjectID:   projectID,
		Name:        req.Name,
		Description: req.Description,
		SetWorkers:  req.SetWorkers,
	}

	if req.Status != nil {
		status := entity.ProjectStatus(*req.Status)
		input.Status = &status
	}

	if req.SetWorkers {
		workerIDs, err := parseWorkerIDs(req.WorkerIDs)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: err.Error(),
			})
			return
		}
		input.WorkerIDs = workerIDs
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleProjectError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProjectResponse(output.Project))
}

// Delete handles DELETE /projects/:id requests.
func (c *ProjectController) Delete(ctx *gin.Context) {
	projectID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid project ID format",
		})
		return
	}

	input := project.DeleteProjectInput{
		ProjectID: projectID,
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleProjectError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// parseWorkerIDs parses and validates a list of worker UUID strings.
func parseWorkerIDs(raw []string) ([]uuid.UUID, error) {
	workerIDs := make([]uuid.UUID, 0, len(raw))
	for _, idStr := range raw {
		id, err := uuid.Parse(idStr)
		if err != nil {
			return nil, errors.New("Invalid worker ID format: " + idStr)
		}
		workerIDs = append(workerIDs, id)
	}
	return workerIDs, nil
}

// handleProjectError handles workspace errors and returns appropriate HTTP responses.
func (c *ProjectController) handleProjectError(ctx *gin.Context, err error) {
	var wsErr *domainerror.WorkspaceError
	if errors.As(err, &wsErr) {
		statusCode := getStatusCodeForWorkspaceError(wsErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: wsErr.Message,
			Code:  string(wsErr.Code),
		})
		return
	}

	var authErr *domainerror.AuthError
	if errors.As(err, &authErr) && authErr.Code == domainerror.ErrCodeForbidden {
		ctx.JSON(http.StatusForbidden, dto.ErrorResponse{
			Error: authErr.Message,
			Code:  string(authErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
