// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/trackbill/backend/internal/application/usecase/task"
	"github.com/trackbill/backend/internal/domain/entity"
	domainerror "github.com/trackbill/backend/internal/domain/error"
	"github.com/trackbill/backend/internal/integration/entrypoint/dto"
)

// TaskController handles task endpoints.
type TaskController struct {
	createUseCase *task.CreateTaskUseCase
	updateUseCase *task.UpdateTaskUseCase
	deleteUseCase *task.DeleteTaskUseCase
	listUseCase   *task.ListTasksUseCase
}

// NewTaskController creates a new task controller instance.
func NewTaskController(
	createUseCase *task.CreateTaskUseCase,
	updateUseCase *task.UpdateTaskUseCase,
	deleteUseCase *task.DeleteTaskUseCase,
	listUseCase *task.ListTasksUseCase,
) *TaskController {
	return &TaskController{
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
		listUseCase:   listUseCase,
	}
}

// List handles GET /projects/:id/tasks requests.
func (c *TaskController) List(ctx *gin.Context) {
	projectID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid project ID format",
		})
		return
	}

	input := task.ListTasksInput{
		ProjectID: projectID,
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTaskError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTaskListResponse(output.Tasks))
}

// Create handles POST /tasks requests.
func (c *TaskController) Create(ctx *gin.Context) {
	var req dto.CreateTaskRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	projectID, err := uuid.Parse(req.ProjectID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid project ID format",
		})
		return
	}

	input := task.CreateTaskInput{
		ProjectID:   projectID,
		Name:        req.Name,
		Description: req.Description,
	}

	if req.AssigneeID != nil && *req.AssigneeID != "" {
		assigneeID, err := uuid.Parse(*req.AssigneeID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid assignee ID format",
			})
			return
		}
		input.AssigneeID = &assigneeID
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTaskError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTaskResponse(output.Task))
}

// Update handles PATCH /tasks/:id requests.
func (c *TaskController) Update(ctx *gin.Context) {
	taskID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid task ID format",
		})
		return
	}

	var req dto.UpdateTaskRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := task.UpdateTaskInput{
		TaskID:        taskID,
		Name:          req.Name,
		Description:   req.Description,
		ClearAssignee: req.ClearAssignee,
	}

	if req.Status != nil {
		status := entity.TaskStatus(*req.Status)
		input.Status = &status
	}

	if req.AssigneeID != nil && *req.AssigneeID != "" {
		assigneeID, err := uuid.Parse(*req.AssigneeID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid assignee ID format",
			})
			return
		}
		input.AssigneeID = &assigneeID
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTaskError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTaskResponse(output.Task))
}

// Delete handles DELETE /tasks/:id requests.
func (c *TaskController) Delete(ctx *gin.Context) {
	taskID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid task ID format",
		})
		return
	}

	input := task.DeleteTaskInput{
		TaskID: taskID,
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleTaskError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleTaskError handles workspace errors and returns appropriate HTTP responses.
func (c *TaskController) handleTaskError(ctx *gin.Context, err error) {
	var wsErr *domainerror.WorkspaceError
	if errors.As(err, &wsErr) {
		statusCode := getStatusCodeForWorkspaceError(wsErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: wsErr.Message,
			Code:  string(wsErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
