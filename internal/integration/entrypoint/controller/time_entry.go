// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/trackbill/backend/internal/application/adapter"
	"github.com/trackbill/backend/internal/application/usecase/timesheet"
	"github.com/trackbill/backend/internal/domain/billing"
	domainerror "github.com/trackbill/backend/internal/domain/error"
	"github.com/trackbill/backend/internal/integration/entrypoint/dto"
)

// TimeEntryController handles time entry and timesheet aggregation endpoints.
type TimeEntryController struct {
	createUseCase     *timesheet.CreateEntryUseCase
	updateUseCase     *timesheet.UpdateEntryUseCase
	deleteUseCase     *timesheet.DeleteEntryUseCase
	listUseCase       *timesheet.ListEntriesUseCase
	groupUseCase      *timesheet.GroupEntriesUseCase
	getSummaryUseCase *timesheet.GetSummaryUseCase
	userRepo          adapter.UserRepository
}

// NewTimeEntryController creates a new time entry controller instance.
func NewTimeEntryController(
	createUseCase *timesheet.CreateEntryUseCase,
	updateUseCase *timesheet.UpdateEntryUseCase,
	deleteUseCase *timesheet.DeleteEntryUseCase,
	listUseCase *timesheet.ListEntriesUseCase,
	groupUseCase *timesheet.GroupEntriesUseCase,
	getSummaryUseCase *timesheet.GetSummaryUseCase,
	userRepo adapter.UserRepository,
) *TimeEntryController {
	return &TimeEntryController{
		createUseCase:     createUseCase,
		updateUseCase:     updateUseCase,
		deleteUseCase:     deleteUseCase,
		listUseCase:       listUseCase,
		groupUseCase:      groupUseCase,
		getSummaryUseCase: getSummaryUseCase,
		userRepo:          userRepo,
	}
}

// List handles GET /time-entries requests.
func (c *TimeEntryController) List(ctx *gin.Context) {
	caller, ok := resolveCaller(ctx, c.userRepo)
	if !ok {
		return
	}

	input := timesheet.ListEntriesInput{
		Caller: caller,
		Filter: parseTimeEntryFilter(ctx),
	}

	if pageStr := ctx.Query("page"); pageStr != "" {
		if page, err := strconv.Atoi(pageStr); err == nil {
			input.Page = page
		}
	}
	if limitStr := ctx.Query("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil {
			input.Limit = limit
		}
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve time entries",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTimeEntryListResponse(
		output.Entries, output.Total, output.Page, output.Limit, output.TotalPages,
	))
}

// Groups handles GET /time-entries/groups requests. The by query parameter
// selects the dimension: project, task or user.
func (c *TimeEntryController) Groups(ctx *gin.Context) {
	caller, ok := resolveCaller(ctx, c.userRepo)
	if !ok {
		return
	}

	dimension := billing.GroupDimension(ctx.DefaultQuery("by", string(billing.GroupByProject)))

	input := timesheet.GroupEntriesInput{
		Caller:    caller,
		Filter:    parseTimeEntryFilter(ctx),
		Dimension: dimension,
	}

	output, err := c.groupUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTimeEntryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGroupedTimeEntriesResponse(dimension, output.Groups))
}

// Summary handles POST /time-entries/summary requests. It aggregates the
// entries the caller has selected client-side.
func (c *TimeEntryController) Summary(ctx *gin.Context) {
	caller, ok := resolveCaller(ctx, c.userRepo)
	if !ok {
		return
	}

	var req dto.SummarizeTimeEntriesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	entryIDs := make([]uuid.UUID, 0, len(req.EntryIDs))
	for _, idStr := range req.EntryIDs {
		id, err := uuid.Parse(idStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid entry ID format: " + idStr,
			})
			return
		}
		entryIDs = append(entryIDs, id)
	}

	input := timesheet.GetSummaryInput{
		Caller:   caller,
		EntryIDs: entryIDs,
	}

	output, err := c.getSummaryUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTimeEntryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTimeEntrySummaryResponse(output.Summary))
}

// Create handles POST /time-entries requests.
func (c *TimeEntryController) Create(ctx *gin.Context) {
	caller, ok := resolveCaller(ctx, c.userRepo)
	if !ok {
		return
	}

	var req dto.CreateTimeEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingEntryFields),
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

	taskID, err := uuid.Parse(req.TaskID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid task ID format",
		})
		return
	}

	workDate, err := time.Parse("2006-01-02", req.WorkDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid work date format. Use YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidWorkDate),
		})
		return
	}

	input := timesheet.CreateEntryInput{
		Caller:          caller,
		ProjectID:       projectID,
		TaskID:          taskID,
		WorkDate:        workDate,
		DurationMinutes: req.DurationMinutes,
		Notes:           req.Notes,
	}

	if req.HourlyRate != nil && *req.HourlyRate != "" {
		rate, err := decimal.NewFromString(*req.HourlyRate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid hourly rate format",
			})
			return
		}
		input.HourlyRate = &rate
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTimeEntryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTimeEntryResponse(output.Entry))
}

// Update handles PATCH /time-entries/:id requests.
func (c *TimeEntryController) Update(ctx *gin.Context) {
	caller, ok := resolveCaller(ctx, c.userRepo)
	if !ok {
		return
	}

	entryID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid entry ID format",
		})
		return
	}

	var req dto.UpdateTimeEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := timesheet.UpdateEntryInput{
		Caller:          caller,
		EntryID:         entryID,
		DurationMinutes: req.DurationMinutes,
		Notes:           req.Notes,
		ClearRate:       req.ClearRate,
	}

	if req.WorkDate != nil {
		workDate, err := time.Parse("2006-01-02", *req.WorkDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid work date format. Use YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeInvalidWorkDate),
			})
			return
		}
		input.WorkDate = &workDate
	}

	if req.HourlyRate != nil && *req.HourlyRate != "" {
		rate, err := decimal.NewFromString(*req.HourlyRate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid hourly rate format",
			})
			return
		}
		input.HourlyRate = &rate
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTimeEntryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTimeEntryResponse(output.Entry))
}

// Delete handles DELETE /time-entries/:id requests.
func (c *TimeEntryController) Delete(ctx *gin.Context) {
	caller, ok := resolveCaller(ctx, c.userRepo)
	if !ok {
		return
	}

	entryID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid entry ID format",
		})
		return
	}

	input := timesheet.DeleteEntryInput{
		Caller:  caller,
		EntryID: entryID,
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleTimeEntryError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// parseTimeEntryFilter reads the shared filter query parameters.
func parseTimeEntryFilter(ctx *gin.Context) adapter.TimeEntryFilter {
	var filter adapter.TimeEntryFilter

	if userIDStr := ctx.Query("userId"); userIDStr != "" {
		if userID, err := uuid.Parse(userIDStr); err == nil {
			filter.UserID = &userID
		}
	}
	if projectIDStr := ctx.Query("projectId"); projectIDStr != "" {
		if projectID, err := uuid.Parse(projectIDStr); err == nil {
			filter.ProjectID = &projectID
		}
	}
	if taskIDStr := ctx.Query("taskId"); taskIDStr != "" {
		if taskID, err := uuid.Parse(taskIDStr); err == nil {
			filter.TaskID = &taskID
		}
	}
	if startDateStr := ctx.Query("startDate"); startDateStr != "" {
		if startDate, err := time.Parse("2006-01-02", startDateStr); err == nil {
			filter.StartDate = &startDate
		}
	}
	if endDateStr := ctx.Query("endDate"); endDateStr != "" {
		if endDate, err := time.Parse("2006-01-02", endDateStr); err == nil {
			filter.EndDate = &endDate
		}
	}

	return filter
}

// handleTimeEntryError handles time entry errors and returns appropriate HTTP responses.
func (c *TimeEntryController) handleTimeEntryError(ctx *gin.Context, err error) {
	var entryErr *domainerror.TimeEntryError
	if errors.As(err, &entryErr) {
		statusCode := c.getStatusCodeForTimeEntryError(entryErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: entryErr.Message,
			Code:  string(entryErr.Code),
		})
		return
	}

	var wsErr *domainerror.WorkspaceError
	if errors.As(err, &wsErr) {
		ctx.JSON(getStatusCodeForWorkspaceError(wsErr.Code), dto.ErrorResponse{
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

// getStatusCodeForTimeEntryError maps time entry error codes to HTTP status codes.
func (c *TimeEntryController) getStatusCodeForTimeEntryError(code domainerror.TimeEntryErrorCode) int {
	switch code {
	case domainerror.ErrCodeTimeEntryNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNotAuthorizedEntry,
		domainerror.ErrCodeWorkerNotAssigned:
		return http.StatusForbidden
	case domainerror.ErrCodeInvalidDuration,
		domainerror.ErrCodeInvalidWorkDate,
		domainerror.ErrCodeInvalidGroupDimension,
		domainerror.ErrCodeTaskNotInProject,
		domainerror.ErrCodeMissingEntryFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
