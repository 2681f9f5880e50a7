// Package timesheet contains time-entry-related use cases.
package timesheet

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/trackbill/backend/internal/application/adapter"
	"github.com/trackbill/backend/internal/domain/entity"
	domainerror "github.com/trackbill/backend/internal/domain/error"
)

// CreateEntryInput represents the input for time entry creation.
type CreateEntryInput struct {
	Caller          *entity.User
	ProjectID       uuid.UUID
	TaskID          uuid.UUID
	WorkDate        time.Time
	DurationMinutes int
	Notes           string
	// HourlyRate overrides the resolved rate when set.
	HourlyRate *decimal.Decimal
}

// CreateEntryOutput represents the output of time entry creation.
type CreateEntryOutput struct {
	Entry *entity.TimeEntry
}

// CreateEntryUseCase handles time entry creation logic.
type CreateEntryUseCase struct {
	entryRepo   adapter.TimeEntryRepository
	projectRepo adapter.ProjectRepository
	taskRepo    adapter.TaskRepository
	brandRepo   adapter.BrandRepository
}

// NewCreateEntryUseCase creates a new CreateEntryUseCase instance.
func NewCreateEntryUseCase(
	entryRepo adapter.TimeEntryRepository,
	projectRepo adapter.ProjectRepository,
	taskRepo adapter.TaskRepository,
	brandRepo adapter.BrandRepository,
) *CreateEntryUseCase {
	return &CreateEntryUseCase{
		entryRepo:   entryRepo,
		projectRepo: projectRepo,
		taskRepo:    taskRepo,
		brandRepo:   brandRepo,
	}
}

// Execute performs the time entry creation. The billing rate in effect is
// snapshotted onto the entry: explicit input rate, then the worker's own
// rate, then the brand default. Entries may end up with no rate at all;
// aggregation treats those as hours without an amount.
func (uc *CreateEntryUseCase) Execute(ctx context.Context, input CreateEntryInput) (*CreateEntryOutput, error) {
	if input.DurationMinutes < 0 {
		return nil, domainerror.NewTimeEntryError(
			domainerror.ErrCodeInvalidDuration,
			"duration must not be negative",
			domainerror.ErrInvalidDuration,
		)
	}
	if input.WorkDate.IsZero() {
		return nil, domainerror.NewTimeEntryError(
			domainerror.ErrCodeInvalidWorkDate,
			"work date is required",
			domainerror.ErrInvalidWorkDate,
		)
	}

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
			"cannot log time against an archived project",
			domainerror.ErrProjectArchived,
		)
	}
	if input.Caller.Role == entity.UserRoleWorker && !project.HasWorker(input.Caller.ID) {
		return nil, domainerror.NewTimeEntryError(
			domainerror.ErrCodeWorkerNotAssigned,
			"worker is not assigned to this project",
			domainerror.ErrWorkerNotAssigned,
		)
	}

	task, err := uc.taskRepo.FindByID(ctx, input.TaskID)
	if err != nil {
		return nil, domainerror.NewWorkspaceError(
			domainerror.ErrCodeTaskNotFound,
			"task not found",
			domainerror.ErrTaskNotFound,
		)
	}
	if task.ProjectID != input.ProjectID {
		return nil, domainerror.NewTimeEntryError(
			domainerror.ErrCodeTaskNotInProject,
			"task does not belong to the given project",
			domainerror.ErrTaskNotInProject,
		)
	}

	rate, err := uc.resolveRate(ctx, input, project)
	if err != nil {
		return nil, err
	}

	entry := entity.NewTimeEntry(
		input.Caller.ID,
		input.ProjectID,
		input.TaskID,
		input.WorkDate,
		input.DurationMinutes,
		input.Notes,
		rate,
	)

	if err := uc.entryRepo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to create time entry: %w", err)
	}

	return &CreateEntryOutput{Entry: entry}, nil
}

func (uc *CreateEntryUseCase) resolveRate(ctx context.Context, input CreateEntryInput, project *entity.Project) (*decimal.Decimal, error) {
	if input.HourlyRate != nil {
		return input.HourlyRate, nil
	}
	if input.Caller.HourlyRate != nil {
		return input.Caller.HourlyRate, nil
	}

	brand, err := uc.brandRepo.FindByID(ctx, project.BrandID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve brand rate: %w", err)
	}
	return brand.DefaultHourlyRate, nil
}
