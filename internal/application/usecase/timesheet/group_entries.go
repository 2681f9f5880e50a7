// Package timesheet contains time-entry-related use cases.
package timesheet

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/trackbill/backend/internal/application/adapter"
	"github.com/trackbill/backend/internal/domain/billing"
	"github.com/trackbill/backend/internal/domain/entity"
	domainerror "github.com/trackbill/backend/internal/domain/error"
)

// GroupEntriesInput represents the input for grouping time entries.
type GroupEntriesInput struct {
	Caller    *entity.User
	Filter    adapter.TimeEntryFilter
	Dimension billing.GroupDimension
}

// GroupEntriesOutput represents the output of grouping time entries.
type GroupEntriesOutput struct {
	Groups []*billing.AggregationGroup
}

// GroupEntriesUseCase buckets time entries by project, task or user.
type GroupEntriesUseCase struct {
	entryRepo   adapter.TimeEntryRepository
	projectRepo adapter.ProjectRepository
	taskRepo    adapter.TaskRepository
	userRepo    adapter.UserRepository
}

// NewGroupEntriesUseCase creates a new GroupEntriesUseCase instance.
func NewGroupEntriesUseCase(
	entryRepo adapter.TimeEntryRepository,
	projectRepo adapter.ProjectRepository,
	taskRepo adapter.TaskRepository,
	userRepo adapter.UserRepository,
) *GroupEntriesUseCase {
	return &GroupEntriesUseCase{
		entryRepo:   entryRepo,
		projectRepo: projectRepo,
		taskRepo:    taskRepo,
		userRepo:    userRepo,
	}
}

// Execute fetches matching entries and aggregates them with the billing
// engine. Workers are always scoped to their own entries.
func (uc *GroupEntriesUseCase) Execute(ctx context.Context, input GroupEntriesInput) (*GroupEntriesOutput, error) {
	if !billing.IsValidGroupDimension(input.Dimension) {
		return nil, domainerror.NewTimeEntryError(
			domainerror.ErrCodeInvalidGroupDimension,
			"grouping dimension must be project, task or user",
			domainerror.ErrInvalidGroupDimension,
		)
	}

	filter := input.Filter
	if input.Caller.Role == entity.UserRoleWorker {
		ownID := input.Caller.ID
		filter.UserID = &ownID
	}

	entries, err := uc.entryRepo.FindAllByFilter(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch time entries: %w", err)
	}

	groups := billing.GroupEntries(entries, input.Dimension, uc.labelResolver(ctx, input.Dimension))
	return &GroupEntriesOutput{Groups: groups}, nil
}

// labelResolver returns a LabelFunc that looks display names up lazily and
// memoizes them. A key that cannot be resolved keeps its uuid string form.
func (uc *GroupEntriesUseCase) labelResolver(ctx context.Context, dim billing.GroupDimension) billing.LabelFunc {
	cache := make(map[uuid.UUID]string)

	return func(key uuid.UUID) string {
		if label, ok := cache[key]; ok {
			return label
		}

		label := key.String()
		switch dim {
		case billing.GroupByProject:
			if project, err := uc.projectRepo.FindByID(ctx, key); err == nil {
				label = project.Name
			}
		case billing.GroupByTask:
			if task, err := uc.taskRepo.FindByID(ctx, key); err == nil {
				label = task.Name
			}
		case billing.GroupByUser:
			if user, err := uc.userRepo.FindByID(ctx, key); err == nil {
				label = user.Name
			}
		}

		cache[key] = label
		return label
	}
}
