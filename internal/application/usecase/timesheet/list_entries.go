// Package timesheet contains time-entry-related use cases.
package timesheet

import (
	"context"
	"fmt"

	"github.com/trackbill/backend/internal/application/adapter"
	"github.com/trackbill/backend/internal/domain/entity"
)

const (
	defaultPage  = 1
	defaultLimit = 50
	maxLimit     = 200
)

// ListEntriesInput represents the input for listing time entries.
type ListEntriesInput struct {
	Caller *entity.User
	Filter adapter.TimeEntryFilter
	Page   int
	Limit  int
}

// ListEntriesOutput represents the output of listing time entries.
type ListEntriesOutput struct {
	Entries    []*entity.TimeEntry
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// ListEntriesUseCase handles listing time entries.
type ListEntriesUseCase struct {
	entryRepo adapter.TimeEntryRepository
}

// NewListEntriesUseCase creates a new ListEntriesUseCase instance.
func NewListEntriesUseCase(entryRepo adapter.TimeEntryRepository) *ListEntriesUseCase {
	return &ListEntriesUseCase{
		entryRepo: entryRepo,
	}
}

// Execute retrieves time entries. Workers are always scoped to their own
// entries regardless of the requested filter.
func (uc *ListEntriesUseCase) Execute(ctx context.Context, input ListEntriesInput) (*ListEntriesOutput, error) {
	filter := input.Filter
	if input.Caller.Role == entity.UserRoleWorker {
		ownID := input.Caller.ID
		filter.UserID = &ownID
	}

	page := input.Page
	if page < 1 {
		page = defaultPage
	}
	limit := input.Limit
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	result, err := uc.entryRepo.FindByFilter(ctx, filter, adapter.TimeEntryPagination{Page: page, Limit: limit})
	if err != nil {
		return nil, fmt.Errorf("failed to list time entries: %w", err)
	}

	return &ListEntriesOutput{
		Entries:    result.Entries,
		Total:      result.Total,
		Page:       result.Page,
		Limit:      result.Limit,
		TotalPages: result.TotalPages,
	}, nil
}
