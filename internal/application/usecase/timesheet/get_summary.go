// Package timesheet contains time-entry-related use cases.
package timesheet

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/trackbill/backend/internal/application/adapter"
	"github.com/trackbill/backend/internal/domain/billing"
	"github.com/trackbill/backend/internal/domain/entity"
)

// GetSummaryInput represents the input for summarizing a selection of
// entries. Selection state lives with the caller; only the chosen IDs are
// sent here.
type GetSummaryInput struct {
	Caller   *entity.User
	EntryIDs []uuid.UUID
}

// GetSummaryOutput represents the output of the selection summary.
type GetSummaryOutput struct {
	Summary billing.Summary
}

// GetSummaryUseCase summarizes an arbitrary selection of time entries.
type GetSummaryUseCase struct {
	entryRepo adapter.TimeEntryRepository
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(entryRepo adapter.TimeEntryRepository) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		entryRepo: entryRepo,
	}
}

// Execute computes aggregate figures over the selected entries. Workers only
// see their own entries; foreign IDs are silently dropped from the selection
// rather than erroring, since stale selections are routine in the UI.
func (uc *GetSummaryUseCase) Execute(ctx context.Context, input GetSummaryInput) (*GetSummaryOutput, error) {
	if len(input.EntryIDs) == 0 {
		return &GetSummaryOutput{Summary: billing.ComputeSummary(nil)}, nil
	}

	entries, err := uc.entryRepo.FindByIDs(ctx, input.EntryIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch selected entries: %w", err)
	}

	if input.Caller.Role == entity.UserRoleWorker {
		own := make([]*entity.TimeEntry, 0, len(entries))
		for _, entry := range entries {
			if entry.UserID == input.Caller.ID {
				own = append(own, entry)
			}
		}
		entries = own
	}

	return &GetSummaryOutput{Summary: billing.ComputeSummary(entries)}, nil
}
