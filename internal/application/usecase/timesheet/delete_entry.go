// Package timesheet contains time-entry-related use cases.
package timesheet

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/trackbill/backend/internal/application/adapter"
	"github.com/trackbill/backend/internal/domain/entity"
	domainerror "github.com/trackbill/backend/internal/domain/error"
)

// DeleteEntryInput represents the input for time entry deletion.
type DeleteEntryInput struct {
	Caller  *entity.User
	EntryID uuid.UUID
}

// DeleteEntryUseCase handles time entry deletion logic.
type DeleteEntryUseCase struct {
	entryRepo adapter.TimeEntryRepository
}

// NewDeleteEntryUseCase creates a new DeleteEntryUseCase instance.
func NewDeleteEntryUseCase(entryRepo adapter.TimeEntryRepository) *DeleteEntryUseCase {
	return &DeleteEntryUseCase{
		entryRepo: entryRepo,
	}
}

// Execute performs the time entry deletion. Workers can only delete their
// own entries; admins can delete anyone's.
func (uc *DeleteEntryUseCase) Execute(ctx context.Context, input DeleteEntryInput) error {
	entry, err := uc.entryRepo.FindByID(ctx, input.EntryID)
	if err != nil {
		return domainerror.NewTimeEntryError(
			domainerror.ErrCodeTimeEntryNotFound,
			"time entry not found",
			domainerror.ErrTimeEntryNotFound,
		)
	}

	if input.Caller.Role != entity.UserRoleAdmin && entry.UserID != input.Caller.ID {
		return domainerror.NewTimeEntryError(
			domainerror.ErrCodeNotAuthorizedEntry,
			"not authorized to delete this time entry",
			domainerror.ErrNotAuthorizedToModifyEntry,
		)
	}

	if err := uc.entryRepo.Delete(ctx, input.EntryID); err != nil {
		return fmt.Errorf("failed to delete time entry: %w", err)
	}
	return nil
}
