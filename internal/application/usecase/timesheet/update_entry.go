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

// UpdateEntryInput represents the input for time entry update. Nil fields are
// left unchanged.
type UpdateEntryInput struct {
	Caller          *entity.User
	EntryID         uuid.UUID
	WorkDate        *time.Time
	DurationMinutes *int
	Notes           *string
	HourlyRate      *decimal.Decimal
	ClearRate       bool
}

// UpdateEntryOutput represents the output of time entry update.
type UpdateEntryOutput struct {
	Entry *entity.TimeEntry
}

// UpdateEntryUseCase handles time entry update logic.
type UpdateEntryUseCase struct {
	entryRepo adapter.TimeEntryRepository
}

// NewUpdateEntryUseCase creates a new UpdateEntryUseCase instance.
func NewUpdateEntryUseCase(entryRepo adapter.TimeEntryRepository) *UpdateEntryUseCase {
	return &UpdateEntryUseCase{
		entryRepo: entryRepo,
	}
}

// Execute performs the time entry update. Workers can only modify their own
// entries; admins can modify anyone's.
func (uc *UpdateEntryUseCase) Execute(ctx context.Context, input UpdateEntryInput) (*UpdateEntryOutput, error) {
	entry, err := uc.entryRepo.FindByID(ctx, input.EntryID)
	if err != nil {
		return nil, domainerror.NewTimeEntryError(
			domainerror.ErrCodeTimeEntryNotFound,
			"time entry not found",
			domainerror.ErrTimeEntryNotFound,
		)
	}

	if input.Caller.Role != entity.UserRoleAdmin && entry.UserID != input.Caller.ID {
		return nil, domainerror.NewTimeEntryError(
			domainerror.ErrCodeNotAuthorizedEntry,
			"not authorized to modify this time entry",
			domainerror.ErrNotAuthorizedToModifyEntry,
		)
	}

	if input.DurationMinutes != nil {
		if *input.DurationMinutes < 0 {
			return nil, domainerror.NewTimeEntryError(
				domainerror.ErrCodeInvalidDuration,
				"duration must not be negative",
				domainerror.ErrInvalidDuration,
			)
		}
		entry.DurationMinutes = *input.DurationMinutes
	}
	if input.WorkDate != nil {
		entry.WorkDate = *input.WorkDate
	}
	if input.Notes != nil {
		entry.Notes = *input.Notes
	}
	if input.ClearRate {
		entry.HourlyRate = nil
	} else if input.HourlyRate != nil {
		entry.HourlyRate = input.HourlyRate
	}
	entry.UpdatedAt = time.Now().UTC()

	if err := uc.entryRepo.Update(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to update time entry: %w", err)
	}

	return &UpdateEntryOutput{Entry: entry}, nil
}
