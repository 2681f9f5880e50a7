// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/trackbill/backend/internal/domain/entity"
)

// TimeEntryFilter defines filter options for listing time entries.
type TimeEntryFilter struct {
	UserID    *uuid.UUID
	ProjectID *uuid.UUID
	TaskID    *uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
}

// TimeEntryPagination defines pagination options.
type TimeEntryPagination struct {
	Page  int
	Limit int
}

// TimeEntryRepository defines the interface for time entry persistence operations.
type TimeEntryRepository interface {
	// Create creates a new time entry in the database.
	Create(ctx context.Context, entry *entity.TimeEntry) error

	// FindByID retrieves a time entry by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.TimeEntry, error)

	// FindByFilter retrieves time entries matching the filter with pagination,
	// ordered by work date descending.
	FindByFilter(ctx context.Context, filter TimeEntryFilter, pagination TimeEntryPagination) (*entity.TimeEntryListResult, error)

	// FindAllByFilter retrieves every entry matching the filter, without
	// pagination, for aggregation.
	FindAllByFilter(ctx context.Context, filter TimeEntryFilter) ([]*entity.TimeEntry, error)

	// FindByIDs retrieves the entries with the given IDs.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.TimeEntry, error)

	// Update updates an existing time entry in the database.
	Update(ctx context.Context, entry *entity.TimeEntry) error

	// Delete soft-deletes a time entry from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
