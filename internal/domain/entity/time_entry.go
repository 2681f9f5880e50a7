// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TimeEntry represents a recorded span of work against a task.
type TimeEntry struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	ProjectID uuid.UUID
	TaskID    uuid.UUID
	WorkDate  time.Time
	// DurationMinutes is the logged duration. Never negative.
	DurationMinutes int
	Notes           string
	// HourlyRate is the billing rate in effect when the entry was logged.
	// Nil entries contribute hours but no amount to aggregations.
	HourlyRate *decimal.Decimal
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  *time.Time
}

// NewTimeEntry creates a new TimeEntry entity.
func NewTimeEntry(
	userID uuid.UUID,
	projectID uuid.UUID,
	taskID uuid.UUID,
	workDate time.Time,
	durationMinutes int,
	notes string,
	hourlyRate *decimal.Decimal,
) *TimeEntry {
	now := time.Now().UTC()
	return &TimeEntry{
		ID:              uuid.New(),
		UserID:          userID,
		ProjectID:       projectID,
		TaskID:          taskID,
		WorkDate:        workDate,
		DurationMinutes: durationMinutes,
		Notes:           notes,
		HourlyRate:      hourlyRate,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// TimeEntryListResult represents the result of listing time entries.
type TimeEntryListResult struct {
	Entries    []*TimeEntry
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}
