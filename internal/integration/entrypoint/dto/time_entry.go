// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/trackbill/backend/internal/domain/billing"
	"github.com/trackbill/backend/internal/domain/entity"
)

// CreateTimeEntryRequest represents the request body for time entry creation.
type CreateTimeEntryRequest struct {
	ProjectID       string  `json:"project_id" binding:"required"`
	TaskID          string  `json:"task_id" binding:"required"`
	WorkDate        string  `json:"work_date" binding:"required"`
	DurationMinutes int     `json:"duration_minutes" binding:"min=0"`
	Notes           string  `json:"notes,omitempty" binding:"omitempty,max=1000"`
	HourlyRate      *string `json:"hourly_rate,omitempty"`
}

// UpdateTimeEntryRequest represents the request body for time entry update.
type UpdateTimeEntryRequest struct {
	WorkDate        *string `json:"work_date,omitempty"`
	DurationMinutes *int    `json:"duration_minutes,omitempty" binding:"omitempty,min=0"`
	Notes           *string `json:"notes,omitempty" binding:"omitempty,max=1000"`
	HourlyRate      *string `json:"hourly_rate,omitempty"`
	ClearRate       bool    `json:"clear_rate,omitempty"`
}

// SummarizeTimeEntriesRequest represents the request body for the selection summary.
type SummarizeTimeEntriesRequest struct {
	EntryIDs []string `json:"entry_ids"`
}

// TimeEntryResponse represents a single time entry in API responses.
type TimeEntryResponse struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	ProjectID       string    `json:"project_id"`
	TaskID          string    `json:"task_id"`
	WorkDate        string    `json:"work_date"`
	DurationMinutes int       `json:"duration_minutes"`
	Notes           string    `json:"notes"`
	HourlyRate      *string   `json:"hourly_rate,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// TimeEntryPaginationResponse represents pagination information in API responses.
type TimeEntryPaginationResponse struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// TimeEntryListResponse represents the response for listing time entries.
type TimeEntryListResponse struct {
	Entries    []TimeEntryResponse         `json:"entries"`
	Pagination TimeEntryPaginationResponse `json:"pagination"`
}

// AggregationGroupResponse represents one bucket in a grouped timesheet view.
type AggregationGroupResponse struct {
	Key          string              `json:"key"`
	Label        string              `json:"label"`
	TotalMinutes int                 `json:"total_minutes"`
	TotalHours   string              `json:"total_hours"`
	TotalAmount  string              `json:"total_amount"`
	Entries      []TimeEntryResponse `json:"entries"`
}

// GroupedTimeEntriesResponse represents the response for grouped time entries.
type GroupedTimeEntriesResponse struct {
	GroupBy string                     `json:"group_by"`
	Groups  []AggregationGroupResponse `json:"groups"`
}

// TimeEntrySummaryResponse represents aggregate figures over a selection of entries.
type TimeEntrySummaryResponse struct {
	TotalHours            string `json:"total_hours"`
	TotalAmount           string `json:"total_amount"`
	EntriesCount          int    `json:"entries_count"`
	DistinctUsersCount    int    `json:"distinct_users_count"`
	DistinctProjectsCount int    `json:"distinct_projects_count"`
}

// ToTimeEntryResponse converts a domain TimeEntry entity to a TimeEntryResponse DTO.
func ToTimeEntryResponse(entry *entity.TimeEntry) TimeEntryResponse {
	response := TimeEntryResponse{
		ID:              entry.ID.String(),
		UserID:          entry.UserID.String(),
		ProjectID:       entry.ProjectID.String(),
		TaskID:          entry.TaskID.String(),
		WorkDate:        entry.WorkDate.Format("2006-01-02"),
		DurationMinutes: entry.DurationMinutes,
		Notes:           entry.Notes,
		CreatedAt:       entry.CreatedAt,
		UpdatedAt:       entry.UpdatedAt,
	}

	if entry.HourlyRate != nil {
		rate := entry.HourlyRate.StringFixed(2)
		response.HourlyRate = &rate
	}

	return response
}

// ToTimeEntryListResponse converts a list result to a TimeEntryListResponse.
func ToTimeEntryListResponse(entries []*entity.TimeEntry, total int64, page, limit, totalPages int) TimeEntryListResponse {
	responses := make([]TimeEntryResponse, len(entries))
	for i, entry := range entries {
		responses[i] = ToTimeEntryResponse(entry)
	}

	return TimeEntryListResponse{
		Entries: responses,
		Pagination: TimeEntryPaginationResponse{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
		},
	}
}

// ToGroupedTimeEntriesResponse converts aggregation groups to a response DTO.
func ToGroupedTimeEntriesResponse(dimension billing.GroupDimension, groups []*billing.AggregationGroup) GroupedTimeEntriesResponse {
	groupResponses := make([]AggregationGroupResponse, len(groups))
	for i, group := range groups {
		entries := make([]TimeEntryResponse, len(group.Entries))
		for j, entry := range group.Entries {
			entries[j] = ToTimeEntryResponse(entry)
		}
		groupResponses[i] = AggregationGroupResponse{
			Key:          group.Key.String(),
			Label:        group.Label,
			TotalMinutes: group.TotalMinutes,
			TotalHours:   group.TotalHours.StringFixed(1),
			TotalAmount:  group.TotalAmount.StringFixed(2),
			Entries:      entries,
		}
	}

	return GroupedTimeEntriesResponse{
		GroupBy: string(dimension),
		Groups:  groupResponses,
	}
}

// ToTimeEntrySummaryResponse converts a billing Summary to a response DTO.
func ToTimeEntrySummaryResponse(summary billing.Summary) TimeEntrySummaryResponse {
	return TimeEntrySummaryResponse{
		TotalHours:            summary.TotalHours.StringFixed(1),
		TotalAmount:           summary.TotalAmount.StringFixed(2),
		EntriesCount:          summary.EntriesCount,
		DistinctUsersCount:    summary.DistinctUsersCount,
		DistinctProjectsCount: summary.DistinctProjectsCount,
	}
}
