// Package error defines domain-specific errors for the Trackbill application.
package error

import "errors"

// Time entry domain errors.
var (
	// ErrTimeEntryNotFound is returned when a time entry is not found in the system.
	ErrTimeEntryNotFound = errors.New("time entry not found")

	// ErrNotAuthorizedToModifyEntry is returned when a user modifies someone else's entry.
	ErrNotAuthorizedToModifyEntry = errors.New("not authorized to modify time entry")

	// ErrInvalidDuration is returned when the duration is negative.
	ErrInvalidDuration = errors.New("duration must not be negative")

	// ErrInvalidWorkDate is returned when the work date is missing or malformed.
	ErrInvalidWorkDate = errors.New("invalid work date")

	// ErrInvalidGroupDimension is returned when an unknown grouping dimension is requested.
	ErrInvalidGroupDimension = errors.New("grouping dimension must be project, task or user")

	// ErrTaskNotInProject is returned when the task does not belong to the given project.
	ErrTaskNotInProject = errors.New("task does not belong to project")

	// ErrWorkerNotAssigned is returned when a worker logs time on an unassigned project.
	ErrWorkerNotAssigned = errors.New("worker is not assigned to project")
)

// TimeEntryErrorCode defines error codes for time entry errors.
// Format: TME-XXYYYY where XX is category and YYYY is specific error.
type TimeEntryErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidDuration       TimeEntryErrorCode = "TME-010001"
	ErrCodeInvalidWorkDate       TimeEntryErrorCode = "TME-010002"
	ErrCodeInvalidGroupDimension TimeEntryErrorCode = "TME-010003"
	ErrCodeTaskNotInProject      TimeEntryErrorCode = "TME-010004"
	ErrCodeMissingEntryFields    TimeEntryErrorCode = "TME-010005"

	// Authorization errors (02XXXX)
	ErrCodeTimeEntryNotFound  TimeEntryErrorCode = "TME-020001"
	ErrCodeNotAuthorizedEntry TimeEntryErrorCode = "TME-020002"
	ErrCodeWorkerNotAssigned  TimeEntryErrorCode = "TME-020003"
)

// TimeEntryError represents a time entry error with code and message.
type TimeEntryError struct {
	Code    TimeEntryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TimeEntryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TimeEntryError) Unwrap() error {
	return e.Err
}

// NewTimeEntryError creates a new TimeEntryError with the given code and message.
func NewTimeEntryError(code TimeEntryErrorCode, message string, err error) *TimeEntryError {
	return &TimeEntryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
