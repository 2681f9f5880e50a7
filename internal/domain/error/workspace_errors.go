// Package error defines domain-specific errors for the Trackbill application.
package error

import "errors"

// Brand, project and task domain errors.
var (
	// ErrBrandNotFound is returned when a brand is not found in the system.
	ErrBrandNotFound = errors.New("brand not found")

	// ErrBrandNameTaken is returned when a brand with the same name already exists.
	ErrBrandNameTaken = errors.New("brand name already exists")

	// ErrBrandHasProjects is returned when deleting a brand that still owns projects.
	ErrBrandHasProjects = errors.New("brand still has projects")

	// ErrProjectNotFound is returned when a project is not found in the system.
	ErrProjectNotFound = errors.New("project not found")

	// ErrProjectArchived is returned when logging time against an archived project.
	ErrProjectArchived = errors.New("project is archived")

	// ErrTaskNotFound is returned when a task is not found in the system.
	ErrTaskNotFound = errors.New("task not found")

	// ErrInvalidTaskStatus is returned when an unknown task status is supplied.
	ErrInvalidTaskStatus = errors.New("invalid task status")
)

// WorkspaceErrorCode defines error codes for brand, project and task errors.
// Format: WRK-XXYYYY where XX is category and YYYY is specific error.
type WorkspaceErrorCode string

const (
	// Brand errors (01XXXX)
	ErrCodeBrandNotFound    WorkspaceErrorCode = "WRK-010001"
	ErrCodeBrandNameTaken   WorkspaceErrorCode = "WRK-010002"
	ErrCodeBrandHasProjects WorkspaceErrorCode = "WRK-010003"

	// Project errors (02XXXX)
	ErrCodeProjectNotFound  WorkspaceErrorCode = "WRK-020001"
	ErrCodeProjectArchived  WorkspaceErrorCode = "WRK-020002"
	ErrCodeMissingProjectFields WorkspaceErrorCode = "WRK-020003"

	// Task errors (03XXXX)
	ErrCodeTaskNotFound      WorkspaceErrorCode = "WRK-030001"
	ErrCodeInvalidTaskStatus WorkspaceErrorCode = "WRK-030002"
)

// WorkspaceError represents a brand, project or task error with code and message.
type WorkspaceError struct {
	Code    WorkspaceErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *WorkspaceError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *WorkspaceError) Unwrap() error {
	return e.Err
}

// NewWorkspaceError creates a new WorkspaceError with the given code and message.
func NewWorkspaceError(code WorkspaceErrorCode, message string, err error) *WorkspaceError {
	return &WorkspaceError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
