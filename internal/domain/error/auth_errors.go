// Package error defines domain-specific errors for the Trackbill application.
package error

import "errors"

// Authentication domain errors.
var (
	// ErrEmailAlreadyExists is returned when registering with a taken email.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrInvalidCredentials is returned when email or password do not match.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUserNotFound is returned when a user is not found in the system.
	ErrUserNotFound = errors.New("user not found")

	// ErrUserInactive is returned when a deactivated user attempts to log in.
	ErrUserInactive = errors.New("user is inactive")

	// ErrWeakPassword is returned when a password fails the strength check.
	ErrWeakPassword = errors.New("password does not meet minimum requirements")

	// ErrInvalidRole is returned when an unknown user role is supplied.
	ErrInvalidRole = errors.New("invalid user role")

	// ErrInvalidRefreshToken is returned when a refresh token is invalid or revoked.
	ErrInvalidRefreshToken = errors.New("invalid refresh token")

	// ErrForbidden is returned when the caller's role does not permit an operation.
	ErrForbidden = errors.New("operation not permitted for this role")

	// ErrMissingBrand is returned when a client user is created without a brand.
	ErrMissingBrand = errors.New("client users must belong to a brand")

	// ErrAdminRegistrationClosed is returned when an admin already exists and
	// another one tries to self-register.
	ErrAdminRegistrationClosed = errors.New("admin self-registration is closed")
)

// AuthErrorCode defines error codes for authentication errors.
// Format: AUTH-XXYYYY where XX is category and YYYY is specific error.
type AuthErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeEmailAlreadyExists  AuthErrorCode = "AUTH-010001"
	ErrCodeInvalidCredentials  AuthErrorCode = "AUTH-010002"
	ErrCodeWeakPassword        AuthErrorCode = "AUTH-010003"
	ErrCodeInvalidRole         AuthErrorCode = "AUTH-010004"
	ErrCodeUserNotFound        AuthErrorCode = "AUTH-010005"
	ErrCodeUserInactive        AuthErrorCode = "AUTH-010006"
	ErrCodeInvalidRefreshToken AuthErrorCode = "AUTH-010007"
	ErrCodeMissingBrand        AuthErrorCode = "AUTH-010008"

	// ErrCodeAdminRegistrationClosed fires once a first admin exists; further
	// admins are created by that admin, not by open registration.
	ErrCodeAdminRegistrationClosed AuthErrorCode = "AUTH-010009"

	// Token errors (02XXXX)
	ErrCodeMissingToken AuthErrorCode = "AUTH-020001"
	ErrCodeInvalidToken AuthErrorCode = "AUTH-020002"
	ErrCodeForbidden    AuthErrorCode = "AUTH-020003"
	ErrCodeRateLimited  AuthErrorCode = "AUTH-020004"
)

// AuthError represents an authentication error with code and message.
type AuthError struct {
	Code    AuthErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError creates a new AuthError with the given code and message.
func NewAuthError(code AuthErrorCode, message string, err error) *AuthError {
	return &AuthError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
