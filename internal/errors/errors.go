package errors

import (
	"fmt"
	"strings"
)

// ErrorCode represents a unique error identifier
type ErrorCode string

// Error categories
const (
	// Authentication errors (AUTH-001 to AUTH-099)
	ErrCodeAuthInvalidCredentials ErrorCode = "AUTH-001"
	ErrCodeAuthTokenMissing       ErrorCode = "AUTH-002"
	ErrCodeAuthSessionExpired     ErrorCode = "AUTH-003"
	ErrCodeAuthNotLoggedIn        ErrorCode = "AUTH-004"
	ErrCodePermissionDenied       ErrorCode = "AUTH-005"

	// Validation errors (VALID-001 to VALID-099)
	ErrCodeValidationRequired  ErrorCode = "VALID-001"
	ErrCodeValidationTimeRange ErrorCode = "VALID-002"
	ErrCodeValidationRole      ErrorCode = "VALID-003"

	// Network errors (NET-001 to NET-099)
	ErrCodeNetworkRequest ErrorCode = "NET-001"
	ErrCodeNetworkDecode  ErrorCode = "NET-002"

	// Backend API errors (API-001 to API-099)
	ErrCodeAPIStatus   ErrorCode = "API-001"
	ErrCodeAPINotFound ErrorCode = "API-002"

	// File I/O errors (IO-001 to IO-099)
	ErrCodeCredentialRead  ErrorCode = "IO-001"
	ErrCodeCredentialWrite ErrorCode = "IO-002"

	// Configuration errors (CONFIG-001 to CONFIG-099)
	ErrCodeConfigInvalid ErrorCode = "CONFIG-001"
)

// Error represents an enhanced error with code, suggestions, and documentation
type Error struct {
	Code        ErrorCode
	Message     string
	Suggestions []string
	DocsURL     string
	Cause       error
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("[%s] %s", e.Code, e.Message))

	if e.Cause != nil {
		b.WriteString(fmt.Sprintf(": %v", e.Cause))
	}

	if len(e.Suggestions) > 0 {
		b.WriteString("\n\nSuggestions:")
		for _, suggestion := range e.Suggestions {
			b.WriteString(fmt.Sprintf("\n  • %s", suggestion))
		}
	}

	if e.DocsURL != "" {
		b.WriteString(fmt.Sprintf("\n\nDocumentation: %s", e.DocsURL))
	}

	return b.String()
}

// Unwrap implements error unwrapping for errors.Is and errors.As
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error
func New(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new Error wrapping an existing error
func Wrap(code ErrorCode, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WithSuggestion adds a suggestion to the error
func (e *Error) WithSuggestion(suggestion string) *Error {
	e.Suggestions = append(e.Suggestions, suggestion)
	return e
}

// WithSuggestions adds multiple suggestions to the error
func (e *Error) WithSuggestions(suggestions ...string) *Error {
	e.Suggestions = append(e.Suggestions, suggestions...)
	return e
}

// WithDocs adds a documentation URL to the error
func (e *Error) WithDocs(url string) *Error {
	e.DocsURL = url
	return e
}

// IsAuth reports whether err carries an AUTH-* code.
func IsAuth(err error) bool {
	return hasCodePrefix(err, "AUTH-")
}

// IsValidation reports whether err carries a VALID-* code.
func IsValidation(err error) bool {
	return hasCodePrefix(err, "VALID-")
}

// IsNetwork reports whether err carries a NET-* code.
func IsNetwork(err error) bool {
	return hasCodePrefix(err, "NET-")
}

func hasCodePrefix(err error, prefix string) bool {
	for err != nil {
		if coded, ok := err.(*Error); ok && strings.HasPrefix(string(coded.Code), prefix) {
			return true
		}
		unwrapper, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = unwrapper.Unwrap()
	}
	return false
}

// Common error constructors for frequently used errors

// NewInvalidCredentialsError creates a rejected-credentials error
func NewInvalidCredentialsError() *Error {
	return New(ErrCodeAuthInvalidCredentials, "the backend rejected the supplied credentials").
		WithSuggestion("Check the email address and password").
		WithSuggestion("Run 'shiftctl auth register' if you do not have an account yet")
}

// NewTokenMissingError creates an error for a login response without a usable token
func NewTokenMissingError() *Error {
	return New(ErrCodeAuthTokenMissing, "login response did not contain an access token").
		WithSuggestion("Verify the API base URL points at the staffing backend").
		WithSuggestion("Run 'shiftctl auth login' again")
}

// NewSessionExpiredError creates an error for a 401 on an authenticated call
func NewSessionExpiredError() *Error {
	return New(ErrCodeAuthSessionExpired, "session token is invalid or expired").
		WithSuggestion("Run 'shiftctl auth login' to authenticate again")
}

// NewNotLoggedInError creates an error for commands that need a session
func NewNotLoggedInError() *Error {
	return New(ErrCodeAuthNotLoggedIn, "not logged in").
		WithSuggestion("Run 'shiftctl auth login --email <email>' first")
}

// NewPermissionDeniedError creates an advisory permission denial.
// The backend still decides for itself on every call.
func NewPermissionDeniedError(role, permission string) *Error {
	return New(ErrCodePermissionDenied,
		fmt.Sprintf("role %q does not hold the %q permission", role, permission)).
		WithSuggestion("Ask an administrator to adjust your role if you need this")
}

// NewRequiredFieldError creates a missing required input error
func NewRequiredFieldError(field string) *Error {
	return New(ErrCodeValidationRequired, fmt.Sprintf("%s is required", field)).
		WithSuggestion(fmt.Sprintf("Provide a non-empty value for %s", field))
}

// NewTimeRangeError creates a shift time ordering error
func NewTimeRangeError() *Error {
	return New(ErrCodeValidationTimeRange, "shift end time must be after its start time").
		WithSuggestion("Check the --start and --end values")
}

// NewCredentialWriteError creates an error for a failed credential save
func NewCredentialWriteError(path string, cause error) *Error {
	return Wrap(ErrCodeCredentialWrite, fmt.Sprintf("failed to save credentials to %s", path), cause).
		WithSuggestion("Check that the credentials directory is writable")
}
