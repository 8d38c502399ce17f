package exitcode

import (
	"os"
	"strings"

	"github.com/careops/shiftctl/internal/errors"
)

// Exit codes for consistent error handling across the CLI
const (
	// Success indicates successful execution
	Success = 0

	// GeneralError indicates a general error condition
	GeneralError = 1

	// UsageError indicates invalid command usage (bad flags, missing args, etc.)
	UsageError = 2

	// ValidationError indicates locally rejected input
	ValidationError = 3

	// AuthError indicates an authentication failure or expired session
	AuthError = 4

	// NetworkError indicates a network connectivity issue
	NetworkError = 5

	// Interrupted indicates the user cancelled the operation
	Interrupted = 130
)

// Exit terminates the program with the given exit code
func Exit(code int) {
	os.Exit(code)
}

// ExitWithError exits with an appropriate code based on error type
func ExitWithError(err error) {
	if err == nil {
		Exit(Success)
		return
	}

	Exit(DetermineExitCode(err))
}

// DetermineExitCode analyzes an error and returns the appropriate exit code
func DetermineExitCode(err error) int {
	if err == nil {
		return Success
	}

	switch {
	case errors.IsAuth(err):
		return AuthError
	case errors.IsValidation(err):
		return ValidationError
	case errors.IsNetwork(err):
		return NetworkError
	}

	// Cobra reports flag and argument problems as plain errors
	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "unknown command") || strings.Contains(errMsg, "unknown flag") {
		return UsageError
	}
	if strings.Contains(errMsg, "required flag") || strings.Contains(errMsg, "invalid argument") {
		return UsageError
	}

	return GeneralError
}

// Description returns a human-readable description of an exit code
func Description(code int) string {
	switch code {
	case Success:
		return "Success"
	case GeneralError:
		return "General error"
	case UsageError:
		return "Usage error (invalid flags or arguments)"
	case ValidationError:
		return "Validation error (input rejected locally)"
	case AuthError:
		return "Authentication error"
	case NetworkError:
		return "Network error"
	case Interrupted:
		return "Interrupted"
	default:
		return "Unknown error"
	}
}
