package cmd

import (
	"errors"

	"quick-init/internal/bootstrap"
)

// Exit codes returned by Execute.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitInvalidTemplate indicates the requested template is not vite or next.
	ExitInvalidTemplate = 1
)

// ExitError wraps an error with an exit code.
type ExitError struct {
	Err  error
	Code int
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCodeFromError determines the process exit code for err.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	switch {
	case errors.Is(err, bootstrap.ErrInvalidTemplate):
		return ExitInvalidTemplate
	default:
		return ExitGeneralError
	}
}
