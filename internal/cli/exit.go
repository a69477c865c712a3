package cli

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/oshokin/solar-cycle/internal/domain/cycle"
	"github.com/oshokin/solar-cycle/internal/report"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution.
	ExitFailure      = 1 // Runtime failure (I/O, transport, server errors).
	ExitInvalidInput = 2 // Invalid input (hour out of range, malformed argument, unknown format).
)

// ExitError carries the exit code a command wants the process to end with.
type ExitError struct {
	Code    int    // Exit code (ExitFailure or ExitInvalidInput).
	Message string // Error message.
	Err     error  // Underlying error, optional.
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}

	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates an ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps err with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// ExitCode extracts the exit code from err.
// Invalid cycle states, unknown report formats and InvalidArgument replies
// from the server count as invalid input; anything else unclassified is ExitFailure.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	if errors.Is(err, cycle.ErrInvalidState) || errors.Is(err, report.ErrUnknownFormat) {
		return ExitInvalidInput
	}

	if status.Code(err) == codes.InvalidArgument {
		return ExitInvalidInput
	}

	return ExitFailure
}
