package cli

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-variants/game"
)

// Exit codes for the command.
const (
	ExitSuccess     = 0 // Run finished (generation limit, extinction or interrupt)
	ExitFailure     = 1 // Invalid flags, config or other errors
	ExitInputClosed = 2 // Standard input ended while a prompt was waiting
)

// ExitError carries the process exit code for an error.
type ExitError struct {
	Code    int
	Message string
	Err     error
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

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// nil maps to ExitSuccess and errors without a code to ExitFailure.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// classify attaches exit codes to errors returned by a session
func classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, game.ErrInputClosed) {
		return WrapExitError(ExitInputClosed, "input ended before the simulation could start", err)
	}
	return err
}
