// Package cli implements the command-line interface.
package cli

import (
	"errors"

	"github.com/aidanlsb/querykit/internal/query"
)

// Error codes for structured error responses.
// These codes are stable and can be relied upon by scripts.
const (
	// Query errors
	ErrEmptyInput      = "EMPTY_INPUT"
	ErrInvalidArgument = "INVALID_ARGUMENT"

	// Input errors
	ErrInvalidInput    = "INVALID_INPUT"
	ErrMissingArgument = "MISSING_ARGUMENT"

	// Data and config errors
	ErrDataLoadFailed = "DATA_LOAD_FAILED"
	ErrConfigInvalid  = "CONFIG_INVALID"
	ErrFileWriteError = "FILE_WRITE_ERROR"

	// General errors
	ErrInternal = "INTERNAL_ERROR"
)

// errSilent signals that the error was already reported (as JSON) and the
// process should only exit non-zero.
var errSilent = errors.New("error already reported")

// codeForError maps query errors to their codes, falling back to fallback.
func codeForError(err error, fallback string) string {
	switch {
	case errors.Is(err, query.ErrEmptyInput):
		return ErrEmptyInput
	case errors.Is(err, query.ErrInvalidArgument):
		return ErrInvalidArgument
	default:
		return fallback
	}
}

// suggestionForError returns a hint for known query errors.
func suggestionForError(err error) string {
	switch {
	case errors.Is(err, query.ErrEmptyInput):
		return "Lower --min-age so at least one person matches"
	default:
		return ""
	}
}
