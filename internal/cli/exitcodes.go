package cli

import (
	"errors"

	"github.com/yaklabco/mdpage/internal/configloader"
)

// Exit codes for mdpage.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitFailure indicates a general failure, including invalid usage.
	ExitFailure = 1

	// ExitCheckIssues indicates check found unsupported constructs.
	ExitCheckIssues = 2

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitIOError indicates documents that could not be read, parsed or written.
	ExitIOError = 74
)

// Errors that signal an exit code without further logging.
var (
	// ErrCheckIssuesFound is returned when check reports unsupported constructs.
	ErrCheckIssuesFound = errors.New("unsupported constructs found")

	// ErrDocumentsFailed is returned when at least one document failed.
	ErrDocumentsFailed = errors.New("some documents could not be processed")

	// ErrConfig wraps configuration loading failures.
	ErrConfig = errors.New("failed to load configuration")
)

// ExitCode maps a command error onto a process exit code.
func ExitCode(err error) int {
	var validationErr *configloader.ValidationError
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrCheckIssuesFound):
		return ExitCheckIssues
	case errors.Is(err, ErrDocumentsFailed):
		return ExitIOError
	case errors.Is(err, ErrConfig), errors.As(err, &validationErr):
		return ExitConfigError
	default:
		return ExitFailure
	}
}

// IsReported reports whether err has already been presented to the user
// through command output.
func IsReported(err error) bool {
	return errors.Is(err, ErrCheckIssuesFound) || errors.Is(err, ErrDocumentsFailed)
}
