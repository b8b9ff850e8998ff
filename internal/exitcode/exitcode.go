package exitcode

import (
	"os"

	"github.com/felixgeelhaar/planlint/internal/errors"
)

// Exit codes for consistent error handling across the CLI
const (
	// Success indicates successful execution with no error findings
	Success = 0

	// GeneralError indicates a general error condition
	GeneralError = 1

	// UsageError indicates invalid command usage (bad flags, missing args, etc.)
	UsageError = 2

	// FindingsError indicates the plan carries Error-severity findings
	FindingsError = 3

	// ConfigError indicates malformed caller inputs (duplicate ids, bad specs)
	ConfigError = 4

	// Interrupted indicates the process was cancelled by a signal
	Interrupted = 130
)

// Exit terminates the program with the given exit code
func Exit(code int) {
	os.Exit(code)
}

// ExitWithError exits with an appropriate code based on error type
func ExitWithError(err error) {
	Exit(DetermineExitCode(err))
}

// DetermineExitCode analyzes an error and returns the appropriate exit code
func DetermineExitCode(err error) int {
	if err == nil {
		return Success
	}

	if errors.IsConfiguration(err) {
		return ConfigError
	}

	if errors.IsFindings(err) {
		return FindingsError
	}

	return GeneralError
}
