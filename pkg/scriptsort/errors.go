package scriptsort

import (
	"errors"
	"strings"
)

// Sentinel errors. Internal packages wrap these with fmt.Errorf("%w: ...")
// so callers can classify failures with errors.Is while keeping the
// specific message.
var (
	// ErrInvalidConfig indicates an unusable invocation configuration,
	// such as a malformed scriptsort.yaml or a missing source path.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidCutoff indicates a cutoff value below 1, from any source
	// in the precedence chain.
	ErrInvalidCutoff = errors.New("invalid cutoff")

	// ErrDirectoryUnreadable indicates the source directory could not be
	// opened or listed.
	ErrDirectoryUnreadable = errors.New("directory unreadable")

	// ErrAllocationFailed indicates the assembly buffer could not grow to
	// the required capacity.
	ErrAllocationFailed = errors.New("allocation failed")
)

// usageErrorPatterns identifies errors produced by cobra/pflag argument
// parsing, which carry no sentinel to match against.
var usageErrorPatterns = []string{
	"unknown flag",
	"unknown shorthand flag",
	"unknown command",
	"invalid argument",
	"arg(s), received",
	"required flag",
}

// ExitCodeForError maps an error to the process exit code. A nil error
// maps to ExitSuccess; anything unclassified maps to ExitGeneralError.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidCutoff), errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrDirectoryUnreadable):
		return ExitDirectoryError
	case errors.Is(err, ErrAllocationFailed):
		return ExitAllocationError
	}

	msg := err.Error()
	for _, pattern := range usageErrorPatterns {
		if strings.Contains(msg, pattern) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}
