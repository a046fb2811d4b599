package logging

import (
	"fmt"
	"os"
	"sync"

	"github.com/vvka-141/scriptsort/internal/console"
)

// ConsoleLogger writes log messages to stderr, keeping stdout free for the
// primary result (list, script, or bundle).
// Safe for concurrent use by multiple goroutines.
type ConsoleLogger struct {
	verbose     bool
	errorPrefix string
	mu          sync.Mutex
}

// NewConsoleLogger creates a new ConsoleLogger.
// If verbose is true, Verbose() calls will produce output.
// If verbose is false, Verbose() calls are no-ops.
func NewConsoleLogger(verbose bool) *ConsoleLogger {
	prefix := "[ERROR]"
	if console.ColorEnabled(os.Stderr) {
		prefix = console.ErrorPrefixStyle.Render(prefix)
	}
	return &ConsoleLogger{
		verbose:     verbose,
		errorPrefix: prefix,
	}
}

// Verbose logs detailed diagnostic information if verbose mode is enabled.
func (l *ConsoleLogger) Verbose(format string, args ...interface{}) {
	if !l.verbose {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(os.Stderr, "[VERBOSE] "+format+"\n", args...)
}

// Info logs informational messages about normal operations.
func (l *ConsoleLogger) Info(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}

// Error logs error messages.
func (l *ConsoleLogger) Error(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(os.Stderr, l.errorPrefix+" "+format+"\n", args...)
}
