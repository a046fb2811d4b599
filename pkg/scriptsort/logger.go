package scriptsort

// Logger receives diagnostic output. Implementations write to stderr;
// stdout is reserved for the emitted artifact.
type Logger interface {
	// Verbose logs a message shown only when verbose mode is enabled.
	Verbose(format string, args ...interface{})

	// Info logs an informational message.
	Info(format string, args ...interface{})

	// Error logs an error message.
	Error(format string, args ...interface{})
}
