package scriptsort

// Filename classification.
const (
	// OrderedPrefix marks a filename carrying an explicit order number.
	// The digits immediately following the prefix determine the position;
	// parsing consumes the longest run of digits.
	OrderedPrefix = "ordered."

	// SkipPrefix marks a filename excluded from every output form.
	SkipPrefix = "skip."

	// NoOrder is the order number of an entry without a valid
	// ordered-prefix number.
	NoOrder = -1

	// DefaultCutoff is the boundary separating low from high ordered
	// entries when no flag, environment variable, or directory config
	// overrides it. Ordered entries below the cutoff run first; entries
	// at or above it run last.
	DefaultCutoff = 50

	// MaxFilenameLength is the longest directory entry name the scanner
	// will accept.
	MaxFilenameLength = 255
)

// Assembly.
const (
	// InitialBufferSize is the starting capacity of the bundle assembly
	// buffer. List assembly presizes exactly from the scan instead.
	InitialBufferSize = 4096

	// DefaultTimerCommand is the external command emitted output shells
	// out to for millisecond timestamps. It prints epoch milliseconds and
	// is optional at runtime; the generated script falls back to 0 when
	// it is not on PATH.
	DefaultTimerCommand = "ms"
)

// Exit codes returned by the scriptsort binary.
const (
	ExitSuccess         = 0
	ExitGeneralError    = 1
	ExitUsageError      = 2
	ExitPanic           = 3
	ExitConfigError     = 10
	ExitDirectoryError  = 11
	ExitAllocationError = 12
)
