package scriptsort

import "fmt"

// FileEntry is one directory entry that survived scanning.
type FileEntry struct {
	// Name is the bare entry name, without any directory component.
	Name string

	// Order is the number parsed from the ordered prefix, or NoOrder.
	Order int

	// NameBytes is len(Name), cached during the scan for assembly
	// presizing.
	NameBytes int
}

// HasOrder reports whether the entry carries a valid order number.
func (e FileEntry) HasOrder() bool {
	return e.Order != NoOrder
}

// Partitions holds the three-way classification of a scanned directory.
// Output order is always Low, then Unordered, then High. The slices are
// unbounded; classification never drops an entry.
type Partitions struct {
	Low       []FileEntry
	Unordered []FileEntry
	High      []FileEntry
}

// Total returns the number of entries across all partitions.
func (p Partitions) Total() int {
	return len(p.Low) + len(p.Unordered) + len(p.High)
}

// InOrder returns all entries in output order as a single slice.
func (p Partitions) InOrder() []FileEntry {
	out := make([]FileEntry, 0, p.Total())
	out = append(out, p.Low...)
	out = append(out, p.Unordered...)
	out = append(out, p.High...)
	return out
}

// ScanResult is the outcome of scanning one source directory.
type ScanResult struct {
	// Entries are the included entries, in directory listing order with
	// Order not yet extracted.
	Entries []FileEntry

	// NameBytes is the sum of len(Name)+2 over Entries, an exact upper
	// bound on the joined name list (name plus joiner per entry).
	NameBytes int
}

// RunConfig is the fully resolved configuration of one invocation.
type RunConfig struct {
	// SourcePath is the directory to scan.
	SourcePath string

	// Cutoff separates low from high ordered entries. Must be >= 1.
	Cutoff int

	// Init selects the sourceable init script output form.
	Init bool

	// Bundle selects the concatenated contents output form. Init takes
	// precedence when both are set.
	Bundle bool

	// Debug embeds timing/progress instrumentation in init and bundle
	// output.
	Debug bool

	// Verbose enables diagnostic logging on stderr.
	Verbose bool

	// TimerCommand is the external millisecond-timestamp command named in
	// instrumented output.
	TimerCommand string
}

// Validate checks the resolved configuration before any filesystem work.
func (c RunConfig) Validate() error {
	if c.SourcePath == "" {
		return fmt.Errorf("%w: source path is required", ErrInvalidConfig)
	}
	if c.Cutoff < 1 {
		return fmt.Errorf("%w: cutoff must be greater than 0, got %d", ErrInvalidCutoff, c.Cutoff)
	}
	if c.TimerCommand == "" {
		return fmt.Errorf("%w: timer command cannot be empty", ErrInvalidConfig)
	}
	return nil
}
