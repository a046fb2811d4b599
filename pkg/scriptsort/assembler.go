package scriptsort

// Assembler concatenates sorted partitions into output bytes.
type Assembler interface {
	// AssembleNames joins entry names with the joiner byte after each
	// name, partitions in [low, unordered, high] order. presize is the
	// scan's exact size bound for the result.
	AssembleNames(parts Partitions, joiner byte, presize int) ([]byte, error)

	// AssembleBundle concatenates the contents of each entry's file under
	// dir, each followed by a newline. Unreadable entries are skipped
	// with a diagnostic.
	AssembleBundle(dir string, parts Partitions) ([]byte, error)
}
