package assemble

import (
	"fmt"
	"path/filepath"

	"github.com/vvka-141/scriptsort/internal/files/filesystem"
	"github.com/vvka-141/scriptsort/pkg/scriptsort"
)

// Assembler concatenates sorted partitions into final output bytes.
// It owns the assembly buffer for the lifetime of one call; the buffer is
// released when the returned slice goes out of scope.
type Assembler struct {
	fsProvider filesystem.Provider
	logger     scriptsort.Logger
}

// NewAssembler creates an assembler over the OS filesystem.
// Panics if logger is nil.
func NewAssembler(logger scriptsort.Logger) *Assembler {
	return NewAssemblerWithFS(logger, filesystem.NewOSFileSystem())
}

// NewAssemblerWithFS creates an assembler with a custom filesystem provider.
// This is primarily useful for testing with in-memory filesystems.
// Panics if logger or fsProvider is nil.
func NewAssemblerWithFS(logger scriptsort.Logger, fsProvider filesystem.Provider) *Assembler {
	if logger == nil {
		panic("logger cannot be nil")
	}
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	return &Assembler{
		fsProvider: fsProvider,
		logger:     logger,
	}
}

// AssembleNames concatenates each entry's name followed by the joiner byte,
// partitions in [low, unordered, high] order. presize is the exact bound
// computed during the scan (sum of len(name)+2 per entry), so the buffer
// never grows during list assembly.
func (a *Assembler) AssembleNames(parts scriptsort.Partitions, joiner byte, presize int) ([]byte, error) {
	if presize < 1 {
		// Empty directory: the bound is zero but the buffer still needs
		// a valid initial capacity.
		presize = 1
	}

	buf, err := NewBuffer(presize)
	if err != nil {
		return nil, fmt.Errorf("assembling name list: %w", err)
	}

	for _, entry := range parts.InOrder() {
		if err := buf.AppendString(entry.Name); err != nil {
			return nil, fmt.Errorf("assembling name list: %w", err)
		}
		if err := buf.AppendByte(joiner); err != nil {
			return nil, fmt.Errorf("assembling name list: %w", err)
		}
	}

	return buf.Bytes(), nil
}

// AssembleBundle reads each entry's full file contents from dir and appends
// them followed by a single newline, partitions in [low, unordered, high]
// order.
//
// An entry that cannot be read (missing, permission denied, or a
// subdirectory) is skipped with a diagnostic naming the path and the OS
// reason; this is the only per-item recovery in the pipeline. A failure to
// grow the shared buffer is fatal because the assembled output's integrity
// would be compromised.
//
// Each file read is scoped strictly to that one entry; no handle outlives
// the iteration step.
func (a *Assembler) AssembleBundle(dir string, parts scriptsort.Partitions) ([]byte, error) {
	buf, err := NewBuffer(scriptsort.InitialBufferSize)
	if err != nil {
		return nil, fmt.Errorf("assembling bundle: %w", err)
	}

	for _, entry := range parts.InOrder() {
		path := filepath.Join(dir, entry.Name)

		content, err := a.fsProvider.ReadFile(path)
		if err != nil {
			a.logger.Error("error reading file '%s': %v", path, err)
			continue
		}

		// Contents plus the separating newline, in one growth step.
		if err := buf.EnsureCapacity(buf.Len() + len(content) + 1); err != nil {
			return nil, fmt.Errorf("assembling bundle: %w", err)
		}
		if err := buf.Append(content); err != nil {
			return nil, fmt.Errorf("assembling bundle: %w", err)
		}
		if err := buf.AppendByte('\n'); err != nil {
			return nil, fmt.Errorf("assembling bundle: %w", err)
		}
	}

	return buf.Bytes(), nil
}

// Verify Assembler implements the interface at compile time
var _ scriptsort.Assembler = (*Assembler)(nil)
