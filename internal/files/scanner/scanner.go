package scanner

import (
	"fmt"
	"strings"

	"github.com/vvka-141/scriptsort/internal/config"
	"github.com/vvka-141/scriptsort/internal/files/filesystem"
	"github.com/vvka-141/scriptsort/pkg/scriptsort"
)

// Scanner lists the entries of one directory in a single non-recursive
// pass. Subdirectory entries are listed by name like any other entry; they
// are never descended into.
type Scanner struct {
	fsProvider filesystem.Provider
	logger     scriptsort.Logger
}

// NewScanner creates a new directory scanner over the OS filesystem.
// Panics if logger is nil.
func NewScanner(logger scriptsort.Logger) *Scanner {
	return NewScannerWithFS(logger, filesystem.NewOSFileSystem())
}

// NewScannerWithFS creates a new directory scanner with a custom filesystem
// provider. This is primarily useful for testing with in-memory filesystems.
// Panics if logger or fsProvider is nil.
func NewScannerWithFS(logger scriptsort.Logger, fsProvider filesystem.Provider) *Scanner {
	if logger == nil {
		panic("logger cannot be nil")
	}
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	return &Scanner{
		fsProvider: fsProvider,
		logger:     logger,
	}
}

// ScanDirectory lists the immediate entries of sourcePath, excluding "."
// and "..", any entry whose name starts with scriptsort.SkipPrefix, and
// the directory's own scriptsort.yaml.
//
// Entries are returned in the order the underlying directory iteration
// yields them; sorting is the sorter's job. The exact list-mode buffer
// bound (sum of len(name)+2) is computed alongside the listing.
//
// A directory that cannot be opened yields an error wrapping
// scriptsort.ErrDirectoryUnreadable with the OS-level reason; the failure
// is fatal to the invocation.
func (s *Scanner) ScanDirectory(sourcePath string) (scriptsort.ScanResult, error) {
	infos, err := s.fsProvider.ReadDir(sourcePath)
	if err != nil {
		return scriptsort.ScanResult{}, fmt.Errorf(
			"%w: error opening directory '%s': %v", scriptsort.ErrDirectoryUnreadable, sourcePath, err)
	}

	var result scriptsort.ScanResult
	for _, info := range infos {
		name := info.Name()

		// Control entries. os.ReadDir never yields these, but the
		// provider contract does not promise that.
		if name == "." || name == ".." {
			continue
		}

		if strings.HasPrefix(name, scriptsort.SkipPrefix) {
			s.logger.Verbose("skipping %s (skip prefix)", name)
			continue
		}

		// The directory's own config file is input, never output.
		if name == config.ConfigFileName {
			s.logger.Verbose("skipping %s (config file)", name)
			continue
		}

		if len(name) > scriptsort.MaxFilenameLength {
			s.logger.Verbose("skipping %s (name exceeds %d bytes)", name, scriptsort.MaxFilenameLength)
			continue
		}

		entry := scriptsort.FileEntry{
			Name:      name,
			Order:     scriptsort.NoOrder,
			NameBytes: len(name),
		}

		// One name plus one joiner byte per append; the extra byte of
		// slack accommodates the trailing terminator.
		result.NameBytes += entry.NameBytes + 2
		result.Entries = append(result.Entries, entry)
	}

	s.logger.Verbose("scanned %s: %d entries", sourcePath, len(result.Entries))
	return result, nil
}

// Verify Scanner implements the interface at compile time
var _ scriptsort.DirectoryScanner = (*Scanner)(nil)
