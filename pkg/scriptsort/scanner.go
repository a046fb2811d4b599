package scriptsort

// DirectoryScanner lists a source directory and applies the inclusion
// rules: dot entries, skip-prefixed names, and over-length names are
// excluded.
type DirectoryScanner interface {
	// ScanDirectory scans sourcePath and returns the included entries.
	// Errors wrap ErrDirectoryUnreadable.
	ScanDirectory(sourcePath string) (ScanResult, error)
}
