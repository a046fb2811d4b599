package filesystem

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"time"
)

// memoryFileInfo implements fs.FileInfo for in-memory files
type memoryFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
	isDir   bool
}

func (f *memoryFileInfo) Name() string       { return f.name }
func (f *memoryFileInfo) Size() int64        { return f.size }
func (f *memoryFileInfo) Mode() fs.FileMode  { return f.mode }
func (f *memoryFileInfo) ModTime() time.Time { return f.modTime }
func (f *memoryFileInfo) IsDir() bool        { return f.isDir }
func (f *memoryFileInfo) Sys() interface{}   { return nil }

// memoryEntry holds one in-memory file or directory.
type memoryEntry struct {
	content []byte
	info    *memoryFileInfo
}

// MemoryFileSystem implements Provider for in-memory testing.
// The map iteration order of its directory listing is intentionally
// unspecified, matching the contract that entries arrive unsorted.
type MemoryFileSystem struct {
	entries  map[string]*memoryEntry // absolute virtual path -> entry
	readErrs map[string]error        // absolute virtual path -> injected read failure
	root     string
}

// NewMemoryFileSystem creates a new in-memory filesystem rooted at root.
// Paths are normalized to forward slashes (virtual filesystem convention).
func NewMemoryFileSystem(root string) *MemoryFileSystem {
	root = path.Clean(filepath.ToSlash(root))

	mfs := &MemoryFileSystem{
		entries:  make(map[string]*memoryEntry),
		readErrs: make(map[string]error),
		root:     root,
	}

	mfs.entries[root] = &memoryEntry{
		info: &memoryFileInfo{
			name:    path.Base(root),
			mode:    0755 | fs.ModeDir,
			modTime: time.Now(),
			isDir:   true,
		},
	}

	return mfs
}

// AddFile adds a file to the in-memory filesystem.
func (mfs *MemoryFileSystem) AddFile(filePath string, content string) {
	absPath := mfs.abs(filePath)
	contentBytes := []byte(content)

	mfs.entries[absPath] = &memoryEntry{
		content: contentBytes,
		info: &memoryFileInfo{
			name:    path.Base(absPath),
			size:    int64(len(contentBytes)),
			mode:    0644,
			modTime: time.Now(),
			isDir:   false,
		},
	}
}

// AddDir adds an empty subdirectory to the in-memory filesystem.
func (mfs *MemoryFileSystem) AddDir(dirPath string) {
	absPath := mfs.abs(dirPath)

	mfs.entries[absPath] = &memoryEntry{
		info: &memoryFileInfo{
			name:    path.Base(absPath),
			mode:    0755 | fs.ModeDir,
			modTime: time.Now(),
			isDir:   true,
		},
	}
}

// SetReadError makes subsequent ReadFile calls for filePath fail with err.
// The entry still appears in directory listings, mirroring a file that is
// listable but not readable.
func (mfs *MemoryFileSystem) SetReadError(filePath string, err error) {
	mfs.readErrs[mfs.abs(filePath)] = err
}

// abs resolves a path against the virtual root.
func (mfs *MemoryFileSystem) abs(p string) string {
	p = filepath.ToSlash(p)
	if !path.IsAbs(p) {
		p = path.Join(mfs.root, p)
	}
	return path.Clean(p)
}

// ReadDir implements Provider.ReadDir. Only immediate children of the
// directory are returned.
func (mfs *MemoryFileSystem) ReadDir(dirPath string) ([]FileInfo, error) {
	absPath := mfs.abs(dirPath)

	dir, exists := mfs.entries[absPath]
	if !exists {
		return nil, fmt.Errorf("directory not found: %s", dirPath)
	}
	if !dir.info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", dirPath)
	}

	var infos []FileInfo
	for entryPath, entry := range mfs.entries {
		if entryPath == absPath {
			continue
		}
		if path.Dir(entryPath) == absPath {
			infos = append(infos, entry.info)
		}
	}

	return infos, nil
}

// ReadFile implements Provider.ReadFile.
func (mfs *MemoryFileSystem) ReadFile(filePath string) ([]byte, error) {
	absPath := mfs.abs(filePath)

	if err, ok := mfs.readErrs[absPath]; ok {
		return nil, err
	}

	entry, exists := mfs.entries[absPath]
	if !exists {
		return nil, fmt.Errorf("file not found: %s", filePath)
	}
	if entry.info.IsDir() {
		return nil, fmt.Errorf("path is a directory, not a file: %s", filePath)
	}

	return entry.content, nil
}

// Stat implements Provider.Stat.
func (mfs *MemoryFileSystem) Stat(statPath string) (FileInfo, error) {
	absPath := mfs.abs(statPath)

	entry, exists := mfs.entries[absPath]
	if !exists {
		return nil, fmt.Errorf("path not found: %s", statPath)
	}

	return entry.info, nil
}

// Verify MemoryFileSystem implements the interface at compile time
var _ Provider = (*MemoryFileSystem)(nil)
