package filesystem

import (
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryFileSystem_ReadDir(t *testing.T) {
	mfs := NewMemoryFileSystem("/scripts")
	mfs.AddFile("fn.a", "echo a")
	mfs.AddFile("fn.b", "echo b")
	mfs.AddDir("subdir")

	infos, err := mfs.ReadDir("/scripts")
	require.NoError(t, err)
	require.Len(t, infos, 3)

	names := make([]string, 0, len(infos))
	for _, info := range infos {
		names = append(names, info.Name())
	}
	sort.Strings(names)
	assert.Equal(t, []string{"fn.a", "fn.b", "subdir"}, names)
}

func TestMemoryFileSystem_ReadDir_OnlyImmediateChildren(t *testing.T) {
	mfs := NewMemoryFileSystem("/scripts")
	mfs.AddFile("fn.a", "")
	mfs.AddDir("subdir")
	mfs.AddFile("subdir/nested", "")

	infos, err := mfs.ReadDir("/scripts")
	require.NoError(t, err)

	for _, info := range infos {
		assert.NotEqual(t, "nested", info.Name())
	}
}

func TestMemoryFileSystem_ReadDir_Missing(t *testing.T) {
	mfs := NewMemoryFileSystem("/scripts")

	_, err := mfs.ReadDir("/other")
	assert.Error(t, err)
}

func TestMemoryFileSystem_ReadDir_NotADirectory(t *testing.T) {
	mfs := NewMemoryFileSystem("/scripts")
	mfs.AddFile("fn.a", "")

	_, err := mfs.ReadDir("/scripts/fn.a")
	assert.Error(t, err)
}

func TestMemoryFileSystem_ReadFile(t *testing.T) {
	mfs := NewMemoryFileSystem("/scripts")
	mfs.AddFile("fn.a", "echo a")

	content, err := mfs.ReadFile("/scripts/fn.a")
	require.NoError(t, err)
	assert.Equal(t, "echo a", string(content))

	// Relative paths resolve against the virtual root.
	content, err = mfs.ReadFile("fn.a")
	require.NoError(t, err)
	assert.Equal(t, "echo a", string(content))
}

func TestMemoryFileSystem_ReadFile_InjectedError(t *testing.T) {
	mfs := NewMemoryFileSystem("/scripts")
	mfs.AddFile("fn.a", "echo a")
	wantErr := errors.New("permission denied")
	mfs.SetReadError("fn.a", wantErr)

	_, err := mfs.ReadFile("/scripts/fn.a")
	assert.ErrorIs(t, err, wantErr)

	// Still listable.
	infos, err := mfs.ReadDir("/scripts")
	require.NoError(t, err)
	assert.Len(t, infos, 1)
}

func TestMemoryFileSystem_Stat(t *testing.T) {
	mfs := NewMemoryFileSystem("/scripts")
	mfs.AddFile("fn.a", "echo a")

	info, err := mfs.Stat("/scripts/fn.a")
	require.NoError(t, err)
	assert.Equal(t, "fn.a", info.Name())
	assert.Equal(t, int64(6), info.Size())
	assert.False(t, info.IsDir())

	root, err := mfs.Stat("/scripts")
	require.NoError(t, err)
	assert.True(t, root.IsDir())
}
