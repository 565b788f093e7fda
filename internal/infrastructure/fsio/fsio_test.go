package fsio

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFiles_ReadFile(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mem, "routes/a.js", []byte("hello"), 0644))

	files := New(mem)
	data, err := files.ReadFile("routes/a.js")
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	_, err = files.ReadFile("routes/missing.js")
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestFiles_WriteFileReplacesAtomically(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mem, "routes/a.js", []byte("old content"), 0640))

	files := New(mem)
	require.NoError(t, files.WriteFile("routes/a.js", []byte("new"), 0644))

	data, err := afero.ReadFile(mem, "routes/a.js")
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))

	info, err := mem.Stat("routes/a.js")
	require.NoError(t, err)
	assert.Equal(t, fs.FileMode(0640), info.Mode().Perm())

	entries, err := afero.ReadDir(mem, "routes")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "a.js", entries[0].Name())
}

func TestFiles_WriteFileCreatesWithPerm(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, mem.MkdirAll("out", 0755))

	files := New(mem)
	require.NoError(t, files.WriteFile("out/new.txt", []byte("x"), 0600))

	info, err := mem.Stat("out/new.txt")
	require.NoError(t, err)
	assert.Equal(t, fs.FileMode(0600), info.Mode().Perm())
}

func TestFiles_WriteFileFailureKeepsOriginal(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mem, "routes/a.js", []byte("original"), 0644))

	files := New(afero.NewReadOnlyFs(mem))
	err := files.WriteFile("routes/a.js", []byte("replacement"), 0644)
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "failed to create temp file"))

	data, err := afero.ReadFile(mem, "routes/a.js")
	require.NoError(t, err)
	assert.Equal(t, "original", string(data))
}

func TestFiles_WriteFileRejectsDirectory(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, mem.MkdirAll("routes", 0755))

	err := New(mem).WriteFile("routes", []byte("x"), 0644)
	assert.Error(t, err)
}

func TestFiles_WriteFileCleansUpOnRenameFailure(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mem, "routes/a.js", []byte("original"), 0644))

	files := New(&renameFailingFs{Fs: mem})
	err := files.WriteFile("routes/a.js", []byte("replacement"), 0644)
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "failed to rename temp file"))

	entries, err := afero.ReadDir(mem, "routes")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "a.js", entries[0].Name())

	data, err := afero.ReadFile(mem, "routes/a.js")
	require.NoError(t, err)
	assert.Equal(t, "original", string(data))
}

func TestFiles_WriteFileFollowsSymlink(t *testing.T) {
	dir := t.TempDir()
	realDir := filepath.Join(dir, "real")
	require.NoError(t, os.MkdirAll(realDir, 0755))
	realPath := filepath.Join(realDir, "a.js")
	require.NoError(t, os.WriteFile(realPath, []byte(`\"`), 0640))

	linkPath := filepath.Join(dir, "link.js")
	if err := os.Symlink(filepath.Join("real", "a.js"), linkPath); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	require.NoError(t, NewOS().WriteFile(linkPath, []byte(`"`), 0644))

	info, err := os.Lstat(linkPath)
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&fs.ModeSymlink, "link must stay a symlink")

	data, err := os.ReadFile(realPath)
	require.NoError(t, err)
	assert.Equal(t, `"`, string(data))

	info, err = os.Stat(realPath)
	require.NoError(t, err)
	assert.Equal(t, fs.FileMode(0640), info.Mode().Perm())

	entries, err := os.ReadDir(realDir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

type renameFailingFs struct {
	afero.Fs
}

func (f *renameFailingFs) Rename(oldname, newname string) error {
	return errors.New("rename refused")
}
