// Package fsio reads files and replaces them atomically on top of an afero
// filesystem, so the same code runs against the disk and against memory.
package fsio

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// Files implements FileReader and FileWriter on an afero filesystem
type Files struct {
	fs afero.Fs
}

func New(fs afero.Fs) *Files {
	return &Files{fs: fs}
}

// NewOS returns Files backed by the real operating system filesystem
func NewOS() *Files {
	return New(afero.NewOsFs())
}

func (f *Files) ReadFile(filename string) ([]byte, error) {
	return afero.ReadFile(f.fs, filename)
}

// WriteFile replaces filename with data. The data goes to a temp file in the
// same directory first and is renamed over the target only once it is fully
// written and synced. An existing file keeps its permission bits, otherwise
// perm is used. Symlinks are followed, so the file they point to is replaced
// and the link itself is kept.
func (f *Files) WriteFile(filename string, data []byte, perm int) error {
	filename, err := f.resolve(filename)
	if err != nil {
		return err
	}

	mode := os.FileMode(perm)
	if info, err := f.fs.Stat(filename); err == nil {
		if info.IsDir() {
			return &fs.PathError{Op: "write", Path: filename, Err: errors.New("is a directory")}
		}
		mode = info.Mode().Perm()
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	dir, base := filepath.Split(filename)
	if dir == "" {
		dir = "."
	}
	tmp, err := afero.TempFile(f.fs, dir, "."+base+".quotefix-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if err := f.commit(tmp, data, mode, filename); err != nil {
		f.fs.Remove(tmpName) // Clean up
		return err
	}
	return nil
}

func (f *Files) commit(tmp afero.File, data []byte, mode os.FileMode, filename string) error {
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := f.fs.Chmod(tmp.Name(), mode); err != nil {
		return fmt.Errorf("failed to set permissions on temp file: %w", err)
	}
	if err := f.fs.Rename(tmp.Name(), filename); err != nil {
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	return nil
}

// maxSymlinks bounds link chains, matching the usual ELOOP limit
const maxSymlinks = 40

// resolve follows symlinks at name until it reaches a regular file or a path
// that does not exist yet. Filesystems without link support return name as is.
func (f *Files) resolve(name string) (string, error) {
	lstater, ok := f.fs.(afero.Lstater)
	if !ok {
		return name, nil
	}
	linkReader, ok := f.fs.(afero.LinkReader)
	if !ok {
		return name, nil
	}

	for i := 0; i < maxSymlinks; i++ {
		info, _, err := lstater.LstatIfPossible(name)
		if errors.Is(err, fs.ErrNotExist) {
			return name, nil
		}
		if err != nil {
			return "", err
		}
		if info.Mode()&fs.ModeSymlink == 0 {
			return name, nil
		}

		target, err := linkReader.ReadlinkIfPossible(name)
		if err != nil {
			return "", fmt.Errorf("failed to read symlink %s: %w", name, err)
		}
		if !filepath.IsAbs(target) {
			target = filepath.Join(filepath.Dir(name), target)
		}
		name = target
	}
	return "", &fs.PathError{Op: "write", Path: name, Err: errors.New("too many levels of symbolic links")}
}
