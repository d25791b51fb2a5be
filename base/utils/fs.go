package utils

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// EnsureDirectory ensures that the given directory and its parents exist.
// If path is a file, an error is returned.
func EnsureDirectory(path string, perm fs.FileMode) error {
	f, err := os.Stat(path)
	switch {
	case err == nil && f.IsDir():
		return nil
	case err == nil:
		return fmt.Errorf("%s is a file, not a directory", path)
	case !errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("failed to access %s: %w", path, err)
	}

	if err := os.MkdirAll(path, perm); err != nil {
		return fmt.Errorf("could not create dir %s: %w", path, err)
	}
	return nil
}

// EnsureParent ensures that the directory of the given file path exists.
func EnsureParent(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return EnsureDirectory(dir, 0o755)
}

// PathExists returns whether the given path (file or dir) exists.
func PathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil || errors.Is(err, fs.ErrExist)
}

// IsDir returns whether the given path is a directory.
func IsDir(path string) bool {
	f, err := os.Stat(path)
	return err == nil && f.IsDir()
}
