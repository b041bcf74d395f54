// Package fsutil contains small filesystem helpers shared by commands that write
// generated documents to disk.
package fsutil

import (
	"os"
	"path/filepath"
)

// EnsureDir creates a directory path if it does not exist and returns nil if the path already exists.
// Will return the underlying os.Stat error if there were any other errors.
func EnsureDir(dirPath string) error {
	_, err := os.Stat(dirPath)

	switch {
	case os.IsNotExist(err):
		err := os.MkdirAll(dirPath, 0o755)
		if err != nil {
			return err
		}
	case err != nil:
		return err
	}

	return nil
}

// WriteFile writes contents to the given path, creating the parent directory chain first
// if it does not exist yet.
func WriteFile(path string, contents []byte) error {
	err := EnsureDir(filepath.Dir(path))
	if err != nil {
		return err
	}

	return os.WriteFile(path, contents, 0o644)
}
