// Package filex wraps the few filesystem chores of the CLI.
package filex

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

var ErrIsDirectory = errors.New("path is a directory")

// EnsureParentDir creates the directory that will hold path, so that the
// local database can be opened under a not-yet-existing data directory.
func EnsureParentDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o770); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return nil
}

// ReadNamed reads a whole file and returns its base name with the content.
func ReadNamed(path string) (string, []byte, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return "", nil, err
	}
	if fi.IsDir() {
		return "", nil, fmt.Errorf("%s: %w", path, ErrIsDirectory)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", nil, fmt.Errorf("read %s: %w", path, err)
	}
	return filepath.Base(path), data, nil
}
