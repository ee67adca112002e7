//go:build windows
// +build windows

// Package xos provides atomic file operations used for build outputs that
// other tools read concurrently (manifests, compile_commands links).
// On Windows, a temp-file-and-rename fallback is used since atomic rename
// across drives is not always possible.
package xos

import (
	"os"
	"path/filepath"
)

// WriteFile writes data to the named file via a temp file in the same
// directory followed by a rename.
func WriteFile(filename string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(filename)
	tempFile, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return err
	}
	tempName := tempFile.Name()

	success := false
	defer func() {
		if !success {
			os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		tempFile.Close()
		return err
	}
	if err := tempFile.Sync(); err != nil {
		tempFile.Close()
		return err
	}
	if err := tempFile.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tempName, perm); err != nil {
		return err
	}
	if err := os.Rename(tempName, filename); err != nil {
		return err
	}
	success = true
	return nil
}

// Symlink creates or replaces a symbolic link. Replacement is not atomic on
// Windows; the old link is removed first.
func Symlink(oldname, newname string) error {
	if err := os.Remove(newname); err != nil && !os.IsNotExist(err) {
		return err
	}
	return os.Symlink(oldname, newname)
}
