//go:build !windows
// +build !windows

// Package xos provides atomic file operations used for build outputs that
// other tools read concurrently (manifests, compile_commands links).
package xos

import (
	"os"

	"github.com/google/renameio/v2"
)

// WriteFile writes data to the named file atomically using rename.
// If the file does not exist, WriteFile creates it with permissions perm;
// otherwise WriteFile truncates it before writing.
func WriteFile(filename string, data []byte, perm os.FileMode) error {
	return renameio.WriteFile(filename, data, perm)
}

// Symlink creates or replaces a symbolic link atomically.
func Symlink(oldname, newname string) error {
	return renameio.Symlink(oldname, newname)
}
