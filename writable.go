package main

import (
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
)

// checkFileWritable reports whether path can be written as a regular file:
// an existing regular file must be writable, a missing file needs a
// writable parent directory, and a directory can never be overwritten.
func checkFileWritable(path string) bool {
	info, err := os.Stat(path)
	if err == nil {
		if !info.Mode().IsRegular() {
			return false
		}
		return unix.Access(path, unix.W_OK) == nil
	}

	dir := filepath.Dir(path)
	if dir == "" {
		dir = "."
	}
	parent, err := os.Stat(dir)
	if err != nil || !parent.IsDir() {
		return false
	}
	return unix.Access(dir, unix.W_OK) == nil
}
