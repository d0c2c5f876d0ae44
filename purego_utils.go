//go:build (darwin || linux) && !cgo

// Shared utilities for the purego binding.

package mediainfo

import (
	"os"
	"path/filepath"
	"unsafe"
)

// goStringFromWidePtr converts a wchar_t string pointer returned by the
// engine to a Go string.
func goStringFromWidePtr(ptr uintptr) string {
	if ptr == 0 {
		return ""
	}
	return fromWide(unsafe.Pointer(ptr))
}

// findModuleRoot walks up the directory tree from the current working directory
// to find the module root (directory containing go.mod).
func findModuleRoot() string {
	wd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := wd
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return ""
}
