package ioutils

import (
	"context"
	"os"
	"path/filepath"
	"strings"
)

// WriteFile writes data to a file, creating it and its parent directories
// if necessary.
//
// The file is created with mode 0644. If the file already exists,
// it is truncated before writing.
//
// Parameters:
//   - ctx: Context for cancellation (currently unused but reserved for future use)
//   - path: File path to write to
//   - data: Bytes to write
//
// Example:
//
//	report := []byte(`{"version":"1.1.3"}`)
//	err := WriteFile(ctx, "output/report.json", report)
func WriteFile(ctx context.Context, path string, data []byte) error {
	if err := EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// EnsureDir creates a directory and all parent directories if they don't exist.
//
// Directories are created with mode 0755 (rwxr-xr-x).
// If the directory already exists, no error is returned.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}

// IsHidden returns true if the file or folder name starts with a dot.
//
// Example:
//
//	IsHidden(".DS_Store") // true
//	IsHidden("cover.jpg") // false
func IsHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}
