// Package core provides shared infrastructure used across relver:
// the filesystem abstraction, permission constants, and small
// interfaces for dependency injection.
package core

import (
	"context"
	"io/fs"
	"os"
)

// File permission constants shared across the codebase.
const (
	// PermOwnerRW is used for files that only the owner should touch
	// (version files, config files).
	PermOwnerRW os.FileMode = 0o600

	// PermDir is the default permission for created directories.
	PermDir os.FileMode = 0o755
)

// MaxScanDepth bounds directory recursion during project scans.
const MaxScanDepth = 5

// FileSystem abstracts file operations for testability.
// All methods honor context cancellation before touching the disk.
type FileSystem interface {
	ReadFile(ctx context.Context, path string) ([]byte, error)
	WriteFile(ctx context.Context, path string, data []byte, perm os.FileMode) error
	Stat(ctx context.Context, path string) (fs.FileInfo, error)
	ReadDir(ctx context.Context, path string) ([]fs.DirEntry, error)
}

// Marshaler abstracts serialization for dependency injection.
type Marshaler interface {
	Marshal(v any) ([]byte, error)
}

// OSFileSystem is the production FileSystem backed by the os package.
type OSFileSystem struct{}

// NewOSFileSystem returns a FileSystem backed by the real filesystem.
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

// ReadFile reads the named file.
func (o *OSFileSystem) ReadFile(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.ReadFile(path)
}

// WriteFile writes data to the named file, creating it if necessary.
func (o *OSFileSystem) WriteFile(ctx context.Context, path string, data []byte, perm os.FileMode) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return os.WriteFile(path, data, perm)
}

// Stat returns file info for the named file.
func (o *OSFileSystem) Stat(ctx context.Context, path string) (fs.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.Stat(path)
}

// ReadDir reads the named directory and returns its entries.
func (o *OSFileSystem) ReadDir(ctx context.Context, path string) ([]fs.DirEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.ReadDir(path)
}
