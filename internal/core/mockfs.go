package core

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// MockFileSystem is an in-memory FileSystem for tests.
// Directories are implicit: a directory exists when at least one
// stored file lives beneath it.
type MockFileSystem struct {
	mu    sync.RWMutex
	files map[string][]byte

	// Error injection: when set, the matching operation fails.
	readErr  map[string]error
	writeErr map[string]error
}

// NewMockFileSystem returns an empty MockFileSystem.
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		files:    make(map[string][]byte),
		readErr:  make(map[string]error),
		writeErr: make(map[string]error),
	}
}

// SetFile stores file content at the given path.
func (m *MockFileSystem) SetFile(path string, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[filepath.Clean(path)] = data
}

// SetReadError makes ReadFile and Stat fail for the given path.
func (m *MockFileSystem) SetReadError(path string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.readErr[filepath.Clean(path)] = err
}

// SetWriteError makes WriteFile fail for the given path.
func (m *MockFileSystem) SetWriteError(path string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writeErr[filepath.Clean(path)] = err
}

// ReadFile returns the stored content for path.
func (m *MockFileSystem) ReadFile(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	path = filepath.Clean(path)
	if err, ok := m.readErr[path]; ok {
		return nil, err
	}
	data, ok := m.files[path]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}

	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// WriteFile stores content at path.
func (m *MockFileSystem) WriteFile(ctx context.Context, path string, data []byte, _ os.FileMode) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	path = filepath.Clean(path)
	if err, ok := m.writeErr[path]; ok {
		return err
	}

	stored := make([]byte, len(data))
	copy(stored, data)
	m.files[path] = stored
	return nil
}

// Stat reports whether path exists as a file or an implicit directory.
func (m *MockFileSystem) Stat(ctx context.Context, path string) (fs.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	path = filepath.Clean(path)
	if err, ok := m.readErr[path]; ok {
		return nil, err
	}
	if data, ok := m.files[path]; ok {
		return mockFileInfo{name: filepath.Base(path), size: int64(len(data))}, nil
	}
	if m.isDirLocked(path) {
		return mockFileInfo{name: filepath.Base(path), dir: true}, nil
	}

	return nil, &fs.PathError{Op: "stat", Path: path, Err: fs.ErrNotExist}
}

// ReadDir lists the direct children of path.
func (m *MockFileSystem) ReadDir(ctx context.Context, path string) ([]fs.DirEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	path = filepath.Clean(path)
	if !m.isDirLocked(path) {
		return nil, &fs.PathError{Op: "readdir", Path: path, Err: fs.ErrNotExist}
	}

	prefix := path + string(filepath.Separator)
	if path == "." {
		prefix = ""
	}

	seen := make(map[string]bool)
	var entries []fs.DirEntry
	for p := range m.files {
		if !strings.HasPrefix(p, prefix) {
			continue
		}
		rest := strings.TrimPrefix(p, prefix)
		parts := strings.SplitN(rest, string(filepath.Separator), 2)
		name := parts[0]
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		entries = append(entries, mockDirEntry{name: name, dir: len(parts) > 1})
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })
	return entries, nil
}

func (m *MockFileSystem) isDirLocked(path string) bool {
	if path == "." {
		return len(m.files) > 0
	}
	prefix := path + string(filepath.Separator)
	for p := range m.files {
		if strings.HasPrefix(p, prefix) {
			return true
		}
	}
	return false
}

type mockFileInfo struct {
	name string
	size int64
	dir  bool
}

func (fi mockFileInfo) Name() string { return fi.name }
func (fi mockFileInfo) Size() int64  { return fi.size }
func (fi mockFileInfo) Mode() fs.FileMode {
	if fi.dir {
		return fs.ModeDir | PermDir
	}
	return PermOwnerRW
}
func (fi mockFileInfo) ModTime() time.Time { return time.Time{} }
func (fi mockFileInfo) IsDir() bool        { return fi.dir }
func (fi mockFileInfo) Sys() any           { return nil }

type mockDirEntry struct {
	name string
	dir  bool
}

func (e mockDirEntry) Name() string { return e.name }
func (e mockDirEntry) IsDir() bool  { return e.dir }
func (e mockDirEntry) Type() fs.FileMode {
	if e.dir {
		return fs.ModeDir
	}
	return 0
}
func (e mockDirEntry) Info() (fs.FileInfo, error) {
	return mockFileInfo{name: e.name, dir: e.dir}, nil
}
