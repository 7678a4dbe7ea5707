// Package discovery scans a project tree for files that carry version
// strings and reports disagreements between them.
package discovery

import (
	"context"
	"path/filepath"
	"slices"
	"strings"

	"github.com/relver/relver/internal/core"
	"github.com/relver/relver/internal/parser"
	"github.com/relver/relver/internal/version"
)

// Service provides version source discovery functionality.
type Service struct {
	fs       core.FileSystem
	reader   *parser.Reader
	maxDepth int
	excludes []string
}

// Option configures a Service.
type Option func(*Service)

// WithMaxDepth bounds directory recursion. The default is core.MaxScanDepth.
func WithMaxDepth(depth int) Option {
	return func(s *Service) {
		if depth >= 0 {
			s.maxDepth = depth
		}
	}
}

// WithExcludes adds glob patterns for directories and files to skip.
func WithExcludes(patterns ...string) Option {
	return func(s *Service) {
		s.excludes = append(s.excludes, patterns...)
	}
}

// NewService creates a discovery Service.
func NewService(fs core.FileSystem, opts ...Option) *Service {
	s := &Service{
		fs:       fs,
		reader:   parser.NewReader(fs),
		maxDepth: core.MaxScanDepth,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Scan walks the tree under root, collects every known version source,
// and detects mismatches against the primary version.
func (s *Service) Scan(ctx context.Context, root string) (*Result, error) {
	result := &Result{
		Root:       root,
		Sources:    make([]Source, 0),
		Invalid:    make([]Invalid, 0),
		Mismatches: make([]Mismatch, 0),
	}

	if err := s.walk(ctx, root, root, 0, result); err != nil {
		return nil, err
	}

	result.Mismatches = DetectMismatches(result)
	return result, nil
}

// walk recurses through directories collecting sources.
func (s *Service) walk(ctx context.Context, root, dir string, depth int, result *Result) error {
	if depth > s.maxDepth {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := s.collectDir(ctx, root, dir, result); err != nil {
		return err
	}

	entries, err := s.fs.ReadDir(ctx, dir)
	if err != nil {
		// Skip directories we can't read
		return nil
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		name := entry.Name()
		path := filepath.Join(dir, name)
		if s.shouldExclude(name, path) {
			continue
		}

		if err := s.walk(ctx, root, path, depth+1, result); err != nil {
			return err
		}
	}

	return nil
}

// collectDir reads every known manifest present in a single directory.
func (s *Service) collectDir(ctx context.Context, root, dir string, result *Result) error {
	for _, known := range DefaultKnownManifests() {
		if err := ctx.Err(); err != nil {
			return err
		}

		path := filepath.Join(dir, known.Filename)
		if _, err := s.fs.Stat(ctx, path); err != nil {
			continue
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			relPath = path
		}

		raw, err := s.reader.ReadVersion(ctx, parser.FileConfig{
			Path:   path,
			Format: known.Format,
			Field:  known.Field,
		})
		if err != nil {
			// A manifest without a version field is not a source.
			continue
		}

		info, err := version.ParseTolerant(raw)
		if err != nil {
			result.Invalid = append(result.Invalid, Invalid{
				RelPath: relPath,
				Raw:     raw,
				Reason:  err.Error(),
			})
			continue
		}

		result.Sources = append(result.Sources, Source{
			Path:        path,
			RelPath:     relPath,
			Filename:    known.Filename,
			Raw:         raw,
			Info:        info,
			Format:      known.Format,
			Field:       known.Field,
			Description: known.Description,
		})
	}

	return nil
}

// shouldExclude checks if a directory should be skipped during the walk.
func (s *Service) shouldExclude(name, path string) bool {
	// Skip hidden directories
	if strings.HasPrefix(name, ".") {
		return true
	}

	// Skip common non-project directories
	skipDirs := []string{"node_modules", "vendor", "__pycache__", "target", "dist", "build"}
	if slices.Contains(skipDirs, name) {
		return true
	}

	for _, pattern := range s.excludes {
		if matched, _ := filepath.Match(pattern, name); matched {
			return true
		}
		if matched, _ := filepath.Match(pattern, path); matched {
			return true
		}
	}

	return false
}

// ScanAt is a convenience function that creates a Service and runs a scan.
func ScanAt(ctx context.Context, fsys core.FileSystem, root string, opts ...Option) (*Result, error) {
	return NewService(fsys, opts...).Scan(ctx, root)
}
