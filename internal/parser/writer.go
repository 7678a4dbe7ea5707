package parser

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"
	"github.com/relver/relver/internal/core"
	"github.com/relver/relver/internal/version"
	"github.com/tidwall/sjson"
)

// Writer updates version values inside project files. The notation it
// writes depends on the file format: structured manifests receive the
// semver interchange form other tools expect, raw and regex-addressed
// sources the canonical form.
type Writer struct {
	fs core.FileSystem
}

// NewWriter creates a new Writer with the given filesystem.
func NewWriter(fs core.FileSystem) *Writer {
	return &Writer{fs: fs}
}

// Notation renders info in the notation conventional for files of the
// given format.
func Notation(format Format, info version.VersionInfo) string {
	switch format {
	case FormatRaw, FormatRegex:
		return info.String()
	default:
		return info.SemVer()
	}
}

// WriteInfo writes a parsed version to a file, picking the notation for
// the target format via Notation.
func (w *Writer) WriteInfo(ctx context.Context, cfg FileConfig, info version.VersionInfo) error {
	return w.Write(ctx, cfg, Notation(cfg.Format, info))
}

// Write writes a literal version string to a file based on the provided
// configuration. Most callers want WriteInfo instead.
func (w *Writer) Write(ctx context.Context, cfg FileConfig, value string) error {
	if cfg.Path == "" {
		return fmt.Errorf("file path is required")
	}

	if !cfg.Format.IsValid() {
		return fmt.Errorf("invalid format: %s", cfg.Format)
	}

	switch cfg.Format {
	case FormatJSON:
		return w.writeJSON(ctx, cfg.Path, cfg.Field, value)
	case FormatYAML:
		return w.writeDocument(ctx, cfg.Path, cfg.Field, value, yaml.Unmarshal, yaml.Marshal)
	case FormatTOML:
		return w.writeDocument(ctx, cfg.Path, cfg.Field, value, toml.Unmarshal, toml.Marshal)
	case FormatRaw:
		return w.writeRaw(ctx, cfg.Path, value)
	case FormatRegex:
		return w.writeRegex(ctx, cfg.Path, cfg.Pattern, value)
	default:
		return fmt.Errorf("unsupported format: %s", cfg.Format)
	}
}

// writeJSON edits a JSON file through sjson so that key order and the
// original formatting survive.
func (w *Writer) writeJSON(ctx context.Context, path, field, value string) error {
	if field == "" {
		return fmt.Errorf("field is required for JSON format")
	}

	data, err := w.fs.ReadFile(ctx, path)
	if err != nil {
		return fmt.Errorf("failed to read file %q: %w", path, err)
	}

	updated, err := sjson.SetBytes(data, field, value)
	if err != nil {
		return fmt.Errorf("failed to set version in %q: %w", path, err)
	}

	return w.flush(ctx, path, updated)
}

// writeDocument handles the unmarshal-set-marshal cycle shared by the
// YAML and TOML formats. Unlike JSON there is no order-preserving
// editor for these codecs, so the document is rebuilt.
func (w *Writer) writeDocument(
	ctx context.Context,
	path, field, value string,
	unmarshal func([]byte, any) error,
	marshal func(any) ([]byte, error),
) error {
	if field == "" {
		return fmt.Errorf("field is required for %s format", FormatForFile(path))
	}

	data, err := w.fs.ReadFile(ctx, path)
	if err != nil {
		return fmt.Errorf("failed to read file %q: %w", path, err)
	}

	var doc map[string]any
	if err := unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse %q: %w", path, err)
	}

	if err := setField(doc, field, value); err != nil {
		return fmt.Errorf("in file %q: %w", path, err)
	}

	updated, err := marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal %q: %w", path, err)
	}

	return w.flush(ctx, path, updated)
}

// writeRaw writes the version as the entire file contents.
func (w *Writer) writeRaw(ctx context.Context, path, value string) error {
	return w.flush(ctx, path, []byte(value))
}

// writeRegex replaces the version in a file using a regex pattern. Only
// the first capturing group of each match is replaced; the surrounding
// text is preserved.
func (w *Writer) writeRegex(ctx context.Context, path, pattern, value string) error {
	if pattern == "" {
		return fmt.Errorf("pattern is required for regex format")
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return fmt.Errorf("invalid regex pattern %q: %w", pattern, err)
	}

	data, err := w.fs.ReadFile(ctx, path)
	if err != nil {
		return fmt.Errorf("failed to read file %q: %w", path, err)
	}

	if !re.Match(data) {
		return fmt.Errorf("pattern %q does not match contents of %q", pattern, path)
	}

	updated := re.ReplaceAllFunc(data, func(match []byte) []byte {
		groups := re.FindSubmatch(match)
		if len(groups) < 2 {
			return match
		}
		return []byte(strings.Replace(string(match), string(groups[1]), value, 1))
	})

	if err := w.fs.WriteFile(ctx, path, updated, core.PermOwnerRW); err != nil {
		return fmt.Errorf("failed to write file %q: %w", path, err)
	}

	return nil
}

// flush writes content back, ensuring a trailing newline.
func (w *Writer) flush(ctx context.Context, path string, content []byte) error {
	if len(content) == 0 || content[len(content)-1] != '\n' {
		content = append(content, '\n')
	}

	if err := w.fs.WriteFile(ctx, path, content, core.PermOwnerRW); err != nil {
		return fmt.Errorf("failed to write file %q: %w", path, err)
	}

	return nil
}

// setField sets a value in a nested document using dot notation,
// creating intermediate maps as needed.
func setField(doc map[string]any, field, value string) error {
	if field == "" {
		return fmt.Errorf("field path cannot be empty")
	}

	parts := strings.Split(field, ".")
	last := len(parts) - 1

	current := doc
	for i, part := range parts[:last] {
		next, exists := current[part]
		if !exists {
			child := make(map[string]any)
			current[part] = child
			current = child
			continue
		}

		child, ok := next.(map[string]any)
		if !ok {
			return fmt.Errorf("field %q is not an object at path %q", strings.Join(parts[:i+1], "."), part)
		}
		current = child
	}

	current[parts[last]] = value
	return nil
}

// Exists checks if a file exists at the given path.
func (w *Writer) Exists(ctx context.Context, path string) bool {
	_, err := w.fs.Stat(ctx, path)
	return err == nil
}

// ReadWriter combines Reader and Writer functionality.
type ReadWriter struct {
	*Reader
	*Writer
}

// NewReadWriter creates a new ReadWriter with the given filesystem.
func NewReadWriter(fs core.FileSystem) *ReadWriter {
	return &ReadWriter{
		Reader: NewReader(fs),
		Writer: NewWriter(fs),
	}
}

// FieldForFile returns the conventional version field path for common
// manifest file names, defaulting to "version".
func FieldForFile(filename string) string {
	fields := map[string]string{
		"package.json":   "version",
		"composer.json":  "version",
		"Cargo.toml":     "package.version",
		"pyproject.toml": "project.version",
		"Chart.yaml":     "version",
		"pubspec.yaml":   "version",
	}

	if field, ok := fields[filename]; ok {
		return field
	}

	parts := strings.Split(filename, "/")
	basename := parts[len(parts)-1]
	if field, ok := fields[basename]; ok {
		return field
	}

	return "version"
}

// FormatForFile detects the format based on file extension or name.
func FormatForFile(filename string) Format {
	lower := strings.ToLower(filename)

	switch {
	case strings.HasSuffix(lower, ".json"):
		return FormatJSON
	case strings.HasSuffix(lower, ".yaml"), strings.HasSuffix(lower, ".yml"):
		return FormatYAML
	case strings.HasSuffix(lower, ".toml"):
		return FormatTOML
	default:
		return FormatRaw
	}
}
