package parser

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"
	"github.com/relver/relver/internal/core"
	"github.com/relver/relver/internal/version"
)

// Reader extracts version strings from files in multiple formats.
type Reader struct {
	fs core.FileSystem
}

// NewReader creates a new Reader with the given filesystem.
func NewReader(fs core.FileSystem) *Reader {
	return &Reader{fs: fs}
}

// Read reads a version string from a file based on the provided configuration.
func (r *Reader) Read(ctx context.Context, cfg FileConfig) (*Result, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("file path is required")
	}

	if !cfg.Format.IsValid() {
		return nil, fmt.Errorf("invalid format: %s", cfg.Format)
	}

	data, err := r.fs.ReadFile(ctx, cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", cfg.Path, err)
	}

	var raw string
	switch cfg.Format {
	case FormatJSON:
		raw, err = r.readJSON(data, cfg.Path, cfg.Field)
	case FormatYAML:
		raw, err = r.readYAML(data, cfg.Path, cfg.Field)
	case FormatTOML:
		raw, err = r.readTOML(data, cfg.Path, cfg.Field)
	case FormatRaw:
		raw = strings.TrimSpace(string(data))
	case FormatRegex:
		raw, err = r.readRegex(data, cfg.Path, cfg.Pattern)
	default:
		return nil, fmt.Errorf("unsupported format: %s", cfg.Format)
	}

	if err != nil {
		return nil, err
	}

	return &Result{
		Version: raw,
		Path:    cfg.Path,
		Format:  cfg.Format,
		Field:   cfg.Field,
	}, nil
}

// ReadVersion reads and returns just the raw version string.
func (r *Reader) ReadVersion(ctx context.Context, cfg FileConfig) (string, error) {
	result, err := r.Read(ctx, cfg)
	if err != nil {
		return "", err
	}
	return result.Version, nil
}

// ReadInfo reads the version string and parses it into a VersionInfo.
// Tolerant parsing is used because manifests written by other tools may
// carry "v" prefixes or semver-style pre-release suffixes.
func (r *Reader) ReadInfo(ctx context.Context, cfg FileConfig) (version.VersionInfo, string, error) {
	raw, err := r.ReadVersion(ctx, cfg)
	if err != nil {
		return version.VersionInfo{}, "", err
	}

	info, err := version.ParseTolerant(raw)
	if err != nil {
		return version.VersionInfo{}, raw, fmt.Errorf("in file %q: %w", cfg.Path, err)
	}

	return info, raw, nil
}

// readJSON extracts a version from JSON data using dot notation for the field path.
func (r *Reader) readJSON(data []byte, path, field string) (string, error) {
	if field == "" {
		return "", fmt.Errorf("field is required for JSON format")
	}

	var obj map[string]any
	if err := json.Unmarshal(data, &obj); err != nil {
		return "", fmt.Errorf("failed to parse JSON in %q: %w", path, err)
	}

	return nestedString(obj, field, path)
}

// readYAML extracts a version from YAML data using dot notation for the field path.
func (r *Reader) readYAML(data []byte, path, field string) (string, error) {
	if field == "" {
		return "", fmt.Errorf("field is required for YAML format")
	}

	var obj map[string]any
	if err := yaml.Unmarshal(data, &obj); err != nil {
		return "", fmt.Errorf("failed to parse YAML in %q: %w", path, err)
	}

	return nestedString(obj, field, path)
}

// readTOML extracts a version from TOML data using dot notation for the field path.
func (r *Reader) readTOML(data []byte, path, field string) (string, error) {
	if field == "" {
		return "", fmt.Errorf("field is required for TOML format")
	}

	var obj map[string]any
	if err := toml.Unmarshal(data, &obj); err != nil {
		return "", fmt.Errorf("failed to parse TOML in %q: %w", path, err)
	}

	return nestedString(obj, field, path)
}

// readRegex extracts a version using a regex pattern with a capturing group.
func (r *Reader) readRegex(data []byte, path, pattern string) (string, error) {
	if pattern == "" {
		return "", fmt.Errorf("pattern is required for regex format")
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return "", fmt.Errorf("invalid regex pattern %q: %w", pattern, err)
	}

	matches := re.FindSubmatch(data)
	if len(matches) < 2 {
		return "", fmt.Errorf("no version match found in %q (pattern %q must have a capturing group)", path, pattern)
	}

	return string(matches[1]), nil
}

// nestedString retrieves a string value from a nested map using dot notation
// and reports a file-qualified error when it is missing or not a string.
func nestedString(obj map[string]any, field, path string) (string, error) {
	value, err := getNestedValue(obj, field)
	if err != nil {
		return "", fmt.Errorf("in file %q: %w", path, err)
	}

	s, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("field %q in %q is not a string", field, path)
	}

	return s, nil
}

// getNestedValue retrieves a value from a nested map using dot notation.
// Example: "tool.poetry.version" accesses obj["tool"]["poetry"]["version"]
func getNestedValue(obj map[string]any, field string) (any, error) {
	if field == "" {
		return nil, fmt.Errorf("field path cannot be empty")
	}

	parts := strings.Split(field, ".")
	current := any(obj)

	for i, part := range parts {
		currentMap, ok := current.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("field %q is not an object at path %q", strings.Join(parts[:i], "."), part)
		}

		value, exists := currentMap[part]
		if !exists {
			return nil, fmt.Errorf("field %q not found", field)
		}

		current = value
	}

	return current, nil
}
