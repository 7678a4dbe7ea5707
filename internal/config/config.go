// Package config loads and saves the .relver.yaml configuration file.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/relver/relver/internal/core"
	"github.com/relver/relver/internal/parser"
	"github.com/relver/relver/internal/policy"
)

// ConfigFile is the name of the configuration file relver looks for in
// the working directory.
const ConfigFile = ".relver.yaml"

// DefaultVersionPath is the version file used when nothing is configured.
const DefaultVersionPath = ".version"

// Config is the main configuration structure for relver.
type Config struct {
	// Path is the location of the version source file.
	Path string `yaml:"path"`

	// Format overrides format detection for the version source
	// (json, yaml, toml, raw, regex).
	Format string `yaml:"format,omitempty"`

	// Field is the dot-notation field path for structured formats.
	Field string `yaml:"field,omitempty"`

	// Pattern is the capturing-group regex for the regex format.
	Pattern string `yaml:"pattern,omitempty"`

	// Theme selects the prompt theme for interactive commands.
	Theme string `yaml:"theme,omitempty"`

	// Policy holds version acceptance rules.
	Policy *policy.Config `yaml:"policy,omitempty"`

	// Strict rejects version values that are not in canonical
	// "major.minor.micro[marker][serial]" notation. Set from the
	// --strict root flag, never from the config file.
	Strict bool `yaml:"-"`
}

// Default returns the configuration used when no .relver.yaml exists.
func Default() *Config {
	return &Config{Path: DefaultVersionPath}
}

// Source builds the parser.FileConfig describing the configured version
// source. Format and field fall back to filename-based detection.
func (c *Config) Source() parser.FileConfig {
	path := c.Path
	if path == "" {
		path = DefaultVersionPath
	}

	format := parser.FormatForFile(path)
	if c.Format != "" {
		format = parser.ParseFormat(c.Format)
	}

	field := c.Field
	if field == "" && format != parser.FormatRaw && format != parser.FormatRegex {
		field = parser.FieldForFile(path)
	}

	return parser.FileConfig{
		Path:    path,
		Format:  format,
		Field:   field,
		Pattern: c.Pattern,
	}
}

// PolicyOrDefault returns the configured policy, or a disabled one.
func (c *Config) PolicyOrDefault() *policy.Config {
	if c.Policy != nil {
		return c.Policy
	}
	return policy.DefaultConfig()
}

// LoadFn is the active config loader. It is a variable so tests can
// substitute failures.
var LoadFn = Load

// Load reads the configuration. Priority:
//  1. RELVER_PATH environment variable (path only)
//  2. .relver.yaml in the working directory
//  3. built-in defaults
func Load() (*Config, error) {
	if envPath := os.Getenv("RELVER_PATH"); envPath != "" {
		cleanPath := filepath.Clean(envPath)
		// Reject relative paths with traversal (use absolute paths instead)
		if strings.Contains(cleanPath, "..") {
			return nil, fmt.Errorf("invalid RELVER_PATH: path traversal not allowed, use an absolute path instead")
		}
		return &Config{Path: cleanPath}, nil
	}

	data, err := os.ReadFile(ConfigFile)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data), yaml.Strict())
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", ConfigFile, err)
	}

	if cfg.Path == "" {
		cfg.Path = DefaultVersionPath
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// FileOpener abstracts file opening operations for testability.
type FileOpener interface {
	OpenFile(name string, flag int, perm os.FileMode) (*os.File, error)
}

// FileWriter abstracts file writing operations for testability.
type FileWriter interface {
	WriteFile(file *os.File, data []byte) (int, error)
}

// Saver handles configuration saving with injected dependencies.
type Saver struct {
	marshaler  core.Marshaler
	fileOpener FileOpener
	fileWriter FileWriter
}

type osFileOpener struct{}

func (o *osFileOpener) OpenFile(name string, flag int, perm os.FileMode) (*os.File, error) {
	return os.OpenFile(name, flag, perm)
}

type osFileWriter struct{}

func (w *osFileWriter) WriteFile(file *os.File, data []byte) (int, error) {
	return file.Write(data)
}

type yamlMarshaler struct{}

func (m *yamlMarshaler) Marshal(v any) ([]byte, error) {
	return yaml.Marshal(v)
}

// NewSaver creates a Saver with the given dependencies.
// If any dependency is nil, the production default is used.
func NewSaver(marshaler core.Marshaler, opener FileOpener, writer FileWriter) *Saver {
	if marshaler == nil {
		marshaler = &yamlMarshaler{}
	}
	if opener == nil {
		opener = &osFileOpener{}
	}
	if writer == nil {
		writer = &osFileWriter{}
	}
	return &Saver{
		marshaler:  marshaler,
		fileOpener: opener,
		fileWriter: writer,
	}
}

// Save saves the configuration to the default config file.
func (s *Saver) Save(cfg *Config) error {
	return s.SaveTo(cfg, ConfigFile)
}

// SaveTo saves the configuration to the specified file path.
func (s *Saver) SaveTo(cfg *Config, configFile string) error {
	file, err := s.fileOpener.OpenFile(configFile, os.O_RDWR|os.O_CREATE|os.O_TRUNC, core.PermOwnerRW)
	if err != nil {
		return fmt.Errorf("failed to open config file %q: %w", configFile, err)
	}
	defer file.Close()

	data, err := s.marshaler.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config to %q: %w", configFile, err)
	}

	if _, err := s.fileWriter.WriteFile(file, data); err != nil {
		return fmt.Errorf("failed to write config to %q: %w", configFile, err)
	}

	return nil
}

// NormalizeVersionPath ensures the path is a file, not just a directory.
func NormalizeVersionPath(path string) string {
	info, err := os.Stat(path)
	if err == nil && info.IsDir() {
		return filepath.Join(path, DefaultVersionPath)
	}

	// If it doesn't exist or is already a file, return as-is
	return path
}
