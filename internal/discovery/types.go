package discovery

import (
	"github.com/relver/relver/internal/parser"
	"github.com/relver/relver/internal/version"
)

// Source is a file in the project tree that carries a version string.
type Source struct {
	// Path is the path to the file as given to the filesystem.
	Path string

	// RelPath is the path relative to the scan root.
	RelPath string

	// Filename is the base name of the file (e.g. "package.json").
	Filename string

	// Raw is the version string exactly as found in the file.
	Raw string

	// Info is the parsed form of Raw.
	Info version.VersionInfo

	// Format is the file format the value was extracted with.
	Format parser.Format

	// Field is the dot-notation field path (for structured formats).
	Field string

	// Description is a human-readable description of the file type.
	Description string
}

// Invalid is a version source whose value could not be parsed.
type Invalid struct {
	RelPath string
	Raw     string
	Reason  string
}

// Mismatch is a version source that disagrees with the primary version.
type Mismatch struct {
	// Source is the relative path of the disagreeing file.
	Source string

	// Expected is the canonical primary version.
	Expected string

	// Actual is the version found in the file.
	Actual string
}

// Result is the complete outcome of a project scan.
type Result struct {
	// Root is the directory the scan started from.
	Root string

	// Sources are the version-bearing files found, primary first.
	Sources []Source

	// Invalid are files whose version values failed to parse.
	Invalid []Invalid

	// Mismatches are sources that disagree with the primary version.
	Mismatches []Mismatch
}

// IsEmpty returns true if no version sources were found.
func (r *Result) IsEmpty() bool {
	return len(r.Sources) == 0
}

// HasMismatches returns true if version mismatches were detected.
func (r *Result) HasMismatches() bool {
	return len(r.Mismatches) > 0
}

// Primary returns the source the rest of the project is compared
// against: the version file at the scan root when present, otherwise
// the first source found.
func (r *Result) Primary() *Source {
	for i := range r.Sources {
		if r.Sources[i].RelPath == ".version" {
			return &r.Sources[i]
		}
	}
	if len(r.Sources) > 0 {
		return &r.Sources[0]
	}
	return nil
}

// PrimaryVersion returns the canonical primary version string, or ""
// when nothing was found.
func (r *Result) PrimaryVersion() string {
	if p := r.Primary(); p != nil {
		return p.Info.String()
	}
	return ""
}

// KnownManifest describes a file type the scanner knows how to read.
type KnownManifest struct {
	// Filename is the expected filename.
	Filename string

	// Format is the file format.
	Format parser.Format

	// Field is the dot-notation path to the version field.
	Field string

	// Description is a human-readable description.
	Description string
}

// DefaultKnownManifests returns the list of file types the scanner looks for.
func DefaultKnownManifests() []KnownManifest {
	return []KnownManifest{
		{
			Filename:    ".version",
			Format:      parser.FormatRaw,
			Description: "Version file (.version)",
		},
		{
			Filename:    "package.json",
			Format:      parser.FormatJSON,
			Field:       "version",
			Description: "Node.js (package.json)",
		},
		{
			Filename:    "Cargo.toml",
			Format:      parser.FormatTOML,
			Field:       "package.version",
			Description: "Rust (Cargo.toml)",
		},
		{
			Filename:    "pyproject.toml",
			Format:      parser.FormatTOML,
			Field:       "project.version",
			Description: "Python (pyproject.toml)",
		},
		{
			Filename:    "Chart.yaml",
			Format:      parser.FormatYAML,
			Field:       "version",
			Description: "Helm (Chart.yaml)",
		},
		{
			Filename:    "pubspec.yaml",
			Format:      parser.FormatYAML,
			Field:       "version",
			Description: "Dart/Flutter (pubspec.yaml)",
		},
		{
			Filename:    "composer.json",
			Format:      parser.FormatJSON,
			Field:       "version",
			Description: "PHP (composer.json)",
		},
		{
			Filename:    "version.txt",
			Format:      parser.FormatRaw,
			Description: "Plain text (version.txt)",
		},
		{
			Filename:    "VERSION",
			Format:      parser.FormatRaw,
			Description: "Plain text (VERSION)",
		},
	}
}
