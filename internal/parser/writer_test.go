package parser

import (
	"context"
	"strings"
	"testing"

	"github.com/relver/relver/internal/core"
	"github.com/relver/relver/internal/version"
)

func TestWriter_WriteJSON(t *testing.T) {
	fs := core.NewMockFileSystem()
	fs.SetFile("/package.json", []byte("{\n  \"name\": \"demo\",\n  \"version\": \"1.0.0\"\n}\n"))

	writer := NewWriter(fs)
	err := writer.Write(context.Background(), FileConfig{
		Path:   "/package.json",
		Format: FormatJSON,
		Field:  "version",
	}, "1.0.0a3")
	if err != nil {
		t.Fatalf("Write: %v", err)
	}

	data, _ := fs.ReadFile(context.Background(), "/package.json")
	content := string(data)

	if !strings.Contains(content, `"version": "1.0.0a3"`) {
		t.Errorf("version not updated: %s", content)
	}
	// sjson edits preserve surrounding keys and order.
	if !strings.Contains(content, `"name": "demo"`) {
		t.Errorf("other fields disturbed: %s", content)
	}
	if strings.Index(content, `"name"`) > strings.Index(content, `"version"`) {
		t.Errorf("key order not preserved: %s", content)
	}
	if !strings.HasSuffix(content, "\n") {
		t.Error("missing trailing newline")
	}
}

func TestWriter_WriteYAML(t *testing.T) {
	fs := core.NewMockFileSystem()
	fs.SetFile("/Chart.yaml", []byte("name: demo\nversion: 1.0.0\n"))

	writer := NewWriter(fs)
	err := writer.Write(context.Background(), FileConfig{
		Path:   "/Chart.yaml",
		Format: FormatYAML,
		Field:  "version",
	}, "2.0.0")
	if err != nil {
		t.Fatalf("Write: %v", err)
	}

	data, _ := fs.ReadFile(context.Background(), "/Chart.yaml")
	if !strings.Contains(string(data), "version: 2.0.0") {
		t.Errorf("version not updated: %s", data)
	}
}

func TestWriter_WriteTOML_NestedField(t *testing.T) {
	fs := core.NewMockFileSystem()
	fs.SetFile("/Cargo.toml", []byte("[package]\nname = \"demo\"\nversion = \"0.1.0\"\n"))

	writer := NewWriter(fs)
	err := writer.Write(context.Background(), FileConfig{
		Path:   "/Cargo.toml",
		Format: FormatTOML,
		Field:  "package.version",
	}, "0.2.0")
	if err != nil {
		t.Fatalf("Write: %v", err)
	}

	data, _ := fs.ReadFile(context.Background(), "/Cargo.toml")
	if !strings.Contains(string(data), "version = '0.2.0'") && !strings.Contains(string(data), `version = "0.2.0"`) {
		t.Errorf("version not updated: %s", data)
	}
}

func TestWriter_WriteRaw(t *testing.T) {
	fs := core.NewMockFileSystem()
	fs.SetFile("/.version", []byte("1.0.0\n"))

	writer := NewWriter(fs)
	if err := writer.Write(context.Background(), FileConfig{
		Path:   "/.version",
		Format: FormatRaw,
	}, "1.0.0rc1"); err != nil {
		t.Fatalf("Write: %v", err)
	}

	data, _ := fs.ReadFile(context.Background(), "/.version")
	if string(data) != "1.0.0rc1\n" {
		t.Errorf("got %q, want %q", data, "1.0.0rc1\n")
	}
}

func TestWriter_WriteRegex(t *testing.T) {
	fs := core.NewMockFileSystem()
	fs.SetFile("/version.go", []byte("const Version = \"1.0.0\" // current\n"))

	writer := NewWriter(fs)
	err := writer.Write(context.Background(), FileConfig{
		Path:    "/version.go",
		Format:  FormatRegex,
		Pattern: `Version = "([^"]+)"`,
	}, "1.1.0")
	if err != nil {
		t.Fatalf("Write: %v", err)
	}

	data, _ := fs.ReadFile(context.Background(), "/version.go")
	want := "const Version = \"1.1.0\" // current\n"
	if string(data) != want {
		t.Errorf("got %q, want %q", data, want)
	}

	// Pattern that matches nothing fails instead of silently writing.
	if err := writer.Write(context.Background(), FileConfig{
		Path:    "/version.go",
		Format:  FormatRegex,
		Pattern: `Nothing = "([^"]+)"`,
	}, "1.2.0"); err == nil {
		t.Error("expected error for non-matching pattern")
	}
}

func TestNotation(t *testing.T) {
	info := version.MustParse("1.1.0rc1")

	tests := []struct {
		format Format
		want   string
	}{
		{FormatJSON, "1.1.0-rc.1"},
		{FormatYAML, "1.1.0-rc.1"},
		{FormatTOML, "1.1.0-rc.1"},
		{FormatRaw, "1.1.0rc1"},
		{FormatRegex, "1.1.0rc1"},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			if got := Notation(tt.format, info); got != tt.want {
				t.Errorf("Notation(%v) = %q, want %q", tt.format, got, tt.want)
			}
		})
	}
}

func TestWriter_WriteInfo_ManifestGetsSemVer(t *testing.T) {
	fs := core.NewMockFileSystem()
	fs.SetFile("/package.json", []byte(`{"name": "demo", "version": "1.0.0"}`))

	writer := NewWriter(fs)
	err := writer.WriteInfo(context.Background(), FileConfig{
		Path:   "/package.json",
		Format: FormatJSON,
		Field:  "version",
	}, version.MustParse("1.1.0rc1"))
	if err != nil {
		t.Fatalf("WriteInfo: %v", err)
	}

	data, _ := fs.ReadFile(context.Background(), "/package.json")
	if !strings.Contains(string(data), "1.1.0-rc.1") {
		t.Errorf("manifest did not get semver notation: %s", data)
	}
}

func TestWriter_WriteInfo_RawGetsCanonical(t *testing.T) {
	fs := core.NewMockFileSystem()
	fs.SetFile("/.version", []byte("1.0.0\n"))

	writer := NewWriter(fs)
	err := writer.WriteInfo(context.Background(), FileConfig{
		Path:   "/.version",
		Format: FormatRaw,
	}, version.MustParse("1.1.0rc1"))
	if err != nil {
		t.Fatalf("WriteInfo: %v", err)
	}

	data, _ := fs.ReadFile(context.Background(), "/.version")
	if string(data) != "1.1.0rc1\n" {
		t.Errorf("got %q, want %q", data, "1.1.0rc1\n")
	}
}

func TestWriter_Exists(t *testing.T) {
	fs := core.NewMockFileSystem()
	fs.SetFile("/present", []byte("x"))

	writer := NewWriter(fs)
	if !writer.Exists(context.Background(), "/present") {
		t.Error("Exists(/present) = false, want true")
	}
	if writer.Exists(context.Background(), "/absent") {
		t.Error("Exists(/absent) = true, want false")
	}
}

func TestFieldForFile(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"package.json", "version"},
		{"Cargo.toml", "package.version"},
		{"pyproject.toml", "project.version"},
		{"some/dir/package.json", "version"},
		{"unknown.json", "version"},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			if got := FieldForFile(tt.filename); got != tt.want {
				t.Errorf("FieldForFile(%q) = %q, want %q", tt.filename, got, tt.want)
			}
		})
	}
}

func TestFormatForFile(t *testing.T) {
	tests := []struct {
		filename string
		want     Format
	}{
		{"package.json", FormatJSON},
		{"Chart.yaml", FormatYAML},
		{"config.yml", FormatYAML},
		{"Cargo.toml", FormatTOML},
		{".version", FormatRaw},
		{"VERSION", FormatRaw},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			if got := FormatForFile(tt.filename); got != tt.want {
				t.Errorf("FormatForFile(%q) = %v, want %v", tt.filename, got, tt.want)
			}
		})
	}
}
