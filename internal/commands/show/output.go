package show

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/relver/relver/internal/printer"
	"github.com/relver/relver/internal/version"
)

// OutputFormat selects how version details are rendered.
type OutputFormat string

const (
	FormatText  OutputFormat = "text"
	FormatJSON  OutputFormat = "json"
	FormatTable OutputFormat = "table"
)

// ParseOutputFormat converts a string to an OutputFormat, defaulting to text.
func ParseOutputFormat(s string) OutputFormat {
	switch OutputFormat(s) {
	case FormatJSON:
		return FormatJSON
	case FormatTable:
		return FormatTable
	default:
		return FormatText
	}
}

// Formatter renders a version and its parsed fields.
type Formatter struct {
	format OutputFormat
}

// NewFormatter creates a Formatter for the given output format.
func NewFormatter(format OutputFormat) *Formatter {
	return &Formatter{format: format}
}

// Format renders the raw version string and its parsed record.
func (f *Formatter) Format(raw string, info version.VersionInfo) string {
	switch f.format {
	case FormatJSON:
		return f.formatJSON(raw, info)
	case FormatTable:
		return f.formatTable(raw, info)
	default:
		return f.formatText(raw, info)
	}
}

func (f *Formatter) formatText(raw string, info version.VersionInfo) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s %s\n", printer.Bold(info.String()), printer.Faint(fmt.Sprintf("(raw: %s)", raw)))
	fmt.Fprintf(&sb, "  major:         %d\n", info.Major)
	fmt.Fprintf(&sb, "  minor:         %d\n", info.Minor)
	fmt.Fprintf(&sb, "  micro:         %d\n", info.Micro)
	fmt.Fprintf(&sb, "  release level: %s\n", releaseLevelLabel(info))
	fmt.Fprintf(&sb, "  serial:        %d\n", info.Serial)
	fmt.Fprintf(&sb, "  semver:        %s\n", info.SemVer())

	return sb.String()
}

func (f *Formatter) formatTable(raw string, info version.VersionInfo) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%-10s %-8s %-8s %-8s %-12s %-8s\n", "VERSION", "MAJOR", "MINOR", "MICRO", "LEVEL", "SERIAL")
	sb.WriteString(strings.Repeat("-", 58) + "\n")
	fmt.Fprintf(&sb, "%-10s %-8d %-8d %-8d %-12s %-8d\n",
		raw, info.Major, info.Minor, info.Micro, info.ReleaseLevel, info.Serial)

	return sb.String()
}

func (f *Formatter) formatJSON(raw string, info version.VersionInfo) string {
	output := struct {
		Raw          string `json:"raw"`
		Canonical    string `json:"canonical"`
		SemVer       string `json:"semver"`
		Major        int    `json:"major"`
		Minor        int    `json:"minor"`
		Micro        int    `json:"micro"`
		ReleaseLevel string `json:"releaselevel"`
		Serial       int    `json:"serial"`
	}{
		Raw:          raw,
		Canonical:    info.String(),
		SemVer:       info.SemVer(),
		Major:        info.Major,
		Minor:        info.Minor,
		Micro:        info.Micro,
		ReleaseLevel: string(info.ReleaseLevel),
		Serial:       info.Serial,
	}

	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return ""
	}
	return string(data) + "\n"
}

func releaseLevelLabel(info version.VersionInfo) string {
	if info.IsFinal() {
		return printer.Success(string(info.ReleaseLevel))
	}
	return printer.Warning(string(info.ReleaseLevel))
}
