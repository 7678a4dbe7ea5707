package scan

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/relver/relver/internal/discovery"
	"github.com/relver/relver/internal/printer"
)

// OutputFormat controls how scan results are displayed.
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

// Formatter handles display of scan results.
type Formatter struct {
	format OutputFormat
}

// NewFormatter creates a Formatter with the specified output format.
func NewFormatter(format OutputFormat) *Formatter {
	return &Formatter{format: format}
}

// FormatResult formats the scan result for display.
func (f *Formatter) FormatResult(result *discovery.Result) string {
	switch f.format {
	case FormatJSON:
		return f.formatJSON(result)
	case FormatTable:
		return f.formatTable(result)
	default:
		return f.formatText(result)
	}
}

// PrintResult prints the formatted result to stdout.
func (f *Formatter) PrintResult(result *discovery.Result) {
	fmt.Print(f.FormatResult(result))
}

func (f *Formatter) formatText(result *discovery.Result) string {
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString(printer.Info("Scan Results"))
	sb.WriteString("\n")
	sb.WriteString(printer.Faint(strings.Repeat("-", 70)))
	sb.WriteString("\n")

	if len(result.Sources) > 0 {
		sb.WriteString(printer.Info("Version Sources:"))
		sb.WriteString("\n")
		for _, s := range result.Sources {
			status := printer.Success("✓")
			fmt.Fprintf(&sb, "  %s %s %s\n", status, s.RelPath,
				printer.Faint(fmt.Sprintf("(%s: %s)", s.Description, s.Raw)))
		}
		sb.WriteString("\n")
	}

	if len(result.Invalid) > 0 {
		sb.WriteString(printer.Error("Invalid Values:"))
		sb.WriteString("\n")
		for _, inv := range result.Invalid {
			status := printer.Error("✗")
			fmt.Fprintf(&sb, "  %s %s: %q (%s)\n", status, inv.RelPath, inv.Raw, inv.Reason)
		}
		sb.WriteString("\n")
	}

	if len(result.Mismatches) > 0 {
		sb.WriteString(printer.Warning("Version Mismatches:"))
		sb.WriteString("\n")
		for _, m := range result.Mismatches {
			status := printer.Warning("⚠")
			fmt.Fprintf(&sb, "  %s %s: expected %s, found %s\n",
				status, m.Source, m.Expected, m.Actual)
		}
		sb.WriteString("\n")
	}

	sb.WriteString(printer.Faint(strings.Repeat("-", 70)))
	sb.WriteString("\n")
	sb.WriteString(f.Summary(result))
	sb.WriteString("\n")

	return sb.String()
}

func (f *Formatter) formatTable(result *discovery.Result) string {
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString(printer.Info("Scan Results"))
	sb.WriteString("\n\n")

	if len(result.Sources) > 0 {
		sb.WriteString("Version Sources:\n")
		fmt.Fprintf(&sb, "%-30s %-15s %-25s\n", "PATH", "VERSION", "TYPE")
		sb.WriteString(strings.Repeat("-", 70) + "\n")
		for _, s := range result.Sources {
			fmt.Fprintf(&sb, "%-30s %-15s %-25s\n", s.RelPath, s.Raw, s.Description)
		}
		sb.WriteString("\n")
	}

	if len(result.Mismatches) > 0 {
		sb.WriteString("Version Mismatches:\n")
		fmt.Fprintf(&sb, "%-30s %-15s %-15s\n", "SOURCE", "EXPECTED", "ACTUAL")
		sb.WriteString(strings.Repeat("-", 60) + "\n")
		for _, m := range result.Mismatches {
			fmt.Fprintf(&sb, "%-30s %-15s %-15s\n", m.Source, m.Expected, m.Actual)
		}
		sb.WriteString("\n")
	}

	sb.WriteString(f.Summary(result))
	sb.WriteString("\n")

	return sb.String()
}

func (f *Formatter) formatJSON(result *discovery.Result) string {
	type jsonSource struct {
		Path        string `json:"path"`
		Filename    string `json:"filename"`
		Raw         string `json:"raw"`
		Canonical   string `json:"canonical"`
		Format      string `json:"format"`
		Field       string `json:"field,omitempty"`
		Description string `json:"description"`
	}

	type jsonInvalid struct {
		Path   string `json:"path"`
		Raw    string `json:"raw"`
		Reason string `json:"reason"`
	}

	type jsonMismatch struct {
		Source   string `json:"source"`
		Expected string `json:"expected"`
		Actual   string `json:"actual"`
	}

	output := struct {
		Root       string         `json:"root"`
		Sources    []jsonSource   `json:"sources"`
		Invalid    []jsonInvalid  `json:"invalid"`
		Mismatches []jsonMismatch `json:"mismatches"`
		Summary    struct {
			SourceCount    int    `json:"source_count"`
			InvalidCount   int    `json:"invalid_count"`
			MismatchCount  int    `json:"mismatch_count"`
			HasMismatches  bool   `json:"has_mismatches"`
			PrimaryVersion string `json:"primary_version"`
		} `json:"summary"`
	}{
		Root:       result.Root,
		Sources:    make([]jsonSource, len(result.Sources)),
		Invalid:    make([]jsonInvalid, len(result.Invalid)),
		Mismatches: make([]jsonMismatch, len(result.Mismatches)),
	}

	for i, s := range result.Sources {
		output.Sources[i] = jsonSource{
			Path:        s.RelPath,
			Filename:    s.Filename,
			Raw:         s.Raw,
			Canonical:   s.Info.String(),
			Format:      string(s.Format),
			Field:       s.Field,
			Description: s.Description,
		}
	}

	for i, inv := range result.Invalid {
		output.Invalid[i] = jsonInvalid{
			Path:   inv.RelPath,
			Raw:    inv.Raw,
			Reason: inv.Reason,
		}
	}

	for i, m := range result.Mismatches {
		output.Mismatches[i] = jsonMismatch{
			Source:   m.Source,
			Expected: m.Expected,
			Actual:   m.Actual,
		}
	}

	output.Summary.SourceCount = len(result.Sources)
	output.Summary.InvalidCount = len(result.Invalid)
	output.Summary.MismatchCount = len(result.Mismatches)
	output.Summary.HasMismatches = result.HasMismatches()
	output.Summary.PrimaryVersion = result.PrimaryVersion()

	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting JSON: %v\n", err)
		return ""
	}

	return string(data) + "\n"
}

// Summary returns a one-line summary of the result.
func (f *Formatter) Summary(result *discovery.Result) string {
	parts := []string{}

	if n := len(result.Sources); n > 0 {
		parts = append(parts, fmt.Sprintf("%d source(s)", n))
	}
	if n := len(result.Invalid); n > 0 {
		parts = append(parts, printer.Error(fmt.Sprintf("%d invalid", n)))
	}
	if n := len(result.Mismatches); n > 0 {
		parts = append(parts, printer.Warning(fmt.Sprintf("%d mismatch(es)", n)))
	}

	if len(parts) == 0 {
		return printer.Faint("No version sources found")
	}

	summary := "Found: " + strings.Join(parts, ", ")
	if result.PrimaryVersion() != "" {
		summary += fmt.Sprintf(" | Primary version: %s", printer.Bold(result.PrimaryVersion()))
	}

	return summary
}
