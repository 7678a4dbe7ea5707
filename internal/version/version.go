// Package version implements parsing and comparison of release version
// strings of the form "major.minor.micro" with an optional pre-release
// suffix, e.g. "1.0.0a3" or "0.1.0rc2".
package version

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ReleaseLevel is the maturity stage of a release. The canonical levels
// are alpha, candidate, and final; unrecognized pre-release markers are
// carried through verbatim.
type ReleaseLevel string

const (
	Alpha     ReleaseLevel = "alpha"
	Beta      ReleaseLevel = "beta"
	Candidate ReleaseLevel = "candidate"
	Final     ReleaseLevel = "final"
)

// VersionInfo is the parsed form of a release version string.
// Values are never modified after construction.
type VersionInfo struct {
	Major        int
	Minor        int
	Micro        int
	ReleaseLevel ReleaseLevel
	Serial       int
}

var (
	// versionRegex matches "major.minor.micro" with an optional
	// pre-release suffix made of a non-digit marker immediately
	// followed by a build serial. It captures:
	//   1. Major version
	//   2. Minor version
	//   3. Micro (patch) version
	//   4. (optional) release marker, e.g. "a" or "rc"
	//   5. (optional) build serial
	versionRegex = regexp.MustCompile(`^(\d+)\.(\d+)\.(\d+)(?:([^\d\s]+)(\d+))?$`)

	// semverRegex matches the interchange form other tools write, e.g.
	// "1.0.0-alpha.3" or "v2.1.0-rc1+build.5". Build metadata is
	// discarded.
	semverRegex = regexp.MustCompile(`^(\d+)\.(\d+)\.(\d+)(?:-([A-Za-z]+)[.\-]?(\d+)?)?(?:\+[0-9A-Za-z.\-]+)?$`)
)

// maxVersionLength is the maximum allowed length for a version string.
// This prevents potential ReDoS attacks on the regex parser.
const maxVersionLength = 128

// MalformedVersionError is returned when a version string does not
// conform to the expected "major.minor.micro[marker][serial]" shape.
type MalformedVersionError struct {
	Input string
}

func (e *MalformedVersionError) Error() string {
	return fmt.Sprintf("malformed version string %q: expected major.minor.micro with optional pre-release suffix (e.g. 1.0.0a3)", e.Input)
}

// Parse parses a release version string into a VersionInfo.
//
// Supported forms:
//   - "2.3.10"   (final release)
//   - "1.0.0a3"  (alpha, serial 3)
//   - "0.1.0rc2" (release candidate, serial 2)
//   - "1.2.0beta1" and any other non-digit marker followed by digits
//
// When no suffix is present the release level is Final and the serial
// is 0. The markers "a" and "rc" normalize to "alpha" and "candidate";
// every other marker passes through unchanged. Returns a
// *MalformedVersionError when the input does not match.
func Parse(s string) (VersionInfo, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" || len(trimmed) > maxVersionLength {
		return VersionInfo{}, &MalformedVersionError{Input: s}
	}

	matches := versionRegex.FindStringSubmatch(trimmed)
	if matches == nil {
		return VersionInfo{}, &MalformedVersionError{Input: s}
	}

	major, err := strconv.Atoi(matches[1])
	if err != nil {
		return VersionInfo{}, &MalformedVersionError{Input: s}
	}
	minor, err := strconv.Atoi(matches[2])
	if err != nil {
		return VersionInfo{}, &MalformedVersionError{Input: s}
	}
	micro, err := strconv.Atoi(matches[3])
	if err != nil {
		return VersionInfo{}, &MalformedVersionError{Input: s}
	}

	level := Final
	serial := 0
	if matches[4] != "" {
		level = normalizeLevel(matches[4])
		serial, err = strconv.Atoi(matches[5])
		if err != nil {
			return VersionInfo{}, &MalformedVersionError{Input: s}
		}
	}

	return VersionInfo{
		Major:        major,
		Minor:        minor,
		Micro:        micro,
		ReleaseLevel: level,
		Serial:       serial,
	}, nil
}

// MustParse is like Parse but panics on malformed input. It is intended
// for version constants known to be valid at compile time.
func MustParse(s string) VersionInfo {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

// ParseTolerant parses version strings as written by other ecosystems:
// an optional "v" prefix and semver-style pre-release suffixes
// ("1.0.0-alpha.3", "v2.0.0-rc1") are accepted in addition to the
// canonical form. Build metadata after "+" is ignored.
func ParseTolerant(s string) (VersionInfo, error) {
	trimmed := strings.TrimSpace(s)
	trimmed = strings.TrimPrefix(trimmed, "v")

	if v, err := Parse(trimmed); err == nil {
		return v, nil
	}

	if len(trimmed) > maxVersionLength {
		return VersionInfo{}, &MalformedVersionError{Input: s}
	}

	matches := semverRegex.FindStringSubmatch(trimmed)
	if matches == nil {
		return VersionInfo{}, &MalformedVersionError{Input: s}
	}

	major, _ := strconv.Atoi(matches[1])
	minor, _ := strconv.Atoi(matches[2])
	micro, _ := strconv.Atoi(matches[3])

	level := Final
	serial := 0
	if matches[4] != "" {
		level = normalizeLevel(matches[4])
		if matches[5] != "" {
			serial, _ = strconv.Atoi(matches[5])
		}
	}

	return VersionInfo{
		Major:        major,
		Minor:        minor,
		Micro:        micro,
		ReleaseLevel: level,
		Serial:       serial,
	}, nil
}

// normalizeLevel maps raw pre-release markers to canonical labels.
// Unrecognized markers pass through unchanged.
func normalizeLevel(marker string) ReleaseLevel {
	switch marker {
	case "a":
		return Alpha
	case "rc":
		return Candidate
	default:
		return ReleaseLevel(marker)
	}
}

// marker returns the short marker used when rendering a release level,
// the inverse of normalizeLevel.
func marker(level ReleaseLevel) string {
	switch level {
	case Alpha:
		return "a"
	case Candidate:
		return "rc"
	default:
		return string(level)
	}
}

// String renders the canonical form of the version. Parsing the result
// yields an equal VersionInfo.
func (v VersionInfo) String() string {
	var sb strings.Builder
	sb.Grow(16)
	sb.WriteString(strconv.Itoa(v.Major))
	sb.WriteByte('.')
	sb.WriteString(strconv.Itoa(v.Minor))
	sb.WriteByte('.')
	sb.WriteString(strconv.Itoa(v.Micro))
	if !v.IsFinal() || v.Serial != 0 {
		sb.WriteString(marker(v.ReleaseLevel))
		sb.WriteString(strconv.Itoa(v.Serial))
	}
	return sb.String()
}

// SemVer renders the version in semantic-versioning interchange form,
// e.g. "1.0.0-alpha.3". Candidate releases use the conventional "rc"
// label.
func (v VersionInfo) SemVer() string {
	if v.IsFinal() && v.Serial == 0 {
		return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Micro)
	}
	label := string(v.ReleaseLevel)
	if v.ReleaseLevel == Candidate {
		label = "rc"
	}
	return fmt.Sprintf("%d.%d.%d-%s.%d", v.Major, v.Minor, v.Micro, label, v.Serial)
}

// IsFinal reports whether the version is a final (stable) release.
func (v VersionInfo) IsFinal() bool {
	return v.ReleaseLevel == "" || v.ReleaseLevel == Final
}

// IsPreRelease reports whether the version carries a pre-release level.
func (v VersionInfo) IsPreRelease() bool {
	return !v.IsFinal()
}

// Compare compares two versions. It returns -1 if v < other, 0 if
// v == other, and +1 if v > other. A pre-release sorts before the final
// release with the same numeric triple; pre-release levels order by
// their marker ("a" < "beta" < "rc"), then by serial.
func (v VersionInfo) Compare(other VersionInfo) int {
	if c := compareInt(v.Major, other.Major); c != 0 {
		return c
	}
	if c := compareInt(v.Minor, other.Minor); c != 0 {
		return c
	}
	if c := compareInt(v.Micro, other.Micro); c != 0 {
		return c
	}

	switch {
	case v.IsFinal() && other.IsFinal():
		return compareInt(v.Serial, other.Serial)
	case v.IsFinal():
		return 1
	case other.IsFinal():
		return -1
	}

	if c := strings.Compare(marker(v.ReleaseLevel), marker(other.ReleaseLevel)); c != 0 {
		return c
	}
	return compareInt(v.Serial, other.Serial)
}

// Equal reports whether two versions are identical.
func (v VersionInfo) Equal(other VersionInfo) bool {
	return v.Compare(other) == 0 && v.ReleaseLevel == other.ReleaseLevel
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
