package version

import (
	"errors"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  VersionInfo
	}{
		{
			input: "1.0.0a3",
			want:  VersionInfo{Major: 1, Minor: 0, Micro: 0, ReleaseLevel: Alpha, Serial: 3},
		},
		{
			input: "2.3.10",
			want:  VersionInfo{Major: 2, Minor: 3, Micro: 10, ReleaseLevel: Final, Serial: 0},
		},
		{
			input: "0.1.0rc2",
			want:  VersionInfo{Major: 0, Minor: 1, Micro: 0, ReleaseLevel: Candidate, Serial: 2},
		},
		{
			input: "1.2.0beta1",
			want:  VersionInfo{Major: 1, Minor: 2, Micro: 0, ReleaseLevel: Beta, Serial: 1},
		},
		{
			// Unrecognized markers pass through unchanged.
			input: "3.0.0dev12",
			want:  VersionInfo{Major: 3, Minor: 0, Micro: 0, ReleaseLevel: "dev", Serial: 12},
		},
		{
			input: "0.0.0",
			want:  VersionInfo{Major: 0, Minor: 0, Micro: 0, ReleaseLevel: Final, Serial: 0},
		},
		{
			// Surrounding whitespace is tolerated.
			input: "  1.2.3  ",
			want:  VersionInfo{Major: 1, Minor: 2, Micro: 3, ReleaseLevel: Final, Serial: 0},
		},
		{
			input: "10.20.30a0",
			want:  VersionInfo{Major: 10, Minor: 20, Micro: 30, ReleaseLevel: Alpha, Serial: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) returned error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParse_Malformed(t *testing.T) {
	inputs := []string{
		"",
		"abc",
		"1",
		"1.0",
		"1.0.0a",      // marker without serial
		"1.0.0-",      // dangling separator
		"1.0.x",       // non-digit component
		"1.0.0 final", // embedded whitespace
		"v1.0.0",      // prefix only accepted by ParseTolerant
		strings.Repeat("1", 200) + ".0.0",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := Parse(input)
			if err == nil {
				t.Fatalf("Parse(%q) succeeded, want error", input)
			}

			var malformed *MalformedVersionError
			if !errors.As(err, &malformed) {
				t.Fatalf("Parse(%q) error = %T, want *MalformedVersionError", input, err)
			}
			if malformed.Input != input {
				t.Errorf("error input = %q, want %q", malformed.Input, input)
			}
			if !strings.Contains(err.Error(), input) && input != "" {
				t.Errorf("error message %q does not name the offending string", err.Error())
			}
		})
	}
}

func TestParse_Idempotence(t *testing.T) {
	inputs := []string{"1.0.0a3", "2.3.10", "0.1.0rc2", "1.2.0beta1", "3.0.0dev7", "4.5.6final2"}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			first, err := Parse(input)
			if err != nil {
				t.Fatalf("Parse(%q): %v", input, err)
			}
			second, err := Parse(first.String())
			if err != nil {
				t.Fatalf("Parse(%q): %v", first.String(), err)
			}
			if first != second {
				t.Errorf("re-parse of %q: got %+v, want %+v", first.String(), second, first)
			}
		})
	}
}

func TestMustParse_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParse on malformed input did not panic")
		}
	}()
	MustParse("not-a-version")
}

func TestParseTolerant(t *testing.T) {
	tests := []struct {
		input string
		want  VersionInfo
	}{
		{"v1.2.3", VersionInfo{Major: 1, Minor: 2, Micro: 3, ReleaseLevel: Final}},
		{"1.0.0-alpha.3", VersionInfo{Major: 1, Minor: 0, Micro: 0, ReleaseLevel: Alpha, Serial: 3}},
		{"2.0.0-rc.1", VersionInfo{Major: 2, Minor: 0, Micro: 0, ReleaseLevel: Candidate, Serial: 1}},
		{"v2.0.0-rc1", VersionInfo{Major: 2, Minor: 0, Micro: 0, ReleaseLevel: Candidate, Serial: 1}},
		{"1.0.0-beta", VersionInfo{Major: 1, Minor: 0, Micro: 0, ReleaseLevel: Beta, Serial: 0}},
		{"1.0.0-beta-2", VersionInfo{Major: 1, Minor: 0, Micro: 0, ReleaseLevel: Beta, Serial: 2}},
		{"1.0.0+build.5", VersionInfo{Major: 1, Minor: 0, Micro: 0, ReleaseLevel: Final}},
		{"1.0.0-alpha.3+abc", VersionInfo{Major: 1, Minor: 0, Micro: 0, ReleaseLevel: Alpha, Serial: 3}},
		{"1.0.0a3", VersionInfo{Major: 1, Minor: 0, Micro: 0, ReleaseLevel: Alpha, Serial: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseTolerant(tt.input)
			if err != nil {
				t.Fatalf("ParseTolerant(%q): %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseTolerant(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}

	if _, err := ParseTolerant("not.a.version"); err == nil {
		t.Error("ParseTolerant accepted garbage input")
	}
}

func TestVersionInfo_String(t *testing.T) {
	tests := []struct {
		v    VersionInfo
		want string
	}{
		{VersionInfo{Major: 1, Minor: 0, Micro: 0, ReleaseLevel: Alpha, Serial: 3}, "1.0.0a3"},
		{VersionInfo{Major: 2, Minor: 3, Micro: 10, ReleaseLevel: Final}, "2.3.10"},
		{VersionInfo{Major: 0, Minor: 1, Micro: 0, ReleaseLevel: Candidate, Serial: 2}, "0.1.0rc2"},
		{VersionInfo{Major: 1, Minor: 2, Micro: 0, ReleaseLevel: Beta, Serial: 1}, "1.2.0beta1"},
		{VersionInfo{}, "0.0.0"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.v.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestVersionInfo_SemVer(t *testing.T) {
	tests := []struct {
		v    VersionInfo
		want string
	}{
		{VersionInfo{Major: 1, Minor: 0, Micro: 0, ReleaseLevel: Alpha, Serial: 3}, "1.0.0-alpha.3"},
		{VersionInfo{Major: 0, Minor: 1, Micro: 0, ReleaseLevel: Candidate, Serial: 2}, "0.1.0-rc.2"},
		{VersionInfo{Major: 2, Minor: 3, Micro: 10, ReleaseLevel: Final}, "2.3.10"},
		{VersionInfo{Major: 1, Minor: 2, Micro: 0, ReleaseLevel: Beta, Serial: 1}, "1.2.0-beta.1"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.v.SemVer(); got != tt.want {
				t.Errorf("SemVer() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestVersionInfo_Compare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"1.0.0", "1.0.0", 0},
		{"1.0.0", "2.0.0", -1},
		{"2.0.0", "1.9.9", 1},
		{"1.2.0", "1.10.0", -1},
		{"1.0.0a3", "1.0.0", -1},  // pre-release < final
		{"1.0.0", "1.0.0rc1", 1},  // final > pre-release
		{"1.0.0a1", "1.0.0a2", -1},
		{"1.0.0a2", "1.0.0rc1", -1},    // alpha < candidate
		{"1.0.0a2", "1.0.0beta1", -1},  // alpha < beta
		{"1.0.0beta9", "1.0.0rc1", -1}, // beta < candidate
		{"1.0.0rc2", "1.0.0rc2", 0},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_vs_"+tt.b, func(t *testing.T) {
			a := MustParse(tt.a)
			b := MustParse(tt.b)
			if got := a.Compare(b); got != tt.want {
				t.Errorf("Compare(%s, %s) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
			if got := b.Compare(a); got != -tt.want {
				t.Errorf("Compare(%s, %s) = %d, want %d", tt.b, tt.a, got, -tt.want)
			}
		})
	}
}

func TestVersionInfo_Predicates(t *testing.T) {
	if !MustParse("1.0.0").IsFinal() {
		t.Error("1.0.0 should be final")
	}
	if MustParse("1.0.0a1").IsFinal() {
		t.Error("1.0.0a1 should not be final")
	}
	if !MustParse("1.0.0rc1").IsPreRelease() {
		t.Error("1.0.0rc1 should be a pre-release")
	}
}
