package version

import (
	"errors"
	"testing"
)

func resetInfo() {
	rawVersion = ""
	currentInfo = VersionInfo{}
	initialized = false
}

func TestInit(t *testing.T) {
	t.Cleanup(resetInfo)
	resetInfo()

	info, err := Init("1.0.0a3")
	if err != nil {
		t.Fatalf("Init: %v", err)
	}

	want := VersionInfo{Major: 1, Minor: 0, Micro: 0, ReleaseLevel: Alpha, Serial: 3}
	if info != want {
		t.Errorf("Init returned %+v, want %+v", info, want)
	}
	if Current() != want {
		t.Errorf("Current() = %+v, want %+v", Current(), want)
	}
	if Raw() != "1.0.0a3" {
		t.Errorf("Raw() = %q, want %q", Raw(), "1.0.0a3")
	}
	if !Initialized() {
		t.Error("Initialized() = false after successful Init")
	}
}

func TestInit_Malformed(t *testing.T) {
	t.Cleanup(resetInfo)
	resetInfo()

	_, err := Init("garbage")
	if err == nil {
		t.Fatal("Init accepted malformed input")
	}

	var malformed *MalformedVersionError
	if !errors.As(err, &malformed) {
		t.Fatalf("error = %T, want *MalformedVersionError", err)
	}

	// Failed Init must not install partial state.
	if Initialized() {
		t.Error("Initialized() = true after failed Init")
	}
	if Current() != (VersionInfo{}) {
		t.Errorf("Current() = %+v, want zero value", Current())
	}
}

func TestInitDefault(t *testing.T) {
	t.Cleanup(resetInfo)
	resetInfo()

	info, err := InitDefault()
	if err != nil {
		t.Fatalf("InitDefault: %v", err)
	}
	if Raw() != currentVersion {
		t.Errorf("Raw() = %q, want %q", Raw(), currentVersion)
	}
	if info.String() != currentVersion {
		t.Errorf("round-trip of compiled-in version: got %q, want %q", info.String(), currentVersion)
	}
}
