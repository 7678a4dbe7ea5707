package version

// currentVersion is the relver release string.
// DO NOT EDIT THIS DIRECTLY! It is managed by the release workflow.
const currentVersion = "0.5.0rc1"

// Process-wide version metadata, populated exactly once by Init during
// application startup and read-only afterwards.
var (
	rawVersion  string
	currentInfo VersionInfo
	initialized bool
)

// Init parses raw and installs it as the process-wide version metadata.
// It is called once from the application's startup sequence; a
// malformed string aborts startup with a *MalformedVersionError instead
// of surfacing later as a confusing zero value.
func Init(raw string) (VersionInfo, error) {
	info, err := Parse(raw)
	if err != nil {
		return VersionInfo{}, err
	}

	rawVersion = raw
	currentInfo = info
	initialized = true
	return info, nil
}

// InitDefault installs the compiled-in relver release string.
func InitDefault() (VersionInfo, error) {
	return Init(currentVersion)
}

// Current returns the process-wide version metadata. It returns the
// zero VersionInfo when Init has not run.
func Current() VersionInfo {
	return currentInfo
}

// Raw returns the unparsed version string passed to Init.
func Raw() string {
	return rawVersion
}

// Initialized reports whether Init has completed successfully.
func Initialized() bool {
	return initialized
}
