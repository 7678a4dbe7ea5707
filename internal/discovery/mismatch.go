package discovery

// DetectMismatches compares every source against the primary version.
// Comparison happens on the parsed records, so "v1.0.0-alpha.3" in a
// package.json agrees with "1.0.0a3" in a .version file.
func DetectMismatches(result *Result) []Mismatch {
	mismatches := make([]Mismatch, 0)

	primary := result.Primary()
	if primary == nil {
		return mismatches
	}

	for i := range result.Sources {
		src := &result.Sources[i]
		if src.Path == primary.Path {
			continue
		}

		if !src.Info.Equal(primary.Info) {
			mismatches = append(mismatches, Mismatch{
				Source:   src.RelPath,
				Expected: primary.Info.String(),
				Actual:   src.Raw,
			})
		}
	}

	return mismatches
}
