package gui

import (
	"strings"

	"golang.org/x/mod/semver"
)

// normalize adds a "v" prefix to the version string if it's missing.
// The semver package strictly requires the "v" prefix (e.g., "v1.2.3").
func normalize(v string) string {
	v = strings.TrimSpace(v)
	if !strings.HasPrefix(v, "v") {
		return "v" + v
	}
	return v
}

// displayVersion returns the canonical form of a release version, or
// "dev" for builds without one.
func displayVersion(v string) string {
	norm := normalize(v)
	if !semver.IsValid(norm) {
		return "dev"
	}
	return semver.Canonical(norm)
}
