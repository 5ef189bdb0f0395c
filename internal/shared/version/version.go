// Package version reports the build version of the binary.
package version

import (
	"strings"

	"golang.org/x/mod/semver"
)

// Current is overridden at build time:
//
//	go build -ldflags "-X github.com/nexus-desk/nexus/internal/shared/version.Current=1.4.0"
var Current = "dev"

// Normalize ensures version string has "v" prefix for semver compatibility.
// Examples: "1.2.3" -> "v1.2.3", "v1.2.3" -> "v1.2.3"
func Normalize(version string) string {
	version = strings.TrimSpace(version)
	if version == "" {
		return ""
	}
	if !strings.HasPrefix(version, "v") {
		return "v" + version
	}
	return version
}

// IsRelease reports whether v is a valid semantic version, as opposed to a
// development build such as "dev".
func IsRelease(v string) bool {
	return semver.IsValid(Normalize(v))
}

// Info is the payload of the version endpoint.
type Info struct {
	Version string `json:"version"`
	Release bool   `json:"release"`
}

func Get() Info {
	if !IsRelease(Current) {
		return Info{Version: Current}
	}
	return Info{Version: Normalize(Current), Release: true}
}
