// Package version reports the build version of the gradlever binary itself.
package version

import "runtime/debug"

// version is set at build time via
// -ldflags "-X github.com/gradlever/gradlever/internal/version.version=1.0.0".
var version = ""

// readBuildInfo is swapped in tests.
var readBuildInfo = debug.ReadBuildInfo

// GetVersion returns the ldflags version, then the module version from the
// embedded build info, then "devel".
func GetVersion() string {
	if version != "" {
		return version
	}
	if info, ok := readBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return "devel"
}
