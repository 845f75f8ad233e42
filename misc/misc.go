// Package misc provides program build identity.
package misc

import "runtime/debug"

// Overridable at build time, for example:
//
//	go build -ldflags="-X github.com/bratpeki/bookgen/misc.version=1.2.3"
var (
	name    = "bgen"
	version = "development"
	gitHash = ""
)

// GetAppName returns short program name used in logs, reports and banners.
func GetAppName() string {
	return name
}

// GetVersion returns program version.
func GetVersion() string {
	if version != "development" {
		return version
	}
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		return bi.Main.Version
	}
	return version
}

// GetGitHash returns VCS revision the program was built from.
func GetGitHash() string {
	if gitHash != "" {
		return gitHash
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" {
				return s.Value
			}
		}
	}
	return "unknown"
}
