package version

import (
	"fmt"
	"runtime"
)

var (
	// Version is the semantic version, set with -ldflags "-X .../version.Version=...".
	Version = "0.1.0"
	// Commit is the short git SHA of the build.
	Commit = "none"
	// BuildTime is the UTC build timestamp.
	BuildTime = "unknown"
)

// Short returns only the semantic version.
func Short() string {
	return Version
}

// Full returns the version with commit, build time and Go toolchain.
func Full() string {
	return fmt.Sprintf("solar-cycle %s (commit %s, built %s, %s)", Version, Commit, BuildTime, runtime.Version())
}
