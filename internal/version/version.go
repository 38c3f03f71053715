// Package version exposes build-time version information.
// The variables are overridden with -ldflags during release builds.
package version

var (
	// Version is the semantic version of the build.
	//
	//nolint:gochecknoglobals // Set via -ldflags at build time.
	Version = "0.1.0"

	// Commit is the git commit the binary was built from.
	//
	//nolint:gochecknoglobals // Set via -ldflags at build time.
	Commit = "none"

	// BuildTime is the time the binary was built.
	//
	//nolint:gochecknoglobals // Set via -ldflags at build time.
	BuildTime = "unknown"
)

// Short returns the version string only.
func Short() string {
	return Version
}

// Full returns the version together with commit and build time.
func Full() string {
	return "version: " + Version + ", commit: " + Commit + ", built at: " + BuildTime
}
