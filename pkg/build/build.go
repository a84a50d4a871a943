// Package build holds build-time version information, populated via ldflags.
package build

var (
	Version = "v0.0.0-dev"
	Commit  = "none"
	Date    = "unknown"
	BuiltBy = "unknown"
)
