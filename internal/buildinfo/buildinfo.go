// Package buildinfo exposes the version stamped into the binary.
//
// The release workflow overrides these defaults with -ldflags; a source
// build reports "dev".
package buildinfo

var (
	Version    = "dev"
	CommitHash = "none"
	BuildDate  = "unknown"
)

// Release reports whether this binary carries a stamped release version.
func Release() bool {
	return Version != "dev"
}
