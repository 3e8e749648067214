// Package pbpkit holds application-level metadata shared by commands.
package pbpkit

var (
	// Version is set by build flags.
	Version = "v0.1.0+dev"

	// Build is the build timestamp, set by build flags.
	Build = "n/a"
)
