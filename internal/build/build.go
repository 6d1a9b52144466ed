// Package build holds version information set at link time with -ldflags.
package build

var (
	// Version is the released version of bom.
	Version = "dev"
	// Commit is the git commit the binary was built from.
	Commit = "none"
	// Date is the build date.
	Date = "unknown"
)
