// Package build holds build-time information.
package build

// These default to development values and can be overwritten by linker flags.
var (
	// Version is the application version.
	Version = "dev"
	// Commit is the revision the binary was built from.
	Commit = "none"
	// Date is the build date.
	Date = "unknown"
)
