package domain

// Config holds the resolved settings for one run.
// Every path the core needs is carried explicitly here; nothing reads the process environment later.
type Config struct {
	// Toolchain is the root of the installed AVR toolchain.
	Toolchain string
	// GCCVersion pins the compiler version directory that receives device-specs fragments.
	GCCVersion string
	// BoardsDir is the directory under which boards/<NAME>.json files are written.
	BoardsDir string
	// Template is the path of the board descriptor template.
	Template string
	// IndexURL is the base URL of the vendor pack repository.
	IndexURL string
	// Packs lists the pack names to fetch when no Sources are given.
	Packs []string
	// Sources lists already extracted pack directories.
	Sources []string
	// CacheDir holds downloaded archives and their extracted trees.
	CacheDir string
	// Provision installs the toolchain with PlatformIO when it is missing.
	Provision bool
}
