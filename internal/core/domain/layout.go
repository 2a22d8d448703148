package domain

import "path/filepath"

const (
	// StateDirName is the directory dxpatch keeps inside the toolchain root.
	StateDirName = ".dxpatch"

	// StateFileName is the name of the install state file.
	StateFileName = "installed.json"

	// ConfigFileName is the default configuration file.
	ConfigFileName = "dxpatch.yaml"

	// TemplateFileName is the default board template.
	TemplateFileName = "board.json"

	// BoardsDirName is the directory board descriptors are written into.
	BoardsDirName = "boards"

	// DefaultIndexURL is the vendor pack repository.
	DefaultIndexURL = "http://packs.download.atmel.com/"

	// IndexFileName is the pack index inside the repository.
	IndexFileName = "index.idx"

	// ToolchainPackage is the PlatformIO package holding avr-gcc.
	ToolchainPackage = "toolchain-atmelavr"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the permission of installed files (rw-r--r--).
	FilePerm = 0o644
)

// HeaderDir returns the directory device headers are installed into.
func HeaderDir(toolchain string) string {
	return filepath.Join(toolchain, "avr", "include", "avr")
}

// LibraryDir returns the directory link artifacts of one device sub-variant are installed into.
func LibraryDir(toolchain, variant string) string {
	return filepath.Join(toolchain, "avr", "lib", variant)
}

// CompilerRoot returns the directory holding one directory per installed compiler version.
func CompilerRoot(toolchain string) string {
	return filepath.Join(toolchain, "lib", "gcc", "avr")
}

// SpecsDir returns the device-specs directory of a compiler version.
func SpecsDir(toolchain, version string) string {
	return filepath.Join(CompilerRoot(toolchain), version, "device-specs")
}

// StatePath returns the install state file of a toolchain.
func StatePath(toolchain string) string {
	return filepath.Join(toolchain, StateDirName, StateFileName)
}

// BoardPath returns where the descriptor of the named device is written.
func BoardPath(boardsDir, name string) string {
	return filepath.Join(boardsDir, BoardsDirName, name+".json")
}
