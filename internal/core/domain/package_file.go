// Package domain contains the core models of the pack installer: package files,
// their classification, decoded device attributes and the board descriptors
// synthesized from them.
package domain

import (
	"path/filepath"
	"strings"
)

// PackageFile is a file found under an extracted vendor pack.
// It is a value; its identity is Path.
type PackageFile struct {
	// Path is the absolute path of the file.
	Path string
	// Name is the final path element, extension included.
	Name string
	// Stem is Name without its extension.
	Stem string
	// Ext is the extension including the leading dot, or empty.
	Ext string
	// Parent is the name of the immediate parent directory.
	Parent string
}

// NewPackageFile builds a PackageFile from a path.
func NewPackageFile(path string) PackageFile {
	clean := filepath.Clean(path)
	name := filepath.Base(clean)
	ext := filepath.Ext(name)
	return PackageFile{
		Path:   clean,
		Name:   name,
		Stem:   strings.TrimSuffix(name, ext),
		Ext:    ext,
		Parent: filepath.Base(filepath.Dir(clean)),
	}
}
