package fs

import (
	"errors"
	"io/fs"
	"os"
	"slices"

	"go.trai.ch/dxpatch/internal/core/domain"
	"go.trai.ch/zerr"
)

// Toolchain inspects an installed avr-gcc toolchain.
type Toolchain struct{}

// NewToolchain creates a new Toolchain.
func NewToolchain() *Toolchain {
	return &Toolchain{}
}

// CompilerVersions returns the sorted compiler version directories of the toolchain at root.
// A toolchain without a compiler root has no versions.
func (t *Toolchain) CompilerVersions(root string) ([]string, error) {
	dir := domain.CompilerRoot(root)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read compiler root"), "path", dir)
	}

	var versions []string
	for _, e := range entries {
		if e.IsDir() {
			versions = append(versions, e.Name())
		}
	}
	slices.Sort(versions)
	return versions, nil
}
