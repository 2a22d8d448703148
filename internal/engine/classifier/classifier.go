// Package classifier routes package files to their place in the toolchain tree.
package classifier

import (
	"path/filepath"
	"strings"
	"sync"

	"go.trai.ch/dxpatch/internal/core/domain"
	"go.trai.ch/dxpatch/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	headerExt   = ".h"
	archiveExt  = ".a"
	objectExt   = ".o"
	specsPrefix = "specs-"
)

// Classifier decides the class of a package file and where it is installed.
// The device-specs directory is resolved once, on first use.
type Classifier struct {
	root       string
	gccVersion string
	lister     ports.CompilerVersionLister

	specsDir func() (string, error)
}

// New creates a Classifier for the toolchain at root. When gccVersion is set it pins the
// compiler version receiving device-specs fragments; otherwise exactly one version must exist.
func New(root, gccVersion string, lister ports.CompilerVersionLister) *Classifier {
	c := &Classifier{
		root:       root,
		gccVersion: gccVersion,
		lister:     lister,
	}
	c.specsDir = sync.OnceValues(c.resolveSpecsDir)
	return c
}

// Classify returns the class of the file. Rules are applied in order: header, link artifact,
// specs fragment.
func (c *Classifier) Classify(file domain.PackageFile) (domain.FileClass, error) {
	switch ext := strings.ToLower(file.Ext); {
	case ext == headerExt:
		return domain.ClassHeader, nil
	case ext == archiveExt, ext == objectExt:
		return domain.ClassLinkArtifact, nil
	case strings.HasPrefix(file.Name, specsPrefix):
		return domain.ClassSpecsFragment, nil
	default:
		return 0, zerr.With(zerr.Wrap(domain.ErrUnclassifiableFile, "unrecognized file shape"), "path", file.Path)
	}
}

// Destination returns the full path the file is copied to.
func (c *Classifier) Destination(file domain.PackageFile, class domain.FileClass) (string, error) {
	switch class {
	case domain.ClassHeader:
		return filepath.Join(domain.HeaderDir(c.root), file.Name), nil
	case domain.ClassLinkArtifact:
		return filepath.Join(domain.LibraryDir(c.root, file.Parent), file.Name), nil
	case domain.ClassSpecsFragment:
		dir, err := c.specsDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, file.Name), nil
	default:
		return "", zerr.With(zerr.Wrap(domain.ErrUnclassifiableFile, "unknown file class"), "path", file.Path)
	}
}

func (c *Classifier) resolveSpecsDir() (string, error) {
	versions, err := c.lister.CompilerVersions(c.root)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to list compiler versions"), "root", c.root)
	}

	if c.gccVersion != "" {
		for _, v := range versions {
			if v == c.gccVersion {
				return domain.SpecsDir(c.root, v), nil
			}
		}
		err := zerr.Wrap(domain.ErrAmbiguousSpecsDestination, "pinned compiler version not installed")
		err = zerr.With(err, "gcc_version", c.gccVersion)
		return "", zerr.With(err, "root", domain.CompilerRoot(c.root))
	}

	if len(versions) != 1 {
		err := zerr.Wrap(domain.ErrAmbiguousSpecsDestination, "expected exactly one compiler version")
		err = zerr.With(err, "found", strings.Join(versions, ","))
		return "", zerr.With(err, "root", domain.CompilerRoot(c.root))
	}
	return domain.SpecsDir(c.root, versions[0]), nil
}
