// Package fs provides file system adapters for discovering pack files and installing them.
package fs

import (
	"errors"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"regexp"

	"go.trai.ch/dxpatch/internal/core/domain"
	"go.trai.ch/zerr"
)

// packFilter selects compilation-support files by their slash path relative to the pack root:
// numbered headers and link artifacts, and device-specs fragments, below gcc/ or include/.
var packFilter = regexp.MustCompile(`^(gcc|include)/.*(/specs-[^/]*|\d+\.[aoh])$`)

// Walker provides file walking functionality.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkFiles yields the files below root in lexical order, skipping the named directories.
// Walk errors are yielded with an empty path; the caller decides whether to stop.
func (w *Walker) WalkFiles(root string, ignores []string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				if !yield("", err) {
					return filepath.SkipAll
				}
				return nil
			}

			if d.IsDir() {
				if path != root && shouldSkipDir(d.Name(), ignores) {
					return filepath.SkipDir
				}
				return nil
			}

			if !yield(path, nil) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}

// Discover returns the compilation-support files of the extracted pack at dir.
func (w *Walker) Discover(dir string) ([]domain.PackageFile, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(zerr.Wrap(domain.ErrSourceNotFound, "pack directory does not exist"), "path", dir)
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to stat pack directory"), "path", dir)
	}
	if !info.IsDir() {
		return nil, zerr.With(zerr.Wrap(domain.ErrSourceNotFound, "pack source is not a directory"), "path", dir)
	}

	var files []domain.PackageFile
	for path, err := range w.WalkFiles(dir, nil) {
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to walk pack"), "path", dir)
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to relativize path"), "path", path)
		}
		if packFilter.MatchString(filepath.ToSlash(rel)) {
			files = append(files, domain.NewPackageFile(path))
		}
	}
	return files, nil
}

func shouldSkipDir(name string, ignores []string) bool {
	if name == ".git" || name == "__MACOSX" {
		return true
	}
	for _, ignore := range ignores {
		if matched, _ := filepath.Match(ignore, name); matched {
			return true
		}
	}
	return false
}
