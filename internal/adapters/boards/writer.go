// Package boards writes board descriptors for PlatformIO.
package boards

import (
	"os"
	"path/filepath"

	"go.trai.ch/dxpatch/internal/core/domain"
	"go.trai.ch/dxpatch/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.BoardWriter = (*Writer)(nil)

// Writer implements ports.BoardWriter.
type Writer struct{}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Write stores the encoded descriptor as dir/boards/<NAME>.json and returns its path.
func (w *Writer) Write(dir string, board domain.BoardDescriptor) (string, error) {
	path := domain.BoardPath(dir, board.Name)
	if len(board.Document) == 0 {
		return "", zerr.With(zerr.Wrap(domain.ErrBoardWriteFailed, "descriptor has no document"), "device", board.Name)
	}

	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return "", writeError(err, path)
	}

	//nolint:gosec // Board files are meant to be world-readable
	if err := os.WriteFile(path, board.Document, domain.FilePerm); err != nil {
		return "", writeError(err, path)
	}
	return path, nil
}

func writeError(err error, path string) error {
	return zerr.With(zerr.Wrap(err, domain.ErrBoardWriteFailed.Error()), "path", path)
}
