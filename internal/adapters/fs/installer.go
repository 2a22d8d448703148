package fs

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/dxpatch/internal/core/domain"
	"go.trai.ch/dxpatch/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Installer = (*Installer)(nil)

// Installer copies package files into the toolchain.
type Installer struct {
	hasher *Hasher
}

// NewInstaller creates a new Installer.
func NewInstaller(hasher *Hasher) *Installer {
	return &Installer{hasher: hasher}
}

// Install copies the instruction's source to its destination with mode 0644.
// A destination already holding the same content is left alone.
func (i *Installer) Install(ctx context.Context, instr domain.InstallInstruction) (domain.InstallOutcome, string, error) {
	if err := ctx.Err(); err != nil {
		return 0, "", err
	}

	src, dest := instr.Source.Path, instr.Destination

	digest, err := i.hasher.Digest(src)
	if err != nil {
		return 0, "", installError(err, src, dest)
	}

	current, err := i.hasher.DigestIfExists(dest)
	if err != nil {
		return 0, "", installError(err, src, dest)
	}
	if current == digest {
		// Content matches; only the mode may need fixing.
		if err := os.Chmod(dest, domain.FilePerm); err != nil {
			return 0, "", installError(err, src, dest)
		}
		return domain.OutcomeUnchanged, digest, nil
	}

	if err := copyFile(src, dest); err != nil {
		return 0, "", installError(err, src, dest)
	}
	return domain.OutcomeCopied, digest, nil
}

// Remove deletes an installed file. A missing file is not an error.
func (i *Installer) Remove(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return zerr.With(zerr.Wrap(err, "failed to remove installed file"), "path", path)
	}
	return nil
}

// copyFile writes src to a temporary file next to dest and renames it into place.
func copyFile(src, dest string) error {
	in, err := os.Open(src) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return err
	}
	defer in.Close() //nolint:errcheck // Best effort close in defer

	dir := filepath.Dir(dest)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(dest)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		_ = os.Remove(tmpName) // No-op after a successful rename.
	}()

	if _, err := io.Copy(tmp, in); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return err
	}
	return os.Rename(tmpName, dest)
}

func installError(err error, src, dest string) error {
	wrapped := zerr.Wrap(err, domain.ErrInstallFailed.Error())
	wrapped = zerr.With(wrapped, "source", src)
	return zerr.With(wrapped, "destination", dest)
}
