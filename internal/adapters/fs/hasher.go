package fs

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"
)

// Hasher computes content digests of files.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// ComputeFileHash computes the XXHash of a file's content.
func (h *Hasher) ComputeFileHash(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}

	return hasher.Sum64(), nil
}

// Digest returns the hex XXHash of a file's content.
func (h *Hasher) Digest(path string) (string, error) {
	sum, err := h.ComputeFileHash(path)
	if err != nil {
		return "", err
	}
	return FormatDigest(sum), nil
}

// DigestIfExists is Digest, returning an empty digest when the file is missing.
func (h *Hasher) DigestIfExists(path string) (string, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	return h.Digest(path)
}

// FormatDigest renders a hash the way install records store it, e.g. "xxh64:00000000deadbeef".
func FormatDigest(sum uint64) string {
	return fmt.Sprintf("xxh64:%016x", sum)
}
