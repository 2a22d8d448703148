// Package atpack downloads and unpacks vendor pack archives.
package atpack

import (
	"archive/zip"
	"context"
	"errors"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.trai.ch/dxpatch/internal/core/domain"
	"go.trai.ch/dxpatch/internal/core/ports"
	"go.trai.ch/zerr"
)

// Packs are tens of megabytes; the timeout covers the whole transfer.
const httpClientTimeout = 10 * time.Minute

var _ ports.PackFetcher = (*Fetcher)(nil)

// Fetcher implements ports.PackFetcher.
type Fetcher struct {
	httpClient *http.Client
	logger     ports.Logger
}

// New creates a Fetcher with the default HTTP client.
func New(logger ports.Logger) *Fetcher {
	return NewWithClient(&http.Client{Timeout: httpClientTimeout}, logger)
}

// NewWithClient creates a Fetcher using client.
func NewWithClient(client *http.Client, logger ports.Logger) *Fetcher {
	return &Fetcher{httpClient: client, logger: logger}
}

// Download stores the resource at url in dest. An existing dest is reused.
func (f *Fetcher) Download(ctx context.Context, url, dest string) error {
	if exists(dest) {
		f.logger.Info("using local " + dest)
		return nil
	}
	f.logger.Info("downloading " + url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return downloadError(err, url)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return downloadError(err, url)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		statusErr := zerr.With(zerr.Wrap(domain.ErrDownloadFailed, "unexpected status"), "status_code", resp.StatusCode)
		return zerr.With(statusErr, "url", url)
	}

	if err := atomicWrite(dest, resp.Body); err != nil {
		return downloadError(err, url)
	}
	return nil
}

// Extract unpacks the zip archive into dir. An existing dir is reused.
func (f *Fetcher) Extract(archive, dir string) error {
	if exists(dir) {
		f.logger.Debug("using extracted " + dir)
		return nil
	}
	f.logger.Info("extracting " + archive + " into " + dir)

	r, err := zip.OpenReader(archive)
	if errors.Is(err, zip.ErrInsecurePath) {
		_ = r.Close()
		return extractError(zerr.Wrap(domain.ErrUnsafeArchivePath, "archive holds insecure paths"), archive)
	}
	if err != nil {
		return extractError(err, archive)
	}
	defer r.Close() //nolint:errcheck // Best effort close in defer

	if err := os.MkdirAll(filepath.Dir(dir), domain.DirPerm); err != nil {
		return extractError(err, archive)
	}
	// Unpack next to dir and rename, so an interrupted run never leaves a partial tree behind.
	tmp, err := os.MkdirTemp(filepath.Dir(dir), "."+filepath.Base(dir)+".*")
	if err != nil {
		return extractError(err, archive)
	}
	defer func() {
		_ = os.RemoveAll(tmp)
	}()

	for _, entry := range r.File {
		if err := extractEntry(entry, tmp); err != nil {
			return extractError(err, archive)
		}
	}

	if err := os.Rename(tmp, dir); err != nil {
		return extractError(err, archive)
	}
	return nil
}

func extractEntry(entry *zip.File, root string) error {
	target, err := safeJoin(root, entry.Name)
	if err != nil {
		return err
	}

	if entry.FileInfo().IsDir() {
		return os.MkdirAll(target, domain.DirPerm)
	}
	if err := os.MkdirAll(filepath.Dir(target), domain.DirPerm); err != nil {
		return err
	}

	src, err := entry.Open()
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrExtractFailed.Error()), "entry", entry.Name)
	}
	defer src.Close() //nolint:errcheck // Best effort close in defer

	//nolint:gosec // Target is confined to root by safeJoin
	out, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, domain.FilePerm)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrExtractFailed.Error()), "entry", entry.Name)
	}
	//nolint:gosec // Archive size is bounded by the vendor pack
	if _, err := io.Copy(out, src); err != nil {
		_ = out.Close()
		return zerr.With(zerr.Wrap(err, domain.ErrExtractFailed.Error()), "entry", entry.Name)
	}
	return out.Close()
}

// safeJoin resolves an archive entry name below root, rejecting names that escape it.
func safeJoin(root, name string) (string, error) {
	clean := filepath.FromSlash(strings.ReplaceAll(name, `\`, "/"))
	if filepath.IsAbs(clean) || filepath.VolumeName(clean) != "" {
		return "", zerr.With(zerr.Wrap(domain.ErrUnsafeArchivePath, "absolute entry"), "entry", name)
	}
	target := filepath.Join(root, clean)
	rel, err := filepath.Rel(root, target)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", zerr.With(zerr.Wrap(domain.ErrUnsafeArchivePath, "entry leaves extraction directory"), "entry", name)
	}
	return target, nil
}

func atomicWrite(dest string, r io.Reader) error {
	dir := filepath.Dir(dest)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(dest)+".*.part")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		_ = os.Remove(tmpName)
	}()

	if _, err := io.Copy(tmp, r); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, dest)
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, fs.ErrNotExist)
}

func downloadError(err error, url string) error {
	return zerr.With(zerr.Wrap(err, domain.ErrDownloadFailed.Error()), "url", url)
}

func extractError(err error, archive string) error {
	return zerr.With(zerr.Wrap(err, domain.ErrExtractFailed.Error()), "archive", archive)
}
