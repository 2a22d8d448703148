package ports

import (
	"context"

	"go.trai.ch/dxpatch/internal/core/domain"
)

// PackIndex resolves pack names against the vendor's pack index.
//
//go:generate go run go.uber.org/mock/mockgen -source=packs.go -destination=mocks/mock_packs.go -package=mocks
type PackIndex interface {
	// Lookup returns the latest release of the named pack.
	Lookup(ctx context.Context, indexURL, name string) (*domain.PackRelease, error)
}

// PackFetcher downloads and unpacks pack archives.
type PackFetcher interface {
	// Download stores the resource at url in dest unless dest already exists.
	Download(ctx context.Context, url, dest string) error

	// Extract unpacks the archive into dir unless dir already exists.
	Extract(archive, dir string) error
}
