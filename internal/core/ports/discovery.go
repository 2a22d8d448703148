package ports

import "go.trai.ch/dxpatch/internal/core/domain"

// PackDiscoverer lists the compilation-support files of an extracted pack.
//
//go:generate go run go.uber.org/mock/mockgen -source=discovery.go -destination=mocks/mock_discovery.go -package=mocks
type PackDiscoverer interface {
	// Discover returns the headers, link artifacts and specs fragments under dir in lexical order.
	Discover(dir string) ([]domain.PackageFile, error)
}
