package ports

import "go.trai.ch/dxpatch/internal/core/domain"

// InstallStateStore records what an install wrote into a toolchain.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type InstallStateStore interface {
	// Get returns the records of the toolchain at root.
	// Returns an empty slice if nothing has been recorded.
	Get(root string) ([]domain.InstallRecord, error)

	// Put merges records into the state of the toolchain at root, keyed by destination.
	Put(root string, records []domain.InstallRecord) error

	// Clear removes the state of the toolchain at root.
	Clear(root string) error
}
