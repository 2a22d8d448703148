// Package cas implements the install state store kept inside each toolchain.
package cas

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"go.trai.ch/dxpatch/internal/core/domain"
	"go.trai.ch/dxpatch/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.InstallStateStore = (*Store)(nil)

// stateFile is the on-disk layout of the install state.
type stateFile struct {
	Version int                             `json:"version"`
	Records map[string]domain.InstallRecord `json:"records"`
}

const stateVersion = 1

// Store implements ports.InstallStateStore using a flat JSON file per toolchain.
type Store struct {
	mu sync.Mutex
}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Get returns the records of the toolchain at root, ordered by destination.
func (s *Store) Get(root string) ([]domain.InstallRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := load(domain.StatePath(root))
	if err != nil {
		return nil, err
	}
	return sortedRecords(state.Records), nil
}

// Put merges records into the state of the toolchain at root. A record replaces an
// earlier one with the same destination.
func (s *Store) Put(root string, records []domain.InstallRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := domain.StatePath(root)
	state, err := load(path)
	if err != nil {
		return err
	}
	for _, r := range records {
		state.Records[filepath.Clean(r.Destination)] = r
	}
	return save(path, state)
}

// Clear removes the state of the toolchain at root.
func (s *Store) Clear(root string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := domain.StatePath(root)
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", path)
	}
	// The state directory is ours; drop it once empty.
	_ = os.Remove(filepath.Dir(path))
	return nil
}

func load(path string) (*stateFile, error) {
	state := &stateFile{Version: stateVersion, Records: make(map[string]domain.InstallRecord)}

	//nolint:gosec // Path is derived from the configured toolchain root
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return state, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "path", path)
	}

	if len(data) == 0 {
		return state, nil
	}

	if err := json.Unmarshal(data, state); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreUnmarshalFailed.Error()), "path", path)
	}
	if state.Records == nil {
		state.Records = make(map[string]domain.InstallRecord)
	}
	return state, nil
}

func save(path string, state *stateFile) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreMarshalFailed.Error())
	}

	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", path)
	}

	//nolint:gosec // Path is derived from the configured toolchain root
	if err := os.WriteFile(path, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", path)
	}
	return nil
}

func sortedRecords(records map[string]domain.InstallRecord) []domain.InstallRecord {
	out := make([]domain.InstallRecord, 0, len(records))
	for _, r := range records {
		out = append(out, r)
	}
	slices.SortFunc(out, func(a, b domain.InstallRecord) int {
		return strings.Compare(a.Destination, b.Destination)
	})
	return out
}
