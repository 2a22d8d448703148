package cas_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/dxpatch/internal/adapters/cas"
	"go.trai.ch/dxpatch/internal/core/domain"
)

func TestStore_PutAndGet(t *testing.T) {
	root := t.TempDir()
	store := cas.NewStore()

	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	records := []domain.InstallRecord{
		{
			Destination: filepath.Join(root, "lib", "gcc", "avr", "7.3.0", "device-specs", "specs-avr64dd32"),
			Source:      "/packs/gcc/dev/avr64dd32/device-specs/specs-avr64dd32",
			Digest:      "xxh64:00000000deadbeef",
			InstalledAt: now,
		},
		{
			Destination: filepath.Join(root, "avr", "include", "avr", "ioavr64dd32.h"),
			Source:      "/packs/include/avr/ioavr64dd32.h",
			Digest:      "xxh64:0123456789abcdef",
			Device:      "AVR64DD32",
			InstalledAt: now,
		},
	}
	require.NoError(t, store.Put(root, records))

	got, err := store.Get(root)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, records[1], got[0], "records are ordered by destination")
	assert.Equal(t, records[0], got[1])

	info, err := os.Stat(filepath.Join(root, ".dxpatch", "installed.json"))
	require.NoError(t, err)
	assert.False(t, info.IsDir())
}

func TestStore_PutMerges(t *testing.T) {
	root := t.TempDir()
	store := cas.NewStore()
	dest := filepath.Join(root, "avr", "include", "avr", "ioavr64dd32.h")

	require.NoError(t, store.Put(root, []domain.InstallRecord{{Destination: dest, Digest: "old"}}))
	require.NoError(t, store.Put(root, []domain.InstallRecord{
		{Destination: dest, Digest: "new"},
		{Destination: filepath.Join(root, "boards", "AVR64DD32.json"), Device: "AVR64DD32"},
	}))

	got, err := cas.NewStore().Get(root)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "new", got[0].Digest)
}

func TestStore_GetEmpty(t *testing.T) {
	got, err := cas.NewStore().Get(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestStore_Corrupt(t *testing.T) {
	root := t.TempDir()
	path := domain.StatePath(root)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := cas.NewStore().Get(root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrStoreUnmarshalFailed.Error())
}

func TestStore_Clear(t *testing.T) {
	root := t.TempDir()
	store := cas.NewStore()
	require.NoError(t, store.Put(root, []domain.InstallRecord{{Destination: filepath.Join(root, "x.h")}}))

	require.NoError(t, store.Clear(root))
	_, err := os.Stat(filepath.Join(root, ".dxpatch"))
	assert.True(t, os.IsNotExist(err))

	got, err := store.Get(root)
	require.NoError(t, err)
	assert.Empty(t, got)

	require.NoError(t, store.Clear(root))
}
