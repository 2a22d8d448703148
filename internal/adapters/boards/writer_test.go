package boards_test

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/dxpatch/internal/adapters/boards"
	"go.trai.ch/dxpatch/internal/core/domain"
)

func TestWriter_Write(t *testing.T) {
	dir := t.TempDir()
	doc := []byte("{\n  \"name\": \"AVR64DD32\"\n}\n")

	path, err := boards.NewWriter().Write(dir, domain.BoardDescriptor{Name: "AVR64DD32", Document: doc})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "boards", "AVR64DD32.json"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, doc, data)

	if runtime.GOOS != "windows" {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())
	}
}

func TestWriter_Write_Overwrites(t *testing.T) {
	dir := t.TempDir()
	w := boards.NewWriter()

	_, err := w.Write(dir, domain.BoardDescriptor{Name: "AVR32DD14", Document: []byte("{}\n")})
	require.NoError(t, err)
	path, err := w.Write(dir, domain.BoardDescriptor{Name: "AVR32DD14", Document: []byte("{\n  \"name\": \"AVR32DD14\"\n}\n")})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "AVR32DD14")
}

func TestWriter_Write_EmptyDocument(t *testing.T) {
	_, err := boards.NewWriter().Write(t.TempDir(), domain.BoardDescriptor{Name: "AVR64DD32"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrBoardWriteFailed))
}

func TestWriter_Write_Unwritable(t *testing.T) {
	dir := t.TempDir()
	// A file where the boards directory should be.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "boards"), []byte("x"), 0o600))

	_, err := boards.NewWriter().Write(dir, domain.BoardDescriptor{Name: "AVR64DD32", Document: []byte("{}\n")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrBoardWriteFailed.Error())
}
