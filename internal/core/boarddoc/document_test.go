package boarddoc_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/dxpatch/internal/core/boarddoc"
	"go.trai.ch/dxpatch/internal/core/domain"
)

func loadTemplate(t *testing.T) ([]byte, *boarddoc.Document) {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", "board.json"))
	require.NoError(t, err)

	doc, err := boarddoc.Parse(data)
	require.NoError(t, err)
	return data, doc
}

func TestEncode_PreservesOrderAndFormat(t *testing.T) {
	data, doc := loadTemplate(t)

	out, err := doc.Encode()
	require.NoError(t, err)

	assert.Equal(t, string(data), string(out))
}

func TestEncode_Scalars(t *testing.T) {
	doc, err := boarddoc.Parse([]byte(`{"a": null, "b": false, "c": 1.5, "d": "<tag> & \"q\"", "e": {}, "f": []}`))
	require.NoError(t, err)

	out, err := doc.Encode()
	require.NoError(t, err)

	expected := `{
  "a": null,
  "b": false,
  "c": 1.5,
  "d": "<tag> & \"q\"",
  "e": {},
  "f": []
}
`
	assert.Equal(t, expected, string(out))
}

func TestParse_RejectsNonObject(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "array", input: `["a", "b"]`},
		{name: "scalar", input: `42`},
		{name: "invalid", input: `{"a": `},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := boarddoc.Parse([]byte(tt.input))
			require.Error(t, err)
		})
	}

	_, err := boarddoc.Parse([]byte(`[1]`))
	assert.True(t, errors.Is(err, domain.ErrTemplateParseFailed))
}

func TestSet_ReplacesExistingKeys(t *testing.T) {
	_, doc := loadTemplate(t)

	require.NoError(t, doc.SetString("AVR64DD32", "name"))
	require.NoError(t, doc.SetInt(8192, "upload", "maximum_ram_size"))

	name, ok := doc.Lookup("name")
	assert.True(t, ok)
	assert.Equal(t, "AVR64DD32", name)

	ram, ok := doc.Lookup("upload", "maximum_ram_size")
	assert.True(t, ok)
	assert.Equal(t, "8192", ram)
}

func TestSet_MissingKeyFails(t *testing.T) {
	_, doc := loadTemplate(t)

	err := doc.SetString("x", "build", "nonexistent")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidTemplatePath))

	err = doc.SetString("x", "name", "nested")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidTemplatePath))

	err = doc.SetString("x")
	assert.True(t, errors.Is(err, domain.ErrInvalidTemplatePath))
}

func TestClone_IsDeep(t *testing.T) {
	data, doc := loadTemplate(t)

	clone := doc.Clone()
	require.NoError(t, clone.SetString("changed", "build", "mcu"))

	out, err := doc.Encode()
	require.NoError(t, err)
	assert.Equal(t, string(data), string(out))

	mcu, _ := clone.Lookup("build", "mcu")
	assert.Equal(t, "changed", mcu)
}

func TestHasAndMissing(t *testing.T) {
	_, doc := loadTemplate(t)

	assert.True(t, doc.Has("hardware", "millistimer"))
	assert.False(t, doc.Has("hardware", "clock"))

	missing := doc.Missing([]string{"name"}, []string{"build", "board"}, []string{"debug", "tool"})
	assert.Equal(t, []string{"build.board", "debug.tool"}, missing)
}
