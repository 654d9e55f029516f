package fileutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFileAtomic(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "odds.json")

	require.NoError(t, WriteFileAtomic(path, []byte("first"), 0o644))
	require.NoError(t, WriteFileAtomic(path, []byte("second"), 0o600))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestWriteFileAtomicMissingDir(t *testing.T) {
	t.Parallel()
	err := WriteFileAtomic(filepath.Join(t.TempDir(), "missing", "x"), []byte("x"), 0o644)
	assert.Error(t, err)
}

func TestJSONRoundTrip(t *testing.T) {
	t.Parallel()
	type row struct {
		Name   string    `json:"name"`
		Values []float64 `json:"values"`
	}
	path := filepath.Join(t.TempDir(), "row.json")
	in := row{Name: "AKs", Values: []float64{0.25, 0.5}}
	require.NoError(t, WriteJSON(path, in, 0o644))

	var out row
	require.NoError(t, ReadJSON(path, &out))
	assert.Equal(t, in, out)

	require.NoError(t, os.WriteFile(path, []byte("{"), 0o644))
	assert.Error(t, ReadJSON(path, &out))
}

func TestExists(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	ok, err := Exists(filepath.Join(dir, "nope"))
	require.NoError(t, err)
	assert.False(t, ok)

	path := filepath.Join(dir, "yes")
	require.NoError(t, os.WriteFile(path, nil, 0o644))
	ok, err = Exists(path)
	require.NoError(t, err)
	assert.True(t, ok)
}
