package platform

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOSFileIO_PlainRoundTrip(t *testing.T) {
	fio := NewOSFileIO()
	path := filepath.Join(t.TempDir(), "nested", "world.yaml")

	require.NoError(t, fio.WriteEntireFile(path, []byte("name: test\n")))
	got, err := fio.ReadEntireFile(path)
	require.NoError(t, err)
	assert.Equal(t, "name: test\n", string(got))
}

func TestOSFileIO_CompressedOnDisk(t *testing.T) {
	fio := NewOSFileIO()
	path := filepath.Join(t.TempDir(), "world.yaml.zst")
	payload := bytes.Repeat([]byte("#################\n"), 64)

	require.NoError(t, fio.WriteEntireFile(path, payload))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotEqual(t, payload, raw, "file on disk should be zstd encoded")
	assert.Less(t, len(raw), len(payload))

	got, err := fio.ReadEntireFile(path)
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestOSFileIO_MissingFile(t *testing.T) {
	_, err := NewOSFileIO().ReadEntireFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestMemoryFileIO(t *testing.T) {
	m := NewMemoryFileIO()

	_, err := m.ReadEntireFile("absent")
	assert.True(t, errors.Is(err, os.ErrNotExist))

	require.NoError(t, m.WriteEntireFile("a.yaml", []byte("x")))
	got, err := m.ReadEntireFile("a.yaml")
	require.NoError(t, err)
	assert.Equal(t, []byte("x"), got)

	require.NoError(t, m.WriteEntireFile("b.yaml.zst", []byte("compressed")))
	raw, ok := m.Raw("b.yaml.zst")
	require.True(t, ok)
	assert.NotEqual(t, []byte("compressed"), raw)
	got, err = m.ReadEntireFile("b.yaml.zst")
	require.NoError(t, err)
	assert.Equal(t, []byte("compressed"), got)
}

func TestDecompressRejectsGarbage(t *testing.T) {
	_, err := Decompress([]byte("not a zstd frame"))
	assert.Error(t, err)
}
