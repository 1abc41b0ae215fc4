// Package platform holds the host-side collaborators that the game core never calls
// directly. Hosts create them at startup and hand them to loaders.
package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// CompressedSuffix marks files stored as zstd frames.
const CompressedSuffix = ".zst"

// FileIO reads and writes whole files.
type FileIO interface {
	ReadEntireFile(path string) ([]byte, error)
	WriteEntireFile(path string, data []byte) error
}

// OSFileIO is the FileIO backed by the local filesystem. Paths ending in ".zst" are
// decompressed on read and compressed on write.
type OSFileIO struct{}

func NewOSFileIO() *OSFileIO {
	return &OSFileIO{}
}

func (OSFileIO) ReadEntireFile(path string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if !IsCompressed(path) {
		return raw, nil
	}
	return Decompress(raw)
}

func (OSFileIO) WriteEntireFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	if IsCompressed(path) {
		compressed, err := Compress(data)
		if err != nil {
			return err
		}
		data = compressed
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

func IsCompressed(path string) bool {
	return strings.HasSuffix(path, CompressedSuffix)
}

// Compress encodes data as a single zstd frame.
func Compress(data []byte) ([]byte, error) {
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, fmt.Errorf("zstd encoder: %w", err)
	}
	defer enc.Close()
	return enc.EncodeAll(data, nil), nil
}

// Decompress decodes zstd frames produced by Compress.
func Decompress(raw []byte) ([]byte, error) {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("zstd decoder: %w", err)
	}
	defer dec.Close()
	out, err := dec.DecodeAll(raw, nil)
	if err != nil {
		return nil, fmt.Errorf("zstd decode: %w", err)
	}
	return out, nil
}

// MemoryFileIO keeps files in a map. Compression suffixes are honored the same way
// OSFileIO honors them, so stored bytes match what would be on disk.
type MemoryFileIO struct {
	mu    sync.RWMutex
	files map[string][]byte
}

func NewMemoryFileIO() *MemoryFileIO {
	return &MemoryFileIO{files: make(map[string][]byte)}
}

func (m *MemoryFileIO) ReadEntireFile(path string) ([]byte, error) {
	m.mu.RLock()
	raw, ok := m.files[path]
	m.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("open %s: %w", path, os.ErrNotExist)
	}
	if IsCompressed(path) {
		return Decompress(raw)
	}
	out := make([]byte, len(raw))
	copy(out, raw)
	return out, nil
}

func (m *MemoryFileIO) WriteEntireFile(path string, data []byte) error {
	stored := make([]byte, len(data))
	copy(stored, data)
	if IsCompressed(path) {
		compressed, err := Compress(data)
		if err != nil {
			return err
		}
		stored = compressed
	}
	m.mu.Lock()
	m.files[path] = stored
	m.mu.Unlock()
	return nil
}

// Raw returns the stored bytes without decompression.
func (m *MemoryFileIO) Raw(path string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	raw, ok := m.files[path]
	return raw, ok
}
