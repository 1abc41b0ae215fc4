package world

import "fmt"

// TileChunk is a square block of chunk_dim x chunk_dim tile codes stored row-major.
// Chunks are immutable once handed to a World.
type TileChunk struct {
	dim   uint32
	tiles []TileCode
}

// NewTileChunk wraps tiles as a chunk. The slice is copied.
func NewTileChunk(dim uint32, tiles []TileCode) (*TileChunk, error) {
	if dim == 0 {
		return nil, fmt.Errorf("chunk dimension must be positive: %w", ErrInvalidChunkDim)
	}
	want := int(dim) * int(dim)
	if len(tiles) != want {
		return nil, fmt.Errorf("chunk needs %d tiles, got %d", want, len(tiles))
	}
	cp := make([]TileCode, want)
	copy(cp, tiles)
	return &TileChunk{dim: dim, tiles: cp}, nil
}

func newEmptyChunk(dim uint32) *TileChunk {
	return &TileChunk{dim: dim, tiles: make([]TileCode, int(dim)*int(dim))}
}

func (c *TileChunk) Dim() uint32 {
	return c.dim
}

// Tile returns the code at a local coordinate. Callers derive local coordinates by
// masking, so an out-of-range index is a bug and panics.
func (c *TileChunk) Tile(localX, localY uint32) TileCode {
	if localX >= c.dim || localY >= c.dim {
		panic(fmt.Sprintf("world: chunk index (%d,%d) out of range for dim %d", localX, localY, c.dim))
	}
	return c.tiles[localY*c.dim+localX]
}

func (c *TileChunk) set(localX, localY uint32, code TileCode) {
	if localX >= c.dim || localY >= c.dim {
		panic(fmt.Sprintf("world: chunk index (%d,%d) out of range for dim %d", localX, localY, c.dim))
	}
	c.tiles[localY*c.dim+localX] = code
}

// CountBlocked returns how many cells hold a nonzero code.
func (c *TileChunk) CountBlocked() int {
	n := 0
	for _, t := range c.tiles {
		if !t.IsPassable() {
			n++
		}
	}
	return n
}
