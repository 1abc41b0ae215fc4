package world

import (
	"errors"
	"fmt"
	"math/bits"
)

var ErrBuilderFrozen = errors.New("world builder already built")

// Builder collects tiles before a World exists. Chunks are allocated the first time one
// of their tiles is written. After Build the builder rejects further writes, so the World
// never observes a change.
type Builder struct {
	params Params
	shift  uint32
	mask   uint32
	chunks map[ChunkKey]*TileChunk
	built  bool
}

func NewBuilder(params Params) (*Builder, error) {
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("invalid world params: %w", err)
	}
	return &Builder{
		params: params,
		shift:  uint32(bits.TrailingZeros32(params.ChunkDim)),
		mask:   params.ChunkDim - 1,
		chunks: make(map[ChunkKey]*TileChunk),
	}, nil
}

func (b *Builder) chunkFor(absX, absY uint32) (*TileChunk, error) {
	key := ChunkKey{absX >> b.shift, absY >> b.shift}
	if !b.inBounds(key) {
		return nil, fmt.Errorf("tile (%d,%d) lies in chunk (%d,%d) outside world bounds %dx%d",
			absX, absY, key.X, key.Y, b.params.ChunkCountX, b.params.ChunkCountY)
	}
	chunk, ok := b.chunks[key]
	if !ok {
		chunk = newEmptyChunk(b.params.ChunkDim)
		b.chunks[key] = chunk
	}
	return chunk, nil
}

func (b *Builder) inBounds(key ChunkKey) bool {
	if b.params.ChunkCountX != 0 && key.X >= b.params.ChunkCountX {
		return false
	}
	return b.params.ChunkCountY == 0 || key.Y < b.params.ChunkCountY
}

// SetTile writes one absolute tile.
func (b *Builder) SetTile(absX, absY uint32, code TileCode) error {
	if b.built {
		return ErrBuilderFrozen
	}
	chunk, err := b.chunkFor(absX, absY)
	if err != nil {
		return err
	}
	chunk.set(absX&b.mask, absY&b.mask, code)
	return nil
}

// TileAt reads back a tile written so far; unwritten tiles are TileEmpty.
func (b *Builder) TileAt(absX, absY uint32) TileCode {
	chunk, ok := b.chunks[ChunkKey{absX >> b.shift, absY >> b.shift}]
	if !ok {
		return TileEmpty
	}
	return chunk.Tile(absX&b.mask, absY&b.mask)
}

// SetChunk replaces a whole chunk.
func (b *Builder) SetChunk(chunkX, chunkY uint32, chunk *TileChunk) error {
	if b.built {
		return ErrBuilderFrozen
	}
	if chunk == nil || chunk.Dim() != b.params.ChunkDim {
		return fmt.Errorf("chunk (%d,%d) does not match chunk_dim %d", chunkX, chunkY, b.params.ChunkDim)
	}
	if !b.inBounds(ChunkKey{chunkX, chunkY}) {
		return fmt.Errorf("chunk (%d,%d) outside world bounds %dx%d",
			chunkX, chunkY, b.params.ChunkCountX, b.params.ChunkCountY)
	}
	b.chunks[ChunkKey{chunkX, chunkY}] = chunk
	return nil
}

// Build freezes the builder and returns the World.
func (b *Builder) Build() (*World, error) {
	if b.built {
		return nil, ErrBuilderFrozen
	}
	w, err := NewWorld(b.params, b.chunks)
	if err != nil {
		return nil, err
	}
	b.built = true
	b.chunks = nil
	return w, nil
}
