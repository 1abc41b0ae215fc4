package world

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
)

var (
	ErrInvalidChunkDim   = errors.New("chunk dimension must be a power of two")
	ErrInvalidTileSide   = errors.New("tile side in meters must be positive and finite")
	ErrInvalidTilePixels = errors.New("tile side in pixels must be positive")
)

// Params are the geometric constants a World is built with.
type Params struct {
	ChunkDim         uint32
	ChunkCountX      uint32 // 0 = unbounded
	ChunkCountY      uint32 // 0 = unbounded
	TileSideInMeters float32
	TileSideInPixels int32
}

// Validate checks the constants the shift/mask and normalizer math depend on.
func (p Params) Validate() error {
	if p.ChunkDim == 0 || bits.OnesCount32(p.ChunkDim) != 1 {
		return fmt.Errorf("chunk_dim %d: %w", p.ChunkDim, ErrInvalidChunkDim)
	}
	side := float64(p.TileSideInMeters)
	if !(side > 0) || math.IsInf(side, 0) {
		return fmt.Errorf("tile_side_in_meters %v: %w", p.TileSideInMeters, ErrInvalidTileSide)
	}
	if p.TileSideInPixels <= 0 {
		return fmt.Errorf("tile_side_in_pixels %d: %w", p.TileSideInPixels, ErrInvalidTilePixels)
	}
	return nil
}

// ChunkKey addresses a chunk in the chunk table.
type ChunkKey struct {
	X, Y uint32
}

// World is a sparse table of tile chunks plus the constants relating meters, tiles,
// chunks and pixels. It is read-only once built.
type World struct {
	params         Params
	chunkShift     uint32
	chunkMask      uint32
	metersToPixels float32
	chunks         map[ChunkKey]*TileChunk
}

// NewWorld validates params and takes ownership of chunks. Every chunk must match
// params.ChunkDim and lie inside the configured chunk-count bounds.
func NewWorld(params Params, chunks map[ChunkKey]*TileChunk) (*World, error) {
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("invalid world params: %w", err)
	}
	w := &World{
		params:         params,
		chunkShift:     uint32(bits.TrailingZeros32(params.ChunkDim)),
		chunkMask:      params.ChunkDim - 1,
		metersToPixels: float32(params.TileSideInPixels) / params.TileSideInMeters,
		chunks:         make(map[ChunkKey]*TileChunk, len(chunks)),
	}
	for key, chunk := range chunks {
		if chunk == nil {
			continue
		}
		if chunk.Dim() != params.ChunkDim {
			return nil, fmt.Errorf("chunk (%d,%d) has dim %d, world uses %d", key.X, key.Y, chunk.Dim(), params.ChunkDim)
		}
		if !w.inBounds(key.X, key.Y) {
			return nil, fmt.Errorf("chunk (%d,%d) outside world bounds %dx%d", key.X, key.Y, params.ChunkCountX, params.ChunkCountY)
		}
		w.chunks[key] = chunk
	}
	return w, nil
}

func (w *World) inBounds(chunkX, chunkY uint32) bool {
	if w.params.ChunkCountX != 0 && chunkX >= w.params.ChunkCountX {
		return false
	}
	if w.params.ChunkCountY != 0 && chunkY >= w.params.ChunkCountY {
		return false
	}
	return true
}

// Chunk returns the chunk at the given chunk coordinate. Absence is a normal result.
func (w *World) Chunk(chunkX, chunkY uint32) (*TileChunk, bool) {
	if !w.inBounds(chunkX, chunkY) {
		return nil, false
	}
	c, ok := w.chunks[ChunkKey{chunkX, chunkY}]
	return c, ok
}

// ChunkPositionOf splits an absolute tile coordinate into chunk and local parts.
func (w *World) ChunkPositionOf(absTileX, absTileY uint32) ChunkPosition {
	return ChunkPosition{
		ChunkX: absTileX >> w.chunkShift,
		ChunkY: absTileY >> w.chunkShift,
		LocalX: absTileX & w.chunkMask,
		LocalY: absTileY & w.chunkMask,
	}
}

// TileCodeAt resolves an absolute tile. Tiles in absent chunks read as TileEmpty.
func (w *World) TileCodeAt(absTileX, absTileY uint32) TileCode {
	cp := w.ChunkPositionOf(absTileX, absTileY)
	chunk, ok := w.Chunk(cp.ChunkX, cp.ChunkY)
	if !ok {
		return TileEmpty
	}
	return chunk.Tile(cp.LocalX, cp.LocalY)
}

func (w *World) IsTilePassable(absTileX, absTileY uint32) bool {
	return w.TileCodeAt(absTileX, absTileY).IsPassable()
}

func (w *World) ChunkDim() uint32 { return w.params.ChunkDim }
func (w *World) ChunkShift() uint32 { return w.chunkShift }
func (w *World) ChunkMask() uint32 { return w.chunkMask }
func (w *World) TileSideInMeters() float32 { return w.params.TileSideInMeters }
func (w *World) TileSideInPixels() int32 { return w.params.TileSideInPixels }
func (w *World) MetersToPixels() float32 { return w.metersToPixels }
func (w *World) ChunkCount() int { return len(w.chunks) }
