package world

import (
	"fmt"
	"math"

	"chunkwalk/internal/mathutil"
)

// Position is where something stands: an absolute tile plus an offset inside that tile,
// in meters. Outside Normalize the offsets always satisfy 0 <= offset < tile side.
type Position struct {
	AbsTileX uint32
	AbsTileY uint32
	OffsetX  float32
	OffsetY  float32
}

// ChunkPosition is derived from an absolute tile and never stored.
type ChunkPosition struct {
	ChunkX, ChunkY uint32
	LocalX, LocalY uint32
}

// Offset returns p moved by (dx, dy) meters without normalizing.
func (p Position) Offset(dx, dy float32) Position {
	p.OffsetX += dx
	p.OffsetY += dy
	return p
}

func (p Position) String() string {
	return fmt.Sprintf("tile(%d,%d)+(%.3f,%.3f)", p.AbsTileX, p.AbsTileY, p.OffsetX, p.OffsetY)
}

// IsCanonical reports whether both offsets lie in [0, tile side).
func (w *World) IsCanonical(p Position) bool {
	side := w.params.TileSideInMeters
	return p.OffsetX >= 0 && p.OffsetX < side && p.OffsetY >= 0 && p.OffsetY < side
}

// Normalize folds whole tiles out of the offsets and into the tile coordinates, each
// axis on its own. Tile coordinates wrap at the uint32 range. A result that still is not
// canonical means the input was not finite, which panics.
func (w *World) Normalize(p Position) Position {
	side := w.params.TileSideInMeters
	p.AbsTileX, p.OffsetX = recanonicalizeCoord(side, p.AbsTileX, p.OffsetX)
	p.AbsTileY, p.OffsetY = recanonicalizeCoord(side, p.AbsTileY, p.OffsetY)
	if !w.IsCanonical(p) {
		panic(fmt.Sprintf("world: position %s not canonical after normalize (tile side %v)", p, side))
	}
	return p
}

func recanonicalizeCoord(side float32, tile uint32, offset float32) (uint32, float32) {
	if math.IsNaN(float64(offset)) || math.IsInf(float64(offset), 0) {
		return tile, offset
	}
	off := float64(offset)
	s := float64(side)

	// exact remainder for any finite offset
	r := math.Mod(off, s)
	if r < 0 {
		r += s
	}
	if r >= s || r == 0 {
		r = 0
	}
	n := math.Round((off - r) / s)
	tile += mathutil.WrapFloatToU32(n)

	out := float32(r)
	if out >= side {
		tile++
		out = 0
	}
	return tile, out
}
