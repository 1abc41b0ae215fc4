package world

// TileCode tags one tile cell. Code 0 is the only passable code; every nonzero code
// blocks movement no matter what the catalog calls it.
type TileCode uint32

const (
	TileEmpty TileCode = iota // walkable floor
	TileWall                  // room walls
	TileRock                  // boulders placed by stamps
	TileWater                 // ponds, still blocking
)

// IsPassable reports whether an entity may stand on the tile.
func (c TileCode) IsPassable() bool {
	return c == TileEmpty
}
