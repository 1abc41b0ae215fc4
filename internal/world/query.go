package world

// IsWorldPointEmpty reports whether the tile under a canonical position is passable.
func (w *World) IsWorldPointEmpty(p Position) bool {
	return w.IsTilePassable(p.AbsTileX, p.AbsTileY)
}

// TileAt returns the tile code under a canonical position.
func (w *World) TileAt(p Position) TileCode {
	return w.TileCodeAt(p.AbsTileX, p.AbsTileY)
}
