// Package render turns the committed player position into screen rectangles and draws
// them. +y is up in the world and down on screen; the flip happens here.
package render

import (
	"image"

	"chunkwalk/internal/mathutil"
	"chunkwalk/internal/world"
)

// Rect is a screen rectangle in pixels.
type Rect struct {
	MinX, MinY float32
	MaxX, MaxY float32
}

func (r Rect) Width() float32  { return r.MaxX - r.MinX }
func (r Rect) Height() float32 { return r.MaxY - r.MinY }

// Intersects reports whether r overlaps a w x h screen.
func (r Rect) Intersects(w, h float32) bool {
	return r.MaxX > 0 && r.MaxY > 0 && r.MinX < w && r.MinY < h
}

// Snap rounds the edges to whole pixels and clips them to a w x h screen. The result
// may be empty.
func (r Rect) Snap(w, h int) image.Rectangle {
	minX := mathutil.IntMax(int(mathutil.RoundToInt32(r.MinX)), 0)
	minY := mathutil.IntMax(int(mathutil.RoundToInt32(r.MinY)), 0)
	maxX := mathutil.IntMin(int(mathutil.RoundToInt32(r.MaxX)), w)
	maxY := mathutil.IntMin(int(mathutil.RoundToInt32(r.MaxY)), h)
	if maxX < minX {
		maxX = minX
	}
	if maxY < minY {
		maxY = minY
	}
	return image.Rect(minX, minY, maxX, maxY)
}

// Camera keeps the player's feet at the center of the screen.
type Camera struct {
	CenterX        float32
	CenterY        float32
	MetersToPixels float32
	TileSidePixels float32
}

func NewCamera(w *world.World, screenWidth, screenHeight int) Camera {
	return Camera{
		CenterX:        0.5 * float32(screenWidth),
		CenterY:        0.5 * float32(screenHeight),
		MetersToPixels: w.MetersToPixels(),
		TileSidePixels: float32(w.TileSideInPixels()),
	}
}

// VisibleSpan returns how many tiles to draw on each side of the player's tile.
func (c Camera) VisibleSpan() (cols, rows int32) {
	cols = mathutil.TruncateToInt32(c.CenterX/c.TileSidePixels) + 2
	rows = mathutil.TruncateToInt32(c.CenterY/c.TileSidePixels) + 2
	return cols, rows
}

// TileAt returns the absolute tile relCol/relRow tiles away from the player's tile.
func TileAt(player world.Position, relCol, relRow int32) (absX, absY uint32) {
	return mathutil.WrappingAddU32(player.AbsTileX, int64(relCol)),
		mathutil.WrappingAddU32(player.AbsTileY, int64(relRow))
}

// TileRect places the tile relCol/relRow away from the player's tile.
func (c Camera) TileRect(player world.Position, relCol, relRow int32) Rect {
	minX := c.CenterX - c.MetersToPixels*player.OffsetX + float32(relCol)*c.TileSidePixels
	maxY := c.CenterY + c.MetersToPixels*player.OffsetY - float32(relRow)*c.TileSidePixels
	return Rect{
		MinX: minX,
		MinY: maxY - c.TileSidePixels,
		MaxX: minX + c.TileSidePixels,
		MaxY: maxY,
	}
}

// PlayerRect is the player's body: centered on x, standing on the screen center.
func (c Camera) PlayerRect(width, height float32) Rect {
	left := c.CenterX - 0.5*c.MetersToPixels*width
	top := c.CenterY - c.MetersToPixels*height
	return Rect{
		MinX: left,
		MinY: top,
		MaxX: left + c.MetersToPixels*width,
		MaxY: c.CenterY,
	}
}

// SampleX returns the screen x of a footprint sample offset dx meters from the player.
func (c Camera) SampleX(dx float32) float32 {
	return c.CenterX + c.MetersToPixels*dx
}
