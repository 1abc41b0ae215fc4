package world

import "fmt"

// RoomGenerator lays out a grid of screen-sized rooms. Every room is ringed by walls with
// a door in the middle of each shared edge; the outer ring of the grid stays closed.
type RoomGenerator struct {
	ScreenWidth  uint32
	ScreenHeight uint32
	ScreensX     uint32
	ScreensY     uint32
	OriginX      uint32
	OriginY      uint32
}

// NewRoomGenerator returns a generator for the classic 17x9 screen.
func NewRoomGenerator(screensX, screensY uint32) *RoomGenerator {
	return &RoomGenerator{
		ScreenWidth:  17,
		ScreenHeight: 9,
		ScreensX:     screensX,
		ScreensY:     screensY,
	}
}

// Generate writes the rooms into b.
func (g *RoomGenerator) Generate(b *Builder) error {
	if g.ScreenWidth < 3 || g.ScreenHeight < 3 {
		return fmt.Errorf("room screen %dx%d too small", g.ScreenWidth, g.ScreenHeight)
	}
	for screenY := uint32(0); screenY < g.ScreensY; screenY++ {
		for screenX := uint32(0); screenX < g.ScreensX; screenX++ {
			if err := g.generateScreen(b, screenX, screenY); err != nil {
				return fmt.Errorf("screen (%d,%d): %w", screenX, screenY, err)
			}
		}
	}
	return nil
}

func (g *RoomGenerator) generateScreen(b *Builder, screenX, screenY uint32) error {
	doorLeft := screenX > 0
	doorRight := screenX+1 < g.ScreensX
	doorBottom := screenY > 0
	doorTop := screenY+1 < g.ScreensY

	midX := g.ScreenWidth / 2
	midY := g.ScreenHeight / 2
	for tileY := uint32(0); tileY < g.ScreenHeight; tileY++ {
		for tileX := uint32(0); tileX < g.ScreenWidth; tileX++ {
			code := TileEmpty
			switch {
			case tileX == 0:
				if !(doorLeft && tileY == midY) {
					code = TileWall
				}
			case tileX == g.ScreenWidth-1:
				if !(doorRight && tileY == midY) {
					code = TileWall
				}
			case tileY == 0:
				if !(doorBottom && tileX == midX) {
					code = TileWall
				}
			case tileY == g.ScreenHeight-1:
				if !(doorTop && tileX == midX) {
					code = TileWall
				}
			}
			absX := g.OriginX + screenX*g.ScreenWidth + tileX
			absY := g.OriginY + screenY*g.ScreenHeight + tileY
			if err := b.SetTile(absX, absY, code); err != nil {
				return err
			}
		}
	}
	return nil
}
