// Package termview draws the world as catalog letters on a terminal and turns key
// repeats into held buttons.
package termview

import (
	"chunkwalk/internal/render"
	"chunkwalk/internal/world"

	"github.com/gdamore/tcell/v2"
)

const PlayerRune = '@'

var (
	playerStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true)
)

// Surface is the part of tcell.Screen the view draws on.
type Surface interface {
	Clear()
	Size() (width, height int)
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Show()
}

// View renders one terminal cell per tile with the player's tile in the middle of the
// map area. Status lines go at the bottom.
type View struct {
	screen  Surface
	world   *world.World
	catalog *world.TileCatalog
	styles  map[world.TileCode]tcell.Style
}

func NewView(screen Surface, w *world.World, catalog *world.TileCatalog) *View {
	styles := make(map[world.TileCode]tcell.Style)
	for _, code := range catalog.Codes() {
		c := catalog.Color(code)
		styles[code] = tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c[0]), int32(c[1]), int32(c[2])))
	}
	return &View{screen: screen, world: w, catalog: catalog, styles: styles}
}

// MapCenter returns the cell the player is drawn in for a screen of the given size.
func MapCenter(width, height, statusLines int) (cx, cy int) {
	mapHeight := height - statusLines
	if mapHeight < 1 {
		mapHeight = 1
	}
	return width / 2, mapHeight / 2
}

func (v *View) style(code world.TileCode) tcell.Style {
	if s, ok := v.styles[code]; ok {
		return s
	}
	return tcell.StyleDefault.Foreground(tcell.ColorFuchsia)
}

// Draw paints the tiles around player and the status lines, then shows the screen.
func (v *View) Draw(player world.Position, status []string) {
	v.screen.Clear()
	width, height := v.screen.Size()
	cx, cy := MapCenter(width, height, len(status))
	mapHeight := height - len(status)

	for row := 0; row < mapHeight; row++ {
		relRow := int32(cy - row)
		for col := 0; col < width; col++ {
			relCol := int32(col - cx)
			absX, absY := render.TileAt(player, relCol, relRow)
			code := v.world.TileCodeAt(absX, absY)
			v.screen.SetContent(col, row, v.catalog.LetterForCode(code), nil, v.style(code))
		}
	}
	if cy < mapHeight {
		v.screen.SetContent(cx, cy, PlayerRune, nil, playerStyle)
	}

	for i, line := range status {
		row := mapHeight + i
		if row < 0 || row >= height {
			continue
		}
		col := 0
		for _, r := range line {
			if col >= width {
				break
			}
			v.screen.SetContent(col, row, r, nil, statusStyle)
			col++
		}
		for ; col < width; col++ {
			v.screen.SetContent(col, row, ' ', nil, statusStyle)
		}
	}
	v.screen.Show()
}
