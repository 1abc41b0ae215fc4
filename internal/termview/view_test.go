package termview

import (
	"testing"

	"chunkwalk/internal/input"
	"chunkwalk/internal/world"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSurface struct {
	width, height int
	cells         map[[2]int]rune
	shown         int
}

func newFakeSurface(w, h int) *fakeSurface {
	return &fakeSurface{width: w, height: h, cells: make(map[[2]int]rune)}
}

func (f *fakeSurface) Clear() { f.cells = make(map[[2]int]rune) }
func (f *fakeSurface) Size() (int, int) { return f.width, f.height }
func (f *fakeSurface) Show() { f.shown++ }
func (f *fakeSurface) at(x, y int) rune { return f.cells[[2]int{x, y}] }
func (f *fakeSurface) SetContent(x, y int, r rune, _ []rune, _ tcell.Style) {
	f.cells[[2]int{x, y}] = r
}

func testWorld(t *testing.T) *world.World {
	t.Helper()
	b, err := world.NewBuilder(world.Params{ChunkDim: 16, TileSideInMeters: 1.4, TileSideInPixels: 60})
	require.NoError(t, err)
	require.NoError(t, b.SetTile(4, 3, world.TileWall))
	require.NoError(t, b.SetTile(3, 4, world.TileWater))
	w, err := b.Build()
	require.NoError(t, err)
	return w
}

func TestMapCenter(t *testing.T) {
	cx, cy := MapCenter(80, 24, 2)
	assert.Equal(t, 40, cx)
	assert.Equal(t, 11, cy)
	_, cy = MapCenter(10, 1, 3)
	assert.Equal(t, 0, cy)
}

func TestView_Draw(t *testing.T) {
	surf := newFakeSurface(21, 11)
	v := NewView(surf, testWorld(t), world.DefaultTileCatalog())
	v.Draw(world.Position{AbsTileX: 3, AbsTileY: 3, OffsetX: 0.7, OffsetY: 0.7}, []string{"status"})

	cx, cy := MapCenter(21, 11, 1)
	assert.Equal(t, PlayerRune, surf.at(cx, cy))
	assert.Equal(t, '#', surf.at(cx+1, cy), "wall to the right")
	assert.Equal(t, '~', surf.at(cx, cy-1), "water is above, so one row up")
	assert.Equal(t, '.', surf.at(cx-1, cy))
	assert.Equal(t, 's', surf.at(0, 10))
	assert.Equal(t, ' ', surf.at(20, 10))
	assert.Equal(t, 1, surf.shown)
}

func TestView_DrawSimulationScreen(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(40, 12)

	v := NewView(screen, testWorld(t), world.DefaultTileCatalog())
	assert.NotPanics(t, func() {
		v.Draw(world.Position{AbsTileX: 0, AbsTileY: 0}, []string{"a", "b"})
	})
}

func TestKeyHold(t *testing.T) {
	k := NewKeyHold(2)
	var c input.Controller

	k.Press(input.MoveRight)
	k.Apply(&c)
	assert.True(t, c.IsDown(input.MoveRight))
	k.Apply(&c)
	assert.True(t, c.IsDown(input.MoveRight))
	k.Apply(&c)
	assert.False(t, c.IsDown(input.MoveRight), "released after the hold runs out")

	k.Press(input.MoveLeft)
	k.Press(input.MoveRight)
	k.Apply(&c)
	assert.True(t, c.IsDown(input.MoveRight))
	assert.False(t, c.IsDown(input.MoveLeft), "opposite direction released")
}

func TestButtonFor(t *testing.T) {
	tests := []struct {
		key  tcell.Key
		r    rune
		want input.Button
		ok   bool
	}{
		{tcell.KeyUp, 0, input.MoveUp, true},
		{tcell.KeyLeft, 0, input.MoveLeft, true},
		{tcell.KeyRune, 'd', input.MoveRight, true},
		{tcell.KeyRune, 'S', input.MoveDown, true},
		{tcell.KeyRune, ' ', input.Start, true},
		{tcell.KeyRune, 'x', 0, false},
		{tcell.KeyTab, 0, 0, false},
	}
	for _, tt := range tests {
		got, ok := buttonFor(tt.key, tt.r)
		assert.Equal(t, tt.ok, ok, "key %v rune %q", tt.key, tt.r)
		if tt.ok {
			assert.Equal(t, tt.want, got)
		}
	}
}

func TestIsQuit(t *testing.T) {
	assert.True(t, isQuit(tcell.KeyEscape, 0))
	assert.True(t, isQuit(tcell.KeyCtrlC, 0))
	assert.True(t, isQuit(tcell.KeyRune, 'q'))
	assert.False(t, isQuit(tcell.KeyRune, 'w'))
}
