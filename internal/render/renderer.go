package render

import (
	"image/color"

	"chunkwalk/internal/world"

	"github.com/hajimehoshi/ebiten/v2"
	ebitext "github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var (
	backgroundColor = color.RGBA{255, 0, 255, 255}
	playerColor     = color.RGBA{255, 230, 0, 255}
	sampleColor     = color.RGBA{255, 40, 40, 255}
	overlayBack     = color.RGBA{0, 0, 0, 160}
	overlayText     = color.RGBA{230, 230, 230, 255}
)

// Renderer draws the tiles around the player, the player and an optional text overlay.
type Renderer struct {
	world        *world.World
	catalog      *world.TileCatalog
	cache        *ImageCache[TileImageKey, *ebiten.Image]
	playerWidth  float32
	playerHeight float32
	ShowSamples  bool
}

func NewRenderer(w *world.World, catalog *world.TileCatalog, playerWidth, playerHeight float32) *Renderer {
	return &Renderer{
		world:        w,
		catalog:      catalog,
		cache:        NewImageCache[TileImageKey, *ebiten.Image](tileImageCacheMaxSize, tileImageCacheTargetSize),
		playerWidth:  playerWidth,
		playerHeight: playerHeight,
	}
}

func (r *Renderer) tileImage(code world.TileCode, size int, highlight bool) *ebiten.Image {
	key := TileImageKey{Code: uint32(code), Size: size, Highlight: highlight}
	return r.cache.GetOrCreate(key, func() *ebiten.Image {
		c := r.catalog.Color(code)
		img := ebiten.NewImage(size, size)
		fill := color.RGBA{uint8(c[0]), uint8(c[1]), uint8(c[2]), 255}
		if highlight {
			fill = color.RGBA{fill.R/2 + 64, fill.G/2 + 64, fill.B/2 + 64, 255}
		}
		img.Fill(fill)
		return img
	})
}

// Draw renders one frame for the committed player position.
func (r *Renderer) Draw(screen *ebiten.Image, player world.Position) {
	bounds := screen.Bounds()
	sw, sh := float32(bounds.Dx()), float32(bounds.Dy())
	screen.Fill(backgroundColor)

	cam := NewCamera(r.world, bounds.Dx(), bounds.Dy())
	size := int(r.world.TileSideInPixels())
	cols, rows := cam.VisibleSpan()
	for relRow := -rows; relRow <= rows; relRow++ {
		for relCol := -cols; relCol <= cols; relCol++ {
			rect := cam.TileRect(player, relCol, relRow)
			if !rect.Intersects(sw, sh) {
				continue
			}
			absX, absY := TileAt(player, relCol, relRow)
			code := r.world.TileCodeAt(absX, absY)
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(float64(rect.MinX), float64(rect.MinY))
			screen.DrawImage(r.tileImage(code, size, relCol == 0 && relRow == 0), op)
		}
	}

	pr := cam.PlayerRect(r.playerWidth, r.playerHeight).Snap(bounds.Dx(), bounds.Dy())
	if !pr.Empty() {
		vector.DrawFilledRect(screen, float32(pr.Min.X), float32(pr.Min.Y), float32(pr.Dx()), float32(pr.Dy()), playerColor, false)
	}

	if r.ShowSamples {
		half := 0.5 * r.playerWidth
		for _, dx := range []float32{-half, 0, half} {
			x := cam.SampleX(dx)
			vector.DrawFilledRect(screen, x-2, cam.CenterY-2, 4, 4, sampleColor, false)
		}
	}
}

// DrawOverlay prints lines of text in the top-left corner.
func DrawOverlay(screen *ebiten.Image, lines []string) {
	if len(lines) == 0 {
		return
	}
	face := basicfont.Face7x13
	lineHeight := face.Height + 2
	width := 0
	for _, line := range lines {
		if w := len(line) * face.Advance; w > width {
			width = w
		}
	}
	vector.DrawFilledRect(screen, 4, 4, float32(width+12), float32(len(lines)*lineHeight+8), overlayBack, false)
	for i, line := range lines {
		ebitext.Draw(screen, line, face, 10, 8+face.Ascent+i*lineHeight, overlayText)
	}
}
