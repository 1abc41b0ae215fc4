package game

import (
	"time"

	"chunkwalk/internal/audio"
	"chunkwalk/internal/config"
	"chunkwalk/internal/game/keytracker"
	"chunkwalk/internal/input"
	"chunkwalk/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"
)

// Game adapts State to ebiten's Update/Draw/Layout loop.
type Game struct {
	state    *State
	config   *config.Config
	frame    input.Frame
	renderer *render.Renderer
	audio    *audio.Output
	keys     *keytracker.KeyStateTracker[ebiten.Key]
	logger   logrus.FieldLogger

	showOverlay bool
}

func NewGame(cfg *config.Config, state *State, out *audio.Output, logger logrus.FieldLogger) *Game {
	g := &Game{
		state:       state,
		config:      cfg,
		renderer:    render.NewRenderer(state.World, state.Catalog, state.PlayerWidth, state.PlayerHeight),
		audio:       out,
		keys:        keytracker.New(ebiten.IsKeyPressed),
		logger:      logger,
		showOverlay: cfg.Display.ShowOverlay,
	}
	if out != nil {
		state.OnRejected = out.Bump
	}
	return g
}

// toggleOverlay flips the debug overlay. Counters restart each time it is shown.
func (g *Game) toggleOverlay() {
	g.showOverlay = !g.showOverlay
	if g.showOverlay {
		g.state.Monitor().Reset()
	}
}

// Update handles all game logic updates for one frame
func (g *Game) Update() error {
	frameTimer := g.state.Monitor().StartFrame()
	defer frameTimer.EndFrame()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.logger.Info("quit requested")
		return ebiten.Termination
	}
	if g.keys.IsKeyJustPressed(ebiten.KeyF1) {
		g.toggleOverlay()
	}
	if g.keys.IsKeyJustPressed(ebiten.KeyF3) {
		g.renderer.ShowSamples = !g.renderer.ShowSamples
	}

	g.frame = g.frame.NewFrame(1 / float32(ebiten.TPS()))
	SampleKeyboard(&g.frame.Controllers[input.KeyboardController], ebiten.IsKeyPressed)
	g.state.Update(&g.frame)

	g.state.Monitor().MaybeReport(g.logger, time.Now())
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.state.Player.Position())
	if g.showOverlay {
		render.DrawOverlay(screen, g.state.OverlayLines())
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.config.GetScreenWidth(), g.config.GetScreenHeight()
}
