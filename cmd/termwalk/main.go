// Command termwalk walks the chunked world in a terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"chunkwalk/internal/config"
	"chunkwalk/internal/game"
	"chunkwalk/internal/input"
	"chunkwalk/internal/logging"
	"chunkwalk/internal/platform"
	"chunkwalk/internal/termview"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
)

const tickRate = 60

func main() {
	configPath := flag.String("config", "config.yaml", "path to the config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintln(os.Stderr, "termwalk:", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	fileIO := platform.NewOSFileIO()
	cfg, found, err := config.LoadConfigOrDefault(fileIO, configPath)
	if err != nil {
		return err
	}

	logger, closer, err := logging.New(cfg.Logging)
	if err != nil {
		return err
	}
	defer closer.Close()
	if cfg.Logging.File == "" {
		// stderr belongs to the terminal screen
		logger.SetOutput(io.Discard)
	}
	if !found {
		logger.WithField("path", configPath).Warn("config file not found, using defaults")
	}

	state, err := game.LoadState(context.Background(), cfg, fileIO, logger)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	loop(screen, state, logger)
	return nil
}

func loop(screen tcell.Screen, state *game.State, logger logrus.FieldLogger) {
	view := termview.NewView(screen, state.World, state.Catalog)
	hold := termview.NewKeyHold(termview.DefaultHoldFrames)

	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()
	defer close(quit)

	ticker := time.NewTicker(time.Second / tickRate)
	defer ticker.Stop()

	var frame input.Frame
	last := time.Now()
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if termview.IsQuit(ev) {
					logger.Info("quit requested")
					return
				}
				if b, ok := termview.ButtonForKey(ev); ok {
					hold.Press(b)
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case now := <-ticker.C:
			timer := state.Monitor().StartFrame()
			frame = frame.NewFrame(float32(now.Sub(last).Seconds()))
			last = now
			hold.Apply(&frame.Controllers[input.KeyboardController])
			state.Update(&frame)
			view.Draw(state.Player.Position(), statusLines(state))
			timer.EndFrame()
			state.Monitor().MaybeReport(logger, now)
		}
	}
}

func statusLines(state *game.State) []string {
	lines := state.OverlayLines()
	return []string{
		lines[0] + "   " + lines[1],
		lines[2] + "   " + lines[3] + "   " + lines[4] + "   (wasd/arrows, q quits)",
	}
}
