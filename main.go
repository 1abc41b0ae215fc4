package main

import (
	"context"
	"flag"
	"log"

	"chunkwalk/internal/audio"
	"chunkwalk/internal/config"
	"chunkwalk/internal/game"
	"chunkwalk/internal/logging"
	"chunkwalk/internal/platform"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the config file")
	flag.Parse()

	// Load configuration
	fileIO := platform.NewOSFileIO()
	cfg := config.MustLoadConfig(fileIO, *configPath)

	logger, closer, err := logging.New(cfg.Logging)
	if err != nil {
		log.Fatal(err)
	}
	defer closer.Close()

	state, err := game.LoadState(context.Background(), cfg, fileIO, logger)
	if err != nil {
		logger.WithError(err).Fatal("failed to load world")
	}

	out := audio.NewOutput(cfg.Audio, logger)
	if err := out.Start(); err != nil {
		// Non-fatal, the game runs without sound
		logger.WithError(err).Warn("audio initialization failed")
	}
	defer out.Close()

	// Set window properties from config
	ebiten.SetWindowSize(cfg.GetScreenWidth(), cfg.GetScreenHeight())
	ebiten.SetWindowTitle(cfg.Display.WindowTitle)
	if cfg.Display.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	g := game.NewGame(cfg, state, out, logger)
	if err := ebiten.RunGame(g); err != nil {
		logger.WithError(err).Error("game exited with error")
	}
	logger.WithFields(state.Monitor().GetSnapshot().Fields()).Info("session finished")
}
