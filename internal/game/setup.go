package game

import (
	"context"
	"fmt"

	"chunkwalk/internal/config"
	"chunkwalk/internal/monitoring"
	"chunkwalk/internal/platform"
	"chunkwalk/internal/world"

	"github.com/sirupsen/logrus"
)

// WorldParams converts the world section of the config.
func WorldParams(cfg *config.Config) world.Params {
	return world.Params{
		ChunkDim:         cfg.World.ChunkDim,
		ChunkCountX:      cfg.World.ChunkCountX,
		ChunkCountY:      cfg.World.ChunkCountY,
		TileSideInMeters: cfg.World.TileSideInMeters,
		TileSideInPixels: cfg.World.TileSideInPixels,
	}
}

// LoadState builds the catalog, the world and the player from the config. Without a
// world file the world is a 4x4 grid of generated rooms.
func LoadState(ctx context.Context, cfg *config.Config, fileIO platform.FileIO, logger logrus.FieldLogger) (*State, error) {
	catalog := world.DefaultTileCatalog()
	if cfg.World.TilesFile != "" {
		catalog = world.NewTileCatalog()
		if err := catalog.LoadTileConfig(fileIO, cfg.World.TilesFile); err != nil {
			return nil, fmt.Errorf("tiles %s: %w", cfg.World.TilesFile, err)
		}
	}

	loader, err := world.NewLoader(fileIO, catalog, WorldParams(cfg), logger)
	if err != nil {
		return nil, err
	}

	var w *world.World
	if cfg.World.WorldFile != "" {
		w, err = loader.LoadWorld(ctx, cfg.World.WorldFile)
	} else {
		w, err = loader.BuildWorld(ctx, &world.WorldDocument{
			Name:     "generated",
			Generate: &world.GenerateSpec{ScreensX: 4, ScreensY: 4},
		})
	}
	if err != nil {
		return nil, err
	}
	monitor := monitoring.NewPerformanceMonitor()
	monitor.SetReportInterval(cfg.GetPerfReportInterval())
	return NewState(cfg, w, catalog, logger, monitor), nil
}
