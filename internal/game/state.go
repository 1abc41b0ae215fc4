package game

import (
	"fmt"

	"chunkwalk/internal/config"
	"chunkwalk/internal/input"
	"chunkwalk/internal/monitoring"
	"chunkwalk/internal/movement"
	"chunkwalk/internal/world"

	"github.com/sirupsen/logrus"
)

// State is everything one game session owns. Hosts create it once and pass it to every
// frame update; nothing else writes the player's position.
type State struct {
	World   *world.World
	Catalog *world.TileCatalog
	Player  *movement.Entity
	Mover   movement.Mover

	PlayerWidth  float32
	PlayerHeight float32

	LastOutcome movement.Outcome
	OnRejected  func()

	logger  logrus.FieldLogger
	monitor *monitoring.PerformanceMonitor
}

// NewState places the player at the configured seed position.
func NewState(cfg *config.Config, w *world.World, catalog *world.TileCatalog, logger logrus.FieldLogger, monitor *monitoring.PerformanceMonitor) *State {
	seed := world.Position{
		AbsTileX: cfg.Player.StartTileX,
		AbsTileY: cfg.Player.StartTileY,
		OffsetX:  cfg.Player.StartOffsetX,
		OffsetY:  cfg.Player.StartOffsetY,
	}
	if monitor == nil {
		monitor = monitoring.NewPerformanceMonitor()
	}
	s := &State{
		World:        w,
		Catalog:      catalog,
		Player:       movement.NewEntity(w, seed, cfg.GetPlayerWidth()),
		Mover:        movement.Mover{Speed: cfg.GetMoveSpeed()},
		PlayerWidth:  cfg.GetPlayerWidth(),
		PlayerHeight: cfg.Player.Height,
		logger:       logger,
		monitor:      monitor,
	}
	p := s.Player.Position()
	logger.WithFields(logrus.Fields{
		"abs_tile_x": p.AbsTileX,
		"abs_tile_y": p.AbsTileY,
		"offset_x":   p.OffsetX,
		"offset_y":   p.OffsetY,
	}).Info("player placed")
	if !w.IsWorldPointEmpty(p) {
		logger.WithField("tile", catalog.Name(w.TileAt(p))).Warn("player starts inside a blocked tile")
	}
	return s
}

// Update runs one movement step for every connected controller.
func (s *State) Update(frame *input.Frame) movement.Outcome {
	outcome := movement.Idle
	for i := range frame.Controllers {
		c := &frame.Controllers[i]
		if !c.IsConnected {
			continue
		}
		before := s.Player.Position()
		result := s.Mover.Update(s.World, s.Player, c, frame.DtForFrame)
		s.monitor.RecordStep(result)

		switch result {
		case movement.Committed:
			after := s.Player.Position()
			if after.AbsTileX != before.AbsTileX || after.AbsTileY != before.AbsTileY {
				cp := s.World.ChunkPositionOf(after.AbsTileX, after.AbsTileY)
				s.logger.WithFields(logrus.Fields{
					"controller": i,
					"abs_tile_x": after.AbsTileX,
					"abs_tile_y": after.AbsTileY,
					"chunk_x":    cp.ChunkX,
					"chunk_y":    cp.ChunkY,
				}).Debug("player entered tile")
			}
		case movement.Rejected:
			if s.LastOutcome != movement.Rejected && s.OnRejected != nil {
				s.OnRejected()
			}
		}
		if result != movement.Idle {
			outcome = result
		}
	}
	s.LastOutcome = outcome
	return outcome
}

// OverlayLines describes the current position for debug displays.
func (s *State) OverlayLines() []string {
	p := s.Player.Position()
	cp := s.World.ChunkPositionOf(p.AbsTileX, p.AbsTileY)
	snap := s.monitor.GetSnapshot()
	return []string{
		fmt.Sprintf("tile  %d, %d", p.AbsTileX, p.AbsTileY),
		fmt.Sprintf("off   %.3f, %.3f m", p.OffsetX, p.OffsetY),
		fmt.Sprintf("chunk %d, %d  local %d, %d", cp.ChunkX, cp.ChunkY, cp.LocalX, cp.LocalY),
		fmt.Sprintf("under %s", s.Catalog.Name(s.World.TileAt(p))),
		fmt.Sprintf("step  %s", s.LastOutcome),
		fmt.Sprintf("fps   %.1f  frame %.2f ms", snap.FramesPerSecond, float64(snap.AvgFrame.Microseconds())/1000),
		fmt.Sprintf("moves %d ok / %d blocked", snap.StepsCommitted, snap.StepsRejected),
		fmt.Sprintf("world %d chunks  dim %d  shift %d  mask %#x  side %.2f m",
			s.World.ChunkCount(), s.World.ChunkDim(), s.World.ChunkShift(), s.World.ChunkMask(), s.World.TileSideInMeters()),
	}
}

func (s *State) Monitor() *monitoring.PerformanceMonitor {
	return s.monitor
}
