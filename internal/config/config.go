package config

import (
	"errors"
	"fmt"
	"math/bits"
	"os"
	"time"

	"chunkwalk/internal/platform"

	"gopkg.in/yaml.v3"
)

// Config holds all game configuration values
type Config struct {
	Display  DisplayConfig  `yaml:"display"`
	World    WorldConfig    `yaml:"world"`
	Movement MovementConfig `yaml:"movement"`
	Player   PlayerConfig   `yaml:"player"`
	Audio    AudioConfig    `yaml:"audio"`
	Logging  LoggingConfig  `yaml:"logging"`
}

type DisplayConfig struct {
	ScreenWidth  int    `yaml:"screen_width"`
	ScreenHeight int    `yaml:"screen_height"`
	WindowTitle  string `yaml:"window_title"`
	Resizable    bool   `yaml:"resizable"`
	ShowOverlay  bool   `yaml:"show_overlay"`
}

// WorldConfig holds the geometric constants of the chunked world and the authoring files
// it is built from.
type WorldConfig struct {
	ChunkDim         uint32  `yaml:"chunk_dim"`     // tiles per chunk edge, power of two
	ChunkCountX      uint32  `yaml:"chunk_count_x"` // 0 = unbounded
	ChunkCountY      uint32  `yaml:"chunk_count_y"` // 0 = unbounded
	TileSideInMeters float32 `yaml:"tile_side_in_meters"`
	TileSideInPixels int32   `yaml:"tile_side_in_pixels"`
	WorldFile        string  `yaml:"world_file"`
	TilesFile        string  `yaml:"tiles_file"`
}

type MovementConfig struct {
	MoveSpeed float32 `yaml:"move_speed"` // meters per second
}

// PlayerConfig seeds the player's world position. The offsets may be given outside
// [0, tile_side_in_meters); they are normalized when the player is created.
type PlayerConfig struct {
	StartTileX   uint32  `yaml:"start_tile_x"`
	StartTileY   uint32  `yaml:"start_tile_y"`
	StartOffsetX float32 `yaml:"start_offset_x"`
	StartOffsetY float32 `yaml:"start_offset_y"`
	Height       float32 `yaml:"height"`      // meters
	WidthRatio   float32 `yaml:"width_ratio"` // width = height * ratio
}

type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	SampleRate int     `yaml:"sample_rate"`
	ToneHz     float64 `yaml:"tone_hz"`
	Volume     float64 `yaml:"volume"` // 0..1, 0 = silence
}

type LoggingConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"` // empty = stderr
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`

	PerfReportSeconds int `yaml:"perf_report_seconds"` // 0 = no periodic performance lines
}

// DefaultConfig returns a configuration that runs without any file on disk.
func DefaultConfig() *Config {
	return &Config{
		Display: DisplayConfig{
			ScreenWidth:  960,
			ScreenHeight: 540,
			WindowTitle:  "chunkwalk",
			Resizable:    true,
			ShowOverlay:  true,
		},
		World: WorldConfig{
			ChunkDim:         256,
			TileSideInMeters: 1.4,
			TileSideInPixels: 60,
		},
		Movement: MovementConfig{
			MoveSpeed: 2.0,
		},
		Player: PlayerConfig{
			StartTileX:   3,
			StartTileY:   3,
			StartOffsetX: 0.7,
			StartOffsetY: 0.7,
			Height:       1.4,
			WidthRatio:   0.75,
		},
		Audio: AudioConfig{
			Enabled:    false,
			SampleRate: 48000,
			ToneHz:     400,
			Volume:     0,
		},
		Logging: LoggingConfig{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 7,

			PerfReportSeconds: 10,
		},
	}
}

// LoadConfig loads the configuration from a yaml file. Keys missing from the file keep
// their DefaultConfig values.
func LoadConfig(fileIO platform.FileIO, filename string) (*Config, error) {
	data, err := fileIO.ReadEntireFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return ParseConfig(data)
}

// ParseConfig decodes and validates yaml config data.
func ParseConfig(data []byte) (*Config, error) {
	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// LoadConfigOrDefault loads filename, falling back to DefaultConfig when the file does
// not exist. Any other error is returned.
func LoadConfigOrDefault(fileIO platform.FileIO, filename string) (*Config, bool, error) {
	config, err := LoadConfig(fileIO, filename)
	if err == nil {
		return config, true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), false, nil
	}
	return nil, false, err
}

// MustLoadConfig loads the configuration and panics on error
func MustLoadConfig(fileIO platform.FileIO, filename string) *Config {
	config, err := LoadConfig(fileIO, filename)
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}
	return config
}

// Validate reports configuration errors that would make the world math wrong.
func (c *Config) Validate() error {
	var errs []error
	if c.World.ChunkDim == 0 || bits.OnesCount32(c.World.ChunkDim) != 1 {
		errs = append(errs, fmt.Errorf("world.chunk_dim must be a power of two, got %d", c.World.ChunkDim))
	}
	if !(c.World.TileSideInMeters > 0) {
		errs = append(errs, fmt.Errorf("world.tile_side_in_meters must be positive, got %v", c.World.TileSideInMeters))
	}
	if c.World.TileSideInPixels <= 0 {
		errs = append(errs, fmt.Errorf("world.tile_side_in_pixels must be positive, got %d", c.World.TileSideInPixels))
	}
	if c.Movement.MoveSpeed < 0 {
		errs = append(errs, fmt.Errorf("movement.move_speed must not be negative, got %v", c.Movement.MoveSpeed))
	}
	if !(c.Player.Height > 0) || !(c.Player.WidthRatio > 0) {
		errs = append(errs, errors.New("player.height and player.width_ratio must be positive"))
	}
	if c.Display.ScreenWidth <= 0 || c.Display.ScreenHeight <= 0 {
		errs = append(errs, errors.New("display.screen_width and display.screen_height must be positive"))
	}
	if c.Audio.Enabled && c.Audio.SampleRate <= 0 {
		errs = append(errs, fmt.Errorf("audio.sample_rate must be positive, got %d", c.Audio.SampleRate))
	}
	if c.Logging.PerfReportSeconds < 0 {
		errs = append(errs, fmt.Errorf("logging.perf_report_seconds must not be negative, got %d", c.Logging.PerfReportSeconds))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// Helper functions for easy access to commonly used values
func (c *Config) GetScreenWidth() int {
	return c.Display.ScreenWidth
}

func (c *Config) GetScreenHeight() int {
	return c.Display.ScreenHeight
}

func (c *Config) GetMoveSpeed() float32 {
	return c.Movement.MoveSpeed
}

// MetersToPixels is derived from the two tile side constants.
func (c *Config) MetersToPixels() float32 {
	return float32(c.World.TileSideInPixels) / c.World.TileSideInMeters
}

func (c *Config) GetPerfReportInterval() time.Duration {
	return time.Duration(c.Logging.PerfReportSeconds) * time.Second
}

func (c *Config) GetPlayerWidth() float32 {
	return c.Player.Height * c.Player.WidthRatio
}
