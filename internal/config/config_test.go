package config

import (
	"errors"
	"os"
	"testing"
	"time"

	"chunkwalk/internal/platform"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig_KeepsDefaults(t *testing.T) {
	cfg, err := ParseConfig([]byte("movement:\n  move_speed: 3.5\n"))
	require.NoError(t, err)

	assert.Equal(t, float32(3.5), cfg.GetMoveSpeed())
	assert.Equal(t, uint32(256), cfg.World.ChunkDim)
	assert.Equal(t, float32(1.4), cfg.World.TileSideInMeters)
	assert.Equal(t, 960, cfg.GetScreenWidth())
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestParseConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"chunk dim not power of two", "world:\n  chunk_dim: 100\n"},
		{"zero tile side", "world:\n  tile_side_in_meters: 0\n"},
		{"zero pixels", "world:\n  tile_side_in_pixels: 0\n"},
		{"negative speed", "movement:\n  move_speed: -1\n"},
		{"zero height", "player:\n  height: 0\n"},
		{"zero screen", "display:\n  screen_width: 0\n"},
		{"negative report interval", "logging:\n  perf_report_seconds: -1\n"},
		{"audio without rate", "audio:\n  enabled: true\n  sample_rate: 0\n"},
		{"bad yaml", "world: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	cfg := DefaultConfig()
	cfg.World.ChunkDim = 3
	cfg.World.TileSideInPixels = -1
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chunk_dim")
	assert.Contains(t, err.Error(), "tile_side_in_pixels")
}

func TestLoadConfig(t *testing.T) {
	fio := platform.NewMemoryFileIO()
	require.NoError(t, fio.WriteEntireFile("config.yaml", []byte("world:\n  tile_side_in_pixels: 70\n  tile_side_in_meters: 1.75\n")))

	cfg, err := LoadConfig(fio, "config.yaml")
	require.NoError(t, err)
	assert.InDelta(t, 40.0, cfg.MetersToPixels(), 1e-4)
}

func TestLoadConfigOrDefault(t *testing.T) {
	fio := platform.NewMemoryFileIO()

	cfg, found, err := LoadConfigOrDefault(fio, "missing.yaml")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, DefaultConfig(), cfg)

	require.NoError(t, fio.WriteEntireFile("broken.yaml", []byte("world:\n  chunk_dim: 7\n")))
	_, _, err = LoadConfigOrDefault(fio, "broken.yaml")
	require.Error(t, err)
	assert.False(t, errors.Is(err, os.ErrNotExist))
}

func TestMustLoadConfig_Panics(t *testing.T) {
	assert.Panics(t, func() { MustLoadConfig(platform.NewMemoryFileIO(), "missing.yaml") })
}

func TestGetPlayerWidth(t *testing.T) {
	cfg := DefaultConfig()
	assert.InDelta(t, 1.05, cfg.GetPlayerWidth(), 1e-6)
}

func TestGetPerfReportInterval(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 10*time.Second, cfg.GetPerfReportInterval())

	cfg, err := ParseConfig([]byte("logging:\n  perf_report_seconds: 0\n"))
	require.NoError(t, err)
	assert.Zero(t, cfg.GetPerfReportInterval())
}
