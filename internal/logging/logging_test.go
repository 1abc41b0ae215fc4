package logging

import (
	"os"
	"path/filepath"
	"testing"

	"chunkwalk/internal/config"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Stderr(t *testing.T) {
	logger, closer, err := New(config.LoggingConfig{Level: "debug"})
	require.NoError(t, err)
	defer closer.Close()
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	assert.Equal(t, os.Stderr, logger.Out)
}

func TestNew_DefaultLevel(t *testing.T) {
	logger, closer, err := New(config.LoggingConfig{})
	require.NoError(t, err)
	defer closer.Close()
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
}

func TestNew_BadLevel(t *testing.T) {
	_, _, err := New(config.LoggingConfig{Level: "loud"})
	assert.Error(t, err)
}

func TestNew_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "chunkwalk.log")
	logger, closer, err := New(config.LoggingConfig{Level: "info", File: path, MaxSizeMB: 1})
	require.NoError(t, err)

	logger.WithField("abs_tile_x", 3).Info("player moved")
	logger.Debug("hidden")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "player moved")
	assert.Contains(t, string(data), "abs_tile_x=3")
	assert.NotContains(t, string(data), "hidden")
}
