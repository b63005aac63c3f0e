package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := Default()
	require.Equal(t, 50, cfg.Engine.StreamCapacity)
	require.Equal(t, 80, cfg.Engine.CaptionWidth)
	require.Equal(t, 3000, cfg.Engine.FrameDurationMS)
	require.Equal(t, 3*time.Second, cfg.Engine.FrameDuration())
	require.Equal(t, "info", cfg.Logging.Level)
	require.Empty(t, cfg.Journal.Path)
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoadPartialFileOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.yaml")
	data := `
engine:
  stream_capacity: 8
journal:
  path: /tmp/rift.db
logging:
  level: debug
  development: true
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 8, cfg.Engine.StreamCapacity)
	// Unset fields fall back to defaults.
	require.Equal(t, 80, cfg.Engine.CaptionWidth)
	require.Equal(t, 3000, cfg.Engine.FrameDurationMS)
	require.Equal(t, "/tmp/rift.db", cfg.Journal.Path)
	require.Equal(t, "debug", cfg.Logging.Level)
	require.True(t, cfg.Logging.Development)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("engine: ["), 0o644))
	_, err := Load(path)
	require.Error(t, err)
}
