// Package config loads engine configuration from YAML with defaults
// applied for anything unset.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// #region types

// Config holds all engine settings.
type Config struct {
	Engine  EngineConfig  `yaml:"engine"`
	Journal JournalConfig `yaml:"journal"`
	Logging LoggingConfig `yaml:"logging"`
}

// EngineConfig tunes the interpretation pipeline windows.
type EngineConfig struct {
	StreamCapacity  int `yaml:"stream_capacity"`   // verified-stream retention bound
	CaptionWidth    int `yaml:"caption_width"`     // caption truncation width, runes
	FrameDurationMS int `yaml:"frame_duration_ms"` // per-frame cue length for export
}

// JournalConfig locates the SQLite interpretation journal. An empty
// path disables persistence.
type JournalConfig struct {
	Path string `yaml:"path"`
}

// LoggingConfig selects the zap preset.
type LoggingConfig struct {
	Level       string `yaml:"level"` // debug | info | warn | error
	Development bool   `yaml:"development"`
}

// #endregion types

// #region defaults

// Default returns the standalone-player defaults.
func Default() Config {
	return Config{
		Engine: EngineConfig{
			StreamCapacity:  50,
			CaptionWidth:    80,
			FrameDurationMS: 3000,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// FrameDuration returns the cue length as a duration.
func (e EngineConfig) FrameDuration() time.Duration {
	return time.Duration(e.FrameDurationMS) * time.Millisecond
}

// #endregion defaults

// #region load

// Load reads a YAML config file and overlays it on the defaults. A
// missing path returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg.normalized(), nil
}

// normalized backfills zero values with defaults so partial files work.
func (c Config) normalized() Config {
	def := Default()
	if c.Engine.StreamCapacity <= 0 {
		c.Engine.StreamCapacity = def.Engine.StreamCapacity
	}
	if c.Engine.CaptionWidth <= 0 {
		c.Engine.CaptionWidth = def.Engine.CaptionWidth
	}
	if c.Engine.FrameDurationMS <= 0 {
		c.Engine.FrameDurationMS = def.Engine.FrameDurationMS
	}
	if c.Logging.Level == "" {
		c.Logging.Level = def.Logging.Level
	}
	return c
}

// #endregion load
