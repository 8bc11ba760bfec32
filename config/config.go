// Package config assembles runtime settings from defaults, a TOML file,
// ORBITER_* environment variables and command-line flags, in that order
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"

	"github.com/lixenwraith/orbiter/audio"
	"github.com/lixenwraith/orbiter/constant"
	"github.com/lixenwraith/orbiter/engine"
)

// Frontend names
const (
	FrontendTerminal = "terminal"
	FrontendWindow   = "window"
)

// Color modes for the terminal frontend
const (
	ColorAuto      = "auto"
	Color256       = "256"
	ColorTrueColor = "truecolor"
)

// ConfigRelPath is the config file location relative to the XDG config dirs
const ConfigRelPath = "orbiter/config.toml"

// Sentinel errors
var (
	ErrUnknownFrontend = errors.New("unknown frontend")
	ErrInvalid         = errors.New("invalid config")
)

// AudioSection configures the thrust cue
type AudioSection struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"`
}

// LogSection configures the debug log
type LogSection struct {
	Level string `toml:"level"` // empty disables logging
	Path  string `toml:"path"`  // empty uses the XDG state dir
}

// Config is the complete runtime configuration
type Config struct {
	Frontend        string       `toml:"frontend"`
	Color           string       `toml:"color"`
	Fullscreen      bool         `toml:"fullscreen"`
	AssetDir        string       `toml:"asset_dir"`
	Seed            uint64       `toml:"seed"`
	MetricsAddr     string       `toml:"metrics_addr"`
	LegacyFuelDrift bool         `toml:"legacy_fuel_drift"`
	Audio           AudioSection `toml:"audio"`
	Log             LogSection   `toml:"log"`

	// Source is the file the config was read from, empty when none
	Source string `toml:"-"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Frontend:   FrontendTerminal,
		Color:      ColorAuto,
		Fullscreen: true,
		Audio: AudioSection{
			Enabled: true,
			Volume:  constant.ThrustVolume,
		},
	}
}

// Load builds a config from defaults, the TOML file at path and the environment
// An empty path searches the XDG config dirs and skips the file when none exists
// An explicit path that cannot be read is an error
func Load(path string, getenv func(string) string) (*Config, error) {
	cfg := Default()

	if path == "" {
		if found, err := xdg.SearchConfigFile(ConfigRelPath); err == nil {
			path = found
		}
	}

	if path != "" {
		if err := cfg.decodeFile(path); err != nil {
			return nil, err
		}
	}

	if getenv != nil {
		if err := cfg.ApplyEnv(getenv); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// DefaultPath returns the XDG path a new config file is written to
func DefaultPath() (string, error) {
	return xdg.ConfigFile(ConfigRelPath)
}

func (c *Config) decodeFile(path string) error {
	md, err := toml.DecodeFile(path, c)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("config file: %w", err)
		}
		return fmt.Errorf("parse %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("%w: %s: unknown keys %s", ErrInvalid, path, strings.Join(keys, ", "))
	}

	c.Source = path
	return nil
}

// Validate checks enumerated values and ranges
func (c *Config) Validate() error {
	switch c.Frontend {
	case FrontendTerminal, FrontendWindow:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFrontend, c.Frontend)
	}

	switch c.Color {
	case ColorAuto, Color256, ColorTrueColor:
	default:
		return fmt.Errorf("%w: color %q", ErrInvalid, c.Color)
	}

	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("%w: audio volume %v outside [0,1]", ErrInvalid, c.Audio.Volume)
	}

	if _, _, err := c.LogLevel(); err != nil {
		return err
	}
	return nil
}

// LogLevel parses the log level; enabled is false when logging is off
func (c *Config) LogLevel() (level slog.Level, enabled bool, err error) {
	if c.Log.Level == "" {
		return slog.LevelInfo, false, nil
	}
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelInfo, false, fmt.Errorf("%w: log level %q", ErrInvalid, c.Log.Level)
	}
	return level, true, nil
}

// EffectiveSeed returns the configured seed, or one derived from now when unset
func (c *Config) EffectiveSeed(now time.Time) uint64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return uint64(now.UnixNano())
}

// Rules returns the simulation rule variant
func (c *Config) Rules() engine.Rules {
	return engine.Rules{LegacyFuelDrift: c.LegacyFuelDrift}
}

// AudioConfig returns the sound manager settings
func (c *Config) AudioConfig() *audio.AudioConfig {
	cfg := audio.DefaultAudioConfig()
	cfg.Enabled = c.Audio.Enabled
	cfg.Volume = c.Audio.Volume
	return cfg
}
