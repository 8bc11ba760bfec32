package config

import (
	"fmt"
	"strconv"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "ORBITER_"

// envSetters maps variable suffixes onto config fields
var envSetters = map[string]func(c *Config, v string) error{
	"FRONTEND":  func(c *Config, v string) error { c.Frontend = v; return nil },
	"COLOR":     func(c *Config, v string) error { c.Color = v; return nil },
	"ASSET_DIR": func(c *Config, v string) error { c.AssetDir = v; return nil },
	"LOG_LEVEL": func(c *Config, v string) error { c.Log.Level = v; return nil },
	"LOG_PATH":  func(c *Config, v string) error { c.Log.Path = v; return nil },
	"METRICS_ADDR": func(c *Config, v string) error {
		c.MetricsAddr = v
		return nil
	},
	"FULLSCREEN":        boolSetter(func(c *Config) *bool { return &c.Fullscreen }),
	"LEGACY_FUEL_DRIFT": boolSetter(func(c *Config) *bool { return &c.LegacyFuelDrift }),
	"AUDIO_ENABLED":     boolSetter(func(c *Config) *bool { return &c.Audio.Enabled }),
	"SEED": func(c *Config, v string) error {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return err
		}
		c.Seed = n
		return nil
	},
	"AUDIO_VOLUME": func(c *Config, v string) error {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return err
		}
		c.Audio.Volume = f
		return nil
	},
}

func boolSetter(field func(c *Config) *bool) func(c *Config, v string) error {
	return func(c *Config, v string) error {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return err
		}
		*field(c) = b
		return nil
	}
}

// ApplyEnv overrides fields from ORBITER_* variables; unset or empty variables are skipped
func (c *Config) ApplyEnv(getenv func(string) string) error {
	for suffix, set := range envSetters {
		v := getenv(EnvPrefix + suffix)
		if v == "" {
			continue
		}
		if err := set(c, v); err != nil {
			return fmt.Errorf("%w: %s%s=%q: %v", ErrInvalid, EnvPrefix, suffix, v, err)
		}
	}
	return nil
}
