package config

import (
	"flag"
	"strconv"
)

// Flags binds command-line overrides; only flags set on the command line are applied
type Flags struct {
	fs     *flag.FlagSet
	shadow Config

	// Path is the -config value
	Path string
	// Debug forces debug logging
	Debug bool
	// WriteConfig writes the default config file and exits
	WriteConfig bool
}

// flagFields copies a flag-bound field from the shadow config
var flagFields = map[string]func(dst, src *Config){
	"frontend":          func(dst, src *Config) { dst.Frontend = src.Frontend },
	"color":             func(dst, src *Config) { dst.Color = src.Color },
	"fullscreen":        func(dst, src *Config) { dst.Fullscreen = src.Fullscreen },
	"assets":            func(dst, src *Config) { dst.AssetDir = src.AssetDir },
	"seed":              func(dst, src *Config) { dst.Seed = src.Seed },
	"metrics":           func(dst, src *Config) { dst.MetricsAddr = src.MetricsAddr },
	"legacy-fuel-drift": func(dst, src *Config) { dst.LegacyFuelDrift = src.LegacyFuelDrift },
	"mute":              func(dst, src *Config) { dst.Audio.Enabled = src.Audio.Enabled },
	"volume":            func(dst, src *Config) { dst.Audio.Volume = src.Audio.Volume },
	"log-level":         func(dst, src *Config) { dst.Log.Level = src.Log.Level },
	"log-file":          func(dst, src *Config) { dst.Log.Path = src.Log.Path },
}

// muteFlag inverts audio.enabled so -mute reads naturally
type muteFlag struct{ enabled *bool }

func (m muteFlag) String() string {
	if m.enabled == nil {
		return "false"
	}
	return strconv.FormatBool(!*m.enabled)
}

func (m muteFlag) Set(s string) error {
	mute, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	*m.enabled = !mute
	return nil
}

func (m muteFlag) IsBoolFlag() bool { return true }

// NewFlags registers every override on fs
func NewFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{fs: fs, shadow: *Default()}
	s := &f.shadow

	fs.StringVar(&f.Path, "config", "", "Config file (default $XDG_CONFIG_HOME/"+ConfigRelPath+")")
	fs.BoolVar(&f.Debug, "debug", false, "Enable debug logging")
	fs.BoolVar(&f.WriteConfig, "write-config", false, "Write the default config file and exit")

	fs.StringVar(&s.Frontend, "frontend", s.Frontend, "Drawing surface: terminal, window")
	fs.StringVar(&s.Color, "color", s.Color, "Color mode: auto, truecolor, 256")
	fs.BoolVar(&s.Fullscreen, "fullscreen", s.Fullscreen, "Start the window fullscreen")
	fs.StringVar(&s.AssetDir, "assets", s.AssetDir, "Asset directory")
	fs.Uint64Var(&s.Seed, "seed", s.Seed, "Spawn seed, 0 = time based")
	fs.StringVar(&s.MetricsAddr, "metrics", s.MetricsAddr, "Serve Prometheus metrics on addr")
	fs.BoolVar(&s.LegacyFuelDrift, "legacy-fuel-drift", s.LegacyFuelDrift, "Classic fuel-out drift behaviour")
	fs.Var(muteFlag{enabled: &s.Audio.Enabled}, "mute", "Disable audio")
	fs.Float64Var(&s.Audio.Volume, "volume", s.Audio.Volume, "Thrust cue volume 0-1")
	fs.StringVar(&s.Log.Level, "log-level", s.Log.Level, "Log level: debug, info, warn, error")
	fs.StringVar(&s.Log.Path, "log-file", s.Log.Path, "Log file path")

	return f
}

// Apply copies explicitly set flags onto cfg
func (f *Flags) Apply(cfg *Config) {
	f.fs.Visit(func(fl *flag.Flag) {
		if copyField, ok := flagFields[fl.Name]; ok {
			copyField(cfg, &f.shadow)
		}
	})
	if f.Debug {
		cfg.Log.Level = "debug"
	}
}
