package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/lixenwraith/orbiter/asset"
	"github.com/lixenwraith/orbiter/audio"
	"github.com/lixenwraith/orbiter/config"
	"github.com/lixenwraith/orbiter/core"
	"github.com/lixenwraith/orbiter/engine"
	"github.com/lixenwraith/orbiter/frontend/terminal"
	"github.com/lixenwraith/orbiter/frontend/window"
	"github.com/lixenwraith/orbiter/metrics"
)

func main() {
	if err := run(os.Args[1:], os.Getenv, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "orbiter: %v\n", err)
		os.Exit(1)
	}
}

// run wires configuration, logging, audio and telemetry, then blocks in the chosen frontend
func run(args []string, getenv func(string) string, stdout io.Writer) error {
	fset := flag.NewFlagSet("orbiter", flag.ContinueOnError)
	flags := config.NewFlags(fset)
	if err := fset.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if flags.WriteConfig {
		path, err := writeDefaultConfig(flags.Path)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "wrote %s\n", path)
		return nil
	}

	cfg, err := config.Load(flags.Path, getenv)
	if err != nil {
		return err
	}
	flags.Apply(cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, enabled, _ := cfg.LogLevel()
	logger, logFile, err := setupLogging(level, enabled, cfg.Log.Path)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}
	slog.SetDefault(logger)
	logger.Info("orbiter starting", "frontend", cfg.Frontend, "config", cfg.Source)

	assets, err := asset.Resolve(cfg.AssetDir)
	if err != nil {
		return err
	}
	logger.Debug("assets resolved", "root", assets.Root(), "available", assets.Available())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var collector *metrics.Collector
	if cfg.MetricsAddr != "" {
		collector, err = startMetrics(ctx, cfg.MetricsAddr, logger)
		if err != nil {
			return err
		}
	}

	sound, err := startAudio(cfg, assets, logger)
	if err != nil {
		return err
	}
	defer sound.Cleanup()

	seed := cfg.EffectiveSeed(time.Now())
	opts := engine.Options{Seed: seed, Rules: cfg.Rules(), Cues: sound}
	if collector != nil {
		opts.Observer = collector
	}
	sim, err := engine.New(opts)
	if err != nil {
		return fmt.Errorf("new simulation: %w", err)
	}
	logger.Info("simulation ready", "seed", seed, "legacy_fuel_drift", cfg.LegacyFuelDrift)

	switch cfg.Frontend {
	case config.FrontendWindow:
		wopts := window.Options{Assets: assets, Fullscreen: cfg.Fullscreen, Logger: logger}
		if collector != nil {
			wopts.Timer = collector
		}
		return window.Run(sim, wopts)
	default:
		topts := terminal.Options{Logger: logger}
		if collector != nil {
			topts.Timer = collector
		}
		return runTerminal(ctx, sim, cfg.Color, topts)
	}
}

// runTerminal owns the tcell screen and restores it on exit or panic
func runTerminal(ctx context.Context, sim *engine.Simulation, colorMode string, opts terminal.Options) error {
	screen, err := terminal.NewScreen(colorMode)
	if err != nil {
		return err
	}
	core.RegisterScreen(screen)
	defer func() {
		core.RegisterScreen(nil)
		screen.Fini()
	}()
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return terminal.New(screen, opts).Run(ctx, sim)
}

// startMetrics serves /metrics until ctx ends
func startMetrics(ctx context.Context, addr string, logger *slog.Logger) (*metrics.Collector, error) {
	collector, err := metrics.NewCollector(prometheus.NewRegistry())
	if err != nil {
		return nil, fmt.Errorf("metrics collector: %w", err)
	}
	srv, err := metrics.Listen(addr, collector)
	if err != nil {
		return nil, err
	}

	logger.Info("metrics listening", "addr", srv.Addr())
	core.Go(func() {
		if err := srv.Serve(ctx); err != nil {
			logger.Warn("metrics server stopped", "error", err)
		}
	})
	return collector, nil
}

// startAudio opens the speaker and loads the thrust clip
// A missing device or clip degrades; a clip that fails to decode is fatal
func startAudio(cfg *config.Config, assets asset.Dir, logger *slog.Logger) (*audio.SoundManager, error) {
	sound := audio.NewSoundManager(cfg.AudioConfig())
	if err := sound.Initialize(); err != nil {
		logger.Warn("audio unavailable, continuing silent", "error", err)
	}

	path, err := assets.Path(asset.ThrustAudio)
	switch {
	case errors.Is(err, asset.ErrAssetMissing):
		logger.Info("thrust clip missing, using synthesized tone")
	case err != nil:
		return nil, err
	default:
		if err := sound.LoadThrust(path); err != nil {
			return nil, err
		}
	}
	return sound, nil
}

// writeDefaultConfig writes the commented default config, refusing to overwrite
func writeDefaultConfig(path string) (string, error) {
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return "", fmt.Errorf("config path: %w", err)
		}
		path = p
	}

	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("config %s: %w", path, fs.ErrExist)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(asset.DefaultConfigTOML), 0o644); err != nil {
		return "", fmt.Errorf("write config: %w", err)
	}
	return path, nil
}
