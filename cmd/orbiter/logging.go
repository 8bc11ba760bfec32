package main

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
)

const (
	logFileName = "orbiter.log"
	maxLogSize  = 10 * 1024 * 1024
)

// defaultLogPath returns $XDG_STATE_HOME/orbiter/orbiter.log, creating the directory
func defaultLogPath() (string, error) {
	return xdg.StateFile(filepath.Join("orbiter", logFileName))
}

// setupLogging returns a JSON logger writing to path and the open file
// Disabled logging discards everything since the terminal owns stdout
func setupLogging(level slog.Level, enabled bool, path string) (*slog.Logger, *os.File, error) {
	if !enabled {
		log.SetOutput(io.Discard)
		return slog.New(slog.DiscardHandler), nil, nil
	}

	if path == "" {
		p, err := defaultLogPath()
		if err != nil {
			return nil, nil, fmt.Errorf("log path: %w", err)
		}
		path = p
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	if err := rotateLog(path, time.Now()); err != nil {
		return nil, nil, err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	// Libraries using the standard logger land in the same file
	log.SetOutput(f)

	logger := slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{
		Level:     level,
		AddSource: level <= slog.LevelDebug,
	}))
	return logger, f, nil
}

// rotateLog renames path aside with a timestamp once it exceeds maxLogSize
func rotateLog(path string, now time.Time) error {
	info, err := os.Stat(path)
	if err != nil || info.Size() <= maxLogSize {
		return nil
	}

	ext := filepath.Ext(path)
	rotated := strings.TrimSuffix(path, ext) + "-" + now.Format("20060102-150405") + ext
	if err := os.Rename(path, rotated); err != nil {
		return fmt.Errorf("rotate log: %w", err)
	}
	return nil
}
