package main

import (
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func resetStdLog(t *testing.T) {
	t.Helper()
	prev := log.Writer()
	t.Cleanup(func() { log.SetOutput(prev) })
}

func TestSetupLogging_DisabledByDefault(t *testing.T) {
	resetStdLog(t)

	logger, logFile, err := setupLogging(slog.LevelInfo, false, "")
	if err != nil {
		t.Fatalf("setupLogging: %v", err)
	}
	if logFile != nil {
		t.Error("Expected nil log file when logging is disabled")
		logFile.Close()
	}
	if logger.Enabled(t.Context(), slog.LevelError) {
		t.Error("Expected disabled logger to drop every level")
	}

	if output := log.Writer(); output != io.Discard {
		t.Errorf("Expected log output to be io.Discard, got %v", output)
	}
}

func TestSetupLogging_WritesJSON(t *testing.T) {
	resetStdLog(t)
	logPath := filepath.Join(t.TempDir(), "nested", logFileName)

	logger, logFile, err := setupLogging(slog.LevelInfo, true, logPath)
	if err != nil {
		t.Fatalf("setupLogging: %v", err)
	}
	defer logFile.Close()

	logger.Info("orbit stable", "altitude", 42.5)
	logger.Debug("below level")

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	text := string(data)
	if !strings.Contains(text, `"msg":"orbit stable"`) || !strings.Contains(text, `"altitude":42.5`) {
		t.Errorf("Expected JSON record in log file, got %q", text)
	}
	if strings.Contains(text, "below level") {
		t.Error("Expected debug record filtered at info level")
	}
}

func TestSetupLogging_Rotation(t *testing.T) {
	resetStdLog(t)
	logDir := t.TempDir()
	logPath := filepath.Join(logDir, logFileName)

	// Create a log file just over the limit
	largeFile, err := os.Create(logPath)
	if err != nil {
		t.Fatalf("Failed to create large log file: %v", err)
	}
	if _, err := largeFile.Write(make([]byte, maxLogSize+1)); err != nil {
		t.Fatalf("Failed to write to log file: %v", err)
	}
	largeFile.Close()

	_, logFile, err := setupLogging(slog.LevelInfo, true, logPath)
	if err != nil {
		t.Fatalf("setupLogging: %v", err)
	}
	defer logFile.Close()

	entries, err := os.ReadDir(logDir)
	if err != nil {
		t.Fatalf("Failed to read logs directory: %v", err)
	}

	rotatedFound := false
	for _, entry := range entries {
		if entry.Name() != logFileName && filepath.Ext(entry.Name()) == ".log" {
			rotatedFound = true
			break
		}
	}
	if !rotatedFound {
		t.Error("Expected to find rotated log file")
	}

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatalf("Failed to stat new log file: %v", err)
	}
	if info.Size() > maxLogSize {
		t.Errorf("Expected new log file to be smaller than %d bytes, got %d", maxLogSize, info.Size())
	}
}

func TestSetupLogging_NoStdoutStderr(t *testing.T) {
	resetStdLog(t)

	_, logFile, err := setupLogging(slog.LevelDebug, true, filepath.Join(t.TempDir(), logFileName))
	if err != nil {
		t.Fatalf("setupLogging: %v", err)
	}
	defer logFile.Close()

	output := log.Writer()
	if output == os.Stdout {
		t.Error("Log output should not be stdout")
	}
	if output == os.Stderr {
		t.Error("Log output should not be stderr")
	}
}
