package core

import (
	"bytes"
	"strings"
	"testing"
)

type fakeScreen struct {
	finis int
}

func (f *fakeScreen) Fini() { f.finis++ }

func captureCrash(t *testing.T) (*bytes.Buffer, *int) {
	t.Helper()
	var out bytes.Buffer
	code := -1
	prevOut, prevExit := crashOut, crashExit
	crashOut = &out
	crashExit = func(c int) { code = c }
	t.Cleanup(func() {
		crashOut, crashExit = prevOut, prevExit
		RegisterScreen(nil)
	})
	return &out, &code
}

func TestHandleCrashRestoresScreen(t *testing.T) {
	out, code := captureCrash(t)
	screen := &fakeScreen{}
	RegisterScreen(screen)

	HandleCrash("boom")

	if screen.finis != 1 {
		t.Errorf("Expected screen finalized once, got %d", screen.finis)
	}
	if *code != 1 {
		t.Errorf("Expected exit code 1, got %d", *code)
	}
	if !strings.Contains(out.String(), "CRASH DETECTED: boom") {
		t.Errorf("Expected crash banner in output, got %q", out.String())
	}
	if !strings.Contains(out.String(), "Stack Trace:") {
		t.Error("Expected stack trace in output")
	}

	// Screen is released after the first crash
	HandleCrash("again")
	if screen.finis != 1 {
		t.Errorf("Expected no second Fini, got %d", screen.finis)
	}
}

func TestHandleCrashNilIsNoop(t *testing.T) {
	out, code := captureCrash(t)
	screen := &fakeScreen{}
	RegisterScreen(screen)

	HandleCrash(nil)

	if screen.finis != 0 || *code != -1 || out.Len() != 0 {
		t.Errorf("Expected nil recover value to be ignored, finis=%d code=%d out=%q", screen.finis, *code, out.String())
	}
}

func TestGoRecoversPanic(t *testing.T) {
	_, code := captureCrash(t)
	done := make(chan struct{})
	crashExit = func(c int) {
		*code = c
		close(done)
	}

	Go(func() { panic("worker failed") })
	<-done

	if *code != 1 {
		t.Errorf("Expected exit code 1 from recovered goroutine, got %d", *code)
	}
}
