package terminal

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/orbiter/constant"
	"github.com/lixenwraith/orbiter/engine"
	"github.com/lixenwraith/orbiter/input"
)

type countingCues struct {
	plays, stops int
}

func (c *countingCues) PlayThrust() { c.plays++ }
func (c *countingCues) StopThrust() { c.stops++ }

type recordingTimer struct {
	frames []time.Duration
}

func (r *recordingTimer) ObserveFrameDuration(d time.Duration) { r.frames = append(r.frames, d) }

func newTestScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	screen.SetSize(120, 40)
	t.Cleanup(screen.Fini)
	return screen
}

func newTestSim(t *testing.T, cues engine.Cues) *engine.Simulation {
	t.Helper()
	sim, err := engine.New(engine.Options{Seed: 42, Cues: cues})
	if err != nil {
		t.Fatalf("engine.New: %v", err)
	}
	return sim
}

func TestMapKey(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		key  input.Key
		quit bool
	}{
		{"left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), input.KeyLeft, false},
		{"right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), input.KeyRight, false},
		{"up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), input.KeyUp, false},
		{"down", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), input.KeyDown, false},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), input.KeyEscape, false},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), input.KeySpace, false},
		{"m", tcell.NewEventKey(tcell.KeyRune, 'm', tcell.ModNone), input.KeyMap, false},
		{"M", tcell.NewEventKey(tcell.KeyRune, 'M', tcell.ModShift), input.KeyMap, false},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), input.KeyNone, true},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), input.KeyNone, true},
		{"unmapped", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), input.KeyNone, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, quit := MapKey(tt.ev)
			if key != tt.key || quit != tt.quit {
				t.Errorf("Expected (%v, %v), got (%v, %v)", tt.key, tt.quit, key, quit)
			}
		})
	}
}

func TestHeldKeyThrustsUntilRepeatLapses(t *testing.T) {
	screen := newTestScreen(t)
	clock := input.NewMockClock(time.Unix(1000, 0))
	cues := &countingCues{}
	sim := newTestSim(t, cues)
	f := New(screen, Options{Clock: clock})

	f.HandleEvent(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone))
	f.Tick(sim)
	if sim.Satellite.Fuel != constant.InitialFuel-constant.ThrustFuelCost {
		t.Fatalf("Expected one burn after press, fuel=%d", sim.Satellite.Fuel)
	}

	// Auto-repeat keeps the key held
	clock.Advance(100 * time.Millisecond)
	f.HandleEvent(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone))
	f.Tick(sim)
	if sim.Satellite.Fuel != constant.InitialFuel-2*constant.ThrustFuelCost {
		t.Fatalf("Expected second burn while repeating, fuel=%d", sim.Satellite.Fuel)
	}

	// Repeats stop; the key is released once the repeat window lapses
	clock.Advance(constant.RepeatHold + time.Millisecond)
	f.Tick(sim)
	if sim.Satellite.Fuel != constant.InitialFuel-2*constant.ThrustFuelCost {
		t.Errorf("Expected no burn after release, fuel=%d", sim.Satellite.Fuel)
	}
	if cues.stops != 1 {
		t.Errorf("Expected synthesized key-up to stop thrust once, got %d", cues.stops)
	}
}

func TestSpaceClearsTrail(t *testing.T) {
	screen := newTestScreen(t)
	sim := newTestSim(t, nil)
	f := New(screen, Options{Clock: input.NewMockClock(time.Unix(0, 0))})

	for i := 0; i < 3; i++ {
		f.Tick(sim)
	}
	if sim.Trail.Len() == 0 {
		t.Fatal("Expected trail segments after idle frames")
	}

	f.HandleEvent(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone))
	f.Tick(sim)
	if sim.Trail.Len() != 1 {
		t.Errorf("Expected only this frame's segment after clear, got %d", sim.Trail.Len())
	}
}

func TestQuitKeyEndsFrame(t *testing.T) {
	screen := newTestScreen(t)
	sim := newTestSim(t, nil)
	timer := &recordingTimer{}
	f := New(screen, Options{Clock: input.NewMockClock(time.Unix(0, 0)), Timer: timer})

	f.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone))
	out := f.Tick(sim)
	if !out.Quit {
		t.Error("Expected quit outcome after q")
	}
	if len(timer.frames) != 1 {
		t.Errorf("Expected one timed frame, got %d", len(timer.frames))
	}
}

func TestTickDrawsFrame(t *testing.T) {
	screen := newTestScreen(t)
	sim := newTestSim(t, nil)
	f := New(screen, Options{})

	f.Tick(sim)

	w, h := screen.Size()
	var sb strings.Builder
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, _, _, _ := screen.GetContent(x, y)
			sb.WriteRune(r)
		}
	}
	if !strings.Contains(sb.String(), "Fuel") {
		t.Error("Expected HUD on screen after a tick")
	}
}

func TestRunStopsOnQuit(t *testing.T) {
	screen := newTestScreen(t)
	sim := newTestSim(t, nil)
	f := New(screen, Options{})

	errc := make(chan error, 1)
	go func() { errc <- f.Run(context.Background(), sim) }()

	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	select {
	case err := <-errc:
		if err != nil {
			t.Errorf("Expected clean exit, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop after quit key")
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	screen := newTestScreen(t)
	sim := newTestSim(t, nil)
	f := New(screen, Options{})

	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- f.Run(ctx, sim) }()

	time.Sleep(3 * constant.FrameInterval)
	cancel()

	select {
	case err := <-errc:
		if err != nil {
			t.Errorf("Expected nil on cancel, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop after cancel")
	}
}
