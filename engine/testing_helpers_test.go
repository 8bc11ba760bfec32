package engine

import (
	"testing"

	"github.com/lixenwraith/orbiter/input"
	"github.com/lixenwraith/orbiter/vmath"
)

// recordingCues counts audio cues
type recordingCues struct {
	plays, stops int
}

func (c *recordingCues) PlayThrust() { c.plays++ }
func (c *recordingCues) StopThrust() { c.stops++ }

// recordingObserver captures telemetry callbacks
type recordingObserver struct {
	frames  int
	thrusts []input.Key
	phases  [][2]Phase
}

func (o *recordingObserver) ObserveFrame(*Simulation)  { o.frames++ }
func (o *recordingObserver) ObserveThrust(k input.Key) { o.thrusts = append(o.thrusts, k) }
func (o *recordingObserver) ObservePhase(from, to Phase) {
	o.phases = append(o.phases, [2]Phase{from, to})
}

func newTestSim(t *testing.T, rules Rules) (*Simulation, *recordingCues, *recordingObserver) {
	t.Helper()
	cues := &recordingCues{}
	obs := &recordingObserver{}
	s, err := New(Options{Seed: 42, Rules: rules, Cues: cues, Observer: obs})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s, cues, obs
}

// place teleports the satellite and refreshes its bearing
func place(s *Simulation, x, y, vx, vy float64) {
	s.Satellite.Pos = vmath.Vec2F{X: x, Y: y}
	s.Satellite.Vel = vmath.Vec2F{X: vx, Y: vy}
	s.Satellite.Locate(&s.Planet)
}

func idle() input.Frame {
	return input.Frame{}
}

func hold(keys ...input.Key) input.Frame {
	return input.Frame{Held: input.NewKeySet(keys...)}
}

func events(evs ...input.Event) input.Frame {
	return input.Frame{Events: evs}
}

func vec(x, y float64) vmath.Vec2F {
	return vmath.Vec2F{X: x, Y: y}
}

func near(a, b vmath.Vec2F) bool {
	return vmath.V2FMag(vmath.V2FSub(a, b)) < 1e-9
}
