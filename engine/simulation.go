package engine

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/lixenwraith/orbiter/constant"
	"github.com/lixenwraith/orbiter/engine/fsm"
	"github.com/lixenwraith/orbiter/input"
	"github.com/lixenwraith/orbiter/physics"
)

// Options configures a new simulation
type Options struct {
	Seed     uint64
	Rules    Rules
	Cues     Cues     // nil = silent
	Observer Observer // nil = discard
}

// Outcome reports frame results the surface must act on
type Outcome struct {
	Quit           bool
	ExitFullscreen bool
	Phase          Phase
}

// Simulation owns all session state and advances it one frame per Step
// Not safe for concurrent use; the frontend loop owns it
type Simulation struct {
	Satellite Satellite
	Planet    Planet
	Orbit     *OrbitEvaluator
	Trail     *Trail

	tick            uint64
	phase           Phase
	mappingEligible bool
	mappingOn       bool

	rules    Rules
	cues     Cues
	observer Observer
	machine  *fsm.Machine[*Simulation]
}

// New creates a session with a seeded spawn
func New(opts Options) (*Simulation, error) {
	machine, err := newPhaseMachine(opts.Rules)
	if err != nil {
		return nil, fmt.Errorf("build phase machine: %w", err)
	}

	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15))

	s := &Simulation{
		Satellite: NewSatellite(rng),
		Planet:    NewPlanet(),
		Orbit:     NewOrbitEvaluator(constant.EccentricityWindowTicks),
		Trail:     NewTrail(constant.TrailCapacity),
		rules:     opts.Rules,
		cues:      opts.Cues,
		observer:  opts.Observer,
		machine:   machine,
	}
	if s.cues == nil {
		s.cues = silentCues{}
	}
	if s.observer == nil {
		s.observer = nopObserver{}
	}

	// First sample of the first window is the real spawn distance
	s.Satellite.Locate(&s.Planet)

	if err := machine.Init(s); err != nil {
		return nil, fmt.Errorf("init phase machine: %w", err)
	}
	s.phase = Phase(machine.Active())

	return s, nil
}

// Step advances one frame with the sampled input
func (s *Simulation) Step(in input.Frame) Outcome {
	s.tick++
	s.Orbit.Record(s.Satellite.Distance)

	out := s.handleEvents(in.Events)

	s.Satellite.Locate(&s.Planet)
	s.Planet.ApplyGravity(&s.Satellite)

	if s.Orbit.Due(s.tick) {
		s.Orbit.Evaluate()
	}

	prev := s.phase
	if s.machine.Update(s) {
		s.phase = Phase(s.machine.Active())
		s.observer.ObservePhase(prev, s.phase)
	}
	// Eligibility holds whichever phase won, so an empty tank can still map
	s.mappingEligible = mappingOrbit(s)

	s.Planet.Rotate()
	s.updateSatellite(in.Held)

	s.observer.ObserveFrame(s)

	out.Phase = s.phase
	return out
}

// handleEvents applies discrete events in arrival order
func (s *Simulation) handleEvents(events []input.Event) Outcome {
	var out Outcome
	for _, ev := range events {
		switch ev.Type {
		case input.EventQuit:
			out.Quit = true
		case input.EventKeyDown:
			switch ev.Key {
			case input.KeyEscape:
				out.ExitFullscreen = true
			case input.KeySpace:
				s.Trail.Clear()
			case input.KeyMap:
				if s.mappingEligible {
					s.mappingOn = true
				}
			}
		case input.EventKeyUp:
			s.cues.StopThrust()
			s.mappingOn = false
		}
	}
	return out
}

// updateSatellite fires at most one thruster, integrates and records the trail
func (s *Simulation) updateSatellite(held input.KeySet) {
	if key, axis, mag, ok := thrusterFor(held); ok {
		if s.Satellite.ApplyThrust(axis, mag) {
			s.cues.PlayThrust()
			s.observer.ObserveThrust(key)
		}
	}

	prev := physics.Integrate(&s.Satellite.Kinetic)
	s.Trail.Add(prev, s.Satellite.Pos)
}

// Tick returns the number of completed frames
func (s *Simulation) Tick() uint64 {
	return s.tick
}

// Elapsed returns simulated time derived from the frame count
func (s *Simulation) Elapsed() time.Duration {
	return time.Duration(s.tick) * constant.FrameInterval
}

// Phase returns the state resolved on the last Step
func (s *Simulation) Phase() Phase {
	return s.phase
}

// MappingEligible reports whether the orbit qualifies for soil-moisture mapping
func (s *Simulation) MappingEligible() bool {
	return s.mappingEligible
}

// MappingOn reports whether the moisture overlay is shown
func (s *Simulation) MappingOn() bool {
	return s.mappingOn
}

// Eccentricity returns the last evaluated eccentricity
func (s *Simulation) Eccentricity() float64 {
	return s.Orbit.Eccentricity()
}

// DisplayFuel returns fuel clamped for display
func (s *Simulation) DisplayFuel() int {
	if s.Satellite.Fuel < 0 {
		return 0
	}
	return s.Satellite.Fuel
}

// Rules returns the active rule variant
func (s *Simulation) Rules() Rules {
	return s.rules
}
