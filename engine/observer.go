package engine

import "github.com/lixenwraith/orbiter/input"

// Cues receives audio cues from the simulation
type Cues interface {
	PlayThrust()
	StopThrust()
}

// Observer receives per-frame telemetry
type Observer interface {
	ObserveFrame(s *Simulation)
	ObserveThrust(key input.Key)
	ObservePhase(from, to Phase)
}

type silentCues struct{}

func (silentCues) PlayThrust() {}
func (silentCues) StopThrust() {}

type nopObserver struct{}

func (nopObserver) ObserveFrame(*Simulation)  {}
func (nopObserver) ObserveThrust(input.Key)   {}
func (nopObserver) ObservePhase(Phase, Phase) {}
