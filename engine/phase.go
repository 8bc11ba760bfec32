package engine

import (
	"fmt"

	"github.com/lixenwraith/orbiter/constant"
	"github.com/lixenwraith/orbiter/engine/fsm"
	"github.com/lixenwraith/orbiter/vmath"
)

// Phase is the resolved game state for a frame
type Phase fsm.StateID

const (
	PhaseNone Phase = iota
	PhaseNominal
	PhaseFuelDepleted
	PhaseAtmosphericEntry
	PhaseMappingEligible
)

var phaseNames = map[Phase]string{
	PhaseNone:             "None",
	PhaseNominal:          "Nominal",
	PhaseFuelDepleted:     "FuelDepleted",
	PhaseAtmosphericEntry: "AtmosphericEntry",
	PhaseMappingEligible:  "MappingEligible",
}

func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// Rules selects behavioural variants of phase resolution
type Rules struct {
	// LegacyFuelDrift restores the classic behaviour when the tank runs dry:
	// fuel depletion is checked before atmospheric entry and velocity.x is forced to a fixed drift
	LegacyFuelDrift bool
}

// Guards

func inAtmosphere(s *Simulation) bool {
	return s.Satellite.Distance <= constant.AtmosphereAltitude
}

func fuelDepleted(s *Simulation) bool {
	return s.Satellite.Fuel <= 0
}

func mappingOrbit(s *Simulation) bool {
	d := s.Satellite.Distance
	return s.Orbit.Eccentricity() < constant.MappingMaxEccentricity &&
		d >= constant.MappingMinAltitude &&
		d <= constant.MappingMaxAltitude
}

// Per-frame effects

func burnUp(s *Simulation) {
	s.Satellite.Vel = vmath.Vec2F{}
}

func emptyTank(s *Simulation) {
	s.Satellite.Fuel = 0
	if s.rules.LegacyFuelDrift {
		s.Satellite.Vel.X = constant.LegacyDriftX
	}
}

// newPhaseMachine builds the resolver; rule order is precedence
func newPhaseMachine(rules Rules) (*fsm.Machine[*Simulation], error) {
	m := fsm.NewMachine[*Simulation]()

	m.AddState(fsm.StateID(PhaseNominal), PhaseNominal.String())

	fuel := m.AddState(fsm.StateID(PhaseFuelDepleted), PhaseFuelDepleted.String())
	fuel.OnUpdate = append(fuel.OnUpdate, emptyTank)

	atmo := m.AddState(fsm.StateID(PhaseAtmosphericEntry), PhaseAtmosphericEntry.String())
	atmo.OnUpdate = append(atmo.OnUpdate, burnUp)

	m.AddState(fsm.StateID(PhaseMappingEligible), PhaseMappingEligible.String())

	type rule struct {
		phase Phase
		guard fsm.GuardFunc[*Simulation]
	}
	order := []rule{
		{PhaseAtmosphericEntry, inAtmosphere},
		{PhaseMappingEligible, mappingOrbit},
		{PhaseFuelDepleted, fuelDepleted},
	}
	if rules.LegacyFuelDrift {
		order = []rule{
			{PhaseFuelDepleted, fuelDepleted},
			{PhaseAtmosphericEntry, inAtmosphere},
			{PhaseMappingEligible, mappingOrbit},
		}
	}

	for _, r := range order {
		if err := m.AddRule(fsm.StateID(r.phase), r.guard); err != nil {
			return nil, fmt.Errorf("phase rule %s: %w", r.phase, err)
		}
	}
	if err := m.SetFallback(fsm.StateID(PhaseNominal)); err != nil {
		return nil, fmt.Errorf("phase fallback: %w", err)
	}
	return m, nil
}
