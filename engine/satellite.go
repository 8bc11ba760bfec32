package engine

import (
	"math/rand/v2"

	"github.com/lixenwraith/orbiter/constant"
	"github.com/lixenwraith/orbiter/input"
	"github.com/lixenwraith/orbiter/physics"
	"github.com/lixenwraith/orbiter/vmath"
)

// Axis selects the velocity component a thruster acts on
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
)

// Satellite is the player craft
type Satellite struct {
	physics.Kinetic

	Fuel     int
	Mass     float64
	Heading  float64 // degrees, dish toward planet
	Distance float64 // to planet centre, refreshed by Locate
}

// NewSatellite places a satellite in the spawn window with a horizontal insertion speed
func NewSatellite(rng *rand.Rand) Satellite {
	x := constant.SpawnMinX + rng.IntN(constant.SpawnMaxX-constant.SpawnMinX)
	y := constant.SpawnMinY + rng.IntN(constant.SpawnMaxY-constant.SpawnMinY)

	dx := constant.SpawnSpeedX
	if rng.IntN(2) == 0 {
		dx = -dx
	}

	return Satellite{
		Kinetic: physics.Kinetic{
			Pos: vmath.Vec2F{X: float64(x), Y: float64(y)},
			Vel: vmath.Vec2F{X: dx, Y: constant.SpawnSpeedY},
		},
		Fuel: constant.InitialFuel,
		Mass: constant.SatelliteMass,
	}
}

// ApplyThrust adds magnitude to one velocity component and burns fuel
// Returns false without effect when the tank is empty
func (s *Satellite) ApplyThrust(axis Axis, magnitude float64) bool {
	if s.Fuel <= 0 {
		s.Fuel = 0
		return false
	}

	var dv vmath.Vec2F
	switch axis {
	case AxisX:
		dv.X = magnitude
	case AxisY:
		dv.Y = magnitude
	}
	physics.ApplyImpulse(&s.Kinetic, dv)

	s.Fuel -= constant.ThrustFuelCost
	if s.Fuel < 0 {
		s.Fuel = 0
	}
	return true
}

// Locate refreshes heading and distance to the planet
func (s *Satellite) Locate(p *Planet) {
	s.Heading, s.Distance = physics.Bearing(s.Pos, p.Pos, constant.HeadingOffset)
}

// Crashed reports the burnt-up state: both velocity components exactly zero
func (s *Satellite) Crashed() bool {
	return physics.Stopped(&s.Kinetic)
}

// Altitude returns the last located distance
func (s *Satellite) Altitude() float64 {
	return s.Distance
}

// thrusterFor maps the held set to a single thruster, Right > Left > Up > Down
func thrusterFor(held input.KeySet) (input.Key, Axis, float64, bool) {
	switch {
	case held.Has(input.KeyRight):
		return input.KeyRight, AxisX, constant.ThrustDelta, true
	case held.Has(input.KeyLeft):
		return input.KeyLeft, AxisX, -constant.ThrustDelta, true
	case held.Has(input.KeyUp):
		return input.KeyUp, AxisY, -constant.ThrustDelta, true
	case held.Has(input.KeyDown):
		return input.KeyDown, AxisY, constant.ThrustDelta, true
	}
	return input.KeyNone, AxisX, 0, false
}
