package engine

import (
	"github.com/lixenwraith/orbiter/constant"
	"github.com/lixenwraith/orbiter/physics"
	"github.com/lixenwraith/orbiter/vmath"
)

// Planet is the fixed gravity source
type Planet struct {
	Pos   vmath.Vec2F
	Mass  float64
	Angle float64 // degrees in [0, 360)
}

// NewPlanet creates the planet at its fixed screen position
func NewPlanet() Planet {
	return Planet{
		Pos:  vmath.Vec2F{X: constant.PlanetX, Y: constant.PlanetY},
		Mass: constant.PlanetMass,
	}
}

// Rotate advances the spin by one frame
func (p *Planet) Rotate() {
	p.Angle = vmath.WrapDegrees(p.Angle + constant.PlanetRotationStep)
}

// ApplyGravity adds one frame of inverse-square pull to the satellite velocity
func (p *Planet) ApplyGravity(s *Satellite) {
	dv := physics.Gravity(s.Pos, p.Pos, constant.GravityConstant, s.Mass, p.Mass, constant.MinGravityDistance)
	physics.ApplyImpulse(&s.Kinetic, dv)
}
