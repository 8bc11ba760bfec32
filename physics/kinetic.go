package physics

import (
	"github.com/lixenwraith/orbiter/vmath"
)

// Kinetic is the float state of a moving body
type Kinetic struct {
	Pos vmath.Vec2F
	Vel vmath.Vec2F
}

// Integrate performs an explicit Euler step with dt of one frame: p = p + v
// Returns the position before the step
func Integrate(k *Kinetic) (prev vmath.Vec2F) {
	prev = k.Pos
	k.Pos = vmath.V2FAdd(k.Pos, k.Vel)
	return prev
}

// ApplyImpulse adds velocity delta
func ApplyImpulse(k *Kinetic, dv vmath.Vec2F) {
	k.Vel = vmath.V2FAdd(k.Vel, dv)
}

// SetImpulse overrides velocity
func SetImpulse(k *Kinetic, v vmath.Vec2F) {
	k.Vel = v
}

// Stopped reports whether velocity is exactly zero on both axes
func Stopped(k *Kinetic) bool {
	return vmath.V2FIsZero(k.Vel)
}
