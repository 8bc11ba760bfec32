package physics

import (
	"math"

	"github.com/lixenwraith/orbiter/vmath"
)

// Gravity returns the inverse-square velocity change applied to a body for one frame
// body, center: positions in world units
// g: gravitational constant, bodyMass/centerMass: masses
// minDist: floor applied to distance when computing magnitude
// Coincident positions have no defined direction and return zero
func Gravity(body, center vmath.Vec2F, g, bodyMass, centerMass, minDist float64) vmath.Vec2F {
	toCenter := vmath.V2FSub(center, body)
	dist := vmath.V2FMag(toCenter)
	if dist == 0 {
		return vmath.Vec2F{}
	}

	dir := vmath.V2FScale(toCenter, 1/dist)

	if dist < minDist {
		dist = minDist
	}
	force := g * (bodyMass * centerMass) / (dist * dist)

	return vmath.V2FScale(dir, force)
}

// Bearing returns heading in degrees and distance from body to center
// Heading is atan2(dx, dy) of (body - center) less offset, the sprite's forward-axis correction
func Bearing(body, center vmath.Vec2F, offset float64) (heading, distance float64) {
	d := vmath.V2FSub(body, center)
	heading = vmath.Degrees(math.Atan2(d.X, d.Y)) - offset
	distance = math.Hypot(d.X, d.Y)
	return heading, distance
}

// Eccentricity estimates orbital eccentricity from radius samples as (apo-peri)/(apo+peri)
// Returns fallback for an empty window or when apo+peri is zero
func Eccentricity(radii []float64, fallback float64) float64 {
	if len(radii) == 0 {
		return fallback
	}

	apo, peri := radii[0], radii[0]
	for _, r := range radii[1:] {
		if r > apo {
			apo = r
		}
		if r < peri {
			peri = r
		}
	}

	if apo+peri == 0 {
		return fallback
	}
	return (apo - peri) / (apo + peri)
}
