package render

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/orbiter/constant"
	"github.com/lixenwraith/orbiter/engine"
	"github.com/lixenwraith/orbiter/vmath"
)

// limbDarkening is the shade applied at the disc edge
const limbDarkening = 0.45

// PlanetSample returns the surface color at world point p, false outside the disc
// The texture spins counter-clockwise on screen with the planet angle
func PlanetSample(p vmath.Vec2F, planet *engine.Planet, moisture bool) (colorful.Color, bool) {
	d := vmath.V2FSub(p, planet.Pos)
	nx, ny := d.X/constant.PlanetRadius, d.Y/constant.PlanetRadius
	rr := nx*nx + ny*ny
	if rr > 1 {
		return Black, false
	}

	sin, cos := math.Sincos(planet.Angle * math.Pi / 180)
	u := nx*cos - ny*sin
	v := nx*sin + ny*cos
	z := math.Sqrt(math.Max(0, 1-rr))

	lat := math.Asin(math.Max(-1, math.Min(1, -v)))
	lon := math.Atan2(u, z)

	c := SurfaceColor(lon, lat, moisture)
	return Shade(c, limbDarkening*(1-z)), true
}
