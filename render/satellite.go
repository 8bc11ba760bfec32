package render

import (
	"math"

	"github.com/lixenwraith/orbiter/constant"
	"github.com/lixenwraith/orbiter/vmath"
)

// CrashGlyph marks a burnt-up satellite
const CrashGlyph = '✹'

// dishGlyphs are indexed by octant, counter-clockwise from screen right
var dishGlyphs = [8]rune{'→', '↗', '↑', '↖', '←', '↙', '↓', '↘'}

// DishDirection returns the screen unit vector the dish faces for a heading
func DishDirection(heading float64) vmath.Vec2F {
	theta := (heading + constant.HeadingOffset) * math.Pi / 180
	return vmath.Vec2F{X: -math.Sin(theta), Y: -math.Cos(theta)}
}

// DishGlyph returns the arrow closest to the dish direction
func DishGlyph(heading float64) rune {
	d := DishDirection(heading)
	octant := int(math.Round(math.Atan2(-d.Y, d.X) / (math.Pi / 4)))
	return dishGlyphs[((octant%8)+8)%8]
}
