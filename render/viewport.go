package render

import (
	"math"

	"github.com/lixenwraith/orbiter/constant"
	"github.com/lixenwraith/orbiter/vmath"
)

// cellAspect is terminal cell height over width
const cellAspect = 2.0

// Viewport maps world units onto terminal cells, letterboxed and centred
type Viewport struct {
	UnitX, UnitY float64 // world units per cell
	OffX, OffY   int     // cell of the world origin
	Cols, Rows   int     // cells covered by the world
}

// NewViewport fits the world into a cols x rows screen keeping cell aspect
func NewViewport(cols, rows int) Viewport {
	cols, rows = max(cols, 1), max(rows, 1)

	unitX := math.Max(constant.WorldWidth/float64(cols), constant.WorldHeight/(float64(rows)*cellAspect))
	unitY := unitX * cellAspect

	used := [2]int{
		min(cols, int(math.Ceil(constant.WorldWidth/unitX))),
		min(rows, int(math.Ceil(constant.WorldHeight/unitY))),
	}

	return Viewport{
		UnitX: unitX,
		UnitY: unitY,
		OffX:  (cols - used[0]) / 2,
		OffY:  (rows - used[1]) / 2,
		Cols:  used[0],
		Rows:  used[1],
	}
}

// ToCell returns the cell containing world point p
func (v Viewport) ToCell(p vmath.Vec2F) (int, int) {
	return int(math.Floor(p.X/v.UnitX)) + v.OffX, int(math.Floor(p.Y/v.UnitY)) + v.OffY
}

// CellCenter returns the world point at the centre of cell x,y
func (v Viewport) CellCenter(x, y int) vmath.Vec2F {
	return vmath.Vec2F{
		X: (float64(x-v.OffX) + 0.5) * v.UnitX,
		Y: (float64(y-v.OffY) + 0.5) * v.UnitY,
	}
}

// HalfCenters returns the world centres of the upper and lower half of cell x,y
func (v Viewport) HalfCenters(x, y int) (upper, lower vmath.Vec2F) {
	c := v.CellCenter(x, y)
	q := v.UnitY / 4
	return vmath.Vec2F{X: c.X, Y: c.Y - q}, vmath.Vec2F{X: c.X, Y: c.Y + q}
}

// Span returns the world rect in cells as a half-open range
func (v Viewport) Span(x0, y0, w, h float64) (cx0, cy0, cx1, cy1 int) {
	cx0, cy0 = v.ToCell(vmath.Vec2F{X: x0, Y: y0})
	cx1 = v.OffX + int(math.Ceil((x0+w)/v.UnitX))
	cy1 = v.OffY + int(math.Ceil((y0+h)/v.UnitY))
	return cx0, cy0, cx1, cy1
}
