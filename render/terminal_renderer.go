package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/orbiter/constant"
	"github.com/lixenwraith/orbiter/engine"
)

// TerminalRenderer draws a simulation onto a tcell screen
type TerminalRenderer struct {
	screen tcell.Screen
	buf    *RenderBuffer
	view   Viewport
	width  int
	height int
}

// NewTerminalRenderer creates a renderer sized to the screen
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	r := &TerminalRenderer{screen: screen, buf: NewRenderBuffer(0, 0)}
	r.Resize(screen.Size())
	return r
}

// Resize adopts new screen dimensions
func (r *TerminalRenderer) Resize(width, height int) {
	r.width, r.height = width, height
	r.buf.Resize(width, height)
	r.view = NewViewport(width, height)
}

// Viewport returns the current world to cell mapping
func (r *TerminalRenderer) Viewport() Viewport {
	return r.view
}

// Buffer exposes the composited frame
func (r *TerminalRenderer) Buffer() *RenderBuffer {
	return r.buf
}

// RenderFrame composites and shows one frame
func (r *TerminalRenderer) RenderFrame(s *engine.Simulation) {
	if w, h := r.screen.Size(); w != r.width || h != r.height {
		r.Resize(w, h)
	}

	r.buf.Clear()
	if r.width < constant.MinTerminalWidth || r.height < constant.MinTerminalHeight {
		r.drawTooSmall()
	} else {
		r.Compose(s)
	}

	r.buf.FlushToScreen(r.screen)
	r.screen.Show()
}

// Compose draws the frame into the buffer without touching the screen
func (r *TerminalRenderer) Compose(s *engine.Simulation) {
	r.drawTrail(s.Trail)
	r.drawPlanet(&s.Planet, s.MappingOn())
	r.drawSatellite(&s.Satellite)

	overlay := BuildOverlay(s)
	for _, t := range overlay.Texts {
		r.drawTextBlock(t)
	}
	for _, b := range overlay.Boxes {
		r.drawBox(b)
	}

	r.drawShadow()
	r.drawBorder()
}

// drawTrail plots every recorded segment, fading with age
func (r *TerminalRenderer) drawTrail(t *engine.Trail) {
	n := t.Len()
	if n == 0 {
		return
	}

	i := 0
	t.Each(func(seg engine.Segment) {
		age := 1 - float64(i)/float64(n)
		fg := TrailColor(age)
		x0, y0 := r.view.ToCell(seg.From)
		x1, y1 := r.view.ToCell(seg.To)
		line(x0, y0, x1, y1, func(x, y int) {
			r.buf.SetFgOnly(x, y, '·', fg)
		})
		i++
	})
}

// drawPlanet fills the disc using half blocks for double vertical resolution
func (r *TerminalRenderer) drawPlanet(p *engine.Planet, moisture bool) {
	x0, y0, x1, y1 := r.view.Span(
		p.Pos.X-constant.PlanetRadius, p.Pos.Y-constant.PlanetRadius,
		2*constant.PlanetRadius, 2*constant.PlanetRadius,
	)

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			upperPt, lowerPt := r.view.HalfCenters(x, y)
			upper, inUpper := PlanetSample(upperPt, p, moisture)
			lower, inLower := PlanetSample(lowerPt, p, moisture)
			if !inUpper && !inLower {
				continue
			}

			under := r.buf.Get(x, y).Bg
			if !inUpper {
				upper = under
			}
			if !inLower {
				lower = under
			}
			r.buf.SetWithBg(x, y, '▀', upper, lower)
		}
	}
}

func (r *TerminalRenderer) drawSatellite(s *engine.Satellite) {
	x, y := r.view.ToCell(s.Pos)
	if s.Crashed() {
		r.buf.SetFgOnly(x, y, CrashGlyph, CrashOrange)
	} else {
		r.buf.SetFgOnly(x, y, DishGlyph(s.Heading), White)
	}
	r.buf.SetBold(x, y)
}

// drawTextBlock keeps lines on distinct rows when the spacing is below one cell
func (r *TerminalRenderer) drawTextBlock(t TextBlock) {
	prevRow := -1
	for i, text := range t.Lines {
		x, y := r.view.ToCell(pt(t.X, t.Y+float64(i)*constant.TextSpacing))
		if y <= prevRow {
			y = prevRow + 1
		}
		prevRow = y
		drawText(r.buf, x, y, text, t.Color, Black, r.width-x)
	}
}

// drawBox widens boxes narrower than their text
func (r *TerminalRenderer) drawBox(b Box) {
	x0, y, x1, _ := r.view.Span(b.X, b.Y, b.W, b.H)
	width := max(x1-x0, textWidth(b.Text))
	for x := x0; x < x0+width; x++ {
		r.buf.SetWithBg(x, y, ' ', Black, White)
	}
	centerText(r.buf, x0, y, width, b.Text, Black, White)
}

func (r *TerminalRenderer) drawShadow() {
	x0, y0, x1, y1 := r.view.Span(constant.ShadowX, constant.ShadowY, constant.ShadowWidth, constant.ShadowHeight)
	r.buf.Dim(x0, y0, x1, y1, constant.ShadowAlpha)
}

func (r *TerminalRenderer) drawBorder() {
	v := r.view
	left, top := v.OffX, v.OffY
	right, bottom := v.OffX+v.Cols-1, v.OffY+v.Rows-1

	for x := left + 1; x < right; x++ {
		r.buf.SetFgOnly(x, top, tcell.RuneHLine, White)
		r.buf.SetFgOnly(x, bottom, tcell.RuneHLine, White)
	}
	for y := top + 1; y < bottom; y++ {
		r.buf.SetFgOnly(left, y, tcell.RuneVLine, White)
		r.buf.SetFgOnly(right, y, tcell.RuneVLine, White)
	}
	r.buf.SetFgOnly(left, top, tcell.RuneULCorner, White)
	r.buf.SetFgOnly(right, top, tcell.RuneURCorner, White)
	r.buf.SetFgOnly(left, bottom, tcell.RuneLLCorner, White)
	r.buf.SetFgOnly(right, bottom, tcell.RuneLRCorner, White)
}

func (r *TerminalRenderer) drawTooSmall() {
	msg := fmt.Sprintf("Terminal too small: need %dx%d", constant.MinTerminalWidth, constant.MinTerminalHeight)
	centerText(r.buf, 0, r.height/2, r.width, msg, White, Black)
}
