package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/orbiter/constant"
	"github.com/lixenwraith/orbiter/engine"
	"github.com/lixenwraith/orbiter/render"
	"github.com/lixenwraith/orbiter/vmath"
)

// Debug font cell size
const (
	debugGlyphW = 6
	debugGlyphH = 16
)

const (
	satelliteRadius = 4
	dishLength      = 9
	crashRadius     = 6
)

// trailCursor tracks how much of the trail the persistent layer already holds
type trailCursor struct {
	gen   uint64
	drawn uint64
}

// advance reports whether the layer must be wiped and how many newest segments to draw
func (c *trailCursor) advance(gen, added uint64, length int) (wipe bool, n int) {
	if gen != c.gen {
		c.gen = gen
		c.drawn = 0
		wipe = true
	}
	n = int(added - c.drawn)
	if n > length {
		n = length
	}
	c.drawn = added
	return wipe, n
}

// syncTrail draws new segments onto the layer, wiping it after a clear
func (g *Game) syncTrail() {
	t := g.sim.Trail
	wipe, n := g.trailCursor.advance(t.Generation(), t.Added(), t.Len())
	if wipe {
		g.trailLayer.Clear()
	}
	t.EachRecent(n, func(seg engine.Segment) {
		vector.StrokeLine(g.trailLayer,
			float32(seg.From.X), float32(seg.From.Y),
			float32(seg.To.X), float32(seg.To.Y),
			1, render.White, true)
	})
}

func (g *Game) drawPlanet(screen *ebiten.Image) {
	p := &g.sim.Planet
	img := g.sprites.mars
	if g.sim.MappingOn() {
		img = g.sprites.marsWater
	}

	if img != nil {
		var op ebiten.DrawImageOptions
		op.GeoM = spriteGeoM(img, p.Pos.X, p.Pos.Y, 2*constant.PlanetRadius, p.Angle)
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(img, &op)
		return
	}

	g.paintPlanet()
	var op ebiten.DrawImageOptions
	op.GeoM.Translate(p.Pos.X-constant.PlanetRadius, p.Pos.Y-constant.PlanetRadius)
	screen.DrawImage(g.planetLayer, &op)
}

// paintPlanet rasterizes the procedural surface into the planet layer
func (g *Game) paintPlanet() {
	p := &g.sim.Planet
	size := int(2 * constant.PlanetRadius)
	originX := p.Pos.X - constant.PlanetRadius
	originY := p.Pos.Y - constant.PlanetRadius
	moisture := g.sim.MappingOn()

	for py := 0; py < size; py++ {
		for px := 0; px < size; px++ {
			i := 4 * (py*size + px)
			at := vmath.Vec2F{X: originX + float64(px) + 0.5, Y: originY + float64(py) + 0.5}
			c, ok := render.PlanetSample(at, p, moisture)
			if !ok {
				g.planetPix[i], g.planetPix[i+1], g.planetPix[i+2], g.planetPix[i+3] = 0, 0, 0, 0
				continue
			}
			r, gr, b := c.Clamped().RGB255()
			g.planetPix[i], g.planetPix[i+1], g.planetPix[i+2], g.planetPix[i+3] = r, gr, b, 0xff
		}
	}
	g.planetLayer.WritePixels(g.planetPix)
}

func (g *Game) drawSatellite(screen *ebiten.Image) {
	s := &g.sim.Satellite
	x, y := float32(s.Pos.X), float32(s.Pos.Y)

	if s.Crashed() {
		if g.sprites.satelliteCrash != nil {
			var op ebiten.DrawImageOptions
			op.GeoM = spriteGeoM(g.sprites.satelliteCrash, s.Pos.X, s.Pos.Y, 0, 0)
			screen.DrawImage(g.sprites.satelliteCrash, &op)
			return
		}
		vector.DrawFilledCircle(screen, x, y, crashRadius, render.CrashOrange, true)
		return
	}

	if g.sprites.satellite != nil {
		var op ebiten.DrawImageOptions
		op.GeoM = spriteGeoM(g.sprites.satellite, s.Pos.X, s.Pos.Y, 0, s.Heading)
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(g.sprites.satellite, &op)
		return
	}

	dish := render.DishDirection(s.Heading)
	vector.DrawFilledCircle(screen, x, y, satelliteRadius, render.White, true)
	vector.StrokeLine(screen, x, y,
		x+float32(dish.X*dishLength), y+float32(dish.Y*dishLength),
		2, render.White, true)
}

// drawText prints s with its top-left at (x, y) tinted c
func (g *Game) drawText(screen *ebiten.Image, s string, x, y float64, c colorful.Color) {
	g.textScratch.Clear()
	ebitenutil.DebugPrintAt(g.textScratch, s, 0, 0)

	var op ebiten.DrawImageOptions
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	screen.DrawImage(g.textScratch, &op)
}

func textWidth(s string) float64 {
	return float64(runewidth.StringWidth(s) * debugGlyphW)
}

func (g *Game) drawTextBlock(screen *ebiten.Image, t render.TextBlock) {
	for i, line := range t.Lines {
		y := t.Y + float64(i)*constant.TextSpacing
		vector.DrawFilledRect(screen, float32(t.X), float32(y),
			float32(textWidth(line)), debugGlyphH, render.Black, false)
		g.drawText(screen, line, t.X, y, t.Color)
	}
}

// drawBox widens boxes narrower than their text
func (g *Game) drawBox(screen *ebiten.Image, b render.Box) {
	tw := textWidth(b.Text)
	w := max(b.W, tw)
	vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(w), float32(b.H), render.White, false)
	g.drawText(screen, b.Text, b.X+(w-tw)/2, b.Y+(b.H-debugGlyphH)/2, render.Black)
}

func drawShadow(screen *ebiten.Image) {
	shade := color.RGBA{A: uint8(constant.ShadowAlpha * 255)}
	vector.DrawFilledRect(screen,
		constant.ShadowX, constant.ShadowY, constant.ShadowWidth, constant.ShadowHeight,
		shade, false)
}

func drawBorder(screen *ebiten.Image) {
	vector.StrokeRect(screen, 1, 1, constant.WorldWidth-2, constant.WorldHeight-2, 1, render.White, false)
}
