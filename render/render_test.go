package render

import (
	"math"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/orbiter/constant"
	"github.com/lixenwraith/orbiter/engine"
	"github.com/lixenwraith/orbiter/vmath"
)

func newTestScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func newTestSim(t *testing.T) *engine.Simulation {
	t.Helper()
	s, err := engine.New(engine.Options{Seed: 11})
	if err != nil {
		t.Fatalf("engine.New: %v", err)
	}
	return s
}

// rowText returns the runes of row y as a string
func rowText(screen tcell.Screen, y int) string {
	w, _ := screen.Size()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := screen.GetContent(x, y)
		sb.WriteRune(r)
	}
	return sb.String()
}

func screenText(screen tcell.Screen) string {
	_, h := screen.Size()
	var sb strings.Builder
	for y := 0; y < h; y++ {
		sb.WriteString(rowText(screen, y))
		sb.WriteByte('\n')
	}
	return sb.String()
}

func TestViewportFitsWorld(t *testing.T) {
	tests := []struct {
		cols, rows int
	}{
		{80, 24},
		{200, 60},
		{60, 20},
		{300, 40},
	}

	for _, tt := range tests {
		v := NewViewport(tt.cols, tt.rows)
		if v.UnitY != v.UnitX*cellAspect {
			t.Errorf("%dx%d: aspect not preserved: %v/%v", tt.cols, tt.rows, v.UnitX, v.UnitY)
		}
		if v.Cols > tt.cols || v.Rows > tt.rows {
			t.Errorf("%dx%d: world spans %dx%d cells", tt.cols, tt.rows, v.Cols, v.Rows)
		}

		x0, y0 := v.ToCell(vmath.Vec2F{})
		x1, y1 := v.ToCell(vmath.Vec2F{X: constant.WorldWidth - 0.01, Y: constant.WorldHeight - 0.01})
		if x0 < 0 || y0 < 0 || x1 >= tt.cols || y1 >= tt.rows {
			t.Errorf("%dx%d: world corners map outside screen: (%d,%d)-(%d,%d)", tt.cols, tt.rows, x0, y0, x1, y1)
		}
	}
}

func TestViewportRoundTrip(t *testing.T) {
	v := NewViewport(120, 40)
	p := vmath.Vec2F{X: constant.PlanetX, Y: constant.PlanetY}
	x, y := v.ToCell(p)
	c := v.CellCenter(x, y)
	if math.Abs(c.X-p.X) > v.UnitX/2 || math.Abs(c.Y-p.Y) > v.UnitY/2 {
		t.Errorf("Cell centre %+v too far from %+v", c, p)
	}
}

func TestLine(t *testing.T) {
	var got [][2]int
	line(0, 0, 4, 2, func(x, y int) { got = append(got, [2]int{x, y}) })

	if got[0] != [2]int{0, 0} || got[len(got)-1] != [2]int{4, 2} {
		t.Fatalf("Endpoints wrong: %v", got)
	}
	if len(got) != 5 {
		t.Errorf("Expected 5 cells for a shallow line, got %d: %v", len(got), got)
	}
	for i := 1; i < len(got); i++ {
		if abs(got[i][0]-got[i-1][0]) > 1 || abs(got[i][1]-got[i-1][1]) > 1 {
			t.Errorf("Gap between %v and %v", got[i-1], got[i])
		}
	}

	var single int
	line(3, 3, 3, 3, func(x, y int) { single++ })
	if single != 1 {
		t.Errorf("Expected one cell for a point, got %d", single)
	}
}

func TestDishGlyph(t *testing.T) {
	tests := []struct {
		name   string
		sat    vmath.Vec2F
		expect rune
	}{
		{"above planet faces down", vmath.Vec2F{X: constant.PlanetX, Y: constant.PlanetY - 100}, '↓'},
		{"below planet faces up", vmath.Vec2F{X: constant.PlanetX, Y: constant.PlanetY + 100}, '↑'},
		{"left of planet faces right", vmath.Vec2F{X: constant.PlanetX - 100, Y: constant.PlanetY}, '→'},
		{"right of planet faces left", vmath.Vec2F{X: constant.PlanetX + 100, Y: constant.PlanetY}, '←'},
		{"upper left faces down-right", vmath.Vec2F{X: constant.PlanetX - 100, Y: constant.PlanetY - 100}, '↘'},
	}

	planet := engine.NewPlanet()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := engine.Satellite{}
			s.Pos = tt.sat
			s.Locate(&planet)
			if got := DishGlyph(s.Heading); got != tt.expect {
				t.Errorf("Expected %q, got %q (heading %v)", tt.expect, got, s.Heading)
			}
		})
	}
}

func TestPlanetSample(t *testing.T) {
	planet := engine.NewPlanet()

	if _, ok := PlanetSample(vmath.Vec2F{X: constant.PlanetX + constant.PlanetRadius + 1, Y: constant.PlanetY}, &planet, false); ok {
		t.Error("Expected point outside the disc to miss")
	}

	centre, ok := PlanetSample(planet.Pos, &planet, false)
	if !ok {
		t.Fatal("Expected the centre to hit")
	}
	edge, _ := PlanetSample(vmath.Vec2F{X: constant.PlanetX + constant.PlanetRadius*0.99, Y: constant.PlanetY}, &planet, false)
	_, _, lc := centre.Hcl()
	_, _, le := edge.Hcl()
	if le >= lc {
		t.Errorf("Expected limb darker than centre: edge L=%v centre L=%v", le, lc)
	}

	wet, _ := PlanetSample(planet.Pos, &planet, true)
	if wet == centre {
		t.Error("Expected moisture map to differ from surface")
	}
}

func TestPlanetSampleSpins(t *testing.T) {
	planet := engine.NewPlanet()
	p := vmath.Vec2F{X: constant.PlanetX + 30, Y: constant.PlanetY + 10}

	before, _ := PlanetSample(p, &planet, false)
	planet.Angle = 90
	after, _ := PlanetSample(p, &planet, false)
	if before == after {
		t.Error("Expected rotation to move the texture under a fixed point")
	}
}

func TestShadeAndTrailColor(t *testing.T) {
	if Shade(White, 1) != Black {
		t.Error("Expected full shade to be black")
	}
	if Shade(White, 0) != White {
		t.Error("Expected zero shade to be unchanged")
	}
	if d := White.DistanceRgb(TrailColor(0)); d > 1e-3 {
		t.Errorf("Expected newest trail white, distance %v", d)
	}
	_, _, newest := TrailColor(0).Hcl()
	_, _, oldest := TrailColor(1).Hcl()
	if oldest >= newest {
		t.Error("Expected old trail darker than new trail")
	}
}

func TestBufferDim(t *testing.T) {
	buf := NewRenderBuffer(4, 2)
	buf.SetWithBg(1, 0, 'x', White, White)
	buf.SetWithBg(3, 1, 'y', White, White)
	buf.Dim(0, 0, 2, 1, 0.5)

	c := buf.Get(1, 0)
	r, _, _ := c.Bg.RGB255()
	if r != 128 && r != 127 {
		t.Errorf("Expected half-dimmed bg, got %d", r)
	}
	if buf.Get(3, 1).Bg != White {
		t.Error("Expected cell outside rect untouched")
	}
}

func TestRenderFrameDrawsHUD(t *testing.T) {
	screen := newTestScreen(t, 120, 40)
	sim := newTestSim(t)
	sim.Step(input0())

	r := NewTerminalRenderer(screen)
	r.RenderFrame(sim)

	text := screenText(screen)
	for _, want := range []string{"Dx", "Dy", "Altitude", "Fuel", "Eccentricity", "1.00000000", "100"} {
		if !strings.Contains(text, want) {
			t.Errorf("Expected %q on screen", want)
		}
	}
	if !strings.Contains(text, "Space Bar = Clear Path") {
		t.Error("Expected controls help on screen")
	}
	if !strings.Contains(text, "BNP Orbiter") {
		t.Error("Expected intro text during the first seconds")
	}
}

func TestRenderFrameDrawsSatelliteAndPlanet(t *testing.T) {
	screen := newTestScreen(t, 120, 40)
	sim := newTestSim(t)
	// Clear of intro text and HUD rows
	sim.Satellite.Pos = vmath.Vec2F{X: constant.PlanetX, Y: 230}
	sim.Satellite.Locate(&sim.Planet)

	r := NewTerminalRenderer(screen)
	r.RenderFrame(sim)

	x, y := r.Viewport().ToCell(sim.Satellite.Pos)
	got, _, _, _ := screen.GetContent(x, y)
	if got != DishGlyph(sim.Satellite.Heading) {
		t.Errorf("Expected satellite glyph at (%d,%d), got %q", x, y, got)
	}

	px, py := r.Viewport().ToCell(sim.Planet.Pos)
	got, _, _, _ = screen.GetContent(px, py)
	if got != '▀' {
		t.Errorf("Expected planet half block at centre, got %q", got)
	}
}

func TestRenderPhaseMessages(t *testing.T) {
	screen := newTestScreen(t, 160, 50)
	sim := newTestSim(t)
	sim.Satellite.Pos = vmath.Vec2F{X: constant.PlanetX, Y: constant.PlanetY - 60}
	sim.Step(input0())

	r := NewTerminalRenderer(screen)
	r.RenderFrame(sim)

	text := screenText(screen)
	if !strings.Contains(text, constant.AtmosphericEntryText) {
		t.Error("Expected atmospheric entry message")
	}
	x, y := r.Viewport().ToCell(sim.Satellite.Pos)
	if got, _, _, _ := screen.GetContent(x, y); got != CrashGlyph {
		t.Errorf("Expected crash glyph, got %q", got)
	}
}

func TestOverlayFuelAndMappingTogether(t *testing.T) {
	for _, rules := range []engine.Rules{{}, {LegacyFuelDrift: true}} {
		sim, err := engine.New(engine.Options{Seed: 11, Rules: rules})
		if err != nil {
			t.Fatalf("engine.New: %v", err)
		}
		sim.Satellite.Pos = vmath.Vec2F{X: constant.PlanetX, Y: constant.PlanetY - 100}
		sim.Satellite.Vel = vmath.Vec2F{}
		sim.Satellite.Fuel = 0
		for i := 0; i < 10; i++ {
			sim.Orbit.Record(100)
		}
		sim.Orbit.Evaluate()
		sim.Step(input0())

		var fuel, mapping bool
		for _, tb := range BuildOverlay(sim).Texts {
			switch tb.Lines[0] {
			case constant.FuelDepletedText:
				fuel = true
			case constant.MappingPrompt:
				mapping = true
			}
		}
		if !fuel || !mapping {
			t.Errorf("Expected fuel and mapping messages with rules %+v, got fuel=%v mapping=%v", rules, fuel, mapping)
		}
	}
}

func TestRenderTooSmall(t *testing.T) {
	screen := newTestScreen(t, 30, 10)
	r := NewTerminalRenderer(screen)
	r.RenderFrame(newTestSim(t))

	if !strings.Contains(rowText(screen, 5), "too small") {
		t.Errorf("Expected size warning, got %q", rowText(screen, 5))
	}
}

func TestRenderFrameFollowsResize(t *testing.T) {
	screen := newTestScreen(t, 80, 24)
	r := NewTerminalRenderer(screen)
	sim := newTestSim(t)
	r.RenderFrame(sim)

	screen.SetSize(160, 48)
	r.RenderFrame(sim)
	if w, h := r.Buffer().Size(); w != 160 || h != 48 {
		t.Errorf("Expected buffer 160x48 after resize, got %dx%d", w, h)
	}
}

func TestShadowDimsBand(t *testing.T) {
	screen := newTestScreen(t, 120, 40)
	sim := newTestSim(t)
	r := NewTerminalRenderer(screen)
	r.Compose(sim)

	// The left half of the planet lies inside the band
	x, y := r.Viewport().ToCell(vmath.Vec2F{X: constant.PlanetX - 20, Y: constant.PlanetY})
	upper, _ := r.Viewport().HalfCenters(x, y)
	lit, ok := PlanetSample(upper, &sim.Planet, false)
	if !ok {
		t.Fatal("Expected sample point on the planet")
	}
	cell := r.Buffer().Get(x, y)
	_, _, lLit := lit.Hcl()
	_, _, lFg := cell.Fg.Hcl()
	if lFg >= lLit {
		t.Errorf("Expected shadowed planet darker: %v >= %v", lFg, lLit)
	}
}

func TestBuildOverlay(t *testing.T) {
	sim := newTestSim(t)
	o := BuildOverlay(sim)

	if len(o.Boxes) != 10 {
		t.Fatalf("Expected 10 HUD boxes, got %d", len(o.Boxes))
	}
	if o.Boxes[0].Text != "Dx" || o.Boxes[9].Text != "1.00000000" {
		t.Errorf("Unexpected boxes %q .. %q", o.Boxes[0].Text, o.Boxes[9].Text)
	}

	for i := 0; i < constant.FrameRate*16; i++ {
		sim.Step(input0())
	}
	for _, tb := range BuildOverlay(sim).Texts {
		if tb.Lines[0] == constant.IntroText[0] {
			t.Error("Expected intro text hidden after 15 seconds")
		}
	}
}

func TestHUDValuesClampFuel(t *testing.T) {
	sim := newTestSim(t)
	sim.Satellite.Fuel = -6
	sim.Satellite.Vel = vmath.Vec2F{X: -2.96, Y: 0.04}

	v := HUDValues(sim)
	if v[0] != "-3.0" || v[1] != "0.0" {
		t.Errorf("Unexpected velocity readouts %q %q", v[0], v[1])
	}
	if v[3] != "0" {
		t.Errorf("Expected fuel readout 0, got %q", v[3])
	}
}
