// Package window runs the game in a desktop window driven by ebiten
package window

import (
	"fmt"
	"image/color"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/orbiter/asset"
	"github.com/lixenwraith/orbiter/constant"
	"github.com/lixenwraith/orbiter/engine"
	"github.com/lixenwraith/orbiter/render"
)

// FrameTimer receives the wall time spent in each update
type FrameTimer interface {
	ObserveFrameDuration(d time.Duration)
}

// Options configures the window frontend
type Options struct {
	Assets     asset.Dir
	Fullscreen bool
	Timer      FrameTimer   // nil = untimed
	Logger     *slog.Logger // nil = discard
}

// Game adapts a simulation to ebiten's update and draw callbacks
type Game struct {
	sim     *engine.Simulation
	sprites sprites
	keys    KeyState
	timer   FrameTimer
	log     *slog.Logger

	trailLayer  *ebiten.Image
	trailCursor trailCursor
	planetLayer *ebiten.Image
	planetPix   []byte
	textScratch *ebiten.Image
}

// NewGame loads sprites and allocates the drawing layers
func NewGame(sim *engine.Simulation, opts Options) (*Game, error) {
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}

	sp, err := loadSprites(opts.Assets)
	if err != nil {
		return nil, fmt.Errorf("load sprites: %w", err)
	}

	size := int(2 * constant.PlanetRadius)
	g := &Game{
		sim:         sim,
		sprites:     sp,
		keys:        ebitenKeys{},
		timer:       opts.Timer,
		log:         opts.Logger,
		trailLayer:  ebiten.NewImage(int(constant.WorldWidth), int(constant.WorldHeight)),
		planetLayer: ebiten.NewImage(size, size),
		planetPix:   make([]byte, 4*size*size),
		textScratch: ebiten.NewImage(int(constant.WorldWidth), debugGlyphH),
	}
	g.log.Info("window sprites loaded",
		"satellite", sp.satellite != nil,
		"mars", sp.mars != nil,
		"loading", sp.loading != nil)
	return g, nil
}

// Run opens the window and blocks until quit
func Run(sim *engine.Simulation, opts Options) error {
	g, err := NewGame(sim, opts)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(int(constant.WorldWidth), int(constant.WorldHeight))
	ebiten.SetWindowTitle(constant.WindowTitle)
	ebiten.SetTPS(constant.FrameRate)
	ebiten.SetFullscreen(opts.Fullscreen)
	ebiten.SetWindowClosingHandled(true)

	// Termination from Update makes RunGame return nil
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}

// Update advances one simulation frame per tick
func (g *Game) Update() error {
	start := time.Now()

	out := g.sim.Step(SampleFrame(g.keys, ebiten.IsWindowBeingClosed()))
	if out.ExitFullscreen && ebiten.IsFullscreen() {
		ebiten.SetFullscreen(false)
	}

	if g.timer != nil {
		g.timer.ObserveFrameDuration(time.Since(start))
	}
	if out.Quit {
		g.log.Info("quit requested", "phase", out.Phase.String())
		return ebiten.Termination
	}
	return nil
}

// Draw paints the current state
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if g.sprites.loading != nil && g.sim.Elapsed() <= constant.LoadingScreenDuration {
		var op ebiten.DrawImageOptions
		b := g.sprites.loading.Bounds()
		op.GeoM.Scale(constant.WorldWidth/float64(b.Dx()), constant.WorldHeight/float64(b.Dy()))
		screen.DrawImage(g.sprites.loading, &op)
	}

	g.syncTrail()
	screen.DrawImage(g.trailLayer, nil)

	g.drawPlanet(screen)
	g.drawSatellite(screen)

	overlay := render.BuildOverlay(g.sim)
	for _, t := range overlay.Texts {
		g.drawTextBlock(screen, t)
	}
	for _, b := range overlay.Boxes {
		g.drawBox(screen, b)
	}

	drawShadow(screen)
	drawBorder(screen)
}

// Layout keeps the world resolution and lets ebiten scale it
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(constant.WorldWidth), int(constant.WorldHeight)
}
