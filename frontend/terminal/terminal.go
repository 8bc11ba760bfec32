// Package terminal runs the game on a tcell screen
package terminal

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/orbiter/constant"
	"github.com/lixenwraith/orbiter/core"
	"github.com/lixenwraith/orbiter/engine"
	"github.com/lixenwraith/orbiter/input"
	"github.com/lixenwraith/orbiter/render"
)

// FrameTimer receives the wall time spent stepping and drawing each frame
type FrameTimer interface {
	ObserveFrameDuration(d time.Duration)
}

// Options configures a terminal frontend
type Options struct {
	Clock  input.Clock  // nil = system clock
	Timer  FrameTimer   // nil = untimed
	Logger *slog.Logger // nil = discard
}

// Frontend owns the screen, synthesizes held keys and drives the simulation
type Frontend struct {
	screen   tcell.Screen
	renderer *render.TerminalRenderer
	held     *input.HeldTracker
	clock    input.Clock
	timer    FrameTimer
	log      *slog.Logger
	pending  []input.Event
}

// NewScreen creates and initializes a tcell screen in the requested colour mode
func NewScreen(colorMode string) (tcell.Screen, error) {
	// tcell reads these while probing the terminal
	switch colorMode {
	case "256":
		os.Setenv("TCELL_TRUECOLOR", "disable")
	case "truecolor":
		os.Setenv("COLORTERM", "truecolor")
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.HideCursor()
	screen.Clear()
	return screen, nil
}

// New wraps an initialized screen
func New(screen tcell.Screen, opts Options) *Frontend {
	if opts.Clock == nil {
		opts.Clock = input.SystemClock{}
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	return &Frontend{
		screen:   screen,
		renderer: render.NewTerminalRenderer(screen),
		held:     input.NewHeldTracker(constant.InitialHold, constant.RepeatHold),
		clock:    opts.Clock,
		timer:    opts.Timer,
		log:      opts.Logger,
		pending:  make([]input.Event, 0, 16),
	}
}

// MapKey translates a terminal key; quit reports q or Ctrl-C
func MapKey(ev *tcell.EventKey) (k input.Key, quit bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return input.KeyLeft, false
	case tcell.KeyRight:
		return input.KeyRight, false
	case tcell.KeyUp:
		return input.KeyUp, false
	case tcell.KeyDown:
		return input.KeyDown, false
	case tcell.KeyEscape:
		return input.KeyEscape, false
	case tcell.KeyCtrlC:
		return input.KeyNone, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			return input.KeySpace, false
		case 'm', 'M':
			return input.KeyMap, false
		case 'q', 'Q':
			return input.KeyNone, true
		}
	}
	return input.KeyNone, false
}

// HandleEvent queues the input carried by one terminal event
func (f *Frontend) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		k, quit := MapKey(ev)
		if quit {
			f.pending = append(f.pending, input.Quit())
			return
		}
		if e, ok := f.held.Press(k, f.clock.Now()); ok {
			f.pending = append(f.pending, e)
		}
	case *tcell.EventResize:
		w, h := ev.Size()
		f.log.Debug("terminal resized", "width", w, "height", h)
		f.screen.Sync()
	}
}

// Tick releases lapsed keys, advances one frame and draws it
func (f *Frontend) Tick(sim *engine.Simulation) engine.Outcome {
	start := f.clock.Now()

	events := f.held.Expire(start, f.pending)
	out := sim.Step(input.Frame{Held: f.held.Held(), Events: events})
	f.pending = events[:0]

	f.renderer.RenderFrame(sim)

	if f.timer != nil {
		f.timer.ObserveFrameDuration(f.clock.Now().Sub(start))
	}
	return out
}

// Run ticks at the frame rate until a quit event or ctx cancellation
func (f *Frontend) Run(ctx context.Context, sim *engine.Simulation) error {
	events := make(chan tcell.Event, constant.EventBufferSize)
	done := make(chan struct{})
	defer close(done)

	core.Go(func() { f.pollEvents(events, done) })

	ticker := time.NewTicker(constant.FrameInterval)
	defer ticker.Stop()

	f.log.Info("terminal loop started", "fps", constant.FrameRate)
	for {
		select {
		case <-ctx.Done():
			f.log.Info("terminal loop cancelled")
			return nil
		case ev := <-events:
			f.HandleEvent(ev)
		case <-ticker.C:
			out := f.Tick(sim)
			if out.Quit {
				f.log.Info("quit requested", "phase", out.Phase.String())
				return nil
			}
		}
	}
}

// pollEvents forwards screen events until the screen is finalized or the loop exits
func (f *Frontend) pollEvents(events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := f.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}
