package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/lixenwraith/orbiter/input"
)

// KeyState reports keyboard state for the current tick
type KeyState interface {
	Pressed(k ebiten.Key) bool
	JustPressed(k ebiten.Key) bool
	JustReleased(k ebiten.Key) bool
}

type binding struct {
	code ebiten.Key
	key  input.Key
}

var bindings = []binding{
	{ebiten.KeyArrowLeft, input.KeyLeft},
	{ebiten.KeyArrowRight, input.KeyRight},
	{ebiten.KeyArrowUp, input.KeyUp},
	{ebiten.KeyArrowDown, input.KeyDown},
	{ebiten.KeySpace, input.KeySpace},
	{ebiten.KeyEscape, input.KeyEscape},
	{ebiten.KeyM, input.KeyMap},
}

// SampleFrame builds one frame of input
// Releases precede presses so a key-up cannot cancel a same-tick map request
func SampleFrame(ks KeyState, closing bool) input.Frame {
	var f input.Frame

	if closing || ks.JustPressed(ebiten.KeyQ) {
		f.Events = append(f.Events, input.Quit())
	}
	for _, b := range bindings {
		if ks.JustReleased(b.code) {
			f.Events = append(f.Events, input.Release(b.key))
		}
	}
	for _, b := range bindings {
		if ks.JustPressed(b.code) {
			f.Events = append(f.Events, input.Press(b.key))
		}
		if ks.Pressed(b.code) {
			f.Held = f.Held.With(b.key)
		}
	}
	return f
}

// ebitenKeys reads the live keyboard
type ebitenKeys struct{}

func (ebitenKeys) Pressed(k ebiten.Key) bool      { return ebiten.IsKeyPressed(k) }
func (ebitenKeys) JustPressed(k ebiten.Key) bool  { return inpututil.IsKeyJustPressed(k) }
func (ebitenKeys) JustReleased(k ebiten.Key) bool { return inpututil.IsKeyJustReleased(k) }
