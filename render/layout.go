package render

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/orbiter/constant"
	"github.com/lixenwraith/orbiter/engine"
)

// Box is a filled telemetry box with centred dark text, in world units
type Box struct {
	X, Y, W, H float64
	Text       string
}

// TextBlock is a left-aligned run of lines on a black backing, in world units
type TextBlock struct {
	X, Y  float64
	Lines []string
	Color colorful.Color
}

// Overlay is the surface-independent HUD for one frame
type Overlay struct {
	Boxes []Box
	Texts []TextBlock
}

var hudLabels = [5]string{"Dx", "Dy", "Altitude", "Fuel", "Eccentricity"}

// HUDValues formats the telemetry readouts in box order
func HUDValues(s *engine.Simulation) [5]string {
	return [5]string{
		fmt.Sprintf("%.1f", s.Satellite.Vel.X),
		fmt.Sprintf("%.1f", s.Satellite.Vel.Y),
		fmt.Sprintf("%.1f", s.Satellite.Distance),
		fmt.Sprintf("%d", s.DisplayFuel()),
		fmt.Sprintf("%.8f", s.Eccentricity()),
	}
}

// BuildOverlay lays out status messages, intro text, telemetry and instructions
// Blocks are in draw order
func BuildOverlay(s *engine.Simulation) Overlay {
	var o Overlay

	// Atmosphere and fuel share one slot; the mapping prompt stacks on either
	switch {
	case s.Phase() == engine.PhaseAtmosphericEntry:
		o.Texts = append(o.Texts, block(constant.AtmosphereAnchor, Red, constant.AtmosphericEntryText))
	case s.Phase() == engine.PhaseFuelDepleted || s.Satellite.Fuel <= 0:
		o.Texts = append(o.Texts, block(constant.FuelDepletedAnchor, Red, constant.FuelDepletedText))
	}
	if s.MappingEligible() {
		o.Texts = append(o.Texts, block(constant.MappingAnchor, LightBlue, constant.MappingPrompt))
	}

	if s.Elapsed() <= constant.IntroTextDuration {
		o.Texts = append(o.Texts, block(constant.IntroAnchor, Green, constant.IntroText...))
	}

	values := HUDValues(s)
	for i, col := range constant.HUDColumns {
		o.Boxes = append(o.Boxes,
			Box{X: col[0], Y: constant.HUDLabelY, W: col[1], H: constant.HUDBoxH, Text: hudLabels[i]},
			Box{X: col[0], Y: constant.HUDValueY, W: col[1], H: constant.HUDBoxH, Text: values[i]},
		)
	}

	o.Texts = append(o.Texts,
		block(constant.MissionAnchor, White, constant.MissionText...),
		block(constant.ControlsAnchor, White, constant.ControlsText...),
	)
	return o
}

func block(anchor [2]float64, c colorful.Color, lines ...string) TextBlock {
	return TextBlock{X: anchor[0], Y: anchor[1], Lines: lines, Color: c}
}
