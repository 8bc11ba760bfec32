package constant

// World surface in game units, one unit per window pixel
const (
	WorldWidth  = 800.0
	WorldHeight = 645.0
)

// Terminator shadow band (left, top, width, height) in world units
const (
	ShadowX      = 0.0
	ShadowY      = 270.0
	ShadowWidth  = 400.0
	ShadowHeight = 100.0
	ShadowAlpha  = 210.0 / 255.0
)

// Telemetry boxes: label row, value row and the horizontal extent of each column
const (
	HUDLabelY   = 20.0
	HUDValueY   = 50.0
	HUDBoxH     = 20.0
	TextSpacing = 22.0
)

// HUDColumns holds left and width of the Dx, Dy, Altitude, Fuel and Eccentricity boxes
var HUDColumns = [5][2]float64{
	{70, 75},
	{150, 80},
	{240, 160},
	{410, 160},
	{580, 150},
}

// Text anchors (top-left) in world units
var (
	IntroAnchor        = [2]float64{145, 100}
	MissionAnchor      = [2]float64{10, 575}
	ControlsAnchor     = [2]float64{570, 510}
	MappingAnchor      = [2]float64{250, 175}
	FuelDepletedAnchor = [2]float64{340, 195}
	AtmosphereAnchor   = [2]float64{320, 195}
)

// Window frontend
const (
	WindowTitle = "Mars Orbiter"
)

// Terminal frontend
const (
	// MinTerminalWidth and MinTerminalHeight are required to lay out the HUD
	MinTerminalWidth  = 60
	MinTerminalHeight = 20

	// EventBufferSize is the capacity of the input event channel
	EventBufferSize = 256
)

// Text shown on screen
var (
	IntroText = []string{
		" The BNP Orbiter experienced an error during Orbit insertion.",
		" Use thrusters to correct to a circular mapping orbit without",
		" running out of propellant or burning up in the atmosphere.",
	}

	MissionText = []string{
		"Orbital altitude must be within 69-120 miles",
		"Orbital Eccentricity must be < 0.1",
		"Avoid top of atmosphere at 68 miles",
	}

	ControlsText = []string{
		"Left Arrow = Decrease Dx",
		"Right Arrow = Increase Dx",
		"Up Arrow = Decrease Dy",
		"Down Arrow = Increase Dy",
		"Space Bar = Clear Path",
		"Escape = Exit Full Screen",
	}

	MappingPrompt        = "Press & hold M to map soil moisture"
	FuelDepletedText     = "Fuel Depleted!"
	AtmosphericEntryText = "Atmospheric Entry!"
)
