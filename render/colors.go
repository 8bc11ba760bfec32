package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Text and chrome colors
var (
	White     = colorful.Color{R: 1, G: 1, B: 1}
	Black     = colorful.Color{}
	Red       = colorful.Color{R: 1}
	Green     = colorful.Color{G: 1}
	LightBlue = rgb(173, 216, 230)

	CrashOrange = rgb(255, 120, 30)
	TrailOld    = rgb(70, 70, 70)
)

// Surface colors
var (
	MarsLowland  = rgb(92, 38, 20)
	MarsHighland = rgb(205, 120, 70)
	MarsPolar    = rgb(236, 228, 218)
	SoilDry      = rgb(40, 30, 70)
	SoilWet      = rgb(70, 170, 235)
)

func rgb(r, g, b uint8) colorful.Color {
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

// ToTcell converts to a 24-bit tcell color; tcell downsamples on limited terminals
func ToTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// Shade blends c toward black by alpha (0 = unchanged, 1 = black)
func Shade(c colorful.Color, alpha float64) colorful.Color {
	return c.BlendRgb(Black, clamp01(alpha))
}

// TrailColor fades the path from white (newest, age 0) to grey (oldest, age 1)
func TrailColor(age float64) colorful.Color {
	return White.BlendLab(TrailOld, clamp01(age)).Clamped()
}

// SurfaceColor returns the terrain color for a texture coordinate
// lon and lat are radians; moisture selects the soil-moisture map
func SurfaceColor(lon, lat float64, moisture bool) colorful.Color {
	if moisture {
		return SoilDry.BlendLab(SoilWet, moistureField(lon, lat)).Clamped()
	}

	c := MarsLowland.BlendLab(MarsHighland, terrainField(lon, lat))
	if polar := (math.Abs(lat) - 1.15) / 0.25; polar > 0 {
		c = c.BlendLab(MarsPolar, clamp01(polar))
	}
	return c.Clamped()
}

// terrainField is a smooth albedo pattern in [0,1]
func terrainField(lon, lat float64) float64 {
	v := 0.5 +
		0.25*math.Sin(3*lon+1.3)*math.Cos(2*lat) +
		0.15*math.Sin(7*lon-2*lat) +
		0.10*math.Cos(11*lon+5*lat)
	return clamp01(v)
}

// moistureField concentrates water at high latitudes with patchy lowlands
func moistureField(lon, lat float64) float64 {
	v := 0.55*math.Pow(math.Abs(math.Sin(lat)), 1.5) +
		0.25*(0.5+0.5*math.Sin(5*lon+3*lat)) +
		0.20*(0.5+0.5*math.Cos(9*lon-lat))
	return clamp01(v)
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
