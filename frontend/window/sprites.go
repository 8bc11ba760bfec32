package window

import (
	"errors"
	"fmt"
	_ "image/png"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/lixenwraith/orbiter/asset"
)

// sprites holds decoded images; a nil image falls back to vector drawing
type sprites struct {
	satellite      *ebiten.Image
	satelliteCrash *ebiten.Image
	mars           *ebiten.Image
	marsWater      *ebiten.Image
	loading        *ebiten.Image
}

// loadSprites decodes every present image; a present file that fails to decode is fatal
func loadSprites(dir asset.Dir) (sprites, error) {
	var s sprites
	targets := []struct {
		name string
		dst  **ebiten.Image
	}{
		{asset.Satellite, &s.satellite},
		{asset.SatelliteCrash, &s.satelliteCrash},
		{asset.Mars, &s.mars},
		{asset.MarsWater, &s.marsWater},
		{asset.LoadingScreen, &s.loading},
	}

	for _, t := range targets {
		path, err := dir.Path(t.name)
		if errors.Is(err, asset.ErrAssetMissing) {
			continue
		}
		if err != nil {
			return sprites{}, err
		}
		img, _, err := ebitenutil.NewImageFromFile(path)
		if err != nil {
			return sprites{}, fmt.Errorf("decode %s: %w", t.name, err)
		}
		*t.dst = img
	}
	return s, nil
}

// spriteGeoM centres img on (x, y), scales it to size (0 = native) and turns it
// counter-clockwise by deg
func spriteGeoM(img *ebiten.Image, x, y, size, deg float64) ebiten.GeoM {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()

	var m ebiten.GeoM
	m.Translate(-float64(w)/2, -float64(h)/2)
	if size > 0 {
		m.Scale(size/float64(w), size/float64(h))
	}
	m.Rotate(-deg * math.Pi / 180)
	m.Translate(x, y)
	return m
}
