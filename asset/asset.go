package asset

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Asset file names
const (
	Satellite      = "satellite.png"
	SatelliteCrash = "satellite_crash.png"
	Mars           = "mars.png"
	MarsWater      = "mars_water.png"
	LoadingScreen  = "loadingScrn.png"
	ThrustAudio    = "thrust_audio.ogg"
)

// Names lists every asset the game looks for
var Names = []string{Satellite, SatelliteCrash, Mars, MarsWater, LoadingScreen, ThrustAudio}

// ErrAssetMissing reports an optional asset absent from the asset directory
var ErrAssetMissing = errors.New("asset missing")

// Dir locates assets under a single root
type Dir struct {
	root string
}

// Resolve picks the asset root: the configured directory if set, otherwise the first
// existing candidate of ./assets and $XDG_DATA_HOME/orbiter
// A configured directory that does not exist is an error; no candidate at all yields
// an empty Dir where every lookup reports ErrAssetMissing
func Resolve(configured string) (Dir, error) {
	if configured != "" {
		info, err := os.Stat(configured)
		if err != nil {
			return Dir{}, fmt.Errorf("asset dir: %w", err)
		}
		if !info.IsDir() {
			return Dir{}, fmt.Errorf("asset dir %s: not a directory", configured)
		}
		return Dir{root: configured}, nil
	}

	for _, candidate := range []string{"assets", filepath.Join(xdg.DataHome, "orbiter")} {
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return Dir{root: candidate}, nil
		}
	}
	return Dir{}, nil
}

// Root returns the resolved directory, empty when none was found
func (d Dir) Root() string {
	return d.root
}

// Path returns the path of name, or ErrAssetMissing when the file is absent
func (d Dir) Path(name string) (string, error) {
	if d.root == "" {
		return "", fmt.Errorf("%w: %s (no asset dir)", ErrAssetMissing, name)
	}
	p := filepath.Join(d.root, name)
	if _, err := os.Stat(p); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrAssetMissing, p)
		}
		return "", fmt.Errorf("stat asset %s: %w", p, err)
	}
	return p, nil
}

// Available returns the subset of Names present in the directory
func (d Dir) Available() []string {
	var found []string
	for _, name := range Names {
		if _, err := d.Path(name); err == nil {
			found = append(found, name)
		}
	}
	return found
}
