package audio

import (
	"errors"
)

// Sentinel errors
var (
	ErrNoAudioDevice = errors.New("no audio output device")
	ErrNotLoaded     = errors.New("thrust clip not loaded")
)
