package audio

import (
	"github.com/lixenwraith/orbiter/constant"
)

// AudioConfig holds the speaker settings
type AudioConfig struct {
	Enabled    bool
	Volume     float64 // thrust cue amplitude, 0-1
	SampleRate int
}

// DefaultAudioConfig returns the stock mix
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:    true,
		Volume:     constant.ThrustVolume,
		SampleRate: constant.AudioSampleRate,
	}
}

// Normalize clamps out of range values in place
func (c *AudioConfig) Normalize() {
	if c.Volume < 0 {
		c.Volume = 0
	}
	if c.Volume > 1 {
		c.Volume = 1
	}
	if c.SampleRate <= 0 {
		c.SampleRate = constant.AudioSampleRate
	}
}
