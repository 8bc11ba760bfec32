package constant

import "time"

// Audio output
const (
	// AudioSampleRate is the speaker rate used for all streams
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// ThrustVolume is the default cue amplitude (0-1)
	ThrustVolume = 0.07
)

// Synthesized thrust cue used when no thrust asset is available
const (
	ThrustToneDuration = 400 * time.Millisecond
	ThrustToneAttack   = 20 * time.Millisecond
	ThrustToneRelease  = 120 * time.Millisecond
	ThrustRumbleFreq   = 70.0
)
