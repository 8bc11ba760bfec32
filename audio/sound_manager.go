package audio

import (
	"fmt"
	"os"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/vorbis"

	"github.com/lixenwraith/orbiter/constant"
)

// SoundManager plays the thrust cue through the speaker mixer
// All methods are safe to call before Initialize or after Cleanup; they do nothing
type SoundManager struct {
	mu          sync.Mutex
	cfg         AudioConfig
	sampleRate  beep.SampleRate
	mixer       *beep.Mixer
	clip        *beep.Buffer // decoded thrust asset, nil = synthesized tone
	thrust      *beep.Ctrl
	cue         atomic.Uint64 // generation of the current thrust cue
	playing     atomic.Bool
	initialized bool
}

// NewSoundManager creates a manager for cfg, nil = defaults
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	c := *cfg
	c.Normalize()
	return &SoundManager{
		cfg:        c,
		sampleRate: beep.SampleRate(c.SampleRate),
		mixer:      &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	if err := speaker.Init(sm.sampleRate, sm.sampleRate.N(constant.AudioBufferDuration)); err != nil {
		return fmt.Errorf("%w: %v", ErrNoAudioDevice, err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// LoadThrust decodes an Ogg Vorbis thrust clip into memory, resampled to the speaker rate
func (sm *SoundManager) LoadThrust(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open thrust clip: %w", err)
	}

	stream, format, err := vorbis.Decode(f)
	if err != nil {
		f.Close()
		return fmt.Errorf("decode thrust clip %s: %w", path, err)
	}
	defer stream.Close()

	var src beep.Streamer = stream
	if format.SampleRate != sm.sampleRate {
		src = beep.Resample(4, format.SampleRate, sm.sampleRate, stream)
	}

	buf := beep.NewBuffer(beep.Format{SampleRate: sm.sampleRate, NumChannels: 2, Precision: 2})
	buf.Append(src)
	if err := stream.Err(); err != nil {
		return fmt.Errorf("read thrust clip %s: %w", path, err)
	}

	sm.mu.Lock()
	sm.clip = buf
	sm.mu.Unlock()
	return nil
}

// HasClip reports whether a decoded clip replaces the synthesized tone
func (sm *SoundManager) HasClip() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.clip != nil
}

// Cleanup stops all sounds and detaches the mixer
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	if sm.thrust != nil {
		sm.thrust.Streamer = nil
	}
	sm.mixer.Clear()
	speaker.Unlock()

	speaker.Clear()
	sm.thrust = nil
	sm.playing.Store(false)
	sm.initialized = false
}

// PlayThrust starts the thrust cue unless it is already sounding
func (sm *SoundManager) PlayThrust() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.playing.Load() {
		return
	}

	ctrl := &beep.Ctrl{Streamer: sm.thrustStreamer()}
	sm.thrust = ctrl
	sm.playing.Store(true)
	gen := sm.cue.Add(1)

	speaker.Lock()
	sm.mixer.Add(beep.Seq(ctrl, beep.Callback(func() {
		// A stopped cue drains after its successor may have started
		if sm.cue.Load() == gen {
			sm.playing.Store(false)
		}
	})))
	speaker.Unlock()
}

// StopThrust silences the thrust cue and lets the mixer drop its streamer
func (sm *SoundManager) StopThrust() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.thrust == nil {
		return
	}

	// A nil streamer ends the Ctrl; a paused one would stay in the mixer
	speaker.Lock()
	sm.thrust.Streamer = nil
	speaker.Unlock()

	sm.thrust = nil
	sm.playing.Store(false)
}

// Playing reports whether the thrust cue is sounding
func (sm *SoundManager) Playing() bool {
	return sm.playing.Load()
}

// thrustStreamer builds one play-through of the cue at the configured volume
func (sm *SoundManager) thrustStreamer() beep.Streamer {
	var src beep.Streamer
	if sm.clip != nil {
		src = sm.clip.Streamer(0, sm.clip.Len())
	} else {
		src = &bufferStreamer{buf: thrustTone(sm.sampleRate)}
	}
	// Gain scales by 1+Gain
	return &effects.Gain{Streamer: src, Gain: sm.cfg.Volume - 1}
}
