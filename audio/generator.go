package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/orbiter/constant"
)

// floatBuffer is mono float64 samples at unity gain
type floatBuffer []float64

// noiseSource is a small LCG so synthesized cues are reproducible
type noiseSource struct {
	seed uint32
}

func (n *noiseSource) next() float64 {
	n.seed = n.seed*1664525 + 1013904223
	return float64(n.seed)/float64(math.MaxUint32)*2 - 1
}

// thrustTone renders the fallback thrust cue: low rumble plus filtered hiss
func thrustTone(sr beep.SampleRate) floatBuffer {
	total := sr.N(constant.ThrustToneDuration)
	buf := make(floatBuffer, total)

	// SineTone only fails above Nyquist; a silent rumble leaves the hiss
	rumble := make([][2]float64, total)
	if sine, err := generators.SineTone(sr, constant.ThrustRumbleFreq); err == nil {
		sine.Stream(rumble)
	}

	noise := noiseSource{seed: 0x5eed}
	hiss := 0.0
	for i := range buf {
		// One-pole low-pass keeps the hiss dull
		hiss += 0.15 * (noise.next() - hiss)
		buf[i] = 0.6*rumble[i][0] + 0.4*hiss
	}

	applyEnvelope(buf, sr, constant.ThrustToneAttack, constant.ThrustToneRelease)
	return buf
}

// applyEnvelope applies a linear attack/release envelope in place
func applyEnvelope(buf floatBuffer, sr beep.SampleRate, attack, release time.Duration) {
	total := len(buf)
	attackSamples := sr.N(attack)
	releaseSamples := sr.N(release)

	releaseStart := total - releaseSamples
	if releaseStart < attackSamples {
		releaseStart = attackSamples
	}

	for i := 0; i < total; i++ {
		vol := 1.0
		if i < attackSamples && attackSamples > 0 {
			vol = float64(i) / float64(attackSamples)
		} else if i >= releaseStart && releaseSamples > 0 {
			vol = float64(total-i) / float64(releaseSamples)
		}
		buf[i] *= vol
	}
}

// bufferStreamer plays a floatBuffer once as stereo
type bufferStreamer struct {
	buf floatBuffer
	pos int
}

func (s *bufferStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if s.pos >= len(s.buf) {
		return 0, false
	}
	for i := range samples {
		if s.pos >= len(s.buf) {
			break
		}
		samples[i][0] = s.buf[s.pos]
		samples[i][1] = s.buf[s.pos]
		s.pos++
		n++
	}
	return n, true
}

func (s *bufferStreamer) Err() error {
	return nil
}
