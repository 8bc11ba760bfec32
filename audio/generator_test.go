package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/orbiter/constant"
)

func TestThrustToneEnvelope(t *testing.T) {
	sr := beep.SampleRate(constant.AudioSampleRate)
	buf := thrustTone(sr)

	if len(buf) != sr.N(constant.ThrustToneDuration) {
		t.Fatalf("Expected %d samples, got %d", sr.N(constant.ThrustToneDuration), len(buf))
	}
	if buf[0] != 0 {
		t.Errorf("Expected silent first sample, got %f", buf[0])
	}
	for i, v := range buf {
		if math.Abs(v) > 1 {
			t.Fatalf("Sample %d out of range: %f", i, v)
		}
	}
}

func TestThrustToneDeterministic(t *testing.T) {
	sr := beep.SampleRate(constant.AudioSampleRate)
	a, b := thrustTone(sr), thrustTone(sr)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("Expected identical renders, differ at %d", i)
		}
	}
}

func TestApplyEnvelope(t *testing.T) {
	sr := beep.SampleRate(1000)
	buf := floatBuffer{1, 1, 1, 1, 1, 1, 1, 1, 1, 1}
	applyEnvelope(buf, sr, 2*time.Millisecond, 2*time.Millisecond)

	want := floatBuffer{0, 0.5, 1, 1, 1, 1, 1, 1, 1, 0.5}
	for i := range want {
		if math.Abs(buf[i]-want[i]) > 1e-12 {
			t.Errorf("Sample %d: expected %f, got %f", i, want[i], buf[i])
		}
	}
}

func TestBufferStreamerDrains(t *testing.T) {
	s := &bufferStreamer{buf: floatBuffer{0.1, 0.2, 0.3}}
	out := make([][2]float64, 2)

	n, ok := s.Stream(out)
	if n != 2 || !ok {
		t.Fatalf("Expected 2 samples, got %d ok=%v", n, ok)
	}
	n, ok = s.Stream(out)
	if n != 1 || !ok || out[0][1] != 0.3 {
		t.Fatalf("Expected final sample, got %d ok=%v", n, ok)
	}
	if n, ok = s.Stream(out); n != 0 || ok {
		t.Errorf("Expected drained streamer, got %d ok=%v", n, ok)
	}
}
