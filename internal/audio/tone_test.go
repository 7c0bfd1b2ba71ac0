package audio

import (
	"encoding/binary"
	"math"
	"testing"
)

// sampleAt decodes the float32 LE sample for frame i, channel c.
func sampleAt(buf []byte, i, c, channels int) float32 {
	off := (i*channels + c) * bytesPerSample
	return math.Float32frombits(binary.LittleEndian.Uint32(buf[off:]))
}

// TestSineToneFrameCount verifies the frame count truncates from
// duration × sample rate.
func TestSineToneFrameCount(t *testing.T) {
	buf := SineTone(880, 0.12, 48000, 2)

	// 0.12s × 48000Hz = 5760 frames, stereo float32 = 8 bytes per frame.
	wantFrames := 5760
	if len(buf) != wantFrames*2*bytesPerSample {
		t.Errorf("Expected %d bytes (%d frames), got %d bytes",
			wantFrames*2*bytesPerSample, wantFrames, len(buf))
	}
}

// TestSineToneStartsAtZero verifies the phase starts at zero, so the
// first sample is sin(0)×0.25 = 0.
func TestSineToneStartsAtZero(t *testing.T) {
	buf := SineTone(880, 0.12, 48000, 2)
	if got := sampleAt(buf, 0, 0, 2); got != 0 {
		t.Errorf("Expected first sample 0, got %v", got)
	}
}

// TestSineToneAmplitudeBound verifies no sample exceeds the fixed
// attenuation of 0.25.
func TestSineToneAmplitudeBound(t *testing.T) {
	buf := SineTone(880, 0.12, 48000, 2)
	frames := len(buf) / (2 * bytesPerSample)
	for i := 0; i < frames; i++ {
		s := sampleAt(buf, i, 0, 2)
		if s > amplitude || s < -amplitude {
			t.Fatalf("Sample %d out of range: %v", i, s)
		}
	}
}

// TestSineToneChannelDuplication verifies the mono content is copied to
// every channel.
func TestSineToneChannelDuplication(t *testing.T) {
	const channels = 2
	buf := SineTone(440, 0.01, 44100, channels)
	frames := len(buf) / (channels * bytesPerSample)
	if frames != 441 {
		t.Fatalf("Expected 441 frames, got %d", frames)
	}
	for i := 0; i < frames; i++ {
		left := sampleAt(buf, i, 0, channels)
		right := sampleAt(buf, i, 1, channels)
		if left != right {
			t.Fatalf("Frame %d: channels differ (%v vs %v)", i, left, right)
		}
	}
}

// TestSineToneInvalidInput verifies that non-positive parameters produce
// no buffer instead of panicking.
func TestSineToneInvalidInput(t *testing.T) {
	tests := []struct {
		name        string
		freq, dur   float64
		rate, chans int
	}{
		{"zero frequency", 0, 0.1, 48000, 2},
		{"negative duration", 880, -1, 48000, 2},
		{"zero sample rate", 880, 0.1, 0, 2},
		{"zero channels", 880, 0.1, 48000, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if buf := SineTone(tt.freq, tt.dur, tt.rate, tt.chans); buf != nil {
				t.Errorf("Expected nil buffer, got %d bytes", len(buf))
			}
		})
	}
}
