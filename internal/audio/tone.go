// Package audio generates PCM sample buffers for playback through
// Ebitengine's audio system.
package audio

import (
	"encoding/binary"
	"math"
)

// bytesPerSample is the size of one 32-bit float sample on the wire.
const bytesPerSample = 4

// amplitude scales the sine wave well below full scale so that several
// overlapping beeps do not clip the output.
const amplitude = 0.25

// SineTone synthesizes a sine wave as interleaved 32-bit float
// little-endian PCM, the layout expected by audio.Context.NewPlayerF32FromBytes.
//
// The same mono sample value is written to every channel. The phase
// accumulates continuously with no fade-in/out, so the buffer does not
// start or end on a zero crossing; a short click at the edges of the
// tone is an accepted characteristic of the sound.
//
// Parameters:
//   - freq: tone frequency in Hz
//   - duration: tone length in seconds (frame count truncates)
//   - sampleRate: output sample rate in Hz, as reported by the audio context
//   - channels: number of interleaved output channels
//
// Returns:
//   - []byte: PCM data, frames×channels×4 bytes; nil if any parameter is
//     non-positive
func SineTone(freq, duration float64, sampleRate, channels int) []byte {
	if freq <= 0 || duration <= 0 || sampleRate <= 0 || channels <= 0 {
		return nil
	}

	frames := int(duration * float64(sampleRate))
	buf := make([]byte, frames*channels*bytesPerSample)

	phase := 0.0
	inc := 2 * math.Pi * freq / float64(sampleRate)
	for i := 0; i < frames; i++ {
		s := math.Float32bits(float32(math.Sin(phase) * amplitude))
		phase += inc
		for c := 0; c < channels; c++ {
			off := (i*channels + c) * bytesPerSample
			binary.LittleEndian.PutUint32(buf[off:], s)
		}
	}
	return buf
}
