package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"

	tone "github.com/decker502/chime/internal/audio"
)

// channelCount is the interleaved channel layout of Ebitengine's audio
// context. The context always mixes to stereo.
const channelCount = 2

// AudioManager plays synthesized beeps through the audio context.
//
// Playback is fire-and-forget: every beep gets its own player built
// from a fresh PCM buffer, submission never blocks, and there is no
// completion callback or cancellation. Once queued a beep plays to the
// end or is dropped by the platform.
//
// When no audio context is available (or the context has failed),
// PlayBeep degrades to a no-op so the rest of the application is
// unaffected.
type AudioManager struct {
	audioContext    *audio.Context
	settingsManager *SettingsManager
	warnedBroken    bool
}

// NewAudioManager creates a new audio manager.
//
// Parameters:
//   - audioContext: the playback context; may be nil (audio disabled)
//   - settingsManager: consulted for volume/enable on every beep; may
//     be nil, in which case defaults apply
func NewAudioManager(audioContext *audio.Context, settingsManager *SettingsManager) *AudioManager {
	return &AudioManager{
		audioContext:    audioContext,
		settingsManager: settingsManager,
	}
}

// PlayBeep synthesizes a sine tone and queues it for playback.
//
// The synthesizer uses the sample rate the context actually runs at,
// not the rate requested when the context was created. Failures are
// logged and swallowed; a beep must never break the caller.
//
// Parameters:
//   - freq: tone frequency in Hz
//   - duration: tone length in seconds
//
// Returns:
//   - bool: whether a beep was queued
func (am *AudioManager) PlayBeep(freq, duration float64) bool {
	if am == nil || am.audioContext == nil {
		return false
	}
	if err := am.audioContext.Err(); err != nil {
		if !am.warnedBroken {
			log.Printf("[AudioManager] Warning: audio unavailable, beeps disabled: %v", err)
			am.warnedBroken = true
		}
		return false
	}

	settings := DefaultSoundSettings()
	if am.settingsManager != nil {
		settings = am.settingsManager.GetSettings()
	}
	if !settings.SoundEnabled {
		return false
	}

	pcm := tone.SineTone(freq, duration, am.audioContext.SampleRate(), channelCount)
	if pcm == nil {
		log.Printf("[AudioManager] Warning: refusing beep with freq=%v duration=%v", freq, duration)
		return false
	}

	player := am.audioContext.NewPlayerF32FromBytes(pcm)
	player.SetVolume(settings.SoundVolume)
	player.Play()
	return true
}
