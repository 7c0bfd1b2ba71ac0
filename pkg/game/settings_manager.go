package game

// SoundSettings holds the runtime audio preferences.
// Settings are in-memory only; this application keeps no save data.
type SoundSettings struct {
	// SoundEnabled gates all beep playback.
	SoundEnabled bool
	// SoundVolume is the playback volume in [0.0, 1.0].
	SoundVolume float64
}

// DefaultSoundSettings returns the startup defaults.
func DefaultSoundSettings() SoundSettings {
	return SoundSettings{
		SoundEnabled: true,
		SoundVolume:  0.8,
	}
}

// SettingsManager owns the current settings and clamps writes into
// their valid ranges. All access happens on the game loop goroutine.
type SettingsManager struct {
	settings SoundSettings
}

// NewSettingsManager creates a settings manager with default settings.
func NewSettingsManager() *SettingsManager {
	return &SettingsManager{settings: DefaultSoundSettings()}
}

// GetSettings returns a copy of the current settings.
func (sm *SettingsManager) GetSettings() SoundSettings {
	return sm.settings
}

// SetSoundEnabled turns beep playback on or off.
func (sm *SettingsManager) SetSoundEnabled(enabled bool) {
	sm.settings.SoundEnabled = enabled
}

// ToggleSound flips the sound switch and returns the new value.
func (sm *SettingsManager) ToggleSound() bool {
	sm.settings.SoundEnabled = !sm.settings.SoundEnabled
	return sm.settings.SoundEnabled
}

// SetSoundVolume sets the playback volume, clamped to [0.0, 1.0].
func (sm *SettingsManager) SetSoundVolume(volume float64) {
	if volume < 0 {
		volume = 0
	}
	if volume > 1 {
		volume = 1
	}
	sm.settings.SoundVolume = volume
}
