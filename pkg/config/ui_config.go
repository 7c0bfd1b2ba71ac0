// Package config holds fixed layout constants and the embedded color theme.
package config

// Window parameters.
const (
	// GameWindowWidth is the initial window width in pixels.
	GameWindowWidth = 900
	// GameWindowHeight is the initial window height in pixels.
	GameWindowHeight = 600
	// WindowTitle is the fixed window title string.
	WindowTitle = "Chime Button"
)

// Button layout.
//
// The button keeps a fixed size and is re-centered whenever the window
// is resized; only its position depends on the window dimensions.
const (
	// ButtonWidth is the button width in pixels.
	ButtonWidth = 200
	// ButtonHeight is the button height in pixels.
	ButtonHeight = 60
	// ButtonBorderWidth is the stroke width of the button outline.
	ButtonBorderWidth = 1
	// ButtonLabel is the fixed label text rendered centered in the button.
	ButtonLabel = "Click me!"
)

// Font parameters. The font file is loaded from the filesystem at
// startup; a missing or unreadable file is fatal.
const (
	// FontPath is the fixed relative path to the label font.
	FontPath = "assets/fonts/MotivaSansBold.woff.ttf"
	// FontSize is the label point size.
	FontSize = 28.0
)

// Audio parameters.
const (
	// AudioSampleRate is the sample rate requested from the audio
	// context. The synthesizer always reads the rate back from the
	// context rather than assuming this value.
	AudioSampleRate = 48000
)
