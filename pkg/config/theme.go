package config

import (
	_ "embed"
	"fmt"
	"image/color"

	"gopkg.in/yaml.v3"
)

//go:embed theme.yaml
var themeData []byte

// RGB is an opaque 8-bit color as it appears in the theme file.
type RGB struct {
	R uint8 `yaml:"r"`
	G uint8 `yaml:"g"`
	B uint8 `yaml:"b"`
}

// RGBA converts the theme color to the standard library color type
// with full opacity.
func (c RGB) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// StateColors holds one color per button interaction state.
type StateColors struct {
	Idle    RGB `yaml:"idle"`
	Hover   RGB `yaml:"hover"`
	Pressed RGB `yaml:"pressed"`
}

// BackgroundTheme describes the window background: its initial color
// and the channel range used when a click randomizes it.
type BackgroundTheme struct {
	Initial   RGB `yaml:"initial"`
	RandomMin int `yaml:"randomMin"`
	RandomMax int `yaml:"randomMax"`
}

// ButtonTheme describes the button visuals.
type ButtonTheme struct {
	Fill   StateColors `yaml:"fill"`
	Border StateColors `yaml:"border"`
	Label  RGB         `yaml:"label"`
}

// ToneTheme describes the click beep.
type ToneTheme struct {
	// Frequency in Hz.
	Frequency float64 `yaml:"frequency"`
	// Duration in seconds.
	Duration float64 `yaml:"duration"`
}

// Theme is the full decoded color/tone theme.
type Theme struct {
	Background BackgroundTheme `yaml:"background"`
	Button     ButtonTheme     `yaml:"button"`
	Tone       ToneTheme       `yaml:"tone"`
}

// LoadTheme decodes and validates the embedded theme.
//
// Returns:
//   - *Theme: the decoded theme
//   - error: if the YAML is malformed or a value is out of range
func LoadTheme() (*Theme, error) {
	var theme Theme
	if err := yaml.Unmarshal(themeData, &theme); err != nil {
		return nil, fmt.Errorf("failed to decode theme: %w", err)
	}
	if err := theme.validate(); err != nil {
		return nil, fmt.Errorf("invalid theme: %w", err)
	}
	return &theme, nil
}

// validate rejects themes that would break the click action or the
// synthesizer.
func (t *Theme) validate() error {
	bg := t.Background
	if bg.RandomMin < 0 || bg.RandomMax > 255 {
		return fmt.Errorf("background random range [%d, %d] outside [0, 255]", bg.RandomMin, bg.RandomMax)
	}
	if bg.RandomMin > bg.RandomMax {
		return fmt.Errorf("background randomMin %d exceeds randomMax %d", bg.RandomMin, bg.RandomMax)
	}
	if t.Tone.Frequency <= 0 {
		return fmt.Errorf("tone frequency %v must be positive", t.Tone.Frequency)
	}
	if t.Tone.Duration <= 0 {
		return fmt.Errorf("tone duration %v must be positive", t.Tone.Duration)
	}
	return nil
}
