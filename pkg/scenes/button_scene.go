// Package scenes implements the application's screens.
package scenes

import (
	"image/color"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/chime/pkg/components"
	"github.com/decker502/chime/pkg/config"
	"github.com/decker502/chime/pkg/game"
	"github.com/decker502/chime/pkg/utils"
)

// ButtonScene is the single screen of the application: one centered
// button over a solid background. A confirmed click (press began
// inside the button and was released inside it) picks a new random
// background color and queues a beep.
//
// All state mutation happens synchronously inside Update; Draw only
// reads. Only the audio playback itself runs outside the loop, on the
// platform's own output path.
type ButtonScene struct {
	theme           *config.Theme
	font            *text.GoTextFace
	audioManager    *game.AudioManager
	settingsManager *game.SettingsManager

	button     *components.Button
	background color.RGBA

	width  int
	height int
}

// NewButtonScene creates the scene with the button centered in the
// initial window.
//
// Parameters:
//   - theme: decoded color/tone theme
//   - font: label face; may be nil, in which case the label is skipped
//   - audioManager: beep playback; may be nil (silent)
//   - settingsManager: sound settings; may be nil (toggle disabled)
func NewButtonScene(
	theme *config.Theme,
	font *text.GoTextFace,
	audioManager *game.AudioManager,
	settingsManager *game.SettingsManager,
) *ButtonScene {
	return &ButtonScene{
		theme:           theme,
		font:            font,
		audioManager:    audioManager,
		settingsManager: settingsManager,
		button: components.NewButton(
			config.GameWindowWidth, config.GameWindowHeight,
			config.ButtonWidth, config.ButtonHeight,
		),
		background: theme.Background.Initial.RGBA(),
		width:      config.GameWindowWidth,
		height:     config.GameWindowHeight,
	}
}

// Update processes one frame of input.
func (s *ButtonScene) Update(deltaTime float64) {
	// M toggles the click beep on and off.
	if s.settingsManager != nil && inpututil.IsKeyJustPressed(ebiten.KeyM) {
		s.settingsManager.ToggleSound()
	}

	s.processPointer(utils.ReadPointer())
}

// processPointer advances the button state machine from one pointer
// snapshot and fires the click action on a confirmed click. Split out
// from Update so the interaction logic is testable without a display.
func (s *ButtonScene) processPointer(p utils.PointerState) {
	// Hover tracks the pointer every frame, not just on events.
	s.button.PointerMoved(p.X, p.Y)

	switch {
	case p.JustPressed:
		s.button.PointerDown(p.X, p.Y)
	case p.JustReleased:
		if s.button.PointerUp(p.X, p.Y) {
			s.confirmClick()
		}
	}
}

// confirmClick applies the click effects in order: first the new
// background color, then the beep. The beep is fire-and-forget and can
// fail without affecting the color change or the button state.
func (s *ButtonScene) confirmClick() {
	s.background = s.randomBackground()
	s.audioManager.PlayBeep(s.theme.Tone.Frequency, s.theme.Tone.Duration)
}

// randomBackground draws three independent channel values, each
// uniform in [RandomMin, RandomMax] inclusive.
func (s *ButtonScene) randomBackground() color.RGBA {
	return color.RGBA{
		R: s.randomChannel(),
		G: s.randomChannel(),
		B: s.randomChannel(),
		A: 255,
	}
}

func (s *ButtonScene) randomChannel() uint8 {
	bg := s.theme.Background
	return uint8(bg.RandomMin + rand.Intn(bg.RandomMax-bg.RandomMin+1))
}

// Draw renders the background and the button.
func (s *ButtonScene) Draw(screen *ebiten.Image) {
	screen.Fill(s.background)
	s.drawButton(screen)
}

// drawButton renders the button fill, border and centered label. The
// fill and border colors follow the state priority pressed > hovered >
// idle.
func (s *ButtonScene) drawButton(screen *ebiten.Image) {
	rect := s.button.Rect
	x, y := float32(rect.X), float32(rect.Y)
	w, h := float32(rect.W), float32(rect.H)

	fill, border := s.buttonColors()
	vector.DrawFilledRect(screen, x, y, w, h, fill, false)
	vector.StrokeRect(screen, x, y, w, h, config.ButtonBorderWidth, border, false)

	// Label rendering can be skipped for a frame without breaking the
	// loop; the button stays usable.
	if s.font == nil {
		return
	}

	op := &text.DrawOptions{}
	op.LayoutOptions.PrimaryAlign = text.AlignCenter
	op.LayoutOptions.SecondaryAlign = text.AlignCenter
	op.GeoM.Translate(float64(rect.X)+float64(rect.W)/2, float64(rect.Y)+float64(rect.H)/2)
	op.ColorScale.ScaleWithColor(s.theme.Button.Label.RGBA())
	text.Draw(screen, config.ButtonLabel, s.font, op)
}

// buttonColors selects the fill and border colors for the current
// button state.
func (s *ButtonScene) buttonColors() (fill, border color.RGBA) {
	switch {
	case s.button.Pressed():
		return s.theme.Button.Fill.Pressed.RGBA(), s.theme.Button.Border.Pressed.RGBA()
	case s.button.Hovered():
		return s.theme.Button.Fill.Hover.RGBA(), s.theme.Button.Border.Hover.RGBA()
	default:
		return s.theme.Button.Fill.Idle.RGBA(), s.theme.Button.Border.Idle.RGBA()
	}
}

// Relayout re-centers the button when the window is resized.
func (s *ButtonScene) Relayout(width, height int) {
	s.width, s.height = width, height
	s.button.Relayout(width, height)
}

// Background returns the current background color.
func (s *ButtonScene) Background() color.RGBA { return s.background }

// Button exposes the button for rendering decisions and tests.
func (s *ButtonScene) Button() *components.Button { return s.button }
