// Package app wires the application together.
//
// It pulls the bootstrap out of package main so that every subsystem
// handle (audio context, resources, settings) is constructed in one
// place, handed down explicitly, and reported as a single error when
// any startup stage fails.
package app

import (
	"fmt"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/chime/pkg/config"
	"github.com/decker502/chime/pkg/game"
	"github.com/decker502/chime/pkg/scenes"
)

// Config defines the application startup options.
type Config struct {
	// Verbose enables diagnostic log output.
	Verbose bool
}

// App is the application wrapper implementing the ebiten.Game
// interface. It dispatches the frame loop to the scene manager and
// tracks the window size so scenes can re-center on resize.
type App struct {
	sceneManager *game.SceneManager
	verbose      bool

	width  int
	height int
}

// NewApp creates and initializes the application.
//
// Startup stages run in order: logging, theme, audio context, resource
// manager, font, settings, audio manager, scene. The first failing
// stage aborts with a wrapped error; nothing acquired before it leaks,
// as all handles are garbage-collected process singletons.
func NewApp(cfg Config) (*App, error) {
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	theme, err := config.LoadTheme()
	if err != nil {
		return nil, fmt.Errorf("theme: %w", err)
	}

	// The context runs at the requested rate on most platforms, but
	// everything downstream reads the rate back from the context
	// instead of trusting the request.
	audioContext := audio.NewContext(config.AudioSampleRate)
	log.Printf("[App] Audio context at %d Hz", audioContext.SampleRate())

	resourceManager := game.NewResourceManager(audioContext)

	font, err := resourceManager.LoadFont(config.FontPath, config.FontSize)
	if err != nil {
		return nil, fmt.Errorf("font: %w", err)
	}
	log.Printf("[App] Loaded font %s at %.0fpt", config.FontPath, config.FontSize)

	settingsManager := game.NewSettingsManager()
	audioManager := game.NewAudioManager(resourceManager.AudioContext(), settingsManager)

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(scenes.NewButtonScene(theme, font, audioManager, settingsManager))
	log.Printf("[App] Button scene ready")

	return &App{
		sceneManager: sceneManager,
		verbose:      cfg.Verbose,
		width:        config.GameWindowWidth,
		height:       config.GameWindowHeight,
	}, nil
}

// Update advances the application by one tick (typically 1/60 s).
func (a *App) Update() error {
	// F11 toggles fullscreen.
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw renders the current frame.
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// Layout reports the logical screen size. The window is resizable and
// the scene draws in window pixels, so the logical size follows the
// outside size 1:1; a change is forwarded to the scene so it can
// re-center its content.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth < 1 || outsideHeight < 1 {
		return a.width, a.height
	}
	if outsideWidth != a.width || outsideHeight != a.height {
		a.width, a.height = outsideWidth, outsideHeight
		a.sceneManager.Relayout(a.width, a.height)
		log.Printf("[App] Window resized to %dx%d", a.width, a.height)
	}
	return a.width, a.height
}

// GetSceneManager returns the scene manager.
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}
