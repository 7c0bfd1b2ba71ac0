// Package game owns the scene loop plus the shared service handles
// (resources, audio, settings) that scenes draw on.
package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents one screen of the application. Each scene has its
// own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// Relayouter is an optional interface for scenes that track the window
// size. Scenes implementing it are notified whenever the window is
// resized, before the next Update.
type Relayouter interface {
	// Relayout informs the scene of the new window dimensions in pixels.
	Relayout(width, height int)
}
