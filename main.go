package main

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/chime/pkg/app"
	"github.com/decker502/chime/pkg/config"
)

func main() {
	a, err := app.NewApp(app.Config{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "chime: startup failed: %v\n", err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	// RunGame returns nil on a normal window close.
	if err := ebiten.RunGame(a); err != nil {
		fmt.Fprintf(os.Stderr, "chime: %v\n", err)
		os.Exit(1)
	}
}
