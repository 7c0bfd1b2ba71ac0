// Package utils provides small shared helpers: geometry and input snapshots.
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerState is a per-frame snapshot of the primary pointer.
// It unifies mouse and touch input so that scene logic never talks to
// the input backend directly and stays testable without a display.
//
// Only the left mouse button participates; other buttons are ignored.
type PointerState struct {
	// X, Y is the pointer position in window pixel coordinates.
	X, Y int
	// Down is true while the left button (or a touch) is held.
	Down bool
	// JustPressed is true only on the frame the button went down.
	JustPressed bool
	// JustReleased is true only on the frame the button came up.
	JustReleased bool
}

// ReadPointer gathers the pointer state for the current frame.
// Touch input takes priority over the mouse when both are present,
// so the same scene code works on desktop and mobile builds.
func ReadPointer() PointerState {
	state := PointerState{}

	// Newly started touches act as a press at the touch position.
	if ids := inpututil.AppendJustPressedTouchIDs(nil); len(ids) > 0 {
		state.X, state.Y = ebiten.TouchPosition(ids[0])
		state.Down = true
		state.JustPressed = true
		return state
	}

	// Active touches keep the pointer held at the touch position.
	if ids := ebiten.AppendTouchIDs(nil); len(ids) > 0 {
		state.X, state.Y = ebiten.TouchPosition(ids[0])
		state.Down = true
		return state
	}

	// Touches that ended this frame act as a release at their last
	// known position.
	if ids := inpututil.AppendJustReleasedTouchIDs(nil); len(ids) > 0 {
		state.X, state.Y = inpututil.TouchPositionInPreviousTick(ids[0])
		state.JustReleased = true
		return state
	}

	// Mouse path (desktop).
	state.X, state.Y = ebiten.CursorPosition()
	state.Down = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	state.JustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	state.JustReleased = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
	return state
}
