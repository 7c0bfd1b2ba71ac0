// Package components holds the interactive widgets of the button scene.
package components

import (
	"github.com/decker502/chime/pkg/utils"
)

// ButtonState is the current interaction state of a button.
//
// The four states are the only reachable combinations of the underlying
// hover/press flags; modeling them as a tagged state keeps invalid
// combinations (such as "pressed but no active press") unrepresentable
// to callers.
type ButtonState int

const (
	// StateIdle: pointer outside the button, no press in progress.
	StateIdle ButtonState = iota
	// StateHover: pointer over the button, mouse up.
	StateHover
	// StateActiveOutside: a press began inside the button but the
	// pointer has since left it while still held. Drawn as idle; the
	// click can still complete if the pointer returns before release.
	StateActiveOutside
	// StatePressed: a press began inside and the pointer is still
	// inside. This is the only state drawn with the pressed visuals.
	StatePressed
)

// Button tracks hover/press interaction for one rectangular hit area.
//
// A click is "confirmed" only when the press began inside the rectangle
// and the release also happens inside it; pressing inside and dragging
// out before releasing cancels the click, as does pressing outside and
// releasing inside.
type Button struct {
	// Rect is the hit area in window pixel coordinates.
	Rect utils.Rect

	state       ButtonState
	activePress bool // press began inside the rect; latched until release
	mouseDown   bool // left button currently held, wherever it went down
}

// NewButton creates a button centered in a winW×winH window with the
// given fixed size.
func NewButton(winW, winH, w, h int) *Button {
	return &Button{
		Rect:  utils.CenteredRect(winW, winH, w, h),
		state: StateIdle,
	}
}

// State returns the current interaction state.
func (b *Button) State() ButtonState { return b.state }

// Hovered reports whether the pointer is currently over the button.
func (b *Button) Hovered() bool {
	return b.state == StateHover || b.state == StatePressed
}

// Pressed reports whether the button should be drawn pressed.
// Pressed implies an active press with the mouse held and the pointer
// inside the rect.
func (b *Button) Pressed() bool { return b.state == StatePressed }

// PointerMoved updates the hover-dependent state from the current
// pointer position. Called every frame as well as on motion events.
func (b *Button) PointerMoved(x, y int) {
	b.recompute(utils.PointInRect(x, y, b.Rect))
}

// PointerDown handles a left-button press at (x, y). A press engages
// the click sequence only when it starts inside the rectangle.
func (b *Button) PointerDown(x, y int) {
	b.mouseDown = true
	b.activePress = utils.PointInRect(x, y, b.Rect)
	b.recompute(utils.PointInRect(x, y, b.Rect))
}

// PointerUp handles a left-button release at (x, y) and reports whether
// this completes a confirmed click (press began inside AND release
// inside). The press state is cleared unconditionally afterwards.
func (b *Button) PointerUp(x, y int) (clicked bool) {
	inside := utils.PointInRect(x, y, b.Rect)
	clicked = b.activePress && inside

	b.mouseDown = false
	b.activePress = false
	b.recompute(inside)
	return clicked
}

// Relayout re-centers the button in a resized winW×winH window. The
// size is fixed; interaction state is not affected beyond the hover
// recomputation on the next pointer update.
func (b *Button) Relayout(winW, winH int) {
	b.Rect = utils.CenteredRect(winW, winH, b.Rect.W, b.Rect.H)
}

// recompute derives the tagged state from the latched flags and the
// pointer containment for this update.
func (b *Button) recompute(inside bool) {
	switch {
	case b.activePress && b.mouseDown && inside:
		b.state = StatePressed
	case b.activePress && b.mouseDown:
		b.state = StateActiveOutside
	case inside:
		b.state = StateHover
	default:
		b.state = StateIdle
	}
}
