package components

import (
	"testing"
)

// newTestButton centers a 200×60 button in a 900×600 window.
// Its rect is (350, 270, 200, 60); (450, 300) is the center.
func newTestButton() *Button {
	return NewButton(900, 600, 200, 60)
}

// TestNewButtonCentered verifies the initial layout and state.
func TestNewButtonCentered(t *testing.T) {
	b := newTestButton()
	if b.Rect.X != 350 || b.Rect.Y != 270 || b.Rect.W != 200 || b.Rect.H != 60 {
		t.Errorf("Unexpected initial rect: %+v", b.Rect)
	}
	if b.State() != StateIdle {
		t.Errorf("Expected initial state StateIdle, got %v", b.State())
	}
}

// TestConfirmedClick verifies that press-inside + release-inside fires
// exactly one click.
func TestConfirmedClick(t *testing.T) {
	b := newTestButton()

	b.PointerMoved(450, 300)
	if b.State() != StateHover {
		t.Errorf("Expected StateHover before press, got %v", b.State())
	}

	b.PointerDown(450, 300)
	if b.State() != StatePressed {
		t.Errorf("Expected StatePressed after press inside, got %v", b.State())
	}

	if !b.PointerUp(450, 300) {
		t.Error("Expected confirmed click for press and release inside")
	}

	// A second release without a new press must not fire again.
	if b.PointerUp(450, 300) {
		t.Error("Release without an active press must not click")
	}
}

// TestPressInsideReleaseOutside verifies that dragging out before the
// release cancels the click.
func TestPressInsideReleaseOutside(t *testing.T) {
	b := newTestButton()

	b.PointerDown(450, 300)
	b.PointerMoved(10, 10)
	if b.State() != StateActiveOutside {
		t.Errorf("Expected StateActiveOutside while dragged out, got %v", b.State())
	}
	if b.Pressed() {
		t.Error("Button must not draw pressed while the pointer is outside")
	}

	if b.PointerUp(10, 10) {
		t.Error("Release outside must not click")
	}
}

// TestPressOutsideReleaseInside verifies that a press starting outside
// never engages the click sequence.
func TestPressOutsideReleaseInside(t *testing.T) {
	b := newTestButton()

	b.PointerDown(10, 10)
	if b.State() != StateIdle {
		t.Errorf("Expected StateIdle after press outside, got %v", b.State())
	}

	b.PointerMoved(450, 300)
	if b.State() != StateHover {
		t.Errorf("Expected StateHover (not pressed) while dragging in, got %v", b.State())
	}
	if b.Pressed() {
		t.Error("Press that began outside must never draw pressed")
	}

	if b.PointerUp(450, 300) {
		t.Error("Release inside after press outside must not click")
	}
}

// TestDragOutAndBack verifies the click still completes when the
// pointer leaves and returns before the release.
func TestDragOutAndBack(t *testing.T) {
	b := newTestButton()

	b.PointerDown(450, 300)
	b.PointerMoved(10, 10)
	b.PointerMoved(450, 300)
	if b.State() != StatePressed {
		t.Errorf("Expected StatePressed after returning, got %v", b.State())
	}
	if !b.PointerUp(450, 300) {
		t.Error("Expected confirmed click after drag out and back")
	}
}

// TestReleaseClearsPressState verifies that after any release the press
// flags are gone, regardless of prior state.
func TestReleaseClearsPressState(t *testing.T) {
	sequences := []struct {
		name         string
		downX, downY int
		upX, upY     int
	}{
		{"inside/inside", 450, 300, 450, 300},
		{"inside/outside", 450, 300, 10, 10},
		{"outside/inside", 10, 10, 450, 300},
		{"outside/outside", 10, 10, 10, 10},
	}

	for _, seq := range sequences {
		t.Run(seq.name, func(t *testing.T) {
			b := newTestButton()
			b.PointerDown(seq.downX, seq.downY)
			b.PointerUp(seq.upX, seq.upY)

			if b.activePress || b.mouseDown {
				t.Error("Press flags must be cleared after release")
			}
			if b.Pressed() {
				t.Error("Button must not stay pressed after release")
			}
			if s := b.State(); s != StateIdle && s != StateHover {
				t.Errorf("Expected idle or hover after release, got %v", s)
			}
		})
	}
}

// TestHalfOpenHitArea verifies the button edges follow the half-open
// containment rule: a press on the right/bottom edge misses.
func TestHalfOpenHitArea(t *testing.T) {
	b := newTestButton()

	// Left/top edge is inside.
	b.PointerDown(350, 270)
	if !b.PointerUp(350, 270) {
		t.Error("Expected click on the top-left corner")
	}

	// Right edge (x = 350+200) is outside.
	b.PointerDown(550, 300)
	if b.State() != StateIdle {
		t.Errorf("Expected StateIdle for press on right edge, got %v", b.State())
	}
	if b.PointerUp(550, 300) {
		t.Error("Right edge press must not click")
	}
}

// TestRelayoutRecenters verifies resize handling: the rect is
// re-centered with its size unchanged.
func TestRelayoutRecenters(t *testing.T) {
	b := newTestButton()
	b.Relayout(1280, 720)

	if b.Rect.X != (1280-200)/2 || b.Rect.Y != (720-60)/2 {
		t.Errorf("Unexpected rect after relayout: %+v", b.Rect)
	}
	if b.Rect.W != 200 || b.Rect.H != 60 {
		t.Errorf("Relayout must not change size, got %dx%d", b.Rect.W, b.Rect.H)
	}
}

// TestRelayoutKeepsPressState verifies a resize during an active press
// does not drop the press flags.
func TestRelayoutKeepsPressState(t *testing.T) {
	b := newTestButton()
	b.PointerDown(450, 300)
	b.Relayout(900, 600)

	if !b.activePress || !b.mouseDown {
		t.Error("Relayout must not clear an active press")
	}
}
