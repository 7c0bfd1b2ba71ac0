package utils

// Rect is an axis-aligned rectangle in window pixel coordinates.
// X and Y are the top-left corner; W and H are the size in pixels.
type Rect struct {
	X int
	Y int
	W int
	H int
}

// PointInRect reports whether the point (x, y) lies inside r.
//
// The interval is half-open: the left/top edges are inside, the
// right/bottom edges are outside. A rectangle of width W therefore
// covers exactly W pixel columns, and two rectangles sharing an edge
// never both claim the same pixel.
func PointInRect(x, y int, r Rect) bool {
	return x >= r.X && x < r.X+r.W &&
		y >= r.Y && y < r.Y+r.H
}

// CenteredRect returns a w×h rectangle centered inside a winW×winH window.
// Integer division truncates, matching how the window system positions
// odd-sized content.
func CenteredRect(winW, winH, w, h int) Rect {
	return Rect{
		X: (winW - w) / 2,
		Y: (winH - h) / 2,
		W: w,
		H: h,
	}
}
