// Package desktop implements the deskfolio window manager: gesture primitives,
// window and icon entities, and the Manager that owns open windows, their
// stacking order and their persisted geometry.
package desktop

// Point is a cell position. Window and icon positions are relative to the
// desktop area below the menu bar.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Manhattan returns |dx|+|dy| between p and q.
func (p Point) Manhattan(q Point) int {
	return abs(p.X-q.X) + abs(p.Y-q.Y)
}

// Size is a width/height pair in cells.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Rect is a positioned size.
type Rect struct {
	Point
	Size
}

// Contains reports whether pt lies inside r. The right and bottom edges are
// exclusive.
func (r Rect) Contains(pt Point) bool {
	return pt.X >= r.X && pt.X < r.X+r.Width &&
		pt.Y >= r.Y && pt.Y < r.Y+r.Height
}

// Limits holds the minimum window size.
type Limits struct {
	MinWidth  int
	MinHeight int
}

// Clamp raises s to the minimum size. Sizes are clamped, never rejected.
func (l Limits) Clamp(s Size) Size {
	return Size{
		Width:  max(s.Width, l.MinWidth),
		Height: max(s.Height, l.MinHeight),
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
