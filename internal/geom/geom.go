// Package geom provides shared geometry types for the extension core.
// This package breaks import cycles between the viewport, accessory, and
// touch subsystems.
package geom

import "fmt"

// Point represents a location in a view's coordinate space.
type Point struct {
	X float64
	Y float64
}

// String returns a human-readable representation of the point.
func (p Point) String() string {
	return fmt.Sprintf("(%.1f, %.1f)", p.X, p.Y)
}

// Add returns the point translated by the given offset.
func (p Point) Add(o Offset) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Sub returns the offset from other to p.
func (p Point) Sub(other Point) Offset {
	return Offset{X: p.X - other.X, Y: p.Y - other.Y}
}

// Offset represents a translation, typically a scroll offset.
type Offset struct {
	X float64
	Y float64
}

// String returns a human-readable representation of the offset.
func (o Offset) String() string {
	return fmt.Sprintf("<%.1f, %.1f>", o.X, o.Y)
}

// IsZero returns true if the offset has no displacement.
func (o Offset) IsZero() bool {
	return o.X == 0 && o.Y == 0
}

// Rect represents a rectangle with its origin in the top-left corner.
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

// NewRect creates a rectangle from origin and size.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// String returns a human-readable representation of the rectangle.
func (r Rect) String() string {
	return fmt.Sprintf("[%.1f %.1f %.1f %.1f]", r.X, r.Y, r.W, r.H)
}

// IsEmpty returns true if the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return r.W <= 0 || r.H <= 0
}

// Origin returns the top-left corner of the rectangle.
func (r Rect) Origin() Point {
	return Point{X: r.X, Y: r.Y}
}

// MaxX returns the right edge of the rectangle.
func (r Rect) MaxX() float64 {
	return r.X + r.W
}

// MaxY returns the bottom edge of the rectangle.
func (r Rect) MaxY() float64 {
	return r.Y + r.H
}

// Contains returns true if the point lies inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.MaxX() && p.Y >= r.Y && p.Y < r.MaxY()
}

// Translate returns the rectangle moved by the given offset.
func (r Rect) Translate(o Offset) Rect {
	return Rect{X: r.X + o.X, Y: r.Y + o.Y, W: r.W, H: r.H}
}
