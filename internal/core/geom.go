// Package core provides fundamental types and utilities shared by the simulation
// and the terminal front end. It has no external dependencies (especially no
// Bubble Tea) to keep game logic pure and testable.
package core

import "math"

// Rect is an axis-aligned bounding box in world pixels.
// Y grows downward, matching screen coordinates.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// NewRectBottomCenter creates a w×h rectangle whose bottom edge sits at
// bottom and whose horizontal center is cx.
func NewRectBottomCenter(cx, bottom, w, h int) Rect {
	return Rect{X: cx - w/2, Y: bottom - h, W: w, H: h}
}

// NewRectCentered creates a w×h rectangle centered on (cx, cy).
func NewRectCentered(cx, cy, w, h int) Rect {
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// CenterX returns the horizontal center.
func (r Rect) CenterX() int {
	return r.X + r.W/2
}

// CenterY returns the vertical center.
func (r Rect) CenterY() int {
	return r.Y + r.H/2
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.CenterX(), r.CenterY()
}

// Translate moves the rectangle in place by (dx, dy).
func (r *Rect) Translate(dx, dy int) {
	r.X += dx
	r.Y += dy
}

// SetCenterX moves the rectangle horizontally so its center is at x.
func (r *Rect) SetCenterX(x int) {
	r.X = x - r.W/2
}

// SetRight moves the rectangle horizontally so its right edge is at x.
func (r *Rect) SetRight(x int) {
	r.X = x - r.W
}

// Intersects returns true if this rectangle overlaps with another.
// Touching edges do not count as an overlap.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// OverlapsHorizontally reports whether the horizontal extents touch or overlap.
// Edges that meet exactly count, which is what standing on a platform edge needs.
func (r Rect) OverlapsHorizontally(other Rect) bool {
	return r.X <= other.Right() && r.Right() >= other.X
}

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

// Round converts a float to the nearest integer, ties to even.
// All pixel positions in the simulation go through this so that generated
// levels and jump arcs are reproducible across platforms.
func Round(v float64) int {
	return int(math.RoundToEven(v))
}
