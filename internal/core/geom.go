// Package core provides fundamental types and utilities for the arcade platform.
// It has no Bubble Tea dependency so that game logic stays pure and testable.
package core

import "math"

// Rect represents an axis-aligned rectangle in canvas units.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
// Inequalities are strict: rectangles that only touch along an edge
// do not intersect.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.Right() &&
		r.Right() > other.X &&
		r.Y < other.Bottom() &&
		r.Bottom() > other.Y
}

// ContainsStrict returns true if (x, y) lies strictly inside the rectangle.
// Points on the border are outside.
func (r Rect) ContainsStrict(x, y float64) bool {
	return x > r.X && x < r.Right() && y > r.Y && y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Vec {
	return Vec{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Vec is a point or direction in canvas units.
type Vec struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by s.
func (v Vec) Scale(s float64) Vec {
	return Vec{X: v.X * s, Y: v.Y * s}
}

// Len returns the Euclidean length of v.
func (v Vec) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Dist returns the Euclidean distance between two points.
func Dist(a, b Vec) float64 {
	return b.Sub(a).Len()
}

// Within reports whether two points are closer than radius.
// Used for pickups and circular hit-tests; the bound is exclusive.
func Within(a, b Vec, radius float64) bool {
	return Dist(a, b) < radius
}

// Pursue returns the velocity that moves from toward target at the given speed.
// The direction is recomputed from scratch on every call (no prediction).
// When from and target coincide there is no direction, so the result is the
// zero vector.
func Pursue(from, target Vec, speed float64) Vec {
	d := target.Sub(from)
	dist := d.Len()
	if dist == 0 {
		return Vec{}
	}
	return d.Scale(speed / dist)
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
