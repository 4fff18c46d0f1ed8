package math

import "math"

// Vec2 is a 2D point in screen space.
type Vec2 struct {
	X, Y float64
}

// Add returns v + other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

// Sub returns v - other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

// Length returns the magnitude.
func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// In reports whether v lies inside the closed rectangle [0,w]x[0,h].
func (v Vec2) In(w, h float64) bool {
	return v.X >= 0 && v.Y >= 0 && v.X <= w && v.Y <= h
}
