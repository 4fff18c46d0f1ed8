// Package math provides the vector, matrix and triangle algebra used by the
// software rendering pipeline.
package math

import "math"

// Vec3 is a 3D vector.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + other.
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub returns v - other.
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Scale returns v * scalar.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Dot returns the dot product.
func (v Vec3) Dot(other Vec3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the right-handed cross product.
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X,
	}
}

// Length returns the magnitude.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalize returns a unit vector.
// A zero-length vector is returned unchanged.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return Vec3{v.X / l, v.Y / l, v.Z / l}
}

// Equal reports whether all components match exactly.
func (v Vec3) Equal(other Vec3) bool {
	return v == other
}

// XY drops the depth component.
func (v Vec3) XY() Vec2 {
	return Vec2{v.X, v.Y}
}

// IntersectPlane returns the point where the segment from lineStart to
// lineEnd crosses the plane through planePoint with normal planeNormal.
// The normal is normalized before use. The result always lies on the
// segment: a segment parallel to the plane yields lineStart.
func IntersectPlane(planePoint, planeNormal, lineStart, lineEnd Vec3) Vec3 {
	planeNormal = planeNormal.Normalize()
	planeD := -planeNormal.Dot(planePoint)
	ad := lineStart.Dot(planeNormal)
	bd := lineEnd.Dot(planeNormal)
	if bd == ad {
		return lineStart
	}
	t := (-planeD - ad) / (bd - ad)
	t = math.Max(0, math.Min(1, t))
	return lineStart.Add(lineEnd.Sub(lineStart).Scale(t))
}

// PointToPlaneDistance returns the signed distance from point to the plane
// through planePoint. planeNormal is expected to be unit length.
// Positive values lie on the side the normal points into.
func PointToPlaneDistance(planePoint, planeNormal, point Vec3) float64 {
	return planeNormal.Dot(point) - planeNormal.Dot(planePoint)
}

// IsFinite reports whether no component is NaN or infinite.
func (v Vec3) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0) &&
		!math.IsNaN(v.Z) && !math.IsInf(v.Z, 0)
}
