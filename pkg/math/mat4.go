package math

import "math"

// Mat4 is a 4x4 homogeneous matrix in row-major order, applied to row
// vectors (v' = v * M). Row 3 carries translation and column 3 carries the
// perspective term.
//
//	[m00 m01 m02 m03]
//	[m10 m11 m12 m13]
//	[m20 m21 m22 m23]
//	[m30 m31 m32 m33]
type Mat4 [4][4]float64

// Identity returns an identity matrix.
func Identity() Mat4 {
	return Mat4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Projection returns a perspective projection matrix.
// fovDegrees is the full field of view, aspect is height/width.
func Projection(near, far, fovDegrees, aspect float64) Mat4 {
	fovRad := 1.0 / math.Tan(fovDegrees*0.5/180.0*math.Pi)

	var m Mat4
	m[0][0] = aspect * fovRad
	m[1][1] = fovRad
	m[2][2] = far / (far - near)
	m[3][2] = (-far * near) / (far - near)
	m[2][3] = 1
	m[3][3] = 0
	return m
}

// Translation returns a translation matrix.
func Translation(x, y, z float64) Mat4 {
	return Mat4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{x, y, z, 1},
	}
}

// RotationX returns a rotation matrix around the X axis.
// angle is in radians.
func RotationX(angle float64) Mat4 {
	c := math.Cos(angle)
	s := math.Sin(angle)

	return Mat4{
		{1, 0, 0, 0},
		{0, c, s, 0},
		{0, -s, c, 0},
		{0, 0, 0, 1},
	}
}

// RotationY returns a rotation matrix around the Y axis.
// angle is in radians.
func RotationY(angle float64) Mat4 {
	c := math.Cos(angle)
	s := math.Sin(angle)

	return Mat4{
		{c, 0, s, 0},
		{0, 1, 0, 0},
		{-s, 0, c, 0},
		{0, 0, 0, 1},
	}
}

// RotationZ returns a rotation matrix around the Z axis.
// angle is in radians.
func RotationZ(angle float64) Mat4 {
	c := math.Cos(angle)
	s := math.Sin(angle)

	return Mat4{
		{c, s, 0, 0},
		{-s, c, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Compose returns m * other, which transforms by m first and then by other.
func Compose(m, other Mat4) Mat4 {
	var result Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			result[r][c] = m[r][0]*other[0][c] +
				m[r][1]*other[1][c] +
				m[r][2]*other[2][c] +
				m[r][3]*other[3][c]
		}
	}
	return result
}

// Transform multiplies the row vector (v, 1) by m. When the resulting w is
// non-zero, x, y and z are divided by it.
func Transform(m Mat4, v Vec3) Vec3 {
	x := v.X*m[0][0] + v.Y*m[1][0] + v.Z*m[2][0] + m[3][0]
	y := v.X*m[0][1] + v.Y*m[1][1] + v.Z*m[2][1] + m[3][1]
	z := v.X*m[0][2] + v.Y*m[1][2] + v.Z*m[2][2] + m[3][2]
	w := v.X*m[0][3] + v.Y*m[1][3] + v.Z*m[2][3] + m[3][3]
	if w != 0 {
		return Vec3{x / w, y / w, z / w}
	}
	return Vec3{x, y, z}
}

// PointAt builds the camera placement matrix for an observer at position
// looking at target. Rows are right, up, forward and position.
func PointAt(position, target, up Vec3) Mat4 {
	forward := target.Sub(position).Normalize()

	a := forward.Scale(up.Dot(forward))
	newUp := up.Sub(a).Normalize()
	right := newUp.Cross(forward)

	return Mat4{
		{right.X, right.Y, right.Z, 0},
		{newUp.X, newUp.Y, newUp.Z, 0},
		{forward.X, forward.Y, forward.Z, 0},
		{position.X, position.Y, position.Z, 1},
	}
}

// QuickInverse inverts a rotation+translation matrix such as one produced by
// PointAt. It is not a general inverse.
func QuickInverse(m Mat4) Mat4 {
	var inv Mat4
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			inv[r][c] = m[c][r]
		}
	}
	for c := 0; c < 3; c++ {
		inv[3][c] = -(m[3][0]*inv[0][c] + m[3][1]*inv[1][c] + m[3][2]*inv[2][c])
	}
	inv[3][3] = 1
	return inv
}
