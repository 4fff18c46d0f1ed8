package math

// Triangle is three vertices in winding order plus the shading intensity
// assigned by the lighting step. Edge1 x Edge2 gives the outward normal.
type Triangle struct {
	P [3]Vec3

	// Light is the lighting intensity in [0,1]. Valid only when Lit is set.
	Light float64
	Lit   bool
}

// NewTriangle creates an unlit triangle.
func NewTriangle(a, b, c Vec3) Triangle {
	return Triangle{P: [3]Vec3{a, b, c}}
}

// Transform returns a copy of t with every vertex multiplied by m.
func (t Triangle) Transform(m Mat4) Triangle {
	t.P[0] = Transform(m, t.P[0])
	t.P[1] = Transform(m, t.P[1])
	t.P[2] = Transform(m, t.P[2])
	return t
}

// Normal returns the unit face normal.
func (t Triangle) Normal() Vec3 {
	line1 := t.P[1].Sub(t.P[0])
	line2 := t.P[2].Sub(t.P[0])
	return line1.Cross(line2).Normalize()
}

// WithLight returns a copy of t carrying the given intensity.
func (t Triangle) WithLight(intensity float64) Triangle {
	t.Light = intensity
	t.Lit = true
	return t
}

// AverageZ returns the mean depth of the three vertices.
func (t Triangle) AverageZ() float64 {
	return (t.P[0].Z + t.P[1].Z + t.P[2].Z) / 3.0
}

// IsFinite reports whether every vertex is finite.
func (t Triangle) IsFinite() bool {
	return t.P[0].IsFinite() && t.P[1].IsFinite() && t.P[2].IsFinite()
}

// Map returns a copy of t with fn applied to each vertex.
func (t Triangle) Map(fn func(Vec3) Vec3) Triangle {
	t.P[0] = fn(t.P[0])
	t.P[1] = fn(t.P[1])
	t.P[2] = fn(t.P[2])
	return t
}

// ClipAgainstPlane clips t against the plane through planePoint with normal
// planeNormal, keeping the half-space the normal points into. It returns 0,
// 1 or 2 triangles, each inheriting t's light intensity.
func ClipAgainstPlane(planePoint, planeNormal Vec3, t Triangle) []Triangle {
	planeNormal = planeNormal.Normalize()

	var inside, outside [3]Vec3
	nInside, nOutside := 0, 0

	for _, p := range t.P {
		if PointToPlaneDistance(planePoint, planeNormal, p) >= 0 {
			inside[nInside] = p
			nInside++
		} else {
			outside[nOutside] = p
			nOutside++
		}
	}

	switch nInside {
	case 0:
		return nil

	case 3:
		return []Triangle{t}

	case 1:
		out := t
		out.P[0] = inside[0]
		out.P[1] = IntersectPlane(planePoint, planeNormal, inside[0], outside[0])
		out.P[2] = IntersectPlane(planePoint, planeNormal, inside[0], outside[1])
		return []Triangle{out}

	default:
		a := t
		a.P[0] = inside[0]
		a.P[1] = inside[1]
		a.P[2] = IntersectPlane(planePoint, planeNormal, inside[0], outside[0])

		b := t
		b.P[0] = inside[1]
		b.P[1] = a.P[2]
		b.P[2] = IntersectPlane(planePoint, planeNormal, inside[1], outside[0])
		return []Triangle{a, b}
	}
}
