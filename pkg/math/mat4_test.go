package math

import (
	"math"
	"testing"
)

func sampleMatrix() Mat4 {
	var m Mat4
	m[0] = [4]float64{4, 3, 1, 0}
	m[2] = [4]float64{2, 2, 2, 0}
	return m
}

func TestIdentity(t *testing.T) {
	m := Identity()
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			want := 0.0
			if r == c {
				want = 1
			}
			if m[r][c] != want {
				t.Errorf("Identity[%d][%d] = %v, want %v", r, c, m[r][c], want)
			}
		}
	}
}

func TestTransformNoDivide(t *testing.T) {
	got := Transform(sampleMatrix(), Vec3{1, 2, 3})
	want := Vec3{10, 9, 7}
	if got != want {
		t.Errorf("Transform() = %v, want %v", got, want)
	}
}

func TestTransformDividesByW(t *testing.T) {
	m := Identity()
	m[3][3] = 2
	got := Transform(m, Vec3{2, 4, 6})
	want := Vec3{1, 2, 3}
	if got != want {
		t.Errorf("Transform() = %v, want %v", got, want)
	}
}

func TestComposeIdentity(t *testing.T) {
	m := sampleMatrix()
	if got := Compose(Identity(), m); got != m {
		t.Errorf("I * M = %v, want %v", got, m)
	}
	if got := Compose(m, Identity()); got != m {
		t.Errorf("M * I = %v, want %v", got, m)
	}
}

func TestComposeOrder(t *testing.T) {
	// Rotate a quarter turn about Z, then translate.
	rot := RotationZ(math.Pi / 2)
	tr := Translation(10, 0, 0)
	m := Compose(rot, tr)

	got := Transform(m, Vec3{1, 0, 0})
	want := Transform(tr, Transform(rot, Vec3{1, 0, 0}))
	if !nearly(got, want) {
		t.Errorf("Compose(rot, tr) applied = %v, want %v", got, want)
	}
	if !nearly(got, Vec3{10, 1, 0}) {
		t.Errorf("Compose(rot, tr) applied = %v, want (10, 1, 0)", got)
	}
}

func TestRotationX(t *testing.T) {
	const theta = 0.5
	c, s := math.Cos(theta), math.Sin(theta)
	m := RotationX(theta)

	if m[0] != [4]float64{1, 0, 0, 0} {
		t.Errorf("row0 = %v", m[0])
	}
	if m[1] != [4]float64{0, c, s, 0} {
		t.Errorf("row1 = %v, want (0, %v, %v, 0)", m[1], c, s)
	}
	if m[2] != [4]float64{0, -s, c, 0} {
		t.Errorf("row2 = %v, want (0, %v, %v, 0)", m[2], -s, c)
	}
	if m[3] != [4]float64{0, 0, 0, 1} {
		t.Errorf("row3 = %v", m[3])
	}
}

func TestRotationY(t *testing.T) {
	const theta = 0.5
	c, s := math.Cos(theta), math.Sin(theta)
	m := RotationY(theta)

	want := Mat4{
		{c, 0, s, 0},
		{0, 1, 0, 0},
		{-s, 0, c, 0},
		{0, 0, 0, 1},
	}
	if m != want {
		t.Errorf("RotationY(0.5) = %v, want %v", m, want)
	}
}

func TestRotationZ(t *testing.T) {
	const theta = 0.5
	c, s := math.Cos(theta), math.Sin(theta)
	m := RotationZ(theta)

	want := Mat4{
		{c, s, 0, 0},
		{-s, c, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
	if m != want {
		t.Errorf("RotationZ(0.5) = %v, want %v", m, want)
	}
}

func TestRotationYLookDirection(t *testing.T) {
	got := Transform(RotationY(math.Pi/2), Vec3{0, 0, 1})
	if !nearly(got, Vec3{-1, 0, 0}) {
		t.Errorf("RotationY(pi/2) * +Z = %v, want (-1, 0, 0)", got)
	}
}

func TestTranslation(t *testing.T) {
	m := Translation(2, 3, 1)
	want := Identity()
	want[3] = [4]float64{2, 3, 1, 1}
	if m != want {
		t.Errorf("Translation(2,3,1) = %v, want %v", m, want)
	}
}

func TestProjection(t *testing.T) {
	m := Projection(0.1, 1000, 90, 0.75)

	fovRad := 1.0 / math.Tan(math.Pi/4)
	if math.Abs(m[0][0]-0.75*fovRad) > epsilon {
		t.Errorf("m00 = %v, want %v", m[0][0], 0.75*fovRad)
	}
	if math.Abs(m[1][1]-fovRad) > epsilon {
		t.Errorf("m11 = %v, want %v", m[1][1], fovRad)
	}
	if m[2][2] != 1000/(1000-0.1) {
		t.Errorf("m22 = %v", m[2][2])
	}
	if m[2][3] != 1 || m[3][3] != 0 {
		t.Errorf("perspective terms m23=%v m33=%v, want 1 and 0", m[2][3], m[3][3])
	}

	// A point on the near plane maps to depth 0, on the far plane to 1.
	if z := Transform(m, Vec3{0, 0, 0.1}).Z; math.Abs(z) > 1e-6 {
		t.Errorf("near plane depth = %v, want 0", z)
	}
	if z := Transform(m, Vec3{0, 0, 1000}).Z; math.Abs(z-1) > 1e-6 {
		t.Errorf("far plane depth = %v, want 1", z)
	}
}

func TestPointAtQuickInverse(t *testing.T) {
	pos := Vec3{3, -2, 5}
	target := pos.Add(Vec3{0, 0, 1})
	view := QuickInverse(PointAt(pos, target, Vec3{0, 1, 0}))

	// The camera position maps to the view-space origin.
	if got := Transform(view, pos); !nearly(got, Vec3{}) {
		t.Errorf("camera position in view space = %v, want origin", got)
	}
	// A point straight ahead ends up on +Z.
	if got := Transform(view, pos.Add(Vec3{0, 0, 4})); !nearly(got, Vec3{0, 0, 4}) {
		t.Errorf("forward point in view space = %v, want (0, 0, 4)", got)
	}
}

func TestQuickInverseRoundTrip(t *testing.T) {
	m := PointAt(Vec3{1, 2, 3}, Vec3{4, 1, -2}, Vec3{0, 1, 0})
	round := Compose(m, QuickInverse(m))
	id := Identity()
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			if math.Abs(round[r][c]-id[r][c]) > 1e-9 {
				t.Fatalf("M * QuickInverse(M) [%d][%d] = %v, want %v", r, c, round[r][c], id[r][c])
			}
		}
	}
}
