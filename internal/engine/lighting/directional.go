// Package lighting provides the single directional light used for flat shading.
package lighting

import "github.com/Faultbox/softrender/pkg/math"

// Ambient is the lowest intensity a lit face can receive.
const Ambient = 0.1

// Directional is a light infinitely far away shining along one direction.
type Directional struct {
	// Direction points from the surface towards the light. Unit length.
	Direction math.Vec3
}

// TowardsViewer returns the default light, pointing back along -Z at the camera.
func TowardsViewer() Directional {
	return NewDirectional(math.Vec3{Z: -1})
}

// NewDirectional creates a light with the given direction, normalized.
func NewDirectional(dir math.Vec3) Directional {
	return Directional{Direction: dir.Normalize()}
}

// Intensity returns max(Ambient, Direction·normal) for a unit face normal.
func (d Directional) Intensity(normal math.Vec3) float64 {
	dp := d.Direction.Dot(normal)
	if dp < Ambient {
		return Ambient
	}
	return dp
}

// Apply returns t lit according to its face normal.
func (d Directional) Apply(t math.Triangle) math.Triangle {
	return t.WithLight(d.Intensity(t.Normal()))
}
