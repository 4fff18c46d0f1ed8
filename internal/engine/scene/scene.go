// Package scene holds the model-space geometry rendered every frame.
package scene

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/softrender/pkg/formats"
	"github.com/Faultbox/softrender/pkg/math"
)

// Mesh is one object's triangles in model space.
type Mesh []math.Triangle

// Scene is the ordered list of objects. It is read-only while rendering;
// the renderer works on Clone() each frame.
type Scene []Mesh

// Clone returns a deep copy of the scene.
func (s Scene) Clone() Scene {
	out := make(Scene, len(s))
	for i, mesh := range s {
		out[i] = append(Mesh(nil), mesh...)
	}
	return out
}

// TriangleCount returns the number of triangles across all objects.
func (s Scene) TriangleCount() int {
	n := 0
	for _, mesh := range s {
		n += len(mesh)
	}
	return n
}

// Cube returns a unit cube spanning (0,0,0)-(1,1,1) with outward winding.
func Cube() Mesh {
	tri := func(a, b, c [3]float64) math.Triangle {
		return math.NewTriangle(
			math.Vec3{X: a[0], Y: a[1], Z: a[2]},
			math.Vec3{X: b[0], Y: b[1], Z: b[2]},
			math.Vec3{X: c[0], Y: c[1], Z: c[2]},
		)
	}

	return Mesh{
		// South
		tri([3]float64{0, 0, 0}, [3]float64{0, 1, 0}, [3]float64{1, 1, 0}),
		tri([3]float64{0, 0, 0}, [3]float64{1, 1, 0}, [3]float64{1, 0, 0}),

		// East
		tri([3]float64{1, 0, 0}, [3]float64{1, 1, 0}, [3]float64{1, 1, 1}),
		tri([3]float64{1, 0, 0}, [3]float64{1, 1, 1}, [3]float64{1, 0, 1}),

		// North
		tri([3]float64{1, 0, 1}, [3]float64{1, 1, 1}, [3]float64{0, 1, 1}),
		tri([3]float64{1, 0, 1}, [3]float64{0, 1, 1}, [3]float64{0, 0, 1}),

		// West
		tri([3]float64{0, 0, 1}, [3]float64{0, 1, 1}, [3]float64{0, 1, 0}),
		tri([3]float64{0, 0, 1}, [3]float64{0, 1, 0}, [3]float64{0, 0, 0}),

		// Top
		tri([3]float64{0, 1, 0}, [3]float64{0, 1, 1}, [3]float64{1, 1, 1}),
		tri([3]float64{0, 1, 0}, [3]float64{1, 1, 1}, [3]float64{1, 1, 0}),

		// Bottom
		tri([3]float64{1, 0, 1}, [3]float64{0, 0, 1}, [3]float64{0, 0, 0}),
		tri([3]float64{1, 0, 1}, [3]float64{0, 0, 0}, [3]float64{1, 0, 0}),
	}
}

// Source supplies model file contents by path.
type Source interface {
	Load(path string) ([]byte, error)
}

// Load reads one object per OBJ path from src. With no paths it returns the
// built-in cube. Any failure aborts the whole load.
func Load(src Source, paths []string, log *zap.Logger) (Scene, error) {
	if len(paths) == 0 {
		log.Info("no models configured, using built-in cube")
		return Scene{Cube()}, nil
	}

	s := make(Scene, 0, len(paths))
	for _, path := range paths {
		data, err := src.Load(path)
		if err != nil {
			return nil, fmt.Errorf("loading model %s: %w", path, err)
		}
		obj, err := formats.ParseOBJ(data)
		if err != nil {
			return nil, fmt.Errorf("loading model %s: %w", path, err)
		}
		mesh := Mesh(obj.Triangles())
		min, max := obj.Bounds()
		log.Info("model loaded",
			zap.String("path", path),
			zap.Int("vertices", len(obj.Vertices)),
			zap.Int("triangles", len(mesh)),
			zap.Any("min", min),
			zap.Any("max", max),
		)
		s = append(s, mesh)
	}
	return s, nil
}
