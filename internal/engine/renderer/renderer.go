// Package renderer turns model-space triangles into ordered, clipped
// screen-space triangles ready for a 2D polygon fill.
package renderer

import (
	"errors"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/Faultbox/softrender/internal/engine/camera"
	"github.com/Faultbox/softrender/internal/engine/lighting"
	"github.com/Faultbox/softrender/internal/engine/scene"
	"github.com/Faultbox/softrender/pkg/math"
)

// Configuration errors.
var (
	ErrInvalidNear   = errors.New("near plane must be positive")
	ErrInvalidFar    = errors.New("far plane must be greater than near plane")
	ErrInvalidFOV    = errors.New("field of view must be between 0 and 180 degrees")
	ErrInvalidScreen = errors.New("screen dimensions must be positive")
)

const (
	// NearClipOffset is the view-space depth of the near clipping plane.
	NearClipOffset = 0.1

	// ScreenScale maps NDC [-1,1] (shifted to [0,2]) onto the screen,
	// leaving a border around the image.
	ScreenScale = 0.6
)

// Config holds the fixed projection and viewport settings.
type Config struct {
	Near         float64
	Far          float64
	FOV          float64 // degrees
	ScreenWidth  int
	ScreenHeight int

	// SpinRate rotates the world about Z (and X at half rate) in radians
	// per second. Zero keeps the world transform at identity.
	SpinRate float64
}

// Validate checks the configuration constraints.
func (c Config) Validate() error {
	if c.Near <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidNear, c.Near)
	}
	if c.Far <= c.Near {
		return fmt.Errorf("%w: near=%v far=%v", ErrInvalidFar, c.Near, c.Far)
	}
	if c.FOV <= 0 || c.FOV >= 180 {
		return fmt.Errorf("%w: %v", ErrInvalidFOV, c.FOV)
	}
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidScreen, c.ScreenWidth, c.ScreenHeight)
	}
	return nil
}

// DrawTriangle is one screen-space triangle and its shade in [0,1].
// Depth is the projected depth the draw list was sorted by.
type DrawTriangle struct {
	P     [3]math.Vec2
	Shade float64
	Depth float64
}

// Stats counts triangles at each stage of the last frame.
type Stats struct {
	Objects   int
	Input     int // model-space triangles
	Culled    int // back faces dropped
	Projected int // triangles surviving the near plane
	Emitted   int // triangles after screen-edge clipping
	Dropped   int // degenerate triangles with non-finite vertices
}

// Renderer owns the projection, camera and scene and produces one draw
// list per call to RenderFrame.
type Renderer struct {
	config     Config
	projection math.Mat4
	camera     *camera.Camera
	scene      scene.Scene
	light      lighting.Directional
	log        *zap.Logger

	theta float64
	stats Stats
}

// New creates a renderer. The scene is retained and never modified.
func New(cfg Config, sc scene.Scene, cam *camera.Camera, log *zap.Logger) (*Renderer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cam == nil {
		return nil, errors.New("renderer: nil camera")
	}
	if log == nil {
		log = zap.NewNop()
	}

	aspect := float64(cfg.ScreenHeight) / float64(cfg.ScreenWidth)
	r := &Renderer{
		config:     cfg,
		projection: math.Projection(cfg.Near, cfg.Far, cfg.FOV, aspect),
		camera:     cam,
		scene:      sc,
		light:      lighting.TowardsViewer(),
		log:        log,
	}

	log.Info("renderer created",
		zap.Float64("near", cfg.Near),
		zap.Float64("far", cfg.Far),
		zap.Float64("fov", cfg.FOV),
		zap.Int("width", cfg.ScreenWidth),
		zap.Int("height", cfg.ScreenHeight),
		zap.Int("objects", len(sc)),
		zap.Int("triangles", sc.TriangleCount()),
	)

	return r, nil
}

// Camera returns the camera driven by this renderer.
func (r *Renderer) Camera() *camera.Camera {
	return r.camera
}

// Stats returns counters from the most recent frame.
func (r *Renderer) Stats() Stats {
	return r.stats
}

// Config returns the renderer configuration.
func (r *Renderer) Config() Config {
	return r.config
}

// worldMatrix returns rotationZ * rotationX * translation for the current
// spin angle. It is identity while SpinRate is zero.
func (r *Renderer) worldMatrix() math.Mat4 {
	world := math.Compose(math.RotationZ(r.theta), math.RotationX(r.theta*0.5))
	return math.Compose(world, math.Translation(0, 0, 0))
}

// RenderFrame advances the camera by elapsed seconds and returns the frame's
// triangles ordered back to front.
func (r *Renderer) RenderFrame(elapsed float64) []DrawTriangle {
	objects := r.scene.Clone()
	stats := Stats{Objects: len(objects)}

	r.camera.Integrate(elapsed)
	r.theta += r.config.SpinRate * elapsed

	world := r.worldMatrix()
	view := r.camera.ViewMatrix()
	camPos := r.camera.Position

	nearPoint := math.Vec3{Z: NearClipOffset}
	nearNormal := math.Vec3{Z: 1}

	var toRaster []math.Triangle
	for _, mesh := range objects {
		for _, tri := range mesh {
			stats.Input++

			transformed := tri.Transform(world)

			normal := transformed.Normal()
			if normal.Dot(transformed.P[0].Sub(camPos)) > 0 {
				stats.Culled++
				continue
			}

			lit := r.light.Apply(transformed)
			viewed := lit.Transform(view)

			for _, clipped := range math.ClipAgainstPlane(nearPoint, nearNormal, viewed) {
				projected := clipped.Transform(r.projection).Map(r.toScreen)
				if !projected.IsFinite() {
					stats.Dropped++
					continue
				}
				toRaster = append(toRaster, projected)
			}
		}
	}
	stats.Projected = len(toRaster)

	sort.SliceStable(toRaster, func(i, j int) bool {
		return toRaster[i].AverageZ() > toRaster[j].AverageZ()
	})

	out := make([]DrawTriangle, 0, len(toRaster))
	for _, tri := range toRaster {
		depth := tri.AverageZ()
		for _, clipped := range r.clipToScreen(tri) {
			if !clipped.IsFinite() {
				stats.Dropped++
				continue
			}
			out = append(out, DrawTriangle{
				P:     [3]math.Vec2{clipped.P[0].XY(), clipped.P[1].XY(), clipped.P[2].XY()},
				Shade: clipped.Light,
				Depth: depth,
			})
		}
	}
	stats.Emitted = len(out)
	r.stats = stats

	r.log.Debug("frame rendered",
		zap.Float64("elapsed", elapsed),
		zap.Int("input", stats.Input),
		zap.Int("culled", stats.Culled),
		zap.Int("projected", stats.Projected),
		zap.Int("emitted", stats.Emitted),
		zap.Int("dropped", stats.Dropped),
	)

	return out
}

// toScreen shifts NDC x/y into [0,2] and scales by the viewport size.
func (r *Renderer) toScreen(v math.Vec3) math.Vec3 {
	v.X = (v.X + 1) * ScreenScale * float64(r.config.ScreenWidth)
	v.Y = (v.Y + 1) * ScreenScale * float64(r.config.ScreenHeight)
	return v
}
