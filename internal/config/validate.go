package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Faultbox/softrender/internal/engine/camera"
	"github.com/Faultbox/softrender/internal/engine/input"
	"github.com/Faultbox/softrender/internal/engine/renderer"
	"github.com/Faultbox/softrender/internal/logger"
	"github.com/Faultbox/softrender/pkg/math"
)

// Validate checks every section and returns all problems found.
func (c *Config) Validate() error {
	var errs []error

	if err := c.RendererConfig().Validate(); err != nil {
		errs = append(errs, fmt.Errorf("render: %w", err))
	}

	if c.Camera.MoveSpeed <= 0 {
		errs = append(errs, fmt.Errorf("camera: move_speed must be positive, got %v", c.Camera.MoveSpeed))
	}
	if c.Camera.TurnSpeed <= 0 {
		errs = append(errs, fmt.Errorf("camera: turn_speed must be positive, got %v", c.Camera.TurnSpeed))
	}

	for key, command := range c.Input.Bindings {
		if strings.EqualFold(strings.TrimSpace(command), input.ResetCommand) {
			continue
		}
		if _, err := camera.ParseMovement(command); err != nil {
			errs = append(errs, fmt.Errorf("input: binding %q: %w", key, err))
		}
	}

	if c.Window.FPSLimit < 0 {
		errs = append(errs, fmt.Errorf("window: fps_limit must not be negative, got %d", c.Window.FPSLimit))
	}
	if key := strings.ToLower(strings.TrimSpace(c.Window.ScreenshotKey)); key != "" {
		if command, taken := c.Input.Bindings[key]; taken {
			errs = append(errs, fmt.Errorf("window: screenshot_key %q is already bound to %q", key, command))
		}
	}

	if c.Snapshot.Frames < 0 {
		errs = append(errs, fmt.Errorf("snapshot: frames must not be negative, got %d", c.Snapshot.Frames))
	}
	if c.Snapshot.FrameTime < 0 {
		errs = append(errs, fmt.Errorf("snapshot: frame_time must not be negative, got %v", c.Snapshot.FrameTime))
	}
	if _, err := camera.ParseMovement(c.Snapshot.Movement); err != nil {
		errs = append(errs, fmt.Errorf("snapshot: %w", err))
	}

	if _, err := logger.ParseLevel(c.Logging.Level); err != nil {
		errs = append(errs, fmt.Errorf("logging: %w", err))
	}

	return errors.Join(errs...)
}

// RendererConfig returns the pipeline settings.
func (c *Config) RendererConfig() renderer.Config {
	return renderer.Config{
		Near:         c.Render.Near,
		Far:          c.Render.Far,
		FOV:          c.Render.FOV,
		ScreenWidth:  c.Render.Width,
		ScreenHeight: c.Render.Height,
		SpinRate:     c.Render.SpinRate,
	}
}

// NewCamera returns a camera at the configured start with the configured
// speeds.
func (c *Config) NewCamera() *camera.Camera {
	start := c.Camera.Start
	cam := camera.New(math.Vec3{X: start[0], Y: start[1], Z: start[2]})
	cam.MoveSpeed = c.Camera.MoveSpeed
	cam.TurnSpeed = c.Camera.TurnSpeed
	return cam
}
