// Package camera provides the free-flying camera driven by movement commands.
package camera

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Faultbox/softrender/pkg/math"
)

// ErrUnknownMovement is returned by ParseMovement for unrecognised names.
var ErrUnknownMovement = errors.New("unknown movement command")

// Movement is a pending camera command.
type Movement int

// Movement commands.
const (
	None Movement = iota
	Up
	Down
	Left
	Right
	Forward
	Backward
	TurnLeft
	TurnRight
)

var movementNames = [...]string{
	None:      "none",
	Up:        "up",
	Down:      "down",
	Left:      "left",
	Right:     "right",
	Forward:   "forward",
	Backward:  "backward",
	TurnLeft:  "turn_left",
	TurnRight: "turn_right",
}

// String returns the command name used in configuration files.
func (m Movement) String() string {
	if m < 0 || int(m) >= len(movementNames) {
		return fmt.Sprintf("Movement(%d)", int(m))
	}
	return movementNames[m]
}

// ParseMovement converts a configuration name to a Movement.
func ParseMovement(name string) (Movement, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range movementNames {
		if n == name {
			return Movement(i), nil
		}
	}
	return None, fmt.Errorf("%w: %q", ErrUnknownMovement, name)
}

// Default speeds.
const (
	DefaultMoveSpeed = 8.0 // world units per second
	DefaultTurnSpeed = 2.0 // radians per second
)

// Camera is a first-person camera. Position and Yaw change only through
// Integrate and Reset; Pending is written by the input translator.
type Camera struct {
	Position      math.Vec3
	Origin        math.Vec3 // Position at creation, restored by Reset
	LookDirection math.Vec3
	Yaw           float64 // radians
	Pending       Movement

	MoveSpeed float64
	TurnSpeed float64
}

// New creates a camera at position looking down +Z.
func New(position math.Vec3) *Camera {
	return &Camera{
		Position:      position,
		Origin:        position,
		LookDirection: math.Vec3{Z: 1},
		MoveSpeed:     DefaultMoveSpeed,
		TurnSpeed:     DefaultTurnSpeed,
	}
}

// Integrate applies the pending command scaled by elapsed seconds, clears
// it, and recomputes LookDirection from Yaw.
func (c *Camera) Integrate(elapsed float64) {
	step := c.MoveSpeed * elapsed
	forward := c.LookDirection.Scale(step)

	switch c.Pending {
	case Up:
		c.Position.Y += step
	case Down:
		c.Position.Y -= step
	case Left:
		c.Position.X -= step
	case Right:
		c.Position.X += step
	case Forward:
		c.Position = c.Position.Add(forward)
	case Backward:
		c.Position = c.Position.Sub(forward)
	case TurnLeft:
		c.Yaw -= c.TurnSpeed * elapsed
	case TurnRight:
		c.Yaw += c.TurnSpeed * elapsed
	}
	c.Pending = None

	c.LookDirection = math.Transform(math.RotationY(c.Yaw), math.Vec3{Z: 1})
}

// Reset restores the creation position, zeroes yaw and clears movement.
func (c *Camera) Reset() {
	c.Position = c.Origin
	c.Yaw = 0
	c.Pending = None
	c.LookDirection = math.Vec3{Z: 1}
}

// ViewMatrix returns the world-to-view transform for the current state.
func (c *Camera) ViewMatrix() math.Mat4 {
	up := math.Vec3{Y: 1}
	target := c.Position.Add(c.LookDirection)
	return math.QuickInverse(math.PointAt(c.Position, target, up))
}
