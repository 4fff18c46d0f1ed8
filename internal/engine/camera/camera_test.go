package camera

import (
	"errors"
	gomath "math"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/Faultbox/softrender/pkg/math"
)

func TestCameraIntegrate(t *testing.T) {
	Convey("Given a camera at the origin", t, func() {
		cam := New(math.Vec3{})

		Convey("No pending command leaves the position alone", func() {
			cam.Integrate(1)
			So(cam.Position, ShouldResemble, math.Vec3{})
			So(cam.LookDirection, ShouldResemble, math.Vec3{Z: 1})
		})

		Convey("Axis moves scale with elapsed time", func() {
			cam.Pending = Up
			cam.Integrate(0.5)
			So(cam.Position.Y, ShouldEqual, 4.0)

			cam.Pending = Left
			cam.Integrate(0.25)
			So(cam.Position.X, ShouldEqual, -2.0)

			cam.Pending = Right
			cam.Integrate(0.25)
			So(cam.Position.X, ShouldEqual, 0.0)

			cam.Pending = Down
			cam.Integrate(0.5)
			So(cam.Position.Y, ShouldEqual, 0.0)
		})

		Convey("The command is consumed by the step", func() {
			cam.Pending = Forward
			cam.Integrate(1)
			So(cam.Pending, ShouldEqual, None)
			So(cam.Position.Z, ShouldEqual, 8.0)

			cam.Integrate(1)
			So(cam.Position.Z, ShouldEqual, 8.0)
		})

		Convey("Backward moves against the look direction", func() {
			cam.Pending = Backward
			cam.Integrate(1)
			So(cam.Position.Z, ShouldEqual, -8.0)
		})

		Convey("Turning changes yaw and look direction", func() {
			cam.Pending = TurnRight
			cam.Integrate(gomath.Pi / 4)
			So(cam.Yaw, ShouldAlmostEqual, gomath.Pi/2)
			So(cam.LookDirection.X, ShouldAlmostEqual, -1.0)
			So(cam.LookDirection.Z, ShouldAlmostEqual, 0.0)

			cam.Pending = TurnLeft
			cam.Integrate(gomath.Pi / 4)
			So(cam.Yaw, ShouldAlmostEqual, 0.0)
		})

		Convey("Zero elapsed time changes nothing", func() {
			cam.Pending = Forward
			cam.Integrate(0)
			So(cam.Position, ShouldResemble, math.Vec3{})
		})
	})
}

func TestCameraReset(t *testing.T) {
	Convey("Reset restores the creation state", t, func() {
		start := math.Vec3{X: 1, Y: 2, Z: -10}
		cam := New(start)
		cam.Pending = TurnLeft
		cam.Integrate(1)
		cam.Pending = Forward
		cam.Integrate(1)
		cam.Pending = Up

		cam.Reset()
		So(cam.Position, ShouldResemble, start)
		So(cam.Yaw, ShouldEqual, 0.0)
		So(cam.Pending, ShouldEqual, None)
		So(cam.LookDirection, ShouldResemble, math.Vec3{Z: 1})
	})
}

func TestParseMovement(t *testing.T) {
	Convey("Movement names round-trip", t, func() {
		for m := None; m <= TurnRight; m++ {
			got, err := ParseMovement(m.String())
			So(err, ShouldBeNil)
			So(got, ShouldEqual, m)
		}
	})

	Convey("Parsing is case-insensitive", t, func() {
		got, err := ParseMovement(" Turn_Left ")
		So(err, ShouldBeNil)
		So(got, ShouldEqual, TurnLeft)
	})

	Convey("Unknown names are rejected", t, func() {
		_, err := ParseMovement("jump")
		So(errors.Is(err, ErrUnknownMovement), ShouldBeTrue)
		So(Movement(42).String(), ShouldEqual, "Movement(42)")
	})
}

func TestViewMatrix(t *testing.T) {
	Convey("The camera position maps to the view origin", t, func() {
		cam := New(math.Vec3{X: 0, Y: 0, Z: -10})
		got := math.Transform(cam.ViewMatrix(), cam.Position)
		So(got.X, ShouldAlmostEqual, 0.0)
		So(got.Y, ShouldAlmostEqual, 0.0)
		So(got.Z, ShouldAlmostEqual, 0.0)

		ahead := math.Transform(cam.ViewMatrix(), math.Vec3{})
		So(ahead.Z, ShouldAlmostEqual, 10.0)
	})
}
