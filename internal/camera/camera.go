// Package camera implements the free-fly first-person camera spec.md
// §4.5 describes, replacing the teacher's static look-at
// pkg/camera/camera.go PerspectiveCamera (built once from eye/target/up)
// with one driven every frame by keyboard + relative mouse state, in the
// manner of original_source/project/src/Camera.h's (stubbed) field layout.
package camera

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"raytracer/internal/input"
	"raytracer/internal/mathutil"
)

const (
	moveSpeed     = 5.0  // units/second
	rotationSpeed = 0.2  // degrees per pixel of mouse motion, also scaled by dt
)

var worldUp = mathutil.UnitY

// Camera is a position + orientation driven by WASD translation and
// mouse-look rotation, grounded on original_source's origin/forward/up/
// right/totalPitch/totalYaw/fovAngle field set.
type Camera struct {
	Origin             mathutil.Vector3
	Forward, Up, Right mathutil.Vector3
	TotalPitch         float32 // radians
	TotalYaw           float32 // radians
	FovAngle           float32 // degrees
	fovValue           float32 // cached tan(fovAngle*pi/360)
}

func New(origin mathutil.Vector3, fovAngleDegrees float32) *Camera {
	c := &Camera{
		Origin:   origin,
		Forward:  mathutil.UnitZ,
		Up:       mathutil.UnitY,
		Right:    mathutil.UnitX,
		FovAngle: fovAngleDegrees,
	}
	c.recalculateFov()
	return c
}

func (c *Camera) recalculateFov() {
	c.fovValue = float32(math.Tan(float64(mathutil.ToRadians(c.FovAngle)) / 2))
}

// FovValue returns tan(fovAngle/2), cached by New/SetFovAngle.
func (c *Camera) FovValue() float32 { return c.fovValue }

func (c *Camera) SetFovAngle(degrees float32) {
	c.FovAngle = degrees
	c.recalculateFov()
}

// Update reads keyboard translation and relative mouse rotation/translation
// and integrates them over dt, per spec.md §4.5:
//   - W/S translate along Forward, A/D along Right, at moveSpeed units/s.
//   - LMB: translate along Forward by -mouseY, yaw by mouseX.
//   - RMB: pitch by -mouseY, yaw by mouseX.
//   - LMB+RMB: translate along worldUp by -mouseY.
//
// All mouse deltas are scaled by rotationSpeed (or moveSpeed, for the
// translation cases) and by dt.
func (c *Camera) Update(dt float32, in *input.State) {
	if input.IsKeyDown(ebiten.KeyW) {
		c.Origin = c.Origin.Add(c.Forward.Mul(moveSpeed * dt))
	}
	if input.IsKeyDown(ebiten.KeyS) {
		c.Origin = c.Origin.Sub(c.Forward.Mul(moveSpeed * dt))
	}
	if input.IsKeyDown(ebiten.KeyD) {
		c.Origin = c.Origin.Add(c.Right.Mul(moveSpeed * dt))
	}
	if input.IsKeyDown(ebiten.KeyA) {
		c.Origin = c.Origin.Sub(c.Right.Mul(moveSpeed * dt))
	}

	mx, my := in.MouseDelta()
	lmb, rmb := input.IsLeftMouseDown(), input.IsRightMouseDown()

	switch {
	case lmb && rmb:
		c.Origin = c.Origin.Add(worldUp.Mul(-my * moveSpeed * dt))
	case lmb:
		c.Origin = c.Origin.Add(c.Forward.Mul(-my * moveSpeed * dt))
		c.TotalYaw += mathutil.ToRadians(mx * rotationSpeed * dt)
	case rmb:
		c.TotalPitch += mathutil.ToRadians(-my * rotationSpeed * dt)
		c.TotalYaw += mathutil.ToRadians(mx * rotationSpeed * dt)
	}

	rotated := mathutil.CreateRotationX(c.TotalPitch).
		Multiply(mathutil.CreateRotationY(c.TotalYaw)).
		TransformVector(mathutil.UnitZ)
	c.Forward = rotated.Normalized()
}

// CalculateCameraToWorld rebuilds Right/Up from Forward and returns the
// camera-to-world basis matrix whose columns are (Right, Up, Forward,
// Origin), matching the left-handed-Z-forward ray formula of spec.md §4.7.
func (c *Camera) CalculateCameraToWorld() mathutil.Matrix {
	c.Right = worldUp.Cross(c.Forward).Normalized()
	c.Up = c.Forward.Cross(c.Right).Normalized()
	return mathutil.FromBasis(c.Right, c.Up, c.Forward, c.Origin)
}
