// Package camera holds the fixed view and perspective projection of the demo.
package camera

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Camera is a look-at camera with a symmetric perspective projection.
type Camera struct {
	Eye     mgl32.Vec3
	Target  mgl32.Vec3
	Up      mgl32.Vec3
	FovYDeg float32
	Near    float32
	Far     float32
	Aspect  float32
}

// Default looks from (0,-4,10) at (0,1,0) with +Y up, a 45 degree vertical
// field of view and depth range [1,100].
func Default(width, height int) Camera {
	c := Camera{
		Eye:     mgl32.Vec3{0, -4, 10},
		Target:  mgl32.Vec3{0, 1, 0},
		Up:      mgl32.Vec3{0, 1, 0},
		FovYDeg: 45,
		Near:    1,
		Far:     100,
		Aspect:  1,
	}
	c.SetViewport(width, height)
	return c
}

// SetViewport updates the aspect ratio. Non-positive sizes are ignored, which
// happens while a window is minimized.
func (c *Camera) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.Aspect = float32(width) / float32(height)
}

// View returns the world-to-camera matrix.
func (c Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Eye, c.Target, c.Up)
}

// Projection returns the camera-to-clip matrix.
func (c Camera) Projection() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FovYDeg), c.Aspect, c.Near, c.Far)
}

// ViewProjection returns Projection * View.
func (c Camera) ViewProjection() mgl32.Mat4 {
	return c.Projection().Mul4(c.View())
}
