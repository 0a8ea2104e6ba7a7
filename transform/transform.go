// Package transform holds the interactive world transform of the mesh and the
// rule that advances it from one frame's controls.
package transform

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/vertices/input"
)

// State is the set of parameters the world matrix is composed from.
// Angles are in degrees.
type State struct {
	RotationX   float32
	RotationY   float32
	OrbitX      float32
	OrbitY      float32
	Translation mgl32.Vec3
	Scale       float32
}

// Default returns the identity transform.
func Default() State {
	return State{Scale: 1}
}

// Reset restores the defaults.
func (s *State) Reset() {
	*s = Default()
}

// Rates are the per-millisecond change of each parameter while its key is held.
type Rates struct {
	Scale     float32 `yaml:"scale"`
	Rotate    float32 `yaml:"rotate"`
	Orbit     float32 `yaml:"orbit"`
	Translate float32 `yaml:"translate"`
}

// DefaultRates returns 0.001 scale, 0.5 degrees of rotation and orbit, and 0.01
// units of translation per millisecond.
func DefaultRates() Rates {
	return Rates{
		Scale:     0.001,
		Rotate:    0.5,
		Orbit:     0.5,
		Translate: 0.01,
	}
}

// Apply advances the state by elapsedMs milliseconds of the given controls and
// reports whether a reset happened. A released reset key wins over anything
// accumulated in the same frame.
func (s *State) Apply(c input.Controls, elapsedMs float32, r Rates) bool {
	if !finite(elapsedMs) || elapsedMs < 0 {
		elapsedMs = 0
	}

	axis := func(pos, neg input.Action) float32 {
		var d float32
		if c.IsHeld(pos) {
			d += elapsedMs
		}
		if c.IsHeld(neg) {
			d -= elapsedMs
		}
		return d
	}

	s.Scale += r.Scale * axis(input.ScaleUp, input.ScaleDown)

	s.RotationX += r.Rotate * axis(input.RotateLeft, input.RotateRight)
	s.RotationY += r.Rotate * axis(input.RotateUp, input.RotateDown)

	s.OrbitX += r.Orbit * axis(input.OrbitXPos, input.OrbitXNeg)
	s.OrbitY += r.Orbit * axis(input.OrbitYPos, input.OrbitYNeg)

	s.Translation[0] += r.Translate * axis(input.MoveRight, input.MoveLeft)
	s.Translation[1] += r.Translate * axis(input.MoveUp, input.MoveDown)

	s.RotationX = wrapDegrees(s.RotationX)
	s.RotationY = wrapDegrees(s.RotationY)
	s.OrbitX = wrapDegrees(s.OrbitX)
	s.OrbitY = wrapDegrees(s.OrbitY)

	if c.IsReleased(input.Reset) || !s.Finite() {
		s.Reset()
		return true
	}
	return false
}

// Finite reports whether every parameter is a finite number.
func (s State) Finite() bool {
	return finite(s.RotationX) && finite(s.RotationY) &&
		finite(s.OrbitX) && finite(s.OrbitY) &&
		finite(s.Translation[0]) && finite(s.Translation[1]) && finite(s.Translation[2]) &&
		finite(s.Scale)
}

// World composes the world matrix. Applied to a point, the order is scale,
// rotation about X then Y, translation, then orbit about X then Y.
func (s State) World() mgl32.Mat4 {
	t := s.Translation
	return mgl32.HomogRotate3DY(mgl32.DegToRad(s.OrbitY)).
		Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(s.OrbitX))).
		Mul4(mgl32.Translate3D(t[0], t[1], t[2])).
		Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(s.RotationY))).
		Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(s.RotationX))).
		Mul4(mgl32.Scale3D(s.Scale, s.Scale, s.Scale))
}

// wrapDegrees keeps an angle in (-360, 360) without changing its orientation.
func wrapDegrees(deg float32) float32 {
	return math32.Mod(deg, 360)
}

func finite(f float32) bool {
	return !math32.IsNaN(f) && !math32.IsInf(f, 0)
}
