package transform_test

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/vertices/input"
	"github.com/plus3/vertices/transform"
	"github.com/stretchr/testify/assert"
)

func held(actions ...input.Action) input.Controls {
	var c input.Controls
	for _, a := range actions {
		c.Held = c.Held.Add(a)
	}
	return c
}

func assertVec3(t *testing.T, expected, actual mgl32.Vec3) {
	t.Helper()
	assert.True(t, expected.ApproxEqualThreshold(actual, 1e-5), "expected %v, got %v", expected, actual)
}

func TestApply(t *testing.T) {
	rates := transform.DefaultRates()

	tests := []struct {
		name     string
		controls input.Controls
		check    func(t *testing.T, s transform.State)
	}{
		{"scale up", held(input.ScaleUp), func(t *testing.T, s transform.State) {
			assert.InDelta(t, 1.1, s.Scale, 1e-6)
		}},
		{"scale down", held(input.ScaleDown), func(t *testing.T, s transform.State) {
			assert.InDelta(t, 0.9, s.Scale, 1e-6)
		}},
		{"rotate left and up", held(input.RotateLeft, input.RotateUp), func(t *testing.T, s transform.State) {
			assert.InDelta(t, 50, s.RotationX, 1e-4)
			assert.InDelta(t, 50, s.RotationY, 1e-4)
		}},
		{"rotate right and down", held(input.RotateRight, input.RotateDown), func(t *testing.T, s transform.State) {
			assert.InDelta(t, -50, s.RotationX, 1e-4)
			assert.InDelta(t, -50, s.RotationY, 1e-4)
		}},
		{"orbit", held(input.OrbitXPos, input.OrbitYNeg), func(t *testing.T, s transform.State) {
			assert.InDelta(t, 50, s.OrbitX, 1e-4)
			assert.InDelta(t, -50, s.OrbitY, 1e-4)
		}},
		{"translate", held(input.MoveRight, input.MoveUp), func(t *testing.T, s transform.State) {
			assertVec3(t, mgl32.Vec3{1, 1, 0}, s.Translation)
		}},
		{"translate back", held(input.MoveLeft, input.MoveDown), func(t *testing.T, s transform.State) {
			assertVec3(t, mgl32.Vec3{-1, -1, 0}, s.Translation)
		}},
		{"opposing keys cancel", held(input.ScaleUp, input.ScaleDown, input.OrbitYPos, input.OrbitYNeg), func(t *testing.T, s transform.State) {
			assert.Equal(t, transform.Default(), s)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := transform.Default()
			reset := s.Apply(tt.controls, 100, rates)
			assert.False(t, reset)
			tt.check(t, s)
		})
	}
}

func TestApplyReset(t *testing.T) {
	s := transform.State{
		RotationX:   12,
		RotationY:   -3,
		OrbitX:      45,
		OrbitY:      90,
		Translation: mgl32.Vec3{1, 2, 3},
		Scale:       4,
	}

	c := held(input.MoveUp)
	c.Released = c.Released.Add(input.Reset)

	assert.True(t, s.Apply(c, 16, transform.DefaultRates()))
	assert.Equal(t, transform.Default(), s)
}

func TestApplyIgnoresBadElapsedTime(t *testing.T) {
	for _, elapsed := range []float32{-10, math32.NaN(), math32.Inf(1)} {
		s := transform.Default()
		s.Apply(held(input.ScaleUp, input.RotateLeft), elapsed, transform.DefaultRates())
		assert.Equal(t, transform.Default(), s)
		assert.True(t, s.Finite())
	}
}

func TestApplyWrapsAngles(t *testing.T) {
	s := transform.Default()
	s.Apply(held(input.RotateLeft, input.OrbitXNeg), 1000, transform.DefaultRates())

	assert.InDelta(t, 140, s.RotationX, 1e-3)
	assert.InDelta(t, -140, s.OrbitX, 1e-3)
}

func TestWorld(t *testing.T) {
	t.Run("default is identity", func(t *testing.T) {
		assert.True(t, transform.Default().World().ApproxEqual(mgl32.Ident4()))
	})

	t.Run("scale applies before translation", func(t *testing.T) {
		s := transform.State{Scale: 2, Translation: mgl32.Vec3{1, 0, 0}}
		p := s.World().Mul4x1(mgl32.Vec4{1, 1, 0, 1}).Vec3()
		assertVec3(t, mgl32.Vec3{3, 2, 0}, p)
	})

	t.Run("rotation spins in place, orbit swings around the origin", func(t *testing.T) {
		rotated := transform.State{Scale: 1, RotationY: 90, Translation: mgl32.Vec3{1, 0, 0}}
		assertVec3(t, mgl32.Vec3{1, 0, 0}, rotated.World().Mul4x1(mgl32.Vec4{0, 0, 0, 1}).Vec3())

		orbited := transform.State{Scale: 1, OrbitY: 90, Translation: mgl32.Vec3{1, 0, 0}}
		assertVec3(t, mgl32.Vec3{0, 0, -1}, orbited.World().Mul4x1(mgl32.Vec4{0, 0, 0, 1}).Vec3())
	})

	t.Run("rotation about X happens before rotation about Y", func(t *testing.T) {
		s := transform.State{Scale: 1, RotationX: 90, RotationY: 90}
		// (0,1,0) -> X: (0,0,1) -> Y: (1,0,0)
		p := s.World().Mul4x1(mgl32.Vec4{0, 1, 0, 1}).Vec3()
		assertVec3(t, mgl32.Vec3{1, 0, 0}, p)
	})
}
