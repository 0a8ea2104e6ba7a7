package camera_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/vertices/camera"
	"github.com/stretchr/testify/assert"
)

func TestDefault(t *testing.T) {
	c := camera.Default(800, 400)

	assert.Equal(t, mgl32.Vec3{0, -4, 10}, c.Eye)
	assert.Equal(t, mgl32.Vec3{0, 1, 0}, c.Target)
	assert.Equal(t, float32(45), c.FovYDeg)
	assert.Equal(t, float32(2), c.Aspect)
}

func TestSetViewportIgnoresEmptySizes(t *testing.T) {
	c := camera.Default(640, 480)
	c.SetViewport(0, 480)
	c.SetViewport(640, -1)
	assert.InDelta(t, 4.0/3.0, c.Aspect, 1e-6)
}

func TestViewMovesTargetOntoAxis(t *testing.T) {
	c := camera.Default(640, 480)

	target := c.View().Mul4x1(c.Target.Vec4(1)).Vec3()
	assert.InDelta(t, 0, target.X(), 1e-5)
	assert.InDelta(t, 0, target.Y(), 1e-5)
	assert.Less(t, target.Z(), float32(0), "target must be in front of the camera")
}

func TestViewProjectionDepthRange(t *testing.T) {
	c := camera.Default(640, 480)

	clip := c.ViewProjection().Mul4x1(c.Target.Vec4(1))
	ndcZ := clip.Z() / clip.W()
	assert.Greater(t, clip.W(), float32(0))
	assert.True(t, ndcZ > -1 && ndcZ < 1, "target depth %f outside the frustum", ndcZ)
}
