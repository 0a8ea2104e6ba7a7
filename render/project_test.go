package render_test

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/vertices/camera"
	"github.com/plus3/vertices/mesh"
	"github.com/plus3/vertices/render"
	"github.com/plus3/vertices/transform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectDefaultScene(t *testing.T) {
	buf := mesh.NewSwordBuffer()
	cam := camera.Default(800, 480)
	mvp := cam.ViewProjection().Mul4(transform.Default().World())

	tris := render.Project(buf, mvp, 800, 480)
	require.Len(t, tris, buf.Triangles())

	minY, maxY := float32(math.MaxFloat32), float32(-math.MaxFloat32)
	var top render.ScreenVertex
	for _, tri := range tris {
		for _, v := range tri.Vertices {
			assert.True(t, v.X > 0 && v.X < 800, "x %f off screen", v.X)
			if v.Y < minY {
				minY = v.Y
				top = v
			}
			if v.Y > maxY {
				maxY = v.Y
			}
		}
	}
	assert.Equal(t, mesh.Silver, top.Color, "blade tip must be the topmost vertex")
	assert.Less(t, minY, maxY)
}

func TestProjectViewportMapping(t *testing.T) {
	buf, err := mesh.NewBuffer([]mesh.Vertex{
		mesh.V(-1, -1, 0, mesh.Gold),
		mesh.V(1, -1, 0, mesh.Gold),
		mesh.V(0, 1, 0, mesh.Gold),
	})
	require.NoError(t, err)

	tris := render.Project(buf, mgl32.Ident4(), 200, 100)
	require.Len(t, tris, 1)

	v := tris[0].Vertices
	assert.Equal(t, render.ScreenVertex{X: 0, Y: 100, Color: mesh.Gold}, v[0])
	assert.Equal(t, render.ScreenVertex{X: 200, Y: 100, Color: mesh.Gold}, v[1])
	assert.Equal(t, render.ScreenVertex{X: 100, Y: 0, Color: mesh.Gold}, v[2])
}

func TestProjectDropsTrianglesBehindTheEye(t *testing.T) {
	buf := mesh.NewSwordBuffer()
	cam := camera.Default(800, 480)

	behind := transform.State{Scale: 1, Translation: mgl32.Vec3{0, 0, 20}}
	mvp := cam.ViewProjection().Mul4(behind.World())

	assert.Empty(t, render.Project(buf, mvp, 800, 480))
}

func TestProjectOrdersFarthestFirst(t *testing.T) {
	buf, err := mesh.NewBuffer([]mesh.Vertex{
		mesh.V(-1, -1, -0.5, mesh.Black),
		mesh.V(1, -1, -0.5, mesh.Black),
		mesh.V(0, 1, -0.5, mesh.Black),
		mesh.V(-1, -1, 0.5, mesh.Pink),
		mesh.V(1, -1, 0.5, mesh.Pink),
		mesh.V(0, 1, 0.5, mesh.Pink),
	})
	require.NoError(t, err)

	tris := render.Project(buf, mgl32.Ident4(), 10, 10)
	require.Len(t, tris, 2)
	assert.Equal(t, mesh.Pink, tris[0].Vertices[0].Color)
	assert.Greater(t, tris[0].Depth, tris[1].Depth)
}

func TestAppendProjectedKeepsPrefix(t *testing.T) {
	buf := mesh.NewSwordBuffer()
	cam := camera.Default(800, 480)
	mvp := cam.ViewProjection()

	prefix := []render.Triangle2D{{Depth: -42}}
	out := render.AppendProjected(prefix, buf, mvp, 800, 480)

	require.Len(t, out, 1+buf.Triangles())
	assert.Equal(t, float32(-42), out[0].Depth)
}
