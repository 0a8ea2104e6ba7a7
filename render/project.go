// Package render projects the vertex buffer to screen space and draws it as
// vertex-colored triangles with ebiten.
package render

import (
	"image/color"
	"sort"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/vertices/mesh"
)

// minClipW is the smallest clip-space w a vertex may have and still be drawn.
const minClipW = 1e-5

// ScreenVertex is a projected vertex in pixels, origin top-left, y down.
type ScreenVertex struct {
	X, Y  float32
	Color color.RGBA
}

// Triangle2D is a projected triangle and its mean normalized device depth.
type Triangle2D struct {
	Vertices [3]ScreenVertex
	Depth    float32
}

// Project transforms every complete triangle of buf by mvp and maps it onto a
// width x height viewport. See AppendProjected.
func Project(buf *mesh.Buffer, mvp mgl32.Mat4, width, height int) []Triangle2D {
	return AppendProjected(nil, buf, mvp, width, height)
}

// AppendProjected appends the projected triangles of buf to dst, farthest
// first. Triangles with a vertex at or behind the eye plane are skipped. Both
// windings are kept.
func AppendProjected(dst []Triangle2D, buf *mesh.Buffer, mvp mgl32.Mat4, width, height int) []Triangle2D {
	start := len(dst)
	w := float32(width)
	h := float32(height)

	for i := 0; i < buf.Triangles(); i++ {
		var tri Triangle2D
		visible := true

		for j := 0; j < 3; j++ {
			v := buf.Vertex(3*i + j)
			clip := mvp.Mul4x1(v.Position.Vec4(1))
			if clip.W() <= minClipW {
				visible = false
				break
			}

			ndc := clip.Vec3().Mul(1 / clip.W())
			tri.Vertices[j] = ScreenVertex{
				X:     (ndc.X() + 1) * 0.5 * w,
				Y:     (1 - ndc.Y()) * 0.5 * h,
				Color: v.Color,
			}
			tri.Depth += ndc.Z() / 3
		}

		if visible {
			dst = append(dst, tri)
		}
	}

	projected := dst[start:]
	sort.SliceStable(projected, func(a, b int) bool {
		return projected[a].Depth > projected[b].Depth
	})
	return dst
}
