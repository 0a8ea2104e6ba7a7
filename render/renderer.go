package render

import (
	"image"
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/vertices/mesh"
)

// CornflowerBlue is the default clear color.
var CornflowerBlue = color.RGBA{100, 149, 237, 255}

// Renderer draws a vertex buffer with per-vertex colors and no lighting.
type Renderer struct {
	ClearColor color.Color
	AntiAlias  bool

	white     *ebiten.Image
	triangles []Triangle2D
	vertices  []ebiten.Vertex
	indices   []uint16
}

// NewRenderer creates a renderer that clears to clearColor.
func NewRenderer(clearColor color.Color) *Renderer {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)

	return &Renderer{
		ClearColor: clearColor,
		AntiAlias:  true,
		white:      img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
	}
}

// Draw clears screen and draws buf transformed by mvp, returning the number of
// triangles submitted.
func (r *Renderer) Draw(screen *ebiten.Image, buf *mesh.Buffer, mvp mgl32.Mat4) int {
	screen.Fill(r.ClearColor)

	bounds := screen.Bounds()
	r.triangles = AppendProjected(r.triangles[:0], buf, mvp, bounds.Dx(), bounds.Dy())
	if len(r.triangles) == 0 {
		return 0
	}

	r.vertices = r.vertices[:0]
	r.indices = r.indices[:0]
	for _, tri := range r.triangles {
		for _, v := range tri.Vertices {
			r.indices = append(r.indices, uint16(len(r.vertices)))
			r.vertices = append(r.vertices, ebiten.Vertex{
				DstX:   v.X + float32(bounds.Min.X),
				DstY:   v.Y + float32(bounds.Min.Y),
				SrcX:   1.5,
				SrcY:   1.5,
				ColorR: float32(v.Color.R) / 0xff,
				ColorG: float32(v.Color.G) / 0xff,
				ColorB: float32(v.Color.B) / 0xff,
				ColorA: float32(v.Color.A) / 0xff,
			})
		}
	}

	screen.DrawTriangles(r.vertices, r.indices, r.white, &ebiten.DrawTrianglesOptions{
		AntiAlias: r.AntiAlias,
	})
	return len(r.triangles)
}
