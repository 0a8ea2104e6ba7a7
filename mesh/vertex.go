// Package mesh holds the hand-authored sword geometry and the immutable
// triangle-list buffer it is drawn from.
package mesh

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
)

// Vertex is a position with a per-vertex color.
type Vertex struct {
	Position mgl32.Vec3
	Color    color.RGBA
}

// V builds a Vertex from coordinates and a color.
func V(x, y, z float32, c color.RGBA) Vertex {
	return Vertex{Position: mgl32.Vec3{x, y, z}, Color: c}
}

// Framework palette entries used by the sword.
var (
	Pink        = color.RGBA{255, 192, 203, 255}
	Black       = color.RGBA{0, 0, 0, 255}
	FloralWhite = color.RGBA{255, 250, 240, 255}
	Gold        = color.RGBA{255, 215, 0, 255}
	Silver      = color.RGBA{192, 192, 192, 255}
	SaddleBrown = color.RGBA{139, 69, 19, 255}
)
