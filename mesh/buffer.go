package mesh

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrEmptyBuffer is returned when a buffer is created without vertices.
var ErrEmptyBuffer = errors.New("mesh: empty vertex buffer")

// Buffer is an immutable triangle-list vertex buffer. Every accessor returns
// copies, so callers cannot modify the stored vertices.
type Buffer struct {
	vertices []Vertex
}

// NewBuffer copies vertices into a new buffer. Trailing vertices that do not
// complete a triangle are kept but never drawn.
func NewBuffer(vertices []Vertex) (*Buffer, error) {
	if len(vertices) == 0 {
		return nil, ErrEmptyBuffer
	}
	stored := make([]Vertex, len(vertices))
	copy(stored, vertices)
	return &Buffer{vertices: stored}, nil
}

// NewSwordBuffer returns a buffer holding Sword().
func NewSwordBuffer() *Buffer {
	b, err := NewBuffer(Sword())
	if err != nil {
		panic(err)
	}
	return b
}

// Len returns the vertex count.
func (b *Buffer) Len() int {
	return len(b.vertices)
}

// Vertex returns the i-th vertex.
func (b *Buffer) Vertex(i int) Vertex {
	return b.vertices[i]
}

// Vertices returns a copy of all vertices.
func (b *Buffer) Vertices() []Vertex {
	out := make([]Vertex, len(b.vertices))
	copy(out, b.vertices)
	return out
}

// Triangles returns the number of complete triangles in the list.
func (b *Buffer) Triangles() int {
	return len(b.vertices) / 3
}

// Triangle returns the vertices of the i-th triangle.
func (b *Buffer) Triangle(i int) ([3]Vertex, error) {
	if i < 0 || i >= b.Triangles() {
		return [3]Vertex{}, fmt.Errorf("mesh: triangle %d out of range [0,%d)", i, b.Triangles())
	}
	return [3]Vertex{b.vertices[3*i], b.vertices[3*i+1], b.vertices[3*i+2]}, nil
}

// Bounds returns the component-wise minimum and maximum vertex positions.
func (b *Buffer) Bounds() (min, max mgl32.Vec3) {
	min = b.vertices[0].Position
	max = min
	for _, v := range b.vertices[1:] {
		for axis := 0; axis < 3; axis++ {
			if v.Position[axis] < min[axis] {
				min[axis] = v.Position[axis]
			}
			if v.Position[axis] > max[axis] {
				max[axis] = v.Position[axis]
			}
		}
	}
	return min, max
}
