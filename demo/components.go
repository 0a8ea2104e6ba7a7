package demo

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/vertices/input"
	"github.com/plus3/vertices/mesh"
	"github.com/plus3/vertices/transform"
)

// Scene holds the buffer that is drawn every frame.
type Scene struct {
	Buffer *mesh.Buffer
}

// Viewport is the current drawable size in pixels.
type Viewport struct {
	Width  int
	Height int
}

// Settings are the control parameters fixed at startup.
type Settings struct {
	Rates  transform.Rates
	Keymap *input.Keymap
}

// World is the world matrix composed from the transform each frame.
type World struct {
	Matrix mgl32.Mat4
}

// ExitRequest is set when the user asks to quit.
type ExitRequest struct {
	Requested bool
}

// HelpLines are the console lines shown at startup.
var HelpLines = []string{
	"Translate",
	"w: y+ s:y- a:x- d:x+",
	"Rotate",
	"up down left right",
	"+:scale up",
	"-:scale down",
	"r reset the triangle",
	"3D Sword",
}
