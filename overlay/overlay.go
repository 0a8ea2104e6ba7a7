// Package overlay draws the on-screen console, frame statistics and other
// Dear ImGui windows on top of the scene.
package overlay

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/vertices/frame"
)

// Item holds a Dear ImGui render function that runs once per frame.
type Item struct {
	Name   string
	Render func()
}

// Items is the resource listing every window to draw.
type Items struct {
	list []Item
}

// Add appends an item. Items are drawn in insertion order.
func (i *Items) Add(item Item) {
	i.list = append(i.list, item)
}

// Len returns the number of items.
func (i *Items) Len() int {
	return len(i.list)
}

// InputCapture tracks whether Dear ImGui is consuming mouse or keyboard input.
type InputCapture struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// System refreshes InputCapture and defers every item's render function to the
// end of the frame, after the other systems have updated the state they show.
// It needs a current ImGui context.
type System struct {
	Items   frame.Resource[Items]
	Capture frame.Resource[InputCapture]
}

func (s *System) Execute(f *frame.UpdateFrame) {
	io := imgui.CurrentIO()
	capture := s.Capture.Get()
	capture.WantCaptureMouse = io.WantCaptureMouse()
	capture.WantCaptureKeyboard = io.WantCaptureKeyboard()

	items := s.Items.Get()
	if items == nil {
		return
	}
	for _, item := range items.list {
		f.Commands.Defer(item.Render)
	}
}
