package demo

import (
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/vertices/camera"
	"github.com/plus3/vertices/frame"
	"github.com/plus3/vertices/input"
	"github.com/plus3/vertices/overlay"
	"github.com/plus3/vertices/render"
	"github.com/plus3/vertices/transform"
)

// InputSystem snapshots the controls for the frame. While the overlay has
// keyboard focus only the exit action gets through.
type InputSystem struct {
	Source input.Source

	Settings frame.Resource[Settings]
	Controls frame.Resource[input.Controls]
	Capture  frame.Resource[overlay.InputCapture]
	Exit     frame.Resource[ExitRequest]
}

func (s *InputSystem) Execute(f *frame.UpdateFrame) {
	controls := input.Poll(s.Source, s.Settings.Get().Keymap)

	if capture := s.Capture.Get(); capture != nil && capture.WantCaptureKeyboard {
		var filtered input.Controls
		if controls.ExitRequested() {
			filtered.Held = filtered.Held.Add(input.Exit)
		}
		controls = filtered
	}

	*s.Controls.Get() = controls
	if controls.ExitRequested() {
		s.Exit.Get().Requested = true
	}
}

// TransformSystem advances the transform from the controls and composes the
// world matrix.
type TransformSystem struct {
	Logger *slog.Logger

	Settings frame.Resource[Settings]
	Controls frame.Resource[input.Controls]
	State    frame.Resource[transform.State]
	World    frame.Resource[World]
	Console  frame.Resource[overlay.Console]
}

func (s *TransformSystem) Execute(f *frame.UpdateFrame) {
	state := s.State.Get()

	if state.Apply(*s.Controls.Get(), f.ElapsedMillis(), s.Settings.Get().Rates) {
		if s.Logger != nil {
			s.Logger.Info("world transform reset")
		}
		if console := s.Console.Get(); console != nil {
			console.Write("reset")
		}
	}

	s.World.Get().Matrix = state.World()
}

// CameraSystem keeps the projection aspect ratio in step with the viewport.
type CameraSystem struct {
	Viewport frame.Resource[Viewport]
	Camera   frame.Resource[camera.Camera]
}

func (s *CameraSystem) Execute(f *frame.UpdateFrame) {
	vp := s.Viewport.Get()
	s.Camera.Get().SetViewport(vp.Width, vp.Height)
}

// MetricsSystem records frame times. With no Timer it records the frame's
// DeltaTime.
type MetricsSystem struct {
	Timer *overlay.FrameTimer

	History frame.Resource[overlay.FrameHistory]
}

func (s *MetricsSystem) Execute(f *frame.UpdateFrame) {
	delta := float32(f.DeltaTime)
	if s.Timer != nil {
		delta = s.Timer.Delta()
	}
	s.History.Get().Record(delta)
}

// RenderSystem draws the scene to the screen set with SetScreen.
type RenderSystem struct {
	Renderer *render.Renderer

	Scene  frame.Resource[Scene]
	Camera frame.Resource[camera.Camera]
	World  frame.Resource[World]

	screen *ebiten.Image
	drawn  int
}

// SetScreen sets the target image for the next Execute.
func (s *RenderSystem) SetScreen(screen *ebiten.Image) {
	s.screen = screen
}

// Drawn returns the number of triangles submitted by the last draw.
func (s *RenderSystem) Drawn() int {
	return s.drawn
}

func (s *RenderSystem) Execute(f *frame.UpdateFrame) {
	if s.screen == nil || s.Renderer == nil {
		return
	}
	s.drawn = s.Renderer.Draw(s.screen, s.Scene.Get().Buffer, s.MVP())
}

// MVP returns projection * view * world for the current frame.
func (s *RenderSystem) MVP() mgl32.Mat4 {
	return s.Camera.Get().ViewProjection().Mul4(s.World.Get().Matrix)
}
