// Package demo wires the sword scene, its controls and its overlay into update
// and draw schedulers that share one set of resources.
package demo

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/vertices/camera"
	"github.com/plus3/vertices/config"
	"github.com/plus3/vertices/frame"
	"github.com/plus3/vertices/input"
	"github.com/plus3/vertices/mesh"
	"github.com/plus3/vertices/overlay"
	"github.com/plus3/vertices/render"
	"github.com/plus3/vertices/transform"
)

type Options struct {
	Config *config.Config
	Source input.Source
	Logger *slog.Logger

	// Overlay registers the ImGui overlay system. It requires a current ImGui
	// context, so it must stay false when no backend was created.
	Overlay bool
	// Renderer draws the scene. Nil skips drawing.
	Renderer *render.Renderer
	// Timer measures frame times. Nil uses each frame's DeltaTime.
	Timer *overlay.FrameTimer
}

// App is the running demo.
type App struct {
	Resources *frame.Resources
	Update    *frame.Scheduler
	Draw      *frame.Scheduler

	render *RenderSystem
	state  *frame.Resource[transform.State]
	exit   *frame.Resource[ExitRequest]
	logger *slog.Logger
}

func New(opts Options) (*App, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if opts.Source == nil {
		return nil, fmt.Errorf("demo: no input source")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	keymap, err := cfg.Keymap()
	if err != nil {
		return nil, fmt.Errorf("demo: keymap: %w", err)
	}

	resources := frame.NewResources()
	frame.Provide(resources, Settings{Rates: cfg.Rates, Keymap: keymap})
	frame.Provide(resources, Scene{Buffer: mesh.NewSwordBuffer()})
	frame.Provide(resources, Viewport{Width: cfg.Window.Width, Height: cfg.Window.Height})
	frame.Provide(resources, cfg.NewCamera(cfg.Window.Width, cfg.Window.Height))
	frame.Provide(resources, World{Matrix: mgl32.Ident4()})
	frame.Provide[input.Controls](resources)
	frame.Provide[overlay.InputCapture](resources)
	frame.Provide(resources, overlay.NewFrameHistory(overlay.DefaultHistoryFrames))
	frame.Provide(resources, overlay.NewConsole(overlay.DefaultConsoleLines, HelpLines...))

	app := &App{
		Resources: resources,
		Update:    frame.NewScheduler(resources),
		Draw:      frame.NewScheduler(resources),
		render:    &RenderSystem{Renderer: opts.Renderer},
		state:     frame.Provide(resources, transform.Default()),
		exit:      frame.Provide[ExitRequest](resources),
		logger:    logger,
	}

	app.Update.Register(&InputSystem{Source: opts.Source})
	app.Update.Register(&TransformSystem{Logger: logger})
	app.Update.Register(&CameraSystem{})
	app.Update.Register(&MetricsSystem{Timer: opts.Timer})

	if opts.Overlay {
		items := frame.Provide[overlay.Items](resources).Get()
		items.Add(overlay.ConsoleWindow(frame.Lookup[overlay.Console](resources)))
		items.Add(overlay.FPSWindow(frame.Lookup[overlay.FrameHistory](resources), func() int {
			return frame.Lookup[Viewport](resources).Width
		}))
		items.Add(TransformWindow(app.state.Get(), app.Update))
		app.Update.Register(&overlay.System{})
	}

	app.Draw.Register(app.render)

	return app, nil
}

// Step runs one update with dt seconds of elapsed time.
func (a *App) Step(dt float64) {
	a.Update.Once(dt)
}

// ExitRequested reports whether the exit action has been seen.
func (a *App) ExitRequested() bool {
	return a.exit.Get().Requested
}

// State returns the current transform.
func (a *App) State() transform.State {
	return *a.state.Get()
}

// Camera returns the current camera.
func (a *App) Camera() camera.Camera {
	return *frame.Lookup[camera.Camera](a.Resources)
}

// SetViewport records a new drawable size; the camera picks it up on the next Step.
func (a *App) SetViewport(width, height int) {
	vp := frame.Lookup[Viewport](a.Resources)
	if vp.Width != width || vp.Height != height {
		a.logger.Debug("viewport changed", "width", width, "height", height)
	}
	vp.Width = width
	vp.Height = height
}

// DrawTo renders the scene to screen and returns the number of triangles drawn.
func (a *App) DrawTo(screen *ebiten.Image) int {
	a.render.SetScreen(screen)
	a.Draw.Once(0)
	a.render.SetScreen(nil)
	return a.render.Drawn()
}

// MVP returns the matrix the scene is drawn with.
func (a *App) MVP() mgl32.Mat4 {
	return a.render.MVP()
}
