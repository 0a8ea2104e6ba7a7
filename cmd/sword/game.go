package main

import (
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/vertices/demo"
	overlayebiten "github.com/plus3/vertices/overlay/ebiten"
)

// Game implements ebiten.Game on top of the demo schedulers.
type Game struct {
	app     *demo.App
	backend *overlayebiten.Backend
	logger  *slog.Logger
}

func (g *Game) Update() error {
	dt := 1.0 / float64(ebiten.TPS())

	if g.backend != nil {
		g.backend.Frame(func() { g.app.Step(dt) })
	} else {
		g.app.Step(dt)
	}

	if g.app.ExitRequested() {
		g.logger.Info("exit requested")
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.app.DrawTo(screen)

	if g.backend != nil {
		g.backend.DrawOver(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.backend != nil {
		g.backend.Layout(outsideWidth, outsideHeight)
	}
	g.app.SetViewport(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
