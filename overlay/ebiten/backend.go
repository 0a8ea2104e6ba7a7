// Package ebiten connects the overlay to an ebiten game through the Dear ImGui
// ebiten backend.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
)

// Backend wraps the ebiten Dear ImGui backend.
type Backend struct {
	*ebitenbackend.EbitenBackend
}

// New creates the ImGui context and its ebiten window settings. ImGui's ini
// file is disabled so window layout is not persisted.
func New(title string, width, height int) *Backend {
	b := ebitenbackend.NewEbitenBackend()
	b.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")
	return &Backend{EbitenBackend: b}
}

// Frame runs fn between BeginFrame and EndFrame.
func (b *Backend) Frame(fn func()) {
	b.BeginFrame()
	defer b.EndFrame()
	fn()
}

// DrawOver draws the finished ImGui frame on top of screen.
func (b *Backend) DrawOver(screen *ebiten.Image) {
	b.Draw(screen)
}
