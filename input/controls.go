package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Controls is one frame's snapshot of the actions that are held down and the
// actions whose key was released this frame.
type Controls struct {
	Held     ActionSet
	Released ActionSet
}

// IsHeld reports whether a is held this frame.
func (c Controls) IsHeld(a Action) bool {
	return c.Held.Has(a)
}

// IsReleased reports whether a's key went up this frame.
func (c Controls) IsReleased(a Action) bool {
	return c.Released.Has(a)
}

// ExitRequested reports whether the exit action is held.
func (c Controls) ExitRequested() bool {
	return c.Held.Has(Exit)
}

// Source reports raw device state.
type Source interface {
	IsKeyPressed(key ebiten.Key) bool
	IsKeyJustReleased(key ebiten.Key) bool
	// BackPressed reports whether a gamepad Back button is down.
	BackPressed() bool
}

// Poll builds the Controls for the current frame.
func Poll(src Source, keymap *Keymap) Controls {
	var c Controls
	keymap.ForEach(func(key ebiten.Key, a Action) bool {
		if src.IsKeyPressed(key) {
			c.Held = c.Held.Add(a)
		}
		if src.IsKeyJustReleased(key) {
			c.Released = c.Released.Add(a)
		}
		return true
	})
	if src.BackPressed() {
		c.Held = c.Held.Add(Exit)
	}
	return c
}

// EbitenSource reads the keyboard and gamepads through ebiten. It must be used
// from the game's Update callback.
type EbitenSource struct {
	gamepads []ebiten.GamepadID
}

func (s *EbitenSource) IsKeyPressed(key ebiten.Key) bool {
	return ebiten.IsKeyPressed(key)
}

func (s *EbitenSource) IsKeyJustReleased(key ebiten.Key) bool {
	return inpututil.IsKeyJustReleased(key)
}

func (s *EbitenSource) BackPressed() bool {
	s.gamepads = ebiten.AppendGamepadIDs(s.gamepads[:0])
	for _, id := range s.gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		if ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonCenterLeft) {
			return true
		}
	}
	return false
}
