package input

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// ScriptedSource reports a fixed set of keys as held. Release, when set, makes
// those keys report a release on the next poll only. It drives headless runs.
type ScriptedSource struct {
	held    map[ebiten.Key]bool
	release map[ebiten.Key]bool
}

// NewScriptedSource holds every key bound to the given actions.
func NewScriptedSource(keymap *Keymap, actions ...Action) *ScriptedSource {
	s := &ScriptedSource{
		held:    make(map[ebiten.Key]bool),
		release: make(map[ebiten.Key]bool),
	}
	for _, a := range actions {
		for _, key := range keymap.Keys(a) {
			s.held[key] = true
		}
	}
	return s
}

// Release queues a one-shot release of the first key bound to a.
func (s *ScriptedSource) Release(keymap *Keymap, a Action) {
	if keys := keymap.Keys(a); len(keys) > 0 {
		s.release[keys[0]] = true
	}
}

func (s *ScriptedSource) IsKeyPressed(key ebiten.Key) bool {
	return s.held[key]
}

func (s *ScriptedSource) IsKeyJustReleased(key ebiten.Key) bool {
	if s.release[key] {
		delete(s.release, key)
		return true
	}
	return false
}

func (s *ScriptedSource) BackPressed() bool {
	return false
}
