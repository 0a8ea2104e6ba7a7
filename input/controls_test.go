package input_test

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/vertices/input"
	"github.com/stretchr/testify/assert"
)

type fakeSource struct {
	pressed  map[ebiten.Key]bool
	released map[ebiten.Key]bool
	back     bool
}

func (f *fakeSource) IsKeyPressed(key ebiten.Key) bool      { return f.pressed[key] }
func (f *fakeSource) IsKeyJustReleased(key ebiten.Key) bool { return f.released[key] }
func (f *fakeSource) BackPressed() bool                     { return f.back }

func TestPoll(t *testing.T) {
	keymap := input.DefaultKeymap()

	t.Run("nothing pressed", func(t *testing.T) {
		c := input.Poll(&fakeSource{}, keymap)
		assert.True(t, c.Held.Empty())
		assert.True(t, c.Released.Empty())
		assert.False(t, c.ExitRequested())
	})

	t.Run("held and released keys map to actions", func(t *testing.T) {
		src := &fakeSource{
			pressed:  map[ebiten.Key]bool{ebiten.KeyW: true, ebiten.KeyNumpadAdd: true},
			released: map[ebiten.Key]bool{ebiten.KeyR: true},
		}
		c := input.Poll(src, keymap)

		assert.True(t, c.IsHeld(input.MoveUp))
		assert.True(t, c.IsHeld(input.ScaleUp))
		assert.False(t, c.IsHeld(input.MoveDown))
		assert.True(t, c.IsReleased(input.Reset))
		assert.False(t, c.IsHeld(input.Reset))
	})

	t.Run("escape or gamepad back requests exit", func(t *testing.T) {
		c := input.Poll(&fakeSource{pressed: map[ebiten.Key]bool{ebiten.KeyEscape: true}}, keymap)
		assert.True(t, c.ExitRequested())

		c = input.Poll(&fakeSource{back: true}, keymap)
		assert.True(t, c.ExitRequested())
	})
}

func TestActionSet(t *testing.T) {
	var s input.ActionSet
	s = s.Add(input.Exit).Add(input.ScaleUp)

	assert.True(t, s.Has(input.Exit))
	assert.True(t, s.Has(input.ScaleUp))
	assert.False(t, s.Has(input.Reset))
	assert.False(t, s.Empty())
}
