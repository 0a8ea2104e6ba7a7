package input

import (
	"errors"
	"fmt"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/kamstrup/intmap"
)

// ErrUnknownKey is returned when a key name is not an ebiten key name.
var ErrUnknownKey = errors.New("input: unknown key")

// Keymap binds keys to actions. A key triggers at most one action; an action may
// have several keys.
type Keymap struct {
	bindings *intmap.Map[ebiten.Key, Action]
}

// NewKeymap returns a keymap without bindings.
func NewKeymap() *Keymap {
	return &Keymap{bindings: intmap.New[ebiten.Key, Action](32)}
}

// DefaultKeymap returns the stock controls: +/- scale, arrows rotate,
// Q/E/T/G orbit, W/A/S/D translate, R resets and Escape exits.
func DefaultKeymap() *Keymap {
	k := NewKeymap()

	k.Bind(ebiten.KeyEqual, ScaleUp)
	k.Bind(ebiten.KeyNumpadAdd, ScaleUp)
	k.Bind(ebiten.KeyMinus, ScaleDown)
	k.Bind(ebiten.KeyNumpadSubtract, ScaleDown)

	k.Bind(ebiten.KeyArrowLeft, RotateLeft)
	k.Bind(ebiten.KeyArrowRight, RotateRight)
	k.Bind(ebiten.KeyArrowUp, RotateUp)
	k.Bind(ebiten.KeyArrowDown, RotateDown)

	k.Bind(ebiten.KeyQ, OrbitXPos)
	k.Bind(ebiten.KeyE, OrbitXNeg)
	k.Bind(ebiten.KeyT, OrbitYPos)
	k.Bind(ebiten.KeyG, OrbitYNeg)

	k.Bind(ebiten.KeyD, MoveRight)
	k.Bind(ebiten.KeyA, MoveLeft)
	k.Bind(ebiten.KeyW, MoveUp)
	k.Bind(ebiten.KeyS, MoveDown)

	k.Bind(ebiten.KeyR, Reset)
	k.Bind(ebiten.KeyEscape, Exit)

	return k
}

// Bind maps key to a, replacing any previous binding of key.
func (k *Keymap) Bind(key ebiten.Key, a Action) {
	k.bindings.Put(key, a)
}

// Unbind removes the binding of key.
func (k *Keymap) Unbind(key ebiten.Key) {
	k.bindings.Del(key)
}

// Action returns the action bound to key.
func (k *Keymap) Action(key ebiten.Key) (Action, bool) {
	return k.bindings.Get(key)
}

// Len returns the number of bound keys.
func (k *Keymap) Len() int {
	return k.bindings.Len()
}

// Keys returns the keys bound to a, in ascending key order.
func (k *Keymap) Keys(a Action) []ebiten.Key {
	var keys []ebiten.Key
	k.bindings.ForEach(func(key ebiten.Key, bound Action) bool {
		if bound == a {
			keys = append(keys, key)
		}
		return true
	})
	slices.Sort(keys)
	return keys
}

// ForEach calls fn for every binding until fn returns false.
func (k *Keymap) ForEach(fn func(key ebiten.Key, a Action) bool) {
	k.bindings.ForEach(fn)
}

// Rebind replaces the keys of each named action with the named keys. Actions
// that are not mentioned keep their bindings. Names are validated before any
// binding changes.
func (k *Keymap) Rebind(bindings map[string][]string) error {
	type rebinding struct {
		action Action
		keys   []ebiten.Key
	}

	var parsed []rebinding
	for actionName, keyNames := range bindings {
		a, err := ParseAction(actionName)
		if err != nil {
			return err
		}
		rb := rebinding{action: a}
		for _, name := range keyNames {
			var key ebiten.Key
			if err := key.UnmarshalText([]byte(name)); err != nil {
				return fmt.Errorf("%w: %q for %s", ErrUnknownKey, name, a)
			}
			rb.keys = append(rb.keys, key)
		}
		parsed = append(parsed, rb)
	}

	for _, rb := range parsed {
		for _, key := range k.Keys(rb.action) {
			k.Unbind(key)
		}
	}
	for _, rb := range parsed {
		for _, key := range rb.keys {
			k.Bind(key, rb.action)
		}
	}
	return nil
}
