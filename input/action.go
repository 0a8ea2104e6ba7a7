// Package input maps keyboard and gamepad state to the demo's transform actions.
package input

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownAction is returned when an action name does not match any Action.
var ErrUnknownAction = errors.New("input: unknown action")

// Action is a named control of the demo.
type Action uint8

const (
	ScaleUp Action = iota
	ScaleDown
	RotateLeft
	RotateRight
	RotateUp
	RotateDown
	OrbitXPos
	OrbitXNeg
	OrbitYPos
	OrbitYNeg
	MoveRight
	MoveLeft
	MoveUp
	MoveDown
	Reset
	Exit

	actionCount
)

var actionNames = [actionCount]string{
	ScaleUp:     "scale_up",
	ScaleDown:   "scale_down",
	RotateLeft:  "rotate_left",
	RotateRight: "rotate_right",
	RotateUp:    "rotate_up",
	RotateDown:  "rotate_down",
	OrbitXPos:   "orbit_x_pos",
	OrbitXNeg:   "orbit_x_neg",
	OrbitYPos:   "orbit_y_pos",
	OrbitYNeg:   "orbit_y_neg",
	MoveRight:   "move_right",
	MoveLeft:    "move_left",
	MoveUp:      "move_up",
	MoveDown:    "move_down",
	Reset:       "reset",
	Exit:        "exit",
}

func (a Action) String() string {
	if a >= actionCount {
		return fmt.Sprintf("Action(%d)", a)
	}
	return actionNames[a]
}

// Actions returns every action in declaration order.
func Actions() []Action {
	out := make([]Action, actionCount)
	for i := range out {
		out[i] = Action(i)
	}
	return out
}

// ParseAction resolves a name such as "rotate_left". Matching ignores case.
func ParseAction(name string) (Action, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range actionNames {
		if n == name {
			return Action(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAction, name)
}

// ActionSet is a set of actions.
type ActionSet uint32

// Add returns the set with a included.
func (s ActionSet) Add(a Action) ActionSet {
	return s | 1<<a
}

// Has reports whether a is in the set.
func (s ActionSet) Has(a Action) bool {
	return s&(1<<a) != 0
}

// Empty reports whether the set holds no action.
func (s ActionSet) Empty() bool {
	return s == 0
}
