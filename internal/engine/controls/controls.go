// Package controls turns raw key and mouse events into per-tick input state.
// It has no platform dependency; the input package feeds it from SDL.
package controls

import (
	"errors"
	"fmt"
	"sort"

	"github.com/Faultbox/cubeman/internal/config"
)

// Action is something a key can be bound to.
type Action int

const (
	Forward Action = iota
	Backward
	Left
	Right
	Up
	Down
	CaptureMouse
	Screenshot
	Quit

	numActions
)

var actionNames = [numActions]string{
	Forward:      "forward",
	Backward:     "backward",
	Left:         "left",
	Right:        "right",
	Up:           "up",
	Down:         "down",
	CaptureMouse: "capture_mouse",
	Screenshot:   "screenshot",
	Quit:         "quit",
}

func (a Action) String() string {
	if a < 0 || a >= numActions {
		return fmt.Sprintf("Action(%d)", int(a))
	}
	return actionNames[a]
}

// Key is a platform scancode. Zero means unknown.
type Key uint32

var (
	// ErrUnknownKey is returned when a binding names a key the platform
	// does not recognise.
	ErrUnknownKey = errors.New("unknown key name")
	// ErrDuplicateKey is returned when two actions share a key.
	ErrDuplicateKey = errors.New("key bound twice")
)

// Keymap resolves keys to actions.
type Keymap map[Key]Action

// NewKeymap builds a keymap from key names. resolve maps a name to a key and
// returns 0 for unknown names. Empty names leave the action unbound.
func NewKeymap(bindings map[Action]string, resolve func(name string) Key) (Keymap, error) {
	// Sorted so errors are deterministic.
	actions := make([]Action, 0, len(bindings))
	for a := range bindings {
		actions = append(actions, a)
	}
	sort.Slice(actions, func(i, j int) bool { return actions[i] < actions[j] })

	km := make(Keymap, len(bindings))
	for _, a := range actions {
		name := bindings[a]
		if name == "" {
			continue
		}
		k := resolve(name)
		if k == 0 {
			return nil, fmt.Errorf("%w: %q for %s", ErrUnknownKey, name, a)
		}
		if prev, ok := km[k]; ok {
			return nil, fmt.Errorf("%w: %q for %s and %s", ErrDuplicateKey, name, prev, a)
		}
		km[k] = a
	}
	return km, nil
}

// Bindings extracts the key names from config.
func Bindings(c config.ControlsConfig) map[Action]string {
	return map[Action]string{
		Forward:      c.Forward,
		Backward:     c.Backward,
		Left:         c.Left,
		Right:        c.Right,
		Up:           c.Up,
		Down:         c.Down,
		CaptureMouse: c.CaptureMouse,
		Screenshot:   c.Screenshot,
		Quit:         c.Quit,
	}
}
