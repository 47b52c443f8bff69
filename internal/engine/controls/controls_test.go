package controls

import (
	"errors"
	"testing"

	"github.com/Faultbox/cubeman/internal/config"
)

func fakeResolve(names map[string]Key) func(string) Key {
	return func(name string) Key { return names[name] }
}

func TestPressIsEdgeTriggered(t *testing.T) {
	var f Frame

	f.Begin()
	f.Press(CaptureMouse, false)
	if !f.JustPressed(CaptureMouse) || !f.Held(CaptureMouse) {
		t.Fatal("expected press on first tick")
	}

	// Still held next tick, but not a new press.
	f.Begin()
	if f.JustPressed(CaptureMouse) {
		t.Error("press carried into the next tick")
	}
	if !f.Held(CaptureMouse) {
		t.Error("held state lost across ticks")
	}

	// Auto-repeat while held is not a press.
	f.Press(CaptureMouse, true)
	if f.JustPressed(CaptureMouse) {
		t.Error("repeat counted as a press")
	}

	// A second down event without a release is not a press either.
	f.Press(CaptureMouse, false)
	if f.JustPressed(CaptureMouse) {
		t.Error("down while held counted as a press")
	}

	f.Release(CaptureMouse)
	f.Begin()
	f.Press(CaptureMouse, false)
	if !f.JustPressed(CaptureMouse) {
		t.Error("expected a new press after release")
	}
}

func TestPressAndReleaseSameTick(t *testing.T) {
	var f Frame
	f.Begin()
	f.Press(Screenshot, false)
	f.Release(Screenshot)

	if !f.JustPressed(Screenshot) {
		t.Error("a tap within one tick must still register")
	}
	if f.Held(Screenshot) {
		t.Error("released key reported held")
	}
}

func TestBeginClearsPerTickState(t *testing.T) {
	var f Frame
	f.Begin()
	f.Press(Forward, false)
	f.AddMouse(3, -2)
	f.AddMouse(1, 1)
	f.AddScroll(1)
	f.PressDigit(2)
	f.Resize(640, 480)
	f.Quit = true

	if f.MouseDX != 4 || f.MouseDY != -1 {
		t.Errorf("mouse = (%f, %f), want (4, -1)", f.MouseDX, f.MouseDY)
	}

	f.Begin()
	if f.MouseDX != 0 || f.MouseDY != 0 || f.Scroll != 0 {
		t.Error("deltas not cleared")
	}
	if len(f.Digits) != 0 || f.Resized || f.Quit {
		t.Error("events not cleared")
	}
	if !f.Held(Forward) {
		t.Error("held key cleared by Begin")
	}
}

func TestReleaseAll(t *testing.T) {
	var f Frame
	f.Press(Left, false)
	f.Press(Up, false)
	f.ReleaseAll()
	if f.Held(Left) || f.Held(Up) {
		t.Error("keys still held after ReleaseAll")
	}
}

func TestOutOfRangeAction(t *testing.T) {
	var f Frame
	f.Press(Action(-1), false)
	f.Press(numActions, false)
	if f.Held(numActions) || f.JustPressed(Action(-1)) {
		t.Error("out-of-range action must be ignored")
	}
	if Action(42).String() != "Action(42)" {
		t.Errorf("unexpected name %q", Action(42).String())
	}
}

func TestNewKeymap(t *testing.T) {
	resolve := fakeResolve(map[string]Key{"W": 26, "S": 22, "Escape": 41})

	km, err := NewKeymap(map[Action]string{
		Forward:  "W",
		Backward: "S",
		Quit:     "Escape",
		Up:       "",
	}, resolve)
	if err != nil {
		t.Fatalf("NewKeymap: %v", err)
	}
	if len(km) != 3 {
		t.Errorf("expected 3 bindings, got %d", len(km))
	}
	if km[26] != Forward || km[41] != Quit {
		t.Errorf("wrong bindings: %v", km)
	}
}

func TestNewKeymapErrors(t *testing.T) {
	resolve := fakeResolve(map[string]Key{"W": 26})

	_, err := NewKeymap(map[Action]string{Forward: "Nope"}, resolve)
	if !errors.Is(err, ErrUnknownKey) {
		t.Errorf("expected ErrUnknownKey, got %v", err)
	}

	_, err = NewKeymap(map[Action]string{Forward: "W", Up: "W"}, resolve)
	if !errors.Is(err, ErrDuplicateKey) {
		t.Errorf("expected ErrDuplicateKey, got %v", err)
	}
}

func TestBindingsCoverEveryAction(t *testing.T) {
	b := Bindings(config.Default().Controls)
	for a := Action(0); a < numActions; a++ {
		if b[a] == "" {
			t.Errorf("no default key for %s", a)
		}
	}
}
