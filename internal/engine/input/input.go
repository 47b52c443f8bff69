// Package input handles SDL2 input events.
package input

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/cubeman/internal/engine/controls"
	"github.com/Faultbox/cubeman/internal/logger"
)

// digitKeys maps the number row to digits.
var digitKeys = map[sdl.Scancode]int{
	sdl.SCANCODE_0: 0,
	sdl.SCANCODE_1: 1,
	sdl.SCANCODE_2: 2,
	sdl.SCANCODE_3: 3,
	sdl.SCANCODE_4: 4,
	sdl.SCANCODE_5: 5,
	sdl.SCANCODE_6: 6,
	sdl.SCANCODE_7: 7,
	sdl.SCANCODE_8: 8,
	sdl.SCANCODE_9: 9,
}

// Input polls SDL once per tick and fills a controls.Frame.
type Input struct {
	keymap controls.Keymap
	frame  controls.Frame
}

// New creates an input handler with keys bound by SDL scancode name.
func New(bindings map[controls.Action]string) (*Input, error) {
	km, err := controls.NewKeymap(bindings, resolveKey)
	if err != nil {
		return nil, fmt.Errorf("key bindings: %w", err)
	}
	return &Input{keymap: km}, nil
}

func resolveKey(name string) controls.Key {
	return controls.Key(sdl.GetScancodeFromName(name))
}

// Update drains the SDL event queue into a fresh tick. The returned frame is
// valid until the next Update.
func (i *Input) Update() *controls.Frame {
	f := &i.frame
	f.Begin()

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			f.Quit = true

		case *sdl.WindowEvent:
			switch e.Event {
			case sdl.WINDOWEVENT_SIZE_CHANGED:
				f.Resize(int(e.Data1), int(e.Data2))
			case sdl.WINDOWEVENT_FOCUS_LOST:
				f.ReleaseAll()
			}

		case *sdl.KeyboardEvent:
			i.handleKey(f, e)

		case *sdl.MouseMotionEvent:
			f.AddMouse(float32(e.XRel), float32(e.YRel))

		case *sdl.MouseWheelEvent:
			dy := float32(e.Y)
			if e.Direction == sdl.MOUSEWHEEL_FLIPPED {
				dy = -dy
			}
			f.AddScroll(dy)
		}
	}

	return f
}

func (i *Input) handleKey(f *controls.Frame, e *sdl.KeyboardEvent) {
	code := e.Keysym.Scancode
	action, bound := i.keymap[controls.Key(code)]

	if e.Type == sdl.KEYUP {
		if bound {
			f.Release(action)
		}
		return
	}

	repeat := e.Repeat != 0
	if bound {
		f.Press(action, repeat)
		return
	}
	if d, ok := digitKeys[code]; ok && !repeat {
		f.PressDigit(d)
		return
	}
	logger.Debug("unbound key", zap.String("key", sdl.GetScancodeName(code)))
}
