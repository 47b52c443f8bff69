package controls

// Frame is the input gathered during one tick. Held keys carry over between
// ticks; everything else is cleared by Begin.
type Frame struct {
	held    [numActions]bool
	pressed [numActions]bool

	MouseDX, MouseDY float32 // screen space, +Y down
	Scroll           float32 // +Y away from the user
	Digits           []int   // number keys pressed this tick, in order

	Resized       bool
	Width, Height int

	Quit bool
}

// Begin starts a new tick.
func (f *Frame) Begin() {
	f.pressed = [numActions]bool{}
	f.MouseDX, f.MouseDY = 0, 0
	f.Scroll = 0
	f.Digits = f.Digits[:0]
	f.Resized = false
	f.Quit = false
}

// Press records a key going down. Auto-repeat events keep the key held but
// never count as a new press.
func (f *Frame) Press(a Action, repeat bool) {
	if a < 0 || a >= numActions {
		return
	}
	if !repeat && !f.held[a] {
		f.pressed[a] = true
	}
	f.held[a] = true
}

// Release records a key going up.
func (f *Frame) Release(a Action) {
	if a < 0 || a >= numActions {
		return
	}
	f.held[a] = false
}

// ReleaseAll drops every held key, e.g. when the window loses focus.
func (f *Frame) ReleaseAll() {
	f.held = [numActions]bool{}
}

// Held reports whether the action's key is down.
func (f *Frame) Held(a Action) bool {
	return a >= 0 && a < numActions && f.held[a]
}

// JustPressed reports whether the action's key went down this tick.
func (f *Frame) JustPressed(a Action) bool {
	return a >= 0 && a < numActions && f.pressed[a]
}

// AddMouse accumulates relative mouse motion.
func (f *Frame) AddMouse(dx, dy float32) {
	f.MouseDX += dx
	f.MouseDY += dy
}

// AddScroll accumulates wheel motion.
func (f *Frame) AddScroll(dy float32) {
	f.Scroll += dy
}

// PressDigit records a number key.
func (f *Frame) PressDigit(d int) {
	f.Digits = append(f.Digits, d)
}

// Resize records the latest drawable size.
func (f *Frame) Resize(w, h int) {
	f.Resized = true
	f.Width, f.Height = w, h
}
