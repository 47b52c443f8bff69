// Package viewer holds the per-session state of the cube viewer: the camera,
// the figure and its animator. Input mutates it only through Update, once
// per tick, before any matrix for that frame is built.
package viewer

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/cubeman/internal/config"
	"github.com/Faultbox/cubeman/internal/engine/animation"
	"github.com/Faultbox/cubeman/internal/engine/body"
	"github.com/Faultbox/cubeman/internal/engine/camera"
	"github.com/Faultbox/cubeman/internal/engine/controls"
	"github.com/Faultbox/cubeman/internal/engine/uniform"
	"github.com/Faultbox/cubeman/internal/logger"
	"github.com/Faultbox/cubeman/pkg/math"
)

// movementKeys binds held actions to camera movement.
var movementKeys = []struct {
	action controls.Action
	dir    camera.Movement
}{
	{controls.Forward, camera.Forward},
	{controls.Backward, camera.Backward},
	{controls.Left, camera.Left},
	{controls.Right, camera.Right},
	{controls.Up, camera.Up},
	{controls.Down, camera.Down},
}

// Options holds session settings that are not part of the camera itself.
type Options struct {
	Near, Far    float32
	CaptureMouse bool
}

// Requests are things Update asks the host to do.
type Requests struct {
	Quit       bool
	Screenshot bool
	// Capture is non-nil when mouse capture changed this tick.
	Capture *bool
}

// Session is the explicit context shared by input handling and drawing.
type Session struct {
	Camera   *camera.FlyCamera
	Animator *animation.Animator
	Body     *body.Body

	near, far     float32
	mouseCaptured bool
	// skipMouse drops the next tick's mouse motion. Set at start and on
	// capture so the cursor jump is not read as a look.
	skipMouse bool
}

// New creates a session from its parts.
func New(cam *camera.FlyCamera, anim *animation.Animator, b *body.Body, opts Options) *Session {
	return &Session{
		Camera:        cam,
		Animator:      anim,
		Body:          b,
		near:          opts.Near,
		far:           opts.Far,
		mouseCaptured: opts.CaptureMouse,
		skipMouse:     true,
	}
}

// FromConfig builds a session from config: camera state, body layout file
// (or the built-in figure) and the initial clip.
func FromConfig(cfg *config.Config) (*Session, error) {
	c := cfg.Camera
	cam := camera.New(camera.Options{
		Position:         math.Vec3{X: c.Position[0], Y: c.Position[1], Z: c.Position[2]},
		Yaw:              c.Yaw,
		Pitch:            c.Pitch,
		MovementSpeed:    c.MovementSpeed,
		MouseSensitivity: c.MouseSensitivity,
		Zoom:             c.Zoom,
	})

	var (
		b   *body.Body
		err error
	)
	if cfg.Scene.BodyFile != "" {
		b, err = body.LoadFile(cfg.Scene.BodyFile)
	} else {
		b, err = body.Default()
	}
	if err != nil {
		return nil, fmt.Errorf("loading body: %w", err)
	}

	state, err := animation.ParseState(cfg.Scene.Animation)
	if err != nil {
		return nil, err
	}
	anim := animation.New()
	anim.SetState(state)

	logger.Info("session ready",
		zap.Int("parts", b.Len()),
		zap.Stringer("animation", state),
		zap.String("body_file", cfg.Scene.BodyFile),
	)

	return New(cam, anim, b, Options{
		Near:         c.Near,
		Far:          c.Far,
		CaptureMouse: c.CaptureMouse,
	}), nil
}

// MouseCaptured reports whether mouse motion steers the camera.
func (s *Session) MouseCaptured() bool {
	return s.mouseCaptured
}

// Update applies one tick of input, then advances the animation clock.
func (s *Session) Update(f *controls.Frame, dt float32) Requests {
	var req Requests

	if f.Quit || f.JustPressed(controls.Quit) {
		req.Quit = true
	}
	req.Screenshot = f.JustPressed(controls.Screenshot)

	if f.JustPressed(controls.CaptureMouse) {
		s.mouseCaptured = !s.mouseCaptured
		s.skipMouse = true
		captured := s.mouseCaptured
		req.Capture = &captured
		logger.Debug("mouse capture toggled", zap.Bool("captured", captured))
	}

	if s.mouseCaptured && !s.skipMouse {
		// Screen Y grows downward; pitch grows upward.
		s.Camera.ProcessMouseMovement(f.MouseDX, -f.MouseDY, true)
	}
	s.skipMouse = false

	if f.Scroll != 0 {
		s.Camera.ProcessMouseScroll(f.Scroll)
	}

	for _, k := range movementKeys {
		if f.Held(k.action) {
			s.Camera.ProcessKeyboard(k.dir, dt)
		}
	}

	for _, d := range f.Digits {
		if state, ok := animation.StateForDigit(d); ok {
			s.Animator.SetState(state)
			logger.Debug("animation selected", zap.Stringer("state", state))
		}
	}

	s.Animator.Update(dt)
	return req
}

// Draw uploads the camera matrices and draws the scene: walls first, then
// the animated figure.
func (s *Session) Draw(t body.Target, aspect float32) {
	t.SetMat4(uniform.View, s.Camera.ViewMatrix())
	t.SetMat4(uniform.Projection, s.Camera.ProjectionMatrix(aspect, s.near, s.far))

	s.Body.DrawWalls(t)
	s.Animator.Draw(t, s.Body)
}
