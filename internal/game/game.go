// Package game implements the main loop that ties the platform layer to a
// viewer session.
package game

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/cubeman/internal/config"
	"github.com/Faultbox/cubeman/internal/engine/controls"
	"github.com/Faultbox/cubeman/internal/engine/debug"
	"github.com/Faultbox/cubeman/internal/engine/input"
	"github.com/Faultbox/cubeman/internal/engine/renderer"
	"github.com/Faultbox/cubeman/internal/engine/window"
	"github.com/Faultbox/cubeman/internal/logger"
	"github.com/Faultbox/cubeman/internal/viewer"
)

const title = "cubeman"

// maxFrameTime caps dt so a stall (window drag, breakpoint) does not
// teleport the camera.
const maxFrameTime = 0.25

// Game is the main viewer instance.
type Game struct {
	running     bool
	window      *window.Window
	renderer    *renderer.Renderer
	input       *input.Input
	session     *viewer.Session
	screenshots *debug.ScreenshotCapture
}

// New creates the window, GL state, input and session from config.
func New(cfg *config.Config) (*Game, error) {
	logger.Info("initializing game",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
	)

	// Everything that can fail without a window goes first.
	session, err := viewer.FromConfig(cfg)
	if err != nil {
		return nil, err
	}
	in, err := input.New(controls.Bindings(cfg.Controls))
	if err != nil {
		return nil, err
	}
	shots, err := debug.NewScreenshotCapture(cfg.Screenshot.Dir, title, cfg.Screenshot.Format, cfg.Screenshot.MaxWidth)
	if err != nil {
		return nil, err
	}

	g := &Game{
		input:       in,
		session:     session,
		screenshots: shots,
	}

	// Create window (this also creates OpenGL context)
	g.window, err = window.New(window.Config{
		Title:      title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Create renderer (AFTER window, since OpenGL context must exist)
	w, h := g.window.DrawableSize()
	g.renderer, err = renderer.New(renderer.Config{
		Width:      w,
		Height:     h,
		ClearColor: [3]float32{0.2, 0.3, 0.3},
	})
	if err != nil {
		g.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	g.window.SetMouseCaptured(session.MouseCaptured())

	logger.Info("game initialized successfully")
	return g, nil
}

// Run starts the main loop. It returns when the window closes or quit is
// pressed.
func (g *Game) Run() error {
	g.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting game loop")

	for g.running {
		now := time.Now()
		dt := min(now.Sub(lastTime).Seconds(), maxFrameTime)
		lastTime = now

		// 1. Input, applied once per tick before any drawing
		frame := g.input.Update()
		if frame.Resized {
			g.renderer.Resize(g.window.DrawableSize())
		}
		req := g.session.Update(frame, float32(dt))
		if req.Quit {
			g.running = false
			break
		}
		if req.Capture != nil {
			g.window.SetMouseCaptured(*req.Capture)
		}

		// 2. Render
		g.renderer.Begin()
		g.session.Draw(g.renderer, g.renderer.Aspect())
		if req.Screenshot {
			g.saveScreenshot()
		}
		g.renderer.End()

		// 3. Present
		g.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps", zap.Int("count", frameCount), zap.String("dt", fmt.Sprintf("%.2fms", dt*1000)))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

func (g *Game) saveScreenshot() {
	path, err := g.screenshots.CaptureFromImage(g.renderer.ReadPixels())
	if err != nil {
		logger.Warn("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}

// Close cleans up game resources.
func (g *Game) Close() {
	logger.Info("closing game")

	if g.renderer != nil {
		g.renderer.Close()
	}
	if g.window != nil {
		g.window.Close()
	}
}
