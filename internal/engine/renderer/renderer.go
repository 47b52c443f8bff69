// Package renderer provides OpenGL rendering functionality.
package renderer

import (
	"fmt"
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/cubeman/internal/engine/shader"
	"github.com/Faultbox/cubeman/internal/engine/shaders"
	"github.com/Faultbox/cubeman/internal/logger"
	"github.com/Faultbox/cubeman/pkg/math"
)

// cubeVertices is a unit cube centered on the origin: position (x, y, z)
// then color (r, g, b), six vertices per face.
var cubeVertices = []float32{
	// front (red)
	-0.5, -0.5, 0.5, 1, 0, 0,
	0.5, -0.5, 0.5, 1, 0, 0,
	0.5, 0.5, 0.5, 1, 0, 0,
	0.5, 0.5, 0.5, 1, 0, 0,
	-0.5, 0.5, 0.5, 1, 0, 0,
	-0.5, -0.5, 0.5, 1, 0, 0,
	// back (green)
	-0.5, -0.5, -0.5, 0, 1, 0,
	0.5, -0.5, -0.5, 0, 1, 0,
	0.5, 0.5, -0.5, 0, 1, 0,
	0.5, 0.5, -0.5, 0, 1, 0,
	-0.5, 0.5, -0.5, 0, 1, 0,
	-0.5, -0.5, -0.5, 0, 1, 0,
	// left (blue)
	-0.5, 0.5, 0.5, 0, 0, 1,
	-0.5, 0.5, -0.5, 0, 0, 1,
	-0.5, -0.5, -0.5, 0, 0, 1,
	-0.5, -0.5, -0.5, 0, 0, 1,
	-0.5, -0.5, 0.5, 0, 0, 1,
	-0.5, 0.5, 0.5, 0, 0, 1,
	// right (yellow)
	0.5, 0.5, 0.5, 1, 1, 0,
	0.5, 0.5, -0.5, 1, 1, 0,
	0.5, -0.5, -0.5, 1, 1, 0,
	0.5, -0.5, -0.5, 1, 1, 0,
	0.5, -0.5, 0.5, 1, 1, 0,
	0.5, 0.5, 0.5, 1, 1, 0,
	// top (magenta)
	-0.5, 0.5, -0.5, 1, 0, 1,
	0.5, 0.5, -0.5, 1, 0, 1,
	0.5, 0.5, 0.5, 1, 0, 1,
	0.5, 0.5, 0.5, 1, 0, 1,
	-0.5, 0.5, 0.5, 1, 0, 1,
	-0.5, 0.5, -0.5, 1, 0, 1,
	// bottom (cyan)
	-0.5, -0.5, -0.5, 0, 1, 1,
	0.5, -0.5, -0.5, 0, 1, 1,
	0.5, -0.5, 0.5, 0, 1, 1,
	0.5, -0.5, 0.5, 0, 1, 1,
	-0.5, -0.5, 0.5, 0, 1, 1,
	-0.5, -0.5, -0.5, 0, 1, 1,
}

const (
	floatsPerVertex = 6
	cubeVertexCount = 36
)

// Config holds renderer configuration.
type Config struct {
	Width      int
	Height     int
	ClearColor [3]float32
}

// Renderer owns GL state, the cube program and the cube mesh.
type Renderer struct {
	config Config

	program *shader.Program
	cubeVAO uint32
	cubeVBO uint32
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	c := cfg.ClearColor
	gl.ClearColor(c[0], c[1], c[2], 1.0)

	var err error
	r.program, err = shader.NewProgram(shaders.CubeVertexShader, shaders.CubeFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("failed to create cube program: %w", err)
	}
	logger.Debug("shader program created", zap.Uint32("program", r.program.ID()))

	r.createCube()
	r.Resize(cfg.Width, cfg.Height)

	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	if r.cubeVAO != 0 {
		gl.DeleteVertexArrays(1, &r.cubeVAO)
	}
	if r.cubeVBO != 0 {
		gl.DeleteBuffers(1, &r.cubeVBO)
	}
	if r.program != nil {
		r.program.Delete()
	}
}

// Resize sets the viewport to the drawable size in pixels.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Size returns the viewport size.
func (r *Renderer) Size() (int, int) {
	return r.config.Width, r.config.Height
}

// Aspect returns width over height, or 1 for a degenerate viewport.
func (r *Renderer) Aspect() float32 {
	if r.config.Height <= 0 {
		return 1
	}
	return float32(r.config.Width) / float32(r.config.Height)
}

// Begin clears the frame and binds the cube program and mesh.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	r.program.Use()
	gl.BindVertexArray(r.cubeVAO)
}

// End finishes the current frame.
func (r *Renderer) End() {
	gl.BindVertexArray(0)
}

// SetMat4 uploads a matrix uniform to the cube program.
func (r *Renderer) SetMat4(name string, m math.Mat4) { r.program.SetMat4(name, m) }

// SetVec3 uploads a vector uniform to the cube program.
func (r *Renderer) SetVec3(name string, v math.Vec3) { r.program.SetVec3(name, v) }

// SetBool uploads a flag uniform to the cube program.
func (r *Renderer) SetBool(name string, b bool) { r.program.SetBool(name, b) }

// DrawCube draws the unit cube with the current uniforms. Call between
// Begin and End.
func (r *Renderer) DrawCube() {
	gl.DrawArrays(gl.TRIANGLES, 0, cubeVertexCount)
}

// ReadPixels copies the back buffer into an RGBA image, top row first.
func (r *Renderer) ReadPixels() *image.RGBA {
	w, h := r.config.Width, r.config.Height
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if w == 0 || h == 0 {
		return img
	}

	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))

	// GL rows start at the bottom.
	stride := img.Stride
	row := make([]byte, stride)
	for y := 0; y < h/2; y++ {
		top := img.Pix[y*stride : (y+1)*stride]
		bottom := img.Pix[(h-1-y)*stride : (h-y)*stride]
		copy(row, top)
		copy(top, bottom)
		copy(bottom, row)
	}
	return img
}

// createCube uploads the cube mesh.
func (r *Renderer) createCube() {
	gl.GenVertexArrays(1, &r.cubeVAO)
	gl.BindVertexArray(r.cubeVAO)

	gl.GenBuffers(1, &r.cubeVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.cubeVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(cubeVertices)*4, gl.Ptr(cubeVertices), gl.STATIC_DRAW)

	stride := int32(floatsPerVertex * 4)

	// Position attribute (location = 0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, nil)
	gl.EnableVertexAttribArray(0)

	// Color attribute (location = 1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, gl.PtrOffset(3*4))
	gl.EnableVertexAttribArray(1)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	logger.Debug("cube created",
		zap.Uint32("vao", r.cubeVAO),
		zap.Uint32("vbo", r.cubeVBO),
	)
}
