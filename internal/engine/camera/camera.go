// Package camera provides the free-flying camera used by the viewer.
package camera

import (
	gomath "math"

	"github.com/Faultbox/cubeman/pkg/math"
)

// Movement is a keyboard movement direction.
type Movement int

const (
	Forward Movement = iota
	Backward
	Left
	Right
	Up
	Down
)

// String returns the direction name.
func (m Movement) String() string {
	switch m {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "unknown"
	}
}

// Orientation and zoom limits, in degrees.
const (
	MinPitch = -89.0
	MaxPitch = 89.0
	MinZoom  = 1.0
	MaxZoom  = 45.0
)

// WorldUp is the fixed up reference used to seed the camera basis.
var WorldUp = math.Vec3{X: 0, Y: 1, Z: 0}

// Options holds the initial camera state.
type Options struct {
	Position         math.Vec3
	Yaw              float32 // degrees
	Pitch            float32 // degrees
	MovementSpeed    float32 // world units per second
	MouseSensitivity float32 // degrees per input unit
	Zoom             float32 // vertical field of view, degrees
}

// DefaultOptions returns the startup camera: three units back from the
// origin, looking down -Z.
func DefaultOptions() Options {
	return Options{
		Position:         math.Vec3{X: 0, Y: 0, Z: 3},
		Yaw:              -90.0,
		Pitch:            0.0,
		MovementSpeed:    2.5,
		MouseSensitivity: 0.1,
		Zoom:             45.0,
	}
}

// FlyCamera is a yaw/pitch camera that moves freely through the world.
// Front, Right and Up are always derived from the angles.
type FlyCamera struct {
	Position math.Vec3

	// Tunables
	MovementSpeed    float32
	MouseSensitivity float32

	yaw   float32
	pitch float32
	zoom  float32

	front math.Vec3
	right math.Vec3
	up    math.Vec3
}

// New creates a fly camera from options.
func New(opts Options) *FlyCamera {
	c := &FlyCamera{
		Position:         opts.Position,
		MovementSpeed:    opts.MovementSpeed,
		MouseSensitivity: opts.MouseSensitivity,
		yaw:              opts.Yaw,
		pitch:            clamp(opts.Pitch, MinPitch, MaxPitch),
		zoom:             clamp(opts.Zoom, MinZoom, MaxZoom),
	}
	c.updateVectors()
	return c
}

// NewDefault creates a fly camera with DefaultOptions.
func NewDefault() *FlyCamera {
	return New(DefaultOptions())
}

// Yaw returns the yaw angle in degrees.
func (c *FlyCamera) Yaw() float32 { return c.yaw }

// Pitch returns the pitch angle in degrees.
func (c *FlyCamera) Pitch() float32 { return c.pitch }

// Zoom returns the vertical field of view in degrees.
func (c *FlyCamera) Zoom() float32 { return c.zoom }

// Front returns the unit look direction.
func (c *FlyCamera) Front() math.Vec3 { return c.front }

// Right returns the unit right vector.
func (c *FlyCamera) Right() math.Vec3 { return c.right }

// Up returns the camera's unit up vector.
func (c *FlyCamera) Up() math.Vec3 { return c.up }

// ProcessKeyboard moves the camera along its basis. The world is unbounded.
func (c *FlyCamera) ProcessKeyboard(dir Movement, deltaTime float32) {
	velocity := c.MovementSpeed * deltaTime
	switch dir {
	case Forward:
		c.Position = c.Position.Add(c.front.Scale(velocity))
	case Backward:
		c.Position = c.Position.Sub(c.front.Scale(velocity))
	case Left:
		c.Position = c.Position.Sub(c.right.Scale(velocity))
	case Right:
		c.Position = c.Position.Add(c.right.Scale(velocity))
	case Up:
		c.Position = c.Position.Add(WorldUp.Scale(velocity))
	case Down:
		c.Position = c.Position.Sub(WorldUp.Scale(velocity))
	}
}

// ProcessMouseMovement turns the camera. Positive dy looks up, so callers
// must flip screen-space Y before calling.
func (c *FlyCamera) ProcessMouseMovement(dx, dy float32, constrainPitch bool) {
	c.yaw += dx * c.MouseSensitivity
	c.pitch += dy * c.MouseSensitivity

	// Keep the basis from flipping at the poles
	if constrainPitch {
		c.pitch = clamp(c.pitch, MinPitch, MaxPitch)
	}

	c.updateVectors()
}

// ProcessMouseScroll narrows or widens the field of view.
func (c *FlyCamera) ProcessMouseScroll(dy float32) {
	c.zoom = clamp(c.zoom-dy, MinZoom, MaxZoom)
}

// ViewMatrix returns the view matrix for this camera.
func (c *FlyCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position, c.Position.Add(c.front), c.up)
}

// ProjectionMatrix returns a perspective projection using the zoom as the
// vertical field of view.
func (c *FlyCamera) ProjectionMatrix(aspect, near, far float32) math.Mat4 {
	return math.Perspective(math.Radians(c.zoom), aspect, near, far)
}

// updateVectors recomputes the orthonormal basis from yaw and pitch.
func (c *FlyCamera) updateVectors() {
	yawRad := float64(math.Radians(c.yaw))
	pitchRad := float64(math.Radians(c.pitch))

	front := math.Vec3{
		X: float32(gomath.Cos(yawRad) * gomath.Cos(pitchRad)),
		Y: float32(gomath.Sin(pitchRad)),
		Z: float32(gomath.Sin(yawRad) * gomath.Cos(pitchRad)),
	}
	c.front = front.Normalize()
	c.right = c.front.Cross(WorldUp).Normalize()
	c.up = c.right.Cross(c.front).Normalize()
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
