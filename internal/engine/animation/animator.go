// Package animation drives the figure's limbs with closed-form clips.
package animation

import (
	"errors"
	"fmt"
	gomath "math"
	"strings"

	"github.com/Faultbox/cubeman/internal/engine/body"
	"github.com/Faultbox/cubeman/internal/engine/uniform"
	"github.com/Faultbox/cubeman/pkg/math"
)

// State selects the active clip.
type State int

const (
	None State = iota
	Waving
	Walking
)

// ErrUnknownState is returned when a name does not match any clip.
var ErrUnknownState = errors.New("unknown animation state")

var stateNames = [...]string{
	None:    "none",
	Waving:  "waving",
	Walking: "walking",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("State(%d)", int(s))
	}
	return stateNames[s]
}

// ParseState converts a name (case-insensitive) to a State.
func ParseState(name string) (State, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range stateNames {
		if n == name {
			return State(i), nil
		}
	}
	return None, fmt.Errorf("%w: %q", ErrUnknownState, name)
}

// StateForDigit maps a number key to a state. ok is false for digits with
// no clip bound.
func StateForDigit(d int) (State, bool) {
	if d < 0 || d >= len(stateNames) {
		return None, false
	}
	return State(d), true
}

// Joint pivots in world space.
var (
	RightShoulder = math.Vec3{X: 1.5, Y: -0.5, Z: 0}
	LeftShoulder  = math.Vec3{X: -1.5, Y: -0.5, Z: 0}
	LeftHip       = math.Vec3{X: -0.5, Y: -2.5, Z: 0}
	RightHip      = math.Vec3{X: 0.5, Y: -2.5, Z: 0}
)

var (
	swingAxis = math.Vec3{X: 1, Y: 0, Z: 0}
	waveAxis  = math.Vec3{X: 0, Y: 0, Z: 1}
)

// Angles are joint rotations in radians for one instant of a clip.
type Angles struct {
	RightArm, LeftArm float32
	RightLeg, LeftLeg float32

	// RightArmAxis is the right shoulder's rotation axis. Every other joint
	// swings about +X.
	RightArmAxis math.Vec3
}

// clip computes joint angles from elapsed seconds.
type clip func(t float32) Angles

var clips = map[State]clip{
	None:    func(float32) Angles { return Angles{RightArmAxis: swingAxis} },
	Waving:  wave,
	Walking: walk,
}

func wave(t float32) Angles {
	s := float32(gomath.Sin(float64(3 * t)))
	return Angles{
		RightArm:     math.Radians(160 + 20*s),
		RightArmAxis: waveAxis,
	}
}

func walk(t float32) Angles {
	swing := float32(gomath.Sin(float64(4 * t)))
	leftLeg := math.Radians(35 * swing)
	leftArm := -math.Radians(25 * swing)
	return Angles{
		LeftLeg:      leftLeg,
		RightLeg:     -leftLeg,
		LeftArm:      leftArm,
		RightArm:     -leftArm,
		RightArmAxis: swingAxis,
	}
}

// Animator is a small state machine over clips.
type Animator struct {
	state   State
	elapsed float32
}

// New returns an animator in the None state.
func New() *Animator {
	return &Animator{}
}

// SetState switches clip and restarts the clock, even when s is already
// active.
func (a *Animator) SetState(s State) {
	a.state = s
	a.elapsed = 0
}

// State returns the active clip.
func (a *Animator) State() State {
	return a.state
}

// Elapsed returns seconds since the last SetState, excluding time spent
// in None.
func (a *Animator) Elapsed() float32 {
	return a.elapsed
}

// Update advances the clock. The clock is frozen in None.
func (a *Animator) Update(dt float32) {
	if a.state == None {
		return
	}
	a.elapsed += dt
}

// Angles evaluates the active clip at the current time.
func (a *Animator) Angles() Angles {
	c, ok := clips[a.state]
	if !ok {
		return Angles{RightArmAxis: swingAxis}
	}
	return c(a.elapsed)
}

// PartPose is a part together with its animated model matrix.
type PartPose struct {
	Part  body.Part
	Model math.Mat4
}

// Pose returns the animated model matrix of every limb segment, arms first
// then legs, in body order.
func (a *Animator) Pose(b *body.Body) []PartPose {
	ang := a.Angles()
	arms, legs := b.Arms(), b.Legs()
	out := make([]PartPose, 0, len(arms)+len(legs))

	for _, p := range arms {
		pivot, angle, axis := LeftShoulder, ang.LeftArm, swingAxis
		if p.Position.X > 0 {
			pivot, angle, axis = RightShoulder, ang.RightArm, ang.RightArmAxis
		}
		out = append(out, PartPose{Part: p, Model: pivoted(p, pivot, angle, axis)})
	}
	for _, p := range legs {
		pivot, angle := RightHip, ang.RightLeg
		if p.Position.X < 0 {
			pivot, angle = LeftHip, ang.LeftLeg
		}
		out = append(out, PartPose{Part: p, Model: pivoted(p, pivot, angle, swingAxis)})
	}
	return out
}

// pivoted rotates a part about a joint that is not its own center:
// T(pivot) * R * T(-pivot) * T(position) * S(scale).
func pivoted(p body.Part, pivot math.Vec3, angle float32, axis math.Vec3) math.Mat4 {
	return math.Identity().
		Translated(pivot).
		Rotated(angle, axis).
		Translated(pivot.Negate()).
		Translated(p.Position).
		Scaled(p.Scale)
}

// Draw renders the figure. Head and torso use the body's own routines. In
// None the limbs do too; otherwise they are drawn with pivoted matrices in
// two batches, skin then leg color, under one override scope.
func (a *Animator) Draw(t body.Target, b *body.Body) {
	b.DrawHead(t)
	b.DrawTorso(t)

	if a.state == None {
		b.DrawArms(t)
		b.DrawLegs(t)
		return
	}

	t.SetBool(uniform.UseOverrideColor, true)
	defer t.SetBool(uniform.UseOverrideColor, false)

	poses := a.Pose(b)
	t.SetVec3(uniform.OverrideColor, body.SkinColor)
	for _, pp := range poses {
		if pp.Part.Type.IsArm() {
			t.SetMat4(uniform.Model, pp.Model)
			t.DrawCube()
		}
	}
	t.SetVec3(uniform.OverrideColor, body.LegColor)
	for _, pp := range poses {
		if pp.Part.Type.IsLeg() {
			t.SetMat4(uniform.Model, pp.Model)
			t.DrawCube()
		}
	}
}
