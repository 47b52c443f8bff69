package animation

import (
	"errors"
	gomath "math"
	"testing"

	"github.com/Faultbox/cubeman/internal/engine/body"
	"github.com/Faultbox/cubeman/internal/engine/uniform"
	"github.com/Faultbox/cubeman/pkg/math"
)

const eps = 1e-5

func approx(a, b float32) bool {
	d := a - b
	return d < eps && d > -eps
}

type recorder struct {
	calls    []string
	colors   []math.Vec3
	override bool
	draws    int
}

func (r *recorder) SetMat4(name string, _ math.Mat4) { r.calls = append(r.calls, "mat4:"+name) }

func (r *recorder) SetVec3(name string, v math.Vec3) {
	r.calls = append(r.calls, "vec3:"+name)
	if name == uniform.OverrideColor {
		r.colors = append(r.colors, v)
	}
}

func (r *recorder) SetBool(name string, b bool) {
	r.calls = append(r.calls, "bool:"+name)
	if name == uniform.UseOverrideColor {
		r.override = b
	}
}

func (r *recorder) DrawCube() {
	r.calls = append(r.calls, "draw")
	r.draws++
}

func TestWavingAtZero(t *testing.T) {
	a := New()
	a.SetState(Waving)
	a.Update(0)

	ang := a.Angles()
	if ang.RightArm != math.Radians(160) {
		t.Errorf("RightArm = %f, want %f", ang.RightArm, math.Radians(160))
	}
	if ang.LeftArm != 0 || ang.LeftLeg != 0 || ang.RightLeg != 0 {
		t.Errorf("other joints should be still: %+v", ang)
	}
	if ang.RightArmAxis != (math.Vec3{Z: 1}) {
		t.Errorf("wave axis = %v, want +Z", ang.RightArmAxis)
	}
}

func TestWavingOscillates(t *testing.T) {
	a := New()
	a.SetState(Waving)

	// sin(3t) = 1 at t = pi/6.
	a.Update(float32(gomath.Pi / 6))
	if got := a.Angles().RightArm; !approx(got, math.Radians(180)) {
		t.Errorf("peak RightArm = %f, want %f", got, math.Radians(180))
	}
}

func TestWalkingPeak(t *testing.T) {
	a := New()
	a.SetState(Walking)
	a.Update(float32(gomath.Pi / 8))

	ang := a.Angles()
	tests := []struct {
		name string
		got  float32
		want float32
	}{
		{"LeftLeg", ang.LeftLeg, math.Radians(35)},
		{"RightLeg", ang.RightLeg, math.Radians(-35)},
		{"LeftArm", ang.LeftArm, math.Radians(-25)},
		{"RightArm", ang.RightArm, math.Radians(25)},
	}
	for _, tt := range tests {
		if !approx(tt.got, tt.want) {
			t.Errorf("%s = %f, want %f", tt.name, tt.got, tt.want)
		}
	}
	if ang.RightArmAxis != (math.Vec3{X: 1}) {
		t.Errorf("walk axis = %v, want +X", ang.RightArmAxis)
	}
}

func TestNoneIsStill(t *testing.T) {
	a := New()
	a.Update(3)

	if a.Elapsed() != 0 {
		t.Errorf("clock advanced in None: %f", a.Elapsed())
	}
	ang := a.Angles()
	if ang.RightArm != 0 || ang.LeftArm != 0 || ang.RightLeg != 0 || ang.LeftLeg != 0 {
		t.Errorf("None should have zero angles: %+v", ang)
	}
}

func TestSetStateResetsClock(t *testing.T) {
	a := New()
	a.SetState(Walking)
	a.Update(0.5)
	a.Update(0.25)
	if !approx(a.Elapsed(), 0.75) {
		t.Fatalf("Elapsed = %f, want 0.75", a.Elapsed())
	}

	// Re-entering the same state restarts it.
	a.SetState(Walking)
	if a.Elapsed() != 0 {
		t.Errorf("Elapsed after re-entry = %f, want 0", a.Elapsed())
	}
	if ang := a.Angles(); ang.LeftLeg != 0 {
		t.Errorf("LeftLeg right after re-entry = %f, want 0", ang.LeftLeg)
	}

	a.Update(1)
	a.SetState(Waving)
	if a.Elapsed() != 0 || a.State() != Waving {
		t.Errorf("after switch: state %s elapsed %f", a.State(), a.Elapsed())
	}
}

func TestPivotAtOwnPositionStaysPut(t *testing.T) {
	b := body.New(body.NewPart("arm", body.UpperArm, RightShoulder))

	for _, angle := range []float32{0, 0.3, 1.7, -2.2, 3.1} {
		m := pivoted(b.Parts()[0], RightShoulder, angle, math.V3(0, 0, 1))
		got := m.Translation()
		if !approx(got.X, RightShoulder.X) || !approx(got.Y, RightShoulder.Y) || !approx(got.Z, RightShoulder.Z) {
			t.Errorf("angle %f: position %v, want %v", angle, got, RightShoulder)
		}
	}
}

func TestPoseRotatesAboutShoulder(t *testing.T) {
	arm := body.NewPart("right_upper_arm", body.UpperArm, math.V3(2, -1.5, 0))
	b := body.New(arm)

	a := New()
	a.SetState(Waving)
	poses := a.Pose(b)
	if len(poses) != 1 {
		t.Fatalf("expected 1 pose, got %d", len(poses))
	}

	// The arm's distance from the shoulder is preserved by the rotation.
	center := poses[0].Model.TransformVec3(math.Vec3{})
	want := arm.Position.Distance(RightShoulder)
	if got := center.Distance(RightShoulder); !approx(got, want) {
		t.Errorf("distance from shoulder = %f, want %f", got, want)
	}
	// Raised 160 degrees: the arm now sits above the shoulder.
	if center.Y <= RightShoulder.Y {
		t.Errorf("waving arm center %v should be above the shoulder", center)
	}
}

func TestPoseChoosesSideByX(t *testing.T) {
	b := body.New(
		body.NewPart("l_arm", body.UpperArm, math.V3(-2, -1.5, 0)),
		body.NewPart("r_leg", body.Thigh, math.V3(0.5, -4, 0)),
		body.NewPart("l_leg", body.Thigh, math.V3(-0.5, -4, 0)),
	)
	a := New()
	a.SetState(Walking)
	a.Update(float32(gomath.Pi / 8))
	ang := a.Angles()

	poses := a.Pose(b)
	if len(poses) != 3 {
		t.Fatalf("expected 3 poses, got %d", len(poses))
	}

	wants := []math.Mat4{
		pivoted(b.Parts()[0], LeftShoulder, ang.LeftArm, math.V3(1, 0, 0)),
		pivoted(b.Parts()[1], RightHip, ang.RightLeg, math.V3(1, 0, 0)),
		pivoted(b.Parts()[2], LeftHip, ang.LeftLeg, math.V3(1, 0, 0)),
	}
	for i, want := range wants {
		if poses[i].Model != want {
			t.Errorf("pose %d (%s) used the wrong joint", i, poses[i].Part.Name)
		}
	}
}

func TestPoseKeepsScale(t *testing.T) {
	p := body.NewPart("leg", body.Thigh, RightHip)
	p.Scale = math.V3(0.5, 2, 0.5)
	a := New()
	poses := a.Pose(body.New(p))

	top := poses[0].Model.TransformVec3(math.V3(0, 0.5, 0))
	if !approx(top.Y, RightHip.Y+1) {
		t.Errorf("scaled top y = %f, want %f", top.Y, RightHip.Y+1)
	}
}

func TestDrawNoneUsesRestPose(t *testing.T) {
	b, err := body.Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	r := &recorder{}
	New().Draw(r, b)

	// head + torso + arms + legs
	if r.draws != 1+4+4+4 {
		t.Errorf("draws = %d, want 13", r.draws)
	}
	if r.override {
		t.Error("override flag left set on the None path")
	}
}

func TestDrawAnimatedColorBatches(t *testing.T) {
	b, err := body.Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	a := New()
	a.SetState(Walking)
	a.Update(0.1)

	r := &recorder{}
	a.Draw(r, b)

	if r.draws != 13 {
		t.Errorf("draws = %d, want 13", r.draws)
	}
	if r.override {
		t.Error("override flag left set")
	}

	// Head (1) and torso (4) set their own colors, then one skin and one
	// leg color for the limb batches.
	n := len(r.colors)
	if n != 5+2 {
		t.Fatalf("color uploads = %d, want 7", n)
	}
	if r.colors[n-2] != body.SkinColor || r.colors[n-1] != body.LegColor {
		t.Errorf("limb batch colors = %v, %v", r.colors[n-2], r.colors[n-1])
	}

	last := r.calls[len(r.calls)-1]
	if last != "bool:"+uniform.UseOverrideColor {
		t.Errorf("last call = %s, want override cleared", last)
	}
}

func TestParseState(t *testing.T) {
	for _, s := range []State{None, Waving, Walking} {
		got, err := ParseState(s.String())
		if err != nil || got != s {
			t.Errorf("ParseState(%q) = %v, %v", s.String(), got, err)
		}
	}
	if got, err := ParseState(" Walking "); err != nil || got != Walking {
		t.Errorf("ParseState is not case-insensitive: %v, %v", got, err)
	}
	if _, err := ParseState("dancing"); !errors.Is(err, ErrUnknownState) {
		t.Errorf("expected ErrUnknownState, got %v", err)
	}
}

func TestStateForDigit(t *testing.T) {
	tests := []struct {
		digit int
		want  State
		ok    bool
	}{
		{0, None, true},
		{1, Waving, true},
		{2, Walking, true},
		{3, None, false},
		{9, None, false},
	}
	for _, tt := range tests {
		got, ok := StateForDigit(tt.digit)
		if got != tt.want || ok != tt.ok {
			t.Errorf("StateForDigit(%d) = %v, %v; want %v, %v", tt.digit, got, ok, tt.want, tt.ok)
		}
	}
}
