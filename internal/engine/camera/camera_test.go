package camera

import (
	"testing"

	"github.com/Faultbox/cubeman/pkg/math"
)

const eps = 1e-5

func TestDefaultCameraLooksDownNegativeZ(t *testing.T) {
	c := NewDefault()

	assertVec3(t, "front", c.Front(), math.Vec3{X: 0, Y: 0, Z: -1})
	assertVec3(t, "right", c.Right(), math.Vec3{X: 1, Y: 0, Z: 0})
	assertVec3(t, "up", c.Up(), math.Vec3{X: 0, Y: 1, Z: 0})

	want := math.LookAt(
		math.Vec3{X: 0, Y: 0, Z: 3},
		math.Vec3{X: 0, Y: 0, Z: 2},
		math.Vec3{X: 0, Y: 1, Z: 0},
	)
	got := c.ViewMatrix()
	for i := range got {
		if !approx(got[i], want[i]) {
			t.Errorf("view[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestViewMatrixHasNoSideEffects(t *testing.T) {
	c := NewDefault()
	c.ProcessMouseMovement(123, -45, true)

	first := c.ViewMatrix()
	for i := 0; i < 5; i++ {
		if c.ViewMatrix() != first {
			t.Fatal("ViewMatrix changed between calls")
		}
	}
}

func TestProcessMouseMovementClampsPitch(t *testing.T) {
	tests := []struct {
		name      string
		dy        float32
		constrain bool
		want      float32
	}{
		{"up clamped", 5000, true, MaxPitch},
		{"down clamped", -5000, true, MinPitch},
		{"within range", 300, true, 30},
		{"up unclamped", 5000, false, 500},
		{"down unclamped", -2000, false, -200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewDefault()
			c.ProcessMouseMovement(0, tt.dy, tt.constrain)
			if !approx(c.Pitch(), tt.want) {
				t.Errorf("pitch = %v, want %v", c.Pitch(), tt.want)
			}
		})
	}
}

func TestPitchStaysInRangeOverManyMoves(t *testing.T) {
	c := NewDefault()
	deltas := []float32{400, 900, -30, 2000, -5000, 17, -1, 888}
	for _, dy := range deltas {
		c.ProcessMouseMovement(dy/3, dy, true)
		if c.Pitch() < MinPitch || c.Pitch() > MaxPitch {
			t.Fatalf("pitch %v escaped [%v, %v]", c.Pitch(), MinPitch, MaxPitch)
		}
	}
}

func TestBasisIsOrthonormal(t *testing.T) {
	c := NewDefault()
	moves := [][2]float32{{10, 5}, {-300, 200}, {720, -890}, {1, 1}, {45, 880}}

	for _, m := range moves {
		c.ProcessMouseMovement(m[0], m[1], true)

		f, r, u := c.Front(), c.Right(), c.Up()
		if !approx(f.Dot(r), 0) || !approx(f.Dot(u), 0) || !approx(r.Dot(u), 0) {
			t.Errorf("basis not orthogonal at yaw=%v pitch=%v: f.r=%v f.u=%v r.u=%v",
				c.Yaw(), c.Pitch(), f.Dot(r), f.Dot(u), r.Dot(u))
		}
		for name, v := range map[string]math.Vec3{"front": f, "right": r, "up": u} {
			if !approx(v.Length(), 1) {
				t.Errorf("%s length = %v, want 1", name, v.Length())
			}
		}
		// Right-handed: right x front == up
		assertVec3(t, "right x front", r.Cross(f), u)
	}
}

func TestProcessMouseScrollClampsZoom(t *testing.T) {
	c := NewDefault()

	c.ProcessMouseScroll(10)
	if c.Zoom() != 35 {
		t.Errorf("zoom = %v, want 35", c.Zoom())
	}
	c.ProcessMouseScroll(100)
	if c.Zoom() != MinZoom {
		t.Errorf("zoom = %v, want %v", c.Zoom(), MinZoom)
	}
	c.ProcessMouseScroll(-500)
	if c.Zoom() != MaxZoom {
		t.Errorf("zoom = %v, want %v", c.Zoom(), MaxZoom)
	}
}

func TestProcessKeyboard(t *testing.T) {
	tests := []struct {
		dir  Movement
		want math.Vec3
	}{
		{Forward, math.Vec3{X: 0, Y: 0, Z: 3 - 2.5}},
		{Backward, math.Vec3{X: 0, Y: 0, Z: 3 + 2.5}},
		{Left, math.Vec3{X: -2.5, Y: 0, Z: 3}},
		{Right, math.Vec3{X: 2.5, Y: 0, Z: 3}},
		{Up, math.Vec3{X: 0, Y: 2.5, Z: 3}},
		{Down, math.Vec3{X: 0, Y: -2.5, Z: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			c := NewDefault()
			c.ProcessKeyboard(tt.dir, 1.0)
			assertVec3(t, "position", c.Position, tt.want)
		})
	}
}

func TestProcessKeyboardFollowsFront(t *testing.T) {
	c := NewDefault()
	c.ProcessMouseMovement(0, 450, true) // pitch 45 degrees up
	start := c.Position
	c.ProcessKeyboard(Forward, 0.5)

	moved := c.Position.Sub(start)
	if !approx(moved.Length(), c.MovementSpeed*0.5) {
		t.Errorf("moved %v units, want %v", moved.Length(), c.MovementSpeed*0.5)
	}
	if moved.Y <= 0 {
		t.Errorf("moving forward while looking up should rise, got dy=%v", moved.Y)
	}
}

func TestNewClampsOptions(t *testing.T) {
	opts := DefaultOptions()
	opts.Pitch = 120
	opts.Zoom = 90
	c := New(opts)

	if c.Pitch() != MaxPitch {
		t.Errorf("pitch = %v, want %v", c.Pitch(), MaxPitch)
	}
	if c.Zoom() != MaxZoom {
		t.Errorf("zoom = %v, want %v", c.Zoom(), MaxZoom)
	}
}

func TestProjectionMatrixUsesZoom(t *testing.T) {
	c := NewDefault()
	c.ProcessMouseScroll(15) // 30 degrees

	got := c.ProjectionMatrix(1.5, 0.1, 100)
	want := math.Perspective(math.Radians(30), 1.5, 0.1, 100)
	if got != want {
		t.Errorf("projection = %v, want %v", got, want)
	}
}

func approx(a, b float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= eps
}

func assertVec3(t *testing.T, what string, got, want math.Vec3) {
	t.Helper()
	if !approx(got.X, want.X) || !approx(got.Y, want.Y) || !approx(got.Z, want.Z) {
		t.Errorf("%s: got %v, want %v", what, got, want)
	}
}
