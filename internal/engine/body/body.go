package body

import (
	"slices"

	"github.com/Faultbox/cubeman/internal/engine/uniform"
)

// Target is where parts are drawn: a shader that takes uniforms and a
// bound unit cube.
type Target interface {
	uniform.Setter
	// DrawCube issues one draw call for the 36-vertex unit cube.
	DrawCube()
}

// Body is an ordered collection of parts. Insertion order is kept and
// duplicate types are allowed.
type Body struct {
	parts []Part
}

// New creates a body from parts.
func New(parts ...Part) *Body {
	return &Body{parts: slices.Clone(parts)}
}

// Add appends a part.
func (b *Body) Add(p Part) {
	b.parts = append(b.parts, p)
}

// Parts returns the parts in insertion order.
func (b *Body) Parts() []Part {
	return b.parts
}

// Len returns the number of parts.
func (b *Body) Len() int {
	return len(b.parts)
}

// OfType returns the parts tagged with any of the given types, in order.
func (b *Body) OfType(types ...PartType) []Part {
	var out []Part
	for _, p := range b.parts {
		if slices.Contains(types, p.Type) {
			out = append(out, p)
		}
	}
	return out
}

// Arms returns every arm segment.
func (b *Body) Arms() []Part {
	return b.OfType(UpperArm, LowerArm)
}

// Legs returns every leg segment.
func (b *Body) Legs() []Part {
	return b.OfType(Thigh, LowerLeg)
}

// DrawHead draws the head parts.
func (b *Body) DrawHead(t Target) { b.drawGroup(t, Head) }

// DrawTorso draws the torso parts.
func (b *Body) DrawTorso(t Target) { b.drawGroup(t, Torso) }

// DrawArms draws the arm segments in their rest pose.
func (b *Body) DrawArms(t Target) { b.drawGroup(t, UpperArm, LowerArm) }

// DrawLegs draws the leg segments in their rest pose.
func (b *Body) DrawLegs(t Target) { b.drawGroup(t, Thigh, LowerLeg) }

// DrawWalls draws the environment parts.
func (b *Body) DrawWalls(t Target) { b.drawGroup(t, Wall) }

// drawGroup sets color and model as a pair before every draw. The override
// flag is shared shader state and is always cleared on the way out.
func (b *Body) drawGroup(t Target, types ...PartType) {
	t.SetBool(uniform.UseOverrideColor, true)
	defer t.SetBool(uniform.UseOverrideColor, false)

	for _, p := range b.parts {
		if !slices.Contains(types, p.Type) {
			continue
		}
		t.SetVec3(uniform.OverrideColor, p.Color)
		t.SetMat4(uniform.Model, p.Model())
		t.DrawCube()
	}
}
