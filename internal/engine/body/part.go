// Package body holds the cuboid humanoid: an ordered list of scaled unit
// cubes tagged by the limb they belong to.
package body

import (
	"errors"
	"fmt"

	"github.com/Faultbox/cubeman/pkg/math"
)

// PartType tags what a part represents.
type PartType int

const (
	Head PartType = iota
	Torso
	UpperArm
	LowerArm
	Thigh
	LowerLeg
	Wall // environment, not part of the figure
)

// ErrUnknownPartType is returned when a layout names a type outside the set.
var ErrUnknownPartType = errors.New("unknown part type")

var partTypeNames = [...]string{
	Head:     "head",
	Torso:    "torso",
	UpperArm: "upper_arm",
	LowerArm: "lower_arm",
	Thigh:    "thigh",
	LowerLeg: "lower_leg",
	Wall:     "wall",
}

// String returns the layout name of the type.
func (t PartType) String() string {
	if t < 0 || int(t) >= len(partTypeNames) {
		return fmt.Sprintf("PartType(%d)", int(t))
	}
	return partTypeNames[t]
}

// ParsePartType converts a layout name back to a PartType.
func ParsePartType(s string) (PartType, error) {
	for i, name := range partTypeNames {
		if name == s {
			return PartType(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPartType, s)
}

// IsArm reports whether the part is an arm segment.
func (t PartType) IsArm() bool {
	return t == UpperArm || t == LowerArm
}

// IsLeg reports whether the part is a leg segment.
func (t PartType) IsLeg() bool {
	return t == Thigh || t == LowerLeg
}

// Default draw colors per type.
var (
	SkinColor  = math.Vec3{X: 1.0, Y: 187.0 / 255.0, Z: 119.0 / 255.0}
	ShirtColor = math.Vec3{X: 0.8, Y: 0.25, Z: 0.2}
	LegColor   = math.Vec3{X: 0.0, Y: 136.0 / 255.0, Z: 204.0 / 255.0}
	WallColor  = math.Vec3{X: 0.55, Y: 0.55, Z: 0.6}
)

// DefaultColor returns the color used when a layout does not set one.
func (t PartType) DefaultColor() math.Vec3 {
	switch t {
	case Head, UpperArm, LowerArm:
		return SkinColor
	case Torso:
		return ShirtColor
	case Thigh, LowerLeg:
		return LegColor
	default:
		return WallColor
	}
}

// Part is one cube of the figure. Treat it as immutable once built.
type Part struct {
	Name     string
	Type     PartType
	Position math.Vec3 // cube center
	Initial  math.Vec3 // rest position snapshot
	Scale    math.Vec3
	Color    math.Vec3

	// Attachments describes how neighbouring cubes connect. Nothing reads it
	// for animation yet, but layouts must round-trip it exactly.
	Attachments AttachmentMap
}

// NewPart creates a part with unit scale and the type's default color.
func NewPart(name string, typ PartType, position math.Vec3) Part {
	return Part{
		Name:     name,
		Type:     typ,
		Position: position,
		Initial:  position,
		Scale:    math.Vec3{X: 1, Y: 1, Z: 1},
		Color:    typ.DefaultColor(),
	}
}

// Model returns the part's rest model matrix: translate, then scale.
func (p Part) Model() math.Mat4 {
	return math.Identity().Translated(p.Position).Scaled(p.Scale)
}
