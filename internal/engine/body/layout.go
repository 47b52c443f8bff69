package body

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/cubeman/pkg/math"
)

// humanoidLayout is the built-in figure.
//
//go:embed humanoid.yaml
var humanoidLayout []byte

// ErrBadVector is returned for a vector that does not have three components.
var ErrBadVector = errors.New("vector must have 3 components")

type layoutFile struct {
	Parts []partSpec `yaml:"parts"`
}

type partSpec struct {
	Name        string           `yaml:"name"`
	Type        string           `yaml:"type"`
	Position    []float32        `yaml:"position,flow"`
	Scale       []float32        `yaml:"scale,flow,omitempty"`
	Color       []float32        `yaml:"color,flow,omitempty"`
	Attachments []attachmentSpec `yaml:"attachments,omitempty"`
}

type attachmentSpec struct {
	Offset []float32 `yaml:"offset,flow"`
	State  string    `yaml:"state"`
}

// Default returns the built-in humanoid.
func Default() (*Body, error) {
	b, err := Decode(humanoidLayout)
	if err != nil {
		return nil, fmt.Errorf("built-in layout: %w", err)
	}
	return b, nil
}

// LoadFile reads a layout from a YAML file.
func LoadFile(path string) (*Body, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	b, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("layout %s: %w", path, err)
	}
	return b, nil
}

// Decode parses a YAML layout. Missing scale defaults to 1, missing color
// to the type's default color.
func Decode(data []byte) (*Body, error) {
	var f layoutFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}

	b := New()
	for i, spec := range f.Parts {
		p, err := spec.part()
		if err != nil {
			return nil, fmt.Errorf("part %d (%s): %w", i, spec.Name, err)
		}
		b.Add(p)
	}
	return b, nil
}

// Encode writes a body back to YAML in the same shape Decode reads.
func Encode(b *Body) ([]byte, error) {
	f := layoutFile{Parts: make([]partSpec, 0, b.Len())}
	for _, p := range b.Parts() {
		spec := partSpec{
			Name:     p.Name,
			Type:     p.Type.String(),
			Position: vecSlice(p.Position),
			Scale:    vecSlice(p.Scale),
			Color:    vecSlice(p.Color),
		}
		for _, e := range p.Attachments.Entries() {
			spec.Attachments = append(spec.Attachments, attachmentSpec{
				Offset: vecSlice(e.Offset),
				State:  e.State.String(),
			})
		}
		f.Parts = append(f.Parts, spec)
	}
	return yaml.Marshal(&f)
}

func (s partSpec) part() (Part, error) {
	typ, err := ParsePartType(s.Type)
	if err != nil {
		return Part{}, err
	}
	pos, err := toVec3(s.Position)
	if err != nil {
		return Part{}, fmt.Errorf("position: %w", err)
	}

	p := NewPart(s.Name, typ, pos)
	if s.Scale != nil {
		if p.Scale, err = toVec3(s.Scale); err != nil {
			return Part{}, fmt.Errorf("scale: %w", err)
		}
	}
	if s.Color != nil {
		if p.Color, err = toVec3(s.Color); err != nil {
			return Part{}, fmt.Errorf("color: %w", err)
		}
	}

	for _, a := range s.Attachments {
		offset, err := toVec3(a.Offset)
		if err != nil {
			return Part{}, fmt.Errorf("attachment offset: %w", err)
		}
		state, err := ParseAttachment(a.State)
		if err != nil {
			return Part{}, err
		}
		if err := p.Attachments.Set(offset, state); err != nil {
			return Part{}, err
		}
	}
	return p, nil
}

func toVec3(v []float32) (math.Vec3, error) {
	if len(v) != 3 {
		return math.Vec3{}, fmt.Errorf("%w: got %d", ErrBadVector, len(v))
	}
	return math.Vec3{X: v[0], Y: v[1], Z: v[2]}, nil
}

func vecSlice(v math.Vec3) []float32 {
	return []float32{v.X, v.Y, v.Z}
}
