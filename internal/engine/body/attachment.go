package body

import (
	"errors"
	"fmt"
	"slices"

	"github.com/Faultbox/cubeman/pkg/math"
)

// Attachment says whether a neighbour slot holds a connected part.
type Attachment uint8

const (
	Absent  Attachment = 0
	Fixed   Attachment = 1
	Movable Attachment = 2
)

var (
	// ErrUnknownAttachment is returned for an attachment name outside the set.
	ErrUnknownAttachment = errors.New("unknown attachment state")
	// ErrUnknownOffset is returned for a key that is not a neighbour offset.
	ErrUnknownOffset = errors.New("not a neighbour offset")
)

// String returns the layout name of the state.
func (a Attachment) String() string {
	switch a {
	case Absent:
		return "absent"
	case Fixed:
		return "fixed"
	case Movable:
		return "movable"
	default:
		return fmt.Sprintf("Attachment(%d)", uint8(a))
	}
}

// ParseAttachment converts a layout name to an Attachment.
func ParseAttachment(s string) (Attachment, error) {
	switch s {
	case "absent":
		return Absent, nil
	case "fixed":
		return Fixed, nil
	case "movable":
		return Movable, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAttachment, s)
}

// NeighborOffsets lists the 26 face, edge and corner directions of a unit
// cube in Vec3.Less order. Components are exactly -1, 0 or 1, so keys built
// from them compare bit-equal; offsets produced by any other arithmetic
// (0.1*10, rotated vectors) will not match.
var NeighborOffsets = buildNeighborOffsets()

func buildNeighborOffsets() []math.Vec3 {
	offsets := make([]math.Vec3, 0, 26)
	for x := -1; x <= 1; x++ {
		for y := -1; y <= 1; y++ {
			for z := -1; z <= 1; z++ {
				if x == 0 && y == 0 && z == 0 {
					continue
				}
				offsets = append(offsets, math.Vec3{X: float32(x), Y: float32(y), Z: float32(z)})
			}
		}
	}
	return offsets
}

// IsNeighborOffset reports whether v is one of NeighborOffsets.
func IsNeighborOffset(v math.Vec3) bool {
	_, found := slices.BinarySearchFunc(NeighborOffsets, v, math.Vec3.Compare)
	return found
}

// AttachmentEntry is one slot of an AttachmentMap.
type AttachmentEntry struct {
	Offset math.Vec3
	State  Attachment
}

// AttachmentMap is an ordered map from neighbour offset to attachment state,
// sorted by Vec3.Less. Explicit Absent entries are kept.
type AttachmentMap struct {
	entries []AttachmentEntry
}

// Set stores the state for an offset.
func (m *AttachmentMap) Set(offset math.Vec3, state Attachment) error {
	if !IsNeighborOffset(offset) {
		return fmt.Errorf("%w: %v", ErrUnknownOffset, offset)
	}
	if state > Movable {
		return fmt.Errorf("%w: %d", ErrUnknownAttachment, state)
	}

	i, found := slices.BinarySearchFunc(m.entries, offset, func(e AttachmentEntry, v math.Vec3) int {
		return e.Offset.Compare(v)
	})
	if found {
		m.entries[i].State = state
		return nil
	}
	m.entries = slices.Insert(m.entries, i, AttachmentEntry{Offset: offset, State: state})
	return nil
}

// Get returns the state stored for offset and whether a slot exists.
func (m AttachmentMap) Get(offset math.Vec3) (Attachment, bool) {
	i, found := slices.BinarySearchFunc(m.entries, offset, func(e AttachmentEntry, v math.Vec3) int {
		return e.Offset.Compare(v)
	})
	if !found {
		return Absent, false
	}
	return m.entries[i].State, true
}

// Len returns the number of stored slots.
func (m AttachmentMap) Len() int {
	return len(m.entries)
}

// Entries returns a copy of the slots in key order.
func (m AttachmentMap) Entries() []AttachmentEntry {
	return slices.Clone(m.entries)
}

// Equal reports whether both maps hold the same slots.
func (m AttachmentMap) Equal(other AttachmentMap) bool {
	return slices.Equal(m.entries, other.entries)
}
