package component

import "strings"

// Kind identifies one of the component tables owned by a world. The set is
// closed: every kind has a dense slice in ecs.World.
type Kind uint8

const (
	KindTransform Kind = iota
	KindRigidBody2D
	KindSprite
	KindTileMap2D
	KindAnimation
	KindInput

	kindCount
)

// KindCount is the number of component kinds.
const KindCount = int(kindCount)

var kindNames = [...]string{
	KindTransform:   "transform",
	KindRigidBody2D: "rigidbody2d",
	KindSprite:      "sprite",
	KindTileMap2D:   "tilemap2d",
	KindAnimation:   "animation",
	KindInput:       "input",
}

func (k Kind) Valid() bool {
	return k < kindCount
}

func (k Kind) String() string {
	if !k.Valid() {
		return "unknown"
	}
	return kindNames[k]
}

// Bit returns the mask bit for k.
func (k Kind) Bit() Mask {
	if !k.Valid() {
		return 0
	}
	return Mask(1) << k
}

// Mask records which kinds an entity owns.
type Mask uint32

// MaskOf builds a mask containing every given kind.
func MaskOf(kinds ...Kind) Mask {
	var m Mask
	for _, k := range kinds {
		m |= k.Bit()
	}
	return m
}

func (m Mask) Has(k Kind) bool {
	bit := k.Bit()
	return bit != 0 && m&bit == bit
}

// Contains reports whether every bit of sub is also set in m.
func (m Mask) Contains(sub Mask) bool {
	return m&sub == sub
}

func (m Mask) With(k Kind) Mask {
	return m | k.Bit()
}

func (m Mask) String() string {
	if m == 0 {
		return "none"
	}
	names := make([]string, 0, KindCount)
	for k := Kind(0); k < kindCount; k++ {
		if m.Has(k) {
			names = append(names, k.String())
		}
	}
	return strings.Join(names, "|")
}
