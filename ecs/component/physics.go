package component

import (
	"strings"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// MassTier controls whether a body takes part in collision tests. Only
// MassNoCollision changes behavior today; it removes the body from both
// sides of every pair.
type MassTier uint8

const (
	MassCollision MassTier = iota
	MassNoCollision
	MassSlow
)

func (m MassTier) String() string {
	switch m {
	case MassCollision:
		return "Collision"
	case MassNoCollision:
		return "NoCollision"
	case MassSlow:
		return "Slow"
	default:
		return "unknown"
	}
}

// ParseMassTier reads a tier name case-insensitively.
func ParseMassTier(s string) (MassTier, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "collision":
		return MassCollision, true
	case "nocollision", "no_collision":
		return MassNoCollision, true
	case "slow":
		return MassSlow, true
	default:
		return MassCollision, false
	}
}

// GameType selects the movement model. Only platform bodies receive gravity
// and the grounded/airborne transitions.
type GameType uint8

const (
	GameTypeTopDown GameType = iota
	GameTypePlatform
)

func (g GameType) String() string {
	switch g {
	case GameTypeTopDown:
		return "TopDown"
	case GameTypePlatform:
		return "Platform"
	default:
		return "unknown"
	}
}

// ParseGameType reads a game type name case-insensitively.
func ParseGameType(s string) (GameType, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "topdown", "top_down":
		return GameTypeTopDown, true
	case "platform", "platformer":
		return GameTypePlatform, true
	default:
		return GameTypeTopDown, false
	}
}

// Contacts holds the blocked axes found for a body during the current tick.
// Flags are only ever set while a tick is resolving.
type Contacts struct {
	Bottom bool
	Top    bool
	Left   bool
	Right  bool
}

func (c Contacts) Vertical() bool {
	return c.Bottom || c.Top
}

func (c Contacts) Horizontal() bool {
	return c.Left || c.Right
}

func (c Contacts) Any() bool {
	return c.Vertical() || c.Horizontal()
}

// Merge ORs other into c.
func (c *Contacts) Merge(other Contacts) {
	c.Bottom = c.Bottom || other.Bottom
	c.Top = c.Top || other.Top
	c.Left = c.Left || other.Left
	c.Right = c.Right || other.Right
}

// RigidBody2D is the kinematic state of an entity. Physics models X and Y;
// Z velocity is carried through unchanged.
type RigidBody2D struct {
	Velocity        r3.Vec
	CollisionOffset r2.Vec
	Mass            MassTier
	GameType        GameType

	Gravity            float64
	MaxFallSpeed       float64
	FastFallMultiplier float64

	IsGrounded    bool
	IsJumping     bool
	IsFastFalling bool

	Contacts Contacts
}

// Collides reports whether the body takes part in collision tests.
func (rb *RigidBody2D) Collides() bool {
	return rb.Mass != MassNoCollision
}

// IsPlatform reports whether the body uses the platformer movement model.
func (rb *RigidBody2D) IsPlatform() bool {
	return rb.GameType == GameTypePlatform
}
