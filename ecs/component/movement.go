package component

// MovementState is the platformer state derived from a body's flags and
// vertical velocity.
type MovementState uint8

const (
	StateGrounded MovementState = iota
	StateRising
	StateFalling
	StateFastFalling
)

func (s MovementState) String() string {
	switch s {
	case StateGrounded:
		return "grounded"
	case StateRising:
		return "rising"
	case StateFalling:
		return "falling"
	case StateFastFalling:
		return "fast_falling"
	default:
		return "unknown"
	}
}

// Airborne reports whether the state is one of the in-air states.
func (s MovementState) Airborne() bool {
	return s != StateGrounded
}

// MovementState derives the current state. Grounded wins over every other
// flag; an airborne body is rising while jumping upward or moving up.
func (rb *RigidBody2D) MovementState() MovementState {
	switch {
	case rb.IsGrounded:
		return StateGrounded
	case rb.IsFastFalling:
		return StateFastFalling
	case rb.Velocity.Y < 0:
		return StateRising
	default:
		return StateFalling
	}
}
