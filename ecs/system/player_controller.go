package system

import (
	"github.com/rs/zerolog"

	"github.com/milk9111/simcore/ecs"
	"github.com/milk9111/simcore/ecs/component"
)

const (
	defaultMoveSpeed   = 4.0
	defaultJumpImpulse = 10.0
)

// PlatformerController turns Input intents into velocity and movement
// flags. It never runs inside the physics step; the resolver only reacts to
// what the controller has set.
type PlatformerController struct {
	MoveSpeed   float64
	JumpImpulse float64

	logger zerolog.Logger
}

func NewPlatformerController(moveSpeed, jumpImpulse float64, opts ...Option) *PlatformerController {
	o := applyOptions(opts)
	if moveSpeed <= 0 {
		moveSpeed = defaultMoveSpeed
	}
	if jumpImpulse <= 0 {
		jumpImpulse = defaultJumpImpulse
	}
	return &PlatformerController{
		MoveSpeed:   moveSpeed,
		JumpImpulse: jumpImpulse,
		logger:      o.logger,
	}
}

func (p *PlatformerController) Update(w *ecs.World, dt float64) {
	if p == nil || w == nil {
		return
	}
	for _, e := range w.Query(component.KindInput, component.KindRigidBody2D) {
		input := *w.Input(e)
		rb := w.RigidBody(e)

		rb.Velocity.X = input.MoveX * p.MoveSpeed
		if !rb.IsPlatform() {
			rb.Velocity.Y = input.MoveY * p.MoveSpeed
			continue
		}

		if input.JumpPressed {
			Jump(w, e, p.JumpImpulse)
			w.Input(e).JumpPressed = false
		}
		SetFastFall(w, e, input.FastFallHeld)
	}
}

// Jump applies an upward impulse to a grounded body and reports whether it
// did. The body stays grounded until the next collision pass lifts it off,
// which publishes the airborne transition.
func Jump(w *ecs.World, e ecs.Entity, impulse float64) bool {
	if !w.Has(e, component.KindRigidBody2D) {
		return false
	}
	rb := w.RigidBody(e)
	if !rb.IsGrounded {
		return false
	}
	rb.Velocity.Y = -impulse
	rb.IsJumping = true
	rb.IsFastFalling = false
	ecs.Publish(w.Events(), ecs.JumpEvent{Entity: e, Impulse: impulse})
	return true
}

// SetFastFall updates the fast-fall flag from the held state of the input.
// Fast-fall only engages while airborne and not moving upward; releasing
// the input always clears it.
func SetFastFall(w *ecs.World, e ecs.Entity, held bool) {
	if !w.Has(e, component.KindRigidBody2D) {
		return
	}
	rb := w.RigidBody(e)
	if !held {
		rb.IsFastFalling = false
		return
	}
	if !rb.IsGrounded && rb.Velocity.Y >= 0 {
		rb.IsFastFalling = true
	}
}
