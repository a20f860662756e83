package system

import (
	"github.com/milk9111/simcore/ecs"
	"github.com/milk9111/simcore/ecs/component"
)

// GravitySystem accelerates every platform body downward. It runs before
// collision so the resolver sees the new vertical velocity.
type GravitySystem struct{}

func NewGravitySystem() *GravitySystem {
	return &GravitySystem{}
}

func (g *GravitySystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}
	for _, e := range w.Query(component.KindRigidBody2D) {
		rb := w.RigidBody(e)
		if !rb.IsPlatform() {
			continue
		}
		ApplyGravity(rb)
	}
}

// ApplyGravity performs one gravity step on rb. While fast-falling and not
// moving upward the step is scaled by FastFallMultiplier. Downward speed is
// capped at MaxFallSpeed when it is positive.
func ApplyGravity(rb *component.RigidBody2D) {
	step := rb.Gravity
	if rb.IsFastFalling && rb.Velocity.Y >= 0 {
		step = rb.Gravity * rb.FastFallMultiplier
	}
	rb.Velocity.Y += step
	if rb.MaxFallSpeed > 0 && rb.Velocity.Y > rb.MaxFallSpeed {
		rb.Velocity.Y = rb.MaxFallSpeed
	}
}
