package system

import (
	"github.com/rs/zerolog"

	"github.com/milk9111/simcore/ecs"
	"github.com/milk9111/simcore/ecs/component"
)

// PhysicsSystem is the per-frame entry point of the simulation core: gravity
// for platform bodies, then collision resolution, then movement state change
// notifications.
type PhysicsSystem struct {
	gravity   *GravitySystem
	collision *CollisionSystem
	logger    zerolog.Logger

	tick   uint64
	states []trackedState
}

type trackedState struct {
	known bool
	state component.MovementState
}

func NewPhysicsSystem(opts ...Option) *PhysicsSystem {
	o := applyOptions(opts)
	return &PhysicsSystem{
		gravity:   NewGravitySystem(),
		collision: NewCollisionSystem(opts...),
		logger:    o.logger,
	}
}

// Tick returns the number of completed updates.
func (ps *PhysicsSystem) Tick() uint64 {
	if ps == nil {
		return 0
	}
	return ps.tick
}

// Reset forgets tracked movement states. Call it after the world is reloaded
// so stale ids do not produce transitions.
func (ps *PhysicsSystem) Reset() {
	if ps == nil {
		return
	}
	ps.states = nil
}

// Update advances the simulation by one step. Velocities are per-step
// displacements, so dt does not scale integration; it is accepted to fit the
// frame scheduler.
func (ps *PhysicsSystem) Update(w *ecs.World, dt float64) {
	if ps == nil || w == nil {
		return
	}
	ps.gravity.Update(w, dt)
	ps.collision.Update(w, dt)
	ps.publishStateChanges(w)
	ps.tick++
	ps.logger.Trace().Uint64("tick", ps.tick).Int("entities", w.EntityCount()).Msg("physics step")
}

func (ps *PhysicsSystem) publishStateChanges(w *ecs.World) {
	if n := w.EntityCount() + 1; len(ps.states) < n {
		ps.states = append(ps.states, make([]trackedState, n-len(ps.states))...)
	}
	for _, e := range w.Query(component.KindTransform, component.KindRigidBody2D) {
		rb := w.RigidBody(e)
		if !rb.IsPlatform() {
			continue
		}
		current := rb.MovementState()
		prev := ps.states[e]
		ps.states[e] = trackedState{known: true, state: current}
		if !prev.known || prev.state == current {
			continue
		}
		ps.logger.Debug().
			Uint32("entity", uint32(e)).
			Stringer("from", prev.state).
			Stringer("to", current).
			Msg("movement state changed")
		ecs.Publish(w.Events(), ecs.StateChangedEvent{Entity: e, From: prev.state, To: current})
	}
}
