package system

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
	"gotest.tools/v3/assert"

	"github.com/milk9111/simcore/ecs"
	"github.com/milk9111/simcore/ecs/component"
)

func vec(x, y float64) r3.Vec {
	return r3.Vec{X: x, Y: y}
}

func addBody(t *testing.T, w *ecs.World, name string, pos, size r3.Vec, rb component.RigidBody2D) ecs.Entity {
	t.Helper()
	e := w.AddEntity(name)
	assert.NilError(t, w.SetTransform(e, component.Transform{Position: pos, Size: size, Scale: 1}))
	assert.NilError(t, w.SetRigidBody(e, rb))
	return e
}

func platformBody(gravity, maxFall float64) component.RigidBody2D {
	return component.RigidBody2D{
		GameType:           component.GameTypePlatform,
		Gravity:            gravity,
		MaxFallSpeed:       maxFall,
		FastFallMultiplier: 2,
	}
}

// recorder collects every physics event published on a world.
type recorder struct {
	collisions []ecs.CollisionEvent
	tiles      []ecs.TileCollisionEvent
	grounded   []ecs.GroundedEvent
	airborne   []ecs.AirborneEvent
	jumps      []ecs.JumpEvent
	states     []ecs.StateChangedEvent
}

func record(w *ecs.World) *recorder {
	r := &recorder{}
	bus := w.Events()
	ecs.Subscribe(bus, func(e ecs.CollisionEvent) { r.collisions = append(r.collisions, e) })
	ecs.Subscribe(bus, func(e ecs.TileCollisionEvent) { r.tiles = append(r.tiles, e) })
	ecs.Subscribe(bus, func(e ecs.GroundedEvent) { r.grounded = append(r.grounded, e) })
	ecs.Subscribe(bus, func(e ecs.AirborneEvent) { r.airborne = append(r.airborne, e) })
	ecs.Subscribe(bus, func(e ecs.JumpEvent) { r.jumps = append(r.jumps, e) })
	ecs.Subscribe(bus, func(e ecs.StateChangedEvent) { r.states = append(r.states, e) })
	return r
}

func (r *recorder) collisionsFrom(e ecs.Entity) []ecs.CollisionEvent {
	var out []ecs.CollisionEvent
	for _, c := range r.collisions {
		if c.Entity == e {
			out = append(out, c)
		}
	}
	return out
}

func (r *recorder) tilesFrom(e ecs.Entity) []ecs.TileCollisionEvent {
	var out []ecs.TileCollisionEvent
	for _, c := range r.tiles {
		if c.Entity == e {
			out = append(out, c)
		}
	}
	return out
}

func step(w *ecs.World, ps *PhysicsSystem, ticks int) {
	for i := 0; i < ticks; i++ {
		ps.Update(w, 1.0/60.0)
	}
}
