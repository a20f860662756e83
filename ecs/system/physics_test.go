package system

import (
	"testing"

	"gotest.tools/v3/assert"

	"github.com/milk9111/simcore/ecs"
	"github.com/milk9111/simcore/ecs/component"
)

func TestApplyGravity(t *testing.T) {
	tests := []struct {
		name     string
		rb       component.RigidBody2D
		steps    int
		wantVelY float64
	}{
		{
			name:     "clamped_at_max_fall_speed",
			rb:       component.RigidBody2D{Gravity: 2, MaxFallSpeed: 7},
			steps:    20,
			wantVelY: 7,
		},
		{
			name:     "unclamped_without_max_fall_speed",
			rb:       component.RigidBody2D{Gravity: 2},
			steps:    5,
			wantVelY: 10,
		},
		{
			name:     "fast_fall_scales_the_step",
			rb:       component.RigidBody2D{Gravity: 1, FastFallMultiplier: 3, IsFastFalling: true},
			steps:    2,
			wantVelY: 6,
		},
		{
			name: "fast_fall_ignored_while_rising",
			rb: component.RigidBody2D{
				Gravity:            1,
				FastFallMultiplier: 3,
				IsFastFalling:      true,
				Velocity:           vec(0, -5),
			},
			steps:    1,
			wantVelY: -4,
		},
		{
			name:     "upward_speed_is_not_clamped",
			rb:       component.RigidBody2D{Gravity: 1, MaxFallSpeed: 2, Velocity: vec(0, -20)},
			steps:    1,
			wantVelY: -19,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rb := tc.rb
			for i := 0; i < tc.steps; i++ {
				ApplyGravity(&rb)
			}
			assert.Equal(t, rb.Velocity.Y, tc.wantVelY)
		})
	}
}

func TestGravityOnlyAffectsPlatformBodies(t *testing.T) {
	w := ecs.NewWorld()
	platform := addBody(t, w, "platform", vec(0, 0), vec(10, 10), platformBody(2, 7))
	topDown := addBody(t, w, "topdown", vec(100, 0), vec(10, 10), component.RigidBody2D{Gravity: 2})
	ps := NewPhysicsSystem()

	step(w, ps, 20)

	assert.Equal(t, w.RigidBody(platform).Velocity.Y, 7.0)
	assert.Equal(t, w.RigidBody(topDown).Velocity.Y, 0.0)
	assert.Equal(t, w.Transform(topDown).Position.Y, 0.0)
	assert.Equal(t, ps.Tick(), uint64(20))
}

func TestMovementStateTransitions(t *testing.T) {
	setup := func(t *testing.T) (*ecs.World, *recorder, *PhysicsSystem, ecs.Entity) {
		w := ecs.NewWorld()
		rec := record(w)
		body := addBody(t, w, "player", vec(0, 0), vec(10, 10), platformBody(1, 10))
		addBody(t, w, "floor", vec(-45, 10), vec(100, 10), component.RigidBody2D{})
		ps := NewPhysicsSystem()
		step(w, ps, 1)
		assert.Equal(t, w.RigidBody(body).MovementState(), component.StateGrounded)
		assert.Equal(t, len(rec.states), 0, "first observation is not a transition")
		return w, rec, ps, body
	}

	t.Run("jump_rises_then_falls_then_lands", func(t *testing.T) {
		w, rec, ps, body := setup(t)

		assert.Assert(t, Jump(w, body, 3))
		assert.DeepEqual(t, rec.jumps, []ecs.JumpEvent{{Entity: body, Impulse: 3}})
		assert.Assert(t, w.RigidBody(body).IsGrounded)

		// -3 +1 = -2, -1, 0, then falling.
		step(w, ps, 1)
		assert.Equal(t, w.RigidBody(body).MovementState(), component.StateRising)
		assert.DeepEqual(t, rec.airborne, []ecs.AirborneEvent{{Entity: body}})
		step(w, ps, 2)
		assert.Equal(t, w.RigidBody(body).MovementState(), component.StateFalling)
		step(w, ps, 10)
		rb := w.RigidBody(body)
		assert.Assert(t, rb.IsGrounded)
		assert.Assert(t, !rb.IsJumping)
		assert.Equal(t, w.Transform(body).Position.Y, 0.0)

		assert.DeepEqual(t, rec.states, []ecs.StateChangedEvent{
			{Entity: body, From: component.StateGrounded, To: component.StateRising},
			{Entity: body, From: component.StateRising, To: component.StateFalling},
			{Entity: body, From: component.StateFalling, To: component.StateGrounded},
		})
		assert.DeepEqual(t, rec.airborne, []ecs.AirborneEvent{{Entity: body}})
		assert.Equal(t, len(rec.grounded), 2)
	})

	t.Run("fast_fall_cleared_on_landing", func(t *testing.T) {
		w, rec, ps, body := setup(t)

		assert.Assert(t, Jump(w, body, 3))
		step(w, ps, 3)
		SetFastFall(w, body, true)
		assert.Assert(t, w.RigidBody(body).IsFastFalling)
		step(w, ps, 1)
		assert.Equal(t, w.RigidBody(body).MovementState(), component.StateFastFalling)

		step(w, ps, 10)
		rb := w.RigidBody(body)
		assert.Assert(t, rb.IsGrounded)
		assert.Assert(t, !rb.IsFastFalling)
		assert.Equal(t, rec.states[len(rec.states)-1].To, component.StateGrounded)
	})

	t.Run("reset_forgets_states", func(t *testing.T) {
		w, rec, ps, body := setup(t)
		ps.Reset()
		assert.Assert(t, Jump(w, body, 3))
		step(w, ps, 1)
		assert.Equal(t, len(rec.states), 0)
	})
}

func TestJump(t *testing.T) {
	t.Run("requires_ground", func(t *testing.T) {
		w := ecs.NewWorld()
		rec := record(w)
		e := addBody(t, w, "player", vec(0, 0), vec(10, 10), platformBody(1, 10))
		assert.Assert(t, !Jump(w, e, 5))
		assert.Equal(t, w.RigidBody(e).Velocity.Y, 0.0)
		assert.Equal(t, len(rec.jumps), 0)
	})

	t.Run("without_rigid_body", func(t *testing.T) {
		w := ecs.NewWorld()
		e := w.AddEntity("ghost")
		assert.Assert(t, !Jump(w, e, 5))
	})
}

func TestSetFastFall(t *testing.T) {
	tests := []struct {
		name     string
		grounded bool
		velY     float64
		already  bool
		held     bool
		want     bool
	}{
		{name: "airborne_falling", velY: 1, held: true, want: true},
		{name: "airborne_at_apex", velY: 0, held: true, want: true},
		{name: "airborne_rising", velY: -1, held: true, want: false},
		{name: "grounded", grounded: true, held: true, want: false},
		{name: "released", velY: 1, already: true, held: false, want: false},
		{name: "held_while_rising_keeps_flag", velY: -1, already: true, held: true, want: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := ecs.NewWorld()
			rb := platformBody(1, 10)
			rb.IsGrounded = tc.grounded
			rb.IsFastFalling = tc.already
			rb.Velocity = vec(0, tc.velY)
			e := addBody(t, w, "player", vec(0, 0), vec(10, 10), rb)

			SetFastFall(w, e, tc.held)
			assert.Equal(t, w.RigidBody(e).IsFastFalling, tc.want)
		})
	}
}

func TestPlatformerController(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		p := NewPlatformerController(0, -1)
		assert.Equal(t, p.MoveSpeed, defaultMoveSpeed)
		assert.Equal(t, p.JumpImpulse, defaultJumpImpulse)
	})

	t.Run("top_down_moves_on_both_axes", func(t *testing.T) {
		w := ecs.NewWorld()
		e := addBody(t, w, "walker", vec(0, 0), vec(10, 10), component.RigidBody2D{})
		assert.NilError(t, w.SetInput(e, component.Input{MoveX: 1, MoveY: -0.5}))

		NewPlatformerController(4, 10).Update(w, 0)
		assert.Equal(t, w.RigidBody(e).Velocity, vec(4, -2))
	})

	t.Run("platform_jump_consumes_press", func(t *testing.T) {
		w := ecs.NewWorld()
		rec := record(w)
		rb := platformBody(1, 10)
		rb.IsGrounded = true
		e := addBody(t, w, "player", vec(0, 0), vec(10, 10), rb)
		assert.NilError(t, w.SetInput(e, component.Input{MoveX: -1, MoveY: 1, JumpPressed: true}))

		NewPlatformerController(3, 8).Update(w, 0)

		got := w.RigidBody(e)
		assert.Equal(t, got.Velocity, vec(-3, -8))
		assert.Assert(t, got.IsJumping)
		assert.Assert(t, got.IsGrounded, "lift-off is left to the collision pass")
		assert.Assert(t, !w.Input(e).JumpPressed)
		assert.Equal(t, len(rec.jumps), 1)
	})

	t.Run("jump_takeoff_publishes_airborne", func(t *testing.T) {
		w := ecs.NewWorld()
		rec := record(w)
		e := addBody(t, w, "player", vec(0, 0), vec(10, 10), platformBody(1, 10))
		addBody(t, w, "floor", vec(-45, 10), vec(100, 10), component.RigidBody2D{})
		ps := NewPhysicsSystem()
		step(w, ps, 1)
		assert.Assert(t, w.RigidBody(e).IsGrounded)

		assert.NilError(t, w.SetInput(e, component.Input{JumpPressed: true}))
		NewPlatformerController(3, 3).Update(w, 0)
		step(w, ps, 1)

		rb := w.RigidBody(e)
		assert.Assert(t, !rb.IsGrounded)
		assert.Equal(t, rb.Velocity.Y, -2.0)
		assert.DeepEqual(t, rec.airborne, []ecs.AirborneEvent{{Entity: e}})
	})

	t.Run("airborne_press_is_dropped", func(t *testing.T) {
		w := ecs.NewWorld()
		rec := record(w)
		e := addBody(t, w, "player", vec(0, 0), vec(10, 10), platformBody(1, 10))
		assert.NilError(t, w.SetInput(e, component.Input{JumpPressed: true, FastFallHeld: true}))

		NewPlatformerController(3, 8).Update(w, 0)

		assert.Equal(t, len(rec.jumps), 0)
		assert.Assert(t, !w.Input(e).JumpPressed)
		assert.Assert(t, w.RigidBody(e).IsFastFalling)
	})
}
