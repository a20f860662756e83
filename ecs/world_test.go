package ecs

import (
	"testing"

	"github.com/rotisserie/eris"
	"gonum.org/v1/gonum/spatial/r3"
	"gotest.tools/v3/assert"

	"github.com/milk9111/simcore/ecs/component"
)

func TestWorldEntityLifecycle(t *testing.T) {
	cases := []struct {
		name   string
		create int
	}{
		{"none", 0},
		{"single", 1},
		{"three", 3},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, w.AddEntity("e"))
			}
			assert.Equal(t, w.EntityCount(), c.create)
			for i, e := range ents {
				assert.Equal(t, e, Entity(i+1), "ids start at 1 and grow by one")
				assert.Assert(t, w.Contains(e))
				assert.Equal(t, w.Mask(e), component.Mask(0))
			}
			assert.Assert(t, !w.Contains(InvalidEntity))
			assert.Assert(t, !w.Contains(Entity(c.create+1)))
		})
	}
}

func TestWorldTablesGrowWithEntities(t *testing.T) {
	w := NewWorld()
	e1 := w.AddEntity("a")
	w.AddEntity("b")
	w.AddEntity("c")

	for _, n := range []int{
		len(w.masks), len(w.names), len(w.transforms), len(w.bodies),
		len(w.sprites), len(w.tilemaps), len(w.animations), len(w.inputs),
	} {
		assert.Equal(t, n, w.EntityCount()+1)
	}

	assert.NilError(t, w.SetTransform(e1, component.Transform{Position: r3.Vec{X: 1}}))
	w.AddEntity("d")
	assert.Equal(t, w.Transform(e1).Position.X, 1.0, "data survives table growth")
}

func TestWorldComponents(t *testing.T) {
	tests := []struct {
		name string
		run  func(t *testing.T)
	}{
		{
			name: "set_marks_kind",
			run: func(t *testing.T) {
				w := NewWorld()
				e := w.AddEntity("player")
				assert.Assert(t, !w.Has(e, component.KindTransform))

				assert.NilError(t, w.SetTransform(e, component.Transform{Scale: 2}))
				assert.NilError(t, w.SetRigidBody(e, component.RigidBody2D{Gravity: 1}))

				assert.Assert(t, w.Has(e, component.KindTransform))
				assert.Assert(t, w.Has(e, component.KindRigidBody2D))
				assert.Assert(t, !w.Has(e, component.KindTileMap2D))
				assert.Equal(t, w.Transform(e).Scale, 2.0)
				assert.Equal(t, w.RigidBody(e).Gravity, 1.0)
				assert.Equal(t, w.Mask(e).String(), "transform|rigidbody2d")
			},
		},
		{
			name: "accessor_mutates_in_place",
			run: func(t *testing.T) {
				w := NewWorld()
				e := w.AddEntity("body")
				assert.NilError(t, w.SetRigidBody(e, component.RigidBody2D{}))

				w.RigidBody(e).Velocity.Y = 3
				assert.Equal(t, w.RigidBody(e).Velocity.Y, 3.0)
			},
		},
		{
			name: "every_kind",
			run: func(t *testing.T) {
				w := NewWorld()
				e := w.AddEntity("all")
				assert.NilError(t, w.SetTransform(e, component.Transform{}))
				assert.NilError(t, w.SetRigidBody(e, component.RigidBody2D{}))
				assert.NilError(t, w.SetSprite(e, component.Sprite{Image: "hero"}))
				assert.NilError(t, w.SetTileMap(e, component.TileMap2D{Width: 2}))
				assert.NilError(t, w.SetAnimation(e, component.Animation{Current: "run"}))
				assert.NilError(t, w.SetInput(e, component.Input{MoveX: 1}))

				for k := component.Kind(0); int(k) < component.KindCount; k++ {
					assert.Assert(t, w.Has(e, k), "missing %s", k)
				}
				assert.Equal(t, w.Sprite(e).Image, "hero")
				assert.Equal(t, w.TileMap(e).Width, 2)
				assert.Equal(t, w.Animation(e).Current, "run")
				assert.Equal(t, w.Input(e).MoveX, 1.0)
			},
		},
		{
			name: "invalid_entity",
			run: func(t *testing.T) {
				w := NewWorld()
				err := w.SetTransform(Entity(7), component.Transform{})
				assert.Assert(t, eris.Is(err, ErrInvalidEntity))
				err = w.SetRigidBody(InvalidEntity, component.RigidBody2D{})
				assert.Assert(t, eris.Is(err, ErrInvalidEntity))
				assert.Assert(t, !w.Has(Entity(7), component.KindTransform))
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, tc.run)
	}
}

func TestWorldQuery(t *testing.T) {
	w := NewWorld()
	e1 := w.AddEntity("a")
	e2 := w.AddEntity("b")
	e3 := w.AddEntity("c")

	assert.NilError(t, w.SetTransform(e1, component.Transform{}))
	assert.NilError(t, w.SetTransform(e2, component.Transform{}))
	assert.NilError(t, w.SetRigidBody(e2, component.RigidBody2D{}))
	assert.NilError(t, w.SetTransform(e3, component.Transform{}))
	assert.NilError(t, w.SetRigidBody(e3, component.RigidBody2D{}))
	assert.NilError(t, w.SetTileMap(e3, component.TileMap2D{}))

	tests := []struct {
		name  string
		kinds []component.Kind
		want  []Entity
	}{
		{"transform", []component.Kind{component.KindTransform}, []Entity{e1, e2, e3}},
		{"bodies", []component.Kind{component.KindTransform, component.KindRigidBody2D}, []Entity{e2, e3}},
		{"tilemaps", []component.Kind{component.KindTileMap2D}, []Entity{e3}},
		{"nobody", []component.Kind{component.KindInput}, []Entity{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.DeepEqual(t, w.Query(tc.kinds...), tc.want)
		})
	}

	first, ok := w.First(component.KindRigidBody2D)
	assert.Assert(t, ok)
	assert.Equal(t, first, e2)
	assert.DeepEqual(t, w.Entities(), []Entity{e1, e2, e3})
}

func TestWorldNamesAndReset(t *testing.T) {
	w := NewWorld()
	hero := w.AddEntity("hero")
	w.AddEntity("hero")
	w.AddEntity("")

	got, ok := w.Lookup("hero")
	assert.Assert(t, ok)
	assert.Equal(t, got, hero, "lookup returns the first entity with the name")
	assert.Equal(t, w.Name(hero), "hero")
	_, ok = w.Lookup("")
	assert.Assert(t, !ok)

	calls := 0
	Subscribe(w.Events(), func(GroundedEvent) { calls++ })

	w.Reset()
	assert.Equal(t, w.EntityCount(), 0)
	_, ok = w.Lookup("hero")
	assert.Assert(t, !ok)

	Publish(w.Events(), GroundedEvent{Entity: 1})
	assert.Equal(t, calls, 1, "subscriptions survive a reset")

	assert.Equal(t, w.AddEntity("again"), Entity(1))
}

func TestZeroWorldIsUsable(t *testing.T) {
	var w World
	e := w.AddEntity("late")
	assert.Equal(t, e, Entity(1))
	assert.NilError(t, w.SetTransform(e, component.Transform{}))
}
