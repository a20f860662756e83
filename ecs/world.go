package ecs

import (
	"github.com/rotisserie/eris"

	"github.com/milk9111/simcore/ecs/component"
)

var (
	ErrInvalidEntity    = eris.New("ecs: invalid entity")
	ErrMissingComponent = eris.New("ecs: missing component")
)

// World owns every entity and one dense table per component kind. Each table
// is indexed directly by entity id and is as long as the entity table, so a
// slot exists for every entity whether or not it owns that kind. A slot may
// only be read when the entity's mask has the kind bit; unset slots hold
// zero values.
//
// Row 0 backs InvalidEntity and never carries components. Pointers returned
// by the accessors are invalidated by AddEntity, so callers must resolve
// them again every frame.
type World struct {
	names []string
	masks []component.Mask
	index map[string]Entity

	transforms []component.Transform
	bodies     []component.RigidBody2D
	sprites    []component.Sprite
	tilemaps   []component.TileMap2D
	animations []component.Animation
	inputs     []component.Input

	events EventBus
}

// NewWorld creates an empty world.
func NewWorld() *World {
	w := &World{}
	w.Reset()
	return w
}

// Reset drops every entity. Event subscriptions survive, so a reloaded scene
// keeps its listeners.
func (w *World) Reset() {
	if w == nil {
		return
	}
	w.names = []string{""}
	w.masks = []component.Mask{0}
	w.index = make(map[string]Entity)

	w.transforms = make([]component.Transform, 1)
	w.bodies = make([]component.RigidBody2D, 1)
	w.sprites = make([]component.Sprite, 1)
	w.tilemaps = make([]component.TileMap2D, 1)
	w.animations = make([]component.Animation, 1)
	w.inputs = make([]component.Input, 1)
}

// AddEntity appends a new entity with no components and returns its id.
// Every component table grows by one default slot.
func (w *World) AddEntity(name string) Entity {
	if w.names == nil {
		w.Reset()
	}
	e := Entity(len(w.names))
	w.names = append(w.names, name)
	w.masks = append(w.masks, 0)

	w.transforms = append(w.transforms, component.Transform{})
	w.bodies = append(w.bodies, component.RigidBody2D{})
	w.sprites = append(w.sprites, component.Sprite{})
	w.tilemaps = append(w.tilemaps, component.TileMap2D{})
	w.animations = append(w.animations, component.Animation{})
	w.inputs = append(w.inputs, component.Input{})

	if _, exists := w.index[name]; !exists && name != "" {
		w.index[name] = e
	}
	return e
}

// EntityCount returns the number of entities added since the last Reset.
func (w *World) EntityCount() int {
	if w == nil || len(w.names) == 0 {
		return 0
	}
	return len(w.names) - 1
}

// Contains reports whether e names an existing entity.
func (w *World) Contains(e Entity) bool {
	return w != nil && e.Valid() && int(e) < len(w.names)
}

// Has reports whether e owns a component of the given kind.
func (w *World) Has(e Entity, kind component.Kind) bool {
	if !w.Contains(e) {
		return false
	}
	return w.masks[e].Has(kind)
}

// Mask returns the component mask of e, or 0 for unknown ids.
func (w *World) Mask(e Entity) component.Mask {
	if !w.Contains(e) {
		return 0
	}
	return w.masks[e]
}

// Name returns the display name of e.
func (w *World) Name(e Entity) string {
	if !w.Contains(e) {
		return ""
	}
	return w.names[e]
}

// Lookup returns the first entity added under name.
func (w *World) Lookup(name string) (Entity, bool) {
	if w == nil {
		return InvalidEntity, false
	}
	e, ok := w.index[name]
	return e, ok
}

// Events returns the world event bus.
func (w *World) Events() *EventBus {
	if w == nil {
		return nil
	}
	return &w.events
}

func (w *World) attach(e Entity, kind component.Kind) error {
	if !w.Contains(e) {
		return eris.Wrapf(ErrInvalidEntity, "attach %s to entity %d", kind, e)
	}
	w.masks[e] = w.masks[e].With(kind)
	return nil
}
