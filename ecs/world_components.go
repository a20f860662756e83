package ecs

import "github.com/milk9111/simcore/ecs/component"

// The accessors below require Has(e, kind). Built with the ecsdebug tag a
// violation panics; otherwise the default or stale slot is returned.

// Transform returns the transform slot of e.
func (w *World) Transform(e Entity) *component.Transform {
	w.assertHas(e, component.KindTransform)
	return &w.transforms[e]
}

// RigidBody returns the rigid body slot of e.
func (w *World) RigidBody(e Entity) *component.RigidBody2D {
	w.assertHas(e, component.KindRigidBody2D)
	return &w.bodies[e]
}

// Sprite returns the sprite slot of e.
func (w *World) Sprite(e Entity) *component.Sprite {
	w.assertHas(e, component.KindSprite)
	return &w.sprites[e]
}

// TileMap returns the tile map slot of e.
func (w *World) TileMap(e Entity) *component.TileMap2D {
	w.assertHas(e, component.KindTileMap2D)
	return &w.tilemaps[e]
}

// Animation returns the animation slot of e.
func (w *World) Animation(e Entity) *component.Animation {
	w.assertHas(e, component.KindAnimation)
	return &w.animations[e]
}

// Input returns the input slot of e.
func (w *World) Input(e Entity) *component.Input {
	w.assertHas(e, component.KindInput)
	return &w.inputs[e]
}

// SetTransform stores t for e and marks the kind present.
func (w *World) SetTransform(e Entity, t component.Transform) error {
	if err := w.attach(e, component.KindTransform); err != nil {
		return err
	}
	w.transforms[e] = t
	return nil
}

// SetRigidBody stores rb for e and marks the kind present.
func (w *World) SetRigidBody(e Entity, rb component.RigidBody2D) error {
	if err := w.attach(e, component.KindRigidBody2D); err != nil {
		return err
	}
	w.bodies[e] = rb
	return nil
}

// SetSprite stores s for e and marks the kind present.
func (w *World) SetSprite(e Entity, s component.Sprite) error {
	if err := w.attach(e, component.KindSprite); err != nil {
		return err
	}
	w.sprites[e] = s
	return nil
}

// SetTileMap stores m for e and marks the kind present.
func (w *World) SetTileMap(e Entity, m component.TileMap2D) error {
	if err := w.attach(e, component.KindTileMap2D); err != nil {
		return err
	}
	w.tilemaps[e] = m
	return nil
}

// SetAnimation stores a for e and marks the kind present.
func (w *World) SetAnimation(e Entity, a component.Animation) error {
	if err := w.attach(e, component.KindAnimation); err != nil {
		return err
	}
	w.animations[e] = a
	return nil
}

// SetInput stores in for e and marks the kind present.
func (w *World) SetInput(e Entity, in component.Input) error {
	if err := w.attach(e, component.KindInput); err != nil {
		return err
	}
	w.inputs[e] = in
	return nil
}
