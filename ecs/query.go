package ecs

import "github.com/milk9111/simcore/ecs/component"

// Query returns, in ascending id order, every entity owning all given kinds.
func (w *World) Query(kinds ...component.Kind) []Entity {
	return w.QueryMask(component.MaskOf(kinds...))
}

// QueryMask returns, in ascending id order, every entity whose mask
// contains mask.
func (w *World) QueryMask(mask component.Mask) []Entity {
	if w == nil {
		return nil
	}
	out := make([]Entity, 0, len(w.masks))
	for id := 1; id < len(w.masks); id++ {
		if w.masks[id].Contains(mask) {
			out = append(out, Entity(id))
		}
	}
	return out
}

// First returns the lowest-id entity owning all given kinds.
func (w *World) First(kinds ...component.Kind) (Entity, bool) {
	if w == nil {
		return InvalidEntity, false
	}
	mask := component.MaskOf(kinds...)
	for id := 1; id < len(w.masks); id++ {
		if w.masks[id].Contains(mask) {
			return Entity(id), true
		}
	}
	return InvalidEntity, false
}

// Entities returns every entity id in ascending order.
func (w *World) Entities() []Entity {
	return w.QueryMask(0)
}
