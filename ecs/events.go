package ecs

import (
	"reflect"

	"github.com/milk9111/simcore/ecs/component"
)

// EventBus delivers events synchronously. Publish calls every handler for
// the event type, in subscription order, before returning; nothing is
// queued. A handler that mutates the world during a physics tick is seen by
// entities resolved after it.
type EventBus struct {
	handlers map[reflect.Type][]any
}

// Subscribe registers handler for events of type T.
func Subscribe[T any](bus *EventBus, handler func(T)) {
	if bus == nil || handler == nil {
		return
	}
	if bus.handlers == nil {
		bus.handlers = make(map[reflect.Type][]any)
	}
	t := reflect.TypeFor[T]()
	bus.handlers[t] = append(bus.handlers[t], handler)
}

// Publish sends event to every handler subscribed to T.
func Publish[T any](bus *EventBus, event T) {
	if bus == nil || len(bus.handlers) == 0 {
		return
	}
	for _, h := range bus.handlers[reflect.TypeFor[T]()] {
		h.(func(T))(event)
	}
}

// Clear removes every subscription.
func (bus *EventBus) Clear() {
	if bus == nil {
		return
	}
	bus.handlers = nil
}

// CollisionEvent is published when a moving entity overlaps another body.
type CollisionEvent struct {
	Entity Entity
	Other  Entity
}

// TileCollisionEvent is published when a moving entity overlaps a non-empty
// cell of a collision layer.
type TileCollisionEvent struct {
	Entity  Entity
	TileMap Entity
	Layer   string
	Column  int
	Row     int
	Tile    int
}

// GroundedEvent is published on the airborne to grounded edge only.
type GroundedEvent struct {
	Entity Entity
}

// AirborneEvent is published when a grounded platform body loses vertical
// contact.
type AirborneEvent struct {
	Entity Entity
}

// JumpEvent is published when a jump impulse is applied to a grounded body.
type JumpEvent struct {
	Entity  Entity
	Impulse float64
}

// StateChangedEvent is published when a body's derived movement state
// differs from the previous tick's.
type StateChangedEvent struct {
	Entity Entity
	From   component.MovementState
	To     component.MovementState
}
