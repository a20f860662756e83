package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/milk9111/simcore/common"
	"github.com/milk9111/simcore/ecs"
	"github.com/milk9111/simcore/ecs/component"
)

// CollisionSystem moves every body by one velocity step and blocks the axes
// on which it would run into another body or a collision tile.
//
// Bodies are resolved one at a time in ascending id order against the
// current positions of every other body, so a body resolved later sees the
// already committed positions of earlier ones. The scan is pairwise with no
// broad phase.
type CollisionSystem struct {
	logger zerolog.Logger
}

func NewCollisionSystem(opts ...Option) *CollisionSystem {
	o := applyOptions(opts)
	return &CollisionSystem{logger: o.logger}
}

func (cs *CollisionSystem) Update(w *ecs.World, dt float64) {
	if cs == nil || w == nil {
		return
	}
	bodies := w.Query(component.KindTransform, component.KindRigidBody2D)
	for _, e := range bodies {
		cs.resolve(w, e, bodies)
	}
}

// ResolveAxis decides which axis of a moving box is blocked by obstacle,
// using the smaller penetration depth. An axis is only blocked when the
// velocity points into the obstacle.
func ResolveAxis(box, obstacle cp.BB, velocity r3.Vec) component.Contacts {
	overlapLeft := box.R - obstacle.L
	overlapRight := obstacle.R - box.L
	overlapTop := common.Bottom(box) - common.Top(obstacle)
	overlapBottom := common.Bottom(obstacle) - common.Top(box)

	minX := math.Min(overlapLeft, overlapRight)
	minY := math.Min(overlapTop, overlapBottom)

	var c component.Contacts
	if minY < minX {
		if overlapTop < overlapBottom && velocity.Y > 0 {
			c.Bottom = true
		} else if overlapBottom < overlapTop && velocity.Y < 0 {
			c.Top = true
		}
		return c
	}
	if overlapLeft < overlapRight && velocity.X > 0 {
		c.Right = true
	} else if overlapRight < overlapLeft && velocity.X < 0 {
		c.Left = true
	}
	return c
}

// BodyBox returns the collision box of a body placed at pos.
func BodyBox(pos r3.Vec, t *component.Transform, rb *component.RigidBody2D) cp.BB {
	return common.Box(pos.X, pos.Y, t.ScaledWidth(), t.ScaledHeight()).
		Offset(cp.Vector{X: rb.CollisionOffset.X, Y: rb.CollisionOffset.Y})
}

// TileBox returns the world rectangle of cell (col,row) of a tile map whose
// owner has transform t. Tile maps render center-anchored, so the grid is
// shifted back by half the owner's scaled size.
func TileBox(t *component.Transform, m *component.TileMap2D, col, row int) cp.BB {
	x, y := tileGridOrigin(t)
	return common.Box(x, y, m.TileWidth*t.Scale, m.TileHeight*t.Scale).
		Offset(cp.Vector{X: t.Scale * float64(col) * m.TileWidth, Y: t.Scale * float64(row) * m.TileHeight})
}

func tileGridOrigin(t *component.Transform) (float64, float64) {
	return t.Position.X - t.Size.X*0.5*t.Scale,
		t.Position.Y - t.Size.Y*0.5*t.Scale
}

func (cs *CollisionSystem) resolve(w *ecs.World, e ecs.Entity, bodies []ecs.Entity) {
	t := *w.Transform(e)
	rb := w.RigidBody(e)
	rb.Contacts = component.Contacts{}
	velocity := rb.Velocity
	collides := rb.Collides()

	next := r3.Add(t.Position, velocity)
	box := BodyBox(next, &t, rb)
	solid := t.HasFootprint()

	var contacts component.Contacts
	if collides {
		for _, other := range bodies {
			if other == e || !w.RigidBody(other).Collides() {
				continue
			}
			if w.Has(other, component.KindTileMap2D) {
				contacts.Merge(cs.collideTiles(w, e, other, box, velocity, solid))
				continue
			}

			ot := w.Transform(other)
			if !ot.HasFootprint() {
				continue
			}
			otherBox := BodyBox(ot.Position, ot, w.RigidBody(other))
			if !common.Overlaps(box, otherBox) {
				continue
			}
			if solid {
				contacts.Merge(ResolveAxis(box, otherBox, velocity))
			}
			cs.logger.Trace().
				Uint32("entity", uint32(e)).
				Uint32("other", uint32(other)).
				Msg("collision")
			ecs.Publish(w.Events(), ecs.CollisionEvent{Entity: e, Other: other})
		}
	}

	cs.commit(w, e, velocity, contacts)
}

func (cs *CollisionSystem) collideTiles(w *ecs.World, e, owner ecs.Entity, box cp.BB, velocity r3.Vec, solid bool) component.Contacts {
	var contacts component.Contacts

	// Copy what the scan needs; handlers may grow the tables mid-scan.
	t := *w.Transform(owner)
	m := *w.TileMap(owner)
	if m.Width <= 0 || m.Height <= 0 {
		return contacts
	}
	col0, col1, row0, row1 := candidateCells(&t, &m, box)

	for _, layer := range m.CollisionLayers() {
		name := m.Layers[layer].Name
		for row := row0; row <= row1; row++ {
			for col := col0; col <= col1; col++ {
				tile := m.Tile(layer, col, row)
				if tile == 0 {
					continue
				}
				cell := TileBox(&t, &m, col, row)
				if !common.Overlaps(box, cell) {
					continue
				}
				if solid {
					contacts.Merge(ResolveAxis(box, cell, velocity))
				}
				cs.logger.Trace().
					Uint32("entity", uint32(e)).
					Uint32("tilemap", uint32(owner)).
					Str("layer", name).
					Int("col", col).
					Int("row", row).
					Msg("tile collision")
				ecs.Publish(w.Events(), ecs.TileCollisionEvent{
					Entity:  e,
					TileMap: owner,
					Layer:   name,
					Column:  col,
					Row:     row,
					Tile:    tile,
				})
			}
		}
	}
	return contacts
}

// candidateCells narrows the scan to the cells box can touch. Cells outside
// the range cannot overlap box, so results and their row-major order match a
// scan of the full grid.
func candidateCells(t *component.Transform, m *component.TileMap2D, box cp.BB) (col0, col1, row0, row1 int) {
	col0, col1 = 0, m.Width-1
	row0, row1 = 0, m.Height-1

	cellW := m.TileWidth * t.Scale
	cellH := m.TileHeight * t.Scale
	if cellW <= 0 || cellH <= 0 {
		return col0, col1, row0, row1
	}
	x, y := tileGridOrigin(t)
	col0 = cellIndex((box.L-x)/cellW, col0, col1)
	col1 = cellIndex((box.R-x)/cellW, col0, col1)
	row0 = cellIndex((common.Top(box)-y)/cellH, row0, row1)
	row1 = cellIndex((common.Bottom(box)-y)/cellH, row0, row1)
	return col0, col1, row0, row1
}

func cellIndex(f float64, lo, hi int) int {
	if math.IsNaN(f) {
		return lo
	}
	return int(common.Clamp(math.Floor(f), float64(lo), float64(hi)))
}

// commit applies the blocked axes found for e: blocked velocity components
// are zeroed, the position advances along every unblocked axis, and the
// grounded flags and their transition events are updated.
func (cs *CollisionSystem) commit(w *ecs.World, e ecs.Entity, velocity r3.Vec, contacts component.Contacts) {
	rb := w.RigidBody(e)
	t := w.Transform(e)
	rb.Contacts = contacts

	if !contacts.Horizontal() {
		t.Position.X += velocity.X
	} else {
		rb.Velocity.X = 0
	}
	if !contacts.Vertical() {
		t.Position.Y += velocity.Y
	} else {
		rb.Velocity.Y = 0
	}
	t.Position.Z += velocity.Z

	landed := false
	tookOff := false
	switch {
	case contacts.Bottom:
		landed = !rb.IsGrounded
		rb.IsGrounded = true
		rb.IsJumping = false
		rb.IsFastFalling = false
	case rb.IsPlatform() && !contacts.Vertical() && rb.IsGrounded:
		rb.IsGrounded = false
		tookOff = true
	}

	if landed {
		cs.logger.Debug().Uint32("entity", uint32(e)).Str("name", w.Name(e)).Msg("grounded")
		ecs.Publish(w.Events(), ecs.GroundedEvent{Entity: e})
	}
	if tookOff {
		cs.logger.Debug().Uint32("entity", uint32(e)).Str("name", w.Name(e)).Msg("airborne")
		ecs.Publish(w.Events(), ecs.AirborneEvent{Entity: e})
	}
}
