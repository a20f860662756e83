package scene

import (
	"fmt"
	"image"

	"github.com/rotisserie/eris"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/milk9111/simcore/config"
	"github.com/milk9111/simcore/ecs"
	"github.com/milk9111/simcore/ecs/component"
)

// Diagnostic reports a value in the description that was replaced by a
// default while building.
type Diagnostic struct {
	Entity  string
	Field   string
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s.%s: %s", d.Entity, d.Field, d.Message)
}

// maxTileCells bounds width*height of a tile map so a malformed grid cannot
// overflow the cell count or allocate without limit.
const maxTileCells = 1 << 22

type builder struct {
	defaults config.PhysicsConfig
	diags    []Diagnostic
	entity   string
}

func (b *builder) warnf(field, format string, args ...any) {
	b.diags = append(b.diags, Diagnostic{
		Entity:  b.entity,
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	})
}

// Build adds every entity of the scene to w in declaration order. Platform
// bodies that leave gravity parameters at zero take them from defaults.
// Values that cannot be used as written are replaced and reported as
// diagnostics; an error is only returned when the world rejects a
// component.
func (s *Scene) Build(w *ecs.World, defaults config.PhysicsConfig) ([]Diagnostic, error) {
	if s == nil {
		return nil, ErrNoScene
	}
	if w == nil {
		return nil, eris.New("scene: nil world")
	}

	b := &builder{defaults: defaults}
	for i, spec := range s.Entities {
		b.entity = spec.Name
		if b.entity == "" {
			b.entity = fmt.Sprintf("#%d", i)
		}
		if err := b.add(w, spec); err != nil {
			return b.diags, eris.Wrapf(err, "scene %s: entity %s", s.Name, b.entity)
		}
	}
	return b.diags, nil
}

func (b *builder) add(w *ecs.World, spec EntitySpec) error {
	e := w.AddEntity(spec.Name)

	if spec.Transform != nil {
		if err := w.SetTransform(e, b.transform(spec.Transform)); err != nil {
			return err
		}
	}
	if spec.RigidBody != nil {
		if err := w.SetRigidBody(e, b.rigidBody(spec.RigidBody)); err != nil {
			return err
		}
	}
	if spec.TileMap != nil {
		if err := w.SetTileMap(e, b.tileMap(spec.TileMap)); err != nil {
			return err
		}
	}
	if spec.Sprite != nil {
		if err := w.SetSprite(e, b.sprite(spec.Sprite)); err != nil {
			return err
		}
	}
	if spec.Animation != nil {
		if err := w.SetAnimation(e, b.animation(spec.Animation)); err != nil {
			return err
		}
	}
	if spec.Input {
		if err := w.SetInput(e, component.Input{}); err != nil {
			return err
		}
	}
	return nil
}

func (b *builder) transform(spec *TransformSpec) component.Transform {
	t := component.Transform{
		Position: r3.Vec{X: spec.X, Y: spec.Y, Z: spec.Z},
		Size:     r3.Vec{X: spec.Width, Y: spec.Height},
		Scale:    spec.Scale,
		Rotation: spec.Rotation,
		Layer:    spec.Layer,
		FlipX:    spec.FlipX,
		FlipY:    spec.FlipY,
	}
	if t.Scale == 0 {
		t.Scale = 1
	}
	if t.Size.X < 0 {
		b.warnf("transform.width", "negative width %g, using 0", t.Size.X)
		t.Size.X = 0
	}
	if t.Size.Y < 0 {
		b.warnf("transform.height", "negative height %g, using 0", t.Size.Y)
		t.Size.Y = 0
	}
	return t
}

func (b *builder) rigidBody(spec *RigidBodySpec) component.RigidBody2D {
	rb := component.RigidBody2D{
		Velocity:           r3.Vec{X: spec.VX, Y: spec.VY},
		Gravity:            spec.Gravity,
		MaxFallSpeed:       spec.MaxFallSpeed,
		FastFallMultiplier: spec.FastFallMultiplier,
	}
	rb.CollisionOffset.X = spec.OffsetX
	rb.CollisionOffset.Y = spec.OffsetY

	mass, ok := component.ParseMassTier(spec.Mass)
	if !ok {
		b.warnf("rigidbody.mass", "unknown mass %q, using %s", spec.Mass, mass)
	}
	rb.Mass = mass

	gameType, ok := component.ParseGameType(spec.GameType)
	if !ok {
		b.warnf("rigidbody.game_type", "unknown game type %q, using %s", spec.GameType, gameType)
	}
	rb.GameType = gameType

	if rb.IsPlatform() {
		if rb.Gravity == 0 {
			rb.Gravity = b.defaults.Gravity
		}
		if rb.MaxFallSpeed == 0 {
			rb.MaxFallSpeed = b.defaults.MaxFallSpeed
		}
		if rb.FastFallMultiplier == 0 {
			rb.FastFallMultiplier = b.defaults.FastFallMultiplier
		}
	}
	if rb.MaxFallSpeed < 0 {
		b.warnf("rigidbody.max_fall_speed", "negative max fall speed %g, leaving fall speed unclamped", rb.MaxFallSpeed)
		rb.MaxFallSpeed = 0
	}
	return rb
}

func (b *builder) tileMap(spec *TileMapSpec) component.TileMap2D {
	m := component.TileMap2D{
		TileWidth:  spec.TileWidth,
		TileHeight: spec.TileHeight,
		Width:      spec.Width,
		Height:     spec.Height,
		Visible:    spec.Visible,
	}
	if m.Width < 0 {
		b.warnf("tilemap.width", "negative width %d, using 0", m.Width)
		m.Width = 0
	}
	if m.Height < 0 {
		b.warnf("tilemap.height", "negative height %d, using 0", m.Height)
		m.Height = 0
	}
	if m.Width > 0 && m.Height > maxTileCells/m.Width {
		b.warnf("tilemap.width", "grid %dx%d exceeds %d cells, using 0x0", m.Width, m.Height, maxTileCells)
		m.Width, m.Height = 0, 0
	}
	if m.TileWidth <= 0 || m.TileHeight <= 0 {
		b.warnf("tilemap.tile_width", "tile size %gx%g is not positive, the map never collides", m.TileWidth, m.TileHeight)
	}

	cells := m.Width * m.Height
	m.Layers = make([]component.TileLayer, 0, len(spec.Layers))
	for i, ls := range spec.Layers {
		field := fmt.Sprintf("tilemap.layers[%d]", i)
		tiles := b.layerTiles(field, ls, m.Width, m.Height)
		if len(tiles) != cells {
			b.warnf(field, "layer %q has %d tiles, want %d", ls.Name, len(tiles), cells)
			tiles = resize(tiles, cells)
		}
		m.Layers = append(m.Layers, component.TileLayer{Name: ls.Name, Tiles: tiles})
	}
	return m
}

func (b *builder) layerTiles(field string, ls TileLayerSpec, width, height int) []int {
	switch {
	case len(ls.Tiles) > 0:
		return append([]int(nil), ls.Tiles...)
	case len(ls.Rows) > 0:
		tiles := make([]int, 0, width*height)
		for r, row := range ls.Rows {
			if len(row) != width {
				b.warnf(field, "row %d is %d cells wide, want %d", r, len(row), width)
			}
			for c := 0; c < width; c++ {
				if c >= len(row) {
					tiles = append(tiles, 0)
					continue
				}
				tiles = append(tiles, tileID(row[c]))
			}
		}
		return tiles
	default:
		tiles := make([]int, width*height)
		if ls.Fill != 0 {
			for i := range tiles {
				tiles[i] = ls.Fill
			}
		}
		return tiles
	}
}

func tileID(ch byte) int {
	switch {
	case ch >= '1' && ch <= '9':
		return int(ch - '0')
	case ch == '.' || ch == ' ' || ch == '0':
		return 0
	default:
		return 1
	}
}

func resize(tiles []int, n int) []int {
	if len(tiles) >= n {
		return tiles[:n]
	}
	return append(tiles, make([]int, n-len(tiles))...)
}

func (b *builder) sprite(spec *SpriteSpec) component.Sprite {
	s := component.Sprite{
		Image:    spec.Image,
		OriginX:  spec.OriginX,
		OriginY:  spec.OriginY,
		SyncSize: spec.SyncSize,
	}
	if spec.Source != nil {
		r := spec.Source
		if r.W <= 0 || r.H <= 0 {
			b.warnf("sprite.source", "empty source %dx%d ignored", r.W, r.H)
		} else {
			s.Source = image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H)
			s.UseSource = true
		}
	}
	return s
}

func (b *builder) animation(spec *AnimationSpec) component.Animation {
	a := component.Animation{
		Sheet:   spec.Sheet,
		Current: spec.Current,
		Playing: spec.Playing,
		Defs:    make(map[string]component.AnimationDef, len(spec.Defs)),
	}
	for name, d := range spec.Defs {
		a.Defs[name] = component.AnimationDef{
			Name:       name,
			Row:        d.Row,
			ColStart:   d.ColStart,
			FrameCount: d.FrameCount,
			FrameW:     d.FrameW,
			FrameH:     d.FrameH,
			FPS:        d.FPS,
			Loop:       d.Loop,
		}
	}
	if _, ok := a.Defs[a.Current]; !ok && a.Current != "" {
		b.warnf("animation.current", "unknown animation %q", a.Current)
	}
	return a
}
