package system

import (
	"image"

	"github.com/milk9111/simcore/ecs"
	"github.com/milk9111/simcore/ecs/component"
)

// AnimationSystem advances animation clocks and points sprites at the
// current frame. Sprites with SyncSize drive their transform's size.
type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (a *AnimationSystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}
	for _, e := range w.Query(component.KindAnimation) {
		anim := w.Animation(e)
		def, ok := anim.CurrentDef()
		if !ok || def.FrameCount <= 0 {
			continue
		}
		if anim.Playing {
			advanceFrame(anim, def, dt)
		}

		x := def.ColStart*def.FrameW + anim.Frame*def.FrameW
		y := def.Row * def.FrameH
		rect := image.Rect(x, y, x+def.FrameW, y+def.FrameH)

		if !w.Has(e, component.KindSprite) {
			continue
		}
		sprite := w.Sprite(e)
		sprite.Source = rect
		sprite.UseSource = true
		if sprite.SyncSize && w.Has(e, component.KindTransform) {
			syncSize(w.Transform(e), rect)
		}
	}

	for _, e := range w.Query(component.KindSprite, component.KindTransform) {
		if w.Has(e, component.KindAnimation) {
			continue
		}
		sprite := w.Sprite(e)
		if !sprite.SyncSize || !sprite.UseSource {
			continue
		}
		syncSize(w.Transform(e), sprite.Source)
	}
}

func advanceFrame(anim *component.Animation, def component.AnimationDef, dt float64) {
	if def.FPS <= 0 {
		return
	}
	frameTime := 1.0 / def.FPS
	anim.Elapsed += dt
	for anim.Elapsed >= frameTime && anim.Playing {
		anim.Elapsed -= frameTime
		anim.Frame++
		if anim.Frame >= def.FrameCount {
			if def.Loop {
				anim.Frame = 0
			} else {
				anim.Frame = def.FrameCount - 1
				anim.Playing = false
				anim.Elapsed = 0
			}
		}
	}
}

func syncSize(t *component.Transform, rect image.Rectangle) {
	if rect.Empty() {
		return
	}
	t.Size.X = float64(rect.Dx())
	t.Size.Y = float64(rect.Dy())
}
