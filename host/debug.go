package host

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"

	"github.com/milk9111/simcore/common"
	"github.com/milk9111/simcore/ecs"
	"github.com/milk9111/simcore/ecs/component"
	"github.com/milk9111/simcore/ecs/system"
)

var (
	tileFill      = color.RGBA{R: 90, G: 90, B: 110, A: 255}
	tileOutline   = color.RGBA{R: 140, G: 140, B: 170, A: 255}
	bodyOutline   = color.RGBA{R: 60, G: 220, B: 60, A: 230}
	ghostOutline  = color.RGBA{R: 120, G: 120, B: 120, A: 160}
	contactColor  = color.RGBA{R: 255, G: 60, B: 60, A: 230}
	groundedColor = color.RGBA{R: 80, G: 160, B: 255, A: 230}
)

// DrawWorld draws collision tiles and body boxes. Only collision layers are
// drawn since those are the cells the resolver tests against.
func DrawWorld(w *ecs.World, screen *ebiten.Image) {
	if w == nil || screen == nil {
		return
	}
	for _, e := range w.Query(component.KindTransform, component.KindTileMap2D) {
		t := w.Transform(e)
		m := w.TileMap(e)
		for _, layer := range m.CollisionLayers() {
			for row := 0; row < m.Height; row++ {
				for col := 0; col < m.Width; col++ {
					if m.Tile(layer, col, row) == 0 {
						continue
					}
					fillBox(screen, system.TileBox(t, m, col, row), tileFill)
					strokeBox(screen, system.TileBox(t, m, col, row), tileOutline)
				}
			}
		}
	}

	for _, e := range w.Query(component.KindTransform, component.KindRigidBody2D) {
		if w.Has(e, component.KindTileMap2D) {
			continue
		}
		t := w.Transform(e)
		rb := w.RigidBody(e)
		box := system.BodyBox(t.Position, t, rb)
		switch {
		case !rb.Collides():
			strokeBox(screen, box, ghostOutline)
		case rb.Contacts.Horizontal() || rb.Contacts.Top:
			strokeBox(screen, box, contactColor)
		case rb.IsGrounded:
			strokeBox(screen, box, groundedColor)
		default:
			strokeBox(screen, box, bodyOutline)
		}
	}
}

// DrawHUD prints the tick counter and the movement state of every entity
// that takes input.
func DrawHUD(w *ecs.World, ps *system.PhysicsSystem, screen *ebiten.Image) {
	if w == nil || screen == nil {
		return
	}
	text := fmt.Sprintf("tick %d  entities %d  tps %.1f", ps.Tick(), w.EntityCount(), ebiten.ActualTPS())
	for _, e := range w.Query(component.KindInput, component.KindRigidBody2D) {
		rb := w.RigidBody(e)
		text += fmt.Sprintf("\n%s: %s v=(%.1f, %.1f)", w.Name(e), rb.MovementState(), rb.Velocity.X, rb.Velocity.Y)
	}
	ebitenutil.DebugPrintAt(screen, text, 4, 4)
}

func fillBox(screen *ebiten.Image, bb cp.BB, clr color.Color) {
	vector.FillRect(screen, float32(bb.L), float32(common.Top(bb)), float32(bb.R-bb.L), float32(common.Bottom(bb)-common.Top(bb)), clr, false)
}

func strokeBox(screen *ebiten.Image, bb cp.BB, clr color.Color) {
	vector.StrokeRect(screen, float32(bb.L), float32(common.Top(bb)), float32(bb.R-bb.L), float32(common.Bottom(bb)-common.Top(bb)), 1, clr, false)
}
