package host

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/simcore/ecs"
	"github.com/milk9111/simcore/ecs/component"
)

const stickDeadzone = 0.2

// InputSystem copies keyboard and gamepad state into every Input component.
// JumpPressed latches until a controller consumes it.
type InputSystem struct{}

func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

func (i *InputSystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}

	left := ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft)
	right := ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight)
	up := ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp)
	down := ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown)
	jumpPressed := inpututil.IsKeyJustPressed(ebiten.KeySpace)

	moveX := axis(left, right)
	moveY := axis(up, down)

	if gamepads := ebiten.GamepadIDs(); len(gamepads) > 0 {
		id := gamepads[0]
		lx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if math.Abs(lx) > stickDeadzone {
			moveX = lx
		}
		ly := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		if math.Abs(ly) > stickDeadzone {
			moveY = ly
		}
		jumpPressed = jumpPressed || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom)
		down = down || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftBottom)
	}

	for _, e := range w.Query(component.KindInput) {
		input := w.Input(e)
		input.MoveX = moveX
		input.MoveY = moveY
		input.FastFallHeld = down
		if jumpPressed {
			input.JumpPressed = true
		}
	}
}

func axis(neg, pos bool) float64 {
	v := 0.0
	if neg {
		v -= 1
	}
	if pos {
		v += 1
	}
	return v
}
