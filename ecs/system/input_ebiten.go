package system

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/turncoat/common"
)

const stickDeadzone = 0.2

// EbitenInput reads keyboard, mouse and the first standard gamepad.
type EbitenInput struct {
	// ScreenToWorld projects a cursor position into world space. When nil
	// the cursor is ignored.
	ScreenToWorld func(x, y float64) (float64, float64)
}

func (in *EbitenInput) Read() RawInput {
	var raw RawInput

	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		raw.Move.X -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		raw.Move.X += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		raw.Move.Y -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		raw.Move.Y += 1
	}
	raw.AttackPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
		inpututil.IsKeyJustPressed(ebiten.KeyJ)

	if gamepads := ebiten.GamepadIDs(); len(gamepads) > 0 {
		id := gamepads[0]
		lx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		ly := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		if math.Hypot(lx, ly) > stickDeadzone {
			raw.Move = common.V(lx, ly)
		}

		rx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickHorizontal)
		ry := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickVertical)
		if math.Hypot(rx, ry) > stickDeadzone {
			raw.Aim = common.V(rx, ry)
		}

		raw.AttackPressed = raw.AttackPressed ||
			inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightLeft) ||
			inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonFrontBottomRight)
	}

	if in != nil && in.ScreenToWorld != nil {
		cx, cy := ebiten.CursorPosition()
		x, y := in.ScreenToWorld(float64(cx), float64(cy))
		raw.Cursor = common.V(x, y)
		raw.HasCursor = true
	}

	return raw
}
