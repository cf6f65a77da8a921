package render

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/pixel/obj"
)

const stickDeadzone = 0.2

// PollInput reads the keyboard and the first gamepad.
func PollInput() obj.InputState {
	in := obj.InputState{
		Left:  ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right: ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Up:    ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down:  ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Jump:  ebiten.IsKeyPressed(ebiten.KeySpace),

		PausePressed:   inpututil.IsKeyJustPressed(ebiten.KeyP),
		RestartPressed: inpututil.IsKeyJustPressed(ebiten.KeyR),
		ConfirmPressed: inpututil.IsKeyJustPressed(ebiten.KeyEnter),
		BackPressed:    inpututil.IsKeyJustPressed(ebiten.KeyEscape),
	}

	if gamepads := ebiten.GamepadIDs(); len(gamepads) > 0 {
		id := gamepads[0]
		leftX := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if math.Abs(leftX) > stickDeadzone {
			in.Left, in.Right = leftX < 0, leftX > 0
		}
		leftY := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		if math.Abs(leftY) > stickDeadzone {
			in.Up, in.Down = leftY < 0, leftY > 0
		}
		in.Left = in.Left || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftLeft)
		in.Right = in.Right || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftRight)
		in.Jump = in.Jump || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightBottom)

		in.PausePressed = in.PausePressed || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonCenterRight)
		in.RestartPressed = in.RestartPressed || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightTop)
		in.ConfirmPressed = in.ConfirmPressed || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom)
		in.BackPressed = in.BackPressed || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightRight)
	}
	return in
}
