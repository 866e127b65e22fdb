package main

import (
	"cubic/internal/input"
	"cubic/internal/player"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func setupInputHandlers(window *glfw.Window, loop *ViewerLoop, im *input.InputManager, p *player.Player) {
	window.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		if loop.grabbed {
			p.HandleMouseMovement(xpos, ypos)
		}
	})

	im.SetKeyCallback(window)

	window.SetFramebufferSizeCallback(func(w *glfw.Window, fbWidth, fbHeight int) {
		gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))
		loop.renderer.Camera().SetSize(fbWidth, fbHeight)
	})
}

func moveInput(im *input.InputManager) player.MoveInput {
	return player.MoveInput{
		Forward:  im.IsActive(input.ActionMoveForward),
		Backward: im.IsActive(input.ActionMoveBackward),
		Left:     im.IsActive(input.ActionMoveLeft),
		Right:    im.IsActive(input.ActionMoveRight),
		Up:       im.IsActive(input.ActionMoveUp),
		Down:     im.IsActive(input.ActionMoveDown),
		Fast:     im.IsActive(input.ActionFast),
	}
}
