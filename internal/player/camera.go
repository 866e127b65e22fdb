package player

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const maxPitch = 89.0

// HandleMouseMovement turns the view by the cursor delta since the last call.
func (p *Player) HandleMouseMovement(xpos, ypos float64) {
	if p.FirstMouse {
		p.LastMouseX = xpos
		p.LastMouseY = ypos
		p.FirstMouse = false
		return
	}

	xoffset := (xpos - p.LastMouseX) * Sensitivity
	yoffset := (p.LastMouseY - ypos) * Sensitivity
	p.LastMouseX = xpos
	p.LastMouseY = ypos

	p.CamYaw = math.Mod(p.CamYaw+xoffset, 360)
	p.SetPitch(p.CamPitch + yoffset)
}

// ResetMouse makes the next mouse event a reference point only, e.g. after
// the cursor is grabbed again.
func (p *Player) ResetMouse() {
	p.FirstMouse = true
}

// SetPitch sets the pitch, clamped short of straight up or down.
func (p *Player) SetPitch(pitch float64) {
	p.CamPitch = max(-maxPitch, min(maxPitch, pitch))
}

func (p *Player) GetFrontVector() mgl32.Vec3 {
	y := mgl32.DegToRad(float32(p.CamYaw))
	pt := mgl32.DegToRad(float32(p.CamPitch))
	fx := float32(math.Cos(float64(y)) * math.Cos(float64(pt)))
	fy := float32(math.Sin(float64(pt)))
	fz := float32(math.Sin(float64(y)) * math.Cos(float64(pt)))
	return mgl32.Vec3{fx, fy, fz}.Normalize()
}

// GetRightVector is the horizontal right-hand direction.
func (p *Player) GetRightVector() mgl32.Vec3 {
	return p.GetFrontVector().Cross(mgl32.Vec3{0, 1, 0}).Normalize()
}

func (p *Player) GetViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(p.Position, p.Position.Add(p.GetFrontVector()), mgl32.Vec3{0, 1, 0})
}
