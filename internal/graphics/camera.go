package graphics

import (
	"cubic/internal/player"

	"github.com/go-gl/mathgl/mgl32"
)

// Camera handles the view and projection matrices
type Camera struct {
	AspectRatio float32
	FOV         float32
	NearPlane   float32
	FarPlane    float32
}

func NewCamera(width, height int) *Camera {
	c := &Camera{
		FOV:       70.0,
		NearPlane: 0.1,
		FarPlane:  1000.0,
	}
	c.SetSize(width, height)
	return c
}

// SetSize updates the aspect ratio after a framebuffer resize.
func (c *Camera) SetSize(width, height int) {
	if height == 0 {
		return
	}
	c.AspectRatio = float32(width) / float32(height)
}

func (c *Camera) GetProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), c.AspectRatio, c.NearPlane, c.FarPlane)
}

func (c *Camera) GetViewMatrix(p *player.Player) mgl32.Mat4 {
	return p.GetViewMatrix()
}
