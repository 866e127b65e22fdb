package player

import (
	"cubic/internal/render"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	FlySpeed       = 10.0 // blocks per second
	FastMultiplier = 4.0
	Sensitivity    = 0.1 // degrees per pixel
)

// Player is a free-flying viewer. Yaw and pitch are in degrees; yaw -90
// looks down -z.
type Player struct {
	Position mgl32.Vec3
	CamYaw   float64
	CamPitch float64

	LastMouseX float64
	LastMouseY float64
	FirstMouse bool
}

// New places a player at pos looking along yaw and pitch.
func New(pos mgl32.Vec3, yaw, pitch float64) *Player {
	p := &Player{
		Position:   pos,
		CamYaw:     yaw,
		FirstMouse: true,
	}
	p.SetPitch(pitch)
	return p
}

// Camera returns the frame camera for the player's current view.
func (p *Player) Camera() render.Camera {
	return render.Camera{Position: p.Position, Front: p.GetFrontVector()}
}
