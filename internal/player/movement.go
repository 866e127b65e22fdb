package player

import (
	"cubic/internal/profiling"

	"github.com/go-gl/mathgl/mgl32"
)

// MoveInput is the movement keys held this frame.
type MoveInput struct {
	Forward, Backward bool
	Left, Right       bool
	Up, Down          bool
	Fast              bool
}

func axis(pos, neg bool) float32 {
	switch {
	case pos && !neg:
		return 1
	case neg && !pos:
		return -1
	}
	return 0
}

// UpdatePosition flies the player for dt seconds. Forward and strafe stay on
// the horizontal plane; Up and Down move along world y.
func (p *Player) UpdatePosition(dt float64, in MoveInput) {
	defer profiling.Track("player.Update.Position")()

	front := p.GetFrontVector()
	flat := mgl32.Vec3{front.X(), 0, front.Z()}
	if flat.Len() > 0 {
		flat = flat.Normalize()
	}
	right := p.GetRightVector()

	dir := flat.Mul(axis(in.Forward, in.Backward)).
		Add(right.Mul(axis(in.Right, in.Left))).
		Add(mgl32.Vec3{0, axis(in.Up, in.Down), 0})
	if dir.Len() == 0 {
		return
	}

	speed := float32(FlySpeed * dt)
	if in.Fast {
		speed *= FastMultiplier
	}
	p.Position = p.Position.Add(dir.Normalize().Mul(speed))
}
