package world

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// ChunkPos addresses a chunk on the chunk grid.
type ChunkPos struct {
	X, Y, Z int
}

// Origin returns the block-space position of the chunk's (0,0,0) cell.
func (p ChunkPos) Origin() BlockPos {
	return BlockPos{X: p.X * ChunkSize, Y: p.Y * ChunkSize, Z: p.Z * ChunkSize}
}

// Center returns the world-space centre of the chunk.
func (p ChunkPos) Center() mgl32.Vec3 {
	half := float32(ChunkSize) / 2
	return p.Origin().Vec3().Add(mgl32.Vec3{half, half, half})
}

func (p ChunkPos) Add(dx, dy, dz int) ChunkPos {
	return ChunkPos{X: p.X + dx, Y: p.Y + dy, Z: p.Z + dz}
}

func (p ChunkPos) String() string {
	return fmt.Sprintf("chunk(%d, %d, %d)", p.X, p.Y, p.Z)
}

// Less orders positions by Y, then X, then Z.
func (p ChunkPos) Less(o ChunkPos) bool {
	if p.Y != o.Y {
		return p.Y < o.Y
	}
	if p.X != o.X {
		return p.X < o.X
	}
	return p.Z < o.Z
}

// ChunkPosOf returns the chunk containing world-space point v.
func ChunkPosOf(v mgl32.Vec3) ChunkPos {
	return ChunkPos{
		X: floorDiv(int(floor32(v.X())), ChunkSize),
		Y: floorDiv(int(floor32(v.Y())), ChunkSize),
		Z: floorDiv(int(floor32(v.Z())), ChunkSize),
	}
}

// BlockPos is an integer block-space coordinate.
type BlockPos struct {
	X, Y, Z int
}

func (p BlockPos) Add(o BlockPos) BlockPos {
	return BlockPos{X: p.X + o.X, Y: p.Y + o.Y, Z: p.Z + o.Z}
}

// Vec3 converts the block's minimum corner to floating point.
func (p BlockPos) Vec3() mgl32.Vec3 {
	return mgl32.Vec3{float32(p.X), float32(p.Y), float32(p.Z)}
}

func (p BlockPos) String() string {
	return fmt.Sprintf("(%d, %d, %d)", p.X, p.Y, p.Z)
}

// floorDiv performs floor division for possibly negative a.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// mod returns a non-negative remainder.
func mod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}

func floor32(f float32) float32 {
	i := float32(int(f))
	if f < i {
		return i - 1
	}
	return i
}
