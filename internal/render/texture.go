package render

import (
	"fmt"

	"cubic/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

// Atlas cell size in normalised atlas units. Cells are stacked vertically.
const (
	CellWidth  = 1.0
	CellHeight = 0.01
)

// UvTexture is the atlas-space origin of one texture cell.
type UvTexture struct {
	Origin mgl32.Vec2
}

// UvFromN returns the n-th cell of the atlas strip.
func UvFromN(n int) UvTexture {
	return UvTexture{Origin: mgl32.Vec2{0, CellHeight * float32(n)}}
}

func (t UvTexture) UpLeft() mgl32.Vec2 { return t.Origin }

func (t UvTexture) UpRight() mgl32.Vec2 {
	return mgl32.Vec2{t.Origin.X() + CellWidth, t.Origin.Y()}
}

func (t UvTexture) LowLeft() mgl32.Vec2 {
	return mgl32.Vec2{t.Origin.X(), t.Origin.Y() + CellHeight}
}

func (t UvTexture) LowRight() mgl32.Vec2 {
	return mgl32.Vec2{t.Origin.X() + CellWidth, t.Origin.Y() + CellHeight}
}

// Cell returns the index of the atlas cell, the inverse of UvFromN.
func (t UvTexture) Cell() int {
	return int(t.Origin.Y()/CellHeight + 0.5)
}

func (t UvTexture) String() string {
	return fmt.Sprintf("UvTexture(%d)", t.Cell())
}

var (
	TexDirt      = UvFromN(0)
	TexGrassSide = UvFromN(1)
	TexGrassTop  = UvFromN(2)
	TexStone     = UvFromN(3)
	TexSand      = UvFromN(4)
)

// FaceTextures is the texture choice for each side of a block. The four
// lateral faces share Side.
type FaceTextures struct {
	Top    UvTexture
	Side   UvTexture
	Bottom UvTexture
}

// For returns the texture drawn on face f.
func (ft *FaceTextures) For(f Face) UvTexture {
	switch f {
	case FaceTop:
		return ft.Top
	case FaceBottom:
		return ft.Bottom
	default:
		return ft.Side
	}
}

func uniform(t UvTexture) FaceTextures {
	return FaceTextures{Top: t, Side: t, Bottom: t}
}

// Shared per-material texture sets. Block models point into this table.
var materialTextures = [...]FaceTextures{
	world.BlockDirt:  uniform(TexDirt),
	world.BlockGrass: {Top: TexGrassTop, Side: TexGrassSide, Bottom: TexDirt},
	world.BlockStone: uniform(TexStone),
	world.BlockSand:  uniform(TexSand),
}

// TexturesFor resolves the per-face textures of a block. ok is false for
// air and for block types without a texture. The neighbour bundle is
// currently unused.
func TexturesFor(s world.BlockState, _ world.ConnectedBlocks) (tex *FaceTextures, ok bool) {
	if s.IsEmpty() || int(s.Type) >= len(materialTextures) {
		return nil, false
	}
	return &materialTextures[s.Type], true
}
