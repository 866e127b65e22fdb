package meshing

import (
	"cubic/internal/render"
	"cubic/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

// Vertex is one corner of an emitted quad.
type Vertex struct {
	Position mgl32.Vec3
	UV       mgl32.Vec2
	Color    [4]uint8
	Normal   mgl32.Vec3
}

// White is the flat vertex colour of every emitted vertex.
var White = [4]uint8{0xff, 0xff, 0xff, 0xff}

// QuadIndices splits a quad into two triangles sharing the 0-2 diagonal.
var QuadIndices = [6]uint16{0, 1, 2, 0, 3, 2}

var (
	normalTop    = mgl32.Vec3{0, 1, 0}
	normalBottom = mgl32.Vec3{0, -1, 0}
	normalPx     = mgl32.Vec3{1, 0, 0}
	normalNx     = mgl32.Vec3{-1, 0, 0}
	normalPz     = mgl32.Vec3{0, 0, 1}
	normalNz     = mgl32.Vec3{0, 0, -1}
)

func vertex(pos world.BlockPos, dx, dy, dz float32, uv mgl32.Vec2, n mgl32.Vec3) Vertex {
	return Vertex{
		Position: mgl32.Vec3{float32(pos.X) + dx, float32(pos.Y) + dy, float32(pos.Z) + dz},
		UV:       uv,
		Color:    White,
		Normal:   n,
	}
}

// TopQuad is the +y face of the unit cube at pos.
func TopQuad(pos world.BlockPos, tex render.UvTexture) [4]Vertex {
	return [4]Vertex{
		vertex(pos, 0, 1, 0, tex.LowLeft(), normalTop),
		vertex(pos, 1, 1, 0, tex.LowRight(), normalTop),
		vertex(pos, 1, 1, 1, tex.UpRight(), normalTop),
		vertex(pos, 0, 1, 1, tex.UpLeft(), normalTop),
	}
}

// BottomQuad is the -y face of the unit cube at pos.
func BottomQuad(pos world.BlockPos, tex render.UvTexture) [4]Vertex {
	return [4]Vertex{
		vertex(pos, 0, 0, 0, tex.LowLeft(), normalBottom),
		vertex(pos, 1, 0, 0, tex.LowRight(), normalBottom),
		vertex(pos, 1, 0, 1, tex.UpRight(), normalBottom),
		vertex(pos, 0, 0, 1, tex.UpLeft(), normalBottom),
	}
}

func PxQuad(pos world.BlockPos, tex render.UvTexture) [4]Vertex {
	return [4]Vertex{
		vertex(pos, 1, 0, 0, tex.LowLeft(), normalPx),
		vertex(pos, 1, 0, 1, tex.LowRight(), normalPx),
		vertex(pos, 1, 1, 1, tex.UpRight(), normalPx),
		vertex(pos, 1, 1, 0, tex.UpLeft(), normalPx),
	}
}

func NxQuad(pos world.BlockPos, tex render.UvTexture) [4]Vertex {
	return [4]Vertex{
		vertex(pos, 0, 0, 0, tex.LowRight(), normalNx),
		vertex(pos, 0, 0, 1, tex.LowLeft(), normalNx),
		vertex(pos, 0, 1, 1, tex.UpLeft(), normalNx),
		vertex(pos, 0, 1, 0, tex.UpRight(), normalNx),
	}
}

func PzQuad(pos world.BlockPos, tex render.UvTexture) [4]Vertex {
	return [4]Vertex{
		vertex(pos, 0, 0, 1, tex.LowRight(), normalPz),
		vertex(pos, 1, 0, 1, tex.LowLeft(), normalPz),
		vertex(pos, 1, 1, 1, tex.UpLeft(), normalPz),
		vertex(pos, 0, 1, 1, tex.UpRight(), normalPz),
	}
}

func NzQuad(pos world.BlockPos, tex render.UvTexture) [4]Vertex {
	return [4]Vertex{
		vertex(pos, 0, 0, 0, tex.LowRight(), normalNz),
		vertex(pos, 1, 0, 0, tex.LowLeft(), normalNz),
		vertex(pos, 1, 1, 0, tex.UpLeft(), normalNz),
		vertex(pos, 0, 1, 0, tex.UpRight(), normalNz),
	}
}

// Quad returns the quad for face f of the block at pos.
func Quad(f render.Face, pos world.BlockPos, tex render.UvTexture) [4]Vertex {
	switch f {
	case render.FaceTop:
		return TopQuad(pos, tex)
	case render.FaceBottom:
		return BottomQuad(pos, tex)
	case render.FacePx:
		return PxQuad(pos, tex)
	case render.FaceNx:
		return NxQuad(pos, tex)
	case render.FacePz:
		return PzQuad(pos, tex)
	case render.FaceNz:
		return NzQuad(pos, tex)
	}
	panic("meshing: unknown face " + f.String())
}
