package render

import (
	"math"

	"cubic/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

// Camera is the viewer state a frame is built for.
type Camera struct {
	Position mgl32.Vec3
	Front    mgl32.Vec3
}

const (
	// CullAngle is the angle in degrees off the view direction past which a
	// distant chunk is skipped.
	CullAngle float32 = 65
	// CullDistance is the distance within which a chunk is never culled.
	CullDistance float32 = 2 * world.ChunkSize
)

// angleBetween returns the angle between a and b in degrees. A zero-length
// argument yields 0.
func angleBetween(a, b mgl32.Vec3) float32 {
	la, lb := a.Len(), b.Len()
	if la == 0 || lb == 0 {
		return 0
	}
	cos := mgl32.Clamp(a.Dot(b)/(la*lb), -1, 1)
	return mgl32.RadToDeg(float32(math.Acos(float64(cos))))
}

// ChunkCulled reports whether the chunk at pos is both far from the camera
// and well off to the side of where it looks.
func ChunkCulled(cam Camera, pos world.ChunkPos) bool {
	toChunk := pos.Center().Sub(cam.Position)
	return angleBetween(cam.Front, toChunk) > CullAngle && toChunk.Len() > CullDistance
}

// BuildChunkModel classifies every block of chunk for the given camera. A
// culled chunk yields the empty model without reading any block.
func BuildChunkModel(cam Camera, pos world.ChunkPos, chunk world.BlockReader, conn world.ConnectedChunks) ChunkModel {
	if ChunkCulled(cam, pos) {
		return EmptyChunkModel()
	}

	origin := pos.Origin()
	var model ChunkModel
	for y := range world.ChunkSize {
		for x := range world.ChunkSize {
			for z := range world.ChunkSize {
				state := chunk.Get(x, y, z)
				if state.IsEmpty() {
					continue
				}
				blocks := world.Neighbours(chunk, conn, x, y, z)
				octant := OctantFor(origin.Add(world.BlockPos{X: x, Y: y, Z: z}), cam.Position)
				model.Set(x, y, z, Classify(state, blocks, octant))
			}
		}
	}
	return model
}
