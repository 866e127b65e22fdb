package render

import (
	"cubic/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

// Octant names the three faces of a cube a camera can see. The camera is on
// the positive side of an axis when its coordinate is strictly greater than
// the block's minimum corner on that axis.
type Octant uint8

const (
	BottomNxNz Octant = iota
	BottomNxPz
	BottomPxNz
	BottomPxPz
	TopNxNz
	TopNxPz
	TopPxNz
	TopPxPz
)

const (
	octantPz    Octant = 1 << 0
	octantPx    Octant = 1 << 1
	octantAbove Octant = 1 << 2
)

var octantNames = [...]string{
	BottomNxNz: "BottomNxNz",
	BottomNxPz: "BottomNxPz",
	BottomPxNz: "BottomPxNz",
	BottomPxPz: "BottomPxPz",
	TopNxNz:    "TopNxNz",
	TopNxPz:    "TopNxPz",
	TopPxNz:    "TopPxNz",
	TopPxPz:    "TopPxPz",
}

func (o Octant) String() string {
	if int(o) < len(octantNames) {
		return octantNames[o]
	}
	return "Octant?"
}

// OctantFor returns the octant of camera relative to the block at pos.
func OctantFor(pos world.BlockPos, camera mgl32.Vec3) Octant {
	var o Octant
	if camera.Y() > float32(pos.Y) {
		o |= octantAbove
	}
	if camera.X() > float32(pos.X) {
		o |= octantPx
	}
	if camera.Z() > float32(pos.Z) {
		o |= octantPz
	}
	return o
}

// Faces returns the three candidate faces of the octant.
func (o Octant) Faces() FaceSet {
	var s FaceSet
	if o&octantAbove != 0 {
		s |= FaceSet(FaceTop)
	} else {
		s |= FaceSet(FaceBottom)
	}
	if o&octantPx != 0 {
		s |= FaceSet(FacePx)
	} else {
		s |= FaceSet(FaceNx)
	}
	if o&octantPz != 0 {
		s |= FaceSet(FacePz)
	} else {
		s |= FaceSet(FaceNz)
	}
	return s
}

// neighbourFor returns the neighbour across face f.
func neighbourFor(conn world.ConnectedBlocks, f Face) world.BlockState {
	switch f {
	case FaceTop:
		return conn.Top
	case FaceBottom:
		return conn.Bottom
	case FacePx:
		return conn.Px
	case FaceNx:
		return conn.Nx
	case FacePz:
		return conn.Pz
	default:
		return conn.Nz
	}
}

// Classify decides which faces of a block get drawn. A face is drawn when it
// is one of the octant's candidate faces and its neighbour is air.
func Classify(state world.BlockState, conn world.ConnectedBlocks, octant Octant) BlockModel {
	if state.IsEmpty() {
		return BlockModel{}
	}
	tex, ok := TexturesFor(state, conn)
	if !ok {
		return BlockModel{Kind: ModelNonCube}
	}

	candidates := octant.Faces()
	var exposed FaceSet
	for _, f := range AllFaces {
		if candidates.Has(f) && neighbourFor(conn, f).IsEmpty() {
			exposed |= FaceSet(f)
		}
	}
	if exposed == 0 {
		return BlockModel{}
	}
	return BlockModel{Kind: ModelCube, Faces: exposed, Textures: tex}
}
