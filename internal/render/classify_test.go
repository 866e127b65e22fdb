package render

import (
	"testing"

	"cubic/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

func allAir() world.ConnectedBlocks {
	return world.ConnectedBlocks{
		Top: world.Air, Bottom: world.Air,
		Px: world.Air, Nx: world.Air,
		Pz: world.Air, Nz: world.Air,
	}
}

func allSolid() world.ConnectedBlocks {
	s := world.Stone
	return world.ConnectedBlocks{Top: s, Bottom: s, Px: s, Nx: s, Pz: s, Nz: s}
}

func TestOctantFor(t *testing.T) {
	block := world.BlockPos{X: 4, Y: 4, Z: 4}
	tests := []struct {
		cam  mgl32.Vec3
		want Octant
	}{
		{mgl32.Vec3{10, 10, 10}, TopPxPz},
		{mgl32.Vec3{10, 10, 0}, TopPxNz},
		{mgl32.Vec3{0, 10, 10}, TopNxPz},
		{mgl32.Vec3{0, 10, 0}, TopNxNz},
		{mgl32.Vec3{10, 0, 10}, BottomPxPz},
		{mgl32.Vec3{10, 0, 0}, BottomPxNz},
		{mgl32.Vec3{0, 0, 10}, BottomNxPz},
		{mgl32.Vec3{0, 0, 0}, BottomNxNz},
		// Equal coordinates are not "greater".
		{mgl32.Vec3{4, 4, 4}, BottomNxNz},
		{mgl32.Vec3{4.5, 4.5, 4.5}, TopPxPz},
	}
	for _, tt := range tests {
		if got := OctantFor(block, tt.cam); got != tt.want {
			t.Errorf("OctantFor(%v, %v) = %v, want %v", block, tt.cam, got, tt.want)
		}
	}
}

func TestOctantFaces(t *testing.T) {
	tests := map[Octant]FaceSet{
		TopPxPz:    Faces(FaceTop, FacePx, FacePz),
		TopNxNz:    Faces(FaceTop, FaceNx, FaceNz),
		BottomPxNz: Faces(FaceBottom, FacePx, FaceNz),
		BottomNxPz: Faces(FaceBottom, FaceNx, FacePz),
	}
	for o, want := range tests {
		if got := o.Faces(); got != want {
			t.Errorf("%v.Faces() = %v, want %v", o, got, want)
		}
		if o.Faces().Len() != 3 {
			t.Errorf("%v has %d candidate faces", o, o.Faces().Len())
		}
	}
}

// TestClassifyTruthTable walks every octant against every combination of
// its three candidate neighbours being air or solid.
func TestClassifyTruthTable(t *testing.T) {
	for o := BottomNxNz; o <= TopPxPz; o++ {
		var candidates []Face
		for _, f := range AllFaces {
			if o.Faces().Has(f) {
				candidates = append(candidates, f)
			}
		}
		for mask := range 8 {
			conn := allSolid()
			var want FaceSet
			for i, f := range candidates {
				if mask&(1<<i) == 0 {
					continue
				}
				want |= FaceSet(f)
				switch f {
				case FaceTop:
					conn.Top = world.Air
				case FaceBottom:
					conn.Bottom = world.Air
				case FacePx:
					conn.Px = world.Air
				case FaceNx:
					conn.Nx = world.Air
				case FacePz:
					conn.Pz = world.Air
				case FaceNz:
					conn.Nz = world.Air
				}
			}
			got := Classify(world.Stone, conn, o)
			if want == 0 {
				if !got.IsEmpty() {
					t.Errorf("%v mask %03b: got %v, want empty", o, mask, got)
				}
				continue
			}
			if got.Kind != ModelCube || got.Faces != want {
				t.Errorf("%v mask %03b: got kind %v faces %v, want cube %v", o, mask, got.Kind, got.Faces, want)
			}
		}
	}
}

func TestClassifyIgnoresNonCandidateFaces(t *testing.T) {
	// Air only on the faces facing away from the camera.
	conn := allSolid()
	conn.Bottom, conn.Nx, conn.Nz = world.Air, world.Air, world.Air
	if got := Classify(world.Dirt, conn, TopPxPz); !got.IsEmpty() {
		t.Fatalf("faces turned away from the camera drawn: %v", got)
	}
}

func TestClassifyFullyOccluded(t *testing.T) {
	for o := BottomNxNz; o <= TopPxPz; o++ {
		if got := Classify(world.Grass, allSolid(), o); !got.IsEmpty() {
			t.Errorf("occluded block at %v = %v, want empty", o, got)
		}
	}
}

func TestClassifyAir(t *testing.T) {
	if got := Classify(world.Air, allAir(), TopPxPz); !got.IsEmpty() {
		t.Fatalf("air classified as %v", got)
	}
}

func TestClassifyIsolatedBlock(t *testing.T) {
	stone := Classify(world.Stone, allAir(), TopPxPz)
	if stone.Kind != ModelCube || stone.Faces != Faces(FaceTop, FacePx, FacePz) {
		t.Fatalf("isolated stone = %v %v", stone.Kind, stone.Faces)
	}
	for _, f := range AllFaces {
		if stone.Textures.For(f) != TexStone {
			t.Errorf("stone %v texture = %v", f, stone.Textures.For(f))
		}
	}
	if stone.String() != "[+++]" {
		t.Errorf("stone glyph = %q", stone.String())
	}

	grass := Classify(world.Grass, allAir(), TopPxPz)
	if grass.Faces != Faces(FaceTop, FacePx, FacePz) {
		t.Fatalf("isolated grass faces = %v", grass.Faces)
	}
	if grass.Textures.For(FaceTop) != TexGrassTop {
		t.Errorf("grass top = %v, want grass top", grass.Textures.For(FaceTop))
	}
	if grass.Textures.For(FacePx) != TexGrassSide || grass.Textures.For(FacePz) != TexGrassSide {
		t.Error("grass sides should use the grass side texture")
	}
	if grass.Textures.For(FaceBottom) != TexDirt {
		t.Errorf("grass bottom = %v, want dirt", grass.Textures.For(FaceBottom))
	}
}

func TestClassifyIdempotent(t *testing.T) {
	conn := allAir()
	conn.Px = world.Stone
	a := Classify(world.Sand, conn, BottomPxNz)
	b := Classify(world.Sand, conn, BottomPxNz)
	if a != b {
		t.Fatalf("Classify not idempotent: %+v vs %+v", a, b)
	}
	if a.Faces != Faces(FaceBottom, FaceNz) {
		t.Errorf("faces = %v, want bottom+nz", a.Faces)
	}
}

func TestUvCorners(t *testing.T) {
	tex := UvFromN(3)
	if !tex.UpLeft().ApproxEqual(mgl32.Vec2{0, 0.03}) {
		t.Errorf("UpLeft = %v", tex.UpLeft())
	}
	if !tex.UpRight().ApproxEqual(mgl32.Vec2{1, 0.03}) {
		t.Errorf("UpRight = %v", tex.UpRight())
	}
	if !tex.LowLeft().ApproxEqual(mgl32.Vec2{0, 0.04}) {
		t.Errorf("LowLeft = %v", tex.LowLeft())
	}
	if !tex.LowRight().ApproxEqual(mgl32.Vec2{1, 0.04}) {
		t.Errorf("LowRight = %v", tex.LowRight())
	}
	if tex.Cell() != 3 {
		t.Errorf("Cell = %d", tex.Cell())
	}
}

func TestTexturesForAir(t *testing.T) {
	if _, ok := TexturesFor(world.Air, allAir()); ok {
		t.Fatal("air should have no textures")
	}
	if _, ok := TexturesFor(world.BlockState{Type: 200}, allAir()); ok {
		t.Fatal("unknown block type should have no textures")
	}
}

func TestBlockModelGlyphs(t *testing.T) {
	tests := []struct {
		m    BlockModel
		want string
	}{
		{BlockModel{}, "[   ]"},
		{BlockModel{Kind: ModelNonCube}, "[   ]"},
		{BlockModel{Kind: ModelCube, Faces: Faces(FaceBottom, FaceNx)}, "[-- ]"},
		{BlockModel{Kind: ModelCube, Faces: Faces(FacePz)}, "[  +]"},
		{BlockModel{Kind: ModelBlended, Faces: Faces(FaceTop, FaceNz)}, "(+ -)"},
	}
	for _, tt := range tests {
		if got := tt.m.String(); got != tt.want {
			t.Errorf("%v %v glyph = %q, want %q", tt.m.Kind, tt.m.Faces, got, tt.want)
		}
	}
}
