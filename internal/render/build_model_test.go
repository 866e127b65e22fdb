package render

import (
	"strings"
	"testing"

	"cubic/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

type panicReader struct{ t *testing.T }

func (p panicReader) Get(x, y, z int) world.BlockState {
	p.t.Fatalf("block (%d,%d,%d) read from a culled chunk", x, y, z)
	return world.Air
}

func TestChunkCulled(t *testing.T) {
	lookX := Camera{Position: mgl32.Vec3{0, 8, 0}, Front: mgl32.Vec3{1, 0, 0}}
	tests := []struct {
		name string
		pos  world.ChunkPos
		want bool
	}{
		{"ahead far", world.ChunkPos{X: 10}, false},
		{"behind far", world.ChunkPos{X: -10}, true},
		{"behind near", world.ChunkPos{X: -1}, false},
		{"side far", world.ChunkPos{Z: 6}, true},
		{"own chunk", world.ChunkPos{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ChunkCulled(lookX, tt.pos); got != tt.want {
				t.Errorf("ChunkCulled(%v) = %v, want %v", tt.pos, got, tt.want)
			}
		})
	}
}

func TestChunkCulledZeroFront(t *testing.T) {
	cam := Camera{Position: mgl32.Vec3{0, 0, 0}}
	if ChunkCulled(cam, world.ChunkPos{X: -20}) {
		t.Fatal("zero front vector should never cull on angle")
	}
}

func TestBuildChunkModelCulledReadsNothing(t *testing.T) {
	cam := Camera{Position: mgl32.Vec3{0, 8, 0}, Front: mgl32.Vec3{1, 0, 0}}
	pos := world.ChunkPos{X: -10}
	conn := world.ConnectedChunks{
		Top: panicReader{t}, Bottom: panicReader{t},
		Px: panicReader{t}, Nx: panicReader{t},
		Pz: panicReader{t}, Nz: panicReader{t},
	}
	m := BuildChunkModel(cam, pos, panicReader{t}, conn)
	if m.Allocated() || !m.IsEmpty() {
		t.Fatal("culled chunk should yield the empty chunk model")
	}
}

func TestBuildChunkModelSingleBlock(t *testing.T) {
	c := world.NewChunk()
	c.Set(3, 4, 5, world.Grass)
	cam := Camera{Position: mgl32.Vec3{20, 20, 20}, Front: mgl32.Vec3{-1, -1, -1}}

	m := BuildChunkModel(cam, world.ChunkPos{}, c, world.NoNeighbours())
	got := m.Get(3, 4, 5)
	if got.Kind != ModelCube || got.Faces != Faces(FaceTop, FacePx, FacePz) {
		t.Fatalf("single grass block = %v %v", got.Kind, got.Faces)
	}
	if m.FaceCount() != 3 {
		t.Errorf("FaceCount = %d, want 3", m.FaceCount())
	}
	if !m.Get(0, 0, 0).IsEmpty() {
		t.Error("air cell should be empty")
	}
}

func TestBuildChunkModelFullChunk(t *testing.T) {
	c := world.NewChunk()
	c.Fill(world.Stone)
	cam := Camera{Position: mgl32.Vec3{40, 40, 40}, Front: mgl32.Vec3{-1, -1, -1}}

	m := BuildChunkModel(cam, world.ChunkPos{}, c, world.NoNeighbours())
	// Only the three outer faces turned to the camera are visible.
	if got, want := m.FaceCount(), 3*world.ChunkSize*world.ChunkSize; got != want {
		t.Fatalf("FaceCount = %d, want %d", got, want)
	}
	for y := range world.ChunkSize - 1 {
		for x := range world.ChunkSize - 1 {
			for z := range world.ChunkSize - 1 {
				if !m.Get(x, y, z).IsEmpty() {
					t.Fatalf("interior block (%d,%d,%d) = %v", x, y, z, m.Get(x, y, z))
				}
			}
		}
	}
}

func TestBuildChunkModelBoundaryNeighbour(t *testing.T) {
	c := world.NewChunk()
	c.Set(15, 0, 0, world.Stone)
	px := world.NewChunk()
	px.Set(0, 0, 0, world.Stone)
	conn := world.NoNeighbours()
	conn.Px = px
	cam := Camera{Position: mgl32.Vec3{100, 0.5, 0.5}, Front: mgl32.Vec3{-1, 0, 0}}

	m := BuildChunkModel(cam, world.ChunkPos{}, c, conn)
	got := m.Get(15, 0, 0)
	if got.Faces.Has(FacePx) {
		t.Fatalf("+x face drawn against a solid neighbour chunk: %v", got.Faces)
	}

	conn.Px = world.EmptyChunk()
	m = BuildChunkModel(cam, world.ChunkPos{}, c, conn)
	if !m.Get(15, 0, 0).Faces.Has(FacePx) {
		t.Fatal("+x face missing against an empty neighbour chunk")
	}
}

func TestChunkModelLazyStorage(t *testing.T) {
	var m ChunkModel
	m.Set(1, 2, 3, BlockModel{})
	if m.Allocated() {
		t.Fatal("setting empty into absent storage allocated")
	}
	m.Set(1, 2, 3, BlockModel{Kind: ModelCube, Faces: Faces(FaceTop), Textures: &materialTextures[world.BlockDirt]})
	if !m.Allocated() || m.IsEmpty() {
		t.Fatal("non-empty set should allocate")
	}
	m.Set(1, 2, 3, BlockModel{})
	if !m.IsEmpty() {
		t.Fatal("model should be empty after clearing the only cell")
	}
}

func TestChunkModelString(t *testing.T) {
	var m ChunkModel
	m.Set(0, 15, 0, BlockModel{Kind: ModelCube, Faces: Faces(FaceTop)})
	s := m.String()
	if !strings.HasPrefix(s, "[+  ]") {
		t.Fatalf("dump should start with the top layer: %q", s[:20])
	}
}

func BenchmarkBuildChunkModel(b *testing.B) {
	gen := world.NewGenerator(1)
	pos := world.ChunkPos{}
	c := gen.Chunk(pos)
	cam := Camera{Position: mgl32.Vec3{8, 40, 8}, Front: mgl32.Vec3{0, -1, 0}}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = BuildChunkModel(cam, pos, c, world.NoNeighbours())
	}
}
