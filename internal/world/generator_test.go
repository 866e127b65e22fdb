package world

import (
	"crypto/sha256"
	"testing"
)

func TestStandardGeneratorImplementsInterface(t *testing.T) {
	var _ TerrainGenerator = NewGenerator(123)
}

func TestFlatGeneratorImplementsInterface(t *testing.T) {
	var _ TerrainGenerator = NewFlatGenerator(10)
}

func TestFlatGeneratorHeight(t *testing.T) {
	g := NewFlatGenerator(10)
	if h := g.HeightAt(0, 0); h != 10 {
		t.Errorf("Expected height 10, got %d", h)
	}
	if h := g.HeightAt(100, -50); h != 10 {
		t.Errorf("Expected height 10, got %d", h)
	}
}

func TestFlatGeneratorPopulate(t *testing.T) {
	g := NewFlatGenerator(5)
	c := FromFunc(g.BlockFunc(ChunkPos{}))

	for y := 0; y < 5; y++ {
		if b := c.Get(0, y, 0); b != Dirt {
			t.Errorf("Expected dirt at 0,%d,0, got %v", y, b)
		}
	}
	if b := c.Get(0, 5, 0); b != Grass {
		t.Errorf("Expected grass at 0,5,0, got %v", b)
	}
	if b := c.Get(0, 6, 0); b != Air {
		t.Errorf("Expected air at 0,6,0, got %v", b)
	}

	// A chunk above the surface is entirely air.
	above := FromFunc(g.BlockFunc(ChunkPos{Y: 1}))
	if !above.IsEmpty() {
		t.Error("chunk above flat surface should be empty")
	}
}

// hashChunkBlocks computes a SHA-256 hash of all blocks in a chunk
func hashChunkBlocks(c *Chunk) [32]byte {
	h := sha256.New()
	for y := range ChunkSize {
		for x := range ChunkSize {
			for z := range ChunkSize {
				h.Write([]byte{byte(c.Get(x, y, z).Type)})
			}
		}
	}
	var result [32]byte
	copy(result[:], h.Sum(nil))
	return result
}

func TestGeneratorDeterminism(t *testing.T) {
	positions := []ChunkPos{{0, 0, 0}, {3, 0, -2}, {-5, 1, 7}}
	a, b := NewGenerator(12345), NewGenerator(12345)
	for _, p := range positions {
		ca, cb := a.Chunk(p), b.Chunk(p)
		if hashChunkBlocks(ca) != hashChunkBlocks(cb) {
			t.Errorf("chunk %v differs between generators with the same seed", p)
		}
		if ca.Biome != cb.Biome {
			t.Errorf("chunk %v biome differs: %v vs %v", p, ca.Biome, cb.Biome)
		}
	}
}

func TestGeneratorSurfaceMatchesHeight(t *testing.T) {
	g := NewGenerator(7)
	for _, col := range [][2]int{{0, 0}, {5, 9}, {-13, 4}} {
		h := g.HeightAt(col[0], col[1])
		pos := ChunkPos{X: floorDiv(col[0], ChunkSize), Y: floorDiv(h, ChunkSize), Z: floorDiv(col[1], ChunkSize)}
		c := g.Chunk(pos)
		lx, ly, lz := mod(col[0], ChunkSize), mod(h, ChunkSize), mod(col[1], ChunkSize)
		if c.Get(lx, ly, lz).IsEmpty() {
			t.Errorf("surface block at column %v height %d is air", col, h)
		}
		if ly+1 < ChunkSize && !c.Get(lx, ly+1, lz).IsEmpty() {
			t.Errorf("block above surface at column %v is solid", col)
		}
	}
}

func TestPopulate(t *testing.T) {
	w := New()
	Populate(w, NewFlatGenerator(3), 1, 2)
	if w.Len() != 3*3*2 {
		t.Fatalf("Populate loaded %d chunks, want 18", w.Len())
	}
	if w.Block(-16, 3, 31).Type != BlockGrass {
		t.Error("expected grass at world (-16,3,31)")
	}
}

func BenchmarkGeneratorChunk(b *testing.B) {
	g := NewGenerator(42)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = g.Chunk(ChunkPos{X: i % 32, Z: i / 32 % 32})
	}
}
