package world

import (
	"math"

	"github.com/ojrac/opensimplex-go"
)

// TerrainGenerator produces block contents for chunk positions.
type TerrainGenerator interface {
	HeightAt(worldX, worldZ int) int
	BlockFunc(pos ChunkPos) func(x, y, z int) BlockState
}

// Generator handles noise-based terrain generation.
type Generator struct {
	seed        int64
	height      opensimplex.Noise
	biome       opensimplex.Noise
	scale       float64
	baseHeight  int
	amp         float64
	octaves     int
	persistence float64
	lacunarity  float64
}

// NewGenerator creates a new generator with default settings.
func NewGenerator(seed int64) *Generator {
	return &Generator{
		seed:        seed,
		height:      opensimplex.New(seed),
		biome:       opensimplex.New(seed ^ 0x5DEECE66D),
		scale:       1.0 / 64.0,
		baseHeight:  8,
		amp:         12,
		octaves:     4,
		persistence: 0.5,
		lacunarity:  2.0,
	}
}

func (g *Generator) Seed() int64 { return g.seed }

// HeightAt computes the surface height (block Y) at world X,Z.
func (g *Generator) HeightAt(worldX, worldZ int) int {
	x := float64(worldX) * g.scale
	z := float64(worldZ) * g.scale
	amplitude, frequency, sum, norm := 1.0, 1.0, 0.0, 0.0
	for range g.octaves {
		sum += g.height.Eval2(x*frequency, z*frequency) * amplitude
		norm += amplitude
		amplitude *= g.persistence
		frequency *= g.lacunarity
	}
	n := sum / norm // [-1,1]
	height := float64(g.baseHeight) + n*g.amp
	if height < 0 {
		height = 0
	}
	return int(math.Floor(height))
}

// BiomeAt picks the biome for a chunk column.
func (g *Generator) BiomeAt(chunkX, chunkZ int) Biome {
	v := g.biome.Eval2(float64(chunkX)*0.15, float64(chunkZ)*0.15)
	switch {
	case v < -0.35:
		return BiomeDesert
	case v < 0.15:
		return BiomePlains
	case v < 0.45:
		return BiomeForest
	default:
		return BiomeJungle
	}
}

// BlockFunc returns the per-cell callback for the chunk at pos, suitable
// for FromFunc. Heights are computed once per column.
func (g *Generator) BlockFunc(pos ChunkPos) func(x, y, z int) BlockState {
	origin := pos.Origin()
	var heights [ChunkSize][ChunkSize]int
	for x := range ChunkSize {
		for z := range ChunkSize {
			heights[x][z] = g.HeightAt(origin.X+x, origin.Z+z)
		}
	}
	surface, filler := Grass, Dirt
	if g.BiomeAt(pos.X, pos.Z) == BiomeDesert {
		surface, filler = Sand, Sand
	}
	return func(x, y, z int) BlockState {
		wy := origin.Y + y
		h := heights[x][z]
		switch {
		case wy > h:
			return Air
		case wy == h:
			return surface
		case wy >= h-3:
			return filler
		default:
			return Stone
		}
	}
}

// Chunk generates the chunk at pos.
func (g *Generator) Chunk(pos ChunkPos) *Chunk {
	c := FromFunc(g.BlockFunc(pos))
	c.Biome = g.BiomeAt(pos.X, pos.Z)
	return c
}

// Populate generates every chunk within radius (in chunks, XZ) of the
// origin and chunkLayers chunks tall, storing them in w.
func Populate(w *World, gen TerrainGenerator, radius, chunkLayers int) {
	for cy := range chunkLayers {
		for cx := -radius; cx <= radius; cx++ {
			for cz := -radius; cz <= radius; cz++ {
				pos := ChunkPos{X: cx, Y: cy, Z: cz}
				c := FromFunc(gen.BlockFunc(pos))
				if g, ok := gen.(*Generator); ok {
					c.Biome = g.BiomeAt(cx, cz)
				}
				w.Put(pos, c)
			}
		}
	}
}

// FlatGenerator fills everything at or below a fixed height.
type FlatGenerator struct {
	Height int
}

// NewFlatGenerator creates a flat generator with grass at height.
func NewFlatGenerator(height int) *FlatGenerator {
	return &FlatGenerator{Height: height}
}

func (g *FlatGenerator) HeightAt(worldX, worldZ int) int {
	return g.Height
}

func (g *FlatGenerator) BlockFunc(pos ChunkPos) func(x, y, z int) BlockState {
	baseY := pos.Origin().Y
	return func(x, y, z int) BlockState {
		wy := baseY + y
		switch {
		case wy > g.Height:
			return Air
		case wy == g.Height:
			return Grass
		default:
			return Dirt
		}
	}
}
