package world

import (
	"fmt"
	"sync"
)

// ChunkSize is the edge length of a chunk in blocks, on every axis.
const ChunkSize = 16

// BlockReader is read access to a 16x16x16 block grid in chunk-local
// coordinates. Chunks implement it; tests substitute their own.
type BlockReader interface {
	Get(x, y, z int) BlockState
}

// Layer is one horizontal slice of a chunk, indexed [x][z].
type Layer [ChunkSize][ChunkSize]BlockState

// Chunk is a 16x16x16 cube of blocks stored as 16 layers, one per Y level.
type Chunk struct {
	Biome  Biome
	Layers [ChunkSize]Layer
}

// NewChunk returns an all-air chunk.
func NewChunk() *Chunk {
	return &Chunk{}
}

// FromFunc builds a chunk by calling f once per cell, Y outermost, then X,
// then Z.
func FromFunc(f func(x, y, z int) BlockState) *Chunk {
	c := &Chunk{}
	for y := range ChunkSize {
		for x := range ChunkSize {
			for z := range ChunkSize {
				c.Layers[y][x][z] = f(x, y, z)
			}
		}
	}
	return c
}

func checkBounds(x, y, z int) {
	if x < 0 || x >= ChunkSize || y < 0 || y >= ChunkSize || z < 0 || z >= ChunkSize {
		panic(fmt.Sprintf("world: chunk coordinate (%d, %d, %d) out of range [0,%d)", x, y, z, ChunkSize))
	}
}

// Get returns the block at chunk-local (x, y, z). Out-of-range coordinates
// panic.
func (c *Chunk) Get(x, y, z int) BlockState {
	checkBounds(x, y, z)
	return c.Layers[y][x][z]
}

// At returns a pointer to the cell at chunk-local (x, y, z) for in-place
// edits. Out-of-range coordinates panic.
func (c *Chunk) At(x, y, z int) *BlockState {
	checkBounds(x, y, z)
	return &c.Layers[y][x][z]
}

// Set stores s at chunk-local (x, y, z). Out-of-range coordinates panic.
func (c *Chunk) Set(x, y, z int, s BlockState) {
	*c.At(x, y, z) = s
}

// Fill sets every cell to s.
func (c *Chunk) Fill(s BlockState) {
	for y := range c.Layers {
		for x := range c.Layers[y] {
			for z := range c.Layers[y][x] {
				c.Layers[y][x][z] = s
			}
		}
	}
}

// IsEmpty reports whether every cell is air.
func (c *Chunk) IsEmpty() bool {
	for y := range c.Layers {
		for x := range c.Layers[y] {
			for z := range c.Layers[y][x] {
				if !c.Layers[y][x][z].IsEmpty() {
					return false
				}
			}
		}
	}
	return true
}

var (
	emptyChunk     *Chunk
	emptyChunkOnce sync.Once
)

// EmptyChunk returns the shared all-air chunk used in place of neighbours
// that are not loaded. Callers must not modify it.
func EmptyChunk() *Chunk {
	emptyChunkOnce.Do(func() {
		emptyChunk = NewChunk()
	})
	return emptyChunk
}
