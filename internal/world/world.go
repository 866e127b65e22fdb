package world

import (
	"slices"
	"sync"
)

// World stores loaded chunks by position. It is safe for concurrent use;
// chunks handed out must not be mutated while a frame is being built.
type World struct {
	mu       sync.RWMutex
	chunks   map[ChunkPos]*Chunk
	modCount uint64 // increases on any chunk add/remove
}

// New creates an empty world.
func New() *World {
	return &World{chunks: make(map[ChunkPos]*Chunk)}
}

// Chunk returns the chunk at pos, or nil if it is not loaded.
func (w *World) Chunk(pos ChunkPos) *Chunk {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.chunks[pos]
}

// Put stores c at pos, replacing any previous chunk.
func (w *World) Put(pos ChunkPos, c *Chunk) {
	w.mu.Lock()
	w.chunks[pos] = c
	w.modCount++
	w.mu.Unlock()
}

// Remove unloads the chunk at pos.
func (w *World) Remove(pos ChunkPos) {
	w.mu.Lock()
	if _, ok := w.chunks[pos]; ok {
		delete(w.chunks, pos)
		w.modCount++
	}
	w.mu.Unlock()
}

func (w *World) Len() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.chunks)
}

// ModCount changes whenever a chunk is added or removed.
func (w *World) ModCount() uint64 {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.modCount
}

// Positions returns every loaded chunk position in Y, X, Z order.
func (w *World) Positions() []ChunkPos {
	w.mu.RLock()
	out := make([]ChunkPos, 0, len(w.chunks))
	for p := range w.chunks {
		out = append(out, p)
	}
	w.mu.RUnlock()
	slices.SortFunc(out, func(a, b ChunkPos) int {
		switch {
		case a.Less(b):
			return -1
		case b.Less(a):
			return 1
		}
		return 0
	})
	return out
}

// Connected returns the neighbour bundle for pos. Neighbours that are not
// loaded are the shared empty chunk.
func (w *World) Connected(pos ChunkPos) ConnectedChunks {
	w.mu.RLock()
	defer w.mu.RUnlock()
	get := func(p ChunkPos) BlockReader {
		if c := w.chunks[p]; c != nil {
			return c
		}
		return EmptyChunk()
	}
	return ConnectedChunks{
		Top:    get(pos.Add(0, 1, 0)),
		Bottom: get(pos.Add(0, -1, 0)),
		Px:     get(pos.Add(1, 0, 0)),
		Nx:     get(pos.Add(-1, 0, 0)),
		Pz:     get(pos.Add(0, 0, 1)),
		Nz:     get(pos.Add(0, 0, -1)),
	}
}

// Block returns the block at world-space (x, y, z); unloaded space is air.
func (w *World) Block(x, y, z int) BlockState {
	pos := ChunkPos{X: floorDiv(x, ChunkSize), Y: floorDiv(y, ChunkSize), Z: floorDiv(z, ChunkSize)}
	c := w.Chunk(pos)
	if c == nil {
		return Air
	}
	return c.Get(mod(x, ChunkSize), mod(y, ChunkSize), mod(z, ChunkSize))
}

// SetBlock writes a block at world-space (x, y, z), loading an empty chunk
// if needed.
func (w *World) SetBlock(x, y, z int, s BlockState) {
	pos := ChunkPos{X: floorDiv(x, ChunkSize), Y: floorDiv(y, ChunkSize), Z: floorDiv(z, ChunkSize)}
	w.mu.Lock()
	c := w.chunks[pos]
	if c == nil {
		c = NewChunk()
		w.chunks[pos] = c
		w.modCount++
	}
	w.mu.Unlock()
	c.Set(mod(x, ChunkSize), mod(y, ChunkSize), mod(z, ChunkSize), s)
}
