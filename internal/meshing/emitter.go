package meshing

import (
	"fmt"

	"cubic/internal/render"
	"cubic/internal/world"
)

// Default per-batch limits. 2500 faces fit in one batch, well inside the
// range of 16-bit indices.
const (
	DefaultVertexCap = 10000
	DefaultIndexCap  = 15000

	// MaxVertexCap is the most vertices a uint16 index can address.
	MaxVertexCap = 1 << 16
)

// Texture is an opaque handle carried on every batch for the renderer.
type Texture = any

// Batch is one draw call worth of geometry. Indices address Vertices of the
// same batch; BaseVertex is the position of Vertices[0] in the unsplit
// vertex stream.
type Batch struct {
	Vertices   []Vertex
	Indices    []uint16
	Texture    Texture
	BaseVertex int
}

// Faces returns the number of quads in the batch.
func (b *Batch) Faces() int { return len(b.Vertices) / 4 }

// Emitter accumulates quads for one frame and splits them into batches that
// respect the vertex and index caps. A face is never split across batches.
type Emitter struct {
	texture Texture
	vcap    int
	icap    int

	vertices []Vertex
	indices  []uint32
}

// NewEmitter returns an emitter using the default caps.
func NewEmitter(texture Texture) *Emitter {
	return NewEmitterWithCaps(texture, DefaultVertexCap, DefaultIndexCap)
}

// NewEmitterWithCaps returns an emitter with explicit per-batch caps. It
// panics if a single face does not fit or vcap exceeds MaxVertexCap.
func NewEmitterWithCaps(texture Texture, vcap, icap int) *Emitter {
	if vcap < 4 || icap < 6 || vcap > MaxVertexCap {
		panic(fmt.Sprintf("meshing: invalid batch caps (vertices %d, indices %d)", vcap, icap))
	}
	return &Emitter{
		texture:  texture,
		vcap:     vcap,
		icap:     icap,
		vertices: make([]Vertex, 0, world.ChunkSize*world.ChunkSize),
		indices:  make([]uint32, 0, world.ChunkSize*world.ChunkSize*3/2),
	}
}

// AddFace appends one quad.
func (e *Emitter) AddFace(quad [4]Vertex) {
	base := uint32(len(e.vertices))
	for _, i := range QuadIndices {
		e.indices = append(e.indices, base+uint32(i))
	}
	e.vertices = append(e.vertices, quad[:]...)
}

// AddBlock emits the drawn faces of one block model at world position pos,
// in the order top, bottom, px, nx, pz, nz. Blended models cannot be drawn
// and panic.
func (e *Emitter) AddBlock(pos world.BlockPos, m render.BlockModel) {
	switch m.Kind {
	case render.ModelEmpty, render.ModelNonCube:
		return
	case render.ModelBlended:
		panic(fmt.Sprintf("meshing: blended block model %s (faces %v) at %v is not supported", m, m.Faces, pos))
	}
	for _, f := range render.AllFaces {
		if m.Faces.Has(f) {
			e.AddFace(Quad(f, pos, m.Textures.For(f)))
		}
	}
}

// AddChunk emits every block of a chunk model.
func (e *Emitter) AddChunk(pos world.ChunkPos, m *render.ChunkModel) {
	if !m.Allocated() {
		return
	}
	origin := pos.Origin()
	for y := range world.ChunkSize {
		for x := range world.ChunkSize {
			for z := range world.ChunkSize {
				bm := m.Get(x, y, z)
				if !bm.Drawable() && bm.Kind != render.ModelBlended {
					continue
				}
				e.AddBlock(origin.Add(world.BlockPos{X: x, Y: y, Z: z}), bm)
			}
		}
	}
}

// FaceCount returns the number of quads added so far.
func (e *Emitter) FaceCount() int { return len(e.vertices) / 4 }

// FacesPerBatch is the number of whole faces that fit in one batch.
func (e *Emitter) FacesPerBatch() int {
	return min(e.vcap/4, e.icap/6)
}

// Batches partitions the accumulated geometry. Each batch holds whole faces
// only and its indices are renumbered from zero.
func (e *Emitter) Batches() []Batch {
	faces := e.FaceCount()
	if faces == 0 {
		return nil
	}
	per := e.FacesPerBatch()
	batches := make([]Batch, 0, (faces+per-1)/per)
	for start := 0; start < faces; start += per {
		end := min(start+per, faces)
		base := start * 4

		verts := make([]Vertex, (end-start)*4)
		copy(verts, e.vertices[base:end*4])

		src := e.indices[start*6 : end*6]
		idx := make([]uint16, len(src))
		for i, v := range src {
			idx[i] = uint16(v - uint32(base))
		}

		batches = append(batches, Batch{
			Vertices:   verts,
			Indices:    idx,
			Texture:    e.texture,
			BaseVertex: base,
		})
	}
	return batches
}

// Reset clears accumulated geometry, keeping buffers for reuse.
func (e *Emitter) Reset() {
	e.vertices = e.vertices[:0]
	e.indices = e.indices[:0]
}

// ChunkEntry pairs a chunk model with its position.
type ChunkEntry struct {
	Pos   world.ChunkPos
	Model render.ChunkModel
}

// BuildChunkMeshes emits all chunk models into batches with the default caps.
// Empty models are skipped.
func BuildChunkMeshes(chunks []ChunkEntry, texture Texture) []Batch {
	e := NewEmitter(texture)
	for i := range chunks {
		e.AddChunk(chunks[i].Pos, &chunks[i].Model)
	}
	return e.Batches()
}

// BuildChunkMesh emits a single chunk model.
func BuildChunkMesh(pos world.ChunkPos, m render.ChunkModel, texture Texture) []Batch {
	return BuildChunkMeshes([]ChunkEntry{{Pos: pos, Model: m}}, texture)
}
