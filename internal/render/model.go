package render

import (
	"strings"

	"cubic/internal/world"
)

// Face is a single side of a block, as a bit in a FaceSet.
type Face uint8

const (
	FaceTop Face = 1 << iota
	FaceBottom
	FacePx
	FaceNx
	FacePz
	FaceNz
)

// AllFaces lists faces in emission order.
var AllFaces = [6]Face{FaceTop, FaceBottom, FacePx, FaceNx, FacePz, FaceNz}

func (f Face) String() string {
	switch f {
	case FaceTop:
		return "top"
	case FaceBottom:
		return "bottom"
	case FacePx:
		return "px"
	case FaceNx:
		return "nx"
	case FacePz:
		return "pz"
	case FaceNz:
		return "nz"
	}
	return "face?"
}

// FaceSet is a bitmask of faces.
type FaceSet uint8

func Faces(fs ...Face) FaceSet {
	var s FaceSet
	for _, f := range fs {
		s |= FaceSet(f)
	}
	return s
}

func (s FaceSet) Has(f Face) bool { return s&FaceSet(f) != 0 }

func (s FaceSet) Len() int {
	n := 0
	for _, f := range AllFaces {
		if s.Has(f) {
			n++
		}
	}
	return n
}

func (s FaceSet) String() string {
	if s == 0 {
		return "none"
	}
	parts := make([]string, 0, 3)
	for _, f := range AllFaces {
		if s.Has(f) {
			parts = append(parts, f.String())
		}
	}
	return strings.Join(parts, "+")
}

// ModelKind says how a block model is drawn.
type ModelKind uint8

const (
	ModelEmpty   ModelKind = iota // nothing to draw
	ModelNonCube                  // not a full cube; nothing drawn by the cube mesher
	ModelCube                     // Faces drawn with Textures
	ModelBlended                  // two textures per face; not supported by the mesher
)

func (k ModelKind) String() string {
	switch k {
	case ModelEmpty:
		return "empty"
	case ModelNonCube:
		return "non-cube"
	case ModelCube:
		return "cube"
	case ModelBlended:
		return "blended"
	}
	return "kind?"
}

// BlockModel is what the mesher needs to know about one block: which of its
// faces are both exposed to air and turned towards the camera, and the
// textures to draw them with. The zero value is the empty model.
type BlockModel struct {
	Kind     ModelKind
	Faces    FaceSet
	Textures *FaceTextures
	// Overlay is the second texture set of a blended model.
	Overlay *FaceTextures
}

// IsEmpty reports whether the model draws nothing because it is empty.
func (m BlockModel) IsEmpty() bool {
	return m.Kind == ModelEmpty
}

// Drawable reports whether the model produces geometry.
func (m BlockModel) Drawable() bool {
	return (m.Kind == ModelCube || m.Kind == ModelBlended) && m.Faces != 0
}

// String renders the model as a compact glyph: top/bottom, x, z, each as
// '+', '-' or ' '. Blended models use parentheses.
func (m BlockModel) String() string {
	if !m.Drawable() {
		return "[   ]"
	}
	glyph := func(pos, neg Face) byte {
		switch {
		case m.Faces.Has(pos):
			return '+'
		case m.Faces.Has(neg):
			return '-'
		}
		return ' '
	}
	lb, rb := byte('['), byte(']')
	if m.Kind == ModelBlended {
		lb, rb = '(', ')'
	}
	return string([]byte{lb, glyph(FaceTop, FaceBottom), glyph(FacePx, FaceNx), glyph(FacePz, FaceNz), rb})
}

type modelGrid [world.ChunkSize][world.ChunkSize][world.ChunkSize]BlockModel

// ChunkModel holds one BlockModel per cell of a chunk, indexed (y, x, z).
// Storage is allocated on the first non-empty Set; the zero value reads as
// all empty.
type ChunkModel struct {
	cells *modelGrid
}

// EmptyChunkModel returns a model with no storage.
func EmptyChunkModel() ChunkModel {
	return ChunkModel{}
}

func (m *ChunkModel) Get(x, y, z int) BlockModel {
	if m.cells == nil {
		return BlockModel{}
	}
	return m.cells[y][x][z]
}

func (m *ChunkModel) Set(x, y, z int, bm BlockModel) {
	if m.cells == nil {
		if bm.IsEmpty() {
			return
		}
		m.cells = new(modelGrid)
	}
	m.cells[y][x][z] = bm
}

// Allocated reports whether the model has backing storage.
func (m *ChunkModel) Allocated() bool {
	return m.cells != nil
}

// IsEmpty reports whether every cell is the empty model.
func (m *ChunkModel) IsEmpty() bool {
	if m.cells == nil {
		return true
	}
	for y := range m.cells {
		for x := range m.cells[y] {
			for z := range m.cells[y][x] {
				if !m.cells[y][x][z].IsEmpty() {
					return false
				}
			}
		}
	}
	return true
}

// FaceCount returns the number of quads the model will emit.
func (m *ChunkModel) FaceCount() int {
	if m.cells == nil {
		return 0
	}
	n := 0
	for y := range m.cells {
		for x := range m.cells[y] {
			for z := range m.cells[y][x] {
				if bm := m.cells[y][x][z]; bm.Drawable() {
					n += bm.Faces.Len()
				}
			}
		}
	}
	return n
}

// String dumps the model layer by layer, top layer first.
func (m *ChunkModel) String() string {
	var sb strings.Builder
	for y := world.ChunkSize - 1; y >= 0; y-- {
		for x := range world.ChunkSize {
			for z := range world.ChunkSize {
				sb.WriteString(m.Get(x, y, z).String())
			}
			sb.WriteByte('\n')
		}
		sb.WriteString("\n\n")
	}
	return sb.String()
}
