package world

import "fmt"

// BlockType identifies the material of a block.
type BlockType uint8

const (
	BlockAir BlockType = iota
	BlockDirt
	BlockGrass
	BlockStone
	BlockSand
)

var blockTypeNames = [...]string{
	BlockAir:   "air",
	BlockDirt:  "dirt",
	BlockGrass: "grass",
	BlockStone: "stone",
	BlockSand:  "sand",
}

// IsEmpty reports whether the block type lets light and sight through.
// Only air is empty.
func (t BlockType) IsEmpty() bool {
	return t == BlockAir
}

func (t BlockType) String() string {
	if int(t) < len(blockTypeNames) {
		return blockTypeNames[t]
	}
	return fmt.Sprintf("block(%d)", uint8(t))
}

// BlockState is the value stored in every chunk cell.
type BlockState struct {
	Type BlockType
}

var (
	Air   = BlockState{Type: BlockAir}
	Dirt  = BlockState{Type: BlockDirt}
	Grass = BlockState{Type: BlockGrass}
	Stone = BlockState{Type: BlockStone}
	Sand  = BlockState{Type: BlockSand}
)

// IsEmpty reports whether the block is air.
func (s BlockState) IsEmpty() bool {
	return s.Type.IsEmpty()
}

func (s BlockState) String() string {
	return s.Type.String()
}

// Biome tags a chunk with the terrain kind it was generated for.
// Rendering ignores it.
type Biome uint8

const (
	BiomePlains Biome = iota
	BiomeDesert
	BiomeForest
	BiomeJungle
)

func (b Biome) String() string {
	switch b {
	case BiomePlains:
		return "plains"
	case BiomeDesert:
		return "desert"
	case BiomeForest:
		return "forest"
	case BiomeJungle:
		return "jungle"
	default:
		return fmt.Sprintf("biome(%d)", uint8(b))
	}
}
